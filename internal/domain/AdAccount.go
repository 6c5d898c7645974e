package domain

import "time"

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusInactive AdAccountStatus = "INACTIVE"
)

// AdAccount é uma conta de anúncios do Meta acompanhada pelo painel
type AdAccount struct {
	ID         string          `json:"id"`
	ExternalID string          `json:"external_id"` // sem o prefixo act_
	Name       string          `json:"name"`
	Nickname   *string         `json:"nickname"`
	Currency   string          `json:"currency"`
	Status     AdAccountStatus `json:"status"`
	SyncedAt   *time.Time      `json:"synced_at,omitempty"`
}

// DisplayName retorna o apelido quando existir
func (a *AdAccount) DisplayName() string {
	if a.Nickname != nil && *a.Nickname != "" {
		return *a.Nickname
	}
	return a.Name
}

type UpdateAdAccountRequest struct {
	ID       string  `json:"id"`
	Nickname *string `json:"nickname,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type SyncAccountsResponse struct {
	Quantity int    `json:"quantity"`
	Message  string `json:"message"`
	Error    bool   `json:"error"`
}
