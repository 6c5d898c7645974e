package metadomain

type AdAccount struct {
	BusinessManagerID   string `json:"business_id"`
	BusinessManagerName string `json:"business_name"`
	ID                  string `json:"id"`
	AccountID           string `json:"account_id"`
	Name                string `json:"name"`
	Currency            string `json:"currency"`
	AccountStatus       int    `json:"account_status"`
}

// IsActive segue o código account_status da Graph API (1 = ativa)
func (a *AdAccount) IsActive() bool {
	return a.AccountStatus == 1
}
