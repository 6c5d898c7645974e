package domain

// Campaign é o cadastro de campanha sincronizado da Graph API
type Campaign struct {
	ID        string `json:"campaign_id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
}

// Metadata converte o cadastro para os atributos usados na agregação
func (c *Campaign) Metadata() EntityMetadata {
	return EntityMetadata{
		CampaignID: c.ID,
		Name:       c.Name,
		Objective:  c.Objective,
		Status:     c.Status,
	}
}

// AdSet é o cadastro de conjunto de anúncios
type AdSet struct {
	ID         string `json:"adset_id"`
	AccountID  string `json:"account_id"`
	CampaignID string `json:"campaign_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}

// Ad liga um anúncio ao seu criativo
type Ad struct {
	ID         string `json:"ad_id"`
	AccountID  string `json:"account_id"`
	AdSetID    string `json:"adset_id"`
	CampaignID string `json:"campaign_id"`
	CreativeID string `json:"creative_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
}
