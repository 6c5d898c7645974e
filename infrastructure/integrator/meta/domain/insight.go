package metadomain

// Action é um par action_type/value como a Graph API devolve, sempre com valor em string
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// Insight é uma linha de /insights. Medidas chegam como string e são convertidas na borda.
type Insight struct {
	AccountID         string   `json:"account_id"`
	CampaignID        string   `json:"campaign_id"`
	CampaignName      string   `json:"campaign_name"`
	AdSetID           string   `json:"adset_id"`
	AdSetName         string   `json:"adset_name"`
	AdID              string   `json:"ad_id"`
	AdName            string   `json:"ad_name"`
	Objective         string   `json:"objective"`
	Spend             string   `json:"spend"`
	Impressions       string   `json:"impressions"`
	Clicks            string   `json:"clicks"`
	Reach             string   `json:"reach"`
	Actions           []Action `json:"actions"`
	ActionValues      []Action `json:"action_values"`
	Age               string   `json:"age"`
	Gender            string   `json:"gender"`
	PublisherPlatform string   `json:"publisher_platform"`
	DateStart         string   `json:"date_start"`
	DateStop          string   `json:"date_stop"`
}

// Breakdown identifica qual passagem de /insights gerou a linha
type Breakdown string

const (
	BreakdownNone      Breakdown = ""
	BreakdownAgeGender Breakdown = "age,gender"
	BreakdownPublisher Breakdown = "publisher_platform"
)

type InsightLevel string

const (
	LevelAdSet InsightLevel = "adset"
	LevelAd    InsightLevel = "ad"
)

// InsightQuery descreve uma passagem paginada por /act_{id}/insights
type InsightQuery struct {
	Level         InsightLevel
	Breakdown     Breakdown
	Since         string // YYYY-MM-DD
	Until         string // YYYY-MM-DD
	TimeIncrement string // monthly ou número de dias
}
