package domain

// SyncReport resume uma execução de sincronização mensal de uma conta
type SyncReport struct {
	AccountID          string   `json:"account_id"`
	InsightsSynced     int      `json:"insights_synced"`
	DemographicsSynced int      `json:"demographics_synced"`
	PlatformsSynced    int      `json:"platforms_synced"`
	AdInsightsSynced   int      `json:"ad_insights_synced"`
	RejectedRows       int      `json:"rejected_rows"`
	Errors             []string `json:"errors,omitempty"`
}

// RecalculationReport resume o recálculo de resultados de uma conta
type RecalculationReport struct {
	AccountID     string `json:"account_id"`
	TotalInsights int    `json:"total_insights"`
	Updated       int    `json:"updated"`
}

// MonthlyInsightBatch reúne as três passagens mensais de uma conta
type MonthlyInsightBatch struct {
	AdSets       []*InsightRow
	Demographics []*InsightRow
	Platforms    []*InsightRow
	Rejected     []error
}
