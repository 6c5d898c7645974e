package domain

// AdCreative guarda os dados de exibição de um criativo
type AdCreative struct {
	CreativeID   string `json:"creative_id"`
	AccountID    string `json:"account_id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoID      string `json:"video_id"`
	LinkURL      string `json:"link_url"`
}

// CreativePerformance é o desempenho acumulado de um criativo na galeria
type CreativePerformance struct {
	AdCreative
	AdCount          int     `json:"ad_count"`
	Spend            float64 `json:"spend"`
	Impressions      float64 `json:"impressions"`
	Clicks           float64 `json:"clicks"`
	Conversions      float64 `json:"conversions"`
	ConversionValues float64 `json:"conversion_values"`
	CTR              float64 `json:"ctr"`
	CPC              float64 `json:"cpc"`
	ROAS             float64 `json:"roas"`
}
