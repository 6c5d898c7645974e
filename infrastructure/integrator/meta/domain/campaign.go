package metadomain

type Campaign struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

type AdCreative struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Body         string `json:"body"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoID      string `json:"video_id"`
	LinkURL      string `json:"link_url"`
}

type Ad struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	AdSetID    string      `json:"adset_id"`
	CampaignID string      `json:"campaign_id"`
	Status     string      `json:"status"`
	Creative   *AdCreative `json:"creative,omitempty"`
}
