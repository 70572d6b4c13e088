package domain

// PageRow is one row of the page listing join. The join is pages left-joined
// against their status record and their ads, so every column past page_id can
// be NULL; nullable columns are pointers.
type PageRow struct {
	PageID       string  `db:"page_id"`
	Name         *string `db:"name"`
	EUTotalReach *int64  `db:"eu_total_reach"`
	Status       *int64  `db:"status"`
	Beneficiary  *string `db:"beneficiary"`
	CreativeURL  *string `db:"creative_url"`
	CreativeType *int64  `db:"creative_type"`
	SnapshotURL  *string `db:"ad_snapshot_url"`
}

// TopCreative is the single creative surfaced per listed page.
type TopCreative struct {
	MediaURL    string `json:"media_url"`
	MediaType   string `json:"media_type"`
	SnapshotURL string `json:"snapshot_url"`
}

// PageView is the page shape served to the frontend.
type PageView struct {
	PageID       string       `json:"page_id"`
	Name         string       `json:"name"`
	Country      string       `json:"country"`
	TotalEUReach int64        `json:"total_eu_reach"`
	ManualStatus string       `json:"manual_status"`
	Beneficiary  string       `json:"beneficiary"`
	TopCreative  *TopCreative `json:"top_creative"`
}
