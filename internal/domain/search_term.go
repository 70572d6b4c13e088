package domain

import "time"

// SearchTerm is a keyword/country tracking request written for the downstream
// scraper to pick up. The bridge only ever creates these; the scraper owns the
// rest of their lifecycle.
type SearchTerm struct {
	ID           int64     `json:"id"`
	NicheID      int64     `json:"niche_id"`
	Term         string    `json:"search_term"`
	CountryIndex int       `json:"country_index"`
	CreativeType int       `json:"creative_type"`
	LastUpdated  time.Time `json:"last_updated"`
	IsUpdateable bool      `json:"is_updateable"`
	ScrapeFully  bool      `json:"scrape_fully"`
}
