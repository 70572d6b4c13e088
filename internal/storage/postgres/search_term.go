package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"nichebridge/internal/domain"
)

type NicheStore struct {
	db *sqlx.DB
}

func NewNicheStore(db *sqlx.DB) *NicheStore {
	return &NicheStore{db: db}
}

// FirstID returns the lowest existing niche id. found is false when the table
// is empty; the caller decides what to fall back to.
func (s *NicheStore) FirstID(ctx context.Context) (int64, bool, error) {
	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		"SELECT id FROM niches ORDER BY id LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

type SearchTermStore struct {
	db *sqlx.DB
}

func NewSearchTermStore(db *sqlx.DB) *SearchTermStore {
	return &SearchTermStore{db: db}
}

// Insert writes a new search term row for the scraper to pick up.
func (s *SearchTermStore) Insert(ctx context.Context, term *domain.SearchTerm) error {
	query := `
		INSERT INTO search_terms (
			niche_id, search_term, country_type, search_creative_type,
			last_updated, is_updateable, scrape_fully
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	return sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &term.ID, query,
		term.NicheID,
		term.Term,
		term.CountryIndex,
		term.CreativeType,
		term.LastUpdated,
		term.IsUpdateable,
		term.ScrapeFully,
	)
}
