package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"nichebridge/internal/domain"
)

// listLimit caps the raw join result before page-level deduplication.
const listLimit = 100

type PageStore struct {
	db *sqlx.DB
}

func NewPageStore(db *sqlx.DB) *PageStore {
	return &PageStore{db: db}
}

// ListRows returns the raw page/status/creative join, filtered by status code
// and an optional name substring, reach descending. A page without a status
// record counts as unprocessed, so it only matches when the requested code is
// 0. The join fans out one row per ad, so the same page can appear more than
// once; callers deduplicate.
func (s *PageStore) ListRows(ctx context.Context, statusCode int, nameFilter string) ([]domain.PageRow, error) {
	query := `
		SELECT
			pg.page_id,
			pg.name,
			pg.eu_total_reach,
			pp.status,
			pp.beneficiary,
			a.creative_url,
			a.creative_type,
			a.ad_snapshot_url
		FROM pages pg
		LEFT JOIN pages_products pp ON pp.page_id = pg.id
		LEFT JOIN ads a ON a.page_id = pg.id
		WHERE (pp.status = $1 OR (pp.status IS NULL AND $1 = 0))`
	args := []interface{}{statusCode}

	if nameFilter != "" {
		query += " AND pg.name ILIKE $2"
		args = append(args, "%"+nameFilter+"%")
	}

	query += fmt.Sprintf(" ORDER BY pg.eu_total_reach DESC NULLS LAST LIMIT %d", listLimit)

	var rows []domain.PageRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetInternalID resolves an external page id to the internal numeric key.
func (s *PageStore) GetInternalID(ctx context.Context, pageID string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		"SELECT id FROM pages WHERE page_id = $1", pageID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrPageNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// SetStatus writes the review status for a page, creating the status record
// if the page has never been processed before.
func (s *PageStore) SetStatus(ctx context.Context, internalID int64, statusCode int) error {
	query := `
		INSERT INTO pages_products (page_id, status)
		VALUES ($1, $2)
		ON CONFLICT (page_id) DO UPDATE SET status = EXCLUDED.status`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, internalID, statusCode)
	return err
}
