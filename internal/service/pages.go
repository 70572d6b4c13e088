package service

import (
	"context"
	"fmt"
	"log/slog"

	"nichebridge/internal/codec"
	"nichebridge/internal/domain"
)

// searchTermAll is the frontend's "no filter" sentinel for the name search.
const searchTermAll = "All"

type PageService struct {
	pages     PageStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewPageService(pages PageStore, txManager TransactionManager, logger *slog.Logger) *PageService {
	return &PageService{
		pages:     pages,
		txManager: txManager,
		logger:    logger,
	}
}

// List returns page views for the given frontend status, optionally filtered
// by a name substring. Unknown status strings resolve to unprocessed rather
// than erroring; the listing stays usable against dirty input.
func (s *PageService) List(ctx context.Context, status, searchTerm string) ([]domain.PageView, error) {
	statusCode := codec.StatusToDBOrDefault(status)

	if searchTerm == searchTermAll {
		searchTerm = ""
	}

	rows, err := s.pages.ListRows(ctx, statusCode, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	// The ads join can repeat a page; keep the first row per page and let its
	// creative columns become the page's top creative.
	views := make([]domain.PageView, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i := range rows {
		row := &rows[i]
		if _, ok := seen[row.PageID]; ok {
			continue
		}
		seen[row.PageID] = struct{}{}
		views = append(views, buildView(row))
	}

	s.logger.Debug("listed pages",
		"status", status,
		"search_term", searchTerm,
		"rows", len(rows),
		"pages", len(views),
	)

	return views, nil
}

// UpdateStatus applies a frontend status string to the page with the given
// external id. The lookup and the write share one transaction.
func (s *PageService) UpdateStatus(ctx context.Context, pageID, status string) error {
	statusCode, err := codec.StatusToDB(status)
	if err != nil {
		return err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		internalID, err := s.pages.GetInternalID(txCtx, pageID)
		if err != nil {
			return err
		}
		return s.pages.SetStatus(txCtx, internalID, statusCode)
	})
	if err != nil {
		return err
	}

	s.logger.Info("updated page status", "page_id", pageID, "status", status)
	return nil
}

func buildView(row *domain.PageRow) domain.PageView {
	view := domain.PageView{
		PageID:       row.PageID,
		Name:         "Unknown",
		ManualStatus: "unprocessed",
	}

	if row.Name != nil {
		view.Name = *row.Name
	}
	if row.EUTotalReach != nil {
		view.TotalEUReach = *row.EUTotalReach
	}
	if row.Status != nil {
		view.ManualStatus = codec.StatusToUI(int(*row.Status))
	}
	if row.Beneficiary != nil {
		view.Beneficiary = *row.Beneficiary
	}

	// A creative is reported whenever either URL is present, even if the other
	// is missing; absent URLs render as empty strings.
	if row.CreativeURL != nil || row.SnapshotURL != nil {
		creative := &domain.TopCreative{
			MediaType: codec.CreativeTypeToUI(row.CreativeType),
		}
		if row.CreativeURL != nil {
			creative.MediaURL = *row.CreativeURL
		}
		if row.SnapshotURL != nil {
			creative.SnapshotURL = *row.SnapshotURL
		}
		view.TopCreative = creative
	}

	return view
}
