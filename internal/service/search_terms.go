package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nichebridge/internal/codec"
	"nichebridge/internal/domain"
)

// defaultNicheID is used when the niches table is empty; search_terms carries
// no foreign key, so the row stays insertable on an empty deployment.
const defaultNicheID = 1

type SearchTermService struct {
	niches    NicheStore
	terms     SearchTermStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
}

func NewSearchTermService(
	niches NicheStore,
	terms SearchTermStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *SearchTermService {
	return &SearchTermService{
		niches:    niches,
		terms:     terms,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
	}
}

// Create registers a new search term for the scraper. The term text is stored
// as-is; the scraper treats it as an opaque keyword.
func (s *SearchTermService) Create(ctx context.Context, country, searchTerm string) (*domain.SearchTerm, error) {
	term := &domain.SearchTerm{
		Term:         searchTerm,
		CountryIndex: codec.CountryIndex(country),
		CreativeType: 0,
		LastUpdated:  time.Now().UTC(),
		IsUpdateable: true,
		ScrapeFully:  true,
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		nicheID, found, err := s.niches.FirstID(txCtx)
		if err != nil {
			return fmt.Errorf("resolve niche: %w", err)
		}
		if !found {
			nicheID = defaultNicheID
		}
		term.NicheID = nicheID

		if err := s.terms.Insert(txCtx, term); err != nil {
			return fmt.Errorf("insert search term: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created search term",
		"search_term", term.Term,
		"country_index", term.CountryIndex,
		"niche_id", term.NicheID,
	)

	// The row is committed; a broker hiccup must not fail the request.
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, term); err != nil {
			s.logger.Error("failed to publish search term", "error", err)
		}
	}

	return term, nil
}
