package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"nichebridge/internal/domain"
)

type PageStore interface {
	ListRows(ctx context.Context, statusCode int, nameFilter string) ([]domain.PageRow, error)
	GetInternalID(ctx context.Context, pageID string) (int64, error)
	SetStatus(ctx context.Context, internalID int64, statusCode int) error
}

type NicheStore interface {
	FirstID(ctx context.Context) (int64, bool, error)
}

type SearchTermStore interface {
	Insert(ctx context.Context, term *domain.SearchTerm) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, term *domain.SearchTerm) error
	Close() error
}
