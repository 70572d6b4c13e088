//go:build integration

package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"nichebridge/internal/domain"
	"nichebridge/internal/server"
	"nichebridge/internal/service"
	"nichebridge/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB

	pages     *PageStore
	niches    *NicheStore
	terms     *SearchTermStore
	txManager *TransactionManager
	logger    *slog.Logger
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_init.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.pages = NewPageStore(db)
	s.niches = NewNicheStore(db)
	s.terms = NewSearchTermStore(db)
	s.txManager = NewTransactionManager(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM search_terms")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM niches")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM ads")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM pages_products")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM pages")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) seedPage(pageID, name string, reach int64) int64 {
	var id int64
	err := s.db.QueryRowContext(s.ctx,
		"INSERT INTO pages (page_id, name, eu_total_reach) VALUES ($1, $2, $3) RETURNING id",
		pageID, name, reach,
	).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) seedStatus(internalID int64, status int, beneficiary *string) {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO pages_products (page_id, status, beneficiary) VALUES ($1, $2, $3)",
		internalID, status, beneficiary,
	)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) seedAd(internalID int64, url *string, creativeType *int64, snapshot *string) {
	_, err := s.db.ExecContext(s.ctx,
		"INSERT INTO ads (page_id, creative_url, creative_type, ad_snapshot_url) VALUES ($1, $2, $3, $4)",
		internalID, url, creativeType, snapshot,
	)
	s.Require().NoError(err)
}

func (s *PostgresIntegrationSuite) TestListRows_StatusFilter() {
	unseen := s.seedPage("page-unseen", "No Status Row", 100)
	_ = unseen
	saved := s.seedPage("page-saved", "Saved Page", 200)
	s.seedStatus(saved, 11, utils.Ptr("Acme GmbH"))
	deleted := s.seedPage("page-deleted", "Deleted Page", 300)
	s.seedStatus(deleted, 13, nil)

	// Requesting saved returns only the saved page.
	rows, err := s.pages.ListRows(s.ctx, 11, "")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("page-saved", rows[0].PageID)
	s.Require().NotNil(rows[0].Beneficiary)
	s.Equal("Acme GmbH", *rows[0].Beneficiary)

	// Requesting unprocessed includes pages that have no status row at all.
	rows, err = s.pages.ListRows(s.ctx, 0, "")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("page-unseen", rows[0].PageID)
	s.Nil(rows[0].Status)
}

func (s *PostgresIntegrationSuite) TestListRows_NameFilterIsCaseInsensitive() {
	s.seedPage("page-1", "Acme Running Shoes", 100)
	s.seedPage("page-2", "Unrelated", 200)

	rows, err := s.pages.ListRows(s.ctx, 0, "running")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("page-1", rows[0].PageID)
}

func (s *PostgresIntegrationSuite) TestListRows_OrderAndCap() {
	for i := 0; i < 120; i++ {
		s.seedPage(fmt.Sprintf("page-%03d", i), "Page", int64(i*10))
	}

	rows, err := s.pages.ListRows(s.ctx, 0, "")
	s.Require().NoError(err)
	s.Len(rows, 100)

	for i := 1; i < len(rows); i++ {
		s.Require().NotNil(rows[i].EUTotalReach)
		s.GreaterOrEqual(*rows[i-1].EUTotalReach, *rows[i].EUTotalReach)
	}
}

func (s *PostgresIntegrationSuite) TestListRows_CreativeFanout() {
	id := s.seedPage("page-1", "Page", 100)
	s.seedAd(id, utils.Ptr("https://cdn.example.com/a.jpg"), utils.Ptr(int64(0)), nil)
	s.seedAd(id, utils.Ptr("https://cdn.example.com/b.mp4"), utils.Ptr(int64(1)), nil)

	rows, err := s.pages.ListRows(s.ctx, 0, "")
	s.Require().NoError(err)
	s.Len(rows, 2, "one row per ad before deduplication")
}

func (s *PostgresIntegrationSuite) TestGetInternalID() {
	id := s.seedPage("page-1", "Page", 100)

	got, err := s.pages.GetInternalID(s.ctx, "page-1")
	s.Require().NoError(err)
	s.Equal(id, got)

	_, err = s.pages.GetInternalID(s.ctx, "missing")
	s.ErrorIs(err, domain.ErrPageNotFound)
}

func (s *PostgresIntegrationSuite) TestSetStatus_CreatesAndUpdates() {
	id := s.seedPage("page-1", "Page", 100)

	// No status row yet: SetStatus must create one, not silently no-op.
	s.Require().NoError(s.pages.SetStatus(s.ctx, id, 11))

	var status int
	s.Require().NoError(s.db.GetContext(s.ctx, &status,
		"SELECT status FROM pages_products WHERE page_id = $1", id))
	s.Equal(11, status)

	s.Require().NoError(s.pages.SetStatus(s.ctx, id, 13))
	s.Require().NoError(s.db.GetContext(s.ctx, &status,
		"SELECT status FROM pages_products WHERE page_id = $1", id))
	s.Equal(13, status)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM pages_products WHERE page_id = $1", id))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestNicheFirstID() {
	_, found, err := s.niches.FirstID(s.ctx)
	s.Require().NoError(err)
	s.False(found)

	_, err = s.db.ExecContext(s.ctx, "INSERT INTO niches (id, name) VALUES (9, 'fitness'), (5, 'fashion')")
	s.Require().NoError(err)

	id, found, err := s.niches.FirstID(s.ctx)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(int64(5), id)
}

func (s *PostgresIntegrationSuite) TestSearchTermInsert() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	term := &domain.SearchTerm{
		NicheID:      3,
		Term:         "running shoes",
		CountryIndex: 4,
		CreativeType: 0,
		LastUpdated:  now,
		IsUpdateable: true,
		ScrapeFully:  true,
	}

	s.Require().NoError(s.terms.Insert(s.ctx, term))
	s.NotZero(term.ID)

	var got struct {
		NicheID      int64     `db:"niche_id"`
		Term         string    `db:"search_term"`
		CountryType  int       `db:"country_type"`
		CreativeType int       `db:"search_creative_type"`
		LastUpdated  time.Time `db:"last_updated"`
		IsUpdateable bool      `db:"is_updateable"`
		ScrapeFully  bool      `db:"scrape_fully"`
	}
	s.Require().NoError(s.db.GetContext(s.ctx, &got,
		"SELECT niche_id, search_term, country_type, search_creative_type, last_updated, is_updateable, scrape_fully FROM search_terms WHERE id = $1",
		term.ID))

	s.Equal(int64(3), got.NicheID)
	s.Equal("running shoes", got.Term)
	s.Equal(4, got.CountryType)
	s.Equal(0, got.CreativeType)
	s.True(got.LastUpdated.Equal(now))
	s.True(got.IsUpdateable)
	s.True(got.ScrapeFully)
}

func (s *PostgresIntegrationSuite) TestWithTransaction_RollsBack() {
	id := s.seedPage("page-1", "Page", 100)

	err := s.txManager.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := s.pages.SetStatus(txCtx, id, 11); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	s.Require().Error(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count,
		"SELECT COUNT(*) FROM pages_products WHERE page_id = $1", id))
	s.Equal(0, count, "rolled back write must not persist")
}

// newBridge wires real stores and services behind the HTTP handler, the same
// way cmd/server does.
func (s *PostgresIntegrationSuite) newBridge() http.Handler {
	pageService := service.NewPageService(s.pages, s.txManager, s.logger)
	termService := service.NewSearchTermService(s.niches, s.terms, s.txManager, nil, s.logger)
	return server.New(pageService, termService, s.logger).Handler()
}

func (s *PostgresIntegrationSuite) TestEndToEnd_StatusRoundTrip() {
	s.seedPage("page-1", "Acme Corp", 5000)
	handler := s.newBridge()

	// The freshly seeded page lists as unprocessed.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	var views []domain.PageView
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &views))
	s.Require().Len(views, 1)
	s.Equal("unprocessed", views[0].ManualStatus)

	// Mark it deleted.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/pages/page-1/status",
		strings.NewReader(`{"manual_status":"deleted"}`)))
	s.Require().Equal(http.StatusOK, rec.Code)

	// It now shows under deleted and nowhere else.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages?status=deleted", nil))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &views))
	s.Require().Len(views, 1)
	s.Equal("page-1", views[0].PageID)
	s.Equal("deleted", views[0].ManualStatus)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages?status=saved", nil))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &views))
	s.Empty(views)
}

func (s *PostgresIntegrationSuite) TestEndToEnd_UpdateUnknownPage() {
	handler := s.newBridge()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/pages/ghost/status",
		strings.NewReader(`{"manual_status":"saved"}`)))
	s.Equal(http.StatusNotFound, rec.Code)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM pages_products"))
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestEndToEnd_CreativeDefaults() {
	id := s.seedPage("page-1", "Page", 100)
	// Null media URL but a snapshot URL still surfaces a creative.
	s.seedAd(id, nil, nil, utils.Ptr("https://example.com/snapshot"))

	handler := s.newBridge()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pages", nil))
	s.Require().Equal(http.StatusOK, rec.Code)

	var views []domain.PageView
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &views))
	s.Require().Len(views, 1)
	s.Require().NotNil(views[0].TopCreative)
	s.Equal("", views[0].TopCreative.MediaURL)
	s.Equal("image", views[0].TopCreative.MediaType)
	s.Equal("https://example.com/snapshot", views[0].TopCreative.SnapshotURL)
}

func (s *PostgresIntegrationSuite) TestEndToEnd_CreateSearchTerm() {
	handler := s.newBridge()

	// Unknown country and an empty niches table both fall back to defaults.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/search_terms",
		strings.NewReader(`{"country":"Narnia","search_term":"yoga mats"}`)))
	s.Require().Equal(http.StatusOK, rec.Code)

	var got struct {
		NicheID     int64  `db:"niche_id"`
		Term        string `db:"search_term"`
		CountryType int    `db:"country_type"`
	}
	s.Require().NoError(s.db.GetContext(s.ctx, &got,
		"SELECT niche_id, search_term, country_type FROM search_terms LIMIT 1"))
	s.Equal(int64(1), got.NicheID)
	s.Equal("yoga mats", got.Term)
	s.Equal(0, got.CountryType)

	var nicheCount int
	s.Require().NoError(s.db.GetContext(s.ctx, &nicheCount, "SELECT COUNT(*) FROM niches"))
	s.Equal(0, nicheCount, "fallback must not create a niche")
}
