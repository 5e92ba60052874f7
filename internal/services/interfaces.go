package services

import (
	"context"
	"time"

	"cardfinder/internal/models"
)

// CatalogReader is the read-only view of the card catalog the services need
type CatalogReader interface {
	Cards() []models.Card
	Card(id string) (models.Card, bool)
	Has(id string) bool
	Categories() *models.CategoryTable
	Banks() []string
	TotalBenefits() int
}

// SearchServiceInterface resolves a query into matching cards and a detected category
type SearchServiceInterface interface {
	Search(ctx context.Context, query string, opts models.SearchOptions) (*models.SearchResult, error)
}

// SearchDispatcherInterface runs searches the way the interactive surfaces request them
type SearchDispatcherInterface interface {
	Dispatch(ctx context.Context, query string, opts models.SearchOptions) (*models.SearchResult, error)
}

// PreferenceServiceInterface defines the persisted owned, favorite and recent-search lists.
// Getters never fail: unreadable data is logged and reads as an empty list.
type PreferenceServiceInterface interface {
	GetOwned(ctx context.Context) []string
	SetOwned(ctx context.Context, cardIDs []string) error
	ToggleOwned(ctx context.Context, cardID string) (bool, error)
	OwnedSet(ctx context.Context) models.CardIDSet

	GetFavorites(ctx context.Context) []string
	SetFavorites(ctx context.Context, cardIDs []string) error
	ToggleFavorite(ctx context.Context, cardID string) (bool, error)
	FavoriteSet(ctx context.Context) models.CardIDSet

	GetRecentSearches(ctx context.Context) []string
	AddSearch(ctx context.Context, query string) error
	ClearSearches(ctx context.Context) error
}

// BrowseServiceInterface backs the all-cards and my-cards listings
type BrowseServiceInterface interface {
	AllCards(query models.AllCardsQuery) []models.Card
	Banks() []string
	MyCards(ctx context.Context, query models.MyCardsQuery) *models.MyCardsResult
	Stats(ctx context.Context) models.CatalogStats
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SearchLoggerInterface emits structured search and preference events
type SearchLoggerInterface interface {
	LogSearchStarted(ctx context.Context, query string, sequence uint64)
	LogSearchCompleted(ctx context.Context, resultsCount int, detectedCategory string, durationMs int64)
	LogSearchRejected(ctx context.Context, reason string)
	LogSearchFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogSearchStale(ctx context.Context, sequence, latest uint64)
	LogPreferenceCorrupt(ctx context.Context, list string, err error)
	LogPreferenceToggled(ctx context.Context, list, cardID string, added bool)
}
