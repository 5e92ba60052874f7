package services

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"cardfinder/internal/config"
	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/models"
)

var (
	ErrStaleSearch = apperrors.New(apperrors.SearchStale)
)

// SearchDispatcher delivers search results after a perceptual delay and
// drops results of requests superseded by a newer one.
type SearchDispatcher struct {
	search      SearchServiceInterface
	preferences PreferenceServiceInterface
	metrics     MetricsRecorderInterface
	logger      SearchLoggerInterface
	delay       time.Duration
	sequence    atomic.Uint64
}

// NewSearchDispatcher creates a dispatcher using the configured result delay
func NewSearchDispatcher(
	search SearchServiceInterface,
	preferences PreferenceServiceInterface,
	metrics MetricsRecorderInterface,
	logger SearchLoggerInterface,
	cfg config.SearchConfig,
) SearchDispatcherInterface {
	return &SearchDispatcher{
		search:      search,
		preferences: preferences,
		metrics:     metrics,
		logger:      logger,
		delay:       cfg.ResultDelay,
	}
}

func (d *SearchDispatcher) Dispatch(ctx context.Context, query string, opts models.SearchOptions) (*models.SearchResult, error) {
	ctx = WithRequestID(ctx, uuid.NewString())

	query = strings.TrimSpace(query)
	if query == "" {
		d.logger.LogSearchRejected(ctx, ErrInvalidSearchQuery.Message)
		d.metrics.IncrementCounter("search_request", map[string]string{"status": "rejected"})
		return nil, ErrInvalidSearchQuery
	}

	seq := d.sequence.Add(1)
	start := time.Now()
	d.logger.LogSearchStarted(ctx, query, seq)

	if err := d.wait(ctx); err != nil {
		d.metrics.IncrementCounter("search_request", map[string]string{"status": "cancelled"})
		return nil, apperrors.New(apperrors.SystemCancelled, apperrors.WithCause(err))
	}
	if d.superseded(ctx, seq) {
		return nil, ErrStaleSearch
	}

	result, err := d.search.Search(ctx, query, opts)
	duration := time.Since(start)
	if err != nil {
		d.logger.LogSearchFailed(ctx, err.Error(), duration.Milliseconds())
		d.metrics.IncrementCounter("search_request", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if d.superseded(ctx, seq) {
		return nil, ErrStaleSearch
	}

	if err := d.preferences.AddSearch(ctx, query); err != nil {
		d.logger.LogSearchFailed(ctx, err.Error(), duration.Milliseconds())
		d.metrics.IncrementCounter("search_request", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("record search history: %w", err)
	}

	d.metrics.IncrementCounter("search_request", map[string]string{"status": "success"})
	d.metrics.RecordProcessingTime("search", duration)
	d.metrics.RecordGauge("search_results", float64(len(result.Cards)), nil)
	d.logger.LogSearchCompleted(ctx, len(result.Cards), result.DetectedCategory, duration.Milliseconds())

	return result, nil
}

func (d *SearchDispatcher) wait(ctx context.Context) error {
	if d.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (d *SearchDispatcher) superseded(ctx context.Context, seq uint64) bool {
	latest := d.sequence.Load()
	if latest == seq {
		return false
	}
	d.logger.LogSearchStale(ctx, seq, latest)
	d.metrics.IncrementCounter("search_request", map[string]string{"status": "stale"})
	return true
}
