package services

import (
	"context"
	"log/slog"
	"time"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches a correlation id to ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// SearchLogger provides structured logging for search and preference operations
type SearchLogger struct {
	logger *slog.Logger
}

// NewSearchLogger creates a new search logger
func NewSearchLogger(logger *slog.Logger) SearchLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchLogger{
		logger: logger,
	}
}

// LogSearchStarted logs a dispatched search before the result delay
func (sl *SearchLogger) LogSearchStarted(ctx context.Context, query string, sequence uint64) {
	sl.logger.InfoContext(ctx, "search started",
		slog.String("event_type", "search_started"),
		slog.String("query", query),
		slog.Uint64("sequence", sequence),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSearchCompleted logs a delivered search result
func (sl *SearchLogger) LogSearchCompleted(ctx context.Context, resultsCount int, detectedCategory string, durationMs int64) {
	sl.logger.InfoContext(ctx, "search completed",
		slog.String("event_type", "search_completed"),
		slog.Int("results_count", resultsCount),
		slog.String("detected_category", detectedCategory),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSearchRejected logs input refused before reaching the resolver
func (sl *SearchLogger) LogSearchRejected(ctx context.Context, reason string) {
	sl.logger.InfoContext(ctx, "search rejected",
		slog.String("event_type", "search_rejected"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSearchFailed logs a search that returned an error
func (sl *SearchLogger) LogSearchFailed(ctx context.Context, errorMsg string, durationMs int64) {
	sl.logger.WarnContext(ctx, "search failed",
		slog.String("event_type", "search_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogSearchStale logs a result discarded because a newer search was issued
func (sl *SearchLogger) LogSearchStale(ctx context.Context, sequence, latest uint64) {
	sl.logger.DebugContext(ctx, "search superseded",
		slog.String("event_type", "search_stale"),
		slog.Uint64("sequence", sequence),
		slog.Uint64("latest_sequence", latest),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogPreferenceCorrupt logs a stored list that could not be read
func (sl *SearchLogger) LogPreferenceCorrupt(ctx context.Context, list string, err error) {
	sl.logger.WarnContext(ctx, "preference unreadable, using empty list",
		slog.String("event_type", "preference_corrupt"),
		slog.String("list", list),
		slog.String("error", err.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogPreferenceToggled logs an owned or favorite membership change
func (sl *SearchLogger) LogPreferenceToggled(ctx context.Context, list, cardID string, added bool) {
	action := "removed"
	if added {
		action = "added"
	}
	sl.logger.InfoContext(ctx, "preference toggled",
		slog.String("event_type", "preference_toggled"),
		slog.String("list", list),
		slog.String("card_id", cardID),
		slog.String("action", action),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// getRequestID extracts request ID from context
func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}
