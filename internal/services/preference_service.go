package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/models"
	"cardfinder/internal/repositories"
)

// DefaultHistorySize is the recent-search cap used when none is configured
const DefaultHistorySize = 5

// PreferenceService stores the owned, favorite and recent-search lists as
// JSON arrays under their logical names.
type PreferenceService struct {
	repo        repositories.PreferenceRepositoryInterface
	catalog     CatalogReader
	logger      SearchLoggerInterface
	metrics     MetricsRecorderInterface
	historySize int
}

// NewPreferenceService creates a preference service; ids unknown to catalog are never written
func NewPreferenceService(
	repo repositories.PreferenceRepositoryInterface,
	catalog CatalogReader,
	logger SearchLoggerInterface,
	metrics MetricsRecorderInterface,
	historySize int,
) PreferenceServiceInterface {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &PreferenceService{
		repo:        repo,
		catalog:     catalog,
		logger:      logger,
		metrics:     metrics,
		historySize: historySize,
	}
}

func (s *PreferenceService) GetOwned(ctx context.Context) []string {
	return s.knownIDs(s.readList(ctx, models.PreferenceOwnedCards))
}

func (s *PreferenceService) SetOwned(ctx context.Context, cardIDs []string) error {
	return s.writeList(ctx, models.PreferenceOwnedCards, s.knownIDs(cardIDs))
}

func (s *PreferenceService) ToggleOwned(ctx context.Context, cardID string) (bool, error) {
	return s.toggle(ctx, models.PreferenceOwnedCards, cardID)
}

func (s *PreferenceService) OwnedSet(ctx context.Context) models.CardIDSet {
	return models.NewCardIDSet(s.GetOwned(ctx)...)
}

func (s *PreferenceService) GetFavorites(ctx context.Context) []string {
	return s.knownIDs(s.readList(ctx, models.PreferenceFavoriteCards))
}

func (s *PreferenceService) SetFavorites(ctx context.Context, cardIDs []string) error {
	return s.writeList(ctx, models.PreferenceFavoriteCards, s.knownIDs(cardIDs))
}

func (s *PreferenceService) ToggleFavorite(ctx context.Context, cardID string) (bool, error) {
	return s.toggle(ctx, models.PreferenceFavoriteCards, cardID)
}

func (s *PreferenceService) FavoriteSet(ctx context.Context) models.CardIDSet {
	return models.NewCardIDSet(s.GetFavorites(ctx)...)
}

// GetRecentSearches returns up to the history size, most recent first
func (s *PreferenceService) GetRecentSearches(ctx context.Context) []string {
	searches := distinct(s.readList(ctx, models.PreferenceRecentSearches))
	if len(searches) > s.historySize {
		searches = searches[:s.historySize]
	}
	return searches
}

// AddSearch moves query to the front of the history; blank input is ignored
func (s *PreferenceService) AddSearch(ctx context.Context, query string) error {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	previous := s.readList(ctx, models.PreferenceRecentSearches)
	updated := distinct(append([]string{query}, previous...))
	if len(updated) > s.historySize {
		updated = updated[:s.historySize]
	}
	return s.writeList(ctx, models.PreferenceRecentSearches, updated)
}

func (s *PreferenceService) ClearSearches(ctx context.Context) error {
	if err := s.repo.Delete(ctx, models.PreferenceRecentSearches); err != nil {
		return apperrors.New(apperrors.StorageWriteFailed,
			apperrors.WithDetails(models.PreferenceRecentSearches),
			apperrors.WithCause(err))
	}
	return nil
}

// toggle flips membership of cardID. Stored entries unknown to the catalog
// are left in place so a double toggle restores the stored list.
func (s *PreferenceService) toggle(ctx context.Context, list, cardID string) (bool, error) {
	if !s.catalog.Has(cardID) {
		return false, nil
	}

	ids := s.readList(ctx, list)
	added := true
	updated := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == cardID {
			added = false
			continue
		}
		updated = append(updated, id)
	}
	if added {
		updated = append(updated, cardID)
	}

	if err := s.writeList(ctx, list, updated); err != nil {
		return !added, err
	}

	action := "removed"
	if added {
		action = "added"
	}
	s.metrics.IncrementCounter("preference_toggle", map[string]string{"list": list, "action": action})
	s.logger.LogPreferenceToggled(ctx, list, cardID, added)
	return added, nil
}

// readList never fails; unreadable values degrade to an empty list
func (s *PreferenceService) readList(ctx context.Context, list string) []string {
	raw, found, err := s.repo.Get(ctx, list)
	if err != nil {
		s.corrupt(ctx, list, err)
		return []string{}
	}
	if !found {
		return []string{}
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		s.corrupt(ctx, list, fmt.Errorf("decode %s: %w", list, err))
		return []string{}
	}
	if values == nil {
		return []string{}
	}
	return values
}

func (s *PreferenceService) writeList(ctx context.Context, list string, values []string) error {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return apperrors.New(apperrors.StorageWriteFailed, apperrors.WithDetails(list), apperrors.WithCause(err))
	}
	if err := s.repo.Put(ctx, list, string(data)); err != nil {
		return apperrors.New(apperrors.StorageWriteFailed, apperrors.WithDetails(list), apperrors.WithCause(err))
	}
	return nil
}

func (s *PreferenceService) corrupt(ctx context.Context, list string, err error) {
	s.logger.LogPreferenceCorrupt(ctx, list, err)
	s.metrics.IncrementCounter("preference_corrupt", map[string]string{"list": list})
}

// knownIDs keeps catalog ids in order, without duplicates
func (s *PreferenceService) knownIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || !s.catalog.Has(id) {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// distinct drops repeated entries, keeping the first occurrence
func distinct(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
