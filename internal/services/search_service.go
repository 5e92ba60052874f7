package services

import (
	"context"
	"strings"

	"cardfinder/internal/config"
	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/fuzzy"
	"cardfinder/internal/models"
)

var (
	ErrInvalidSearchQuery = apperrors.New(apperrors.SearchEmptyQuery)
)

// SearchService resolves free-text queries against merchant keywords,
// card names and bank names.
type SearchService struct {
	catalog  CatalogReader
	keywords *fuzzy.Index[models.CategoryKeyword]
	cards    *fuzzy.Index[models.Card]
}

// NewSearchService indexes the catalog once; the catalog must not change afterwards
func NewSearchService(catalog CatalogReader, cfg config.SearchConfig) SearchServiceInterface {
	keywordOpts := fuzzy.Options{Threshold: cfg.MerchantThreshold, Distance: cfg.LocationDistance}
	cardOpts := fuzzy.Options{Threshold: cfg.CardThreshold, Distance: cfg.LocationDistance}

	return &SearchService{
		catalog: catalog,
		keywords: fuzzy.NewIndex(catalog.Categories().Keywords(), func(k models.CategoryKeyword) []string {
			return []string{k.Keyword}
		}, keywordOpts),
		cards: fuzzy.NewIndex(catalog.Cards(), func(c models.Card) []string {
			return []string{c.Name, c.Bank}
		}, cardOpts),
	}
}

func (s *SearchService) Search(ctx context.Context, query string, opts models.SearchOptions) (*models.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.New(apperrors.SystemCancelled, apperrors.WithCause(err))
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidSearchQuery
	}

	result := &models.SearchResult{
		Query:             query,
		MatchedCategories: []string{},
	}
	found := newCardAccumulator()

	// merchant keywords, best match first
	matched := make(map[string]struct{})
	for _, r := range s.keywords.Search(query) {
		category := r.Item.Category
		if _, ok := matched[category]; ok {
			continue
		}
		matched[category] = struct{}{}
		result.MatchedCategories = append(result.MatchedCategories, category)
	}
	if len(result.MatchedCategories) > 0 {
		result.DetectedCategory = result.MatchedCategories[0]
		for _, card := range s.catalog.Cards() {
			if card.HasAnyCategory(matched) {
				found.add(card)
			}
		}
	}

	// card and bank names; a direct hit is more specific than a category guess
	direct := s.cards.Search(query)
	for _, r := range direct {
		found.add(r.Item)
	}
	result.DirectMatches = len(direct)
	if len(direct) > 0 {
		result.DetectedCategory = ""
	}

	// exact category name, only when nothing fuzzy matched
	if found.size() == 0 && s.catalog.Categories().Has(query) {
		for _, card := range s.catalog.Cards() {
			if card.HasCategory(query) {
				found.add(card)
			}
		}
		if found.size() > 0 {
			result.DetectedCategory = query
		}
	}

	cards := found.cards()
	if opts.Kinds.IsRestrictive() {
		filtered := cards[:0]
		for _, card := range cards {
			if opts.Kinds.Contains(card.Kind) {
				filtered = append(filtered, card)
			}
		}
		cards = filtered
	}
	result.Cards = cards

	return result, nil
}

// cardAccumulator de-duplicates cards by id keeping first-seen position
type cardAccumulator struct {
	order []string
	byID  map[string]models.Card
}

func newCardAccumulator() *cardAccumulator {
	return &cardAccumulator{byID: make(map[string]models.Card)}
}

func (a *cardAccumulator) add(card models.Card) {
	if _, ok := a.byID[card.ID]; !ok {
		a.order = append(a.order, card.ID)
	}
	a.byID[card.ID] = card
}

func (a *cardAccumulator) size() int {
	return len(a.order)
}

func (a *cardAccumulator) cards() []models.Card {
	out := make([]models.Card, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.byID[id])
	}
	return out
}
