package services

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cardfinder/internal/models"
)

// DefaultLocale is the collation locale used when none is configured
const DefaultLocale = "zh-TW"

// topCategoryCount is how many categories the my-cards breakdown lists
const topCategoryCount = 5

// BrowseService lists the catalog and the personal card selection
type BrowseService struct {
	catalog     CatalogReader
	preferences PreferenceServiceInterface

	// collator keeps scratch buffers, so comparisons are serialised by mu
	mu       sync.Mutex
	collator *collate.Collator
}

// NewBrowseService creates a browse service collating by locale; an unparsable locale falls back to DefaultLocale
func NewBrowseService(catalog CatalogReader, preferences PreferenceServiceInterface, locale string) BrowseServiceInterface {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &BrowseService{
		catalog:     catalog,
		preferences: preferences,
		collator:    collate.New(tag),
	}
}

// AllCards returns the catalog, optionally limited to one bank
func (s *BrowseService) AllCards(query models.AllCardsQuery) []models.Card {
	var cards []models.Card
	for _, card := range s.catalog.Cards() {
		if query.Bank != "" && card.Bank != query.Bank {
			continue
		}
		cards = append(cards, card)
	}

	if query.SortBy == models.SortByName {
		s.sortByName(cards)
	} else {
		s.sortByBankAndName(cards)
	}
	return cards
}

// Banks returns the distinct bank names in collation order
func (s *BrowseService) Banks() []string {
	banks := append([]string(nil), s.catalog.Banks()...)
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.SliceStable(banks, func(i, j int) bool {
		return s.collator.CompareString(banks[i], banks[j]) < 0
	})
	return banks
}

// MyCards lists owned cards, favorites, or their union with a category breakdown
func (s *BrowseService) MyCards(ctx context.Context, query models.MyCardsQuery) *models.MyCardsResult {
	view := query.View
	if view == "" {
		view = models.ViewModeAll
	}
	owned := s.preferences.OwnedSet(ctx)
	favorites := s.preferences.FavoriteSet(ctx)

	cards := []models.Card{}
	for _, card := range s.catalog.Cards() {
		isOwned, isFavorite := owned.Contains(card.ID), favorites.Contains(card.ID)
		switch view {
		case models.ViewModeOwned:
			if !isOwned {
				continue
			}
		case models.ViewModeFavorites:
			if !isFavorite {
				continue
			}
		default:
			if !isOwned && !isFavorite {
				continue
			}
		}
		cards = append(cards, card)
	}
	s.sortByBankAndName(cards)

	return &models.MyCardsResult{
		View:          view,
		Cards:         cards,
		CategoryStats: categoryStats(cards, topCategoryCount),
	}
}

// Stats summarises the catalog and the personal lists
func (s *BrowseService) Stats(ctx context.Context) models.CatalogStats {
	cards := s.catalog.Cards()
	return models.CatalogStats{
		TotalCards:    len(cards),
		TotalBenefits: s.catalog.TotalBenefits(),
		OwnedCount:    len(s.preferences.GetOwned(ctx)),
		FavoriteCount: len(s.preferences.GetFavorites(ctx)),
		CategoryCount: s.catalog.Categories().Len(),
	}
}

func (s *BrowseService) sortByBankAndName(cards []models.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.SliceStable(cards, func(i, j int) bool {
		if cmp := s.collator.CompareString(cards[i].Bank, cards[j].Bank); cmp != 0 {
			return cmp < 0
		}
		return s.collator.CompareString(cards[i].Name, cards[j].Name) < 0
	})
}

func (s *BrowseService) sortByName(cards []models.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.SliceStable(cards, func(i, j int) bool {
		return s.collator.CompareString(cards[i].Name, cards[j].Name) < 0
	})
}

// categoryStats counts benefits per category, most frequent first; ties keep first appearance
func categoryStats(cards []models.Card, limit int) []models.CategoryStat {
	stats := []models.CategoryStat{}
	position := make(map[string]int)
	for _, card := range cards {
		for _, b := range card.Benefits {
			if i, ok := position[b.Category]; ok {
				stats[i].Count++
				continue
			}
			position[b.Category] = len(stats)
			stats = append(stats, models.CategoryStat{Category: b.Category, Count: 1})
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	if len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}
