package services

import (
	"sort"
	"time"

	"cardfinder/internal/models"
)

// OrderCards returns a copy of cards with owned cards first, then by rate
// descending. With a category the rate is that category's maxRate (0 when the
// card has none), otherwise the card's highest maxRate. Ties keep input order.
func OrderCards(cards []models.Card, owned models.CardIDSet, category string) []models.Card {
	ordered := make([]models.Card, len(cards))
	copy(ordered, cards)

	sort.SliceStable(ordered, func(i, j int) bool {
		iOwned, jOwned := owned.Contains(ordered[i].ID), owned.Contains(ordered[j].ID)
		if iOwned != jOwned {
			return iOwned
		}
		return rankingRate(&ordered[i], category) > rankingRate(&ordered[j], category)
	})
	return ordered
}

func rankingRate(card *models.Card, category string) float64 {
	if category == "" {
		return card.HighestMaxRate()
	}
	if benefit, ok := card.BenefitFor(category); ok {
		return benefit.MaxRate
	}
	return 0
}

// VisibleBenefits returns the indexes into card.Benefits that should be rendered.
// An empty result means the card itself is not rendered.
func VisibleBenefits(card *models.Card, category string, showExpired bool, now time.Time) []int {
	var visible []int
	for i := range card.Benefits {
		b := &card.Benefits[i]
		if category != "" && b.Category != category {
			continue
		}
		if !showExpired && b.IsExpired(now) {
			continue
		}
		visible = append(visible, i)
	}
	return visible
}

// CardViewOptions carries the rendering state for BuildCardViews
type CardViewOptions struct {
	Category    string
	ShowExpired bool
	Owned       models.CardIDSet
	Favorites   models.CardIDSet
	// Checks holds the session condition state per card id
	Checks map[string]models.ConditionChecks
	Now    time.Time
}

// BuildCardViews renders cards in the given order, skipping cards with no visible benefit
func BuildCardViews(cards []models.Card, opts CardViewOptions) []models.CardView {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	views := make([]models.CardView, 0, len(cards))
	for i := range cards {
		card := &cards[i]
		indexes := VisibleBenefits(card, opts.Category, opts.ShowExpired, now)
		if len(indexes) == 0 {
			continue
		}

		checks := opts.Checks[card.ID]
		benefits := make([]models.BenefitView, 0, len(indexes))
		for _, idx := range indexes {
			b := &card.Benefits[idx]
			rate := CalculateRate(b, checks)
			benefits = append(benefits, models.BenefitView{
				Index:   idx,
				Benefit: *b,
				Expired: b.IsExpired(now),
				Rate:    rate,
				Display: FormatRate(rate.EffectiveRate) + "%",
				Tier:    RateTierOf(rate.EffectiveRate),
			})
		}

		views = append(views, models.CardView{
			Card:       *card,
			IsOwned:    opts.Owned.Contains(card.ID),
			IsFavorite: opts.Favorites.Contains(card.ID),
			Benefits:   benefits,
		})
	}
	return views
}
