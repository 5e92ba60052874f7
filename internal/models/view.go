package models

import "fmt"

// ViewMode selects which personal cards the my-cards view lists
type ViewMode string

const (
	ViewModeAll       ViewMode = "all"
	ViewModeOwned     ViewMode = "owned"
	ViewModeFavorites ViewMode = "favorites"
)

// ParseViewMode defaults to ViewModeAll on empty input
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case "":
		return ViewModeAll, nil
	case ViewModeAll, ViewModeOwned, ViewModeFavorites:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

// SortBy selects the all-cards ordering
type SortBy string

const (
	SortByBank SortBy = "bank"
	SortByName SortBy = "name"
)

// ParseSortBy defaults to SortByBank on empty input
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case "":
		return SortByBank, nil
	case SortByBank, SortByName:
		return SortBy(s), nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// BenefitView is one benefit row of a rendered card
type BenefitView struct {
	// Index is the position of the benefit within Card.Benefits
	Index   int        `json:"index"`
	Benefit Benefit    `json:"benefit"`
	Expired bool       `json:"expired"`
	Rate    RateResult `json:"rate"`
	Display string     `json:"display"`
	Tier    RateTier   `json:"tier"`
}

// CardView is a card ready for rendering
type CardView struct {
	Card       Card          `json:"card"`
	IsOwned    bool          `json:"isOwned"`
	IsFavorite bool          `json:"isFavorite"`
	Benefits   []BenefitView `json:"benefits"`
}

// CategoryStat counts benefits per category over a card list
type CategoryStat struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CatalogStats is the header summary
type CatalogStats struct {
	TotalCards    int `json:"totalCards"`
	TotalBenefits int `json:"totalBenefits"`
	OwnedCount    int `json:"ownedCount"`
	FavoriteCount int `json:"favoriteCount"`
	CategoryCount int `json:"categoryCount"`
}

// AllCardsQuery filters and sorts the full catalog listing
type AllCardsQuery struct {
	Bank   string
	SortBy SortBy
}

// MyCardsQuery selects the personal listing
type MyCardsQuery struct {
	View ViewMode
}

// MyCardsResult is the personal listing with its category breakdown
type MyCardsResult struct {
	View          ViewMode       `json:"view"`
	Cards         []Card         `json:"cards"`
	CategoryStats []CategoryStat `json:"categoryStats"`
}
