package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"cardfinder/internal/catalog"
	"cardfinder/internal/config"
	"cardfinder/internal/models"
)

func required(id string) models.Condition {
	return models.Condition{ID: id, Type: models.ConditionTypeRegistration, Description: id, Required: true}
}

func optional(id string) models.Condition {
	return models.Condition{ID: id, Type: models.ConditionTypeOther, Description: id}
}

func newBenefit(category string, base, max float64, conditions ...models.Condition) models.Benefit {
	if conditions == nil {
		conditions = []models.Condition{}
	}
	return models.Benefit{Category: category, BaseRate: base, MaxRate: max, Conditions: conditions}
}

func newCard(id, bank, name string, benefits ...models.Benefit) models.Card {
	if benefits == nil {
		benefits = []models.Benefit{}
	}
	return models.Card{
		ID:            id,
		Bank:          bank,
		Name:          name,
		Benefits:      benefits,
		PreviousNames: []string{},
		IsActive:      true,
	}
}

func newTable(categories ...models.MerchantCategory) *models.CategoryTable {
	return models.NewCategoryTable(categories...)
}

func category(name string, keywords ...string) models.MerchantCategory {
	return models.MerchantCategory{Name: name, Keywords: keywords}
}

func mustCatalog(t *testing.T, cards, payments []models.Card, table *models.CategoryTable) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(cards, payments, table)
	require.NoError(t, err)
	return c
}

func embeddedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Load(context.Background(), catalog.Embedded())
	require.NoError(t, err)
	return c
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		MerchantThreshold: 0.3,
		CardThreshold:     0.4,
		LocationDistance:  100,
		HistorySize:       5,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
