// Package catalog loads the static card, payment and merchant datasets.
package catalog

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/models"
	"cardfinder/internal/validation"
)

//go:embed data/*.json
var embedded embed.FS

const (
	embeddedCards     = "data/cards.json"
	embeddedPayments  = "data/payments.json"
	embeddedMerchants = "data/merchants.json"
)

// Source names where each dataset is read from; an empty path uses the embedded copy
type Source struct {
	CardsPath     string
	PaymentsPath  string
	MerchantsPath string
}

// Embedded reads every dataset from the binary
func Embedded() Source {
	return Source{}
}

// Files reads datasets from disk, falling back to the embedded copy for empty paths
func Files(cards, payments, merchants string) Source {
	return Source{CardsPath: cards, PaymentsPath: payments, MerchantsPath: merchants}
}

type cardsDocument struct {
	Cards []models.Card `json:"cards"`
}

type paymentsDocument struct {
	Payments []models.Card `json:"payments"`
}

// Catalog is the immutable union of cards and payment instruments
type Catalog struct {
	cards      []models.Card
	byID       map[string]int
	categories *models.CategoryTable
	cardCount  int
}

// Load reads, validates and indexes the datasets named by src
func Load(ctx context.Context, src Source) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var cardsDoc cardsDocument
	if err := readDocument(src.CardsPath, embeddedCards, &cardsDoc); err != nil {
		return nil, err
	}
	var paymentsDoc paymentsDocument
	if err := readDocument(src.PaymentsPath, embeddedPayments, &paymentsDoc); err != nil {
		return nil, err
	}
	table := &models.CategoryTable{}
	if err := readDocument(src.MerchantsPath, embeddedMerchants, table); err != nil {
		return nil, err
	}

	c, err := New(cardsDoc.Cards, paymentsDoc.Payments, table)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "catalog loaded",
		"cards", c.cardCount,
		"payments", len(c.cards)-c.cardCount,
		"categories", table.Len(),
		"benefits", c.TotalBenefits(),
	)
	return c, nil
}

func readDocument(path, fallback string, v interface{}) error {
	var (
		data []byte
		err  error
		name = path
	)
	if path == "" {
		name = "embedded:" + fallback
		data, err = embedded.ReadFile(fallback)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return apperrors.New(apperrors.CatalogLoadFailed,
			apperrors.WithDetails(fmt.Sprintf("read %s", name)),
			apperrors.WithCause(err),
		)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return apperrors.New(apperrors.CatalogLoadFailed,
			apperrors.WithDetails(fmt.Sprintf("parse %s", name)),
			apperrors.WithCause(err),
		)
	}
	return nil
}

// New derives instrument kinds, validates every record and indexes the union.
// Cards come first, then payments, each in input order.
func New(cards, payments []models.Card, table *models.CategoryTable) (*Catalog, error) {
	if table == nil {
		table = models.NewCategoryTable()
	}

	all := make([]models.Card, 0, len(cards)+len(payments))
	for _, card := range cards {
		card.Kind = CardKind(card)
		all = append(all, card)
	}
	for _, payment := range payments {
		payment.Kind = PaymentKind(payment)
		all = append(all, payment)
	}

	v := validation.GetValidator()
	var details []string
	for i := range all {
		path := fmt.Sprintf("cards[%d]", i)
		if i >= len(cards) {
			path = fmt.Sprintf("payments[%d]", i-len(cards))
		}
		details = append(details, v.Details(path, all[i])...)
	}
	if len(details) > 0 {
		return nil, apperrors.New(apperrors.CatalogInvalidRecord, apperrors.WithDetails(details...))
	}

	byID := make(map[string]int, len(all))
	var duplicates []string
	for i, card := range all {
		if _, exists := byID[card.ID]; exists {
			duplicates = append(duplicates, card.ID)
			continue
		}
		byID[card.ID] = i
	}
	if len(duplicates) > 0 {
		return nil, apperrors.New(apperrors.CatalogDuplicateCard, apperrors.WithDetails(duplicates...))
	}

	return &Catalog{
		cards:      all,
		byID:       byID,
		categories: table,
		cardCount:  len(cards),
	}, nil
}

// Cards returns every instrument, cards first then payments
func (c *Catalog) Cards() []models.Card {
	out := make([]models.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

func (c *Catalog) Card(id string) (models.Card, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Card{}, false
	}
	return c.cards[i], true
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Categories returns the merchant keyword table
func (c *Catalog) Categories() *models.CategoryTable {
	return c.categories
}

// CategoryNames returns merchant table categories in declaration order
func (c *Catalog) CategoryNames() []string {
	return c.categories.Names()
}

// Banks returns distinct bank or provider names in first-appearance order
func (c *Catalog) Banks() []string {
	seen := make(map[string]struct{})
	var banks []string
	for _, card := range c.cards {
		if _, ok := seen[card.Bank]; ok {
			continue
		}
		seen[card.Bank] = struct{}{}
		banks = append(banks, card.Bank)
	}
	return banks
}

// TotalBenefits counts benefit rows over the whole catalog
func (c *Catalog) TotalBenefits() int {
	total := 0
	for _, card := range c.cards {
		total += len(card.Benefits)
	}
	return total
}

// Len returns the number of instruments
func (c *Catalog) Len() int {
	return len(c.cards)
}
