package catalog

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	apperrors "cardfinder/internal/errors"
	"cardfinder/internal/models"
)

type CatalogTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *CatalogTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.T().TempDir(), name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *CatalogTestSuite) TestLoad_Embedded() {
	c, err := Load(s.ctx, Embedded())
	s.Require().NoError(err)

	s.Equal(14, c.Len())
	s.Equal(22, c.TotalBenefits())
	s.Equal([]string{"餐飲", "網購", "超商", "交通", "海外", "影音串流", "加油", "百貨", "保費"}, c.CategoryNames())

	cards := c.Cards()
	s.Equal("cathay-cube", cards[0].ID)
	s.Equal("icash-pay", cards[len(cards)-1].ID)

	banks := c.Banks()
	s.Len(banks, 13)
	s.Equal("國泰世華", banks[0])

	dining, ok := c.Categories().Get("餐飲")
	s.True(ok)
	s.Contains(dining.Keywords, "Uber Eats")
	s.Contains(dining.Keywords, "外送")
}

func (s *CatalogTestSuite) TestLoad_DerivesInstrumentKinds() {
	c, err := Load(s.ctx, Embedded())
	s.Require().NoError(err)

	expected := map[string]models.InstrumentKind{
		"cathay-cube":   models.InstrumentCredit,
		"esun-pi-debit": models.InstrumentDebit,
		"linepay":       models.InstrumentMobile,
		"jkopay":        models.InstrumentMobile,
		"easycard":      models.InstrumentETicket,
		"ipass":         models.InstrumentETicket,
		"icash-pay":     models.InstrumentETicket,
	}
	for id, kind := range expected {
		card, ok := c.Card(id)
		s.Require().True(ok, id)
		s.Equal(kind, card.Kind, id)
	}
}

func (s *CatalogTestSuite) TestLoad_EmbeddedDefaults() {
	c, err := Load(s.ctx, Embedded())
	s.Require().NoError(err)

	citi, ok := c.Card("citi-cashback")
	s.Require().True(ok)
	s.False(citi.IsActive)
	s.Equal([]string{"花旗現金回饋卡"}, citi.PreviousNames)

	cube, _ := c.Card("cathay-cube")
	s.True(cube.IsActive)
	s.True(c.Has("ipass"))
	s.False(c.Has("missing"))
}

func (s *CatalogTestSuite) TestLoad_FilesOverrideSingleDataset() {
	cards := s.writeFile("cards.json", `{"cards":[{"id":"x","bank":"B","name":"Debit Card","benefits":[]}]}`)

	c, err := Load(s.ctx, Files(cards, "", ""))
	s.Require().NoError(err)

	s.Equal(6, c.Len())
	x, ok := c.Card("x")
	s.Require().True(ok)
	s.Equal(models.InstrumentDebit, x.Kind)
}

func (s *CatalogTestSuite) TestLoad_MissingFile() {
	_, err := Load(s.ctx, Files(filepath.Join(s.T().TempDir(), "nope.json"), "", ""))
	s.Require().Error(err)
	s.True(stderrors.Is(err, apperrors.New(apperrors.CatalogLoadFailed)))
	s.True(stderrors.Is(err, os.ErrNotExist))
}

func (s *CatalogTestSuite) TestLoad_MalformedJSON() {
	merchants := s.writeFile("merchants.json", `["not","an","object"]`)

	_, err := Load(s.ctx, Files("", "", merchants))
	code, ok := apperrors.CodeOf(err)
	s.True(ok)
	s.Equal(apperrors.CatalogLoadFailed, code)
}

func (s *CatalogTestSuite) TestLoad_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := Load(ctx, Embedded())
	s.ErrorIs(err, context.Canceled)
}

func (s *CatalogTestSuite) TestNew_InvalidRecords() {
	cards := []models.Card{
		{ID: "ok", Bank: "B", Name: "N", Benefits: []models.Benefit{{Category: "餐飲", BaseRate: 3, MaxRate: 1}}},
	}
	payments := []models.Card{
		{ID: "p", Bank: " ", Name: "P"},
	}

	_, err := New(cards, payments, nil)
	appErr, ok := apperrors.As(err)
	s.Require().True(ok)
	s.Equal(apperrors.CatalogInvalidRecord, appErr.Code)
	s.Contains(appErr.Details, "cards[0].benefits[0].maxRate: must be greater than or equal to baseRate")
	s.Contains(appErr.Details, "payments[0].bank: must not be blank")
}

func (s *CatalogTestSuite) TestNew_DuplicateIDsAcrossLists() {
	cards := []models.Card{{ID: "dup", Bank: "B", Name: "Card"}}
	payments := []models.Card{{ID: "dup", Bank: "P", Name: "Wallet"}}

	_, err := New(cards, payments, nil)
	appErr, ok := apperrors.As(err)
	s.Require().True(ok)
	s.Equal(apperrors.CatalogDuplicateCard, appErr.Code)
	s.Equal([]string{"dup"}, appErr.Details)
}
