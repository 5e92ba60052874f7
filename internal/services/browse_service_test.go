package services

import (
	"context"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"cardfinder/internal/models"
	"cardfinder/internal/services/service_mocks"
)

type BrowseServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	preferences *service_mocks.MockPreferenceServiceInterface
	service     BrowseServiceInterface
	ctx         context.Context
}

func (s *BrowseServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.preferences = service_mocks.NewMockPreferenceServiceInterface(s.ctrl)
	s.ctx = context.Background()

	cards := []models.Card{
		newCard("g2", "Gamma", "zeta", newBenefit("網購", 1, 2), newBenefit("餐飲", 1, 2)),
		newCard("b1", "Beta", "Omega", newBenefit("餐飲", 1, 3)),
		newCard("a1", "alpha", "Kappa", newBenefit("超商", 1, 2), newBenefit("餐飲", 1, 2)),
		newCard("g1", "Gamma", "Alpha", newBenefit("網購", 1, 5), newBenefit("加油", 1, 2)),
	}
	payments := []models.Card{
		newCard("p1", "beta", "Pay", newBenefit("交通", 0, 10), newBenefit("百貨", 0, 1), newBenefit("保費", 0, 1)),
	}
	table := newTable(category("網購"), category("餐飲"), category("超商"))

	s.service = NewBrowseService(mustCatalog(s.T(), cards, payments, table), s.preferences, "en")
}

func (s *BrowseServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBrowseServiceSuite(t *testing.T) {
	suite.Run(t, new(BrowseServiceTestSuite))
}

func (s *BrowseServiceTestSuite) TestAllCards_SortByBankThenName() {
	cards := s.service.AllCards(models.AllCardsQuery{SortBy: models.SortByBank})

	s.Equal([]string{"a1", "p1", "b1", "g1", "g2"}, ids(cards))
}

func (s *BrowseServiceTestSuite) TestAllCards_SortByName() {
	cards := s.service.AllCards(models.AllCardsQuery{SortBy: models.SortByName})

	s.Equal([]string{"g1", "a1", "b1", "p1", "g2"}, ids(cards))
}

func (s *BrowseServiceTestSuite) TestAllCards_BankFilterIsExact() {
	s.Equal([]string{"g1", "g2"}, ids(s.service.AllCards(models.AllCardsQuery{Bank: "Gamma"})))
	s.Equal([]string{"b1"}, ids(s.service.AllCards(models.AllCardsQuery{Bank: "Beta"})))
	s.Empty(s.service.AllCards(models.AllCardsQuery{Bank: "gamma"}))
}

func (s *BrowseServiceTestSuite) TestBanks_Collated() {
	s.Equal([]string{"alpha", "beta", "Beta", "Gamma"}, s.service.Banks())
}

func (s *BrowseServiceTestSuite) TestCollatorSharedAcrossCalls() {
	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.service.AllCards(models.AllCardsQuery{SortBy: models.SortByName})
			results[i] = s.service.Banks()
		}(i)
	}
	wg.Wait()

	for _, banks := range results {
		s.Equal([]string{"alpha", "beta", "Beta", "Gamma"}, banks)
	}
	s.Equal([]string{"a1", "p1", "b1", "g1", "g2"}, ids(s.service.AllCards(models.AllCardsQuery{})))
}

func (s *BrowseServiceTestSuite) expectLists(owned, favorites []string) {
	s.preferences.EXPECT().OwnedSet(s.ctx).Return(models.NewCardIDSet(owned...)).AnyTimes()
	s.preferences.EXPECT().FavoriteSet(s.ctx).Return(models.NewCardIDSet(favorites...)).AnyTimes()
	s.preferences.EXPECT().GetOwned(s.ctx).Return(owned).AnyTimes()
	s.preferences.EXPECT().GetFavorites(s.ctx).Return(favorites).AnyTimes()
}

func (s *BrowseServiceTestSuite) TestMyCards_ViewModes() {
	s.expectLists([]string{"g2", "a1"}, []string{"a1", "p1"})

	all := s.service.MyCards(s.ctx, models.MyCardsQuery{})
	s.Equal(models.ViewModeAll, all.View)
	s.Equal([]string{"a1", "p1", "g2"}, ids(all.Cards))

	owned := s.service.MyCards(s.ctx, models.MyCardsQuery{View: models.ViewModeOwned})
	s.Equal([]string{"a1", "g2"}, ids(owned.Cards))

	favorites := s.service.MyCards(s.ctx, models.MyCardsQuery{View: models.ViewModeFavorites})
	s.Equal([]string{"a1", "p1"}, ids(favorites.Cards))
}

func (s *BrowseServiceTestSuite) TestMyCards_CategoryStatsTopFive() {
	s.expectLists([]string{"g2", "a1", "g1", "p1"}, nil)

	result := s.service.MyCards(s.ctx, models.MyCardsQuery{View: models.ViewModeOwned})

	// listing order is a1, p1, g1, g2
	s.Equal([]models.CategoryStat{
		{Category: "餐飲", Count: 2},
		{Category: "網購", Count: 2},
		{Category: "超商", Count: 1},
		{Category: "交通", Count: 1},
		{Category: "百貨", Count: 1},
	}, result.CategoryStats)
}

func (s *BrowseServiceTestSuite) TestMyCards_Empty() {
	s.expectLists(nil, nil)

	result := s.service.MyCards(s.ctx, models.MyCardsQuery{})
	s.Empty(result.Cards)
	s.Empty(result.CategoryStats)
}

func (s *BrowseServiceTestSuite) TestStats() {
	s.expectLists([]string{"a1"}, []string{"a1", "b1"})

	s.Equal(models.CatalogStats{
		TotalCards:    5,
		TotalBenefits: 10,
		OwnedCount:    1,
		FavoriteCount: 2,
		CategoryCount: 3,
	}, s.service.Stats(s.ctx))
}

func (s *BrowseServiceTestSuite) TestInvalidLocaleFallsBack() {
	service := NewBrowseService(embeddedCatalog(s.T()), s.preferences, "not a locale!")
	s.Len(service.Banks(), 13)
}
