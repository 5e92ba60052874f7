package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"cardfinder/internal/catalog"
	"cardfinder/internal/config"
	"cardfinder/internal/database"
	"cardfinder/internal/repositories"
	"cardfinder/internal/services"
)

type AppTestSuite struct {
	suite.Suite
	stdin *strings.Reader
	app   *App
	ctx   context.Context
}

func (s *AppTestSuite) SetupTest() {
	s.ctx = context.Background()

	cat, err := catalog.Load(s.ctx, catalog.Embedded())
	s.Require().NoError(err)

	db := database.SetupTestDB(s.T())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(reg)
	events := services.NewSearchLogger(logger)

	cfg := config.SearchConfig{MerchantThreshold: 0.3, CardThreshold: 0.4, LocationDistance: 100, HistorySize: 5}
	prefs := services.NewPreferenceService(repositories.NewPreferenceRepository(db.DB), cat, events, metrics, cfg.HistorySize)
	dispatcher := services.NewSearchDispatcher(services.NewSearchService(cat, cfg), prefs, metrics, events, cfg)

	s.stdin = strings.NewReader("")
	s.app = New(Options{
		Dispatcher:  dispatcher,
		Browse:      services.NewBrowseService(cat, prefs, "zh-TW"),
		Preferences: prefs,
		Catalog:     cat,
		Gatherer:    reg,
		Logger:      logger,
		Stdin:       s.stdin,
		Now: func() time.Time {
			return time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
		},
	})
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := s.app.Run(s.ctx, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func (s *AppTestSuite) assertOrder(out string, parts ...string) {
	last := -1
	for _, p := range parts {
		idx := strings.Index(out, p)
		s.Require().GreaterOrEqual(idx, 0, "missing %q in output", p)
		s.Greater(idx, last, "%q out of order", p)
		last = idx
	}
}

func (s *AppTestSuite) TestNoArgs_PrintsUsage() {
	code, _, stderr := s.run()
	s.Equal(2, code)
	s.Contains(stderr, "usage: cardfinder")
}

func (s *AppTestSuite) TestUnknownCommand() {
	code, _, stderr := s.run("frobnicate")
	s.Equal(2, code)
	s.Contains(stderr, "error [SYSTEM_004]")
	s.Contains(stderr, `unknown command "frobnicate"`)
}

func (s *AppTestSuite) TestSearch_MerchantOrdersByCategoryRate() {
	code, stdout, stderr := s.run("search", "星巴克")
	s.Equal(0, code, stderr)

	s.Contains(stdout, `"星巴克" looks like 餐飲: 3 card(s)`)
	s.assertOrder(stdout, "滙豐銀行 Live+現金回饋卡 [信用卡]", "國泰世華 CUBE卡", "街口支付 街口支付 [行動支付]")
	s.Contains(stdout, "#1 餐飲 1.9% back (max 5.9%)")
	s.Contains(stdout, "#2 餐飲 0.3% back (max 3.0%)")
	s.NotContains(stdout, "#1 網購")
}

func (s *AppTestSuite) TestSearch_OwnedCardsFirstAndHistory() {
	code, stdout, _ := s.run("own", "cathay-cube")
	s.Equal(0, code)
	s.Contains(stdout, "Added 國泰世華 CUBE卡 to owned cards.")

	code, stdout, _ = s.run("search", "星巴克")
	s.Equal(0, code)
	s.assertOrder(stdout, "國泰世華 CUBE卡 [信用卡] (owned)", "滙豐銀行", "街口支付")

	_, _, _ = s.run("search", "外送")
	code, stdout, _ = s.run("history")
	s.Equal(0, code)
	s.Equal("1. 外送\n2. 星巴克\n", stdout)

	code, stdout, _ = s.run("history", "-clear")
	s.Equal(0, code)
	s.Contains(stdout, "cleared")
	_, stdout, _ = s.run("history")
	s.Equal("No recent searches.\n", stdout)
}

func (s *AppTestSuite) TestSearch_BlankIsUsageError() {
	code, _, stderr := s.run("search", "  ")
	s.Equal(2, code)
	s.Contains(stderr, "error [SEARCH_001]")

	_, stdout, _ := s.run("history")
	s.Equal("No recent searches.\n", stdout)
}

func (s *AppTestSuite) TestSearch_InvalidKinds() {
	code, _, stderr := s.run("search", "-kinds", "credit,bogus", "外送")
	s.Equal(2, code)
	s.Contains(stderr, "error [SEARCH_003]")
}

func (s *AppTestSuite) TestSearch_KindFilter() {
	code, stdout, _ := s.run("search", "-kinds", "mobile", "星巴克")
	s.Equal(0, code)
	s.Contains(stdout, "街口支付")
	s.NotContains(stdout, "滙豐銀行")
}

func (s *AppTestSuite) TestSearch_NoMatch() {
	code, stdout, _ := s.run("search", "zzzzqqqq")
	s.Equal(0, code)
	s.Contains(stdout, `No cards found for "zzzzqqqq".`)
}

func (s *AppTestSuite) TestCards_ExpiredBenefitsHiddenByDefault() {
	code, stdout, _ := s.run("cards", "-bank", "滙豐銀行")
	s.Equal(0, code)
	s.Contains(stdout, "#1 餐飲")
	s.NotContains(stdout, "百貨")

	_, stdout, _ = s.run("cards", "-bank", "滙豐銀行", "-expired")
	s.Contains(stdout, "#2 百貨 4.9% back (max 4.9%) (expired)")
	s.Contains(stdout, "valid: 2024-01-01 ~ 2024-12-31")
}

func (s *AppTestSuite) TestCards_BankFilterAndKindLabel() {
	code, stdout, _ := s.run("cards", "-bank", "玉山銀行", "-sort", "name")
	s.Equal(0, code)
	s.Contains(stdout, "Unicard [信用卡]")
	s.Contains(stdout, "Pi拍錢包簽帳金融卡 [簽帳金融卡]")
	s.NotContains(stdout, "國泰世華")
}

func (s *AppTestSuite) TestCards_Banks() {
	code, stdout, _ := s.run("cards", "-banks")
	s.Equal(0, code)
	s.Len(strings.Split(strings.TrimSpace(stdout), "\n"), 13)
}

func (s *AppTestSuite) TestCards_InvalidSort() {
	code, _, stderr := s.run("cards", "-sort", "rate")
	s.Equal(2, code)
	s.Contains(stderr, `unknown sort order "rate"`)
}

func (s *AppTestSuite) TestCards_DiscontinuedTag() {
	_, stdout, _ := s.run("cards", "-bank", "花旗銀行")
	s.Contains(stdout, "(discontinued)")
}

func (s *AppTestSuite) TestMine() {
	_, stdout, _ := s.run("mine")
	s.Contains(stdout, "No saved cards yet.")

	s.run("own", "esun-unicard")
	s.run("fav", "fubon-j")

	code, stdout, _ := s.run("mine", "-view", "owned")
	s.Equal(0, code)
	s.Contains(stdout, "top categories: 網購 1, 超商 1")
	s.Contains(stdout, "(owned)")
	s.NotContains(stdout, "J卡")

	_, stdout, _ = s.run("mine")
	s.Contains(stdout, "J卡 [信用卡] (favorite)")

	code, _, stderr := s.run("mine", "-view", "shared")
	s.Equal(2, code)
	s.Contains(stderr, "SYSTEM_004")
}

func (s *AppTestSuite) TestCards_OwnedFirstThenHighestRate() {
	_, stdout, _ := s.run("cards")
	s.True(strings.HasPrefix(stdout, "悠遊卡公司 悠遊卡 [電子票證]"), stdout)

	s.run("own", "linepay")
	code, stdout, _ := s.run("cards")
	s.Equal(0, code)
	s.True(strings.HasPrefix(stdout, "LINE Pay LINE Pay [行動支付] (owned)"), stdout)
	s.assertOrder(stdout, "LINE Pay LINE Pay [行動支付] (owned)", "悠遊卡公司 悠遊卡", "一卡通票證 一卡通")
}

func (s *AppTestSuite) TestMine_OwnedFirst() {
	s.run("own", "linepay")
	s.run("fav", "cathay-cube")

	code, stdout, _ := s.run("mine")
	s.Equal(0, code)
	s.assertOrder(stdout, "LINE Pay LINE Pay [行動支付] (owned)", "國泰世華 CUBE卡 [信用卡] (favorite)")
}

func (s *AppTestSuite) TestToggle_UnknownCard() {
	code, _, stderr := s.run("fav", "nope")
	s.Equal(1, code)
	s.Contains(stderr, "error [CARD_001]: Card not found")
	s.Contains(stderr, "  - id: nope")
}

func (s *AppTestSuite) TestToggle_TwiceRemoves() {
	s.run("fav", "linepay")
	_, stdout, _ := s.run("fav", "linepay")
	s.Contains(stdout, "Removed LINE Pay LINE Pay from favorites.")
}

func (s *AppTestSuite) TestRate() {
	testCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "nothing met", args: nil, expected: "rate: 1.0% (base 1.0%, max 4.5%, base)"},
		{name: "only optional", args: []string{"autopay"}, expected: "rate: 1.0%"},
		{name: "required met", args: []string{"plan"}, expected: "rate: 2.2%"},
		{name: "required and one bonus", args: []string{"plan", "autopay"}, expected: "rate: 3.3% (base 1.0%, max 4.5%, moderate)"},
		{name: "all met", args: []string{"plan", "autopay", "ebill"}, expected: "rate: 4.5%"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			code, stdout, stderr := s.run(append([]string{"rate", "esun-unicard", "1"}, tc.args...)...)
			s.Equal(0, code, stderr)
			s.Contains(stdout, tc.expected)
		})
	}
}

func (s *AppTestSuite) TestRate_Errors() {
	code, _, stderr := s.run("rate", "esun-unicard", "9")
	s.Equal(1, code)
	s.Contains(stderr, "CARD_002")

	code, _, stderr = s.run("rate", "esun-unicard", "1", "bogus")
	s.Equal(1, code)
	s.Contains(stderr, "CARD_003")

	code, _, _ = s.run("rate", "esun-unicard")
	s.Equal(2, code)
}

func (s *AppTestSuite) TestStats() {
	s.run("own", "jkopay")
	code, stdout, _ := s.run("stats")
	s.Equal(0, code)
	s.Contains(stdout, "cards:      14")
	s.Contains(stdout, "benefits:   22")
	s.Contains(stdout, "owned:      1")
	s.Contains(stdout, "favorites:  0")
}

func (s *AppTestSuite) TestShell() {
	s.stdin.Reset(strings.Join([]string{
		"search 星巴克",
		"check hsbc-live register",
		"check esun-unicard plan",
		"check hsbc-live nope",
		"kinds mobile",
		"kinds bogus",
		"expired",
		"metrics",
		"history",
		"dance",
		"quit",
		"search never-reached",
	}, "\n"))

	code, stdout, stderr := s.run("shell")
	s.Equal(0, code)

	s.Contains(stdout, `"星巴克" looks like 餐飲: 3 card(s)`)
	s.Contains(stdout, "#1 餐飲 3.9% back (max 5.9%)")
	s.Contains(stdout, "required 1/1, bonus 0/1")
	s.Contains(stdout, "kinds: mobile")
	s.Contains(stdout, "expired benefits: on")
	s.Contains(stdout, `search_requests_total{status="success"} 1`)
	s.Contains(stdout, "1. 星巴克")
	s.NotContains(stdout, "never-reached")

	s.Contains(stderr, "not in the current listing: esun-unicard")
	s.Contains(stderr, "CARD_003")
	s.Contains(stderr, "SEARCH_003")
	s.Contains(stderr, `unknown shell command "dance"`)
}

func (s *AppTestSuite) TestShell_ChecksResetOnNewSearch() {
	s.stdin.Reset("search 星巴克\ncheck hsbc-live register\nsearch 星巴克\n")

	code, stdout, _ := s.run("shell")
	s.Equal(0, code)
	s.Equal(1, strings.Count(stdout, "#1 餐飲 3.9% back"))
	s.Equal(2, strings.Count(stdout, "#1 餐飲 1.9% back"))
}

func TestRun_RecoversFromPanic(t *testing.T) {
	app := New(Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	var stdout, stderr bytes.Buffer
	code := app.Run(context.Background(), []string{"stats"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "error [SYSTEM_001]: An unexpected error occurred")
}
