package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg := Load()

	s.Equal("development", cfg.App.Environment)
	s.Equal("zh-TW", cfg.App.Locale)
	s.Equal("data/cardfinder.db", cfg.Storage.Path)
	s.True(cfg.Storage.MigrationsEnabled)
	s.Equal(0.3, cfg.Search.MerchantThreshold)
	s.Equal(0.4, cfg.Search.CardThreshold)
	s.Equal(100, cfg.Search.LocationDistance)
	s.Equal(300*time.Millisecond, cfg.Search.ResultDelay)
	s.Equal(5, cfg.Search.HistorySize)
	s.True(cfg.IsDevelopment())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoad_FromEnvironment() {
	s.T().Setenv("APP_ENV", "production")
	s.T().Setenv("LOG_FORMAT", "JSON")
	s.T().Setenv("SEARCH_MERCHANT_THRESHOLD", "0.25")
	s.T().Setenv("SEARCH_RESULT_DELAY", "0s")
	s.T().Setenv("SEARCH_HISTORY_SIZE", "8")
	s.T().Setenv("STORAGE_MIGRATIONS_ENABLED", "false")
	s.T().Setenv("STORAGE_CONNECT_RETRIES", "not-a-number")

	cfg := Load()

	s.True(cfg.IsProduction())
	s.Equal("json", cfg.App.LogFormat)
	s.Equal(0.25, cfg.Search.MerchantThreshold)
	s.Equal(time.Duration(0), cfg.Search.ResultDelay)
	s.Equal(8, cfg.Search.HistorySize)
	s.False(cfg.Storage.MigrationsEnabled)
	s.Equal(5, cfg.Storage.ConnectRetries)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestValidate_Rejects() {
	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "merchant threshold above one", mutate: func(c *Config) { c.Search.MerchantThreshold = 1.5 }},
		{name: "negative card threshold", mutate: func(c *Config) { c.Search.CardThreshold = -0.1 }},
		{name: "zero history", mutate: func(c *Config) { c.Search.HistorySize = 0 }},
		{name: "negative delay", mutate: func(c *Config) { c.Search.ResultDelay = -time.Second }},
		{name: "empty storage path", mutate: func(c *Config) { c.Storage.Path = "" }},
		{name: "unknown log format", mutate: func(c *Config) { c.App.LogFormat = "xml" }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := Load()
			tc.mutate(cfg)
			s.Error(cfg.Validate())
		})
	}
}

func (s *ConfigTestSuite) TestLoadEnv_ReadsDotEnvFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, ".env")
	s.Require().NoError(os.WriteFile(path, []byte("CARDFINDER_TEST_LOCALE=en-US\n"), 0o600))
	s.T().Cleanup(func() { _ = os.Unsetenv("CARDFINDER_TEST_LOCALE") })

	LoadEnv(path)

	s.Equal("en-US", os.Getenv("CARDFINDER_TEST_LOCALE"))
}

func (s *ConfigTestSuite) TestLoadEnv_MissingFileIsNotFatal() {
	s.NotPanics(func() { LoadEnv(filepath.Join(s.T().TempDir(), "missing.env")) })
}
