package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Storage StorageConfig
	Search  SearchConfig
}

type AppConfig struct {
	Environment string
	Locale      string
	LogLevel    string
	LogFormat   string
}

// CatalogConfig holds optional overrides for the embedded dataset; empty paths use it
type CatalogConfig struct {
	CardsPath     string
	PaymentsPath  string
	MerchantsPath string
}

type StorageConfig struct {
	Path              string
	MigrationsEnabled bool
	MaxOpenConns      int
	ConnectRetries    int
	RetryInterval     time.Duration
}

type SearchConfig struct {
	MerchantThreshold float64
	CardThreshold     float64
	LocationDistance  int
	ResultDelay       time.Duration
	HistorySize       int
}

// LoadEnv reads a .env file into the process environment when one exists
func LoadEnv(paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Locale:      getEnv("APP_LOCALE", "zh-TW"),
			LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
			LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Catalog: CatalogConfig{
			CardsPath:     getEnv("CATALOG_CARDS_PATH", ""),
			PaymentsPath:  getEnv("CATALOG_PAYMENTS_PATH", ""),
			MerchantsPath: getEnv("CATALOG_MERCHANTS_PATH", ""),
		},
		Storage: StorageConfig{
			Path:              getEnv("STORAGE_PATH", "data/cardfinder.db"),
			MigrationsEnabled: getBoolEnv("STORAGE_MIGRATIONS_ENABLED", true),
			MaxOpenConns:      getIntEnv("STORAGE_MAX_OPEN_CONNS", 1),
			ConnectRetries:    getIntEnv("STORAGE_CONNECT_RETRIES", 5),
			RetryInterval:     getDurationEnv("STORAGE_RETRY_INTERVAL", 200*time.Millisecond),
		},
		Search: SearchConfig{
			MerchantThreshold: getFloatEnv("SEARCH_MERCHANT_THRESHOLD", 0.3),
			CardThreshold:     getFloatEnv("SEARCH_CARD_THRESHOLD", 0.4),
			LocationDistance:  getIntEnv("SEARCH_LOCATION_DISTANCE", 100),
			ResultDelay:       getDurationEnv("SEARCH_RESULT_DELAY", 300*time.Millisecond),
			HistorySize:       getIntEnv("SEARCH_HISTORY_SIZE", 5),
		},
	}
}

// Validate rejects settings the search pipeline cannot work with
func (c *Config) Validate() error {
	if c.Search.MerchantThreshold < 0 || c.Search.MerchantThreshold > 1 {
		return fmt.Errorf("SEARCH_MERCHANT_THRESHOLD must be within [0,1], got %v", c.Search.MerchantThreshold)
	}
	if c.Search.CardThreshold < 0 || c.Search.CardThreshold > 1 {
		return fmt.Errorf("SEARCH_CARD_THRESHOLD must be within [0,1], got %v", c.Search.CardThreshold)
	}
	if c.Search.HistorySize <= 0 {
		return fmt.Errorf("SEARCH_HISTORY_SIZE must be positive, got %d", c.Search.HistorySize)
	}
	if c.Search.ResultDelay < 0 {
		return fmt.Errorf("SEARCH_RESULT_DELAY must not be negative, got %s", c.Search.ResultDelay)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH must not be empty")
	}
	switch c.App.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.App.LogFormat)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
