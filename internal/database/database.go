package database

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cardfinder/internal/config"
	"cardfinder/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

type DB struct {
	*gorm.DB
	config *config.StorageConfig
}

func New(cfg *config.StorageConfig, logLevel logger.LogLevel) (*DB, error) {
	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn(cfg.Path)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 || cfg.Path == MemoryPath {
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxOpen)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return path
	}
	return path + "?_busy_timeout=5000"
}

// GormLogLevel keeps gorm quiet unless debugging in development
func GormLogLevel(cfg *config.Config) logger.LogLevel {
	if cfg.IsDevelopment() && cfg.App.LogLevel == "debug" {
		return logger.Info
	}
	return logger.Silent
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.Preference{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Initialize opens the preference store and brings its schema up to date
func Initialize(cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Storage, GormLogLevel(cfg))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB, &cfg.Storage); err != nil {
		if !errors.Is(err, ErrMigrationsDisabled) {
			slog.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)
		}

		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	slog.Debug("database initialized", "path", cfg.Storage.Path)

	return db, nil
}
