package repositories

import (
	"context"

	"cardfinder/internal/models"
)

// PreferenceRepositoryInterface defines the contract for the named-list key-value store
type PreferenceRepositoryInterface interface {
	// Get returns the raw stored value and whether the name exists
	Get(ctx context.Context, name string) (string, bool, error)
	Put(ctx context.Context, name, value string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]models.Preference, error)
}
