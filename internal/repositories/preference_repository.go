package repositories

import (
	"context"
	"errors"
	"fmt"

	"cardfinder/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceRepository handles database operations for stored preference lists
type PreferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepositoryInterface {
	return &PreferenceRepository{
		db: db,
	}
}

// Get retrieves the raw value stored under name
func (r *PreferenceRepository) Get(ctx context.Context, name string) (string, bool, error) {
	var pref models.Preference
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&pref).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get preference %s: %w", name, err)
	}

	return pref.Value, true, nil
}

// Put inserts or replaces the value stored under name
func (r *PreferenceRepository) Put(ctx context.Context, name, value string) error {
	if name == "" {
		return errors.New("preference name cannot be empty")
	}

	pref := &models.Preference{Name: name, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(pref).Error
	if err != nil {
		return fmt.Errorf("failed to save preference %s: %w", name, err)
	}

	return nil
}

// Delete removes name; deleting a missing name is not an error
func (r *PreferenceRepository) Delete(ctx context.Context, name string) error {
	if err := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Preference{}).Error; err != nil {
		return fmt.Errorf("failed to delete preference %s: %w", name, err)
	}

	return nil
}

// List returns every stored preference ordered by name
func (r *PreferenceRepository) List(ctx context.Context) ([]models.Preference, error) {
	var prefs []models.Preference
	if err := r.db.WithContext(ctx).Order("name").Find(&prefs).Error; err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	return prefs, nil
}
