package models

import "time"

// Logical names of the persisted preference lists
const (
	PreferenceOwnedCards     = "myCards"
	PreferenceFavoriteCards  = "favoriteCards"
	PreferenceRecentSearches = "lastSearches"
)

// Preference is one named list stored as a JSON array of strings
type Preference struct {
	Name      string    `gorm:"primaryKey;type:text" json:"name"`
	Value     string    `gorm:"type:text;not null;default:'[]'" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Preference) TableName() string {
	return "preferences"
}
