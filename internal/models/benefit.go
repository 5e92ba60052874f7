package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by the catalog
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its parts
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf returns the calendar date of t in t's location
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp truncated to its date
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return DateOf(t), nil
}

// Before reports whether d is strictly earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Benefit is a reward-rate offer tied to a spending category
type Benefit struct {
	Category     string           `json:"category" validate:"required,notblank"`
	BaseRate     float64          `json:"baseRate" validate:"gte=0"`
	MaxRate      float64          `json:"maxRate" validate:"gtefield=BaseRate"`
	Conditions   []Condition      `json:"conditions" validate:"unique=ID,dive"`
	MonthlyLimit *decimal.Decimal `json:"monthlyLimit,omitempty"`
	ValidFrom    *Date            `json:"validFrom,omitempty"`
	ValidTo      *Date            `json:"validTo,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	ReferenceURL string           `json:"referenceUrl,omitempty"`
}

func (b *Benefit) UnmarshalJSON(data []byte) error {
	type alias Benefit
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Conditions == nil {
		raw.Conditions = []Condition{}
	}
	*b = Benefit(raw)
	return nil
}

// IsExpired is true when ValidTo is set and falls on a date before now's date
func (b *Benefit) IsExpired(now time.Time) bool {
	if b.ValidTo == nil {
		return false
	}
	return b.ValidTo.Before(DateOf(now))
}

// RequiredConditions returns the conditions that gate any rate improvement
func (b *Benefit) RequiredConditions() []Condition {
	out := make([]Condition, 0, len(b.Conditions))
	for _, c := range b.Conditions {
		if c.Required {
			out = append(out, c)
		}
	}
	return out
}

// OptionalConditions returns the conditions that scale the rate once eligible
func (b *Benefit) OptionalConditions() []Condition {
	out := make([]Condition, 0, len(b.Conditions))
	for _, c := range b.Conditions {
		if !c.Required {
			out = append(out, c)
		}
	}
	return out
}
