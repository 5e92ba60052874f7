package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// InstrumentKind is the kind of payment instrument a catalog entry represents
type InstrumentKind string

const (
	InstrumentCredit  InstrumentKind = "credit"
	InstrumentDebit   InstrumentKind = "debit"
	InstrumentMobile  InstrumentKind = "mobile"
	InstrumentETicket InstrumentKind = "eticket"
)

// AllInstrumentKinds returns every instrument kind in display order
func AllInstrumentKinds() []InstrumentKind {
	return []InstrumentKind{InstrumentCredit, InstrumentDebit, InstrumentMobile, InstrumentETicket}
}

// IsValidInstrumentKind checks if a kind string is known
func IsValidInstrumentKind(kind string) bool {
	for _, k := range AllInstrumentKinds() {
		if InstrumentKind(kind) == k {
			return true
		}
	}
	return false
}

// ParseInstrumentKind parses a kind case-insensitively
func ParseInstrumentKind(s string) (InstrumentKind, error) {
	kind := InstrumentKind(strings.ToLower(strings.TrimSpace(s)))
	if !IsValidInstrumentKind(string(kind)) {
		return "", fmt.Errorf("unknown instrument kind %q", s)
	}
	return kind, nil
}

// Label returns the badge text shown next to a card
func (k InstrumentKind) Label() string {
	switch k {
	case InstrumentCredit:
		return "信用卡"
	case InstrumentDebit:
		return "簽帳金融卡"
	case InstrumentMobile:
		return "行動支付"
	case InstrumentETicket:
		return "電子票證"
	default:
		return string(k)
	}
}

// InstrumentKindSet is a filter over instrument kinds
type InstrumentKindSet map[InstrumentKind]struct{}

// NewInstrumentKindSet builds a set from kinds
func NewInstrumentKindSet(kinds ...InstrumentKind) InstrumentKindSet {
	set := make(InstrumentKindSet, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return set
}

// ParseInstrumentKinds parses a comma separated list such as "credit,debit"
func ParseInstrumentKinds(csv string) (InstrumentKindSet, error) {
	set := InstrumentKindSet{}
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kind, err := ParseInstrumentKind(part)
		if err != nil {
			return nil, err
		}
		set[kind] = struct{}{}
	}
	return set, nil
}

// Contains reports whether kind is in the set
func (s InstrumentKindSet) Contains(kind InstrumentKind) bool {
	_, ok := s[kind]
	return ok
}

// IsRestrictive is true for a non-empty set that leaves out at least one kind.
// Empty and complete sets do not filter anything.
func (s InstrumentKindSet) IsRestrictive() bool {
	if len(s) == 0 {
		return false
	}
	for _, k := range AllInstrumentKinds() {
		if !s.Contains(k) {
			return true
		}
	}
	return false
}

// Kinds returns the set members in display order
func (s InstrumentKindSet) Kinds() []InstrumentKind {
	out := make([]InstrumentKind, 0, len(s))
	for _, k := range AllInstrumentKinds() {
		if s.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

// Card is a card or payment instrument in the catalog
type Card struct {
	ID            string         `json:"id" validate:"required,notblank"`
	Bank          string         `json:"bank" validate:"required,notblank"`
	Name          string         `json:"name" validate:"required,notblank"`
	PreviousNames []string       `json:"previousNames,omitempty"`
	Benefits      []Benefit      `json:"benefits" validate:"dive"`
	Notes         string         `json:"notes,omitempty"`
	IsActive      bool           `json:"isActive"`
	Kind          InstrumentKind `json:"cardType,omitempty" validate:"instrument_kind"`
	OfficialURL   string         `json:"officialUrl,omitempty" validate:"omitempty,url"`
}

func (c *Card) UnmarshalJSON(data []byte) error {
	type alias Card
	raw := struct {
		*alias
		IsActive *bool `json:"isActive"`
	}{alias: (*alias)(c)}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	c.IsActive = raw.IsActive == nil || *raw.IsActive
	if c.Benefits == nil {
		c.Benefits = []Benefit{}
	}
	if c.PreviousNames == nil {
		c.PreviousNames = []string{}
	}
	return nil
}

// HighestMaxRate returns the best maxRate over all benefits, 0 without benefits
func (c *Card) HighestMaxRate() float64 {
	best := 0.0
	for i, b := range c.Benefits {
		if i == 0 || b.MaxRate > best {
			best = b.MaxRate
		}
	}
	return best
}

// BenefitFor returns the first benefit in the given category
func (c *Card) BenefitFor(category string) (*Benefit, bool) {
	for i := range c.Benefits {
		if c.Benefits[i].Category == category {
			return &c.Benefits[i], true
		}
	}
	return nil, false
}

// HasCategory reports whether any benefit belongs to category
func (c *Card) HasCategory(category string) bool {
	_, ok := c.BenefitFor(category)
	return ok
}

// HasAnyCategory reports whether any benefit belongs to one of categories
func (c *Card) HasAnyCategory(categories map[string]struct{}) bool {
	for _, b := range c.Benefits {
		if _, ok := categories[b.Category]; ok {
			return true
		}
	}
	return false
}

// CardIDSet is a membership set of card ids
type CardIDSet map[string]struct{}

// NewCardIDSet builds a set from ids
func NewCardIDSet(ids ...string) CardIDSet {
	set := make(CardIDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set
func (s CardIDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the members in lexical order
func (s CardIDSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
