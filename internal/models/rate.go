package models

// ConditionChecks is the session-only checkbox state of one rendered card,
// keyed by condition id. Absent ids read as unchecked.
type ConditionChecks map[string]bool

// IsChecked is safe on a nil map
func (c ConditionChecks) IsChecked(conditionID string) bool {
	return c[conditionID]
}

func (c ConditionChecks) Set(conditionID string, checked bool) {
	if checked {
		c[conditionID] = true
		return
	}
	delete(c, conditionID)
}

// Toggle flips a condition and returns its new state
func (c ConditionChecks) Toggle(conditionID string) bool {
	next := !c[conditionID]
	c.Set(conditionID, next)
	return next
}

func (c ConditionChecks) Reset() {
	for id := range c {
		delete(c, id)
	}
}

// ConditionProgress summarises how many conditions of a benefit are satisfied
type ConditionProgress struct {
	MetRequired        int     `json:"metRequired"`
	TotalRequired      int     `json:"totalRequired"`
	MetOptional        int     `json:"metOptional"`
	TotalOptional      int     `json:"totalOptional"`
	TotalMet           int     `json:"totalMet"`
	TotalConditions    int     `json:"totalConditions"`
	AllRequiredMet     bool    `json:"allRequiredMet"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

// RateResult is the output of the rate engine for one benefit
type RateResult struct {
	EffectiveRate float64           `json:"effectiveRate"`
	Progress      ConditionProgress `json:"progress"`
}

// RateTier buckets a rate for display emphasis
type RateTier string

const (
	RateTierHigh     RateTier = "high"
	RateTierElevated RateTier = "elevated"
	RateTierModerate RateTier = "moderate"
	RateTierBase     RateTier = "base"
)
