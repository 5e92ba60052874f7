package services

import (
	"github.com/shopspring/decimal"

	"cardfinder/internal/models"
)

// rate tier lower bounds, in percent
const (
	highRateFloor     = 8.0
	elevatedRateFloor = 5.0
	moderateRateFloor = 3.0
)

// ConditionProgressOf counts the checked conditions of a benefit.
// A nil checks map reads as nothing checked.
func ConditionProgressOf(benefit *models.Benefit, checks models.ConditionChecks) models.ConditionProgress {
	var p models.ConditionProgress
	for _, c := range benefit.Conditions {
		checked := checks.IsChecked(c.ID)
		if c.Required {
			p.TotalRequired++
			if checked {
				p.MetRequired++
			}
			continue
		}
		p.TotalOptional++
		if checked {
			p.MetOptional++
		}
	}

	p.TotalConditions = p.TotalRequired + p.TotalOptional
	p.TotalMet = p.MetRequired + p.MetOptional
	p.AllRequiredMet = p.MetRequired == p.TotalRequired

	if p.TotalConditions == 0 {
		p.ProgressPercentage = 100
	} else {
		p.ProgressPercentage = 100 * float64(p.TotalMet) / float64(p.TotalConditions)
	}
	return p
}

// EffectiveRate applies the gating rule: base rate until every required
// condition is met, then linear toward the max rate over checked optionals.
func EffectiveRate(benefit *models.Benefit, progress models.ConditionProgress) float64 {
	if !progress.AllRequiredMet {
		return benefit.BaseRate
	}
	if progress.TotalConditions == 0 {
		return benefit.MaxRate
	}
	credited := progress.TotalRequired + progress.MetOptional
	return benefit.BaseRate + (benefit.MaxRate-benefit.BaseRate)*float64(credited)/float64(progress.TotalConditions)
}

// CalculateRate runs the rate engine for one benefit
func CalculateRate(benefit *models.Benefit, checks models.ConditionChecks) models.RateResult {
	progress := ConditionProgressOf(benefit, checks)
	return models.RateResult{
		EffectiveRate: EffectiveRate(benefit, progress),
		Progress:      progress,
	}
}

// FormatRate renders a rate with one decimal digit, rounding half away from zero
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).StringFixed(1)
}

// RateTierOf buckets a rate for display emphasis
func RateTierOf(rate float64) models.RateTier {
	switch {
	case rate >= highRateFloor:
		return models.RateTierHigh
	case rate >= elevatedRateFloor:
		return models.RateTierElevated
	case rate >= moderateRateFloor:
		return models.RateTierModerate
	default:
		return models.RateTierBase
	}
}
