package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ConditionType classifies an eligibility requirement attached to a benefit
type ConditionType string

const (
	ConditionTypeRegistration  ConditionType = "registration"
	ConditionTypePaymentMethod ConditionType = "payment_method"
	ConditionTypeMinAmount     ConditionType = "min_amount"
	ConditionTypePlatform      ConditionType = "platform"
	ConditionTypeMerchant      ConditionType = "merchant"
	ConditionTypeMonthlyLimit  ConditionType = "monthly_limit"
	ConditionTypeNewUser       ConditionType = "new_user"
	ConditionTypeOther         ConditionType = "other"
)

// AllConditionTypes returns every known condition type
func AllConditionTypes() []ConditionType {
	return []ConditionType{
		ConditionTypeRegistration,
		ConditionTypePaymentMethod,
		ConditionTypeMinAmount,
		ConditionTypePlatform,
		ConditionTypeMerchant,
		ConditionTypeMonthlyLimit,
		ConditionTypeNewUser,
		ConditionTypeOther,
	}
}

// IsValidConditionType checks if a condition type string is known
func IsValidConditionType(t string) bool {
	for _, known := range AllConditionTypes() {
		if ConditionType(t) == known {
			return true
		}
	}
	return false
}

// ConditionValueKind tells which variant a ConditionValue holds
type ConditionValueKind int

const (
	ConditionValueNone ConditionValueKind = iota
	ConditionValueText
	ConditionValueNumber
)

// ConditionValue is the optional string-or-number payload of a condition,
// e.g. a minimum spend amount or the name of a required wallet.
type ConditionValue struct {
	Kind   ConditionValueKind
	Text   string
	Number decimal.Decimal
}

// TextValue builds a text condition value
func TextValue(s string) ConditionValue {
	return ConditionValue{Kind: ConditionValueText, Text: s}
}

// NumberValue builds a numeric condition value
func NumberValue(d decimal.Decimal) ConditionValue {
	return ConditionValue{Kind: ConditionValueNumber, Number: d}
}

// IsZero reports whether the value is absent
func (v ConditionValue) IsZero() bool {
	return v.Kind == ConditionValueNone
}

func (v ConditionValue) String() string {
	switch v.Kind {
	case ConditionValueText:
		return v.Text
	case ConditionValueNumber:
		return v.Number.String()
	default:
		return ""
	}
}

func (v ConditionValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ConditionValueText:
		return json.Marshal(v.Text)
	case ConditionValueNumber:
		return []byte(v.Number.String()), nil
	default:
		return []byte("null"), nil
	}
}

func (v *ConditionValue) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*v = ConditionValue{}
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = TextValue(s)
		return nil
	}

	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return fmt.Errorf("condition value must be a string or a number: %w", err)
	}
	*v = NumberValue(d)
	return nil
}

// Condition is a single eligibility requirement of a benefit
type Condition struct {
	ID          string         `json:"id" validate:"required,notblank"`
	Type        ConditionType  `json:"type" validate:"condition_type"`
	Description string         `json:"description"`
	Required    bool           `json:"required"`
	Value       ConditionValue `json:"value"`
}
