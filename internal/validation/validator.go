package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"cardfinder/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("condition_type", validateConditionType)
	_ = v.RegisterValidation("instrument_kind", validateInstrumentKind)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the raw validator error
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// Details validates s and returns one human-readable line per failing field,
// prefixed with path. An empty slice means s is valid.
func (v *Validator) Details(path string, s interface{}) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{fmt.Sprintf("%s: %s", path, err.Error())}
	}

	details := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fieldPath(path, fe), FormatFieldError(fe)))
	}
	return details
}

// fieldPath replaces the root struct name of the namespace with path
func fieldPath(path string, fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if path == "" {
		return ns
	}
	return path + "." + ns
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must be greater than or equal to %s", lowerFirst(fe.Param()))
	case "unique":
		if fe.Param() != "" {
			return fmt.Sprintf("must have unique %s values", strings.ToLower(fe.Param()))
		}
		return "must contain unique values"
	case "url":
		return "must be a valid URL"
	case "condition_type":
		return fmt.Sprintf("must be a known condition type, got %q", fe.Value())
	case "instrument_kind":
		return fmt.Sprintf("must be one of credit, debit, mobile, eticket, got %q", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed validation: %s", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Custom validation functions

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateConditionType validates that a condition type is one of the known kinds
func validateConditionType(fl validator.FieldLevel) bool {
	return models.IsValidConditionType(fl.Field().String())
}

// validateInstrumentKind validates that an instrument kind is one of the known kinds
func validateInstrumentKind(fl validator.FieldLevel) bool {
	return models.IsValidInstrumentKind(fl.Field().String())
}
