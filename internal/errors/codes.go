package errors

// ErrorCode represents a standardized error code used throughout the application
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Search error codes (SEARCH_*)
const (
	SearchEmptyQuery   ErrorCode = "SEARCH_001"
	SearchStale        ErrorCode = "SEARCH_002"
	SearchInvalidKinds ErrorCode = "SEARCH_003"
)

// Catalog error codes (CATALOG_*)
const (
	CatalogLoadFailed    ErrorCode = "CATALOG_001"
	CatalogInvalidRecord ErrorCode = "CATALOG_002"
	CatalogDuplicateCard ErrorCode = "CATALOG_003"
)

// Card error codes (CARD_*)
const (
	CardNotFound         ErrorCode = "CARD_001"
	CardBenefitNotFound  ErrorCode = "CARD_002"
	CardUnknownCondition ErrorCode = "CARD_003"
)

// Storage error codes (STORAGE_*)
const (
	StorageReadFailed    ErrorCode = "STORAGE_001"
	StorageWriteFailed   ErrorCode = "STORAGE_002"
	StorageMigrateFailed ErrorCode = "STORAGE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemUsageError         ErrorCode = "SYSTEM_004"
	SystemCancelled          ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Search errors
	SearchEmptyQuery:   "Please enter a merchant, category, card or bank to search",
	SearchStale:        "Search superseded by a newer request",
	SearchInvalidKinds: "Unknown instrument kind filter",

	// Catalog errors
	CatalogLoadFailed:    "Card catalog could not be loaded",
	CatalogInvalidRecord: "Card catalog contains invalid records",
	CatalogDuplicateCard: "Card catalog contains duplicate card ids",

	// Card errors
	CardNotFound:         "Card not found",
	CardBenefitNotFound:  "Benefit not found on card",
	CardUnknownCondition: "Condition not found on benefit",

	// Storage errors
	StorageReadFailed:    "Stored preferences could not be read",
	StorageWriteFailed:   "Preferences could not be saved",
	StorageMigrateFailed: "Preference storage could not be prepared",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database connection error",
	SystemConfigurationError: "System configuration error",
	SystemUsageError:         "Invalid command usage",
	SystemCancelled:          "Operation cancelled",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
