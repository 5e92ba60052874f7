package errors

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Search Empty Query",
			code:     SearchEmptyQuery,
			expected: "Please enter a merchant, category, card or bank to search",
		},
		{
			name:     "Catalog Duplicate Card",
			code:     CatalogDuplicateCard,
			expected: "Card catalog contains duplicate card ids",
		},
		{
			name:     "Storage Write Failed",
			code:     StorageWriteFailed,
			expected: "Preferences could not be saved",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

// TestGetErrorMessage_UnknownCode tests the fallback message
func (s *CodesTestSuite) TestGetErrorMessage_UnknownCode() {
	s.Equal("An error occurred", GetErrorMessage(ErrorCode("UNKNOWN_999")))
}

// TestIsValidErrorCode tests error code registration
func (s *CodesTestSuite) TestIsValidErrorCode() {
	codes := []ErrorCode{
		ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat, ValidationOutOfRange, ValidationInvalidDate,
		SearchEmptyQuery, SearchStale, SearchInvalidKinds,
		CatalogLoadFailed, CatalogInvalidRecord, CatalogDuplicateCard,
		CardNotFound, CardBenefitNotFound, CardUnknownCondition,
		StorageReadFailed, StorageWriteFailed, StorageMigrateFailed,
		SystemInternalError, SystemDatabaseError, SystemConfigurationError, SystemUsageError, SystemCancelled,
	}
	for _, code := range codes {
		s.True(IsValidErrorCode(code), "code %s should be registered", code)
	}
	s.False(IsValidErrorCode(ErrorCode("AUTH_001")))
}
