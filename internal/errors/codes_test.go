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

func allErrorCodes() []ErrorCode {
	return []ErrorCode{
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		AuthInvalidSignature,
		AuthUserProvisioning,
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidDate,
		TransactionNotFound,
		TransactionInvalidAmount,
		TransactionInvalidType,
		TransactionInvalidID,
		TransactionEmptyBatch,
		TransactionValidationFailed,
		CategoryNotFound,
		CategoryMissingName,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemRateLimitExceeded,
	}
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Auth Expired Token",
			code:     AuthExpiredToken,
			expected: "Authorization token has expired",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Transaction Not Found",
			code:     TransactionNotFound,
			expected: "Transaction not found",
		},
		{
			name:     "Transaction Empty Batch",
			code:     TransactionEmptyBatch,
			expected: "Bulk import requires at least one transaction",
		},
		{
			name:     "Category Not Found",
			code:     CategoryNotFound,
			expected: "Category not found",
		},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

// TestIsValidErrorCode_ValidCodes tests validation of valid error codes
func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allErrorCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

// TestIsValidErrorCode_InvalidCode tests validation of invalid error code
func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"AUTH_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allErrorCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	testCases := []struct {
		prefix string
		codes  []ErrorCode
	}{
		{
			prefix: "AUTH_",
			codes: []ErrorCode{
				AuthMissingToken,
				AuthExpiredToken,
				AuthInvalidTokenFormat,
				AuthInvalidSignature,
				AuthUserProvisioning,
			},
		},
		{
			prefix: "VALIDATION_",
			codes: []ErrorCode{
				ValidationGeneral,
				ValidationRequiredField,
				ValidationInvalidFormat,
				ValidationOutOfRange,
				ValidationInvalidDate,
			},
		},
		{
			prefix: "TRANSACTION_",
			codes: []ErrorCode{
				TransactionNotFound,
				TransactionInvalidAmount,
				TransactionInvalidType,
				TransactionInvalidID,
				TransactionEmptyBatch,
				TransactionValidationFailed,
			},
		},
		{
			prefix: "CATEGORY_",
			codes: []ErrorCode{
				CategoryNotFound,
				CategoryMissingName,
			},
		},
		{
			prefix: "SYSTEM_",
			codes: []ErrorCode{
				SystemInternalError,
				SystemDatabaseError,
				SystemServiceUnavailable,
				SystemRateLimitExceeded,
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.prefix, func() {
			for _, code := range tc.codes {
				s.Contains(string(code), tc.prefix, "Error code %s should start with %s", code, tc.prefix)
			}
		})
	}
}

// TestAllErrorCodesHaveMessages ensures every error code has a message
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allErrorCodes() {
		s.Run(string(code), func() {
			message := GetErrorMessage(code)
			s.NotEmpty(message, "Error code %s should have a message", code)
			s.NotEqual("An error occurred", message, "Error code %s should have a specific message", code)
		})
	}
}
