package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthInvalidSignature   ErrorCode = "AUTH_004"
	AuthUserProvisioning   ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidType      ErrorCode = "TRANSACTION_003"
	TransactionInvalidID        ErrorCode = "TRANSACTION_004"
	TransactionEmptyBatch       ErrorCode = "TRANSACTION_005"
	TransactionValidationFailed ErrorCode = "TRANSACTION_006"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound    ErrorCode = "CATEGORY_001"
	CategoryMissingName ErrorCode = "CATEGORY_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthInvalidSignature:   "Authorization token signature could not be verified",
	AuthUserProvisioning:   "Failed to resolve authenticated user",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionInvalidType:      "Invalid transaction type",
	TransactionInvalidID:        "Invalid transaction ID format",
	TransactionEmptyBatch:       "Bulk import requires at least one transaction",
	TransactionValidationFailed: "Transaction validation failed",

	// Category errors
	CategoryNotFound:    "Category not found",
	CategoryMissingName: "Category name is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
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
