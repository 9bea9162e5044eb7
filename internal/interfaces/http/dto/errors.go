package dto

import "net/http"

// Error code constants, formatted ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeValidation is used when request fields violate their constraints
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeInvalidJSON is used when the body is not decodable JSON
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeBadRequest is used for malformed requests, such as a non-integer path id
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource or route does not exist
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeMethodNotAllowed is used when the route exists for other methods
	ErrCodeMethodNotAllowed = "ERR_METHOD_NOT_ALLOWED"
)

// Business rule error codes
const (
	// ErrCodeInvalidReference is used when a referenced counterparty does not exist
	ErrCodeInvalidReference = "ERR_INVALID_REFERENCE"
	// ErrCodeQuotaExceeded is used when the monthly obligation quota is reached
	ErrCodeQuotaExceeded = "ERR_QUOTA_EXCEEDED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors. Body problems answer 422, matching the validation contract.
	ErrCodeValidation:      http.StatusUnprocessableEntity,
	ErrCodeInvalidJSON:     http.StatusUnprocessableEntity,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeMethodNotAllowed: http.StatusMethodNotAllowed,

	ErrCodeInvalidReference: http.StatusUnprocessableEntity,
	ErrCodeQuotaExceeded:    http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":             ErrCodeNotFound,
	"INVALID_INPUT":         ErrCodeValidation,
	"VALIDATION_ERROR":      ErrCodeValidation,
	"INVALID_NAME":          ErrCodeValidation,
	"INVALID_DESCRIPTION":   ErrCodeValidation,
	"INVALID_AMOUNT":        ErrCodeValidation,
	"INVALID_KIND":          ErrCodeValidation,
	"INVALID_FORECAST_DATE": ErrCodeValidation,
	"INVALID_REFERENCE":     ErrCodeInvalidReference,
	"QUOTA_EXCEEDED":        ErrCodeQuotaExceeded,
}

// NormalizeErrorCode converts a domain error code to its API code.
// Codes already in API form, and unknown codes, are returned as-is.
func NormalizeErrorCode(code string) string {
	if apiCode, ok := DomainErrorCodeMapping[code]; ok {
		return apiCode
	}
	return code
}
