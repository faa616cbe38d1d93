package dto

import (
	"net/http"
	"strings"
)

// Error codes returned by the API that do not originate in the domain layer
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":          http.StatusNotFound,
	"ITEM_NOT_FOUND":     http.StatusNotFound,
	"ALREADY_EXISTS":     http.StatusConflict,
	"UNAUTHORIZED":       http.StatusUnauthorized,
	"FORBIDDEN":          http.StatusForbidden,
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"STORE_UNAVAILABLE":  http.StatusServiceUnavailable,

	// Conversion and validation failures
	"INVALID_UNIT_FORMAT":   http.StatusBadRequest,
	"NON_POSITIVE_QUANTITY": http.StatusBadRequest,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Codes carrying
// the INVALID_ prefix map to 400, anything unknown maps to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
