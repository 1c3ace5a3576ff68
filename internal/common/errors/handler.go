// internal/common/errors/handler.go
package errors

import (
	"net/http"
	"time"
)

// Normalize ensures we always have a StandardError. Unclassified errors are
// mapped to INTERNAL_ERROR; their details stay server-side.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "An unexpected error occurred",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the transport status it is surfaced with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeMalformedRequest, ErrCodeValidationFailed, ErrCodeModelUnavailable:
		return http.StatusBadRequest
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeNoCandidates:
		return http.StatusNotFound
	case ErrCodeReplyGenerationFailed, ErrCodeTooManyFailures:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
