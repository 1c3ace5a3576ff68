// Package errors provides standardized error handling for the ask pipeline.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Client input errors, surfaced immediately and never retried.
	ErrCodeMalformedRequest ErrorCode = "MALFORMED_REQUEST"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeModelUnavailable ErrorCode = "MODEL_UNAVAILABLE"

	// Resource exhaustion, the client should back off.
	ErrCodeRateLimited ErrorCode = "RATE_LIMITED"

	// Empty-result errors, the filters were too narrow.
	ErrCodeNoCandidates ErrorCode = "NO_CANDIDATES"

	// Upstream failures.
	ErrCodeReplyGenerationFailed ErrorCode = "REPLY_GENERATION_FAILED"
	ErrCodeTooManyFailures       ErrorCode = "TOO_MANY_UPSTREAM_FAILURES"

	// Everything else.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewMalformedRequestError marks a body that could not be parsed at all.
func NewMalformedRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedRequest,
		Message:   "Request body is not valid JSON",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError carries the first violated field's message.
func NewValidationFailedError(fieldMessage string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   fieldMessage,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewModelUnavailableError attaches the catalog of usable models.
func NewModelUnavailableError(model string, available []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeModelUnavailable,
		Message:   fmt.Sprintf("Model %q is not available", model),
		Retryable: false,
		Metadata:  map[string]interface{}{"available_models": available},
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError signals the per-client request cap was hit.
func NewRateLimitedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Too many requests, please wait a minute and try again",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoCandidatesError signals the cohort filters matched nobody.
func NewNoCandidatesError() *StandardError {
	return &StandardError{
		Code:      ErrCodeNoCandidates,
		Message:   "No personas match the selected filters, try broader criteria",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReplyGenerationFailedError wraps one failed upstream generation call.
func NewReplyGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReplyGenerationFailed,
		Message:   "Reply generation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewTooManyFailuresError signals the batch fell below the success threshold.
// Individual per-persona failure reasons are not exposed to the caller.
func NewTooManyFailuresError(succeeded, required int) *StandardError {
	return &StandardError{
		Code:      ErrCodeTooManyFailures,
		Message:   "The survey could not collect enough replies, please retry",
		Retryable: true,
		Metadata:  map[string]interface{}{"succeeded": succeeded, "required": required},
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError is the catch-all for unclassified failures.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "An unexpected error occurred",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
