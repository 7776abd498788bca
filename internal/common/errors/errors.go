// internal/common/errors/errors.go
// Package errors provides standardized error handling for the query pipeline.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Caller-visible errors.
	ErrCodeInvalidQuery        ErrorCode = "INVALID_QUERY"
	ErrCodeUnsupportedLanguage ErrorCode = "UNSUPPORTED_LANGUAGE"

	// Recovered internally: per-language processing degrades.
	ErrCodeNodeUnavailable ErrorCode = "NODE_UNAVAILABLE"
	ErrCodeNodeTimeout     ErrorCode = "NODE_TIMEOUT"

	// Recovered internally: real_world_data stays absent.
	ErrCodeSearchProviderFailure ErrorCode = "SEARCH_PROVIDER_FAILURE"
	ErrCodeSearchTimeout         ErrorCode = "SEARCH_TIMEOUT"
	ErrCodeSearchRateLimited     ErrorCode = "SEARCH_RATE_LIMITED"

	// Startup-only.
	ErrCodeKnowledgeBaseInvalid ErrorCode = "KNOWLEDGE_BASE_INVALID"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode         `json:"code"`
	Message   string            `json:"message"`
	Details   string            `json:"details,omitempty"`
	Retryable bool              `json:"retryable"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidQueryError creates a non-retryable input validation error.
func NewInvalidQueryError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidQuery,
		Message:   "Query text is empty or malformed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedLanguageError creates a non-retryable routing error naming
// the supported languages.
func NewUnsupportedLanguageError(language string, supported []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedLanguage,
		Message:   fmt.Sprintf("Language '%s' has no registered processing node", language),
		Details:   fmt.Sprintf("supported languages: %s", strings.Join(supported, ", ")),
		Retryable: false,
		Metadata:  map[string]string{"language": language},
		Timestamp: time.Now().UTC(),
	}
}

// NewNodeUnavailableError creates a recoverable node failure error.
func NewNodeUnavailableError(nodeID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNodeUnavailable,
		Message:   "Language node failed or crashed",
		Details:   fmt.Sprintf("nodeId: %s, error: %s", nodeID, err.Error()),
		Retryable: true,
		Metadata:  map[string]string{"node_id": nodeID},
		Timestamp: time.Now().UTC(),
	}
}

// NewNodeTimeoutError creates a recoverable node timeout error.
func NewNodeTimeoutError(nodeID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNodeTimeout,
		Message:   "Language node exceeded its timeout",
		Details:   fmt.Sprintf("nodeId: %s", nodeID),
		Retryable: true,
		Metadata:  map[string]string{"node_id": nodeID},
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchProviderFailureError creates a locally-recovered search error.
func NewSearchProviderFailureError(provider string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchProviderFailure,
		Message:   "External search provider error",
		Details:   fmt.Sprintf("provider: %s, error: %s", provider, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchTimeoutError creates a locally-recovered search timeout error.
func NewSearchTimeoutError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchTimeout,
		Message:   "External search call exceeded its timeout",
		Details:   fmt.Sprintf("provider: %s", provider),
		Retryable: false, // degrade, don't retry within the request
		Timestamp: time.Now().UTC(),
	}
}

// NewSearchRateLimitedError creates a locally-recovered quota error.
func NewSearchRateLimitedError(provider string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchRateLimited,
		Message:   "External search provider rate limit hit",
		Details:   fmt.Sprintf("provider: %s", provider),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewKnowledgeBaseInvalidError creates a startup validation error.
func NewKnowledgeBaseInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeKnowledgeBaseInvalid,
		Message:   "Cultural knowledge base failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatus maps an error code to the status returned at the API boundary.
// Only INVALID_QUERY and UNSUPPORTED_LANGUAGE ever reach the caller; the
// rest default to 500 as a safety net for programming errors.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidQuery, ErrCodeUnsupportedLanguage:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 4. Utility Functions
// ==========================

// AsStandardError extracts a *StandardError from err, if any.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// IsCallerVisible reports whether the error must surface to the API caller
// instead of degrading into a best-effort response.
func IsCallerVisible(err error) bool {
	stdErr, ok := AsStandardError(err)
	if !ok {
		return false
	}
	switch stdErr.Code {
	case ErrCodeInvalidQuery, ErrCodeUnsupportedLanguage:
		return true
	}
	return false
}

// IsRecoverable reports whether the pipeline should degrade instead of
// failing the whole request.
func IsRecoverable(err error) bool {
	stdErr, ok := AsStandardError(err)
	if !ok {
		return false
	}
	switch stdErr.Code {
	case ErrCodeNodeUnavailable, ErrCodeNodeTimeout,
		ErrCodeSearchProviderFailure, ErrCodeSearchTimeout, ErrCodeSearchRateLimited:
		return true
	}
	return false
}
