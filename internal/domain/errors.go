package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeUnauthorized  ErrorCode = "UNAUTHORIZED"
	CodeConfigMissing ErrorCode = "CONFIG_MISSING"

	// Placement test errors
	CodeAttemptNotFound ErrorCode = "ATTEMPT_NOT_FOUND"
	CodeAttemptGraded   ErrorCode = "ATTEMPT_ALREADY_GRADED"
	CodeNoQuestions     ErrorCode = "NO_QUESTIONS_AVAILABLE"

	// Upstream collaborator errors
	CodeDeliveryFailed   ErrorCode = "DELIVERY_FAILED"
	CodeUpstreamFailed   ErrorCode = "UPSTREAM_FETCH_FAILED"
	CodeUpstreamRejected ErrorCode = "UPSTREAM_REJECTED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a detail that is rendered in the error response.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(CodeUnauthorized, message, nil)
}

func NewConfigMissingError(setting string) *DomainError {
	return NewError(CodeConfigMissing, fmt.Sprintf("Missing %s", setting), nil)
}

func NewAttemptNotFoundError(attemptID string) *DomainError {
	return NewError(CodeAttemptNotFound, fmt.Sprintf("Attempt not found with ID: %s", attemptID), nil)
}

func NewAttemptGradedError(attemptID string) *DomainError {
	return NewError(CodeAttemptGraded, fmt.Sprintf("Attempt %s is already graded; retry it first", attemptID), nil)
}

func NewNoQuestionsError() *DomainError {
	return NewError(CodeNoQuestions, "No questions available", nil)
}

// NewDeliveryFailedError reports a failed registration hand-off. The message is
// deliberately generic; the cause is only logged.
func NewDeliveryFailedError(err error) *DomainError {
	return NewError(CodeDeliveryFailed, "Error submitting the form, try again.", err)
}

func NewUpstreamFailedError(err error) *DomainError {
	return NewError(CodeUpstreamFailed, "Upstream fetch failed", err)
}

func NewUpstreamRejectedError(status int, body string) *DomainError {
	if body == "" {
		body = "Upstream error"
	}
	return NewError(CodeUpstreamRejected, body, nil).WithContext("upstream_status", status)
}

// FieldErrors maps a field name to a human-readable message. An empty map
// means every field passed.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
