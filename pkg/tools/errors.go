package tools

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies adapter failures.
type ErrorKind string

const (
	KindNetwork     ErrorKind = "network"
	KindRateLimited ErrorKind = "rate_limited"
	KindAuth        ErrorKind = "auth"
	KindExhausted   ErrorKind = "exhausted" // provider credits exhausted (HTTP 402)
	KindBadRequest  ErrorKind = "bad_request"
	KindProvider    ErrorKind = "provider" // 5xx and unclassified provider failures
)

// ToolError is the typed error adapters return from Invoke.
type ToolError struct {
	Adapter   string
	Method    string
	Kind      ErrorKind
	Retryable bool
	Err       error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s.%s: %s (%s): %v", e.Adapter, e.Method, e.Kind, retryLabel(e.Retryable), e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

func retryLabel(retryable bool) string {
	if retryable {
		return "retryable"
	}
	return "permanent"
}

// NewToolError builds a ToolError for the given adapter call.
func NewToolError(adapter, method string, kind ErrorKind, retryable bool, err error) *ToolError {
	return &ToolError{Adapter: adapter, Method: method, Kind: kind, Retryable: retryable, Err: err}
}

// ClassifyHTTP maps an HTTP status code to an error kind and retryability.
// 5xx and 429 are retryable; all other 4xx are permanent. 402 means the
// provider's credits are exhausted, which the executor treats as skippable.
func ClassifyHTTP(status int) (ErrorKind, bool) {
	switch {
	case status == http.StatusTooManyRequests:
		return KindRateLimited, true
	case status == http.StatusPaymentRequired:
		return KindExhausted, false
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth, false
	case status >= 500:
		return KindProvider, true
	case status >= 400:
		return KindBadRequest, false
	default:
		return KindProvider, false
	}
}

// IsRetryable reports whether err is a retryable ToolError.
func IsRetryable(err error) bool {
	var te *ToolError
	return errors.As(err, &te) && te.Retryable
}

// IsExhausted reports whether err indicates provider credit exhaustion.
func IsExhausted(err error) bool {
	var te *ToolError
	return errors.As(err, &te) && te.Kind == KindExhausted
}

// Sentinel errors for registry dispatch failures. The workflow layer maps
// these onto its own error taxonomy.
var (
	ErrAdapterNotFound = errors.New("adapter not found")
	ErrMethodNotFound  = errors.New("adapter method not found")
)
