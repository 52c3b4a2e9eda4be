package workflow

import (
	"errors"
	"fmt"
)

// Kind is the workflow error taxonomy. Fatal kinds abort the workflow and
// surface a failed result; the rest accumulate on the state.
type Kind string

const (
	KindScopeFailed           Kind = "SCOPE_FAILED"
	KindFillFailed            Kind = "FILL_FAILED"
	KindProviderExhausted     Kind = "PROVIDER_EXHAUSTED"
	KindProviderUnavailable   Kind = "PROVIDER_UNAVAILABLE"
	KindAdapterRetryable      Kind = "ADAPTER_RETRYABLE"
	KindNoEvidence            Kind = "NO_EVIDENCE"
	KindQCWarning             Kind = "QC_WARNING"
	KindWebhookDeliveryFailed Kind = "WEBHOOK_DELIVERY_FAILED"
	KindStrategyError         Kind = "STRATEGY_ERROR"
	KindConfigError           Kind = "CONFIG_ERROR"
)

// Error is a classified workflow failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Fatal reports whether this kind aborts the whole workflow.
func (e *Error) Fatal() bool {
	switch e.Kind {
	case KindScopeFailed, KindFillFailed, KindNoEvidence, KindStrategyError, KindConfigError:
		return true
	default:
		return false
	}
}

// NewError builds a classified workflow error.
func NewError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// WrapError classifies an underlying error.
func WrapError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the taxonomy kind from err, or "" when err is not a
// workflow error.
func KindOf(err error) Kind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return ""
}

// IsFatal reports whether err is a fatal workflow error.
func IsFatal(err error) bool {
	var we *Error
	return errors.As(err, &we) && we.Fatal()
}
