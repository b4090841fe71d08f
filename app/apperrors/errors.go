package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error so callers can branch on taxonomy instead of
// matching message strings.
type Kind int

const (
	// KindUnknown is the zero value; treated as an internal error.
	KindUnknown Kind = iota
	// KindValidation marks a payload that fails field constraints.
	KindValidation
	// KindNotFound marks a queried identifier with no matching transaction.
	KindNotFound
	// KindConfiguration marks missing identity/credential configuration.
	KindConfiguration
	// KindInsufficientFunds marks a failed wallet balance gate.
	KindInsufficientFunds
	// KindLedgerUnavailable marks a timeout or transport failure talking to
	// the gateway. Safe for the caller to retry later; never retried here.
	KindLedgerUnavailable
	// KindDeserialization marks a fetched transaction whose payload is not
	// valid structured data.
	KindDeserialization
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindLedgerUnavailable:
		return "ledger_unavailable"
	case KindDeserialization:
		return "deserialization"
	default:
		return "unknown"
	}
}

// Error carries a kind, a user-readable message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes errors.Is match any *Error with the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an error of the given kind around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a user-fixable payload error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// NotFound builds a missing-identifier error.
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// Configuration builds a server-misconfiguration error.
func Configuration(message string) *Error {
	return New(KindConfiguration, message)
}

// InsufficientFunds builds a failed balance-gate error.
func InsufficientFunds(message string) *Error {
	return New(KindInsufficientFunds, message)
}

// LedgerUnavailable wraps a gateway transport failure.
func LedgerUnavailable(message string, err error) *Error {
	return Wrap(KindLedgerUnavailable, message, err)
}

// Deserialization wraps a malformed transaction payload.
func Deserialization(message string, err error) *Error {
	return Wrap(KindDeserialization, message, err)
}

// KindOf extracts the kind from err, or KindUnknown if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
