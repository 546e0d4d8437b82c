package fault

import (
	"errors"
	"fmt"
)

// Error kinds. Every rejected operation unwraps to exactly one of these.
var (
	// ErrAuthorization is a missing signature or an account outside the collection's authorized set.
	ErrAuthorization = errors.New("authorization")

	// ErrNotFound is an unknown collection, asset, template, schema or redemption record.
	ErrNotFound = errors.New("not found")

	// ErrStateConflict is an operation invoked from the wrong lifecycle state.
	ErrStateConflict = errors.New("state conflict")

	// ErrMalformedInput is a missing or badly typed attribute, or a memo of the wrong shape.
	ErrMalformedInput = errors.New("malformed input")

	// ErrResourceExhausted is an insufficient collection RAM balance.
	ErrResourceExhausted = errors.New("resource exhausted")

	// ErrSupplyExceeded is a template issuance at its cap.
	ErrSupplyExceeded = errors.New("supply exceeded")

	// ErrInvalidPolicy is a redemption policy selector outside the known dispositions.
	ErrInvalidPolicy = errors.New("invalid policy")
)

// kinds lists every kind with its boundary code.
var kinds = []struct {
	err  error
	code string
}{
	{ErrAuthorization, "authorization"},
	{ErrNotFound, "not_found"},
	{ErrStateConflict, "state_conflict"},
	{ErrMalformedInput, "malformed_input"},
	{ErrResourceExhausted, "resource_exhausted"},
	{ErrSupplyExceeded, "supply_exceeded"},
	{ErrInvalidPolicy, "invalid_policy"},
}

// Error is a classified rejection carrying a human-readable message.
type Error struct {
	Kind error  // Kind is one of the package sentinels
	Msg  string // Msg is the diagnostic shown to the caller
}

// Newf builds a classified error.
func Newf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Error returns the diagnostic message.
func (e *Error) Error() string {
	return e.Msg
}

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Code returns the stable code of the first kind err wraps,
// or "internal" for unclassified errors.
func Code(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.code
		}
	}

	return "internal"
}

// Is reports whether err carries any classified kind.
func Is(err error) bool {
	return Code(err) != "internal"
}
