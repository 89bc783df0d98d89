// internal/game/errors.go
//
// GuessError is the single error type returned by every fallible stage of a session.
// Kinds:
//   - io:    reading a line failed; fatal, the session aborts.
//   - parse: the line is not a whole number; recoverable.
//   - range: the number lies outside the session bounds; recoverable.
//
// Each constructor requires the context its kind needs, so a message can always be
// rendered without looking back at session state. A GuessError is never re-wrapped
// into another kind.

package game

import (
	"errors"
	"fmt"
	"io"
)

// Kind classifies a GuessError.
type Kind string

const (
	KindIO    Kind = "io"
	KindParse Kind = "parse"
	KindRange Kind = "range"
)

// GuessError carries one failure and the context needed to describe it.
type GuessError struct {
	Kind  Kind
	Raw   string // parse: the offending line, untrimmed
	Value int64  // range: the parsed guess
	Low   int64  // range: configured lower bound
	High  int64  // range: configured upper bound
	Err   error  // io: the read failure; parse: the strconv error
}

// Sentinels for errors.Is; matching is by kind only.
var (
	ErrIO    = &GuessError{Kind: KindIO}
	ErrParse = &GuessError{Kind: KindParse}
	ErrRange = &GuessError{Kind: KindRange}
)

// IOFailure converts a line acquisition failure.
// An error already carrying an IO-kind GuessError is returned as that GuessError;
// any other error, including a parse or range GuessError, becomes the cause of a
// new IO failure.
func IOFailure(err error) *GuessError {
	var ge *GuessError
	if errors.As(err, &ge) && ge.Kind == KindIO {
		return ge
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return &GuessError{Kind: KindIO, Err: err}
}

// ParseFailure records raw text that did not denote an integer.
func ParseFailure(raw string, err error) *GuessError {
	return &GuessError{Kind: KindParse, Raw: raw, Err: err}
}

// RangeFailure records a parsed value outside [low, high].
func RangeFailure(value, low, high int64) *GuessError {
	return &GuessError{Kind: KindRange, Value: value, Low: low, High: high}
}

// Error renders the failure. The message depends only on the error's own fields.
func (e *GuessError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case KindIO:
		if e.Err == nil {
			return "read guess: input unavailable"
		}
		return fmt.Sprintf("read guess: %v", e.Err)
	case KindParse:
		return fmt.Sprintf("invalid guess %q: not a whole number", e.Raw)
	case KindRange:
		return fmt.Sprintf("guess %d out of range: must be between %d and %d", e.Value, e.Low, e.High)
	default:
		return fmt.Sprintf("guess error (%s)", e.Kind)
	}
}

// Unwrap exposes the underlying cause, if any.
func (e *GuessError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another GuessError of the same kind.
func (e *GuessError) Is(target error) bool {
	t, ok := target.(*GuessError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Recoverable reports whether the session may continue after this error.
func (e *GuessError) Recoverable() bool {
	return e != nil && (e.Kind == KindParse || e.Kind == KindRange)
}

// IsKind helps callers classify errors without a type assertion.
func IsKind(err error, kind Kind) bool {
	var ge *GuessError
	if !errors.As(err, &ge) {
		return false
	}
	return ge.Kind == kind
}
