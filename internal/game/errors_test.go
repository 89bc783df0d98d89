package game

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
)

func TestGuessErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *GuessError
		want string
	}{
		{"io", IOFailure(io.EOF), "read guess: EOF"},
		{"io nil cause", &GuessError{Kind: KindIO}, "read guess: input unavailable"},
		{"parse", ParseFailure(" abc\n", nil), `invalid guess " abc\n": not a whole number`},
		{"range", RangeFailure(99, 1, 10), "guess 99 out of range: must be between 1 and 10"},
		{"range negative", RangeFailure(-4, -3, 3), "guess -4 out of range: must be between -3 and 3"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("%s: Error() = %q, want %q", tt.name, got, tt.want)
		}
		if again := tt.err.Error(); again != tt.want {
			t.Errorf("%s: Error() not deterministic: %q", tt.name, again)
		}
	}
}

func TestIOFailureKeepsCause(t *testing.T) {
	err := IOFailure(os.ErrClosed)
	if err.Kind != KindIO {
		t.Errorf("kind = %q, want %q", err.Kind, KindIO)
	}
	if !errors.Is(err, os.ErrClosed) {
		t.Errorf("errors.Is(err, os.ErrClosed) = false, want cause preserved")
	}
	if err.Recoverable() {
		t.Errorf("io failure should not be recoverable")
	}
}

func TestIOFailureNilCause(t *testing.T) {
	err := IOFailure(nil)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("IOFailure(nil) = %v, want io.ErrUnexpectedEOF cause", err)
	}
}

func TestIOFailureKeepsExistingIOError(t *testing.T) {
	first := IOFailure(io.EOF)
	if got := IOFailure(first); got != first {
		t.Errorf("IOFailure(io failure) = %v, want the same *GuessError", got)
	}
	if got := IOFailure(fmt.Errorf("reader: %w", first)); got != first {
		t.Errorf("IOFailure(wrapped io failure) = %v, want the inner *GuessError", got)
	}
}

func TestIOFailureFromOtherKinds(t *testing.T) {
	pf := ParseFailure("x", nil)
	tests := []struct {
		name  string
		err   error
		cause error
	}{
		{"parse failure", pf, pf},
		{"wrapped range failure", fmt.Errorf("context: %w", RangeFailure(11, 1, 10)), ErrRange},
	}
	for _, tt := range tests {
		got := IOFailure(tt.err)
		if got.Kind != KindIO {
			t.Errorf("%s: kind = %q, want %q", tt.name, got.Kind, KindIO)
		}
		if got.Recoverable() {
			t.Errorf("%s: io failure should not be recoverable", tt.name)
		}
		if !errors.Is(got, tt.cause) {
			t.Errorf("%s: cause %v not reachable from %v", tt.name, tt.cause, got)
		}
	}
}

func TestGuessErrorIs(t *testing.T) {
	tests := []struct {
		err    error
		target error
		want   bool
	}{
		{ParseFailure("a", nil), ErrParse, true},
		{ParseFailure("a", nil), ErrRange, false},
		{RangeFailure(0, 1, 2), ErrRange, true},
		{IOFailure(io.EOF), ErrIO, true},
		{IOFailure(io.EOF), io.EOF, true},
		{fmt.Errorf("wrap: %w", RangeFailure(0, 1, 2)), ErrRange, true},
		{errors.New("plain"), ErrIO, false},
	}
	for _, tt := range tests {
		if got := errors.Is(tt.err, tt.target); got != tt.want {
			t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.want)
		}
	}
}

func TestRecoverableAndIsKind(t *testing.T) {
	if !ParseFailure("a", nil).Recoverable() || !RangeFailure(0, 1, 2).Recoverable() {
		t.Errorf("parse and range failures should be recoverable")
	}
	var nilErr *GuessError
	if nilErr.Recoverable() {
		t.Errorf("nil GuessError should not be recoverable")
	}
	if !IsKind(fmt.Errorf("x: %w", ParseFailure("a", nil)), KindParse) {
		t.Errorf("IsKind should see through wrapping")
	}
	if IsKind(io.EOF, KindIO) {
		t.Errorf("IsKind(io.EOF, io) = true, want false for non-GuessError")
	}
}
