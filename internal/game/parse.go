// internal/game/parse.go
//
// Guess parsing and the two pure stages that follow it.
//   - Parse:    raw line → int64 (whole trimmed string, base 10, optional sign).
//   - Validate: int64 → int64 inside the session bounds.
//   - Compare:  guess vs. secret → Outcome.

package game

import (
	"strconv"
	"strings"
)

// Parse converts one raw input line into a guess.
// Leading and trailing whitespace is ignored; anything else that is not part of a
// base-10 integer (including overflow of int64) fails with a ParseFailure that
// carries the original, untrimmed line. Partial numbers such as "12abc" are rejected.
func Parse(raw string) (int64, error) {
	n, ge := parseGuess(raw)
	if ge != nil {
		return 0, ge
	}
	return n, nil
}

// Validate checks value against b and returns it unchanged when inside.
// b.Low <= b.High is assumed; sessions enforce it at construction.
func Validate(value int64, b Bounds) (int64, error) {
	v, ge := validateGuess(value, b)
	if ge != nil {
		return 0, ge
	}
	return v, nil
}

func parseGuess(raw string) (int64, *GuessError) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, ParseFailure(raw, err)
	}
	return n, nil
}

func validateGuess(value int64, b Bounds) (int64, *GuessError) {
	if !b.Contains(value) {
		return 0, RangeFailure(value, b.Low, b.High)
	}
	return value, nil
}

// Compare orders guess against secret.
func Compare(guess, secret int64) Outcome {
	switch {
	case guess < secret:
		return OutcomeLess
	case guess > secret:
		return OutcomeGreater
	default:
		return OutcomeEqual
	}
}
