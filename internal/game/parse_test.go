package game

import (
	"errors"
	"strconv"
	"testing"
)

func TestParseAccepts(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"7", 7},
		{"  42\n", 42},
		{"\t-3 ", -3},
		{"+5", 5},
		{"0", 0},
		{"007", 7},
		{"9223372036854775807", 9223372036854775807},
		{"-9223372036854775808", -9223372036854775808},
		{"10\r\n", 10},
	}
	for _, tt := range tests {
		got, err := Parse(tt.raw)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"abc",
		"12abc",
		"1 2",
		"3.5",
		"0x10",
		"1_000",
		"--1",
		"+",
		"9223372036854775808",
		"-9223372036854775809",
		" five ",
	} {
		_, err := Parse(raw)
		var ge *GuessError
		if !errors.As(err, &ge) {
			t.Errorf("Parse(%q) error = %v, want *GuessError", raw, err)
			continue
		}
		if ge.Kind != KindParse {
			t.Errorf("Parse(%q) kind = %q, want %q", raw, ge.Kind, KindParse)
		}
		if ge.Raw != raw {
			t.Errorf("Parse(%q) raw = %q, want untrimmed input", raw, ge.Raw)
		}
	}
}

func TestParseKeepsStrconvCause(t *testing.T) {
	_, err := Parse("99999999999999999999")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected strconv.ErrRange in chain, got %v", err)
	}
	_, err = Parse("x")
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("expected strconv.ErrSyntax in chain, got %v", err)
	}
}

func TestParseAndValidateReturnNilOnSuccess(t *testing.T) {
	if _, err := Parse("3"); err != nil {
		t.Errorf("Parse(%q) error = %#v, want untyped nil", "3", err)
	}
	if _, err := Validate(3, Bounds{Low: 1, High: 10}); err != nil {
		t.Errorf("Validate(3) error = %#v, want untyped nil", err)
	}
}

func TestValidate(t *testing.T) {
	b := Bounds{Low: 1, High: 10}
	for v := b.Low; v <= b.High; v++ {
		got, err := Validate(v, b)
		if err != nil || got != v {
			t.Errorf("Validate(%d) = %d, %v; want %d, nil", v, got, err, v)
		}
	}

	for _, v := range []int64{0, -1, 11, 99, -9223372036854775808, 9223372036854775807} {
		_, err := Validate(v, b)
		var ge *GuessError
		if !errors.As(err, &ge) {
			t.Fatalf("Validate(%d) error = %v, want *GuessError", v, err)
		}
		want := GuessError{Kind: KindRange, Value: v, Low: 1, High: 10}
		if *ge != want {
			t.Errorf("Validate(%d) = %+v, want %+v", v, *ge, want)
		}
	}
}

func TestValidateSinglePointRange(t *testing.T) {
	b := Bounds{Low: 5, High: 5}
	if _, err := Validate(5, b); err != nil {
		t.Errorf("Validate(5) in [5,5] error = %v", err)
	}
	if _, err := Validate(4, b); !errors.Is(err, ErrRange) {
		t.Errorf("Validate(4) in [5,5] error = %v, want range failure", err)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		guess, secret int64
		want          Outcome
	}{
		{1, 7, OutcomeLess},
		{7, 7, OutcomeEqual},
		{8, 7, OutcomeGreater},
		{-5, -4, OutcomeLess},
		{-9223372036854775808, 9223372036854775807, OutcomeLess},
		{9223372036854775807, -9223372036854775808, OutcomeGreater},
	}
	for _, tt := range tests {
		first := Compare(tt.guess, tt.secret)
		if first != tt.want {
			t.Errorf("Compare(%d, %d) = %q, want %q", tt.guess, tt.secret, first, tt.want)
		}
		if again := Compare(tt.guess, tt.secret); again != first {
			t.Errorf("Compare(%d, %d) not stable: %q then %q", tt.guess, tt.secret, first, again)
		}
	}
}
