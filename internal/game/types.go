// internal/game/types.go
//
// Core type definitions for the guess engine.
// Defines:
//   - Outcome: ordering of a guess relative to the secret (less/greater/equal).
//   - Bounds: the inclusive range a session draws its secret from.
//   - State, Status, SessionResult: the session state machine and its terminal value.
//   - Event: what a session reports after each attempt.
//   - LineReader, SecretSource, Reporter: collaborators injected by the caller.

package game

import "fmt"

// Outcome represents the ordering of a guess relative to the secret.
// Possible values:
//   - "less":    the guess is below the secret.
//   - "greater": the guess is above the secret.
//   - "equal":   the guess matches the secret.
type Outcome string

const (
	OutcomeLess    Outcome = "less"
	OutcomeGreater Outcome = "greater"
	OutcomeEqual   Outcome = "equal"
)

// Bounds is the closed interval [Low, High] a secret is drawn from.
type Bounds struct {
	Low  int64 // Smallest accepted guess (inclusive).
	High int64 // Largest accepted guess (inclusive).
}

// Check reports a configuration error when Low > High.
func (b Bounds) Check() error {
	if b.Low > b.High {
		return fmt.Errorf("invalid bounds: low %d is greater than high %d", b.Low, b.High)
	}
	return nil
}

// Contains reports whether v lies inside the bounds (both ends included).
func (b Bounds) Contains(v int64) bool {
	return v >= b.Low && v <= b.High
}

func (b Bounds) String() string {
	return fmt.Sprintf("%d-%d", b.Low, b.High)
}

// State is the position of a session in its state machine.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateComparing     State = "comparing"
	StateWon           State = "won"
	StateAborted       State = "aborted"
)

// Terminal reports whether no further attempts are possible.
func (s State) Terminal() bool {
	return s == StateWon || s == StateAborted
}

// Status distinguishes the two terminal results of a session.
type Status string

const (
	StatusWon     Status = "won"
	StatusAborted Status = "aborted"
)

// SessionResult is the terminal value of a session, created once when the loop stops.
//   - Won:     Attempts holds the number of completed reads, Err is nil.
//   - Aborted: Err holds the IO failure that ended the session.
type SessionResult struct {
	Status   Status
	Attempts uint32
	Err      *GuessError
}

// Won reports whether the session ended with the secret matched.
func (r SessionResult) Won() bool { return r.Status == StatusWon }

// EventKind tells which field of an Event is meaningful.
type EventKind string

const (
	EventRejected EventKind = "rejected" // Err holds a ParseFailure or RangeFailure
	EventOutcome  EventKind = "outcome"  // Outcome holds Less or Greater
	EventFinished EventKind = "finished" // Result holds the SessionResult
)

// Event is emitted to the Reporter after every attempt.
type Event struct {
	Attempt uint32 // Attempt number this event belongs to (0 if no read completed).
	Kind    EventKind
	Guess   int64 // Parsed guess, set for outcome events and wins.
	Err     *GuessError
	Outcome Outcome
	Result  SessionResult
}

// LineReader supplies one line of raw input per call.
// A non-nil error means the channel is broken and cannot be retried.
type LineReader interface {
	ReadLine() (string, error)
}

// SecretSource supplies the secret of a session. Implementations must return a
// value inside [low, high].
type SecretSource interface {
	NextSecret(low, high int64) int64
}

// Reporter receives prompts and per-attempt events for display.
// Formatting is entirely up to the implementation.
type Reporter interface {
	Prompt(attempt uint32, b Bounds)
	Report(ev Event)
}

// nopReporter discards everything.
type nopReporter struct{}

func (nopReporter) Prompt(uint32, Bounds) {}
func (nopReporter) Report(Event)          {}
