// internal/game/engine.go
//
// Session drives one game: read → parse → validate → compare, until the secret is
// matched (won) or the input channel fails (aborted).
// Responsibilities:
//   - Draw the secret exactly once, at construction.
//   - Count attempts: every completed read counts, including rejected ones.
//   - Retry on parse/range failures; abort on IO failures.
//   - Report a prompt before each read and one Event after each attempt.
//
// Notes:
//   - A Session is single-goroutine; its only blocking point is LineReader.ReadLine.
//   - randomID() is a compact hex identifier used to correlate log lines.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Session holds the state of a single game.
type Session struct {
	id       string
	bounds   Bounds
	secret   int64
	attempts uint32
	state    State
	result   SessionResult
	in       LineReader
	out      Reporter
	log      zerolog.Logger
}

// NewSession validates the bounds, draws the secret and returns a session awaiting
// its first guess. Bad bounds or a secret outside them are configuration errors.
// A nil Reporter discards all output.
func NewSession(b Bounds, src SecretSource, in LineReader, out Reporter) (*Session, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	if src == nil || in == nil {
		return nil, errors.New("new session: secret source and line reader are required")
	}
	if out == nil {
		out = nopReporter{}
	}
	secret := src.NextSecret(b.Low, b.High)
	if !b.Contains(secret) {
		return nil, fmt.Errorf("new session: secret source returned %d outside %s", secret, b)
	}

	id := randomID()
	s := &Session{
		id:     id,
		bounds: b,
		secret: secret,
		state:  StateAwaitingGuess,
		in:     in,
		out:    out,
		log:    log.With().Str("session", id).Logger(),
	}
	s.log.Debug().Int64("low", b.Low).Int64("high", b.High).Msg("session started")
	return s, nil
}

// Step performs one attempt and reports its event. The boolean is true once the
// session has reached a terminal state; further calls return the final event
// again without reading.
func (s *Session) Step() (Event, bool) {
	if s.state.Terminal() {
		return s.finished(), true
	}

	s.out.Prompt(s.attempts+1, s.bounds)
	line, err := s.in.ReadLine()
	if err != nil {
		return s.abort(IOFailure(err)), true
	}
	s.attempts++

	guess, ge := parseGuess(line)
	if ge == nil {
		guess, ge = validateGuess(guess, s.bounds)
	}
	if ge != nil {
		s.log.Debug().Uint32("attempt", s.attempts).Str("kind", string(ge.Kind)).Err(ge).Msg("guess rejected")
		ev := Event{Attempt: s.attempts, Kind: EventRejected, Err: ge}
		s.out.Report(ev)
		return ev, false
	}

	s.state = StateComparing
	outcome := Compare(guess, s.secret)
	s.log.Debug().Uint32("attempt", s.attempts).Int64("guess", guess).Str("outcome", string(outcome)).Msg("guess compared")

	if outcome != OutcomeEqual {
		s.state = StateAwaitingGuess
		ev := Event{Attempt: s.attempts, Kind: EventOutcome, Guess: guess, Outcome: outcome}
		s.out.Report(ev)
		return ev, false
	}

	s.state = StateWon
	s.result = SessionResult{Status: StatusWon, Attempts: s.attempts}
	s.log.Info().Uint32("attempts", s.attempts).Msg("session won")
	ev := s.finished()
	ev.Guess = guess
	s.out.Report(ev)
	return ev, true
}

// Run steps the session until it terminates and returns the result.
func (s *Session) Run() SessionResult {
	for {
		if _, done := s.Step(); done {
			return s.result
		}
	}
}

// abort moves the session to the aborted state and reports the fatal error.
func (s *Session) abort(ge *GuessError) Event {
	s.state = StateAborted
	s.result = SessionResult{Status: StatusAborted, Attempts: s.attempts, Err: ge}
	s.log.Error().Err(ge).Uint32("attempts", s.attempts).Msg("session aborted")
	ev := s.finished()
	s.out.Report(ev)
	return ev
}

// finished builds the terminal event from the stored result.
func (s *Session) finished() Event {
	ev := Event{Attempt: s.attempts, Kind: EventFinished, Result: s.result}
	if s.result.Won() {
		ev.Outcome = OutcomeEqual
	}
	return ev
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Attempts returns the number of completed reads so far.
func (s *Session) Attempts() uint32 { return s.attempts }

// Bounds returns the configured range.
func (s *Session) Bounds() Bounds { return s.bounds }

// Result returns the terminal result once the session has ended.
func (s *Session) Result() (SessionResult, bool) {
	return s.result, s.state.Terminal()
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
