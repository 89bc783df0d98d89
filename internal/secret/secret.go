// internal/secret/secret.go
//
// SecretSource implementations for the guess engine.
//
// Sources:
//   - Random: uniform over [low, high] using crypto/rand.
//   - Fixed:  always the same value (tests, demos).
//   - Daily:  one value per UTC date, derived from a salt (see package daily).
//
// New picks a source by mode name ("random", "fixed", "daily"), as configured.

package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guess/internal/daily"
)

// Mode names accepted by New.
const (
	ModeRandom = "random"
	ModeFixed  = "fixed"
	ModeDaily  = "daily"
)

// Random draws a cryptographically random secret.
type Random struct{}

// NextSecret returns a uniform value in [low, high].
// If the entropy source fails, it falls back to low.
func (Random) NextSecret(low, high int64) int64 {
	span := new(big.Int).Sub(big.NewInt(high), big.NewInt(low))
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		log.Warn().Err(err).Msg("random secret unavailable, using lower bound")
		return low
	}
	return n.Add(n, big.NewInt(low)).Int64()
}

// Fixed always returns its own value.
type Fixed int64

func (f Fixed) NextSecret(_, _ int64) int64 { return int64(f) }

// Daily returns the same secret for everyone on a given UTC date.
type Daily struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

func (d Daily) NextSecret(low, high int64) int64 {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return daily.Value(now(), d.Salt, low, high)
}

// New returns the source for a configured mode.
// value is only used by ModeFixed, salt only by ModeDaily.
func New(mode string, value int64, salt string) (Source, error) {
	switch mode {
	case ModeRandom, "":
		return Random{}, nil
	case ModeFixed:
		return Fixed(value), nil
	case ModeDaily:
		return Daily{Salt: salt}, nil
	default:
		return nil, fmt.Errorf("unknown secret mode %q", mode)
	}
}

// Source is the game.SecretSource contract, restated so this package does not
// depend on the engine.
type Source interface {
	NextSecret(low, high int64) int64
}
