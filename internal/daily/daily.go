// internal/daily/daily.go
//
// Deterministic per-day values for the daily secret mode.
// The same date and salt always give the same value, so every player of a given day
// guesses the same number without any stored state.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Value returns a deterministic value in [low, high] for a date using
// HMAC(salt, YYYY-MM-DD). Callers must ensure low <= high.
func Value(date time.Time, salt string, low, high int64) int64 {
	n := digest(DateKey(date), salt)
	span := uint64(high) - uint64(low)
	if span == math.MaxUint64 {
		return int64(n)
	}
	return int64(uint64(low) + n%(span+1))
}

// digest takes the first 8 bytes of the MAC as a big-endian uint64.
func digest(key, salt string) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(key))
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}
