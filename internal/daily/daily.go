// Package daily derives the shared "code of the day".
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/mastermind/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed returns a deterministic seed for a date using HMAC(salt, YYYY-MM-DD).
func Seed(date time.Time, salt string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes, sign bit cleared
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}

// Generator returns a code generator seeded for date. Every caller using
// the same salt gets the same sequence of codes that day.
func Generator(date time.Time, salt string) *game.RandGenerator {
	return game.NewSeededGenerator(Seed(date, salt))
}
