// internal/cryptorand/cryptorand.go
//
// Package cryptorand adapts crypto/rand to the math/rand.Source interface,
// so math/rand helpers (Intn, Perm) can draw from the OS entropy pool.
package cryptorand

import (
	"crypto/rand"
	"encoding/binary"
)

// NewSource returns a Source; it holds no state.
func NewSource() Source {
	return Source{}
}

// Source reads every value from the operating system's entropy pool.
type Source struct{}

// Int63 returns a non-negative random int64. It panics if the entropy
// pool cannot be read.
func (Source) Int63() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) & (1<<63 - 1))
}

// Seed is a no-op; the source cannot be reseeded.
func (Source) Seed(int64) {}
