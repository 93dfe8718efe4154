package cryptorand

import (
	"math/rand"
	"testing"
)

func TestInt63NonNegative(t *testing.T) {
	src := NewSource()
	for i := 0; i < 1000; i++ {
		if v := src.Int63(); v < 0 {
			t.Fatalf("Int63() = %d, want >= 0", v)
		}
	}
}

func TestUsableAsRandSource(t *testing.T) {
	r := rand.New(NewSource())
	for i := 0; i < 100; i++ {
		if n := r.Intn(6); n < 0 || n >= 6 {
			t.Fatalf("Intn(6) = %d", n)
		}
	}
}
