// internal/game/generator.go
//
// Secret code generation.
// Responsibilities:
//   - Draw four pegs uniformly from Palette, with replacement.
//   - Offer seeded (reproducible), crypto-backed and fixed generators.

package game

import (
	"math/rand"

	"github.com/robalobadob/mastermind/internal/cryptorand"
)

// Generator produces secret codes. Tests substitute fixed generators.
type Generator interface {
	Generate() Code
}

// RandGenerator draws each peg independently and uniformly from Palette,
// with replacement.
type RandGenerator struct {
	r *rand.Rand
}

// NewGenerator wraps an arbitrary source of randomness.
func NewGenerator(src rand.Source) *RandGenerator {
	return &RandGenerator{r: rand.New(src)}
}

// NewSeededGenerator is deterministic for a given seed.
func NewSeededGenerator(seed int64) *RandGenerator {
	return NewGenerator(rand.NewSource(seed))
}

// NewCryptoGenerator draws from crypto/rand.
func NewCryptoGenerator() *RandGenerator {
	return NewGenerator(cryptorand.NewSource())
}

// Generate returns a fresh code of CodeLength independently drawn pegs.
func (g *RandGenerator) Generate() Code {
	code := make(Code, CodeLength)
	for i := range code {
		code[i] = Palette[g.r.Intn(len(Palette))]
	}
	return code
}

// FixedGenerator always returns the same code.
type FixedGenerator Code

// Generate returns a copy of the fixed code.
func (f FixedGenerator) Generate() Code { return Code(f).Clone() }
