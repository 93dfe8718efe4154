// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Color:    one peg color from the fixed six-color palette.
//   - Code:     an ordered sequence of four pegs (secret or guess).
//   - Feedback: red/white peg counts for one scored guess.
//   - State:    turn counter + status of a single game.
//   - Game:     a single in-progress or finished game.

package game

import "errors"

const (
	// CodeLength is the number of pegs in every secret and guess.
	CodeLength = 4
	// MaxTurns is the number of guesses a player gets before losing.
	MaxTurns = 12
)

// Errors surfaced to the collaborator. Both are precondition violations;
// the engine never retries and never swallows them.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrGameEnded    = errors.New("game already ended")
)

// Color is a peg color. The zero value is not a valid color.
type Color uint8

const (
	Black Color = iota + 1
	White
	Red
	Green
	Blue
	Yellow
)

// Palette lists every valid color in display order.
var Palette = [...]Color{Black, White, Red, Green, Blue, Yellow}

// Code is an ordered sequence of pegs. A valid code has exactly
// CodeLength pegs, each drawn from Palette.
type Code []Color

// Feedback is the result of scoring one guess.
//   - Exact:     pegs matching both color and position (red pegs).
//   - ColorOnly: pegs whose color appears at another, still unmatched
//     position of the secret (white pegs).
type Feedback struct {
	Exact     int
	ColorOnly int
}

// Solved reports whether every peg was an exact match.
func (f Feedback) Solved() bool { return f.Exact == CodeLength }

// Status is the coarse lifecycle of a game.
type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// State is the read-only projection handed to the collaborator.
// Turn is the attempt about to be made while ongoing, and the last
// attempt made once terminal.
type State struct {
	Turn   int
	Status Status
}

// Turn records one scored guess.
type Turn struct {
	Guess    Code
	Feedback Feedback
}

// Game holds the state of a single Mastermind game.
type Game struct {
	ID      string // Unique game identifier (random hex string).
	Secret  Code   // Hidden code; never mutated after creation.
	State   State  // Current turn and status.
	History []Turn // Every scored guess, oldest first.
}
