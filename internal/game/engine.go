// internal/game/engine.go
//
// Core game engine for a single Mastermind session.
// Responsibilities:
//   - Create new games around a generated or fixed secret.
//   - Score guesses using the two-pass exact/color-only algorithm.
//   - Track state transitions: ongoing → won/lost, with a 12-guess limit.
//
// Notes:
//   - Advance is the pure transition function; Game only stores its result.
//   - randomID() is a compact hex identifier for correlating games in the store.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// New constructs a new game with a secret drawn from gen.
func New(gen Generator) *Game {
	return newGame(gen.Generate())
}

// NewWithSecret constructs a game around a caller-chosen secret.
func NewWithSecret(secret Code) (*Game, error) {
	if err := secret.Validate(); err != nil {
		return nil, fmt.Errorf("secret: %w", err)
	}
	return newGame(secret.Clone()), nil
}

func newGame(secret Code) *Game {
	return &Game{
		ID:      randomID(),
		Secret:  secret,
		State:   Start(),
		History: []Turn{},
	}
}

// Start returns the initial state of every game.
func Start() State {
	return State{Turn: 1, Status: StatusOngoing}
}

// Submit validates and scores a guess, storing the resulting state.
// Returns the feedback, the new state, or an error. On error the game
// is left untouched.
func (g *Game) Submit(guess Code) (Feedback, State, error) {
	fb, next, err := Advance(g.Secret, g.State, guess)
	if err != nil {
		return Feedback{}, g.State, err
	}
	g.History = append(g.History, Turn{Guess: guess.Clone(), Feedback: fb})
	g.State = next
	return fb, next, nil
}

// Describe is the read-only projection used for display.
func (g *Game) Describe() State { return g.State }

// Last returns the feedback of the most recent guess, if any.
func (g *Game) Last() (Feedback, bool) {
	if len(g.History) == 0 {
		return Feedback{}, false
	}
	return g.History[len(g.History)-1].Feedback, true
}

// Advance applies one guess to state and returns the feedback and the
// next state. It never mutates its arguments.
//
// Transitions:
//   - Terminal state → ErrGameEnded.
//   - All four pegs exact → won, turn unchanged.
//   - Else if the last allowed attempt was just used → lost.
//   - Else → turn+1, still ongoing.
func Advance(secret Code, st State, guess Code) (Feedback, State, error) {
	if st.Status.Terminal() {
		return Feedback{}, st, fmt.Errorf("%w: status is %s", ErrGameEnded, st.Status)
	}
	if err := guess.Validate(); err != nil {
		return Feedback{}, st, err
	}
	fb, err := Score(secret, guess)
	if err != nil {
		return Feedback{}, st, err
	}

	switch {
	case fb.Solved():
		st.Status = StatusWon
	case st.Turn >= MaxTurns:
		st.Status = StatusLost
	default:
		st.Turn++
	}
	return fb, st, nil
}

// Score implements the two-pass scoring algorithm.
//
// Pass 1:
//   - Count exact matches (same color, same position).
//   - Tally the leftover colors of both codes at non-exact positions.
//
// Pass 2:
//   - For every color, add min(leftover in secret, leftover in guess).
//
// A peg pair counted as exact is never seen by pass 2, so it cannot also
// count as a color-only match. Score is symmetric in its arguments.
func Score(secret, guess Code) (Feedback, error) {
	if len(secret) != CodeLength || len(guess) != CodeLength {
		return Feedback{}, fmt.Errorf("%w: score needs %d pegs on both sides, got %d and %d",
			ErrInvalidInput, CodeLength, len(secret), len(guess))
	}

	var fb Feedback
	var leftSecret, leftGuess [len(Palette) + 1]int

	for i := range secret {
		if guess[i] == secret[i] {
			fb.Exact++
			continue
		}
		leftSecret[idx(secret[i])]++
		leftGuess[idx(guess[i])]++
	}

	for c := 1; c < len(leftSecret); c++ {
		fb.ColorOnly += min(leftSecret[c], leftGuess[c])
	}
	return fb, nil
}

// idx maps a color to its tally slot. Out-of-palette values share slot 0,
// which is never counted.
func idx(c Color) int {
	if !c.Valid() {
		return 0
	}
	return int(c)
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
