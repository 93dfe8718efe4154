// internal/session/session.go
//
// A session plays a run of games back to back against one Player.
// Responsibilities:
//   - Create each game from the configured generator.
//   - Loop: ask the player for a guess, submit it, report feedback.
//   - Save every game to the store and record finished games in the ledger.
//
// The player owns all input policy; rejected guesses are reported back
// through Player.Rejected and the same turn is asked again.

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/ledger"
	"github.com/robalobadob/mastermind/internal/store"
)

// MaxGames bounds a single run.
const MaxGames = 20

// Player is the interactive collaborator.
type Player interface {
	// Guess blocks until the player supplies a code for the given state.
	Guess(ctx context.Context, st game.State) (game.Code, error)
	// Rejected reports a guess the engine refused.
	Rejected(guess game.Code, err error)
	// Scored reports the feedback of an accepted guess.
	Scored(guess game.Code, fb game.Feedback, st game.State)
	// Finished is called once per game after it reaches a terminal state.
	Finished(g *game.Game)
}

// Config controls how games are created.
type Config struct {
	Generator game.Generator
	DailyDate string // set for daily runs, recorded in the ledger
}

// Session plays games and keeps their records.
type Session struct {
	cfg    Config
	store  store.Store
	ledger *ledger.Ledger
	now    func() time.Time
}

// New wires a session. A nil generator falls back to crypto randomness.
func New(cfg Config, st store.Store, l *ledger.Ledger) *Session {
	if cfg.Generator == nil {
		cfg.Generator = game.NewCryptoGenerator()
	}
	return &Session{cfg: cfg, store: st, ledger: l, now: time.Now}
}

// Report is what a finished run hands back for display.
type Report struct {
	Summary ledger.Summary
	Recent  []ledger.Row // newest first, one row per game of this run
	Games   []*game.Game // oldest first, with full turn history
}

// Run plays n games and reports the ledger summary, the recorded rows
// and the games kept in the store.
func (s *Session) Run(ctx context.Context, p Player, n int) (Report, error) {
	if n < 1 || n > MaxGames {
		return Report{}, fmt.Errorf("%w: games must be between 1 and %d, got %d", game.ErrInvalidInput, MaxGames, n)
	}
	for i := 0; i < n; i++ {
		g, err := s.Play(ctx, p)
		if err != nil {
			return Report{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		log.Info().Str("game", g.ID).Int("played", i+1).Int("of", n).Str("status", string(g.State.Status)).Msg("game finished")
	}
	return s.Report(ctx, n)
}

// Report gathers the summary, the last limit ledger rows and every
// stored game.
func (s *Session) Report(ctx context.Context, limit int) (Report, error) {
	sum, err := s.ledger.Summary(ctx)
	if err != nil {
		return Report{}, err
	}
	recent, err := s.ledger.Recent(ctx, limit)
	if err != nil {
		return Report{}, fmt.Errorf("recent games: %w", err)
	}
	games, err := s.store.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list games: %w", err)
	}
	return Report{Summary: sum, Recent: recent, Games: games}, nil
}

// Play runs one game to completion.
func (s *Session) Play(ctx context.Context, p Player) (*game.Game, error) {
	g := game.New(s.cfg.Generator)
	start := s.now()
	if err := s.store.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("save game: %w", err)
	}
	log.Debug().Str("game", g.ID).Msg("game started")

	for !g.State.Status.Terminal() {
		if err := ctx.Err(); err != nil {
			return g, err
		}
		guess, err := p.Guess(ctx, g.Describe())
		if err != nil {
			return g, fmt.Errorf("read guess: %w", err)
		}
		fb, st, err := g.Submit(guess)
		if errors.Is(err, game.ErrInvalidInput) {
			log.Debug().Err(err).Str("game", g.ID).Msg("guess rejected")
			p.Rejected(guess, err)
			continue
		}
		if err != nil {
			return g, err
		}
		log.Debug().Str("game", g.ID).Int("turn", len(g.History)).
			Int("exact", fb.Exact).Int("colorOnly", fb.ColorOnly).Msg("guess scored")
		if err := s.store.Save(ctx, g); err != nil {
			return g, fmt.Errorf("save game: %w", err)
		}
		p.Scored(guess, fb, st)
	}

	res, err := ledger.ResultOf(g)
	if err != nil {
		return g, err
	}
	res.DailyDate = s.cfg.DailyDate
	res.Elapsed = s.now().Sub(start)
	if err := s.ledger.Record(ctx, res); err != nil {
		log.Warn().Err(err).Str("game", g.ID).Msg("record result")
	}
	p.Finished(g)
	return g, nil
}
