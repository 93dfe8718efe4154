// internal/ledger/ledger.go
//
// Session scoreboard. Every finished game is recorded once; Summary and
// Recent answer the end-of-run questions (how many played, won, streak,
// best game).

package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/robalobadob/mastermind/internal/game"
)

// Result is one finished game.
type Result struct {
	GameID    string
	Status    game.Status
	Turns     int
	Secret    game.Code
	DailyDate string // "YYYY-MM-DD" for daily games, empty otherwise
	Elapsed   time.Duration
}

// Summary aggregates every recorded game.
type Summary struct {
	Played    int
	Won       int
	Lost      int
	Streak    int     // consecutive wins ending with the latest game
	BestTurns int     // fewest turns in a won game, 0 if none
	AvgTurns  float64 // mean turns of won games, 0 if none
}

// Row is one line of the Recent listing.
type Row struct {
	GameID string
	Status game.Status
	Turns  int
	Secret string
}

// Ledger records finished games in an in-memory SQLite database.
type Ledger struct{ db *sql.DB }

// Open creates an empty, migrated ledger.
func Open() (*Ledger, error) {
	db, err := openDB()
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate ledger: %w", err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database; its contents are gone afterwards.
func (l *Ledger) Close() error { return l.db.Close() }

// ResultOf converts a terminal game into a Result.
func ResultOf(g *game.Game) (Result, error) {
	st := g.Describe()
	if !st.Status.Terminal() {
		return Result{}, fmt.Errorf("game %s is still %s", g.ID, st.Status)
	}
	return Result{GameID: g.ID, Status: st.Status, Turns: st.Turn, Secret: g.Secret.Clone()}, nil
}

// Record inserts a finished game. Recording the same game twice is a no-op.
func (l *Ledger) Record(ctx context.Context, r Result) error {
	if !r.Status.Terminal() {
		return fmt.Errorf("record %s: status %q is not terminal", r.GameID, r.Status)
	}
	var daily any
	if r.DailyDate != "" {
		daily = r.DailyDate
	}
	_, err := l.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO games
            (id, status, turns, secret, daily_date, elapsed_ms, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, string(r.Status), r.Turns, r.Secret.String(), daily,
		r.Elapsed.Milliseconds(), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// Summary computes totals, the current win streak and turn statistics.
func (l *Ledger) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	var best sql.NullInt64
	var avg sql.NullFloat64
	err := l.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(status = 'won'), 0),
               COALESCE(SUM(status = 'lost'), 0),
               MIN(CASE WHEN status = 'won' THEN turns END),
               AVG(CASE WHEN status = 'won' THEN turns END)
        FROM games`,
	).Scan(&s.Played, &s.Won, &s.Lost, &best, &avg)
	if err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}
	s.BestTurns = int(best.Int64)
	s.AvgTurns = avg.Float64

	rows, err := l.db.QueryContext(ctx, `SELECT status FROM games ORDER BY seq DESC`)
	if err != nil {
		return Summary{}, fmt.Errorf("streak: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return Summary{}, err
		}
		if game.Status(status) != game.StatusWon {
			break
		}
		s.Streak++
	}
	return s, rows.Err()
}

// Recent returns up to limit games, newest first. Default limit is 20.
func (l *Ledger) Recent(ctx context.Context, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := l.db.QueryContext(ctx, `
        SELECT id, status, turns, secret
        FROM games
        ORDER BY seq DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Row, 0, limit)
	for rows.Next() {
		var r Row
		var status string
		if err := rows.Scan(&r.GameID, &status, &r.Turns, &r.Secret); err != nil {
			return nil, err
		}
		r.Status = game.Status(status)
		out = append(out, r)
	}
	return out, rows.Err()
}
