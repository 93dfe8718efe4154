// internal/console/console.go
//
// Line-oriented terminal front end.
// Responsibilities:
//   - Prompt for the number of games and for each guess, re-prompting on
//     invalid input.
//   - Ask for confirmation before a guess is submitted.
//   - Render the board line, peg counts and the end-of-game reveal.
//
// Console implements session.Player. Input ending early surfaces as io.EOF;
// a cancelled context interrupts any prompt that is waiting for a line.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/session"
)

// ANSI foreground colors per peg.
var ansi = map[game.Color]string{
	game.Black:  "\x1b[90m",
	game.White:  "\x1b[97m",
	game.Red:    "\x1b[31m",
	game.Green:  "\x1b[32m",
	game.Blue:   "\x1b[34m",
	game.Yellow: "\x1b[33m",
}

const ansiReset = "\x1b[0m"

// line is one result of the background reader.
type line struct {
	text string
	err  error
}

// Console talks to a human over a reader/writer pair.
type Console struct {
	lines <-chan line
	out   io.Writer
	color bool
}

// New builds a Console. color enables ANSI peg colors.
//
// Reads happen on their own goroutine so a blocked read never keeps a
// prompt from observing cancellation. The goroutine stays parked on the
// reader until input arrives or ends.
func New(in io.Reader, out io.Writer, color bool) *Console {
	ch := make(chan line)
	go scan(in, ch)
	return &Console{lines: ch, out: out, color: color}
}

func scan(in io.Reader, ch chan<- line) {
	defer close(ch)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		ch <- line{text: sc.Text()}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	ch <- line{err: err}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// readLine returns the next trimmed line, io.EOF when input ends, or the
// context's error once ctx is done.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Welcome prints the banner.
func (c *Console) Welcome() {
	c.printf("Welcome to Mastermind\n")
}

// AskGames prompts until a number between 1 and limit is entered.
func (c *Console) AskGames(ctx context.Context, limit int) (int, error) {
	c.printf("Please input how many games you want to play\nThe value must be between 1-%d\n", limit)
	for {
		text, err := c.readLine(ctx)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(text)
		if err == nil && n >= 1 && n <= limit {
			return n, nil
		}
		c.printf("Please enter a valid number\n")
	}
}

// Guess implements session.Player. It loops until four valid colors are
// entered and confirmed.
func (c *Console) Guess(ctx context.Context, st game.State) (game.Code, error) {
	c.printf("\nTurn: %d/%d\n", st.Turn, game.MaxTurns)
	for {
		c.printf("Enter %d colors (%s), by name or number:\n", game.CodeLength, paletteHint())
		text, err := c.readLine(ctx)
		if err != nil {
			return nil, err
		}
		code, err := game.ParseCode(text)
		if err != nil {
			c.printf("%s\n", describe(err))
			continue
		}
		c.printf("\n%s\n\n", c.Board(code))
		ok, err := c.confirm(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			return code, nil
		}
	}
}

func (c *Console) confirm(ctx context.Context) (bool, error) {
	c.printf("Are you sure you want to use this sequence of pegs as a guess?\n[Y/N]\n")
	for {
		text, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(text) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		c.printf("Please answer Y or N\n")
	}
}

// Rejected implements session.Player.
func (c *Console) Rejected(_ game.Code, err error) {
	c.printf("%s\n", describe(err))
}

// Scored implements session.Player. The final guess is reported by Finished.
func (c *Console) Scored(guess game.Code, fb game.Feedback, st game.State) {
	if st.Status.Terminal() {
		return
	}
	c.printf("%s\nYour answer resulted in %d red peg(s) and %d white peg(s)\n", c.Board(guess), fb.Exact, fb.ColorOnly)
}

// Finished implements session.Player.
func (c *Console) Finished(g *game.Game) {
	switch g.Describe().Status {
	case game.StatusWon:
		c.printf("Congrats, You have won in %d turn(s)! The code was:\n", g.Describe().Turn)
	default:
		c.printf("You have lost! The code was:\n")
	}
	c.printf("\n%s\n\n", c.Board(g.Secret))
}

// Report prints the run totals, the recorded games and each game's board.
func (c *Console) Report(r session.Report) {
	s := r.Summary
	c.printf("Games played: %d, won: %d, lost: %d\n", s.Played, s.Won, s.Lost)
	if s.Won > 0 {
		c.printf("Best game: %d turn(s), average win: %.1f turn(s), current streak: %d\n", s.BestTurns, s.AvgTurns, s.Streak)
	}

	if len(r.Recent) > 0 {
		c.printf("\nRecent games:\n")
		for _, row := range r.Recent {
			c.printf("  %s  %-4s  %2d turn(s)  %s\n", row.GameID, row.Status, row.Turns, row.Secret)
		}
	}

	for i, g := range r.Games {
		c.printf("\nGame %d (%s): %s\n", i+1, g.Describe().Status, strings.Join(g.Secret.Names(), ", "))
		for n, t := range g.History {
			c.printf("%2d %s  %d red, %d white\n", n+1, c.Board(t.Guess), t.Feedback.Exact, t.Feedback.ColorOnly)
		}
	}
}

// Board renders "| RED | BLUE | GREEN | YELLOW |".
func (c *Console) Board(code game.Code) string {
	var b strings.Builder
	b.WriteString("|")
	for _, p := range code {
		b.WriteString(" ")
		if c.color {
			b.WriteString(ansi[p] + p.String() + ansiReset)
		} else {
			b.WriteString(p.String())
		}
		b.WriteString(" |")
	}
	return b.String()
}

func paletteHint() string {
	parts := make([]string, len(game.Palette))
	for i, p := range game.Palette {
		parts[i] = fmt.Sprintf("%d=%s", i+1, p.Name())
	}
	return strings.Join(parts, ", ")
}

func describe(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidInput):
		return "Please choose a valid guess: " + strings.TrimPrefix(err.Error(), game.ErrInvalidInput.Error()+": ")
	case errors.Is(err, game.ErrGameEnded):
		return "This game is already over"
	}
	return err.Error()
}
