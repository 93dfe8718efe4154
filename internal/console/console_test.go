package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/ledger"
	"github.com/robalobadob/mastermind/internal/session"
)

func TestAskGamesReprompts(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("abc\n0\n21\n3\n"), &out, false)
	n, err := c.AskGames(context.Background(), 20)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("AskGames = %d, want 3", n)
	}
	if got := strings.Count(out.String(), "Please enter a valid number"); got != 3 {
		t.Fatalf("reprompted %d times, want 3", got)
	}
}

func TestAskGamesEOF(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard, false)
	if _, err := c.AskGames(context.Background(), 20); !errors.Is(err, io.EOF) {
		t.Fatalf("err = %v, want io.EOF", err)
	}
}

func TestGuessWithConfirmation(t *testing.T) {
	input := strings.Join([]string{
		"red blue",              // too short
		"red blue green purple", // unknown color
		"red blue green yellow",
		"maybe", // not Y/N
		"n",     // re-enter
		"1 2 3 4",
		"y",
	}, "\n") + "\n"
	var out bytes.Buffer
	c := New(strings.NewReader(input), &out, false)

	code, err := c.Guess(context.Background(), game.Start())
	if err != nil {
		t.Fatal(err)
	}
	if code.String() != "BLACK WHITE RED GREEN" {
		t.Fatalf("Guess = %v", code)
	}
	s := out.String()
	for _, want := range []string{
		"Turn: 1/12",
		"Please choose a valid guess: code must have 4 pegs, got 2",
		`Please choose a valid guess: unknown color "PURPLE"`,
		"| RED | BLUE | GREEN | YELLOW |",
		"Please answer Y or N",
		"| BLACK | WHITE | RED | GREEN |",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q\n%s", want, s)
		}
	}
}

func TestGuessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(strings.NewReader("red red red red\ny\n"), io.Discard, false)
	if _, err := c.Guess(ctx, game.Start()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestScoredAndFinished(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, false)

	secret := game.Code{game.Red, game.Red, game.Blue, game.Green}
	g, err := game.NewWithSecret(secret)
	if err != nil {
		t.Fatal(err)
	}
	guess := game.Code{game.Blue, game.Blue, game.Blue, game.Red}
	fb, st, err := g.Submit(guess)
	if err != nil {
		t.Fatal(err)
	}
	c.Scored(guess, fb, st)
	fb, st, err = g.Submit(secret)
	if err != nil {
		t.Fatal(err)
	}
	c.Scored(secret, fb, st)
	c.Finished(g)

	s := out.String()
	if !strings.Contains(s, "Your answer resulted in 1 red peg(s) and 1 white peg(s)") {
		t.Fatalf("missing feedback line:\n%s", s)
	}
	if strings.Count(s, "resulted in") != 1 {
		t.Fatalf("winning guess should not print feedback:\n%s", s)
	}
	if !strings.Contains(s, "You have won in 2 turn(s)! The code was:") || !strings.Contains(s, "| RED | RED | BLUE | GREEN |") {
		t.Fatalf("missing reveal:\n%s", s)
	}
}

func TestBoardColor(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard, true)
	b := c.Board(game.Code{game.Red, game.Blue, game.Green, game.Yellow})
	if !strings.Contains(b, "\x1b[31mRED\x1b[0m") {
		t.Fatalf("Board = %q", b)
	}
}

func TestReport(t *testing.T) {
	secret := game.Code{game.Red, game.Blue, game.Green, game.Yellow}
	g, err := game.NewWithSecret(secret)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := g.Submit(game.Code{game.Red, game.Red, game.Red, game.Red}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := g.Submit(secret); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	New(strings.NewReader(""), &out, false).Report(session.Report{
		Summary: ledger.Summary{Played: 3, Won: 2, Lost: 1, Streak: 1, BestTurns: 4, AvgTurns: 5.5},
		Recent:  []ledger.Row{{GameID: g.ID, Status: game.StatusWon, Turns: 2, Secret: secret.String()}},
		Games:   []*game.Game{g},
	})
	s := out.String()
	for _, want := range []string{
		"Games played: 3, won: 2, lost: 1",
		"average win: 5.5",
		"Recent games:",
		g.ID + "  won    2 turn(s)  RED BLUE GREEN YELLOW",
		"Game 1 (won): Red, Blue, Green, Yellow",
		" 1 | RED | RED | RED | RED |  1 red, 0 white",
		" 2 | RED | BLUE | GREEN | YELLOW |  4 red, 0 white",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Report output missing %q\n%s", want, s)
		}
	}
}

func TestGuessInterruptedWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	c := New(pr, io.Discard, false)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.Guess(ctx, game.Start())
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("Guess returned before cancel: %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Guess still blocked after cancel")
	}
}

func TestAskGamesInterruptedWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := New(pr, io.Discard, false).AskGames(ctx, 20); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
}
