package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/daily"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/ledger"
	"github.com/robalobadob/mastermind/internal/session"
	"github.com/robalobadob/mastermind/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			log.Info().Msg("session abandoned")
			return
		}
		log.Fatal().Err(err).Msg("session failed")
	}
}

func setupLogger(level string) {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: colorable.NewColorableStderr(), TimeFormat: time.Kitchen})
	}
}

func run(ctx context.Context, cfg Config, in io.Reader) error {
	color := !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	ui := console.New(in, colorable.NewColorableStdout(), color)

	l, err := ledger.Open()
	if err != nil {
		return err
	}
	defer l.Close()

	scfg := session.Config{}
	switch {
	case cfg.Daily:
		now := time.Now()
		scfg.Generator = daily.Generator(now, cfg.DailySalt)
		scfg.DailyDate = daily.DateKey(now)
		log.Info().Str("date", scfg.DailyDate).Msg("daily challenge")
	case cfg.Seed != 0:
		scfg.Generator = game.NewSeededGenerator(cfg.Seed)
		log.Info().Int64("seed", cfg.Seed).Msg("seeded codes")
	}
	sess := session.New(scfg, store.NewMemoryStore(), l)

	ui.Welcome()
	games := cfg.Games
	if games == 0 {
		if games, err = ui.AskGames(ctx, cfg.MaxGames); err != nil {
			return err
		}
	}

	rep, err := sess.Run(ctx, ui, games)
	if err != nil {
		return err
	}
	ui.Report(rep)
	return nil
}
