// Package main implements Concentration as a terminal game. By default it
// runs a full-screen interface and logs to concentration.log; with
// game.interface set to plain it reads commands line by line from stdin,
// redraws the board on stdout and logs to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phrazzld/concentration/internal/config"
	"github.com/phrazzld/concentration/internal/game"
	"github.com/phrazzld/concentration/internal/platform/logger"
	"github.com/phrazzld/concentration/internal/render"
)

const logFile = "concentration.log"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("concentration: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logOut := io.Writer(os.Stderr)
	if cfg.Game.Interface == "tui" {
		f, err := tea.LogToFile(logFile, "concentration")
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	l, err := logger.SetupWithWriter(cfg.Server, logOut)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m, err := game.New(game.WithSeed(seed), game.WithLogger(l))
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	if cfg.Game.Interface == "tui" {
		model, err := newTUIModel(m, cfg.Game.Columns, l)
		if err != nil {
			return err
		}
		return runTUI(ctx, model)
	}

	view := render.NewText(os.Stdout, os.Stdout, cfg.Game.Columns, render.DefaultLabels, l)
	m.AddObserver(view)

	p := newPlayer(m, os.Stdout, os.Stderr)
	return p.play(ctx, os.Stdin, view)
}
