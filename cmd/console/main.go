package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/internal/console"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"github.com/rocketscienceinc/tictactoe/internal/usecase"
)

// main - runs a local game in the terminal on in-memory storage.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.LoadEnv()
	if err != nil {
		return err
	}

	conf.Storage = config.StorageMemory

	// the terminal belongs to the UI
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameManager, closer, err := app.NewGameManager(ctx, logger, conf)
	if err != nil {
		return fmt.Errorf("failed to build game manager: %w", err)
	}
	defer closer.Close()

	session, err := console.NewSession(ctx, gameManager, usecase.GameSettings{
		Type:         entity.WithBotType,
		Difficulty:   entity.Difficulty(conf.Game.Difficulty),
		ComputerMark: entity.PlayerO,
	})
	if err != nil {
		return err
	}

	ui := console.NewUI(ctx, session)

	go func() {
		<-ctx.Done()
		ui.Stop()
	}()

	return ui.Run()
}
