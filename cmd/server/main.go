package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sudoku-server/internal/app"
	"github.com/vancomm/sudoku-server/internal/config"
	"github.com/vancomm/sudoku-server/internal/sudoku"
)

//go:embed migrations/*.sql
var migrations embed.FS

func main() {
	opts := &slog.HandlerOptions{}
	if config.Development() {
		opts.Level = slog.LevelDebug
		sudoku.Log.SetLevel(logrus.DebugLevel)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	a := app.New(logger, migrations)

	if err := a.Start(ctx); err != nil {
		logger.Error("failed to start server", slog.Any("error", err))
	}
}
