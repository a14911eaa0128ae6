package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/tickit/internal/config"
	"github.com/td0m/tickit/internal/logging"
	"github.com/td0m/tickit/pkg/auth"
	"github.com/td0m/tickit/pkg/persist"
	"github.com/td0m/tickit/pkg/prefs"
	"github.com/td0m/tickit/pkg/storage"
	"github.com/td0m/tickit/pkg/tasklist"
)

func check(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "tickit:", err)
		os.Exit(1)
	}
}

func main() {
	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	check(err)

	logger, closeLog, err := logging.Open(cfg.LoggingOptions())
	check(err)
	defer closeLog()

	ctx := context.Background()
	backend, closer, err := persist.Open(ctx, cfg.PersistOptions())
	check(err)
	defer closer.Close()
	logger.Info("starting", "backend", cfg.Backend, "data", cfg.DataDir, "config", cfg.File)

	store := storage.New(backend, storage.WithLogger(logger))

	session := auth.NewSession(store)

	p := prefs.New(store)
	check(p.Load(ctx))

	a := newApp(ctx, logger, session, p, tasklist.NewController(store))
	program := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		logger.Error("ui stopped", "err", err)
		check(err)
	}
}
