package main

import (
	"log/slog"
	"os"

	"github.com/supercore/words/internal/config"
	"github.com/supercore/words/internal/journal"
	"github.com/supercore/words/internal/store"
	"github.com/supercore/words/internal/ui"
)

func main() {
	cfg, err := config.Load(config.DefaultPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		slog.Error("failed to open card store", "path", cfg.StorePath, "error", err)
		os.Exit(1)
	}

	var jnl *journal.DB
	if cfg.JournalPath != "" {
		jnl, err = journal.Open(cfg.JournalPath)
		if err != nil {
			slog.Error("failed to open review journal", "path", cfg.JournalPath, "error", err)
			os.Exit(1)
		}
		defer jnl.Close()
	}

	a := &app{
		cfg:     cfg,
		store:   st,
		journal: jnl,
		prompt:  ui.NewTerminal(os.Stdin, os.Stdout),
	}
	if err := a.run(); err != nil {
		slog.Error("operation failed", "error", err)
		os.Exit(1)
	}
}
