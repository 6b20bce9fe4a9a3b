package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/tui"
)

// PlayCmd runs the interactive screen.
type PlayCmd struct {
	LogFile string `type:"path" help:"Write logs to this file; the screen owns the terminal"`
}

func (c *PlayCmd) Run(g *Globals) error {
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	cfg, logger, err := g.load(w)
	if err != nil {
		return err
	}
	ctx := shared.SetupSignalHandler(logger)

	return tui.Run(ctx, newTable(cfg, logger), cfg.Deck.DrawCount, logger)
}
