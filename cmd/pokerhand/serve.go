package main

import (
	"github.com/coder/quartz"

	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/server"
	"github.com/lox/pokerhand/internal/table"
)

// ServeCmd runs the WebSocket endpoint.
type ServeCmd struct {
	Listen string `help:"Listen address (defaults to the configured server address)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.load(g.stderr)
	if err != nil {
		return err
	}
	ctx := shared.SetupSignalHandler(logger)

	addr := c.Listen
	if addr == "" {
		addr = cfg.Server.Address
	}

	srv := server.NewServer(addr, func() *table.Table {
		return newTable(cfg, logger)
	}, logger, quartz.NewReal())
	return srv.Start(ctx)
}
