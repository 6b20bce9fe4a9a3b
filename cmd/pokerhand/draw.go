package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/deckapi"
	"github.com/lox/pokerhand/internal/render"
	"github.com/lox/pokerhand/internal/table"
)

// DrawCmd draws one or more hands from a fresh deck.
type DrawCmd struct {
	Count int  `help:"Cards per draw (defaults to the configured draw count)"`
	Hands int  `default:"1" help:"Number of five-card hands to draw; classified in parallel"`
	JSON  bool `name:"json" help:"Print JSON"`
}

func (c *DrawCmd) Run(g *Globals) error {
	cfg, logger, err := g.load(g.stderr)
	if err != nil {
		return err
	}
	ctx := shared.SetupSignalHandler(logger)

	if c.Count == 0 {
		c.Count = cfg.Deck.DrawCount
	}
	return c.run(ctx, newTable(cfg, logger), g.stdout)
}

func (c *DrawCmd) run(ctx context.Context, tbl *table.Table, w io.Writer) error {
	if c.Count < 0 || c.Count > deckapi.MaxDrawCount {
		return fmt.Errorf("%w: %d", deckapi.ErrInvalidCount, c.Count)
	}
	if _, err := tbl.Fresh(ctx); err != nil {
		return err
	}

	var results []*table.Result
	if c.Hands > 1 {
		rs, err := tbl.DealHands(ctx, c.Hands)
		if err != nil {
			return err
		}
		results = rs
	} else {
		r, err := tbl.Deal(ctx, c.Count)
		if err != nil {
			return err
		}
		results = []*table.Result{r}
	}

	if c.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintln(w, render.Status(tbl.Status()))
	for _, r := range results {
		fmt.Fprintln(w, render.Result(r))
	}
	if len(results) > 1 {
		if best, ok := tbl.Best(); ok {
			fmt.Fprintf(w, "Best: #%d %s\n", best.Number, render.Label(best.Evaluation.Category))
		}
	}
	return nil
}
