package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lox/pokerhand/internal/render"
	"github.com/lox/pokerhand/poker"
)

// ClassifyCmd classifies cards given on the command line.
type ClassifyCmd struct {
	Cards   []string `arg:"" name:"card" help:"Card codes, e.g. 10S JS QS KS AS"`
	Signals bool     `help:"Print every pattern signal"`
	JSON    bool     `name:"json" help:"Print JSON"`
}

type classifyOutput struct {
	Cards    []string           `json:"cards"`
	Category poker.HandCategory `json:"category"`
	Label    string             `json:"label"`
	Signals  map[string]bool    `json:"signals,omitempty"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	return c.run(g.stdout)
}

func (c *ClassifyCmd) run(w io.Writer) error {
	cards, err := poker.ParseCodes(c.Cards)
	if err != nil {
		return err
	}
	ev, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	if c.JSON {
		out := classifyOutput{
			Cards:    c.Cards,
			Category: ev.Category,
			Label:    ev.Category.String(),
		}
		if c.Signals {
			out.Signals = ev.Signals.Map()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintln(w, render.Evaluation(ev))
	if c.Signals {
		fmt.Fprintln(w, render.Signals(ev.Signals))
	}
	return nil
}
