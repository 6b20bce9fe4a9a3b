package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/cmd/pokerhand/shared"
	"github.com/lox/pokerhand/internal/config"
	"github.com/lox/pokerhand/internal/deckapi"
	"github.com/lox/pokerhand/internal/render"
	"github.com/lox/pokerhand/internal/table"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string `kong:"default='pokerhand.hcl',env='POKERHAND_CONFIG',type='path',help='HCL config file (optional)'"`
	NoColor bool   `kong:"help='Disable coloured output'"`

	stdout io.Writer
	stderr io.Writer
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a five-card hand given as card codes"`
	Draw     DrawCmd          `cmd:"" help:"Draw hands from a fresh deck and classify them"`
	Play     PlayCmd          `cmd:"" help:"Interactive new deck / draw screen"`
	Serve    ServeCmd         `cmd:"" help:"Serve draws and classifications over WebSocket"`
}

func main() {
	cli := CLI{Globals: Globals{stdout: os.Stdout, stderr: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("pokerhand"),
		kong.Description("Draw cards from a deck service and name the best five-card hand"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		render.DisableColor()
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// load reads the config and builds a logger writing to w.
func (g *Globals) load(w io.Writer) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	logger, err := shared.SetupLogger(cfg.Log.Level, cfg.Log.Format, w)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// newTable wires a deck service session to a fresh table.
func newTable(cfg *config.Config, logger *log.Logger) *table.Table {
	client := deckapi.New(deckapi.Options{
		BaseURL: cfg.Deck.BaseURL,
		Timeout: cfg.DeckTimeout(),
		Logger:  logger,
	})
	session := deckapi.NewSession(client, cfg.Deck.DeckCount)
	return table.New(session, table.Options{Logger: logger})
}
