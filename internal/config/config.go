// Package config loads pokerhand settings from an HCL file with environment
// variable overrides.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Environment variables that override file settings
const (
	EnvDeckURL   = "POKERHAND_DECK_URL"
	EnvDrawCount = "POKERHAND_DRAW_COUNT"
	EnvLogLevel  = "POKERHAND_LOG_LEVEL"
	EnvListen    = "POKERHAND_LISTEN"
)

// Config is the complete configuration
type Config struct {
	Deck   *DeckSettings   `hcl:"deck,block"`
	Log    *LogSettings    `hcl:"log,block"`
	Server *ServerSettings `hcl:"server,block"`
}

// DeckSettings configures the deck service client
type DeckSettings struct {
	BaseURL   string `hcl:"base_url,optional"`
	DeckCount int    `hcl:"deck_count,optional"`
	DrawCount int    `hcl:"draw_count,optional"`
	Timeout   int    `hcl:"timeout,optional"` // seconds
}

// LogSettings configures logging
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// ServerSettings configures the websocket endpoint
type ServerSettings struct {
	Address string `hcl:"address,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Deck: &DeckSettings{
			BaseURL:   "https://deckofcardsapi.com/api/deck",
			DeckCount: 1,
			DrawCount: 5,
			Timeout:   10,
		},
		Log: &LogSettings{
			Level:  "info",
			Format: "text",
		},
		Server: &ServerSettings{
			Address: "localhost:8080",
		},
	}
}

// Load reads filename (defaults when it does not exist), applies defaults for
// anything unset, then applies environment overrides and validates.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			parsed, err := parseFile(filename)
			if err != nil {
				return nil, err
			}
			cfg = parsed
			cfg.applyDefaults()
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseFile(filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Deck == nil {
		c.Deck = defaults.Deck
	}
	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Server == nil {
		c.Server = defaults.Server
	}

	if c.Deck.BaseURL == "" {
		c.Deck.BaseURL = defaults.Deck.BaseURL
	}
	if c.Deck.DeckCount == 0 {
		c.Deck.DeckCount = defaults.Deck.DeckCount
	}
	if c.Deck.DrawCount == 0 {
		c.Deck.DrawCount = defaults.Deck.DrawCount
	}
	if c.Deck.Timeout == 0 {
		c.Deck.Timeout = defaults.Deck.Timeout
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
	if c.Server.Address == "" {
		c.Server.Address = defaults.Server.Address
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDeckURL); v != "" {
		c.Deck.BaseURL = v
	}
	if v := os.Getenv(EnvDrawCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvDrawCount, err)
		}
		c.Deck.DrawCount = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvListen); v != "" {
		c.Server.Address = v
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.Deck.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid deck base_url: %q", c.Deck.BaseURL)
	}
	if c.Deck.DeckCount < 1 {
		return fmt.Errorf("deck_count must be positive, got %d", c.Deck.DeckCount)
	}
	if c.Deck.DrawCount < 1 || c.Deck.DrawCount > 52 {
		return fmt.Errorf("draw_count must be between 1 and 52, got %d", c.Deck.DrawCount)
	}
	if c.Deck.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validFormats := map[string]bool{
		"text":   true,
		"json":   true,
		"logfmt": true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	return nil
}

// DeckTimeout returns the deck request timeout
func (c *Config) DeckTimeout() time.Duration {
	return time.Duration(c.Deck.Timeout) * time.Second
}
