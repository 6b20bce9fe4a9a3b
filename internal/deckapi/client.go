// Package deckapi talks to a deckofcardsapi-compatible deck service: it
// creates shuffled decks, draws cards from them and tracks what remains.
package deckapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

const (
	// DefaultBaseURL is the public deck service.
	DefaultBaseURL = "https://deckofcardsapi.com/api/deck"

	// DefaultDrawCount is used when a draw asks for zero cards.
	DefaultDrawCount = 5

	// MaxDrawCount is the most cards a single draw may request.
	MaxDrawCount = 52

	DefaultTimeout = 10 * time.Second

	maxResponseBytes = 1 << 20
)

var (
	// ErrNoDeck indicates a draw was attempted without a deck.
	ErrNoDeck = errors.New("deckapi: no deck")

	// ErrInvalidCount indicates a draw count outside 0..MaxDrawCount.
	ErrInvalidCount = errors.New("deckapi: invalid draw count")

	// ErrAPI indicates the service answered but reported failure.
	ErrAPI = errors.New("deckapi: request rejected")

	// ErrUnavailable indicates the service could not be reached or answered
	// with an unexpected status.
	ErrUnavailable = errors.New("deckapi: unavailable")
)

// Options configures a Client. Zero values select defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Clock      quartz.Clock
	Logger     *log.Logger
}

// Client issues requests against the deck service. It holds no deck state
// and is safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	clock   quartz.Clock
	logger  *log.Logger
}

// New creates a deck service client.
func New(opts Options) *Client {
	c := &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		timeout: opts.Timeout,
		http:    opts.HTTPClient,
		clock:   opts.Clock,
		logger:  opts.Logger,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.logger = c.logger.WithPrefix("deckapi")
	return c
}

// Deck describes a deck held by the service.
type Deck struct {
	ID        string `json:"deck_id"`
	Remaining int    `json:"remaining"`
	Shuffled  bool   `json:"shuffled"`
}

// Draw is the result of drawing from a deck.
type Draw struct {
	DeckID    string `json:"deck_id"`
	Cards     []Card `json:"cards"`
	Remaining int    `json:"remaining"`
}

type response struct {
	Success   bool   `json:"success"`
	DeckID    string `json:"deck_id"`
	Remaining int    `json:"remaining"`
	Shuffled  bool   `json:"shuffled"`
	Cards     []Card `json:"cards"`
	Error     string `json:"error,omitempty"`
}

// NewDeck asks the service for a freshly shuffled deck built from deckCount
// standard decks, jokers excluded.
func (c *Client) NewDeck(ctx context.Context, deckCount int) (*Deck, error) {
	if deckCount <= 0 {
		deckCount = 1
	}
	q := url.Values{}
	q.Set("deck_count", strconv.Itoa(deckCount))
	q.Set("jokers_enabled", "false")

	resp, err := c.get(ctx, "/new/shuffle/", q)
	if err != nil {
		return nil, fmt.Errorf("new deck: %w", err)
	}

	c.logger.Info("New deck", "deck", resp.DeckID, "remaining", resp.Remaining)
	return &Deck{ID: resp.DeckID, Remaining: resp.Remaining, Shuffled: resp.Shuffled}, nil
}

// Draw removes count cards from the deck. A count of zero draws
// DefaultDrawCount cards.
func (c *Client) Draw(ctx context.Context, deckID string, count int) (*Draw, error) {
	if deckID == "" {
		return nil, ErrNoDeck
	}
	count, err := drawCount(count)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("count", strconv.Itoa(count))

	resp, err := c.get(ctx, "/"+url.PathEscape(deckID)+"/draw/", q)
	if err != nil {
		return nil, fmt.Errorf("draw %d from %s: %w", count, deckID, err)
	}

	c.logger.Debug("Drew cards", "deck", deckID, "count", len(resp.Cards), "remaining", resp.Remaining)
	return &Draw{DeckID: resp.DeckID, Cards: resp.Cards, Remaining: resp.Remaining}, nil
}

func drawCount(count int) (int, error) {
	switch {
	case count == 0:
		return DefaultDrawCount, nil
	case count < 0 || count > MaxDrawCount:
		return 0, fmt.Errorf("%w: %d (want 1-%d)", ErrInvalidCount, count, MaxDrawCount)
	}
	return count, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := c.clock.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	c.logger.Debug("Request complete", "path", path, "status", res.StatusCode, "elapsed", c.clock.Since(start))

	var body response
	decodeErr := json.NewDecoder(io.LimitReader(res.Body, maxResponseBytes)).Decode(&body)

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		if decodeErr != nil {
			return nil, fmt.Errorf("%w: decode error: %v", ErrUnavailable, decodeErr)
		}
	case res.StatusCode >= 400 && res.StatusCode < 500 && decodeErr == nil && !body.Success:
		// the service reports unknown decks this way
	default:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, res.StatusCode)
	}

	if !body.Success {
		if body.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrAPI, body.Error)
		}
		return nil, ErrAPI
	}
	return &body, nil
}
