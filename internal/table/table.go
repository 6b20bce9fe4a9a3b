// Package table runs the draw-and-classify loop: it asks a deck provider for
// cards and reports the best hand each draw makes.
package table

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerhand/internal/deckapi"
	"github.com/lox/pokerhand/poker"
)

// DefaultMaxHistory bounds the in-memory draw history.
const DefaultMaxHistory = 100

// Provider supplies decks and cards. *deckapi.Session satisfies it.
type Provider interface {
	Fresh(ctx context.Context) (*deckapi.Deck, error)
	Draw(ctx context.Context, count int) (*deckapi.Draw, error)
}

// Result is one draw and its classification. When the drawn cards cannot be
// classified (wrong count, unknown card) Err is set and Evaluation is nil.
type Result struct {
	Number     int               `json:"number"`
	DeckID     string            `json:"deck_id"`
	Remaining  int               `json:"remaining"`
	Cards      []deckapi.Card    `json:"cards"`
	Evaluation *poker.Evaluation `json:"evaluation,omitempty"`
	Err        error             `json:"-"`
	Error      string            `json:"error,omitempty"`
	DrawnAt    time.Time         `json:"drawn_at"`
}

// Category returns the classified category and whether there is one.
func (r *Result) Category() (poker.HandCategory, bool) {
	if r.Evaluation == nil {
		return poker.HighCard, false
	}
	return r.Evaluation.Category, true
}

// Options configures a Table.
type Options struct {
	Clock      quartz.Clock
	Logger     *log.Logger
	MaxHistory int
}

// Table owns a provider and the history of draws made from it during this
// process. History is never persisted.
type Table struct {
	provider   Provider
	clock      quartz.Clock
	logger     *log.Logger
	maxHistory int

	mu      sync.Mutex
	deck    *deckapi.Deck
	drawn   int
	history []*Result
}

// New creates a table around provider.
func New(provider Provider, opts Options) *Table {
	t := &Table{
		provider:   provider,
		clock:      opts.Clock,
		logger:     opts.Logger,
		maxHistory: opts.MaxHistory,
	}
	if t.clock == nil {
		t.clock = quartz.NewReal()
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	if t.maxHistory <= 0 {
		t.maxHistory = DefaultMaxHistory
	}
	t.logger = t.logger.WithPrefix("table")
	return t
}

// Fresh starts a new deck. History survives; the draw counter restarts.
func (t *Table) Fresh(ctx context.Context) (deckapi.Deck, error) {
	deck, err := t.provider.Fresh(ctx)
	if err != nil {
		return deckapi.Deck{}, err
	}

	t.mu.Lock()
	t.deck = deck
	t.drawn = 0
	t.mu.Unlock()

	t.logger.Info("Fresh deck", "deck", deck.ID, "remaining", deck.Remaining)
	return *deck, nil
}

// Deal draws count cards and classifies them. Classification failures are
// recorded on the result; only draw failures are returned as errors.
func (t *Table) Deal(ctx context.Context, count int) (*Result, error) {
	draw, err := t.draw(ctx, count)
	if err != nil {
		return nil, err
	}
	result := t.newResult(draw)

	ev, err := poker.EvaluateRaw(draw.RawCards())
	t.finish(result, ev, err)
	t.record(result)
	return result, nil
}

// DealHands draws the given number of five-card hands one after another and
// classifies them in parallel. If classification is interrupted, the drawn
// hands are still returned and recorded, each carrying the error.
func (t *Table) DealHands(ctx context.Context, hands int) ([]*Result, error) {
	if hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", hands)
	}

	results := make([]*Result, 0, hands)
	raw := make([][]poker.RawCard, 0, hands)
	for i := 0; i < hands; i++ {
		draw, err := t.draw(ctx, poker.HandSize)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		results = append(results, t.newResult(draw))
		raw = append(raw, draw.RawCards())
	}

	evs, err := poker.ClassifyAll(ctx, raw, 0)
	if err != nil {
		var be *poker.BatchError
		if !errors.As(err, &be) {
			// The cards have left the deck, so they still go into history.
			for _, r := range results {
				t.finish(r, poker.Evaluation{}, err)
				t.record(r)
			}
			return results, err
		}
		// Fall back to classifying one by one so each hand carries its own outcome.
		for i, r := range results {
			ev, err := poker.EvaluateRaw(raw[i])
			t.finish(r, ev, err)
		}
	} else {
		for i, r := range results {
			t.finish(r, evs[i], nil)
		}
	}

	for _, r := range results {
		t.record(r)
	}
	return results, nil
}

func (t *Table) draw(ctx context.Context, count int) (*deckapi.Draw, error) {
	t.mu.Lock()
	hasDeck := t.deck != nil
	t.mu.Unlock()
	if !hasDeck {
		return nil, deckapi.ErrNoDeck
	}

	draw, err := t.provider.Draw(ctx, count)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.deck.Remaining = draw.Remaining
	t.drawn++
	t.mu.Unlock()
	return draw, nil
}

func (t *Table) newResult(draw *deckapi.Draw) *Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return &Result{
		Number:    t.drawn,
		DeckID:    draw.DeckID,
		Remaining: draw.Remaining,
		Cards:     draw.Cards,
		DrawnAt:   t.clock.Now(),
	}
}

func (t *Table) finish(r *Result, ev poker.Evaluation, err error) {
	if err != nil {
		r.Err = err
		r.Error = err.Error()
		t.logger.Warn("Draw not classified", "deck", r.DeckID, "cards", len(r.Cards), "error", err)
		return
	}
	r.Evaluation = &ev
	t.logger.Info("Hand classified", "deck", r.DeckID, "hand", ev.Category, "remaining", r.Remaining)
}

func (t *Table) record(r *Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.history = append(t.history, r)
	if over := len(t.history) - t.maxHistory; over > 0 {
		t.history = append(t.history[:0:0], t.history[over:]...)
	}
}

// History returns past results, oldest first.
func (t *Table) History() []*Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Result(nil), t.history...)
}

// Best returns the strongest classified result in the history.
func (t *Table) Best() (*Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var best *Result
	for _, r := range t.history {
		if r.Evaluation == nil {
			continue
		}
		if best == nil || r.Evaluation.Category.Stronger(best.Evaluation.Category) {
			best = r
		}
	}
	return best, best != nil
}

// HasDeck reports whether Fresh has succeeded.
func (t *Table) HasDeck() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deck != nil
}

// Status renders the deck label, e.g. "[abc123] 47 Cards Remaining".
func (t *Table) Status() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.deck == nil {
		return "No deck"
	}
	return fmt.Sprintf("[%s] %d Cards Remaining", t.deck.ID, t.deck.Remaining)
}
