package deckapi

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Session tracks one deck: its identity, how many cards remain and how many
// draws have been made. Methods are safe for concurrent use; draws on the same
// session are serialized.
type Session struct {
	client    *Client
	deckCount int

	mu         sync.Mutex
	deck       *Deck
	drawn      int
	last       *Draw
	createdAt  time.Time
	lastDrawAt time.Time
}

// NewSession creates a session without a deck; call Fresh before drawing.
func NewSession(client *Client, deckCount int) *Session {
	return &Session{client: client, deckCount: deckCount}
}

// Fresh replaces the current deck with a newly shuffled one and resets the
// draw counter.
func (s *Session) Fresh(ctx context.Context) (*Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck, err := s.client.NewDeck(ctx, s.deckCount)
	if err != nil {
		return nil, err
	}

	s.deck = deck
	s.drawn = 0
	s.last = nil
	s.createdAt = s.client.clock.Now()
	s.lastDrawAt = time.Time{}
	return s.copyDeck(), nil
}

// Draw draws count cards (DefaultDrawCount when zero) from the current deck.
func (s *Session) Draw(ctx context.Context, count int) (*Draw, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deck == nil {
		return nil, ErrNoDeck
	}
	draw, err := s.client.Draw(ctx, s.deck.ID, count)
	if err != nil {
		return nil, err
	}

	s.deck.Remaining = draw.Remaining
	s.drawn++
	s.last = draw.clone()
	s.lastDrawAt = s.client.clock.Now()
	return draw, nil
}

// Deck returns a copy of the current deck, or nil before Fresh.
func (s *Session) Deck() *Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyDeck()
}

func (s *Session) copyDeck() *Deck {
	if s.deck == nil {
		return nil
	}
	d := *s.deck
	return &d
}

// DeckID returns the current deck id, empty before Fresh.
func (s *Session) DeckID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deck == nil {
		return ""
	}
	return s.deck.ID
}

// Remaining returns the cards left in the current deck.
func (s *Session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deck == nil {
		return 0
	}
	return s.deck.Remaining
}

// Drawn returns how many draws were made since the last Fresh.
func (s *Session) Drawn() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawn
}

// Last returns a copy of the most recent draw, or nil.
func (s *Session) Last() *Draw {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last.clone()
}

func (s *Session) CreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createdAt
}

func (s *Session) LastDrawAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDrawAt
}

func (d *Draw) clone() *Draw {
	if d == nil {
		return nil
	}
	c := *d
	c.Cards = slices.Clone(d.Cards)
	return &c
}
