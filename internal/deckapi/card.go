package deckapi

import "github.com/lox/pokerhand/poker"

// Card is a card as the deck service encodes it.
type Card struct {
	Code   string            `json:"code"`
	Image  string            `json:"image"`
	Images map[string]string `json:"images,omitempty"`
	Value  string            `json:"value"`
	Suit   string            `json:"suit"`
}

// Raw converts the card for the classifier.
func (c Card) Raw() poker.RawCard {
	return poker.RawCard{Value: c.Value, Suit: c.Suit, Code: c.Code, Image: c.Image}
}

// RawCards converts every drawn card.
func (d *Draw) RawCards() []poker.RawCard {
	raw := make([]poker.RawCard, len(d.Cards))
	for i, c := range d.Cards {
		raw[i] = c.Raw()
	}
	return raw
}
