package poker

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists the four suits in display order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter suit code used by the deck service ("S", "H", ...).
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Rank is a normalized card rank. Face cards are mapped to 11-14.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	MinRank = Two
	MaxRank = Ace
)

// String returns the short rank label ("2".."10", "J", "Q", "K", "A")
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Valid reports whether r is within [MinRank, MaxRank].
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// Card is a normalized playing card.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card as rank and suit glyph, e.g. "A♠" or "10♥".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Code returns the deck service card code, e.g. "AS" or "0H" for the ten of hearts.
func (c Card) Code() string {
	rank := c.Rank.String()
	if c.Rank == Ten {
		rank = "0"
	}
	return rank + c.Suit.Letter()
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// RawCard is a card as delivered by the deck service, before normalization.
type RawCard struct {
	Value string `json:"value"`
	Suit  string `json:"suit"`
	Code  string `json:"code,omitempty"`
	Image string `json:"image,omitempty"`
}

// Raw converts a normalized card back into the deck service representation.
func (c Card) Raw() RawCard {
	value := c.Rank.String()
	switch c.Rank {
	case Jack:
		value = "JACK"
	case Queen:
		value = "QUEEN"
	case King:
		value = "KING"
	case Ace:
		value = "ACE"
	}
	var suit string
	switch c.Suit {
	case Spades:
		suit = "SPADES"
	case Hearts:
		suit = "HEARTS"
	case Diamonds:
		suit = "DIAMONDS"
	case Clubs:
		suit = "CLUBS"
	}
	return RawCard{Value: value, Suit: suit, Code: c.Code()}
}
