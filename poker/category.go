package poker

import "fmt"

// HandCategory is a poker hand category. The numeric value is the precedence
// index: 0 is the strongest category.
type HandCategory int

const (
	RoyalFlush HandCategory = iota
	StraightFlush
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

// Categories lists every category from strongest to weakest.
var Categories = [...]HandCategory{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	Pair,
	HighCard,
}

var categoryNames = [...]string{
	"Royal Flush",
	"Straight Flush",
	"Four of a Kind",
	"Full House",
	"Flush",
	"Straight",
	"Three of a Kind",
	"Two Pair",
	"Pair",
	"High Card",
}

var categoryKeys = [...]string{
	"royal_flush",
	"straight_flush",
	"four_of_a_kind",
	"full_house",
	"flush",
	"straight",
	"three_of_a_kind",
	"two_pair",
	"pair",
	"high_card",
}

// String returns the display name ("Royal Flush", "Two Pair", ...).
func (c HandCategory) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Key returns the stable snake_case identifier used on the wire.
func (c HandCategory) Key() string {
	if !c.Valid() {
		return "unknown"
	}
	return categoryKeys[c]
}

// Precedence returns the position in the strongest-to-weakest ordering.
func (c HandCategory) Precedence() int {
	return int(c)
}

// Valid reports whether c is a defined category.
func (c HandCategory) Valid() bool {
	return c >= RoyalFlush && c <= HighCard
}

// Stronger reports whether c beats other.
func (c HandCategory) Stronger(other HandCategory) bool {
	return c < other
}

// ParseCategory is the inverse of Key.
func ParseCategory(key string) (HandCategory, error) {
	for i, k := range categoryKeys {
		if k == key {
			return HandCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", key)
}

func (c HandCategory) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid hand category %d", int(c))
	}
	return []byte(c.Key()), nil
}

func (c *HandCategory) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
