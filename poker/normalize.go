package poker

import (
	"strconv"
	"strings"
)

var faceRanks = map[string]Rank{
	"JACK":  Jack,
	"QUEEN": Queen,
	"KING":  King,
	"ACE":   Ace,
	"J":     Jack,
	"Q":     Queen,
	"K":     King,
	"A":     Ace,
	"T":     Ten,
}

var suitTokens = map[string]Suit{
	"SPADES":   Spades,
	"HEARTS":   Hearts,
	"DIAMONDS": Diamonds,
	"CLUBS":    Clubs,
	"S":        Spades,
	"H":        Hearts,
	"D":        Diamonds,
	"C":        Clubs,
	"♠":        Spades,
	"♥":        Hearts,
	"♦":        Diamonds,
	"♣":        Clubs,
}

// NormalizeRank maps a rank token to a Rank in 2..14.
// Numeric tokens are returned unchanged, so normalizing an already-normalized
// rank is a no-op.
func NormalizeRank(token string) (Rank, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "" {
		return 0, invalid("rank", token, "empty")
	}
	if r, ok := faceRanks[t]; ok {
		return r, nil
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, invalid("rank", token, "unrecognized token")
	}
	r := Rank(n)
	if !r.Valid() {
		return 0, invalid("rank", token, "out of range 2-14")
	}
	return r, nil
}

// NormalizeSuit maps a suit token (name, letter or glyph) to a Suit.
func NormalizeSuit(token string) (Suit, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if s, ok := suitTokens[t]; ok {
		return s, nil
	}
	return 0, invalid("suit", token, "unrecognized suit")
}

// ParseCode parses a compact card code: a rank token followed by a one-letter
// suit, e.g. "KH", "0S", "10S" or "Ts".
func ParseCode(code string) (Card, error) {
	r := []rune(strings.TrimSpace(code))
	if len(r) < 2 {
		return Card{}, invalid("code", code, "too short")
	}
	token := string(r[:len(r)-1])
	if token == "0" {
		// deck service codes use "0" for ten
		token = "10"
	}
	rank, err := NormalizeRank(token)
	if err != nil {
		return Card{}, err
	}
	suit, err := NormalizeSuit(string(r[len(r)-1]))
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit), nil
}

// ParseCodes parses a list of card codes.
func ParseCodes(codes []string) ([]Card, error) {
	cards := make([]Card, len(codes))
	for i, code := range codes {
		c, err := ParseCode(code)
		if err != nil {
			return nil, withIndex(err, i)
		}
		cards[i] = c
	}
	return cards, nil
}

// Normalize converts a raw deck service card into a Card. When neither value
// nor suit is set, the card code is parsed instead.
func Normalize(raw RawCard) (Card, error) {
	if raw.Value == "" && raw.Suit == "" && raw.Code != "" {
		return ParseCode(raw.Code)
	}
	rank, err := NormalizeRank(raw.Value)
	if err != nil {
		return Card{}, err
	}
	suit, err := NormalizeSuit(raw.Suit)
	if err != nil {
		return Card{}, err
	}
	return NewCard(rank, suit), nil
}

// NormalizeHand normalizes every card, stopping at the first invalid one.
func NormalizeHand(raw []RawCard) ([]Card, error) {
	cards := make([]Card, len(raw))
	for i, rc := range raw {
		c, err := Normalize(rc)
		if err != nil {
			return nil, withIndex(err, i)
		}
		cards[i] = c
	}
	return cards, nil
}

func withIndex(err error, i int) error {
	if ve, ok := err.(*ValidationError); ok {
		ve.Index = i
	}
	return err
}
