package poker

import "slices"

var royalRanks = []Rank{Ten, Jack, Queen, King, Ace}

// Signals are the pattern facts derived from a hand's frequencies. Several may
// hold at once (a two pair hand also has Pair set); Resolve picks the winner.
type Signals struct {
	Flush         bool `json:"flush"`
	Straight      bool `json:"straight"`
	RoyalFlush    bool `json:"royal_flush"`
	StraightFlush bool `json:"straight_flush"`
	FourOfAKind   bool `json:"four_of_a_kind"`
	FullHouse     bool `json:"full_house"`
	ThreeOfAKind  bool `json:"three_of_a_kind"`
	TwoPair       bool `json:"two_pair"`
	Pair          bool `json:"pair"`

	// UniqueRanks holds the distinct ranks in ascending order.
	UniqueRanks []Rank `json:"unique_ranks"`
}

// Detect derives pattern signals from rank and suit frequencies.
//
// Straights are five distinct ranks spanning exactly four. Aces always count
// as 14, so A-2-3-4-5 is not a straight.
func Detect(ranks RankCount, suits SuitCount) Signals {
	var s Signals

	s.Flush = len(suits) == 1

	s.UniqueRanks = make([]Rank, 0, len(ranks))
	for r := range ranks {
		s.UniqueRanks = append(s.UniqueRanks, r)
	}
	slices.Sort(s.UniqueRanks)

	if n := len(s.UniqueRanks); n == 5 {
		s.Straight = s.UniqueRanks[n-1]-s.UniqueRanks[0] == 4
	}
	s.RoyalFlush = s.Flush && slices.Equal(s.UniqueRanks, royalRanks)
	s.StraightFlush = s.Flush && s.Straight && !s.RoyalFlush

	counts := make([]int, 0, len(ranks))
	for _, n := range ranks {
		counts = append(counts, n)
	}
	slices.Sort(counts)
	slices.Reverse(counts)

	first, second := 0, 0
	if len(counts) > 0 {
		first = counts[0]
	}
	if len(counts) > 1 {
		second = counts[1]
	}

	s.FourOfAKind = first == 4
	s.FullHouse = first == 3 && second == 2
	s.ThreeOfAKind = first == 3 && second < 2
	s.TwoPair = first == 2 && second == 2
	s.Pair = first == 2

	return s
}

// Has reports the signal backing category c. HighCard always holds.
func (s Signals) Has(c HandCategory) bool {
	switch c {
	case RoyalFlush:
		return s.RoyalFlush
	case StraightFlush:
		return s.StraightFlush
	case FourOfAKind:
		return s.FourOfAKind
	case FullHouse:
		return s.FullHouse
	case Flush:
		return s.Flush
	case Straight:
		return s.Straight
	case ThreeOfAKind:
		return s.ThreeOfAKind
	case TwoPair:
		return s.TwoPair
	case Pair:
		return s.Pair
	case HighCard:
		return true
	}
	return false
}

// Map returns every signal keyed by category key, for diagnostic display.
func (s Signals) Map() map[string]bool {
	m := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		if c == HighCard {
			continue
		}
		m[c.Key()] = s.Has(c)
	}
	return m
}

// Matched returns the categories whose signals hold, strongest first.
func (s Signals) Matched() []HandCategory {
	var out []HandCategory
	for _, c := range Categories {
		if c != HighCard && s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
