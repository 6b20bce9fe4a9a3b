package poker

// RankCount maps each rank present in a hand to the number of cards holding it.
type RankCount map[Rank]int

// SuitCount maps each suit present in a hand to the number of cards holding it.
type SuitCount map[Suit]int

// Count builds rank and suit frequencies in a single pass. Map iteration order
// is unspecified; callers sort when order matters.
func Count(hand []Card) (RankCount, SuitCount) {
	ranks := make(RankCount, len(hand))
	suits := make(SuitCount, 4)
	for _, c := range hand {
		ranks[c.Rank]++
		suits[c.Suit]++
	}
	return ranks, suits
}
