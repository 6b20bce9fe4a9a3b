package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCount(t *testing.T) {
	t.Parallel()
	ranks, suits := Count(hand(t, "3S 3H 9D 9C KS"))

	assert.Equal(t, RankCount{Three: 2, Nine: 2, King: 1}, ranks)
	assert.Equal(t, SuitCount{Spades: 2, Hearts: 1, Diamonds: 1, Clubs: 1}, suits)
}

func TestCountEmpty(t *testing.T) {
	t.Parallel()
	ranks, suits := Count(nil)
	assert.Empty(t, ranks)
	assert.Empty(t, suits)
}

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  Signals
	}{
		{
			name:  "royal flush is not a straight flush",
			cards: "AS KS QS JS 10S",
			want: Signals{
				Flush: true, Straight: true, RoyalFlush: true,
				UniqueRanks: []Rank{Ten, Jack, Queen, King, Ace},
			},
		},
		{
			name:  "straight flush",
			cards: "5D 6D 7D 8D 9D",
			want: Signals{
				Flush: true, Straight: true, StraightFlush: true,
				UniqueRanks: []Rank{Five, Six, Seven, Eight, Nine},
			},
		},
		{
			name:  "full house excludes three of a kind and pair",
			cards: "3S 3H 3D 9C 9S",
			want: Signals{
				FullHouse:   true,
				UniqueRanks: []Rank{Three, Nine},
			},
		},
		{
			name:  "three of a kind",
			cards: "3S 3H 3D 9C KS",
			want: Signals{
				ThreeOfAKind: true,
				UniqueRanks:  []Rank{Three, Nine, King},
			},
		},
		{
			name:  "two pair sets pair too",
			cards: "3S 3H 9D 9C KS",
			want: Signals{
				TwoPair: true, Pair: true,
				UniqueRanks: []Rank{Three, Nine, King},
			},
		},
		{
			name:  "gap breaks straight",
			cards: "4S 5H 6D 7C 9S",
			want: Signals{
				UniqueRanks: []Rank{Four, Five, Six, Seven, Nine},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(Count(hand(t, tt.cards))))
		})
	}
}

func TestSignalsMap(t *testing.T) {
	t.Parallel()
	m := Detect(Count(hand(t, "3S 3H 9D 9C KS"))).Map()

	assert.Len(t, m, len(Categories)-1)
	assert.True(t, m["two_pair"])
	assert.True(t, m["pair"])
	assert.False(t, m["flush"])
	assert.NotContains(t, m, "high_card")
}
