package poker

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRankIdempotent(t *testing.T) {
	t.Parallel()
	for r := MinRank; r <= MaxRank; r++ {
		got, err := NormalizeRank(strconv.Itoa(int(r)))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestNormalizeRank(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Rank
		wantErr bool
	}{
		{"2", Two, false},
		{"10", Ten, false},
		{"JACK", Jack, false},
		{"Queen", Queen, false},
		{"king", King, false},
		{"ACE", Ace, false},
		{"A", Ace, false},
		{"T", Ten, false},
		{"0", 0, true},
		{" 7 ", Seven, false},
		{"1", 0, true},
		{"15", 0, true},
		{"-3", 0, true},
		{"JOKER", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeRank(tt.input)
			if tt.wantErr {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, "rank", ve.Field)
				assert.Equal(t, -1, ve.Index)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeSuit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Suit
		wantErr bool
	}{
		{"SPADES", Spades, false},
		{"hearts", Hearts, false},
		{"D", Diamonds, false},
		{"c", Clubs, false},
		{"♠", Spades, false},
		{"♥", Hearts, false},
		{"STARS", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NormalizeSuit(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{"AS", NewCard(Ace, Spades), false},
		{"0H", NewCard(Ten, Hearts), false},
		{"10H", NewCard(Ten, Hearts), false},
		{"Td", NewCard(Ten, Diamonds), false},
		{"2c", NewCard(Two, Clubs), false},
		{"K♦", NewCard(King, Diamonds), false},
		{"A", Card{}, true},
		{"1S", Card{}, true},
		{"AX", Card{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCode(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeFallsBackToCode(t *testing.T) {
	t.Parallel()
	got, err := Normalize(RawCard{Code: "QD"})
	require.NoError(t, err)
	assert.Equal(t, NewCard(Queen, Diamonds), got)
}

func TestNormalizeRoundTripsFullDeck(t *testing.T) {
	t.Parallel()
	for _, s := range Suits {
		for r := MinRank; r <= MaxRank; r++ {
			c := NewCard(r, s)

			got, err := Normalize(c.Raw())
			require.NoError(t, err)
			assert.Equal(t, c, got)

			fromCode, err := ParseCode(c.Code())
			require.NoError(t, err)
			assert.Equal(t, c, fromCode)
		}
	}
}

func TestNormalizeHandReportsIndex(t *testing.T) {
	t.Parallel()
	_, err := NormalizeHand([]RawCard{
		{Value: "2", Suit: "HEARTS"},
		{Value: "3", Suit: "MOONS"},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 1, ve.Index)
	assert.Equal(t, "suit", ve.Field)
	assert.Contains(t, err.Error(), "card 1")
}

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A♠", NewCard(Ace, Spades).String())
	assert.Equal(t, "10♥", NewCard(Ten, Hearts).String())
	assert.Equal(t, "0H", NewCard(Ten, Hearts).Code())
	assert.True(t, NewCard(Two, Diamonds).Suit.IsRed())
	assert.False(t, NewCard(Two, Clubs).Suit.IsRed())
}
