package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhand/internal/config"
	"github.com/lox/pokerhand/internal/deckapi"
	"github.com/lox/pokerhand/internal/render"
	"github.com/lox/pokerhand/internal/table"
	"github.com/lox/pokerhand/poker"
)

func init() {
	render.DisableColor()
}

func TestClassifyCmd(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ClassifyCmd
		want    []string
		wantErr error
	}{
		{
			name: "royal flush",
			cmd:  ClassifyCmd{Cards: []string{"10S", "JS", "QS", "KS", "AS"}},
			want: []string{"10♠ J♠ Q♠ K♠ A♠", "Royal Flush"},
		},
		{
			name: "signals",
			cmd:  ClassifyCmd{Cards: []string{"2H", "2D", "5C", "9S", "KD"}, Signals: true},
			want: []string{"Pair", "pair=true", "flush=false"},
		},
		{
			name:    "bad card",
			cmd:     ClassifyCmd{Cards: []string{"10S", "JS", "QS", "KS", "XX"}},
			wantErr: poker.ErrInvalidCard,
		},
		{
			name:    "short hand",
			cmd:     ClassifyCmd{Cards: []string{"10S", "JS"}},
			wantErr: poker.ErrHandSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := tt.cmd.run(&buf)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestClassifyCmdJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := ClassifyCmd{Cards: []string{"KH", "KD", "KS", "3C", "3D"}, JSON: true, Signals: true}
	require.NoError(t, cmd.run(&buf))

	var out classifyOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, poker.FullHouse, out.Category)
	assert.Equal(t, "Full House", out.Label)
	assert.True(t, out.Signals["three_of_a_kind"])
	assert.Contains(t, buf.String(), `"category": "full_house"`)
}

// deckService serves a fixed card order from every new deck.
func deckService(t *testing.T, codes string) *httptest.Server {
	t.Helper()
	cards, err := poker.ParseCodes(strings.Fields(codes))
	require.NoError(t, err)

	var mu sync.Mutex
	var remaining []deckapi.Card
	mux := http.NewServeMux()
	mux.HandleFunc("/new/shuffle/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		remaining = remaining[:0]
		for _, c := range cards {
			raw := c.Raw()
			remaining = append(remaining, deckapi.Card{Code: raw.Code, Value: raw.Value, Suit: raw.Suit})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "deck_id": "cli", "remaining": len(remaining), "shuffled": true,
		})
	})
	mux.HandleFunc("/cli/draw/", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		n, _ := strconv.Atoi(r.URL.Query().Get("count"))
		n = min(n, len(remaining))
		drawn := remaining[:n]
		remaining = remaining[n:]
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true, "deck_id": "cli", "remaining": len(remaining), "cards": drawn,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testTable(t *testing.T, codes string) *table.Table {
	t.Helper()
	cfg := config.Default()
	cfg.Deck.BaseURL = deckService(t, codes).URL
	return newTable(cfg, log.New(io.Discard))
}

func TestDrawCmd(t *testing.T) {
	ctx := context.Background()

	t.Run("single hand", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := DrawCmd{Count: 5, Hands: 1}
		require.NoError(t, cmd.run(ctx, testTable(t, "2S 3S 4S 5S 6S 7H"), &buf))

		out := buf.String()
		assert.Contains(t, out, "[cli] 1 Cards Remaining")
		assert.Contains(t, out, "Straight Flush")
	})

	t.Run("several hands", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := DrawCmd{Count: 5, Hands: 3}
		deck := "2H 2D 5C 9S KD  AS KS QS JS 10S  3C 3D 3H 7S 7C"
		require.NoError(t, cmd.run(ctx, testTable(t, deck), &buf))

		out := buf.String()
		assert.Contains(t, out, "#1")
		assert.Contains(t, out, "#3")
		assert.Contains(t, out, "Full House")
		assert.Regexp(t, `Best: #2 +Royal Flush`, out)
	})

	t.Run("short draw reports error", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := DrawCmd{Count: 3, Hands: 1}
		require.NoError(t, cmd.run(ctx, testTable(t, "2S 3S 4S 5S 6S"), &buf))
		assert.Contains(t, buf.String(), "2S 3S 4S")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := DrawCmd{Count: 5, Hands: 1, JSON: true}
		require.NoError(t, cmd.run(ctx, testTable(t, "9C 9D 9H 9S 2C"), &buf))

		var results []table.Result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
		require.Len(t, results, 1)
		require.NotNil(t, results[0].Evaluation)
		assert.Equal(t, poker.FourOfAKind, results[0].Evaluation.Category)
	})

	t.Run("invalid count", func(t *testing.T) {
		cmd := DrawCmd{Count: 53, Hands: 1}
		err := cmd.run(ctx, testTable(t, "2S"), io.Discard)
		assert.ErrorIs(t, err, deckapi.ErrInvalidCount)
	})
}
