package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhand/internal/deckapi"
	"github.com/lox/pokerhand/internal/table"
	"github.com/lox/pokerhand/poker"
)

type stubProvider struct {
	cards []deckapi.Card
}

func (p *stubProvider) Fresh(ctx context.Context) (*deckapi.Deck, error) {
	return &deckapi.Deck{ID: "ws-deck", Remaining: len(p.cards), Shuffled: true}, nil
}

func (p *stubProvider) Draw(ctx context.Context, count int) (*deckapi.Draw, error) {
	if count > len(p.cards) {
		return nil, deckapi.ErrAPI
	}
	drawn := p.cards[:count]
	p.cards = p.cards[count:]
	return &deckapi.Draw{DeckID: "ws-deck", Cards: drawn, Remaining: len(p.cards)}, nil
}

func stubCards(t *testing.T, codes string) []deckapi.Card {
	t.Helper()
	cards, err := poker.ParseCodes(strings.Fields(codes))
	require.NoError(t, err)
	out := make([]deckapi.Card, 0, len(cards))
	for _, c := range cards {
		raw := c.Raw()
		out = append(out, deckapi.Card{Code: raw.Code, Value: raw.Value, Suit: raw.Suit})
	}
	return out
}

func startServer(t *testing.T, codes string) (*Server, *websocket.Conn) {
	t.Helper()

	logger := log.New(io.Discard)
	clock := quartz.NewMock(t)
	clock.Set(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	srv := NewServer("", func() *table.Table {
		return table.New(&stubProvider{cards: stubCards(t, codes)}, table.Options{Clock: clock, Logger: logger})
	}, logger, clock)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return srv, conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msgType MessageType, data any) *Message {
	t.Helper()

	req, err := NewMessage(msgType, data, time.Now())
	require.NoError(t, err)
	req.RequestID = string(msgType) + "-1"
	require.NoError(t, conn.WriteJSON(req))

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var resp Message
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, req.RequestID, resp.RequestID)
	return &resp
}

func decode[T any](t *testing.T, msg *Message) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(msg.Data, &v))
	return v
}

func TestFreshThenDraw(t *testing.T) {
	_, conn := startServer(t, "AS KS QS JS 10S 2H 2D 5C 9S KD")

	resp := roundTrip(t, conn, MessageTypeFresh, struct{}{})
	require.Equal(t, MessageTypeDeck, resp.Type)
	deck := decode[DeckData](t, resp)
	assert.Equal(t, "ws-deck", deck.DeckID)
	assert.Equal(t, 10, deck.Remaining)
	assert.Equal(t, "[ws-deck] 10 Cards Remaining", deck.Status)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), resp.Timestamp.UTC())

	resp = roundTrip(t, conn, MessageTypeDraw, DrawData{Count: 5})
	require.Equal(t, MessageTypeHand, resp.Type)
	hand := decode[HandData](t, resp)
	require.NotNil(t, hand.Result)
	require.NotNil(t, hand.Result.Evaluation)
	assert.Equal(t, poker.RoyalFlush, hand.Result.Evaluation.Category)
	assert.Equal(t, "Royal Flush", hand.Label)
	assert.Equal(t, "[ws-deck] 5 Cards Remaining", hand.Status)

	resp = roundTrip(t, conn, MessageTypeDraw, DrawData{Count: 5})
	hand = decode[HandData](t, resp)
	assert.Equal(t, "Pair", hand.Label)
}

func TestDrawWithoutDeck(t *testing.T) {
	_, conn := startServer(t, "AS KS QS JS 10S")

	resp := roundTrip(t, conn, MessageTypeDraw, DrawData{Count: 5})
	require.Equal(t, MessageTypeError, resp.Type)
	assert.Equal(t, "no_deck", decode[ErrorData](t, resp).Code)
}

func TestClassify(t *testing.T) {
	_, conn := startServer(t, "")

	tests := []struct {
		name     string
		cards    []string
		wantType MessageType
		wantCode string
		label    string
	}{
		{"full house", []string{"KH", "KD", "KS", "3C", "3D"}, MessageTypeClassification, "", "Full House"},
		{"unknown card", []string{"KH", "KD", "ZZ", "3C", "3D"}, MessageTypeError, "invalid_card", ""},
		{"short hand", []string{"KH", "KD"}, MessageTypeError, "hand_size", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := roundTrip(t, conn, MessageTypeClassify, ClassifyData{Cards: tt.cards})
			require.Equal(t, tt.wantType, resp.Type)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode[ErrorData](t, resp).Code)
				return
			}
			data := decode[ClassificationData](t, resp)
			assert.Equal(t, tt.label, data.Label)
			assert.Equal(t, poker.FullHouse, data.Category)
			assert.True(t, data.Signals["full_house"])
			assert.True(t, data.Signals["three_of_a_kind"])
			assert.False(t, data.Signals["flush"])
		})
	}
}

func TestUnknownMessageType(t *testing.T) {
	_, conn := startServer(t, "")

	resp := roundTrip(t, conn, MessageType("shuffle"), struct{}{})
	require.Equal(t, MessageTypeError, resp.Type)
	assert.Equal(t, "unknown_type", decode[ErrorData](t, resp).Code)
}

func TestConnectionCount(t *testing.T) {
	srv, conn := startServer(t, "")

	roundTrip(t, conn, MessageTypeFresh, struct{}{})
	assert.Equal(t, 1, srv.ConnectionCount())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return srv.ConnectionCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHealth(t *testing.T) {
	srv := NewServer("", nil, log.New(io.Discard), nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
