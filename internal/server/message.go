package server

import (
	"encoding/json"
	"time"

	"github.com/lox/pokerhand/internal/table"
	"github.com/lox/pokerhand/poker"
)

// MessageType identifies a websocket message
type MessageType string

// Client → Server
const (
	MessageTypeFresh    MessageType = "fresh"
	MessageTypeDraw     MessageType = "draw"
	MessageTypeClassify MessageType = "classify"
)

// Server → Client
const (
	MessageTypeDeck           MessageType = "deck"
	MessageTypeHand           MessageType = "hand"
	MessageTypeClassification MessageType = "classification"
	MessageTypeError          MessageType = "error"
)

// Message is the envelope for every websocket message
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a message stamped with now
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

type DrawData struct {
	Count int `json:"count,omitempty"`
}

type ClassifyData struct {
	Cards []string `json:"cards"`
}

type DeckData struct {
	DeckID    string `json:"deckId"`
	Remaining int    `json:"remaining"`
	Status    string `json:"status"`
}

type HandData struct {
	Result *table.Result `json:"result"`
	Label  string        `json:"label,omitempty"`
	Status string        `json:"status"`
}

type ClassificationData struct {
	Cards    []string           `json:"cards"`
	Category poker.HandCategory `json:"category"`
	Label    string             `json:"label"`
	Signals  map[string]bool    `json:"signals"`
}

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
