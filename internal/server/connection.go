package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/lox/pokerhand/internal/deckapi"
	"github.com/lox/pokerhand/internal/table"
	"github.com/lox/pokerhand/poker"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192
)

// ErrConnectionClosed is returned when sending on a closed connection.
var ErrConnectionClosed = errors.New("connection closed")

// Connection is one websocket client and the table it draws from.
type Connection struct {
	conn      *websocket.Conn
	table     *table.Table
	send      chan *Message
	logger    *log.Logger
	clock     quartz.Clock
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection creates a new connection wrapper
func NewConnection(conn *websocket.Conn, tbl *table.Table, logger *log.Logger, clock quartz.Clock) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{
		conn:   conn,
		table:  tbl,
		send:   make(chan *Message, 64),
		logger: logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		clock:  clock,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins handling the connection
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection is closed.
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		c.handleMessage(&msg)
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

func (c *Connection) handleMessage(msg *Message) {
	c.logger.Debug("Received message", "type", msg.Type)

	switch msg.Type {
	case MessageTypeFresh:
		deck, err := c.table.Fresh(c.ctx)
		if err != nil {
			c.sendFailure(msg, err)
			return
		}
		c.reply(msg, MessageTypeDeck, DeckData{
			DeckID:    deck.ID,
			Remaining: deck.Remaining,
			Status:    c.table.Status(),
		})

	case MessageTypeDraw:
		var data DrawData
		if len(msg.Data) > 0 {
			if err := json.Unmarshal(msg.Data, &data); err != nil {
				c.sendError(msg, "invalid_message", "Failed to parse draw data")
				return
			}
		}
		result, err := c.table.Deal(c.ctx, data.Count)
		if err != nil {
			c.sendFailure(msg, err)
			return
		}
		hand := HandData{Result: result, Status: c.table.Status()}
		if cat, ok := result.Category(); ok {
			hand.Label = cat.String()
		}
		c.reply(msg, MessageTypeHand, hand)

	case MessageTypeClassify:
		var data ClassifyData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			c.sendError(msg, "invalid_message", "Failed to parse classify data")
			return
		}
		cards, err := poker.ParseCodes(data.Cards)
		if err != nil {
			c.sendFailure(msg, err)
			return
		}
		ev, err := poker.Evaluate(cards)
		if err != nil {
			c.sendFailure(msg, err)
			return
		}
		c.reply(msg, MessageTypeClassification, ClassificationData{
			Cards:    data.Cards,
			Category: ev.Category,
			Label:    ev.Category.String(),
			Signals:  ev.Signals.Map(),
		})

	default:
		c.sendError(msg, "unknown_type", "Unknown message type: "+string(msg.Type))
	}
}

func (c *Connection) reply(req *Message, t MessageType, data any) {
	msg, err := NewMessage(t, data, c.clock.Now())
	if err != nil {
		c.logger.Error("Failed to create message", "type", t, "error", err)
		return
	}
	msg.RequestID = req.RequestID
	_ = c.SendMessage(msg)
}

func (c *Connection) sendError(req *Message, code, message string) {
	c.reply(req, MessageTypeError, ErrorData{Code: code, Message: message})
}

// sendFailure maps domain errors onto error codes.
func (c *Connection) sendFailure(req *Message, err error) {
	code := "internal"
	switch {
	case errors.Is(err, deckapi.ErrNoDeck):
		code = "no_deck"
	case errors.Is(err, deckapi.ErrInvalidCount):
		code = "invalid_count"
	case errors.Is(err, deckapi.ErrAPI):
		code = "deck_error"
	case errors.Is(err, deckapi.ErrUnavailable):
		code = "deck_unavailable"
	case errors.Is(err, poker.ErrInvalidCard):
		code = "invalid_card"
	case errors.Is(err, poker.ErrHandSize):
		code = "hand_size"
	}
	c.logger.Warn("Request failed", "type", req.Type, "code", code, "error", err)
	c.sendError(req, code, err.Error())
}
