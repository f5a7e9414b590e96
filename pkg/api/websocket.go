package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/bgrules/internal/boardid"
	"github.com/yourusername/bgrules/pkg/rules"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins - configure properly in production
	},
}

// WSMessage is a generic WebSocket message.
type WSMessage struct {
	Type    string          `json:"type"`    // Message type: "parse", "turns", "state", "ping"
	ID      string          `json:"id"`      // Request ID for correlating responses
	Payload json.RawMessage `json:"payload"` // Type-specific payload
}

// WSResponse is a generic WebSocket response.
type WSResponse struct {
	Type    string      `json:"type"`              // Response type: "result", "error", "pong"
	ID      string      `json:"id,omitempty"`      // Request ID
	Payload interface{} `json:"payload,omitempty"` // Response data
	Error   string      `json:"error,omitempty"`   // Error message if any
}

// WSStateRequest is the payload for a "state" message.
type WSStateRequest struct {
	Game string `json:"game"` // Session ID
}

// WSClient represents a connected WebSocket client.
type WSClient struct {
	conn     *websocket.Conn
	handlers *Handlers
	sendChan chan WSResponse
}

// WebSocket handles WebSocket connections for real-time analysis.
func (h *Handlers) WebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	client := &WSClient{conn: conn, handlers: h, sendChan: make(chan WSResponse, 256)}
	go client.writePump()
	client.readPump()
}

func (c *WSClient) writePump() {
	defer c.conn.Close()
	for msg := range c.sendChan {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *WSClient) readPump() {
	defer func() { close(c.sendChan); c.conn.Close() }()
	for {
		var msg WSMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		c.handleMessage(msg)
	}
}

func (c *WSClient) handleMessage(msg WSMessage) {
	switch msg.Type {
	case "parse":
		c.handleParse(msg)
	case "turns":
		c.handleTurns(msg)
	case "state":
		c.handleState(msg)
	case "ping":
		c.sendChan <- WSResponse{Type: "pong", ID: msg.ID}
	default:
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "unknown message type"}
	}
}

func (c *WSClient) handleParse(msg WSMessage) {
	var req ParseRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	player, err := parsePlayer(req.Player)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid player"}
		return
	}
	turn, err := rules.ParseTurn(req.Notation, player)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid notation"}
		return
	}
	plays := make([]string, len(turn))
	for i, play := range turn {
		plays[i] = play.String()
	}
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: ParseResponse{Plays: plays, Canonical: turn.String()}}
}

func (c *WSClient) handleTurns(msg WSMessage) {
	var req TurnsRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	if req.Dice[0] < 1 || req.Dice[0] > rules.DieSides || req.Dice[1] < 1 || req.Dice[1] > rules.DieSides {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid dice"}
		return
	}
	board, err := boardid.Decode(req.Board)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid board"}
		return
	}
	player, err := parsePlayer(req.Player)
	if err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid player"}
		return
	}
	game := rules.GameOf(player, rules.RollOf(req.Dice[0], req.Dice[1]), board)
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: turnsResponse(game.AvailableTurns())}
}

func (c *WSClient) handleState(msg WSMessage) {
	var req WSStateRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "invalid payload"}
		return
	}
	sess, ok := c.handlers.store.get(req.Game)
	if !ok {
		c.sendChan <- WSResponse{Type: "error", ID: msg.ID, Error: "game not found"}
		return
	}
	sess.mu.Lock()
	resp := gameResponse(req.Game, sess.game)
	sess.mu.Unlock()
	c.sendChan <- WSResponse{Type: "result", ID: msg.ID, Payload: resp}
}
