// Package api exposes the rules engine as an HTTP/JSON service: uuid-keyed
// game sessions, stateless analysis endpoints, a per-game SSE event stream,
// and a WebSocket channel.
package api

import (
	"github.com/yourusername/bgrules/internal/boardid"
	"github.com/yourusername/bgrules/pkg/rules"
)

// ============================================================================
// Request Types
// ============================================================================

// NewGameRequest is the optional request body for creating a game.
type NewGameRequest struct {
	Seed uint64 `json:"seed,omitempty"` // Deterministic dice when non-zero
}

// PlayRequest is the request body for playing a turn.
type PlayRequest struct {
	Turn string `json:"turn"` // Move notation, e.g. "8/5 6/5"
}

// ParseRequest is the request body for parsing move notation.
type ParseRequest struct {
	Notation string `json:"notation"` // Move notation to parse
	Player   string `json:"player"`   // "black" or "white"
}

// TurnsRequest is the request body for stateless legal-turn enumeration.
type TurnsRequest struct {
	Board  string `json:"board"`  // Board ID
	Player string `json:"player"` // "black" or "white"
	Dice   [2]int `json:"dice"`   // Dice roll [die1, die2]
}

// ============================================================================
// Response Types
// ============================================================================

// PointState is one occupied point in a board snapshot.
type PointState struct {
	Point int    `json:"point"` // Absolute position 1-24
	Count int    `json:"count"`
	Owner string `json:"owner"`
}

// BoardState is a full board snapshot. Empty points are omitted.
type BoardState struct {
	Points    []PointState `json:"points"`
	BarBlack  int          `json:"bar_black"`
	BarWhite  int          `json:"bar_white"`
	HomeBlack int          `json:"home_black"`
	HomeWhite int          `json:"home_white"`
}

// GameResponse is the state of a game session.
type GameResponse struct {
	ID            string     `json:"id,omitempty"`
	BoardID       string     `json:"board_id"`
	CurrentPlayer string     `json:"current_player"`
	Dice          [2]int     `json:"dice"`
	Remaining     []int      `json:"remaining"` // Unused pip lengths this turn
	Winner        string     `json:"winner,omitempty"`
	Board         BoardState `json:"board"`
}

// PlayResponse is the state after a turn was played.
type PlayResponse struct {
	GameResponse
	Played string `json:"played"` // Canonical notation of the played turn
}

// TurnsResponse lists the maximal legal turns of a position.
type TurnsResponse struct {
	Turns []string `json:"turns"`
	Count int      `json:"count"`
}

// ParseResponse is the result of parsing move notation.
type ParseResponse struct {
	Plays     []string `json:"plays"`     // One entry per atomic play
	Canonical string   `json:"canonical"` // Re-rendered notation
}

// ErrorResponse is returned when an error occurs.
type ErrorResponse struct {
	Error   string `json:"error"`             // Error message
	Code    string `json:"code,omitempty"`    // Error code
	Details string `json:"details,omitempty"` // Additional details
}

// HealthResponse is the response for health check.
type HealthResponse struct {
	Status   string     `json:"status"`         // "ok" or "error"
	Version  string     `json:"version"`        // Server version
	Sessions int        `json:"sessions"`       // Live game sessions
	Pool     *PoolStats `json:"pool,omitempty"` // Worker pool statistics
}

// ============================================================================
// Helper Functions
// ============================================================================

func playerName(p rules.Player) string {
	switch p {
	case rules.PlayerBlack:
		return "black"
	case rules.PlayerWhite:
		return "white"
	default:
		return "none"
	}
}

// gameResponse snapshots a game into its API representation.
func gameResponse(id string, g *rules.Game) GameResponse {
	resp := GameResponse{
		ID:            id,
		BoardID:       boardid.Encode(&g.Board),
		CurrentPlayer: playerName(g.CurrentPlayer),
		Dice:          g.Roll.Dice(),
		Remaining:     g.Roll.Remaining(),
		Board:         boardState(&g.Board),
	}
	if w := g.Winner(); w != rules.PlayerNone {
		resp.Winner = playerName(w)
	}
	return resp
}

func boardState(b *rules.Board) BoardState {
	st := BoardState{
		BarBlack:  b.Bar(rules.PlayerBlack).Count,
		BarWhite:  b.Bar(rules.PlayerWhite).Count,
		HomeBlack: b.Home(rules.PlayerBlack).Count,
		HomeWhite: b.Home(rules.PlayerWhite).Count,
	}
	for i := 0; i < rules.BoardSize; i++ {
		pt := b.Point(rules.PointIndex(i))
		if pt.Count == 0 {
			continue
		}
		st.Points = append(st.Points, PointState{
			Point: i + 1,
			Count: pt.Count,
			Owner: playerName(pt.Owner),
		})
	}
	return st
}
