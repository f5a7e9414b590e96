package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yourusername/bgrules/internal/boardid"
	"github.com/yourusername/bgrules/pkg/rules"
)

// Handlers holds the HTTP handlers and their shared state.
type Handlers struct {
	store   *SessionStore
	roller  rules.Roller
	version string
	pool    *WorkerPool
	events  *EventBroker
}

// NewHandlers creates a Handlers instance. pool and events may be nil.
func NewHandlers(store *SessionStore, roller rules.Roller, version string, pool *WorkerPool, events *EventBroker) *Handlers {
	return &Handlers{
		store:   store,
		roller:  roller,
		version: version,
		pool:    pool,
		events:  events,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, msg string, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  code,
	})
}

// writeRulesError maps a rules-engine failure onto {error, code}.
func writeRulesError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err.Error(), errorCode(err))
}

// errorCode maps the rules error taxonomy to stable API codes.
func errorCode(err error) string {
	switch {
	case errors.Is(err, rules.ErrPlayOutOfTurn):
		return "OUT_OF_TURN"
	case errors.Is(err, rules.ErrPlayWithBarFilled):
		return "BAR_FILLED"
	case errors.Is(err, rules.ErrPlayFromHome):
		return "FROM_HOME"
	case errors.Is(err, rules.ErrPlayToBar):
		return "TO_BAR"
	case errors.Is(err, rules.ErrInvalidBearOff):
		return "INVALID_BEAR_OFF"
	case errors.Is(err, rules.ErrPlayFromEmptyPoint):
		return "EMPTY_POINT"
	case errors.Is(err, rules.ErrPlayOpposingPiece):
		return "OPPOSING_PIECE"
	case errors.Is(err, rules.ErrPlayWrongDirection):
		return "WRONG_DIRECTION"
	case errors.Is(err, rules.ErrPlayOntoOpposing):
		return "ONTO_OPPOSING"
	case errors.Is(err, rules.ErrIncompleteTurn):
		return "INCOMPLETE_TURN"
	case errors.Is(err, rules.ErrNonMaximalTurn):
		return "NON_MAXIMAL_TURN"
	}

	var notation *rules.NotationError
	if errors.As(err, &notation) {
		return "BAD_NOTATION"
	}
	var length *rules.PlayLengthError
	if errors.As(err, &length) {
		return "INVALID_LENGTH"
	}
	var norm *rules.NormPointError
	if errors.As(err, &norm) {
		return "POINT_OUT_OF_RANGE"
	}
	var idx *rules.IndexError
	if errors.As(err, &idx) {
		return "POINT_OUT_OF_RANGE"
	}
	return "ILLEGAL_TURN"
}

func parsePlayer(s string) (rules.Player, error) {
	switch strings.ToLower(s) {
	case "black":
		return rules.PlayerBlack, nil
	case "white":
		return rules.PlayerWhite, nil
	default:
		return rules.PlayerNone, fmt.Errorf("unknown player %q", s)
	}
}

// seededRoller returns a deterministic dice source for reproducible games.
func seededRoller(seed uint64) rules.Roller {
	src := rand.New(rand.NewPCG(seed, seed))
	return rules.RollerFunc(func() (int, int) {
		return src.IntN(rules.DieSides) + 1, src.IntN(rules.DieSides) + 1
	})
}

// Health handles GET /api/health
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:  "ok",
		Version: h.version,
	}
	if h.store != nil {
		resp.Sessions = h.store.Len()
	}
	if h.pool != nil {
		stats := h.pool.Stats()
		resp.Pool = &stats
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateGame handles POST /api/games. The opening roll decides the starting
// player; a non-zero seed makes the whole game's dice deterministic.
func (h *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireFast(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseFast()
	}

	// Body is optional; an empty body means default dice.
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	roller := h.roller
	if req.Seed != 0 {
		roller = seededRoller(req.Seed)
	}

	game := rules.NewGame(roller)
	id := h.store.Create(game, roller)

	writeJSON(w, http.StatusOK, gameResponse(id, game))
}

// GetGame handles GET /api/games/{id}
func (h *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireFast(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseFast()
	}

	id := chi.URLParam(r, "id")
	sess, ok := h.store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "GAME_NOT_FOUND")
		return
	}

	sess.mu.Lock()
	resp := gameResponse(id, sess.game)
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

// DeleteGame handles DELETE /api/games/{id}
func (h *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.Delete(id) {
		writeError(w, http.StatusNotFound, "game not found", "GAME_NOT_FOUND")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PlayTurn handles POST /api/games/{id}/play. The whole turn validates before
// any piece moves; on failure the game state is untouched. A successful turn
// hands the dice to the opponent unless it ended the game.
func (h *Handlers) PlayTurn(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireFast(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseFast()
	}

	id := chi.URLParam(r, "id")
	sess, ok := h.store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "GAME_NOT_FOUND")
		return
	}

	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	game := sess.game
	if game.Winner() != rules.PlayerNone {
		writeError(w, http.StatusBadRequest, "game is finished", "GAME_FINISHED")
		return
	}

	turn, err := rules.ParseTurn(req.Turn, game.CurrentPlayer)
	if err != nil {
		writeRulesError(w, err)
		return
	}

	player := game.CurrentPlayer
	if err := game.PlayTurn(turn); err != nil {
		writeRulesError(w, err)
		return
	}

	played := turn.String()
	eventType := "turn"
	if game.Winner() != rules.PlayerNone {
		eventType = "finished"
	} else {
		game.NextTurn(sess.roller)
	}

	if h.events != nil {
		h.events.Publish(GameEvent{
			Game:    id,
			Type:    eventType,
			Player:  playerName(player),
			Turn:    played,
			BoardID: boardid.Encode(&game.Board),
			Dice:    game.Roll.Dice(),
		})
	}

	writeJSON(w, http.StatusOK, PlayResponse{
		GameResponse: gameResponse(id, game),
		Played:       played,
	})
}

// GameTurns handles GET /api/games/{id}/turns. Enumeration walks every die
// ordering, so it runs on the slow pool.
func (h *Handlers) GameTurns(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireSlow(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseSlow()
	}

	id := chi.URLParam(r, "id")
	sess, ok := h.store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "GAME_NOT_FOUND")
		return
	}

	sess.mu.Lock()
	turns := sess.game.AvailableTurns()
	sess.mu.Unlock()

	writeJSON(w, http.StatusOK, turnsResponse(turns))
}

// Turns handles POST /api/turns: stateless legal-turn enumeration for a
// board ID, player, and dice roll.
func (h *Handlers) Turns(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireSlow(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseSlow()
	}

	var req TurnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	if req.Board == "" {
		writeError(w, http.StatusBadRequest, "board is required", "MISSING_BOARD")
		return
	}
	board, err := boardid.Decode(req.Board)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid board ID", "INVALID_BOARD")
		return
	}

	player, err := parsePlayer(req.Player)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_PLAYER")
		return
	}

	if req.Dice[0] < 1 || req.Dice[0] > rules.DieSides || req.Dice[1] < 1 || req.Dice[1] > rules.DieSides {
		writeError(w, http.StatusBadRequest, "dice must be 1-6", "INVALID_DICE")
		return
	}

	game := rules.GameOf(player, rules.RollOf(req.Dice[0], req.Dice[1]), board)
	writeJSON(w, http.StatusOK, turnsResponse(game.AvailableTurns()))
}

// Parse handles POST /api/parse: syntax-only notation parsing, no legality.
func (h *Handlers) Parse(w http.ResponseWriter, r *http.Request) {
	if h.pool != nil {
		if err := h.pool.AcquireFast(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "server busy", "SERVER_BUSY")
			return
		}
		defer h.pool.ReleaseFast()
	}

	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", "INVALID_JSON")
		return
	}

	player, err := parsePlayer(req.Player)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_PLAYER")
		return
	}

	turn, err := rules.ParseTurn(req.Notation, player)
	if err != nil {
		writeRulesError(w, err)
		return
	}

	plays := make([]string, len(turn))
	for i, play := range turn {
		plays[i] = play.String()
	}
	writeJSON(w, http.StatusOK, ParseResponse{
		Plays:     plays,
		Canonical: turn.String(),
	})
}

func turnsResponse(turns []rules.Turn) TurnsResponse {
	out := make([]string, len(turns))
	for i, t := range turns {
		out[i] = t.String()
	}
	return TurnsResponse{Turns: out, Count: len(out)}
}
