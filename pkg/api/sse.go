package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
)

// GameEvent is one entry in a game's event stream.
type GameEvent struct {
	Game    string `json:"game"`
	Type    string `json:"type"` // "turn" or "finished"
	Player  string `json:"player"`
	Turn    string `json:"turn,omitempty"` // Canonical notation of the played turn
	BoardID string `json:"board_id"`
	Dice    [2]int `json:"dice"`
}

// EventBroker fans game events out to per-game subscribers. Slow consumers
// drop events rather than block the publisher.
type EventBroker struct {
	mu   sync.Mutex
	subs map[string]map[chan GameEvent]struct{}
}

// NewEventBroker creates an empty broker.
func NewEventBroker() *EventBroker {
	return &EventBroker{subs: make(map[string]map[chan GameEvent]struct{})}
}

// Subscribe registers a listener for one game's events.
func (b *EventBroker) Subscribe(game string) chan GameEvent {
	ch := make(chan GameEvent, 16)
	b.mu.Lock()
	if b.subs[game] == nil {
		b.subs[game] = make(map[chan GameEvent]struct{})
	}
	b.subs[game][ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener.
func (b *EventBroker) Unsubscribe(game string, ch chan GameEvent) {
	b.mu.Lock()
	if subs, ok := b.subs[game]; ok {
		delete(subs, ch)
		if len(subs) == 0 {
			delete(b.subs, game)
		}
	}
	b.mu.Unlock()
}

// Publish delivers an event to every subscriber of its game.
func (b *EventBroker) Publish(ev GameEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs[ev.Game] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Events handles GET /api/games/{id}/events: a Server-Sent Events stream of
// turns played in the game, opening with a snapshot of the current state.
func (h *Handlers) Events(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := h.store.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found", "GAME_NOT_FOUND")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeSSEError(w, "streaming not supported")
		return
	}

	sess.mu.Lock()
	state := gameResponse(id, sess.game)
	sess.mu.Unlock()
	writeSSEEvent(w, "state", state)
	flusher.Flush()

	ch := h.events.Subscribe(id)
	defer h.events.Unsubscribe(id, ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSEEvent(w, ev.Type, ev)
			flusher.Flush()
			if ev.Type == "finished" {
				writeSSEEvent(w, "done", nil)
				flusher.Flush()
				return
			}
		}
	}
}

// writeSSEEvent writes a Server-Sent Event to the response.
func writeSSEEvent(w http.ResponseWriter, event string, data interface{}) {
	fmt.Fprintf(w, "event: %s\n", event)
	if data != nil {
		jsonData, _ := json.Marshal(data)
		fmt.Fprintf(w, "data: %s\n", jsonData)
	}
	fmt.Fprintf(w, "\n")
}

// writeSSEError writes an error event and closes the stream.
func writeSSEError(w http.ResponseWriter, message string) {
	writeSSEEvent(w, "error", map[string]string{"error": message})
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}
