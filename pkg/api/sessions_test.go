package api

import (
	"testing"

	"github.com/yourusername/bgrules/pkg/rules"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	if store.Len() != 0 {
		t.Fatalf("Len = %d, want 0", store.Len())
	}

	roller := fixedRoller(5, 2)
	id := store.Create(rules.NewGame(roller), roller)
	if id == "" {
		t.Fatal("Create returned an empty ID")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}

	sess, ok := store.get(id)
	if !ok || sess.game == nil {
		t.Fatalf("get(%q) = %v, %v", id, sess, ok)
	}

	if _, ok := store.get("missing"); ok {
		t.Error("get of unknown id succeeded")
	}

	if !store.Delete(id) {
		t.Error("Delete returned false for a live session")
	}
	if store.Delete(id) {
		t.Error("Second delete returned true")
	}
	if store.Len() != 0 {
		t.Errorf("Len = %d after delete, want 0", store.Len())
	}
}

func TestSessionStoreDistinctIDs(t *testing.T) {
	store := NewSessionStore()
	roller := fixedRoller(5, 2)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := store.Create(rules.NewGame(roller), roller)
		if seen[id] {
			t.Fatalf("Duplicate session ID %q", id)
		}
		seen[id] = true
	}
}
