package boardid

import (
	"testing"

	"github.com/yourusername/bgrules/pkg/rules"
)

// Known ID for the standard starting position, shared with gnubg.
const startingBoardID = "4HPwATDgc/ABMA"

func TestEncodeStartingBoard(t *testing.T) {
	id := Encode(rules.NewBoard())
	if id != startingBoardID {
		t.Errorf("Encode mismatch: got %s, want %s", id, startingBoardID)
	}
}

func TestDecodeStartingBoard(t *testing.T) {
	board, err := Decode(startingBoardID)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !board.Equal(rules.NewBoard()) {
		t.Errorf("Decode mismatch: got %+v", board)
	}
}

func TestRoundTrip(t *testing.T) {
	boards := map[string]*rules.Board{
		"starting": rules.NewBoard(),
		"bear-off": func() *rules.Board {
			b := rules.EmptyBoard()
			b.SetPoint(rules.PointIndex(2), 4, rules.PlayerBlack)
			b.SetPoint(rules.PointIndex(4), 3, rules.PlayerBlack)
			b.SetHome(rules.PlayerBlack, 8)
			b.SetPoint(rules.PointIndex(20), 5, rules.PlayerWhite)
			b.SetHome(rules.PlayerWhite, 10)
			return b
		}(),
		"bar": func() *rules.Board {
			b := rules.EmptyBoard()
			b.SetPoint(rules.PointIndex(5), 13, rules.PlayerBlack)
			b.SetBar(rules.PlayerBlack, 2)
			b.SetPoint(rules.PointIndex(18), 14, rules.PlayerWhite)
			b.SetBar(rules.PlayerWhite, 1)
			return b
		}(),
	}

	for name, board := range boards {
		id := Encode(board)
		if len(id) != IDLength {
			t.Errorf("%s: ID length %d, want %d", name, len(id), IDLength)
		}

		decoded, err := Decode(id)
		if err != nil {
			t.Errorf("%s: Decode failed: %v", name, err)
			continue
		}
		if !decoded.Equal(board) {
			t.Errorf("%s: round-trip mismatch", name)
			t.Errorf("Original: %+v", board)
			t.Errorf("Result:   %+v", decoded)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"4HPwATDgc/ABM",   // too short
		"4HPwATDgc/ABMAA", // too long
		"4HPwATDgc/AB!A",  // bad character
	}

	for _, id := range cases {
		if _, err := Decode(id); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", id)
		}
	}
}

func TestSidesConflict(t *testing.T) {
	// Both players claiming the same physical point.
	var s sides
	s[rules.PlayerBlack][0] = 1
	s[rules.PlayerWhite][23] = 1
	if _, err := s.board(); err != ErrConflict {
		t.Errorf("overlapping sides: got %v, want ErrConflict", err)
	}

	// More pieces than a player owns.
	s = sides{}
	s[rules.PlayerBlack][0] = 16
	if _, err := s.board(); err != ErrConflict {
		t.Errorf("oversized side: got %v, want ErrConflict", err)
	}
}
