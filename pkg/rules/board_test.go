package rules

import "testing"

func TestStartingBoardTotals(t *testing.T) {
	b := NewBoard()
	for _, p := range []Player{PlayerBlack, PlayerWhite} {
		if got := b.Total(p); got != PiecesPerPlayer {
			t.Errorf("%s total: got %d, want %d", p, got, PiecesPerPlayer)
		}
	}
}

func TestStartingBoardLayout(t *testing.T) {
	b := NewBoard()

	// Black's own-perspective points map directly onto indexes.
	cases := []struct {
		index int
		count int
		owner Player
	}{
		{23, 2, PlayerBlack},
		{12, 5, PlayerBlack},
		{7, 3, PlayerBlack},
		{5, 5, PlayerBlack},
		{0, 2, PlayerWhite},
		{11, 5, PlayerWhite},
		{16, 3, PlayerWhite},
		{18, 5, PlayerWhite},
	}
	for _, c := range cases {
		pt := b.Point(PointIndex(c.index))
		if pt.Count != c.count || pt.Owner != c.owner {
			t.Errorf("point %d: got %d/%s, want %d/%s",
				c.index, pt.Count, pt.Owner, c.count, c.owner)
		}
	}
}

func TestEmptyPointHasNoOwner(t *testing.T) {
	b := EmptyBoard()
	for i := 0; i < BoardSize; i++ {
		pt := b.Point(PointIndex(i))
		if pt.Count != 0 || pt.Owner != PlayerNone {
			t.Errorf("point %d: got %d/%s, want empty", i, pt.Count, pt.Owner)
		}
	}
	if b.SetPoint(3, 0, PlayerBlack); b.Point(3).Owner != PlayerNone {
		t.Error("setting a zero count must clear the owner")
	}
}

func TestLookupSpaces(t *testing.T) {
	b := EmptyBoard()
	b.SetPoint(10, 3, PlayerBlack)
	b.SetBar(PlayerWhite, 2)
	b.SetHome(PlayerBlack, 1)

	if pt := b.Lookup(PointSpace(10)); pt.Count != 3 || pt.Owner != PlayerBlack {
		t.Errorf("point lookup: got %d/%s", pt.Count, pt.Owner)
	}
	if pt := b.Lookup(BarSpace(PlayerWhite)); pt.Count != 2 {
		t.Errorf("bar lookup: got %d", pt.Count)
	}
	if pt := b.Lookup(HomeSpace(PlayerBlack)); pt.Count != 1 {
		t.Errorf("home lookup: got %d", pt.Count)
	}
}

func TestBoundaryPositions(t *testing.T) {
	b := EmptyBoard()
	if p := b.Bar(PlayerBlack).Position; p != 25 {
		t.Errorf("black bar position: got %d", p)
	}
	if p := b.Bar(PlayerWhite).Position; p != 0 {
		t.Errorf("white bar position: got %d", p)
	}
	if p := b.Home(PlayerBlack).Position; p != 0 {
		t.Errorf("black home position: got %d", p)
	}
	if p := b.Home(PlayerWhite).Position; p != 25 {
		t.Errorf("white home position: got %d", p)
	}
}

func TestPiecesBehind(t *testing.T) {
	b := EmptyBoard()
	b.SetPoint(10, 2, PlayerBlack)

	if !b.PiecesBehind(5, PlayerBlack) {
		t.Error("black piece on 10 is behind index 5")
	}
	if b.PiecesBehind(10, PlayerBlack) {
		t.Error("nothing strictly behind index 10 for black")
	}
	if b.PiecesBehind(15, PlayerBlack) {
		t.Error("nothing behind index 15 for black")
	}

	b.SetPoint(10, 0, PlayerNone)
	b.SetPoint(10, 2, PlayerWhite)
	if !b.PiecesBehind(15, PlayerWhite) {
		t.Error("white piece on 10 is behind index 15")
	}
	if b.PiecesBehind(10, PlayerWhite) {
		t.Error("nothing strictly behind index 10 for white")
	}
}

func TestAllInHome(t *testing.T) {
	b := EmptyBoard()
	b.SetPoint(3, 5, PlayerBlack)
	if !b.AllInHome(PlayerBlack) {
		t.Error("black with pieces only on index 3 is all in home")
	}
	b.SetPoint(6, 1, PlayerBlack)
	if b.AllInHome(PlayerBlack) {
		t.Error("black piece on index 6 is outside the home board")
	}

	b2 := EmptyBoard()
	b2.SetPoint(20, 5, PlayerWhite)
	if !b2.AllInHome(PlayerWhite) {
		t.Error("white with pieces only on index 20 is all in home")
	}
	b2.SetPoint(17, 1, PlayerWhite)
	if b2.AllInHome(PlayerWhite) {
		t.Error("white piece on index 17 is outside the home board")
	}
}

func TestBoardEquality(t *testing.T) {
	a, b := NewBoard(), NewBoard()
	if !a.Equal(b) {
		t.Error("two starting boards must compare equal")
	}
	b.SetBar(PlayerBlack, 1)
	if a.Equal(b) {
		t.Error("boards differing on a bar must not compare equal")
	}
}
