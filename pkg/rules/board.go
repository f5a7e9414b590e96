package rules

// SpaceKind discriminates the three kinds of board slots a piece can occupy.
type SpaceKind int

const (
	SpacePoint SpaceKind = iota
	SpaceBar
	SpaceHome
)

// Space addresses a slot on the board: one of the 24 points, or a player's
// bar or home. Spaces are comparable values; unused fields are zeroed by the
// constructors.
type Space struct {
	Kind   SpaceKind
	Index  PointIndex // set when Kind == SpacePoint
	Player Player     // set when Kind != SpacePoint
}

// PointSpace addresses the playable point at index i.
func PointSpace(i PointIndex) Space {
	return Space{Kind: SpacePoint, Index: i, Player: PlayerNone}
}

// BarSpace addresses the given player's bar.
func BarSpace(p Player) Space {
	return Space{Kind: SpaceBar, Player: p}
}

// HomeSpace addresses the given player's home, where borne-off pieces rest.
func HomeSpace(p Player) Space {
	return Space{Kind: SpaceHome, Player: p}
}

// Point is one slot's state. Position is the slot's absolute position so that
// pip distance and direction checks are uniform across points, bars, and
// homes. Invariant: Count == 0 implies Owner == PlayerNone for playable
// points; bar and home slots always belong to their player.
type Point struct {
	Position AbsPoint
	Count    int
	Owner    Player
}

// Board owns the 24 points plus one bar and one home slot per player. It is a
// plain value; copying it snapshots the position.
type Board struct {
	points [BoardSize]Point
	bar    [2]Point
	home   [2]Point
}

// Absolute positions of the per-player boundary slots.
func barPosition(p Player) AbsPoint {
	if p == PlayerBlack {
		return BoardSize + 1
	}
	return 0
}

func homePosition(p Player) AbsPoint {
	if p == PlayerBlack {
		return 0
	}
	return BoardSize + 1
}

// EmptyBoard returns a board with no pieces on it.
func EmptyBoard() *Board {
	var b Board
	for i := range b.points {
		b.points[i] = Point{Position: AbsPoint(i + 1), Owner: PlayerNone}
	}
	for _, p := range []Player{PlayerBlack, PlayerWhite} {
		b.bar[p] = Point{Position: barPosition(p), Owner: p}
		b.home[p] = Point{Position: homePosition(p), Owner: p}
	}
	return &b
}

// NewBoard returns the standard backgammon starting position: each side has
// 2 pieces on its 24 point, 5 on its 13, 3 on its 8, and 5 on its 6.
func NewBoard() *Board {
	b := EmptyBoard()

	for _, start := range []struct {
		point int // own-perspective 1-based point
		count int
	}{
		{point: 24, count: 2},
		{point: 13, count: 5},
		{point: 8, count: 3},
		{point: 6, count: 5},
	} {
		for _, p := range []Player{PlayerBlack, PlayerWhite} {
			norm, err := NewNormPoint(start.point, p)
			if err != nil {
				panic(err)
			}
			idx, err := norm.Index()
			if err != nil {
				panic(err)
			}
			b.SetPoint(idx, start.count, p)
		}
	}
	return b
}

// Point returns the state of the playable point at index i.
func (b *Board) Point(i PointIndex) Point {
	return b.points[i]
}

// SetPoint overwrites a point's count and owner. A zero count clears the
// owner.
func (b *Board) SetPoint(i PointIndex, count int, owner Player) {
	if count == 0 {
		owner = PlayerNone
	}
	b.points[i].Count = count
	b.points[i].Owner = owner
}

// Bar returns the given player's bar slot.
func (b *Board) Bar(p Player) Point {
	return b.bar[p]
}

// SetBar sets the number of the player's pieces on their bar.
func (b *Board) SetBar(p Player, count int) {
	b.bar[p].Count = count
}

// Home returns the given player's home slot.
func (b *Board) Home(p Player) Point {
	return b.home[p]
}

// SetHome sets the number of the player's borne-off pieces.
func (b *Board) SetHome(p Player, count int) {
	b.home[p].Count = count
}

// Lookup resolves a space to its current state.
func (b *Board) Lookup(s Space) Point {
	return *b.lookup(s)
}

func (b *Board) lookup(s Space) *Point {
	switch s.Kind {
	case SpaceBar:
		return &b.bar[s.Player]
	case SpaceHome:
		return &b.home[s.Player]
	default:
		return &b.points[s.Index]
	}
}

// PiecesBehind reports whether the player has any piece on a point strictly
// farther from their home than index i. The bar is not considered; callers
// gate on the bar separately.
func (b *Board) PiecesBehind(i PointIndex, p Player) bool {
	switch p {
	case PlayerBlack:
		for j := int(i) + 1; j < BoardSize; j++ {
			if b.points[j].Owner == PlayerBlack && b.points[j].Count > 0 {
				return true
			}
		}
	case PlayerWhite:
		for j := 0; j < int(i); j++ {
			if b.points[j].Owner == PlayerWhite && b.points[j].Count > 0 {
				return true
			}
		}
	}
	return false
}

// AllInHome reports whether every one of the player's on-board pieces is
// within their six-point home board, the precondition for bearing off.
func (b *Board) AllInHome(p Player) bool {
	if p == PlayerWhite {
		return !b.PiecesBehind(PointIndex(BoardSize-6), p)
	}
	return !b.PiecesBehind(PointIndex(5), p)
}

// Total counts the player's pieces across all points, their bar, and their
// home. It is 15 for every reachable position of a full game.
func (b *Board) Total(p Player) int {
	total := b.bar[p].Count + b.home[p].Count
	for _, pt := range b.points {
		if pt.Owner == p {
			total += pt.Count
		}
	}
	return total
}

// Equal reports structural equality over all points, bars, and homes.
func (b *Board) Equal(other *Board) bool {
	return *b == *other
}
