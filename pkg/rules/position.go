package rules

// BoardSize is the number of playable points on the board.
const BoardSize = 24

// The same 24 points (plus the bar/home boundaries) are addressed in three
// coordinate spaces:
//
//   - AbsPoint: 0..25, perspective independent. 0 is Black's home and White's
//     bar; 25 is Black's bar and White's home. Black moves toward 0, White
//     toward 25.
//   - NormPoint: 1..25 relative to one player's perspective; 1 is always that
//     player's own ace point, 25 means borne off. 0 is that player's home.
//   - PointIndex: 0..23, the physical array slot backing a point.
//
// Constructors validate ranges so downstream code never re-checks them.

// AbsPoint is an absolute board position in 0..25.
type AbsPoint int

// NewAbsPoint validates v is within 0..25.
func NewAbsPoint(v int) (AbsPoint, error) {
	if v < 0 || v > BoardSize+1 {
		return 0, &AbsPointError{Value: v}
	}
	return AbsPoint(v), nil
}

// Normalize converts an absolute position to the given player's perspective.
func (a AbsPoint) Normalize(perspective Player) (NormPoint, error) {
	switch perspective {
	case PlayerBlack:
		return NewNormPoint(int(a), perspective)
	case PlayerWhite:
		return NewNormPoint(BoardSize+1-int(a), perspective)
	default:
		return NormPoint{}, &NormPointError{Value: int(a), Player: perspective}
	}
}

// Index converts an absolute position to its array index. The boundary
// positions 0 and 25 denote the bar/home slots and are not indexable.
func (a AbsPoint) Index() (PointIndex, error) {
	if a == 0 || a == BoardSize+1 {
		return 0, &IndexError{Value: int(a)}
	}
	return NewPointIndex(int(a) - 1)
}

// Distance returns the pip distance between two absolute positions.
func (a AbsPoint) Distance(b AbsPoint) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// NormPoint is a position in 0..25 normalized to one player's perspective.
type NormPoint struct {
	value  int
	player Player
}

// NewNormPoint validates v is within 0..25 and the perspective is a real
// player.
func NewNormPoint(v int, player Player) (NormPoint, error) {
	if player == PlayerNone || v < 0 || v > BoardSize+1 {
		return NormPoint{}, &NormPointError{Value: v, Player: player}
	}
	return NormPoint{value: v, player: player}, nil
}

// Value returns the 1-based perspective-relative number.
func (n NormPoint) Value() int { return n.value }

// Player returns the perspective the position is normalized to.
func (n NormPoint) Player() Player { return n.player }

// Denormalize converts back to the absolute position. Total for any validly
// constructed NormPoint.
func (n NormPoint) Denormalize() AbsPoint {
	if n.player == PlayerWhite {
		return AbsPoint(BoardSize + 1 - n.value)
	}
	return AbsPoint(n.value)
}

// Index converts the normalized position to its array index. The boundary
// values 0 and 25 are not indexable.
func (n NormPoint) Index() (PointIndex, error) {
	if n.value == 0 || n.value == BoardSize+1 {
		return 0, &IndexError{Value: n.value}
	}
	switch n.player {
	case PlayerWhite:
		return NewPointIndex(BoardSize - n.value)
	default:
		return NewPointIndex(n.value - 1)
	}
}

// PointIndex is an array index into the board's points, in 0..23. Index 0 is
// Black's ace point and 23 is White's.
type PointIndex int

// NewPointIndex validates v is within 0..23.
func NewPointIndex(v int) (PointIndex, error) {
	if v < 0 || v >= BoardSize {
		return 0, &IndexError{Value: v}
	}
	return PointIndex(v), nil
}

// Normalize converts the index to the given player's perspective.
func (i PointIndex) Normalize(perspective Player) (NormPoint, error) {
	switch perspective {
	case PlayerBlack:
		return NewNormPoint(int(i)+1, perspective)
	case PlayerWhite:
		return NewNormPoint(BoardSize-int(i), perspective)
	default:
		return NormPoint{}, &NormPointError{Value: int(i), Player: perspective}
	}
}

// Denormalize converts the index to its absolute position.
func (i PointIndex) Denormalize() AbsPoint {
	return AbsPoint(int(i) + 1)
}
