// Package rules implements the backgammon rules engine: board state,
// coordinate conversions, dice, move notation, and turn legality.
package rules

// Player identifies one of the two sides. PlayerNone marks empty points.
type Player int

const (
	PlayerBlack Player = iota
	PlayerWhite
	PlayerNone
)

// Opponent returns the other player. PlayerNone is its own opponent.
func (p Player) Opponent() Player {
	switch p {
	case PlayerBlack:
		return PlayerWhite
	case PlayerWhite:
		return PlayerBlack
	default:
		return PlayerNone
	}
}

func (p Player) String() string {
	switch p {
	case PlayerBlack:
		return "Black"
	case PlayerWhite:
		return "White"
	default:
		return "None"
	}
}
