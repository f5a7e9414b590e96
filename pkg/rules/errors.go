package rules

import (
	"errors"
	"fmt"
)

// Play and turn legality errors, in guard order. Validation returns the first
// failing guard's error; no partial state change happens on failure.
var (
	ErrPlayOutOfTurn      = errors.New("only the current player can play")
	ErrPlayWithBarFilled  = errors.New("attempted to play a piece while there is one on the bar")
	ErrPlayFromHome       = errors.New("cannot play a piece after bearing it off")
	ErrPlayToBar          = errors.New("cannot play onto the bar")
	ErrInvalidBearOff     = errors.New("attempted to bear off without all pieces in the home board")
	ErrPlayFromEmptyPoint = errors.New("attempted to play a nonexistent piece")
	ErrPlayOpposingPiece  = errors.New("attempted to play another player's piece")
	ErrPlayWrongDirection = errors.New("attempted to play backwards")
	ErrPlayOntoOpposing   = errors.New("attempted to play onto another player's point")
	ErrIncompleteTurn     = errors.New("did not use all possible plays")
	ErrNonMaximalTurn     = errors.New("a turn must use as many pips as possible, preferring larger plays if not all can be used")
)

// NormPointError reports a normalized position that is out of range or was
// constructed with the PlayerNone sentinel.
type NormPointError struct {
	Value  int
	Player Player
}

func (e *NormPointError) Error() string {
	return fmt.Sprintf("cannot create normalized point %d for %s", e.Value, e.Player)
}

// AbsPointError reports an absolute position outside 0..25.
type AbsPointError struct {
	Value int
}

func (e *AbsPointError) Error() string {
	return fmt.Sprintf("cannot create absolute point from %d", e.Value)
}

// IndexError reports a point index outside 0..23, including attempts to index
// a bar or home boundary position.
type IndexError struct {
	Value int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cannot create point index from %d", e.Value)
}

// NotationError reports a play group that does not match the move grammar.
// Group holds the offending group text verbatim.
type NotationError struct {
	Group string
}

func (e *NotationError) Error() string {
	return fmt.Sprintf("notation %q is not valid", e.Group)
}

// PlayLengthError reports a pip length with no remaining use in the dice roll.
type PlayLengthError struct {
	Length int
}

func (e *PlayLengthError) Error() string {
	return fmt.Sprintf("play of length %d is not valid", e.Length)
}
