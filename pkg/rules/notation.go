package rules

import (
	"regexp"
	"strconv"
	"strings"
)

// Play is one atomic piece move by a player between two spaces.
type Play struct {
	Player Player
	From   Space
	To     Space
}

// NewPlay builds a play for the given player.
func NewPlay(player Player, from, to Space) Play {
	return Play{Player: player, From: from, To: to}
}

// Turn is an ordered sequence of plays. Order matters: a later play may use
// the destination of an earlier one as its origin.
type Turn []Play

// A turn's text is whitespace-separated groups of slash-separated tokens.
// Each group starts at a point or the bar and ends at a point or off; a group
// of N tokens chains into N-1 plays. Groups that do not match are rejected
// whole.
var playGroupPattern = regexp.MustCompile(`^(?:\d+|bar)(?:/\d+)*/(?:\d+|off)$`)

// ParseTurn parses move notation into a turn from the given player's
// perspective. Bare integers are 1-based positions as the player sees them,
// "bar" is the player's bar, and "off" is their home. One bad group fails the
// whole turn, reporting the offending group text.
func ParseTurn(notation string, player Player) (Turn, error) {
	var turn Turn
	for _, group := range strings.Fields(notation) {
		plays, err := parsePlayGroup(group, player)
		if err != nil {
			return nil, err
		}
		turn = append(turn, plays...)
	}
	return turn, nil
}

func parsePlayGroup(group string, player Player) ([]Play, error) {
	if !playGroupPattern.MatchString(group) {
		return nil, &NotationError{Group: group}
	}

	tokens := strings.Split(group, "/")
	spaces := make([]Space, 0, len(tokens))
	for _, token := range tokens {
		space, err := parseSpace(token, player)
		if err != nil {
			return nil, err
		}
		spaces = append(spaces, space)
	}

	plays := make([]Play, 0, len(spaces)-1)
	for i := 0; i+1 < len(spaces); i++ {
		plays = append(plays, NewPlay(player, spaces[i], spaces[i+1]))
	}
	return plays, nil
}

func parseSpace(token string, player Player) (Space, error) {
	switch token {
	case "bar":
		return BarSpace(player), nil
	case "off":
		return HomeSpace(player), nil
	}

	// The grammar guarantees the token is all digits.
	value, err := strconv.Atoi(token)
	if err != nil {
		return Space{}, &NotationError{Group: token}
	}
	norm, err := NewNormPoint(value, player)
	if err != nil {
		return Space{}, err
	}
	index, err := norm.Index()
	if err != nil {
		return Space{}, err
	}
	return PointSpace(index), nil
}

// String renders the play as "<from>/<to>" using the acting player's own
// 1-based numbering. Rendering a play whose origin is home or whose
// destination is the bar is a contract violation: the legality engine never
// produces one.
func (p Play) String() string {
	return p.formatSpace(p.From, true) + "/" + p.formatSpace(p.To, false)
}

func (p Play) formatSpace(s Space, origin bool) string {
	switch s.Kind {
	case SpaceBar:
		if !origin {
			panic("rules: cannot render a play onto the bar")
		}
		return "bar"
	case SpaceHome:
		if origin {
			panic("rules: cannot render a play of a borne-off piece")
		}
		return "off"
	default:
		norm, err := s.Index.Normalize(p.Player)
		if err != nil {
			panic(err)
		}
		return strconv.Itoa(norm.Value())
	}
}

// String renders the turn as space-separated plays.
func (t Turn) String() string {
	parts := make([]string, len(t))
	for i, play := range t {
		parts[i] = play.String()
	}
	return strings.Join(parts, " ")
}
