package rules

// PiecesPerPlayer is the number of pieces each side starts with. Pieces are
// only ever moved between spaces, so each player's total across points, bar,
// and home stays at this value for the whole game.
const PiecesPerPlayer = 15

// Game aggregates the state a turn is validated against: whose turn it is,
// the current dice roll, and the board. Game methods never roll back state;
// CheckTurn works on a clone and PlayTurn mutates only after the whole turn
// validated.
type Game struct {
	CurrentPlayer Player
	Roll          DiceRoll
	Board         Board
}

// NewGame sets up the starting position and draws the opening roll. The
// opening roll doubles as the starting-player draw: the holder of the higher
// die plays first. (The two values are guaranteed distinct.)
func NewGame(r Roller) *Game {
	roll := OpeningRoll(r)
	player := PlayerBlack
	if dice := roll.Dice(); dice[1] > dice[0] {
		player = PlayerWhite
	}
	return &Game{
		CurrentPlayer: player,
		Roll:          roll,
		Board:         *NewBoard(),
	}
}

// GameOf builds a game from explicit parts.
func GameOf(player Player, roll DiceRoll, board *Board) *Game {
	return &Game{CurrentPlayer: player, Roll: roll, Board: *board}
}

// Clone returns an independent copy of the game state.
func (g *Game) Clone() *Game {
	clone := *g
	clone.Roll = g.Roll.Clone()
	return &clone
}

// NextTurn hands play to the opponent with a fresh roll.
func (g *Game) NextTurn(r Roller) {
	g.Roll = NewRoll(r)
	g.CurrentPlayer = g.CurrentPlayer.Opponent()
}

// Winner returns the player who has borne off all fifteen pieces, or
// PlayerNone while the game is still running.
func (g *Game) Winner() Player {
	for _, p := range []Player{PlayerBlack, PlayerWhite} {
		if g.Board.Home(p).Count == PiecesPerPlayer {
			return p
		}
	}
	return PlayerNone
}

// CheckPlay validates a single play against the current state. The guards run
// in a fixed order and the first failure wins; that ordering is part of the
// contract since one state can trip several guards.
func (g *Game) CheckPlay(play Play) error {
	// Only the current player may play.
	if play.Player != g.CurrentPlayer {
		return ErrPlayOutOfTurn
	}

	// Pieces on the bar must enter before anything else moves.
	if g.Board.Bar(play.Player).Count > 0 && play.From.Kind != SpaceBar {
		return ErrPlayWithBarFilled
	}

	// A borne-off piece never moves again.
	if play.From.Kind == SpaceHome {
		return ErrPlayFromHome
	}

	// Nothing is ever played onto a bar.
	if play.To.Kind == SpaceBar {
		return ErrPlayToBar
	}

	// Bearing off requires every piece inside the home board.
	if play.To.Kind == SpaceHome && !g.Board.AllInHome(play.Player) {
		return ErrInvalidBearOff
	}

	from := g.Board.Lookup(play.From)
	to := g.Board.Lookup(play.To)

	if from.Count == 0 {
		return ErrPlayFromEmptyPoint
	}
	if from.Owner != play.Player {
		return ErrPlayOpposingPiece
	}

	// Black plays toward absolute 0, White toward 25.
	forward := to.Position > from.Position
	if play.Player == PlayerBlack {
		forward = to.Position < from.Position
	}
	if !forward {
		return ErrPlayWrongDirection
	}

	// An opposing point may only be entered when it holds a single blot.
	if to.Owner == play.Player.Opponent() && to.Count > 1 {
		return ErrPlayOntoOpposing
	}

	// The pip distance must be available, with one exception: the rearmost
	// eligible piece may bear off with a die larger than it needs.
	length := from.Position.Distance(to.Position)
	if !g.Roll.Contains(length) {
		overRoll := play.To.Kind == SpaceHome &&
			play.From.Kind == SpacePoint &&
			!g.Board.PiecesBehind(play.From.Index, play.Player) &&
			g.Roll.Max() > length
		if !overRoll {
			return &PlayLengthError{Length: length}
		}
	}

	return nil
}

// ApplyPlay mutates the board and consumes a die for an already validated
// play. The exact pip length is consumed when available; otherwise this is
// the over-roll bear-off case and the maximum remaining die is spent. A lone
// opposing piece on the destination is hit: relocated to its owner's bar
// before the mover's piece lands.
func (g *Game) ApplyPlay(play Play) {
	from := g.Board.lookup(play.From)
	to := g.Board.lookup(play.To)

	length := from.Position.Distance(to.Position)
	if g.Roll.Contains(length) {
		_ = g.Roll.Consume(length)
	} else {
		_ = g.Roll.Consume(g.Roll.Max())
	}

	if to.Owner == play.Player.Opponent() && to.Count == 1 {
		g.Board.bar[play.Player.Opponent()].Count++
		to.Count = 0
	}

	from.Count--
	if from.Count == 0 && play.From.Kind == SpacePoint {
		from.Owner = PlayerNone
	}

	to.Owner = play.Player
	to.Count++
}

// CheckTurn validates a whole turn: each play must validate against the state
// left by the plays before it, the turn may not stop while usable dice and
// legal plays remain, and its total consumed pips must match the maximum
// achievable from the pre-turn state.
func (g *Game) CheckTurn(turn Turn) error {
	sim := g.Clone()
	for _, play := range turn {
		if err := sim.CheckPlay(play); err != nil {
			return err
		}
		sim.ApplyPlay(play)
	}

	if sim.Roll.AnyAvailable() && len(sim.AvailablePlays()) > 0 {
		return ErrIncompleteTurn
	}

	used := g.Roll.TotalPips() - sim.Roll.TotalPips()
	if _, best := g.enumerateTurns(); used < best {
		return ErrNonMaximalTurn
	}
	return nil
}

// PlayTurn validates the turn and, only if it is fully legal, applies it.
func (g *Game) PlayTurn(turn Turn) error {
	if err := g.CheckTurn(turn); err != nil {
		return err
	}
	for _, play := range turn {
		g.ApplyPlay(play)
	}
	return nil
}

// AvailablePlays enumerates every legal single play from the current state:
// each of the player's occupied origins (only the bar while it holds pieces)
// combined with each remaining pip length, filtered through CheckPlay.
func (g *Game) AvailablePlays() []Play {
	player := g.CurrentPlayer

	var origins []Space
	if g.Board.Bar(player).Count > 0 {
		origins = []Space{BarSpace(player)}
	} else {
		for i := range BoardSize {
			idx := PointIndex(i)
			if pt := g.Board.Point(idx); pt.Owner == player && pt.Count > 0 {
				origins = append(origins, PointSpace(idx))
			}
		}
	}

	seen := make(map[Play]bool)
	var plays []Play
	for _, from := range origins {
		position := g.Board.Lookup(from).Position
		for length := range g.Roll.All() {
			to, ok := destination(position, player, length)
			if !ok {
				continue
			}
			play := NewPlay(player, from, to)
			if seen[play] {
				continue
			}
			if g.CheckPlay(play) != nil {
				continue
			}
			seen[play] = true
			plays = append(plays, play)
		}
	}
	return plays
}

// destination resolves where a pip length lands from an absolute position in
// the player's forward direction. Reaching or passing the player's home
// boundary resolves to their home space; moving past the far end does not
// resolve at all.
func destination(from AbsPoint, player Player, length int) (Space, bool) {
	target := int(from) + length
	if player == PlayerBlack {
		target = int(from) - length
	}

	switch {
	case target <= 0:
		if player == PlayerBlack {
			return HomeSpace(player), true
		}
		return Space{}, false
	case target >= BoardSize+1:
		if player == PlayerWhite {
			return HomeSpace(player), true
		}
		return Space{}, false
	default:
		idx, err := NewPointIndex(target - 1)
		if err != nil {
			return Space{}, false
		}
		return PointSpace(idx), true
	}
}

// AvailableTurns enumerates every maximal legal turn from the current state.
// Multiple turns may tie on total pips; all of them are equally legal. When
// no play is possible the single legal turn is the empty one.
func (g *Game) AvailableTurns() []Turn {
	candidates, best := g.enumerateTurns()
	turns := make([]Turn, 0, len(candidates))
	for _, c := range candidates {
		if c.pips == best {
			turns = append(turns, c.plays)
		}
	}
	return turns
}

type turnCandidate struct {
	plays Turn
	pips  int
}

// enumerateTurns runs the backtracking search over cloned state and returns
// all complete turns along with the maximum total of consumed pips.
func (g *Game) enumerateTurns() ([]turnCandidate, int) {
	candidates := enumerateFrom(g)
	best := 0
	for _, c := range candidates {
		if c.pips > best {
			best = c.pips
		}
	}
	return candidates, best
}

func enumerateFrom(g *Game) []turnCandidate {
	plays := g.AvailablePlays()
	if len(plays) == 0 {
		return []turnCandidate{{}}
	}

	var out []turnCandidate
	for _, play := range plays {
		next := g.Clone()
		next.ApplyPlay(play)
		used := g.Roll.TotalPips() - next.Roll.TotalPips()

		for _, cont := range enumerateFrom(next) {
			turn := make(Turn, 0, len(cont.plays)+1)
			turn = append(turn, play)
			turn = append(turn, cont.plays...)
			out = append(out, turnCandidate{plays: turn, pips: used + cont.pips})
		}
	}
	return out
}
