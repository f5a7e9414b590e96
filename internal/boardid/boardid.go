// Package boardid implements compact base64 board IDs in the style of
// gnubg's position IDs. An ID is a 14-character string encoding both
// players' piece counts over their own-perspective points and bars;
// borne-off pieces are implied by the missing remainder of the fifteen.
package boardid

import (
	"errors"

	"github.com/yourusername/bgrules/pkg/rules"
)

// IDLength is the length of an encoded board ID.
const IDLength = 14

// slots is the number of encoded slots per player: 24 points plus the bar.
const slots = rules.BoardSize + 1

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var (
	// ErrInvalidID reports an ID that is malformed or does not decode to a
	// board.
	ErrInvalidID = errors.New("boardid: invalid board id")
	// ErrConflict reports an ID whose sides overlap on a point or exceed the
	// piece count.
	ErrConflict = errors.New("boardid: sides conflict")
)

// sides holds each player's counts over their own-perspective slots:
// index 0..23 are the player's points 1..24, index 24 is their bar.
type sides [2][slots]uint8

// bitstream is the run-length layout: for each player in order, for each
// slot, count one-bits followed by a zero. Two players with at most fifteen
// pieces each fit in exactly 80 bits.
type bitstream [10]uint8

func ownIndex(p rules.Player, slot int) rules.PointIndex {
	if p == rules.PlayerWhite {
		return rules.PointIndex(rules.BoardSize - 1 - slot)
	}
	return rules.PointIndex(slot)
}

func sidesOf(b *rules.Board) sides {
	var s sides
	for _, p := range []rules.Player{rules.PlayerBlack, rules.PlayerWhite} {
		for slot := 0; slot < rules.BoardSize; slot++ {
			pt := b.Point(ownIndex(p, slot))
			if pt.Owner == p {
				s[p][slot] = uint8(pt.Count)
			}
		}
		s[p][rules.BoardSize] = uint8(b.Bar(p).Count)
	}
	return s
}

func (s sides) board() (*rules.Board, error) {
	b := rules.EmptyBoard()
	for _, p := range []rules.Player{rules.PlayerBlack, rules.PlayerWhite} {
		total := 0
		for slot := 0; slot < rules.BoardSize; slot++ {
			count := int(s[p][slot])
			if count == 0 {
				continue
			}
			idx := ownIndex(p, slot)
			if b.Point(idx).Count > 0 {
				return nil, ErrConflict
			}
			b.SetPoint(idx, count, p)
			total += count
		}
		total += int(s[p][rules.BoardSize])
		if total > rules.PiecesPerPlayer {
			return nil, ErrConflict
		}
		b.SetBar(p, int(s[p][rules.BoardSize]))
		b.SetHome(p, rules.PiecesPerPlayer-total)
	}
	return b, nil
}

func (s sides) pack() bitstream {
	var bits bitstream
	pos := 0
	for player := 0; player < 2; player++ {
		for slot := 0; slot < slots; slot++ {
			for n := uint8(0); n < s[player][slot]; n++ {
				bits[pos/8] |= 1 << (pos % 8)
				pos++
			}
			pos++
		}
	}
	return bits
}

func (bits bitstream) unpack() (sides, error) {
	var s sides
	player, slot := 0, 0
	for pos := 0; pos < len(bits)*8; pos++ {
		if bits[pos/8]&(1<<(pos%8)) == 0 {
			slot++
			if slot == slots {
				player++
				slot = 0
			}
			continue
		}
		if player >= 2 {
			return sides{}, ErrInvalidID
		}
		s[player][slot]++
	}
	return s, nil
}

// Encode renders a board as its 14-character ID.
func Encode(b *rules.Board) string {
	bits := sidesOf(b).pack()

	id := make([]byte, IDLength)
	src := bits[:]
	for i := 0; i < 3; i++ {
		id[i*4] = alphabet[src[0]>>2]
		id[i*4+1] = alphabet[(src[0]&0x03)<<4|src[1]>>4]
		id[i*4+2] = alphabet[(src[1]&0x0f)<<2|src[2]>>6]
		id[i*4+3] = alphabet[src[2]&0x3f]
		src = src[3:]
	}
	id[12] = alphabet[src[0]>>2]
	id[13] = alphabet[(src[0]&0x03)<<4]

	return string(id)
}

// Decode reconstructs a board from its ID. Home counts are derived from the
// pieces missing off each side's points and bar.
func Decode(id string) (*rules.Board, error) {
	if len(id) != IDLength {
		return nil, ErrInvalidID
	}

	var vals [IDLength]uint8
	for i := 0; i < IDLength; i++ {
		v, ok := decodeChar(id[i])
		if !ok {
			return nil, ErrInvalidID
		}
		vals[i] = v
	}

	var bits bitstream
	dst := bits[:]
	src := vals[:]
	for i := 0; i < 3; i++ {
		dst[0] = src[0]<<2 | src[1]>>4
		dst[1] = src[1]<<4 | src[2]>>2
		dst[2] = src[2]<<6 | src[3]
		dst = dst[3:]
		src = src[4:]
	}
	dst[0] = src[0]<<2 | src[1]>>4

	s, err := bits.unpack()
	if err != nil {
		return nil, err
	}
	return s.board()
}

func decodeChar(ch byte) (uint8, bool) {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A', true
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 26, true
	case ch >= '0' && ch <= '9':
		return ch - '0' + 52, true
	case ch == '+':
		return 62, true
	case ch == '/':
		return 63, true
	default:
		return 0, false
	}
}
