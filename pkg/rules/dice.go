package rules

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"slices"
)

// DieSides is the number of faces on each die.
const DieSides = 6

// Roller is the randomness capability the engine depends on. Implementations
// must return two independent uniform values in 1..6.
type Roller interface {
	Roll() (int, int)
}

// RollerFunc adapts a plain function to the Roller interface.
type RollerFunc func() (int, int)

func (f RollerFunc) Roll() (int, int) { return f() }

// DefaultRoller draws from the process-wide PRNG. Tests and rollout-style
// callers inject their own seeded source instead.
var DefaultRoller Roller = RollerFunc(func() (int, int) {
	return rand.IntN(DieSides) + 1, rand.IntN(DieSides) + 1
})

// DiceRoll holds the two rolled pip values and the multiset of pip lengths
// still usable this turn. Doubles expand to four uses.
type DiceRoll struct {
	dice      [2]int
	available []int
}

// NewRoll draws a roll from the given roller.
func NewRoll(r Roller) DiceRoll {
	a, b := r.Roll()
	return RollOf(a, b)
}

// OpeningRoll draws rolls until the two dice differ. Doubles have no defined
// sequencing on the opening move.
func OpeningRoll(r Roller) DiceRoll {
	for {
		roll := NewRoll(r)
		if roll.dice[0] != roll.dice[1] {
			return roll
		}
	}
}

// RollOf builds a roll from fixed pip values.
func RollOf(a, b int) DiceRoll {
	available := []int{a, b}
	if a == b {
		available = []int{a, a, a, a}
	}
	slices.Sort(available)
	return DiceRoll{dice: [2]int{a, b}, available: available}
}

// Dice returns the two rolled values.
func (d *DiceRoll) Dice() [2]int { return d.dice }

// AnyAvailable reports whether any pip length remains usable.
func (d *DiceRoll) AnyAvailable() bool { return len(d.available) > 0 }

// Contains reports whether a use of the given pip length remains.
func (d *DiceRoll) Contains(length int) bool {
	return slices.Contains(d.available, length)
}

// Consume removes one use of the given pip length.
func (d *DiceRoll) Consume(length int) error {
	i := slices.Index(d.available, length)
	if i < 0 {
		return &PlayLengthError{Length: length}
	}
	d.available = slices.Delete(d.available, i, i+1)
	return nil
}

// Max returns the largest remaining pip length, or 0 when none remain.
func (d *DiceRoll) Max() int {
	if len(d.available) == 0 {
		return 0
	}
	return d.available[len(d.available)-1]
}

// Remaining returns a copy of the usable pip lengths in ascending order.
func (d *DiceRoll) Remaining() []int {
	return slices.Clone(d.available)
}

// All iterates over the remaining pip lengths.
func (d *DiceRoll) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, length := range d.available {
			if !yield(length) {
				return
			}
		}
	}
}

// TotalPips sums the remaining pip lengths.
func (d *DiceRoll) TotalPips() int {
	total := 0
	for _, length := range d.available {
		total += length
	}
	return total
}

// Clone returns an independent copy of the roll.
func (d *DiceRoll) Clone() DiceRoll {
	return DiceRoll{dice: d.dice, available: slices.Clone(d.available)}
}

// String renders the rolled values as "4-6".
func (d DiceRoll) String() string {
	return fmt.Sprintf("%d-%d", d.dice[0], d.dice[1])
}
