// Command bgplay plays a two-player backgammon game at the terminal. Each
// prompt reads one turn in move notation ("24/18 13/11", "bar/20", "6/off");
// illegal turns are refused with the reason and the prompt repeats.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/yourusername/bgrules/pkg/rules"
)

func main() {
	seed := flag.Uint64("seed", 0, "Dice seed (0 = random)")
	flag.Parse()

	roller := rules.DefaultRoller
	if *seed != 0 {
		src := rand.New(rand.NewPCG(*seed, *seed))
		roller = rules.RollerFunc(func() (int, int) {
			return src.IntN(rules.DieSides) + 1, src.IntN(rules.DieSides) + 1
		})
	}

	game := rules.NewGame(roller)
	fmt.Printf("Opening roll %s: %s starts.\n\n", game.Roll, game.CurrentPlayer)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println(render(&game.Board))
		fmt.Printf("%s to play (%s): ", game.CurrentPlayer, game.Roll)

		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "quit":
			return
		case "moves":
			for _, turn := range game.AvailableTurns() {
				if len(turn) == 0 {
					fmt.Println("  (no play possible)")
					continue
				}
				fmt.Printf("  %s\n", turn)
			}
			continue
		}

		turn, err := rules.ParseTurn(line, game.CurrentPlayer)
		if err != nil {
			fmt.Printf("bad notation: %v\n", err)
			continue
		}
		if err := game.PlayTurn(turn); err != nil {
			fmt.Printf("illegal turn: %v\n", err)
			continue
		}

		if w := game.Winner(); w != rules.PlayerNone {
			fmt.Println(render(&game.Board))
			fmt.Printf("%s wins!\n", w)
			return
		}
		game.NextTurn(roller)
		fmt.Println()
	}
}

// render draws the board in two rows of absolute positions, 13-24 on top and
// 12-1 below, with per-player bar and borne-off counts.
func render(b *rules.Board) string {
	var sb strings.Builder

	writeRow := func(positions []int) {
		for i, pos := range positions {
			if i == 6 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%4d", pos)
		}
		sb.WriteByte('\n')
		for i, pos := range positions {
			if i == 6 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(&sb, "%4s", cell(b.Point(rules.PointIndex(pos-1))))
		}
		sb.WriteByte('\n')
	}

	writeRow([]int{13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24})
	sb.WriteByte('\n')
	writeRow([]int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1})

	fmt.Fprintf(&sb, "\nbar  B:%d W:%d   off  B:%d W:%d",
		b.Bar(rules.PlayerBlack).Count, b.Bar(rules.PlayerWhite).Count,
		b.Home(rules.PlayerBlack).Count, b.Home(rules.PlayerWhite).Count)

	return sb.String()
}

func cell(pt rules.Point) string {
	if pt.Count == 0 {
		return "-"
	}
	letter := "b"
	if pt.Owner == rules.PlayerWhite {
		letter = "w"
	}
	return fmt.Sprintf("%s%d", letter, pt.Count)
}
