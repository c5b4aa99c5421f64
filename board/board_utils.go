package board

import (
	"fmt"
	"strings"
)

// ToDisplayText returns an ASCII diagram of the board suitable for the
// shell. Mines are drawn as '*'; pass nil to hide them.
func (g *GameBoard) ToDisplayText(mines map[Coord]struct{}) string {
	var str string
	row := "   "
	for j := 0; j < Cols; j++ {
		row = row + fmt.Sprintf("%c", 'A'+j) + " "
	}
	str = str + row + "\n"
	str = str + "   " + strings.Repeat("-", Cols*2) + "\n"
	for i := 0; i < Rows; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < Cols; j++ {
			sq := g.squares[i][j]
			if _, mined := mines[Coord{Row: i, Col: j}]; mined && sq.IsEmpty() {
				row = row + "* "
			} else {
				row = row + sq.DisplayString() + " "
			}
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", Cols*2) + "\n"
	return "\n" + str
}

// FromPlaintext builds a board from a diagram of Rows lines of Cols
// characters each: 'r' or 'R' for a Red piece, 'b' or 'B' for Blue,
// anything else empty. Blank lines and leading/trailing whitespace on
// the whole text are ignored. Used solely for setting up test
// positions.
func FromPlaintext(text string) (*GameBoard, error) {
	var rows []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) != Rows {
		return nil, fmt.Errorf("expected %d board rows, got %d", Rows, len(rows))
	}
	g := &GameBoard{}
	for i, line := range rows {
		runes := []rune(line)
		if len(runes) < Cols {
			return nil, fmt.Errorf("row %d has %d cells; expected %d", i+1, len(runes), Cols)
		}
		for j := 0; j < Cols; j++ {
			switch runes[j] {
			case 'r', 'R':
				g.squares[i][j] = Square{occupied: true, side: Red}
			case 'b', 'B':
				g.squares[i][j] = Square{occupied: true, side: Blue}
			}
		}
	}
	return g, nil
}
