package move

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/domino14/minecheckers/board"
)

// Move relocates one piece to a destination cell. Moves are produced by
// the move generator and consumed by the solver and the game
// controller; they carry enough information to be applied to any board
// copy.
type Move struct {
	piece   board.Piece
	to      board.Coord
	capture bool
}

var reCoords *regexp.Regexp

func init() {
	reCoords = regexp.MustCompile(`^(?P<col>[A-Za-z])(?P<row>[0-9]+)$`)
}

// New creates a move of the given piece to the destination cell.
func New(piece board.Piece, to board.Coord, capture bool) *Move {
	return &Move{piece: piece, to: to, capture: capture}
}

// Piece returns the moving piece, with its pre-move position.
func (m *Move) Piece() board.Piece {
	return m.piece
}

// Side returns the side making this move.
func (m *Move) Side() board.Side {
	return m.piece.Side
}

// From returns the origin cell.
func (m *Move) From() board.Coord {
	return m.piece.Coord()
}

// To returns the destination cell.
func (m *Move) To() board.Coord {
	return m.to
}

// IsCapture returns whether the move lands on an opposing piece.
func (m *Move) IsCapture() bool {
	return m.capture
}

// Equals compares two moves by origin, destination, and side.
func (m *Move) Equals(o *Move) bool {
	return m.piece == o.piece && m.to == o.to
}

// ShortDescription provides a short description, useful for logging or
// user display, e.g. "C5-C4" or "B2xA3" for a capture.
func (m *Move) ShortDescription() string {
	sep := "-"
	if m.capture {
		sep = "x"
	}
	return ToBoardGameCoords(m.From()) + sep + ToBoardGameCoords(m.to)
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	return fmt.Sprintf("<move side: %v from: %v to: %v capture: %v>",
		m.piece.Side, ToBoardGameCoords(m.From()), ToBoardGameCoords(m.to),
		m.capture)
}

// ToBoardGameCoords converts a cell to a coordinate like B3: column
// letter first, then the 1-based row number.
func ToBoardGameCoords(c board.Coord) string {
	return string(rune('A'+c.Col)) + strconv.Itoa(c.Row+1)
}

// FromBoardGameCoords does the inverse operation of ToBoardGameCoords
// above. It rejects coordinates that fall off the board.
func FromBoardGameCoords(s string) (board.Coord, error) {
	matches := reCoords.FindStringSubmatch(s)
	if len(matches) != 3 {
		return board.Coord{}, fmt.Errorf("badly formatted coordinate %q", s)
	}
	col := int(matches[1][0])
	if col >= 'a' {
		col -= 'a'
	} else {
		col -= 'A'
	}
	row, err := strconv.Atoi(matches[2])
	if err != nil {
		return board.Coord{}, err
	}
	c := board.Coord{Row: row - 1, Col: col}
	if !c.OnBoard() {
		return board.Coord{}, fmt.Errorf("coordinate %q is off the board", s)
	}
	return c, nil
}
