// Package board has the mine-checkers board logic: the fixed 6x5 grid
// of squares, the pieces on it, and the terminal-condition queries the
// rest of the engine is built on.
package board

// GameBoard is the main board structure. It is a fixed array of
// squares, so copying it is a plain value copy.
type GameBoard struct {
	squares [Rows][Cols]Square
}

// NewBoard returns a board in the starting position: Blue filling its
// home row 0, Red filling its home row Rows-1, everything else empty.
func NewBoard() *GameBoard {
	g := &GameBoard{}
	for col := 0; col < Cols; col++ {
		g.squares[0][col] = Square{occupied: true, side: Blue}
		g.squares[Rows-1][col] = Square{occupied: true, side: Red}
	}
	return g
}

// Copy returns a deep copy of this board. The search engine recurses on
// copies so that sibling branches never observe each other's
// speculative moves.
func (g *GameBoard) Copy() *GameBoard {
	b := *g
	return &b
}

// Clear empties every square.
func (g *GameBoard) Clear() {
	g.squares = [Rows][Cols]Square{}
}

// IsEmpty returns whether the cell at c holds no piece. Out-of-bounds
// coordinates are not empty.
func (g *GameBoard) IsEmpty(c Coord) bool {
	return c.OnBoard() && g.squares[c.Row][c.Col].IsEmpty()
}

// PieceAt returns the piece on cell c, if any.
func (g *GameBoard) PieceAt(c Coord) (Piece, bool) {
	if !c.OnBoard() {
		return Piece{}, false
	}
	side, ok := g.squares[c.Row][c.Col].Occupant()
	if !ok {
		return Piece{}, false
	}
	return Piece{Side: side, Row: c.Row, Col: c.Col}, true
}

// SetPiece places a piece on the board, overwriting the square. Used
// for setting up positions; gameplay goes through ApplyMove.
func (g *GameBoard) SetPiece(p Piece) {
	g.squares[p.Row][p.Col] = Square{occupied: true, side: p.Side}
}

// ApplyMove relocates whatever sits at from to to, overwriting any
// prior occupant of to (capture by landing). from becomes empty. No
// legality check happens here; that is the move generator's contract.
func (g *GameBoard) ApplyMove(from, to Coord) {
	g.squares[to.Row][to.Col] = g.squares[from.Row][from.Col]
	g.squares[from.Row][from.Col] = Square{}
}

// PiecesFor returns all of a side's pieces in row-major order. The
// order is load-bearing: the solver iterates pieces in this order so
// that tie-breaking is reproducible.
func (g *GameBoard) PiecesFor(s Side) []Piece {
	var pieces []Piece
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if side, ok := g.squares[row][col].Occupant(); ok && side == s {
				pieces = append(pieces, Piece{Side: s, Row: row, Col: col})
			}
		}
	}
	return pieces
}

// CountFor returns the number of pieces a side has on the board.
func (g *GameBoard) CountFor(s Side) int {
	ct := 0
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if side, ok := g.squares[row][col].Occupant(); ok && side == s {
				ct++
			}
		}
	}
	return ct
}

// Spread is the static evaluation of the board: Blue pieces minus Red
// pieces. Positive favors Blue, the maximizer. It depends only on
// piece counts, not positions.
func (g *GameBoard) Spread() int {
	return g.CountFor(Blue) - g.CountFor(Red)
}

// Winner reports whether either side has reached its goal row. The
// entire row 0 is checked for Red before row Rows-1 is checked for
// Blue; Red's victory takes precedence if both somehow hold at once.
func (g *GameBoard) Winner() (Side, bool) {
	for col := 0; col < Cols; col++ {
		if side, ok := g.squares[0][col].Occupant(); ok && side == Red {
			return Red, true
		}
	}
	for col := 0; col < Cols; col++ {
		if side, ok := g.squares[Rows-1][col].Occupant(); ok && side == Blue {
			return Blue, true
		}
	}
	return 0, false
}

// Eliminated reports whether either side has no pieces left. Red
// elimination is checked first.
func (g *GameBoard) Eliminated() (Side, bool) {
	if g.CountFor(Red) == 0 {
		return Red, true
	}
	if g.CountFor(Blue) == 0 {
		return Blue, true
	}
	return 0, false
}
