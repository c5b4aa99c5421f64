package board

// Rows and Cols are the fixed board dimensions. Row 0 is the Blue home
// row and row Rows-1 is the Red home row.
const (
	Rows = 6
	Cols = 5
)

// Side is one of the two competing players. Red is the human side and
// Blue is the computer side.
type Side uint8

const (
	Red Side = iota
	Blue
)

func (s Side) String() string {
	if s == Red {
		return "Red"
	}
	return "Blue"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Red {
		return Blue
	}
	return Red
}

// GoalRow returns the row a side is trying to reach.
func (s Side) GoalRow() int {
	if s == Red {
		return 0
	}
	return Rows - 1
}

// Coord identifies a single cell by row and column.
type Coord struct {
	Row int
	Col int
}

// OnBoard returns whether the coordinate is within the board bounds.
func (c Coord) OnBoard() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Piece is a piece together with its position. It is a plain value;
// relocation happens by writing squares, never by aliasing pieces.
type Piece struct {
	Side Side
	Row  int
	Col  int
}

// Coord returns the piece's position as a Coord.
func (p Piece) Coord() Coord {
	return Coord{Row: p.Row, Col: p.Col}
}

// A Square is a single cell in a game board: empty, or occupied by one
// side's piece.
type Square struct {
	occupied bool
	side     Side
}

// IsEmpty returns whether the square holds no piece.
func (sq Square) IsEmpty() bool {
	return !sq.occupied
}

// Occupant returns the side occupying this square, if any.
func (sq Square) Occupant() (Side, bool) {
	return sq.side, sq.occupied
}

// DisplayString returns a one-character representation of the square.
func (sq Square) DisplayString() string {
	if !sq.occupied {
		return " "
	}
	if sq.side == Red {
		return "r"
	}
	return "b"
}
