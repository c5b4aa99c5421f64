package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestNewBoard(t *testing.T) {
	is := is.New(t)
	g := NewBoard()
	is.Equal(g.CountFor(Blue), Cols)
	is.Equal(g.CountFor(Red), Cols)
	for col := 0; col < Cols; col++ {
		p, ok := g.PieceAt(Coord{Row: 0, Col: col})
		is.True(ok)
		is.Equal(p.Side, Blue)
		p, ok = g.PieceAt(Coord{Row: Rows - 1, Col: col})
		is.True(ok)
		is.Equal(p.Side, Red)
	}
	for row := 1; row < Rows-1; row++ {
		for col := 0; col < Cols; col++ {
			is.True(g.IsEmpty(Coord{Row: row, Col: col}))
		}
	}
}

func TestApplyMoveCaptureOverwrites(t *testing.T) {
	is := is.New(t)
	g, err := FromPlaintext(`
.....
..b..
..r..
.....
.....
.....
`)
	is.NoErr(err)
	// Red lands on the Blue piece; it must be replaced, not merged.
	g.ApplyMove(Coord{Row: 2, Col: 2}, Coord{Row: 1, Col: 2})
	p, ok := g.PieceAt(Coord{Row: 1, Col: 2})
	is.True(ok)
	is.Equal(p.Side, Red)
	is.True(g.IsEmpty(Coord{Row: 2, Col: 2}))
	is.Equal(g.CountFor(Blue), 0)
	is.Equal(g.CountFor(Red), 1)
}

func TestCopyIsIndependent(t *testing.T) {
	is := is.New(t)
	g := NewBoard()
	cp := g.Copy()
	cp.ApplyMove(Coord{Row: Rows - 1, Col: 0}, Coord{Row: Rows - 2, Col: 0})
	is.True(g.IsEmpty(Coord{Row: Rows - 2, Col: 0}))
	_, ok := cp.PieceAt(Coord{Row: Rows - 2, Col: 0})
	is.True(ok)
	_, ok = g.PieceAt(Coord{Row: Rows - 1, Col: 0})
	is.True(ok)
}

func TestWinnerPrecedence(t *testing.T) {
	is := is.New(t)
	// Both sides on their goal rows at once; Red's victory must win out.
	g, err := FromPlaintext(`
....r
.....
.....
.....
.....
b....
`)
	is.NoErr(err)
	side, over := g.Winner()
	is.True(over)
	is.Equal(side, Red)
}

func TestWinnerBlue(t *testing.T) {
	is := is.New(t)
	g, err := FromPlaintext(`
.....
.....
.....
.....
.....
..b..
`)
	is.NoErr(err)
	side, over := g.Winner()
	is.True(over)
	is.Equal(side, Blue)
}

func TestNoWinnerAtStart(t *testing.T) {
	is := is.New(t)
	_, over := NewBoard().Winner()
	is.True(!over)
}

func TestEliminatedOrder(t *testing.T) {
	is := is.New(t)
	g := &GameBoard{}
	// Empty board: Red elimination is reported first.
	side, gone := g.Eliminated()
	is.True(gone)
	is.Equal(side, Red)

	g.SetPiece(Piece{Side: Red, Row: 3, Col: 2})
	side, gone = g.Eliminated()
	is.True(gone)
	is.Equal(side, Blue)

	g.SetPiece(Piece{Side: Blue, Row: 2, Col: 2})
	_, gone = g.Eliminated()
	is.True(!gone)
}

func TestSpreadIgnoresLayout(t *testing.T) {
	is := is.New(t)
	a, err := FromPlaintext(`
.b.b.
.....
..r..
.....
.....
.....
`)
	is.NoErr(err)
	b, err := FromPlaintext(`
.....
.....
.....
r....
...b.
....b
`)
	is.NoErr(err)
	is.Equal(a.Spread(), b.Spread())
	is.Equal(a.Spread(), 1)
}
