package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/minecheckers/board"
)

func TestBoardGameCoordsRoundTrip(t *testing.T) {
	is := is.New(t)
	for row := 0; row < board.Rows; row++ {
		for col := 0; col < board.Cols; col++ {
			c := board.Coord{Row: row, Col: col}
			parsed, err := FromBoardGameCoords(ToBoardGameCoords(c))
			is.NoErr(err)
			is.Equal(parsed, c)
		}
	}
}

func TestFromBoardGameCoords(t *testing.T) {
	is := is.New(t)
	c, err := FromBoardGameCoords("B3")
	is.NoErr(err)
	is.Equal(c, board.Coord{Row: 2, Col: 1})

	c, err = FromBoardGameCoords("e6")
	is.NoErr(err)
	is.Equal(c, board.Coord{Row: 5, Col: 4})

	_, err = FromBoardGameCoords("F1")
	is.True(err != nil)
	_, err = FromBoardGameCoords("A7")
	is.True(err != nil)
	_, err = FromBoardGameCoords("33")
	is.True(err != nil)
	_, err = FromBoardGameCoords("")
	is.True(err != nil)
}

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	m := New(board.Piece{Side: board.Red, Row: 4, Col: 2}, board.Coord{Row: 3, Col: 2}, false)
	is.Equal(m.ShortDescription(), "C5-C4")

	m = New(board.Piece{Side: board.Blue, Row: 1, Col: 1}, board.Coord{Row: 2, Col: 0}, true)
	is.Equal(m.ShortDescription(), "B2xA3")
}
