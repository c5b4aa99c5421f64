// Package movegen enumerates legal moves. A piece moves one cell
// forward (toward its goal row), forward-diagonally, or sideways; it
// may land on an empty cell or capture an opposing piece by landing on
// it, and may never land on a mine.
package movegen

import (
	"github.com/domino14/minecheckers/board"
	"github.com/domino14/minecheckers/mines"
	"github.com/domino14/minecheckers/move"
)

// The direction sets, in the order destinations are generated. The
// order matters: the solver breaks score ties reproducibly only because
// moves always come out in this order.
var redDirections = [5]board.Coord{
	{Row: -1, Col: 0}, {Row: -1, Col: -1}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
}

var blueDirections = [5]board.Coord{
	{Row: 1, Col: 0}, {Row: 1, Col: -1}, {Row: 1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
}

func directionsFor(s board.Side) [5]board.Coord {
	if s == board.Red {
		return redDirections
	}
	return blueDirections
}

// ValidMoves returns the legal destination cells for a piece, in
// direction-set order.
func ValidMoves(p board.Piece, b *board.GameBoard, m mines.MineSet) []board.Coord {
	var dests []board.Coord
	for _, d := range directionsFor(p.Side) {
		c := board.Coord{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if !c.OnBoard() || m.Contains(c) {
			continue
		}
		if occ, ok := b.PieceAt(c); !ok || occ.Side != p.Side {
			dests = append(dests, c)
		}
	}
	return dests
}

// GenAll returns every legal move for a side: pieces in row-major
// order, each piece's destinations in direction-set order.
func GenAll(s board.Side, b *board.GameBoard, m mines.MineSet) []*move.Move {
	var plays []*move.Move
	for _, p := range b.PiecesFor(s) {
		for _, dest := range ValidMoves(p, b, m) {
			_, capture := b.PieceAt(dest)
			plays = append(plays, move.New(p, dest, capture))
		}
	}
	return plays
}
