package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/minecheckers/board"
	"github.com/domino14/minecheckers/config"
	"github.com/domino14/minecheckers/mines"
	"github.com/domino14/minecheckers/movegen"
)

func testConfig(seed string) *config.Config {
	return &config.Config{
		SearchDepth:     3,
		MineCount:       4,
		ShufflesPerSide: 2,
		RandomSeed:      seed,
	}
}

func newStartedGame(t *testing.T, seed string) *Game {
	t.Helper()
	g, err := NewGame(testConfig(seed))
	require.NoError(t, err)
	g.StartGame()
	return g
}

func TestStartGame(t *testing.T) {
	g := newStartedGame(t, "start-seed")
	assert.Equal(t, Playing, g.Playing())
	assert.Equal(t, board.Cols, g.Board().CountFor(board.Red))
	assert.Equal(t, board.Cols, g.Board().CountFor(board.Blue))
	assert.Len(t, g.Mines(), 4)
	assert.Equal(t, 2, g.ShufflesRemaining(board.Red))
	assert.Equal(t, 2, g.ShufflesRemaining(board.Blue))
	assert.Empty(t, g.FinalMessage())
}

func TestStartGameDeterministicWithSeed(t *testing.T) {
	g1 := newStartedGame(t, "same-seed")
	g2 := newStartedGame(t, "same-seed")
	assert.Equal(t, g1.PlayerOnTurn(), g2.PlayerOnTurn())
	assert.Equal(t, g1.Mines().Coords(), g2.Mines().Coords())

	g1.Tick()
	g2.Tick()
	require.Equal(t, len(g1.History()), len(g2.History()))
	for i := range g1.History() {
		assert.True(t, g1.History()[i].Equals(g2.History()[i]))
	}
}

func TestSelectionRules(t *testing.T) {
	g := newStartedGame(t, "select-seed")
	g.SetPosition(board.NewBoard(), g.Mines(), board.Red)

	// Empty cell.
	err := g.SelectPiece(board.Coord{Row: 3, Col: 2})
	assert.ErrorIs(t, err, ErrNotYourPiece)
	// Opponent's piece.
	err = g.SelectPiece(board.Coord{Row: 0, Col: 0})
	assert.ErrorIs(t, err, ErrNotYourPiece)
	// Moving with no selection.
	err = g.AttemptMove(board.Coord{Row: 4, Col: 0})
	assert.ErrorIs(t, err, ErrNoSelection)

	// Own piece is selectable.
	require.NoError(t, g.SelectPiece(board.Coord{Row: board.Rows - 1, Col: 2}))
	p, ok := g.SelectedPiece()
	require.True(t, ok)
	assert.Equal(t, board.Red, p.Side)
	assert.NotEmpty(t, g.ValidMovesForSelection())
}

func TestAttemptMoveLegality(t *testing.T) {
	g := newStartedGame(t, "move-seed")
	g.SetPosition(board.NewBoard(), mines.MineSet{{Row: 3, Col: 2}: {}}, board.Red)

	require.NoError(t, g.SelectPiece(board.Coord{Row: 5, Col: 2}))
	// Two rows forward is never legal.
	assert.ErrorIs(t, g.AttemptMove(board.Coord{Row: 3, Col: 2}), ErrIllegalMove)
	// Onto a friendly piece.
	assert.ErrorIs(t, g.AttemptMove(board.Coord{Row: 5, Col: 3}), ErrIllegalMove)

	require.NoError(t, g.AttemptMove(board.Coord{Row: 4, Col: 2}))
	assert.Equal(t, board.Blue, g.PlayerOnTurn())
	require.Len(t, g.History(), 1)
	assert.Equal(t, "C6-C5", g.History()[0].ShortDescription())
	_, stillSelected := g.SelectedPiece()
	assert.False(t, stillSelected)

	// Moving onto a mine is rejected.
	g.SetPosition(g.Board(), mines.MineSet{{Row: 3, Col: 2}: {}}, board.Red)
	require.NoError(t, g.SelectPiece(board.Coord{Row: 4, Col: 2}))
	assert.ErrorIs(t, g.AttemptMove(board.Coord{Row: 3, Col: 2}), ErrIllegalMove)
}

func TestReshuffleAccounting(t *testing.T) {
	g := newStartedGame(t, "shuffle-seed")
	g.SetPosition(board.NewBoard(), g.Mines(), board.Red)

	// Wrong side.
	assert.ErrorIs(t, g.ActivateReshuffle(board.Blue), ErrNotYourTurn)

	before := g.Mines()
	require.NoError(t, g.ActivateReshuffle(board.Red))
	assert.Equal(t, 1, g.ShufflesRemaining(board.Red))
	assert.False(t, g.Mines().Intersects(before), "new mine set must be disjoint")
	// Turn is preserved.
	assert.Equal(t, board.Red, g.PlayerOnTurn())

	require.NoError(t, g.ActivateReshuffle(board.Red))
	assert.Equal(t, 0, g.ShufflesRemaining(board.Red))
	assert.ErrorIs(t, g.ActivateReshuffle(board.Red), ErrNoShufflesLeft)
}

func TestBlueReshuffleConsumesOneAIMove(t *testing.T) {
	g := newStartedGame(t, "blue-shuffle-seed")
	g.SetPosition(board.NewBoard(), g.Mines(), board.Blue)

	require.NoError(t, g.ActivateReshuffle(board.Blue))
	assert.Equal(t, 1, g.ShufflesRemaining(board.Blue))
	// Once per visit.
	assert.ErrorIs(t, g.ActivateReshuffle(board.Blue), ErrAlreadyReshuffled)

	// The reshuffle used up this decision point: no move on this tick.
	g.Tick()
	assert.Empty(t, g.History())
	assert.Equal(t, board.Blue, g.PlayerOnTurn())

	// The suppression lasts exactly one tick.
	g.Tick()
	assert.Len(t, g.History(), 1)
	assert.Equal(t, board.Red, g.PlayerOnTurn())

	// Back on a later visit, Blue may use its second reshuffle.
	g.SetPosition(g.Board(), g.Mines(), board.Blue)
	require.NoError(t, g.ActivateReshuffle(board.Blue))
	assert.Equal(t, 0, g.ShufflesRemaining(board.Blue))
}

func TestTickPlaysWinningMoveFirst(t *testing.T) {
	g := newStartedGame(t, "winning-seed")
	b, err := board.FromPlaintext(`
.....
.....
.....
.....
.b...
....r
`)
	require.NoError(t, err)
	g.SetPosition(b, mines.MineSet{}, board.Blue)

	g.Tick()
	assert.Equal(t, GameOver, g.Playing())
	assert.Equal(t, MsgBlueWins, g.FinalMessage())
	require.Len(t, g.History(), 1)
	assert.Equal(t, board.Rows-1, g.History()[0].To().Row)
}

func TestTickNoLegalMovesIsBlueElimination(t *testing.T) {
	g := newStartedGame(t, "stuck-seed")
	b, err := board.FromPlaintext(`
bbbbb
.....
.....
.....
.....
....r
`)
	require.NoError(t, err)
	wall := mines.MineSet{}
	for col := 0; col < board.Cols; col++ {
		wall[board.Coord{Row: 1, Col: col}] = struct{}{}
	}
	g.SetPosition(b, wall, board.Blue)

	g.Tick()
	assert.Equal(t, GameOver, g.Playing())
	assert.Equal(t, MsgBlueEliminated, g.FinalMessage())
}

func TestTerminalMessages(t *testing.T) {
	cases := []struct {
		name    string
		diagram string
		want    string
	}{
		{"red reaches row 1", `
r....
.....
.....
.....
.....
....b
`, MsgRedWins},
		{"blue reaches row 6", `
.....
.....
.....
.....
r....
....b
`, MsgBlueWins},
		{"red eliminated", `
.....
.....
..b..
.....
.....
.....
`, MsgRedEliminated},
		{"blue eliminated", `
.....
.....
..r..
.....
.....
.....
`, MsgBlueEliminated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newStartedGame(t, "terminal-seed")
			b, err := board.FromPlaintext(tc.diagram)
			require.NoError(t, err)
			g.SetPosition(b, mines.MineSet{}, board.Red)
			g.Tick()
			assert.Equal(t, GameOver, g.Playing())
			assert.Equal(t, tc.want, g.FinalMessage())
			assert.ErrorIs(t, g.SelectPiece(board.Coord{Row: 2, Col: 2}), ErrGameOver)
			assert.ErrorIs(t, g.ActivateReshuffle(board.Red), ErrGameOver)
		})
	}
}

// Play a full game with no mines and a naive Red policy (always the
// first generated move). Without mines the leading Red piece always has
// a forward move, so the game provably ends within a bounded number of
// plies.
func TestFullGameTerminates(t *testing.T) {
	g := newStartedGame(t, "full-game-seed")
	g.SetPosition(board.NewBoard(), mines.MineSet{}, board.Red)

	for i := 0; i < 200 && g.Playing() == Playing; i++ {
		if g.PlayerOnTurn() == board.Red {
			plays := movegen.GenAll(board.Red, g.Board(), g.Mines())
			require.NotEmpty(t, plays)
			require.NoError(t, g.PlayMove(plays[0].From(), plays[0].To()))
		}
		g.Tick()
	}
	require.Equal(t, GameOver, g.Playing())
	assert.Contains(t, []string{
		MsgRedWins, MsgBlueWins, MsgRedEliminated, MsgBlueEliminated,
	}, g.FinalMessage())
	assert.GreaterOrEqual(t, g.ShufflesRemaining(board.Red), 0)
	assert.GreaterOrEqual(t, g.ShufflesRemaining(board.Blue), 0)
}
