// Package game encapsulates the main mechanics of a mine-checkers
// game: turn order, move legality at the controller level, reshuffle
// accounting, and invoking the computer player. A Game doesn't care how
// it is displayed; shells and other frontends drive it through the
// small input interface here.
package game

import (
	"crypto/sha256"
	"errors"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/minecheckers/ai/alphabeta"
	"github.com/domino14/minecheckers/board"
	"github.com/domino14/minecheckers/config"
	"github.com/domino14/minecheckers/mines"
	"github.com/domino14/minecheckers/move"
	"github.com/domino14/minecheckers/movegen"
)

// PlayState is the state of the game; whether it is ongoing or over.
type PlayState int

const (
	Playing PlayState = iota
	GameOver
)

// The terminal messages, from the human (Red) player's point of view.
const (
	MsgRedWins        = "You won!"
	MsgBlueWins       = "You lost!"
	MsgRedEliminated  = "Red lost!"
	MsgBlueEliminated = "Blue lost!"
)

// Invalid-input rejections. The core has no other failure modes; a
// frontend may surface these or drop them silently.
var (
	ErrGameOver          = errors.New("the game is over")
	ErrNotYourTurn       = errors.New("it is not that side's turn")
	ErrNotYourPiece      = errors.New("that cell does not hold one of your pieces")
	ErrNoSelection       = errors.New("no piece is selected")
	ErrIllegalMove       = errors.New("that destination is not a legal move")
	ErrNoShufflesLeft    = errors.New("no reshuffles remaining")
	ErrAlreadyReshuffled = errors.New("already reshuffled on this turn")
)

// Game is the actual internal game structure that controls the entire
// business logic of the game: selections, committed moves, reshuffles,
// and the computer's turns.
type Game struct {
	cfg *config.Config

	board   *board.GameBoard
	mines   mines.MineSet
	playing PlayState
	onturn  board.Side

	shufflesLeft   [2]int
	blueReshuffled bool
	selected       *board.Piece

	finalMessage string
	history      []*move.Move

	rng    *frand.RNG
	solver *alphabeta.Solver
}

// NewGame creates a game from the configuration. An empty RandomSeed
// seeds from OS entropy; any other string yields a fully deterministic
// game (mines, coin flip, and tie-breaking).
func NewGame(cfg *config.Config) (*Game, error) {
	if cfg.MineCount <= 0 || cfg.MineCount > (board.Rows-2)*(board.Cols+1)/2 {
		return nil, errors.New("mine count does not fit the middle rows")
	}
	if cfg.ShufflesPerSide < 0 {
		return nil, errors.New("shuffles per side cannot be negative")
	}
	g := &Game{cfg: cfg}
	if cfg.RandomSeed == "" {
		g.rng = frand.New()
	} else {
		sum := sha256.Sum256([]byte(cfg.RandomSeed))
		g.rng = frand.NewCustom(sum[:], 1024, 12)
		log.Debug().Str("seed", cfg.RandomSeed).Msg("deterministic-rng")
	}
	g.solver = &alphabeta.Solver{}
	err := g.solver.Init(cfg.SearchDepth, g.rng)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// StartGame sets up the starting position, generates a fresh mine set,
// and flips a coin for who moves first.
func (g *Game) StartGame() {
	g.board = board.NewBoard()
	g.mines = mines.Generate(g.board, g.cfg.MineCount, g.rng)
	g.onturn = board.Side(g.rng.Intn(2))
	g.playing = Playing
	g.shufflesLeft = [2]int{g.cfg.ShufflesPerSide, g.cfg.ShufflesPerSide}
	g.blueReshuffled = false
	g.selected = nil
	g.finalMessage = ""
	g.history = nil
	log.Debug().Str("goes-first", g.onturn.String()).Msg("coin-flip")
}

// SelectPiece sets the selection cursor to the piece at c. Only the
// side to move may select, and only its own pieces.
func (g *Game) SelectPiece(c board.Coord) error {
	if g.playing != Playing {
		return ErrGameOver
	}
	p, ok := g.board.PieceAt(c)
	if !ok || p.Side != g.onturn {
		return ErrNotYourPiece
	}
	g.selected = &p
	return nil
}

// SelectedPiece returns the currently selected piece, if any.
func (g *Game) SelectedPiece() (board.Piece, bool) {
	if g.selected == nil {
		return board.Piece{}, false
	}
	return *g.selected, true
}

// ValidMovesForSelection returns the legal destinations of the
// selected piece, in generation order.
func (g *Game) ValidMovesForSelection() []board.Coord {
	if g.selected == nil {
		return nil
	}
	return movegen.ValidMoves(*g.selected, g.board, g.mines)
}

// AttemptMove tries to commit a move of the selected piece to the cell
// at to. On success the selection is cleared, the turn flips, and
// terminal conditions are re-checked.
func (g *Game) AttemptMove(to board.Coord) error {
	if g.playing != Playing {
		return ErrGameOver
	}
	if g.selected == nil {
		return ErrNoSelection
	}
	for _, dest := range movegen.ValidMoves(*g.selected, g.board, g.mines) {
		if dest == to {
			g.commitMove(*g.selected, to)
			g.selected = nil
			g.onturn = g.onturn.Opponent()
			g.checkGameOver()
			return nil
		}
	}
	return ErrIllegalMove
}

// PlayMove selects the piece at from and attempts the move to to in one
// call. Convenience for frontends without a selection cursor.
func (g *Game) PlayMove(from, to board.Coord) error {
	if err := g.SelectPiece(from); err != nil {
		return err
	}
	return g.AttemptMove(to)
}

// ActivateReshuffle replaces the mine set with a disjoint one on behalf
// of side s. It does not consume the turn, but it decrements the
// side's counter; Blue may additionally reshuffle only once per visit,
// and that reshuffle uses up the computer's next move.
func (g *Game) ActivateReshuffle(s board.Side) error {
	if g.playing != Playing {
		return ErrGameOver
	}
	if s != g.onturn {
		return ErrNotYourTurn
	}
	if g.shufflesLeft[s] <= 0 {
		return ErrNoShufflesLeft
	}
	if s == board.Blue {
		if g.blueReshuffled {
			return ErrAlreadyReshuffled
		}
		g.blueReshuffled = true
	}
	g.reshuffle(s)
	return nil
}

func (g *Game) reshuffle(s board.Side) {
	g.mines = mines.Shuffle(g.board, g.mines, g.cfg.MineCount, g.rng)
	g.shufflesLeft[s]--
	log.Debug().Str("side", s.String()).
		Int("remaining", g.shufflesLeft[s]).
		Msg("reshuffled-mines")
}

// Tick runs one turn-check cycle: re-evaluates terminal conditions and,
// if it is the computer's turn, makes its move. Frontends call it after
// every input (the original game ran it once per frame).
func (g *Game) Tick() {
	if g.playing != Playing {
		return
	}
	if g.checkGameOver() {
		return
	}
	if g.onturn != board.Blue {
		return
	}
	if g.blueReshuffled {
		// A reshuffle on this visit used up the computer's decision
		// point; skip exactly one move.
		g.blueReshuffled = false
		return
	}
	if g.cfg.AutoReshuffle && g.shufflesLeft[board.Blue] > 0 &&
		alphabeta.ShouldReshuffle(g.board) {
		g.reshuffle(board.Blue)
		return
	}
	g.aiMove()
	g.checkGameOver()
}

func (g *Game) aiMove() {
	chosen := g.solver.FindWinningMove(g.board, g.mines)
	if chosen == nil {
		var err error
		chosen, _, err = g.solver.BestMove(g.board, g.mines)
		if err != nil {
			// The computer cannot move at all; equivalent to losing
			// every piece.
			log.Debug().Msg("no-legal-moves-for-blue")
			g.playing = GameOver
			g.finalMessage = MsgBlueEliminated
			return
		}
	}
	g.commitMove(chosen.Piece(), chosen.To())
	g.onturn = board.Red
}

func (g *Game) commitMove(p board.Piece, to board.Coord) {
	_, capture := g.board.PieceAt(to)
	g.board.ApplyMove(p.Coord(), to)
	m := move.New(p, to, capture)
	g.history = append(g.history, m)
	log.Debug().Str("move", m.ShortDescription()).
		Str("side", p.Side.String()).
		Msg("committed-move")
}

func (g *Game) checkGameOver() bool {
	if side, over := g.board.Winner(); over {
		if side == board.Red {
			g.finalMessage = MsgRedWins
		} else {
			g.finalMessage = MsgBlueWins
		}
		g.playing = GameOver
		return true
	}
	if side, gone := g.board.Eliminated(); gone {
		if side == board.Red {
			g.finalMessage = MsgRedEliminated
		} else {
			g.finalMessage = MsgBlueEliminated
		}
		g.playing = GameOver
		return true
	}
	return false
}

// SetPosition overrides the board, mines, and side to move. Meant for
// tests and debugging positions from the shell.
func (g *Game) SetPosition(b *board.GameBoard, m mines.MineSet, onturn board.Side) {
	g.board = b
	g.mines = m
	g.onturn = onturn
	g.playing = Playing
	g.selected = nil
	g.finalMessage = ""
}

// Board returns the live game board. Only the controller mutates it.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

// Mines returns the current mine set.
func (g *Game) Mines() mines.MineSet {
	return g.mines
}

// PlayerOnTurn returns the side to move.
func (g *Game) PlayerOnTurn() board.Side {
	return g.onturn
}

// Playing returns whether the game is ongoing or over.
func (g *Game) Playing() PlayState {
	return g.playing
}

// FinalMessage returns the terminal message, or "" while playing.
func (g *Game) FinalMessage() string {
	return g.finalMessage
}

// ShufflesRemaining returns how many reshuffles a side has left.
func (g *Game) ShufflesRemaining(s board.Side) int {
	return g.shufflesLeft[s]
}

// History returns the committed moves in order.
func (g *Game) History() []*move.Move {
	return g.history
}
