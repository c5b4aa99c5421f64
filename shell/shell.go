// Package shell is an interactive terminal frontend for mine-checkers.
// The human plays Red; the computer plays Blue. The shell only ever
// talks to the game controller through its input interface, so all the
// rules live below it.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/minecheckers/board"
	"github.com/domino14/minecheckers/config"
	"github.com/domino14/minecheckers/game"
	"github.com/domino14/minecheckers/move"
	"github.com/domino14/minecheckers/movegen"
)

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	game *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func usage(w io.Writer) {
	showMessage(`commands:
s - show the board (mines are hidden in a real game; * marks them here)
sel <coord> - select one of your pieces, e.g. sel C6
move <coord> - move the selected piece, e.g. move C5
move <from> <to> - select and move in one step
moves <coord> - list the legal moves for a piece
shuffle - spend a reshuffle to relocate all mines
new - start a new game
help - this message
bye (or exit) - leave the shell`, w)
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mminecheckers>\033[0m ",
		HistoryFile:     "/tmp/minecheckers_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *ShellController) newGame() error {
	g, err := game.NewGame(sc.cfg)
	if err != nil {
		return err
	}
	sc.game = g
	g.StartGame()
	sc.showMessage(fmt.Sprintf("After tossing the coin, %v starts!",
		g.PlayerOnTurn()))
	// If the computer won the toss it moves right away.
	g.Tick()
	sc.displayGame()
	return nil
}

func (sc *ShellController) displayGame() {
	g := sc.game
	sc.showMessage(g.Board().ToDisplayText(g.Mines()))
	if g.Playing() == game.GameOver {
		sc.showMessage("Game over: " + g.FinalMessage())
		return
	}
	sc.showMessage(fmt.Sprintf("%v to move. Red shuffles: %d, Blue shuffles: %d",
		g.PlayerOnTurn(),
		g.ShufflesRemaining(board.Red),
		g.ShufflesRemaining(board.Blue)))
}

// afterInput runs the computer's turn if there is one, and redraws.
func (sc *ShellController) afterInput() {
	sc.game.Tick()
	sc.displayGame()
}

func (sc *ShellController) selectPiece(arg string) error {
	c, err := move.FromBoardGameCoords(arg)
	if err != nil {
		return err
	}
	if err := sc.game.SelectPiece(c); err != nil {
		return err
	}
	dests := lo.Map(sc.game.ValidMovesForSelection(),
		func(d board.Coord, _ int) string {
			return move.ToBoardGameCoords(d)
		})
	if len(dests) == 0 {
		sc.showMessage("Selected " + arg + "; it has no legal moves.")
		return nil
	}
	sc.showMessage("Selected " + arg + "; legal moves: " +
		strings.Join(dests, " "))
	return nil
}

func (sc *ShellController) listMoves(arg string) error {
	c, err := move.FromBoardGameCoords(arg)
	if err != nil {
		return err
	}
	p, ok := sc.game.Board().PieceAt(c)
	if !ok {
		return errors.New("no piece at " + arg)
	}
	dests := lo.Map(movegen.ValidMoves(p, sc.game.Board(), sc.game.Mines()),
		func(d board.Coord, _ int) string {
			return move.ToBoardGameCoords(d)
		})
	sc.showMessage(fmt.Sprintf("%v piece at %s; legal moves: %s",
		p.Side, arg, strings.Join(dests, " ")))
	return nil
}

func (sc *ShellController) attemptMove(fields []string) error {
	var to board.Coord
	var err error
	switch len(fields) {
	case 1:
		to, err = move.FromBoardGameCoords(fields[0])
		if err != nil {
			return err
		}
		err = sc.game.AttemptMove(to)
	case 2:
		var from board.Coord
		from, err = move.FromBoardGameCoords(fields[0])
		if err != nil {
			return err
		}
		to, err = move.FromBoardGameCoords(fields[1])
		if err != nil {
			return err
		}
		err = sc.game.PlayMove(from, to)
	default:
		return errors.New("move takes one or two coordinates")
	}
	if err != nil {
		return err
	}
	sc.afterInput()
	return nil
}

func (sc *ShellController) shuffle() error {
	err := sc.game.ActivateReshuffle(sc.game.PlayerOnTurn())
	if err != nil {
		return err
	}
	sc.afterInput()
	return nil
}

type shellcmd struct {
	cmd  string
	args []string
}

var errNoData = errors.New("no data found")

func extractFields(line string) (*shellcmd, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errNoData
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}, nil
}

func (sc *ShellController) handle(line string, sig chan os.Signal) (quit bool) {
	parsed, err := extractFields(line)
	if err != nil {
		return false
	}
	cmd, args := parsed.cmd, parsed.args

	switch cmd {
	case "bye", "exit":
		sig <- syscall.SIGINT
		return true
	case "help":
		usage(sc.l.Stderr())
	case "new":
		err = sc.newGame()
	case "s", "show":
		sc.displayGame()
	case "sel":
		if len(args) != 1 {
			err = errors.New("sel takes one coordinate")
		} else {
			err = sc.selectPiece(args[0])
		}
	case "move":
		err = sc.attemptMove(args)
	case "moves":
		if len(args) != 1 {
			err = errors.New("moves takes one coordinate")
		} else {
			err = sc.listMoves(args[0])
		}
	case "shuffle":
		err = sc.shuffle()
	default:
		err = errors.New("unrecognized command; try `help`")
	}
	if err != nil {
		sc.showError(err)
	}
	return false
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	if err := sc.newGame(); err != nil {
		sc.showError(err)
		sig <- syscall.SIGINT
		return
	}

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		if sc.handle(strings.TrimSpace(line), sig) {
			break
		}
	}
	log.Debug().Msg("exiting readline loop")
}
