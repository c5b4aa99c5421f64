// Package alphabeta implements the computer player: a depth-limited
// minimax search with alpha-beta pruning over board copies.
package alphabeta

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/minecheckers/board"
	"github.com/domino14/minecheckers/mines"
	"github.com/domino14/minecheckers/move"
	"github.com/domino14/minecheckers/movegen"
)

// thanks Wikipedia:
/**function alphabeta(node, depth, α, β, maximizingPlayer) is
    if depth = 0 or node is a terminal node then
        return the heuristic value of node
    if maximizingPlayer then
        value := −∞
        for each child of node do
            value := max(value, alphabeta(child, depth − 1, α, β, FALSE))
            α := max(α, value)
            if α ≥ β then
                break (* β cut-off *)
        return value
    else
        value := +∞
        for each child of node do
            value := min(value, alphabeta(child, depth − 1, α, β, TRUE))
            β := min(β, value)
            if α ≥ β then
                break (* α cut-off *)
        return value
(* Initial call *)
alphabeta(origin, depth, −∞, +∞, TRUE)
**/

const (
	// Infinity is 10 million. Winning positions evaluate to ±Infinity;
	// everything in between is a piece-count spread.
	Infinity = 10000000
	// DefaultPlies is how many half-moves ahead the computer looks,
	// counting its own move.
	DefaultPlies = 3
)

// ErrNoLegalMoves is returned when the maximizing side has no move at
// all. The controller treats it as a Blue elimination.
var ErrNoLegalMoves = errors.New("no legal moves for the maximizing side")

// Solver implements the minimax + alphabeta algorithm. Blue is always
// the maximizer and Red the minimizer, per the evaluation sign
// convention.
type Solver struct {
	rng        *frand.RNG
	plies      int
	totalNodes int

	disablePruning bool
}

type scoredPlay struct {
	play  *move.Move
	value float32
}

// max returns the larger of x or y.
func max(x, y float32) float32 {
	if x < y {
		return y
	}
	return x
}

func min(x, y float32) float32 {
	if x < y {
		return x
	}
	return y
}

// Init initializes the solver. A nil rng falls back to an
// entropy-seeded one; tests inject a deterministic rng for
// reproducible tie-breaking.
func (s *Solver) Init(plies int, rng *frand.RNG) error {
	if plies <= 0 {
		return errors.New("plies must be positive")
	}
	if rng == nil {
		rng = frand.New()
	}
	s.plies = plies
	s.rng = rng
	s.totalNodes = 0
	return nil
}

// SetPruningDisabled turns alpha-beta cutoffs off, leaving plain
// minimax. Only useful for verifying that pruning does not change the
// chosen score.
func (s *Solver) SetPruningDisabled(d bool) {
	s.disablePruning = d
}

// TotalNodes returns the number of nodes visited by the last search.
func (s *Solver) TotalNodes() int {
	return s.totalNodes
}

// alphabeta recursively evaluates the position. Each child is a fresh
// board copy, so sibling branches never see each other's moves. The
// cutoff break deliberately leaves only the innermost per-piece move
// loop, not the piece loop: this under-prunes relative to textbook
// alpha-beta but returns the same values, and it keeps explored-node
// counts identical to the original engine's.
func (s *Solver) alphabeta(b *board.GameBoard, m mines.MineSet, depth int,
	α float32, β float32, maximizingPlayer bool) float32 {

	s.totalNodes++

	if winner, over := b.Winner(); over {
		if winner == board.Red {
			return -Infinity
		}
		return Infinity
	}
	if depth == 0 {
		return float32(b.Spread())
	}

	if maximizingPlayer {
		// Maximizing (Blue)
		maxEval := float32(-Infinity)
		for _, p := range b.PiecesFor(board.Blue) {
			for _, dest := range movegen.ValidMoves(p, b, m) {
				child := b.Copy()
				child.ApplyMove(p.Coord(), dest)
				eval := s.alphabeta(child, m, depth-1, α, β, false)
				maxEval = max(maxEval, eval)
				α = max(α, eval)
				if β <= α && !s.disablePruning {
					break // beta cut-off
				}
			}
		}
		return maxEval
	}
	// Minimizing (Red)
	minEval := float32(Infinity)
	for _, p := range b.PiecesFor(board.Red) {
		for _, dest := range movegen.ValidMoves(p, b, m) {
			child := b.Copy()
			child.ApplyMove(p.Coord(), dest)
			eval := s.alphabeta(child, m, depth-1, α, β, true)
			minEval = min(minEval, eval)
			β = min(β, eval)
			if β <= α && !s.disablePruning {
				break // alpha cut-off
			}
		}
	}
	return minEval
}

// BestMove evaluates every (Blue piece, destination) pair to the
// configured depth and returns one of the best-scoring moves, chosen
// uniformly at random among exact ties. It returns the winning score
// alongside the move. ErrNoLegalMoves means Blue cannot move at all.
func (s *Solver) BestMove(b *board.GameBoard, m mines.MineSet) (*move.Move, float32, error) {
	tstart := time.Now()
	s.totalNodes = 0

	log.Debug().Int("plies", s.plies).
		Bool("pruning-disabled", s.disablePruning).
		Msg("alphabeta-solve-config")

	scored := []scoredPlay{}
	bestEval := float32(-Infinity)
	for _, p := range b.PiecesFor(board.Blue) {
		for _, dest := range movegen.ValidMoves(p, b, m) {
			child := b.Copy()
			_, capture := b.PieceAt(dest)
			child.ApplyMove(p.Coord(), dest)
			eval := s.alphabeta(child, m, s.plies, -Infinity, Infinity, false)
			scored = append(scored, scoredPlay{
				play:  move.New(p, dest, capture),
				value: eval,
			})
			bestEval = max(bestEval, eval)
		}
	}
	if len(scored) == 0 {
		return nil, 0, ErrNoLegalMoves
	}
	// Exact equality on purpose; every tie is a genuine candidate.
	best := lo.FilterMap(scored, func(sp scoredPlay, _ int) (*move.Move, bool) {
		return sp.play, sp.value == bestEval
	})
	chosen := best[s.rng.Intn(len(best))]

	log.Debug().
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Int("total-nodes", s.totalNodes).
		Int("candidates", len(scored)).
		Int("tied-at-best", len(best)).
		Float32("best-value", bestEval).
		Str("chosen", chosen.ShortDescription()).
		Msg("solve-returning")
	return chosen, bestEval, nil
}

// FindWinningMove scans for any single Blue move landing on Blue's goal
// row and returns the first one found, or nil. It is an absolute
// shortcut taken before the full search.
func (s *Solver) FindWinningMove(b *board.GameBoard, m mines.MineSet) *move.Move {
	for _, p := range b.PiecesFor(board.Blue) {
		for _, dest := range movegen.ValidMoves(p, b, m) {
			if dest.Row == board.Rows-1 {
				_, capture := b.PieceAt(dest)
				return move.New(p, dest, capture)
			}
		}
	}
	return nil
}

// ShouldReshuffle reports whether Blue is under enough pressure to
// spend a reshuffle: a Red piece stands two rows from Red's goal, or
// the spread has gone negative.
func ShouldReshuffle(b *board.GameBoard) bool {
	for col := 0; col < board.Cols; col++ {
		if p, ok := b.PieceAt(board.Coord{Row: 2, Col: col}); ok && p.Side == board.Red {
			return true
		}
	}
	return b.Spread() < 0
}
