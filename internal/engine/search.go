package engine

import (
	"errors"
	"fmt"

	"github.com/hailam/chesscore/internal/board"
)

// Mode selects the move-selection strategy.
type Mode int

const (
	ModeGreedy  Mode = iota // depth-1: best static score after one move
	ModeMinimax             // alpha-beta minimax to a configured depth
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeGreedy:
		return "greedy"
	case ModeMinimax:
		return "minimax"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "greedy":
		return ModeGreedy, nil
	case "minimax":
		return ModeMinimax, nil
	default:
		return 0, fmt.Errorf("unknown search mode: %q", s)
	}
}

// ErrNoLegalMove is reported when the side to move has no legal moves. The
// caller is responsible for recognizing this as checkmate or stalemate.
var ErrNoLegalMove = errors.New("no legal move")

const infinity = 1 << 30

// Engine selects moves for the side to move of a position. It holds only
// configuration; every search is a deterministic function of the position.
type Engine struct {
	mode  Mode
	depth int
}

// New creates an engine. The depth applies to minimax mode only and is
// clamped to at least 1.
func New(mode Mode, depth int) *Engine {
	if depth < 1 {
		depth = 1
	}
	return &Engine{mode: mode, depth: depth}
}

// Mode returns the configured mode.
func (e *Engine) Mode() Mode { return e.mode }

// Depth returns the configured minimax depth.
func (e *Engine) Depth() int { return e.depth }

// ChooseMove selects a move for the side to move according to the
// configured mode.
func (e *Engine) ChooseMove(pos *board.Position) (board.Move, error) {
	switch e.mode {
	case ModeMinimax:
		return Minimax(pos, e.depth)
	default:
		return Greedy(pos)
	}
}

// Greedy enumerates all legal moves, applies each to a scratch position,
// and picks the one with the best static score for the side to move:
// maximum for White, minimum for Black. The first strictly better move
// wins; later moves with equal score never displace an earlier choice.
func Greedy(pos *board.Position) (board.Move, error) {
	moves := pos.GenerateLegalMoves(pos.SideToMove)
	if len(moves) == 0 {
		return board.NoMove, ErrNoLegalMove
	}

	maximizing := pos.SideToMove == board.White
	best := moves[0]
	bestScore := -infinity
	if !maximizing {
		bestScore = infinity
	}

	for _, m := range moves {
		next := pos.Apply(m)
		score := Evaluate(&next)
		if maximizing && score > bestScore || !maximizing && score < bestScore {
			best = m
			bestScore = score
		}
	}

	return best, nil
}

// Minimax searches to the given depth with alpha-beta pruning and returns
// the chosen move. If the search yields no move, which can only happen at
// the root of a terminal position, it falls back to Greedy, which reports
// ErrNoLegalMove.
func Minimax(pos *board.Position, depth int) (board.Move, error) {
	if depth < 1 {
		depth = 1
	}

	move, _ := minimax(pos, depth, -infinity, infinity)
	if move == board.NoMove {
		return Greedy(pos)
	}
	return move, nil
}

// minimax is the recursive alpha-beta search. White maximizes, Black
// minimizes. The base case, reached at depth zero or when the side to move
// has no legal moves (checkmate or stalemate alike), returns the static
// evaluation of the board with no move.
func minimax(pos *board.Position, depth, alpha, beta int) (board.Move, int) {
	if depth == 0 {
		return board.NoMove, Evaluate(pos)
	}

	moves := pos.GenerateLegalMoves(pos.SideToMove)
	if len(moves) == 0 {
		return board.NoMove, Evaluate(pos)
	}

	maximizing := pos.SideToMove == board.White
	best := board.NoMove
	bestScore := -infinity
	if !maximizing {
		bestScore = infinity
	}

	for _, m := range moves {
		next := pos.Apply(m)
		_, score := minimax(&next, depth-1, alpha, beta)

		if maximizing {
			if score > bestScore {
				bestScore = score
				best = m
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore = score
				best = m
			}
			if bestScore < beta {
				beta = bestScore
			}
		}

		if alpha >= beta {
			break
		}
	}

	return best, bestScore
}
