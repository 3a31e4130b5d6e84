// Package engine implements the static evaluator and the move search.
package engine

import (
	"github.com/hailam/chesscore/internal/board"
)

// Material values, summed with sign by color.
const (
	PawnValue   = 10
	KnightValue = 30
	BishopValue = 30
	RookValue   = 50
	QueenValue  = 90
	KingValue   = 900
)

var pieceValues = [6]int{PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// Pawn structure terms, computed per color and combined with sign.
const (
	doubledPawnPenalty  = 4 // per pawn beyond the first on a file
	isolatedPawnPenalty = 3 // per pawn on a file with no friendly neighbors
	shieldPawnBonus     = 2 // per friendly pawn directly in front of the king
)

// passedPawnBonus is indexed by the pawn's rank from its own side (0-7).
// The last slot is unused: a pawn on its farthest rank has promoted.
var passedPawnBonus = [8]int{0, 1, 1, 2, 4, 7, 12, 0}

// Piece-Square Tables for positional evaluation.
// Values are from White's perspective, index 0 = a1; mirrored for Black.

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	1, 1, 1, -2, -2, 1, 1, 1,
	1, -1, -1, 0, 0, -1, -1, 1,
	0, 0, 0, 2, 2, 0, 0, 0,
	1, 1, 2, 3, 3, 2, 1, 1,
	2, 2, 3, 4, 4, 3, 2, 2,
	5, 5, 5, 5, 5, 5, 5, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-5, -4, -3, -3, -3, -3, -4, -5,
	-4, -2, 0, 1, 1, 0, -2, -4,
	-3, 1, 1, 2, 2, 1, 1, -3,
	-3, 0, 2, 2, 2, 2, 0, -3,
	-3, 1, 2, 2, 2, 2, 1, -3,
	-3, 0, 1, 2, 2, 1, 0, -3,
	-4, -2, 0, 0, 0, 0, -2, -4,
	-5, -4, -3, -3, -3, -3, -4, -5,
}

var bishopPST = [64]int{
	-2, -1, -1, -1, -1, -1, -1, -2,
	-1, 1, 0, 0, 0, 0, 1, -1,
	-1, 1, 1, 1, 1, 1, 1, -1,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-1, 1, 1, 1, 1, 1, 1, -1,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-2, -1, -1, -1, -1, -1, -1, -2,
}

var rookPST = [64]int{
	0, 0, 0, 1, 1, 0, 0, 0,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	1, 2, 2, 2, 2, 2, 2, 1,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-2, -1, -1, 0, 0, -1, -1, -2,
	-1, 0, 1, 0, 0, 0, 0, -1,
	-1, 1, 1, 1, 1, 1, 0, -1,
	0, 0, 1, 1, 1, 1, 0, 0,
	0, 0, 1, 1, 1, 1, 0, 0,
	-1, 0, 1, 1, 1, 1, 0, -1,
	-1, 0, 0, 0, 0, 0, 0, -1,
	-2, -1, -1, 0, 0, -1, -1, -2,
}

// The king uses one of two tables depending on game phase: while either
// queen remains the game counts as middlegame, otherwise endgame.
var kingMiddlegamePST = [64]int{
	2, 3, 1, 0, 0, 1, 3, 2,
	2, 2, 0, 0, 0, 0, 2, 2,
	-1, -2, -2, -2, -2, -2, -2, -1,
	-2, -3, -3, -4, -4, -3, -3, -2,
	-3, -4, -4, -5, -5, -4, -4, -3,
	-3, -4, -4, -5, -5, -4, -4, -3,
	-3, -4, -4, -5, -5, -4, -4, -3,
	-3, -4, -4, -5, -5, -4, -4, -3,
}

var kingEndgamePST = [64]int{
	-5, -4, -3, -2, -2, -3, -4, -5,
	-3, -2, -1, 0, 0, -1, -2, -3,
	-3, -1, 2, 3, 3, 2, -1, -3,
	-3, -1, 3, 4, 4, 3, -1, -3,
	-3, -1, 3, 4, 4, 3, -1, -3,
	-3, -1, 2, 3, 3, 2, -1, -3,
	-3, -3, 0, 0, 0, 0, -3, -3,
	-5, -3, -3, -3, -3, -3, -3, -5,
}

var pstByType = [5][64]int{pawnPST, knightPST, bishopPST, rookPST, queenPST}

// Evaluate scores the board as a pure function of piece placement. Positive
// values favor White. The score is material plus piece-square bonuses, then
// each pawn-structure and king-safety term added for White and subtracted
// for Black.
func Evaluate(p *board.Position) int {
	score := 0
	endgame := isEndgame(p)

	for sq := board.A1; sq <= board.H8; sq++ {
		piece := p.Squares[sq]
		if piece == board.NoPiece {
			continue
		}

		pt := piece.Type()
		c := piece.Color()

		value := pieceValues[pt]
		idx := sq
		if c == board.Black {
			idx = sq.Mirror()
		}
		if pt == board.King {
			if endgame {
				value += kingEndgamePST[idx]
			} else {
				value += kingMiddlegamePST[idx]
			}
		} else {
			value += pstByType[pt][idx]
		}

		if c == board.White {
			score += value
		} else {
			score -= value
		}
	}

	score += pawnStructure(p, board.White) - pawnStructure(p, board.Black)
	score += kingShield(p, board.White) - kingShield(p, board.Black)

	return score
}

// isEndgame reports whether no queen of either color remains.
func isEndgame(p *board.Position) bool {
	for sq := board.A1; sq <= board.H8; sq++ {
		if p.Squares[sq].Type() == board.Queen {
			return false
		}
	}
	return true
}

// pawnStructure scores doubled, isolated and passed pawns for one color.
// The result is a bonus (possibly negative) to be added with sign.
func pawnStructure(p *board.Position, c board.Color) int {
	pawn := board.NewPiece(board.Pawn, c)
	enemyPawn := board.NewPiece(board.Pawn, c.Other())

	var pawnsOnFile [8]int
	for sq := board.A1; sq <= board.H8; sq++ {
		if p.Squares[sq] == pawn {
			pawnsOnFile[sq.File()]++
		}
	}

	score := 0

	// Doubled: every pawn beyond the first on a file is penalized.
	for file := 0; file < 8; file++ {
		if pawnsOnFile[file] > 1 {
			score -= (pawnsOnFile[file] - 1) * doubledPawnPenalty
		}
	}

	// Isolated: a file with pawns but no friendly pawns on either neighbor.
	for file := 0; file < 8; file++ {
		if pawnsOnFile[file] == 0 {
			continue
		}
		neighbors := 0
		if file > 0 {
			neighbors += pawnsOnFile[file-1]
		}
		if file < 7 {
			neighbors += pawnsOnFile[file+1]
		}
		if neighbors == 0 {
			score -= pawnsOnFile[file] * isolatedPawnPenalty
		}
	}

	// Passed: no enemy pawn at or ahead of the pawn on its own or adjacent
	// files, relative to its direction of travel.
	for sq := board.A1; sq <= board.H8; sq++ {
		if p.Squares[sq] != pawn {
			continue
		}
		if isPassed(p, sq, c, enemyPawn) {
			score += passedPawnBonus[sq.RelativeRank(c)]
		}
	}

	return score
}

func isPassed(p *board.Position, sq board.Square, c board.Color, enemyPawn board.Piece) bool {
	for other := board.A1; other <= board.H8; other++ {
		if p.Squares[other] != enemyPawn {
			continue
		}
		if abs(other.File()-sq.File()) > 1 {
			continue
		}
		if other.RelativeRank(c) >= sq.RelativeRank(c) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// kingShield awards a bonus for each friendly pawn on the up-to-three
// squares directly in front of the king, applicable only while the king has
// not advanced past its second rank.
func kingShield(p *board.Position, c board.Color) int {
	ksq := p.KingSquare(c)
	if ksq == board.NoSquare || ksq.RelativeRank(c) > 1 {
		return 0
	}

	forward := 1
	if c == board.Black {
		forward = -1
	}
	pawn := board.NewPiece(board.Pawn, c)

	score := 0
	rank := ksq.Rank() + forward
	for file := ksq.File() - 1; file <= ksq.File()+1; file++ {
		if file < 0 || file > 7 {
			continue
		}
		if p.Squares[board.NewSquare(file, rank)] == pawn {
			score += shieldPawnBonus
		}
	}
	return score
}
