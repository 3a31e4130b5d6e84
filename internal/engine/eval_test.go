package engine

import (
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func mustParse(t *testing.T, fen string) board.Position {
	t.Helper()
	pos, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("parse %q: %v", fen, err)
	}
	return pos
}

func TestEvaluateStartingPositionIsZero(t *testing.T) {
	pos := board.NewPosition()
	if score := Evaluate(&pos); score != 0 {
		t.Errorf("Evaluate(start) = %d, want 0", score)
	}
}

// mirrored swaps the colors of a position across the horizontal axis.
// Evaluation must be antisymmetric under this transformation.
func mirrored(p board.Position) board.Position {
	m := p
	for sq := board.A1; sq <= board.H8; sq++ {
		piece := p.Squares[sq]
		if piece == board.NoPiece {
			m.Squares[sq.Mirror()] = board.NoPiece
		} else {
			m.Squares[sq.Mirror()] = board.NewPiece(piece.Type(), piece.Color().Other())
		}
	}
	m.SideToMove = p.SideToMove.Other()
	m.CastlingRights = board.NoCastling
	m.EnPassant = board.NoSquare
	return m
}

func TestEvaluateIsColorAntisymmetric(t *testing.T) {
	fens := []string{
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1",
		"8/2p5/8/1P6/8/8/8/k6K w - - 0 1",
	}

	for _, fen := range fens {
		pos := mustParse(t, fen)
		mir := mirrored(pos)
		if got, want := Evaluate(&mir), -Evaluate(&pos); got != want {
			t.Errorf("%s: mirrored eval = %d, want %d", fen, got, want)
		}
	}
}

func TestEvaluateLonePawnEndgame(t *testing.T) {
	// White: Ke1 (endgame table -2), Pe2 (PST -2, isolated -3, passed rank
	// bonus +1, shield +2). Black: Ke8 (endgame table -2, mirrored).
	pos := mustParse(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")

	want := (KingValue - 2 + PawnValue - 2 - 3 + 1 + 2) - (KingValue - 2)
	if got := Evaluate(&pos); got != want {
		t.Errorf("Evaluate = %d, want %d", got, want)
	}
}

func TestMaterialDominates(t *testing.T) {
	// White is up a whole queen.
	pos := mustParse(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	if score := Evaluate(&pos); score < QueenValue/2 {
		t.Errorf("Evaluate = %d, expected a large white advantage", score)
	}
}

func TestDoubledPawnsArePenalized(t *testing.T) {
	single := mustParse(t, "4k3/8/8/8/8/8/2P1P3/4K3 w - - 0 1")
	doubled := mustParse(t, "4k3/8/8/8/8/2P5/2P5/4K3 w - - 0 1")

	if Evaluate(&doubled) >= Evaluate(&single) {
		t.Error("doubled pawns should score worse than split pawns")
	}
}

func TestPassedPawnBonusGrowsWithRank(t *testing.T) {
	// Same passed c-pawn, two ranks apart; everything else identical.
	behind := mustParse(t, "4k3/8/8/8/8/2P5/8/4K3 w - - 0 1")
	ahead := mustParse(t, "4k3/8/2P5/8/8/8/8/4K3 w - - 0 1")

	if Evaluate(&ahead) <= Evaluate(&behind) {
		t.Error("a more advanced passed pawn should score higher")
	}
}

func TestPassedPawnBlockedByAdjacentFile(t *testing.T) {
	// The black b7 pawn covers the white c-pawn's path: not passed.
	blocked := mustParse(t, "4k3/1p6/8/2P5/8/8/8/4K3 w - - 0 1")
	// With the black pawn on g7 instead, the c-pawn is passed.
	free := mustParse(t, "4k3/6p1/8/2P5/8/8/8/4K3 w - - 0 1")

	if Evaluate(&free) <= Evaluate(&blocked) {
		t.Error("a passed pawn should outscore a blocked one")
	}
}

func TestKingTableSwitchesWithQueens(t *testing.T) {
	// Centralized white king, cornered black king; no pawns. In the
	// endgame the central king is rewarded, in the middlegame penalized,
	// so adding a queen pair (which cancels materially) flips part of the
	// score.
	endgame := mustParse(t, "k7/8/8/8/3K4/8/8/8 w - - 0 1")
	middlegame := mustParse(t, "k2q4/8/8/8/3K4/8/8/3Q4 w - - 0 1")

	egScore := Evaluate(&endgame)
	mgScore := Evaluate(&middlegame)

	if egScore <= 0 {
		t.Errorf("endgame central king should be favored, got %d", egScore)
	}
	if mgScore >= egScore {
		t.Errorf("middlegame table should punish the exposed central king: mg=%d eg=%d", mgScore, egScore)
	}
}
