package board

import (
	"testing"
)

func TestBackRankMate(t *testing.T) {
	// White: Ka1, Ra8. Black: Kh8, pawns g7 and h7 blocking escape.
	// Black is already in checkmate.
	pos, err := ParseFEN("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if !pos.InCheck(Black) {
		t.Error("black should be in check")
	}

	moves := pos.GenerateLegalMoves(Black)
	if len(moves) != 0 {
		t.Errorf("expected no legal moves for black, got %d: %v", len(moves), moves)
	}

	if !pos.IsCheckmate(Black) {
		t.Error("expected checkmate but got false")
	}
	if pos.IsStalemate(Black) {
		t.Error("a mated side is not stalemated")
	}
}

func TestNotCheckmateWhenKingCanCapture(t *testing.T) {
	// Black king on h8 can capture the undefended rook on g8.
	pos, err := ParseFEN("6Rk/8/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if !pos.InCheck(Black) {
		t.Error("black should be in check")
	}
	if pos.IsCheckmate(Black) {
		t.Error("expected NOT checkmate: the king can take the rook")
	}
}

func TestStalemate(t *testing.T) {
	// Classic corner stalemate: black king a8, white queen c7, white king c8
	// is illegal (adjacent kings), use Kb6 instead. Black to move has no
	// moves and is not in check.
	pos, err := ParseFEN("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal("Error parsing FEN:", err)
	}

	if pos.InCheck(Black) {
		t.Error("black should not be in check")
	}
	if !pos.IsStalemate(Black) {
		t.Error("expected stalemate")
	}
	if pos.IsCheckmate(Black) {
		t.Error("stalemate is not checkmate")
	}
}

func TestKinglessScratchPositionIsNotInCheck(t *testing.T) {
	var pos Position
	for sq := A1; sq <= H8; sq++ {
		pos.Squares[sq] = NoPiece
	}
	pos.EnPassant = NoSquare
	pos.Squares[D4] = BlackRook

	if pos.InCheck(White) {
		t.Error("a board without a white king cannot have white in check")
	}
}
