package board

// This file is the upper legality layer: pseudo-legal move shapes (attack
// geometry plus pawn pushes, en passant and castling) filtered through the
// self-check test. Enumeration scans squares in index order, a1 through h8,
// for both origins and destinations; search tie-breaking depends on that
// order, so it is part of the package contract.

// pseudoLegal reports whether the piece on from can move to to by its
// geometry rule in this position, ignoring whether the move would leave the
// mover's own king in check. The destination must not hold a friendly piece.
func (p *Position) pseudoLegal(from, to Square) bool {
	piece := p.Squares[from]
	if piece == NoPiece || from == to {
		return false
	}
	if target := p.Squares[to]; target != NoPiece && target.Color() == piece.Color() {
		return false
	}

	switch piece.Type() {
	case Pawn:
		return p.pawnCanMove(from, to, piece.Color())
	case King:
		df := to.File() - from.File()
		if abs(df) == 2 && to.Rank() == from.Rank() {
			return p.canCastle(from, to, piece.Color())
		}
		return p.attacks(from, to)
	default:
		return p.attacks(from, to)
	}
}

// pawnCanMove covers the full pawn rule: single push to an empty square,
// double push from the starting rank through an empty intermediate square,
// and a diagonal step onto an enemy piece or onto the empty en-passant
// target.
func (p *Position) pawnCanMove(from, to Square, c Color) bool {
	forward := 1
	startRank := 1
	if c == Black {
		forward = -1
		startRank = 6
	}

	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	if df == 0 {
		if dr == forward {
			return p.Squares[to] == NoPiece
		}
		if dr == 2*forward && from.Rank() == startRank {
			between := NewSquare(from.File(), from.Rank()+forward)
			return p.Squares[between] == NoPiece && p.Squares[to] == NoPiece
		}
		return false
	}

	if abs(df) == 1 && dr == forward {
		if target := p.Squares[to]; target != NoPiece {
			return target.Color() != c
		}
		return to == p.EnPassant
	}

	return false
}

// canCastle checks the castling rule for a two-file king move: the right is
// still held, the corresponding rook sits on its home square, every square
// between king and rook is empty, and the king is not currently attacked.
// The squares the king passes through are deliberately not tested.
func (p *Position) canCastle(from, to Square, c Color) bool {
	kingSide := to.File() > from.File()
	if !p.CastlingRights.CanCastle(c, kingSide) {
		return false
	}

	rank := from.Rank()
	rookFile := 7
	if !kingSide {
		rookFile = 0
	}
	rookSq := NewSquare(rookFile, rank)
	if p.Squares[rookSq] != NewPiece(Rook, c) {
		return false
	}

	if !p.pathClear(from, rookSq) {
		return false
	}

	return !p.IsAttacked(from, c.Other())
}

// IsLegal reports whether moving from from to to is fully legal for the
// side to move: the origin holds the mover's piece, the geometry rule
// permits the move, and applying it does not leave the mover's own king
// attacked. Illegal requests simply return false; nothing changes.
func (p *Position) IsLegal(from, to Square) bool {
	if !from.IsValid() || !to.IsValid() {
		return false
	}

	piece := p.Squares[from]
	if piece == NoPiece || piece.Color() != p.SideToMove {
		return false
	}

	if !p.pseudoLegal(from, to) {
		return false
	}

	// Self-check filter: play the move on a scratch copy and ask the attack
	// layer whether the mover's king is hit.
	scratch := p.Apply(NewMove(from, to))
	return !scratch.InCheck(piece.Color())
}

// GenerateLegalMoves enumerates every legal move for the given color by
// testing all of its pieces against all 64 destinations through IsLegal.
// Promotion kinds are left unspecified; applying such a move promotes to a
// queen.
func (p *Position) GenerateLegalMoves(c Color) []Move {
	pos := *p
	pos.SideToMove = c

	var moves []Move
	for from := A1; from <= H8; from++ {
		piece := pos.Squares[from]
		if piece == NoPiece || piece.Color() != c {
			continue
		}
		for to := A1; to <= H8; to++ {
			if pos.IsLegal(from, to) {
				moves = append(moves, NewMove(from, to))
			}
		}
	}
	return moves
}

// HasLegalMoves reports whether the given color has at least one legal move.
func (p *Position) HasLegalMoves(c Color) bool {
	pos := *p
	pos.SideToMove = c

	for from := A1; from <= H8; from++ {
		piece := pos.Squares[from]
		if piece == NoPiece || piece.Color() != c {
			continue
		}
		for to := A1; to <= H8; to++ {
			if pos.IsLegal(from, to) {
				return true
			}
		}
	}
	return false
}

// IsCheckmate reports whether the given color is in check with no legal moves.
func (p *Position) IsCheckmate(c Color) bool {
	return p.InCheck(c) && !p.HasLegalMoves(c)
}

// IsStalemate reports whether the given color has no legal moves but is not
// in check.
func (p *Position) IsStalemate(c Color) bool {
	return !p.InCheck(c) && !p.HasLegalMoves(c)
}
