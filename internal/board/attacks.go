package board

// This file is the lower of the two legality layers: a pure attack test
// covering geometry, occupancy and path clearance only. Check detection is
// built on it. It must never consult the self-check filter in movegen.go,
// or move legality and check detection would recurse into each other.

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// pathClear reports whether every square strictly between from and to is
// empty. from and to must share a rank, a file, or a diagonal.
func (p *Position) pathClear(from, to Square) bool {
	df := sign(to.File() - from.File())
	dr := sign(to.Rank() - from.Rank())

	file := from.File() + df
	rank := from.Rank() + dr
	for file != to.File() || rank != to.Rank() {
		if p.Squares[NewSquare(file, rank)] != NoPiece {
			return false
		}
		file += df
		rank += dr
	}
	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// attacks reports whether the piece on from attacks the square to, using
// geometry, occupancy and path clearance only. Pawn forward moves are not
// attacks; neither is castling. The target square may be occupied by either
// side (a friendly occupant simply means the square is defended).
func (p *Position) attacks(from, to Square) bool {
	piece := p.Squares[from]
	if piece == NoPiece || from == to {
		return false
	}

	df := to.File() - from.File()
	dr := to.Rank() - from.Rank()

	switch piece.Type() {
	case Pawn:
		forward := 1
		if piece.Color() == Black {
			forward = -1
		}
		return dr == forward && abs(df) == 1
	case Knight:
		return (abs(df) == 1 && abs(dr) == 2) || (abs(df) == 2 && abs(dr) == 1)
	case Bishop:
		return abs(df) == abs(dr) && p.pathClear(from, to)
	case Rook:
		return (df == 0) != (dr == 0) && p.pathClear(from, to)
	case Queen:
		if abs(df) == abs(dr) || (df == 0) != (dr == 0) {
			return p.pathClear(from, to)
		}
		return false
	case King:
		return abs(df) <= 1 && abs(dr) <= 1
	}
	return false
}

// IsAttacked reports whether any piece of the given color attacks sq.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	for from := A1; from <= H8; from++ {
		piece := p.Squares[from]
		if piece == NoPiece || piece.Color() != by {
			continue
		}
		if p.attacks(from, sq) {
			return true
		}
	}
	return false
}

// InCheck reports whether the given color's king is attacked. A board with
// no king of that color (possible only in scratch positions used by check
// detection itself) is treated as not in check.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return p.IsAttacked(ksq, c.Other())
}
