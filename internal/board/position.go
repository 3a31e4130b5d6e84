package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// castleMask returns both castling rights of one color.
func castleMask(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle | WhiteQueenSideCastle
	}
	return BlackKingSideCastle | BlackQueenSideCastle
}

// Position is an immutable snapshot of the chess state: piece placement,
// side to move, castling rights and the en-passant target. It is a value
// type; copying it copies the whole board, so a transition never aliases
// the snapshot it was derived from. Clocks and move history live one level
// up, in the game package.
type Position struct {
	// Squares maps each square to its piece; NoPiece means empty.
	Squares [64]Piece

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      Square // Target square for en passant, NoSquare if none
}

// NewPosition creates the starting position.
func NewPosition() Position {
	pos, _ := ParseFEN(StartFEN)
	return pos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.Squares[sq]
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.Squares[sq] == NoPiece
}

// KingSquare returns the square of the given color's king, or NoSquare if
// the board holds no such king (possible only in scratch positions).
func (p *Position) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for sq := A1; sq <= H8; sq++ {
		if p.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Apply produces the position after the given move. The move is assumed to
// be legal; Apply never re-validates it. All side effects of the move are
// reproduced: castling rook relocation, castling-right clearing, en passant
// capture, the new en-passant target after a double pawn push, and
// promotion (defaulting to queen). The receiver is left untouched.
func (p Position) Apply(m Move) Position {
	next := p
	piece := next.Squares[m.From]
	mover := piece.Color()

	df := m.To.File() - m.From.File()

	// Castling: a king move of two files carries the rook along.
	if piece.Type() == King && (df == 2 || df == -2) {
		rank := m.From.Rank()
		if df == 2 {
			next.Squares[NewSquare(5, rank)] = next.Squares[NewSquare(7, rank)]
			next.Squares[NewSquare(7, rank)] = NoPiece
		} else {
			next.Squares[NewSquare(3, rank)] = next.Squares[NewSquare(0, rank)]
			next.Squares[NewSquare(0, rank)] = NoPiece
		}
	}

	// Castling rights: a king move clears both rights for its color; a rook
	// move off its home square clears that side's right. Rights never return.
	switch piece.Type() {
	case King:
		next.CastlingRights &^= castleMask(mover)
	case Rook:
		switch m.From {
		case A1:
			next.CastlingRights &^= WhiteQueenSideCastle
		case H1:
			next.CastlingRights &^= WhiteKingSideCastle
		case A8:
			next.CastlingRights &^= BlackQueenSideCastle
		case H8:
			next.CastlingRights &^= BlackKingSideCastle
		}
	}

	// En passant capture: the pawn lands on the empty target square and the
	// enemy pawn one rank behind it (on the mover's originating rank) dies.
	if piece.Type() == Pawn && m.To == next.EnPassant && next.Squares[m.To] == NoPiece {
		next.Squares[NewSquare(m.To.File(), m.From.Rank())] = NoPiece
	}

	// A double pawn push exposes the passed-over square for exactly one reply.
	next.EnPassant = NoSquare
	if piece.Type() == Pawn {
		dr := m.To.Rank() - m.From.Rank()
		if dr == 2 || dr == -2 {
			next.EnPassant = NewSquare(m.From.File(), (m.From.Rank()+m.To.Rank())/2)
		}
	}

	// Move the piece, promoting a pawn that reaches its farthest rank.
	next.Squares[m.From] = NoPiece
	if piece.Type() == Pawn && m.To.RelativeRank(mover) == 7 {
		next.Squares[m.To] = NewPiece(m.PromotionOrDefault(), mover)
	} else {
		next.Squares[m.To] = piece
	}

	next.SideToMove = mover.Other()
	return next
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			piece := p.Squares[NewSquare(file, rank)]
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n\n"
	s += fmt.Sprintf("Side to move: %s\n", p.SideToMove)
	s += fmt.Sprintf("Castling: %s\n", p.CastlingRights)
	s += fmt.Sprintf("En passant: %s\n", p.EnPassant)
	return s
}

// Validate checks if the position is a well-formed game position.
func (p *Position) Validate() error {
	for c := White; c <= Black; c++ {
		kings := 0
		for sq := A1; sq <= H8; sq++ {
			if p.Squares[sq] == NewPiece(King, c) {
				kings++
			}
		}
		if kings != 1 {
			return fmt.Errorf("%s must have exactly one king, has %d", c, kings)
		}
	}

	for sq := A1; sq <= H8; sq++ {
		if p.Squares[sq].Type() == Pawn && (sq.Rank() == 0 || sq.Rank() == 7) {
			return fmt.Errorf("pawn on rank %d at %s", sq.Rank()+1, sq)
		}
	}

	return nil
}
