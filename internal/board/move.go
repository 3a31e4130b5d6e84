package board

import "fmt"

// Move represents a move as (from, to, optional promotion kind).
// The promotion kind only matters when a pawn move lands on its farthest
// rank; any value outside Knight..Queen means "unspecified" and defaults
// to Queen when the move is applied.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

// NoMove is the zero move, used where no move exists.
var NoMove Move

// NewMove creates a move without an explicit promotion kind.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a move with an explicit promotion kind.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move{From: from, To: to, Promotion: promo}
}

// HasPromotion returns true if an explicit promotion kind is set.
func (m Move) HasPromotion() bool {
	return m.Promotion >= Knight && m.Promotion <= Queen
}

// PromotionOrDefault returns the promotion kind, defaulting to Queen.
func (m Move) PromotionOrDefault() PieceType {
	if m.HasPromotion() {
		return m.Promotion
	}
	return Queen
}

// String returns the UCI format of the move (e.g., "e2e4", "e7e8q").
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}

	s := m.From.String() + m.To.String()

	if m.HasPromotion() {
		promoChars := []byte{'n', 'b', 'r', 'q'}
		s += string(promoChars[m.Promotion-Knight])
	}

	return s
}

// ParseMove parses a UCI format move string.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'n':
			promo = Knight
		case 'b':
			promo = Bishop
		case 'r':
			promo = Rook
		case 'q':
			promo = Queen
		default:
			return NoMove, fmt.Errorf("invalid promotion piece: %c", s[4])
		}
		return NewPromotion(from, to, promo), nil
	}

	return NewMove(from, to), nil
}
