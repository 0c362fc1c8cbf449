package board

import (
	"fmt"
	"strings"
)

// MoveType indicates the type of move. The no-progress counter is reset with any non-Normal move.
type MoveType uint8

const (
	Normal    MoveType = iota
	Push               // Pawn move
	Jump               // Pawn 2-square move
	EnPassant          // Implicitly a pawn capture
	QueenSideCastle
	KingSideCastle
	Capture
	Promotion
	CapturePromotion
)

// Move represents a not-necessarily legal move along with contextual metadata. The Piece
// field names the mover, so that the move is self-contained for Zobrist updates and SAN-style
// rendering without a position lookup.
type Move struct {
	Type      MoveType
	From, To  Square
	Piece     Piece // piece being moved.
	Promotion Piece // desired piece for promotion, if any.
	Capture   Piece // captured piece, if any.
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "a2a4" or "a7a8q".
// The parsed move does not contain contextual information like castling or en passant: match
// it against Position.PseudoLegalMoves with Move.Equals to recover it.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from: '%v': %v", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to: '%v': %v", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: promo}, nil
	}

	return Move{From: from, To: to}, nil
}

// IsCapture returns true iff the move removes an enemy piece from the board.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == CapturePromotion || m.Type == EnPassant
}

// IsPromotion returns true iff the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == CapturePromotion
}

// IsQuiet returns true iff the move is neither a capture nor a promotion. Used by move
// ordering and late-move reduction to identify non-tactical moves.
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsCastle returns true iff the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == KingSideCastle || m.Type == QueenSideCastle
}

// EnPassantCapture returns the square of the pawn captured en passant, and whether this
// move is an en passant capture at all.
func (m Move) EnPassantCapture() (Square, bool) {
	if m.Type != EnPassant {
		return ZeroSquare, false
	}
	if m.To.Rank() == Rank6 {
		return NewSquare(m.To.File(), Rank5), true
	}
	return NewSquare(m.To.File(), Rank4), true
}

// EnPassantTarget returns the square a future en passant capture would land on, and
// whether this move creates such a target. Only Jump moves do.
func (m Move) EnPassantTarget() (Square, bool) {
	if m.Type != Jump {
		return ZeroSquare, false
	}
	if m.To.Rank() == Rank4 {
		return NewSquare(m.To.File(), Rank3), true
	}
	return NewSquare(m.To.File(), Rank6), true
}

// CastlingRookMove returns the rook's from/to squares for a castling move, and whether
// this move is a castle at all.
func (m Move) CastlingRookMove() (from, to Square, ok bool) {
	switch m.Type {
	case KingSideCastle:
		if m.From.Rank() == Rank1 {
			return H1, F1, true
		}
		return H8, F8, true
	case QueenSideCastle:
		if m.From.Rank() == Rank1 {
			return A1, D1, true
		}
		return A8, D8, true
	default:
		return ZeroSquare, ZeroSquare, false
	}
}

// CastlingRightsLost returns the castling rights this move permanently revokes, based on
// the squares it touches: a king move loses both rights for that side; a rook move or
// capture on a corner square loses that corner's right.
func (m Move) CastlingRightsLost() Castling {
	var lost Castling
	lost |= castlingRightForSquare(m.From)
	lost |= castlingRightForSquare(m.To)
	if m.Piece == King {
		switch m.From {
		case E1:
			lost |= WhiteKingSideCastle | WhiteQueenSideCastle
		case E8:
			lost |= BlackKingSideCastle | BlackQueenSideCastle
		}
	}
	return lost
}

func castlingRightForSquare(sq Square) Castling {
	switch sq {
	case H1:
		return WhiteKingSideCastle
	case A1:
		return WhiteQueenSideCastle
	case H8:
		return BlackKingSideCastle
	case A8:
		return BlackQueenSideCastle
	default:
		return ZeroCastling
	}
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

func (m Move) String() string {
	if m.Promotion.IsValid() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Promotion)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

// PrintMoves renders a move sequence in short algebraic-ish notation, for logging, PV
// display and console output: "Nb1-a3", "e2-e4", "e4*f3", "0-0". This is not UCI wire
// syntax; the uci package renders its own lowercase coordinate notation for the protocol.
func PrintMoves(moves []Move) string {
	var sb strings.Builder
	for i, m := range moves {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(printAlgebraic(m))
	}
	return sb.String()
}

func printAlgebraic(m Move) string {
	switch m.Type {
	case KingSideCastle:
		return "0-0"
	case QueenSideCastle:
		return "0-0-0"
	}

	var sb strings.Builder
	if m.Piece != Pawn && m.Piece.IsValid() {
		sb.WriteString(strings.ToUpper(m.Piece.String()))
	}
	sb.WriteString(strings.ToLower(m.From.String()))
	if m.IsCapture() {
		sb.WriteRune('*')
	} else {
		sb.WriteRune('-')
	}
	sb.WriteString(strings.ToLower(m.To.String()))
	if m.IsPromotion() {
		sb.WriteRune('=')
		sb.WriteString(strings.ToUpper(m.Promotion.String()))
	}
	return sb.String()
}
