package book

import "github.com/herohde/gorgon/pkg/board"

// random64 holds 781 keys in the layout of the Polyglot Zobrist scheme: 768 piece-square
// keys (12 piece kinds * 64 squares), 4 castling keys, 8 en passant file keys and 1 side to
// move key, in that order. The values come from an xorshift64* generator with a fixed seed;
// they are not the published Polyglot 781-entry table.
var random64 [781]uint64

func init() {
	var s uint64 = 0x37b4a4b3f0d1c0d0
	next := func() uint64 {
		s ^= s >> 12
		s ^= s << 25
		s ^= s >> 27
		return s * 0x2545f4914f6cdd1d
	}
	for i := range random64 {
		random64[i] = next()
	}
}

const (
	polyglotPieceOffset    = 0
	polyglotCastlingOffset = 768
	polyglotEnPassOffset   = 772
	polyglotTurnOffset     = 780
)

// polyglotPieceKind maps a (color, piece) pair onto a piece-kind index in board.Piece order:
// black pawn, bishop, knight, rook, queen, king are 0..5 and white ones 6..11. This is not
// the Polyglot kind order, which alternates black and white per piece type.
func polyglotPieceKind(c board.Color, p board.Piece) int {
	kind := int(p) - int(board.Pawn)
	if c == board.White {
		kind += 6
	}
	return kind
}

// PolyglotHash computes a Zobrist key for the position from random64 in the Polyglot layout,
// independent of the engine's own internal Zobrist table (which may use a different seed).
// The keys differ from those of the published Polyglot table.
func PolyglotHash(pos *board.Position, turn board.Color) uint64 {
	var hash uint64

	for _, c := range []board.Color{board.White, board.Black} {
		for p := board.Pawn; p <= board.King; p++ {
			bb := pos.Piece(c, p)
			for _, sq := range bb.ToSquares() {
				idx := 64*polyglotPieceKind(c, p) + polyglotSquareIndex(sq)
				hash ^= random64[polyglotPieceOffset+idx]
			}
		}
	}

	castling := pos.Castling()
	if castling&board.WhiteKingSideCastle != 0 {
		hash ^= random64[polyglotCastlingOffset+0]
	}
	if castling&board.WhiteQueenSideCastle != 0 {
		hash ^= random64[polyglotCastlingOffset+1]
	}
	if castling&board.BlackKingSideCastle != 0 {
		hash ^= random64[polyglotCastlingOffset+2]
	}
	if castling&board.BlackQueenSideCastle != 0 {
		hash ^= random64[polyglotCastlingOffset+3]
	}

	if ep, ok := pos.EnPassant(); ok && canCaptureEnPassant(pos, turn, ep) {
		hash ^= random64[polyglotEnPassOffset+polyglotFile(ep)]
	}

	if turn == board.White {
		hash ^= random64[polyglotTurnOffset]
	}
	return hash
}

// polyglotSquareIndex converts our H1=0..A8=63 numbering into Polyglot's a1=0..h8=63
// numbering (square = rank*8+file, file a=0..h=7).
func polyglotSquareIndex(sq board.Square) int {
	return int(sq.Rank())*8 + polyglotFile(sq)
}

// polyglotFile converts our reversed File (H=0..A=7) into Polyglot's a=0..h=7.
func polyglotFile(sq board.Square) int {
	return 7 - int(sq.File())
}

func canCaptureEnPassant(pos *board.Position, turn board.Color, ep board.Square) bool {
	capturer := turn
	for _, m := range pos.PseudoLegalMoves(capturer) {
		if m.Type == board.EnPassant && m.To == ep {
			return true
		}
	}
	return false
}
