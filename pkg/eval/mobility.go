package eval

import "github.com/herohde/gorgon/pkg/board"

// mobilityWeight is the centipawn value of each extra legal-looking target square a piece
// attacks, not counting its own pieces. Pawns are excluded: their advances are scored by
// PawnStructure instead.
var mobilityWeight = map[board.Piece]int32{
	board.Knight: 4,
	board.Bishop: 5,
	board.Rook:   2,
	board.Queen:  1,
}

// Mobility returns the difference in attacked-square counts, weighted per piece type, for
// the side to move versus the opponent.
func Mobility(pos *board.Position, turn board.Color) int32 {
	return sideMobility(pos, turn) - sideMobility(pos, turn.Opponent())
}

func sideMobility(pos *board.Position, c board.Color) int32 {
	own := pos.Color(c)

	var total int32
	for piece, weight := range mobilityWeight {
		for _, from := range pos.Piece(c, piece).ToSquares() {
			targets := board.Attackboard(pos.Rotated(), from, piece) &^ own
			total += int32(targets.PopCount()) * weight
		}
	}
	return total
}
