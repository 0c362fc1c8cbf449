package eval

import "github.com/herohde/gorgon/pkg/board"

// Game phase is interpolated between midgame and endgame piece-square tables, weighted by
// remaining non-pawn material. totalPhase is the phase value of the starting position.
const (
	knightPhase = 1
	bishopPhase = 1
	rookPhase   = 2
	queenPhase  = 4
	totalPhase  = 4*knightPhase + 4*bishopPhase + 4*rookPhase + 2*queenPhase
)

// phase returns the current game phase in [0;totalPhase], clamped so that an unusual
// position with promoted extra pieces is never treated as further from the endgame than
// the starting position: phase is min(computed, totalPhase).
func phase(pos *board.Position) int32 {
	p := int32(0)
	p += int32((pos.Piece(board.White, board.Knight) | pos.Piece(board.Black, board.Knight)).PopCount()) * knightPhase
	p += int32((pos.Piece(board.White, board.Bishop) | pos.Piece(board.Black, board.Bishop)).PopCount()) * bishopPhase
	p += int32((pos.Piece(board.White, board.Rook) | pos.Piece(board.Black, board.Rook)).PopCount()) * rookPhase
	p += int32((pos.Piece(board.White, board.Queen) | pos.Piece(board.Black, board.Queen)).PopCount()) * queenPhase

	if p > totalPhase {
		p = totalPhase // min(phase, totalPhase): clamp instead of overflowing the taper
	}
	return p
}

// pst is a midgame/endgame pair of piece-square tables, indexed [rank][file] from White's
// point of view with rank 0 = rank 1. Values are centipawns.
type pst struct {
	mid, end [8][8]int32
}

// taper interpolates between midgame and endgame values by the current phase.
func (t pst) taper(c board.Color, sq board.Square, ph int32) int32 {
	r, f := int(sq.Rank()), int(sq.File())
	if c == board.Black {
		r = 7 - r
	}
	mid, end := t.mid[r][f], t.end[r][f]
	return (mid*ph + end*(totalPhase-ph)) / totalPhase
}

var (
	pawnPST = pst{
		mid: [8][8]int32{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{5, 10, 10, -20, -20, 10, 10, 5},
			{5, -5, -10, 0, 0, -10, -5, 5},
			{0, 0, 0, 20, 20, 0, 0, 0},
			{5, 5, 10, 25, 25, 10, 5, 5},
			{10, 10, 20, 30, 30, 20, 10, 10},
			{50, 50, 50, 50, 50, 50, 50, 50},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
		end: [8][8]int32{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{10, 10, 10, 10, 10, 10, 10, 10},
			{10, 10, 10, 10, 10, 10, 10, 10},
			{20, 20, 20, 20, 20, 20, 20, 20},
			{30, 30, 30, 30, 30, 30, 30, 30},
			{50, 50, 50, 50, 50, 50, 50, 50},
			{80, 80, 80, 80, 80, 80, 80, 80},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
	}

	knightPST = pst{
		mid: symmetric8x8([8]int32{-50, -40, -30, -30, -30, -30, -40, -50}, [8]int32{
			-40, -20, 0, 0, 0, 0, -20, -40,
		}),
		end: symmetric8x8([8]int32{-50, -40, -30, -30, -30, -30, -40, -50}, [8]int32{
			-50, -30, -10, -10, -10, -10, -30, -50,
		}),
	}

	bishopPST = pst{
		mid: symmetric8x8([8]int32{-20, -10, -10, -10, -10, -10, -10, -20}, [8]int32{
			-10, 0, 0, 0, 0, 0, 0, -10,
		}),
		end: symmetric8x8([8]int32{-10, -10, -10, -10, -10, -10, -10, -10}, [8]int32{
			-10, 0, 0, 0, 0, 0, 0, -10,
		}),
	}

	rookPST = pst{
		mid: [8][8]int32{
			{0, 0, 0, 5, 5, 0, 0, 0},
			{-5, 0, 0, 0, 0, 0, 0, -5},
			{-5, 0, 0, 0, 0, 0, 0, -5},
			{-5, 0, 0, 0, 0, 0, 0, -5},
			{-5, 0, 0, 0, 0, 0, 0, -5},
			{-5, 0, 0, 0, 0, 0, 0, -5},
			{5, 10, 10, 10, 10, 10, 10, 5},
			{0, 0, 0, 0, 0, 0, 0, 0},
		},
		end: [8][8]int32{},
	}

	queenPST = pst{
		mid: symmetric8x8([8]int32{-20, -10, -10, -5, -5, -10, -10, -20}, [8]int32{
			-10, 0, 0, 0, 0, 0, 0, -10,
		}),
		end: [8][8]int32{},
	}

	kingPST = pst{
		mid: [8][8]int32{
			{20, 30, 10, 0, 0, 10, 30, 20},
			{20, 20, 0, 0, 0, 0, 20, 20},
			{-10, -20, -20, -20, -20, -20, -20, -10},
			{-20, -30, -30, -40, -40, -30, -30, -20},
			{-30, -40, -40, -50, -50, -40, -40, -30},
			{-30, -40, -40, -50, -50, -40, -40, -30},
			{-30, -40, -40, -50, -50, -40, -40, -30},
			{-30, -40, -40, -50, -50, -40, -40, -30},
		},
		end: [8][8]int32{
			{-50, -30, -30, -30, -30, -30, -30, -50},
			{-30, -30, 0, 0, 0, 0, -30, -30},
			{-30, -10, 20, 30, 30, 20, -10, -30},
			{-30, -10, 30, 40, 40, 30, -10, -30},
			{-30, -10, 30, 40, 40, 30, -10, -30},
			{-30, -10, 20, 30, 30, 20, -10, -30},
			{-30, -20, -10, 0, 0, -10, -20, -30},
			{-50, -40, -30, -20, -20, -30, -40, -50},
		},
	}
)

// symmetric8x8 fills an 8x8 table from an edge row and a middle-row pattern: ranks 1,8 use
// the edge values and ranks 2-7 all use the middle pattern unchanged.
func symmetric8x8(edge, mid [8]int32) [8][8]int32 {
	var t [8][8]int32
	t[0], t[7] = edge, edge
	for r := 1; r < 7; r++ {
		t[r] = mid
	}
	return t
}

// PSQT returns the piece-square table contribution for the side to move, tapered by phase.
func PSQT(pos *board.Position, turn board.Color) int32 {
	ph := phase(pos)
	return sidePSQT(pos, turn, ph) - sidePSQT(pos, turn.Opponent(), ph)
}

func sidePSQT(pos *board.Position, c board.Color, ph int32) int32 {
	var total int32
	total += sumPST(pos.Piece(c, board.Pawn), c, pawnPST, ph)
	total += sumPST(pos.Piece(c, board.Knight), c, knightPST, ph)
	total += sumPST(pos.Piece(c, board.Bishop), c, bishopPST, ph)
	total += sumPST(pos.Piece(c, board.Rook), c, rookPST, ph)
	total += sumPST(pos.Piece(c, board.Queen), c, queenPST, ph)
	total += sumPST(pos.Piece(c, board.King), c, kingPST, ph)
	return total
}

func sumPST(bb board.Bitboard, c board.Color, t pst, ph int32) int32 {
	var total int32
	for _, sq := range bb.ToSquares() {
		total += t.taper(c, sq, ph)
	}
	return total
}
