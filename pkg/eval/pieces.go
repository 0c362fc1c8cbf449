package eval

import "github.com/herohde/gorgon/pkg/board"

// kingZonePressure maps a weighted count of attacks on the squares around a king to a
// centipawn penalty. Index is clamped to the table's range; values climb steeply once
// several attackers converge, mirroring the well-known "safety table" shape used by most
// open-source evaluators.
var kingZonePressure = [64]int32{
	0, 0, 1, 2, 3, 5, 7, 9,
	12, 15, 18, 22, 26, 30, 35, 39,
	44, 50, 56, 62, 68, 75, 82, 85,
	89, 97, 105, 113, 122, 131, 140, 150,
	169, 180, 191, 202, 213, 225, 237, 248,
	260, 272, 283, 295, 307, 319, 330, 342,
	354, 366, 377, 389, 401, 412, 424, 436,
	448, 459, 471, 483, 494, 500, 500, 500,
}

var kingZoneAttackWeight = map[board.Piece]int32{
	board.Knight: 2,
	board.Bishop: 2,
	board.Rook:   3,
	board.Queen:  5,
}

// PieceTerms returns piece-specific positional bonuses and penalties for the side to move:
// rook file activity, minor-piece outposts, a pin proxy and king-zone pressure.
func PieceTerms(pos *board.Position, turn board.Color) int32 {
	return sidePieceTerms(pos, turn) - sidePieceTerms(pos, turn.Opponent())
}

func sidePieceTerms(pos *board.Position, c board.Color) int32 {
	var total int32
	total += rookFileTerm(pos, c)
	total += outpostTerm(pos, c)
	total -= pinTerm(pos, c)
	total -= kingZoneTerm(pos, c)
	return total
}

// rookFileTerm rewards rooks on open or semi-open files. It applies no penalty to a rook
// boxed in behind its own king.
func rookFileTerm(pos *board.Position, c board.Color) int32 {
	ownPawns := pos.Piece(c, board.Pawn)
	oppPawns := pos.Piece(c.Opponent(), board.Pawn)

	var total int32
	for _, from := range pos.Piece(c, board.Rook).ToSquares() {
		file := fileMask(from.File())
		switch {
		case ownPawns&file == 0 && oppPawns&file == 0:
			total += 20 // open file
		case ownPawns&file == 0:
			total += 10 // semi-open file
		}
	}
	return total
}

// outpostTerm rewards knights and bishops planted on a square the opponent can never
// challenge with a pawn, and that is itself defended by a friendly pawn.
func outpostTerm(pos *board.Position, c board.Color) int32 {
	ownPawnAttacks := board.PawnCaptureboard(c, pos.Piece(c, board.Pawn)) // squares own pawns defend
	oppPawns := pos.Piece(c.Opponent(), board.Pawn)

	var total int32
	for piece, bonus := range map[board.Piece]int32{board.Knight: 15, board.Bishop: 10} {
		bb := pos.Piece(c, piece) & ownPawnAttacks
		for _, sq := range bb.ToSquares() {
			if !canBeChallengedByPawn(oppPawns, c, sq) {
				total += bonus
			}
		}
	}
	return total
}

func canBeChallengedByPawn(oppPawns board.Bitboard, c board.Color, sq board.Square) bool {
	f := sq.File()
	for _, nf := range []board.File{f - 1, f, f + 1} {
		if nf > board.FileA {
			continue // wrapped around: File is unsigned, so f-1 on file H wraps past FileA
		}
		if oppPawns&fileMask(nf) != 0 {
			return true
		}
	}
	return false
}

func fileMask(f board.File) board.Bitboard {
	var bb board.Bitboard
	for r := board.ZeroRank; r < board.NumRanks; r++ {
		bb |= board.BitMask(board.NewSquare(f, r))
	}
	return bb
}

// pinTerm is the penalty for having pieces pinned against the king: a rough proxy for the
// tactical vulnerability FindPinsAgainstKing makes explicit.
func pinTerm(pos *board.Position, c board.Color) int32 {
	king := pos.Piece(c, board.King)
	if king == 0 {
		return 0
	}
	sq := king.LastPopSquare()

	pins := FindPinsAgainstKing(pos, c, sq)
	return int32(len(pins)) * 15
}

// Pin represents a pinned piece: Pinned cannot move off the Attacker-Target line without
// exposing Target to capture.
type Pin struct {
	Attacker, Pinned, Target board.Square
}

// FindPinsAgainstKing returns the pins with the king itself as the pinned-through target.
func FindPinsAgainstKing(pos *board.Position, side board.Color, kingSquare board.Square) []Pin {
	var ret []Pin

	rooks := board.RookAttackboard(pos.Rotated(), kingSquare) & pos.Color(side)
	for _, pinned := range rooks.ToSquares() {
		attackers := pos.Piece(side.Opponent(), board.Queen) | pos.Piece(side.Opponent(), board.Rook)
		candidate := board.RookAttackboard(pos.Rotated().Xor(pinned), kingSquare) & attackers
		if candidate != 0 {
			ret = append(ret, Pin{Attacker: candidate.LastPopSquare(), Pinned: pinned, Target: kingSquare})
		}
	}

	bishops := board.BishopAttackboard(pos.Rotated(), kingSquare) & pos.Color(side)
	for _, pinned := range bishops.ToSquares() {
		attackers := pos.Piece(side.Opponent(), board.Queen) | pos.Piece(side.Opponent(), board.Bishop)
		candidate := board.BishopAttackboard(pos.Rotated().Xor(pinned), kingSquare) & attackers
		if candidate != 0 {
			ret = append(ret, Pin{Attacker: candidate.LastPopSquare(), Pinned: pinned, Target: kingSquare})
		}
	}

	return ret
}

// kingZoneTerm scores how exposed c's king is to the opponent's pieces.
func kingZoneTerm(pos *board.Position, c board.Color) int32 {
	king := pos.Piece(c, board.King)
	if king == 0 {
		return 0
	}
	kingSq := king.LastPopSquare()
	zone := board.KingAttackboard(kingSq) | board.BitMask(kingSq)

	var units int32
	opp := c.Opponent()
	for piece, weight := range kingZoneAttackWeight {
		for _, from := range pos.Piece(opp, piece).ToSquares() {
			if board.Attackboard(pos.Rotated(), from, piece)&zone != 0 {
				units += weight
			}
		}
	}

	if units >= int32(len(kingZonePressure)) {
		units = int32(len(kingZonePressure)) - 1
	}
	return kingZonePressure[units]
}
