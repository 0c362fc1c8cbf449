package eval

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/herohde/gorgon/pkg/board"
)

// PawnCache memoizes PawnStructure by the two pawn bitboards, which change far less often
// than the rest of the position and are comparatively expensive to re-derive at every node.
type PawnCache struct {
	cache *ristretto.Cache[uint64, int32]
}

// NewPawnCache returns a pawn-structure cache sized for roughly maxEntries live entries.
// A nil *PawnCache is valid and simply disables caching (see Standard.pawnScore).
func NewPawnCache(maxEntries int) *PawnCache {
	if maxEntries <= 0 {
		return nil
	}

	c, err := ristretto.NewCache(&ristretto.Config[uint64, int32]{
		NumCounters: int64(maxEntries) * 10,
		MaxCost:     int64(maxEntries),
		BufferItems: 64,
	})
	if err != nil {
		return nil // degrade to uncached evaluation rather than fail engine startup
	}
	return &PawnCache{cache: c}
}

// Evaluate returns the cached (or freshly computed) pawn-structure score for the side to
// move's perspective.
func (p *PawnCache) Evaluate(pos *board.Position, turn board.Color) int32 {
	key := pawnHashKey(pos)
	if v, ok := p.cache.Get(key); ok {
		return signForTurn(turn) * v
	}

	score := PawnStructure(pos, board.White) // always cache White's perspective
	p.cache.Set(key, score, 1)
	p.cache.Wait()
	return signForTurn(turn) * score
}

func signForTurn(turn board.Color) int32 {
	if turn == board.White {
		return 1
	}
	return -1
}

func pawnHashKey(pos *board.Position) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(pos.Piece(board.White, board.Pawn)))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(pos.Piece(board.Black, board.Pawn)))
	return xxhash.Sum64(buf[:])
}

// PawnStructure scores the pawn skeleton from White's perspective: passed and isolated
// pawns, doubled files and a small bonus for contesting central space. It is symmetric, so
// calling it with White fixed lets PawnCache memoize on the pawn bitboards alone.
func PawnStructure(pos *board.Position, turn board.Color) int32 {
	white := sidePawnStructure(pos, board.White) - sidePawnStructure(pos, board.Black)
	return signForTurn(turn) * white
}

func sidePawnStructure(pos *board.Position, c board.Color) int32 {
	own := pos.Piece(c, board.Pawn)
	opp := pos.Piece(c.Opponent(), board.Pawn)

	var total int32
	for _, sq := range own.ToSquares() {
		if isPassedPawn(own, opp, c, sq) {
			total += passedPawnBonus(c, sq)
		}
		if isIsolatedPawn(own, sq) {
			total -= 15
		}
		if fileMask(sq.File())&own != board.BitMask(sq) {
			total -= 10 // doubled: at least one other own pawn shares this file
		}
	}
	return total
}

// isPassedPawn reports that no opposing pawn can ever stop or capture the pawn on its way
// to promotion: none on its file or the adjacent files, ahead of it from c's perspective.
func isPassedPawn(own, opp board.Bitboard, c board.Color, sq board.Square) bool {
	span := passedPawnSpan(c, sq)
	return opp&span == 0
}

func passedPawnSpan(c board.Color, sq board.Square) board.Bitboard {
	var span board.Bitboard
	f := sq.File()
	files := []board.File{f}
	if f > board.FileH {
		files = append(files, f-1)
	}
	if f < board.FileA {
		files = append(files, f+1)
	}

	for _, nf := range files {
		for r := board.ZeroRank; r < board.NumRanks; r++ {
			if c == board.White && r > sq.Rank() {
				span |= board.BitMask(board.NewSquare(nf, r))
			}
			if c == board.Black && r < sq.Rank() {
				span |= board.BitMask(board.NewSquare(nf, r))
			}
		}
	}
	return span
}

func isIsolatedPawn(own board.Bitboard, sq board.Square) bool {
	f := sq.File()
	var neighbors board.Bitboard
	if f > board.FileH {
		neighbors |= fileMask(f - 1)
	}
	if f < board.FileA {
		neighbors |= fileMask(f + 1)
	}
	return own&neighbors == 0
}

func passedPawnBonus(c board.Color, sq board.Square) int32 {
	rank := int(sq.Rank())
	if c == board.Black {
		rank = 7 - rank
	}
	// Rank 0 is the side's own back rank and rank 1 the pawn's starting rank; further
	// advanced passers are worth sharply more.
	bonuses := [8]int32{0, 10, 15, 25, 40, 60, 90, 0}
	return bonuses[rank]
}
