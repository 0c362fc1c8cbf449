// Package eval contains static position evaluation: material, piece-square tables, mobility,
// pawn structure and king safety, combined into a single side-to-move-relative Score.
package eval

import (
	"context"

	"github.com/herohde/gorgon/pkg/board"
)

// Evaluator is a static position evaluator. The returned Score is always relative to the
// side to move: negation to the opponent's perspective is the caller's responsibility.
type Evaluator interface {
	Evaluate(ctx context.Context, b *board.Board) Score
}

// Pawns is a material value in units of a pawn, used for nominal piece values and move
// ordering gains. It is not the engine's scoring unit: Score always carries centipawns.
type Pawns int32

// NominalValue is the absolute nominal value of a piece in Pawns. The King is given an
// arbitrary large value so that king safety never gets confused with material trades.
func NominalValue(p board.Piece) Pawns {
	switch p {
	case board.Pawn:
		return 1
	case board.Bishop, board.Knight:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain, in Pawns, for making the move.
func NominalValueGain(m board.Move) Pawns {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}

// Material returns the nominal material balance for the side to move, in centipawns.
type Material struct{}

func (Material) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	var pawns Pawns
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		pawns += Pawns(pos.Piece(turn, p).PopCount()-pos.Piece(turn.Opponent(), p).PopCount()) * NominalValue(p)
	}
	return HeuristicScore(int(pawns) * 100)
}

// Weights controls the relative contribution of each evaluation term to the combined Score.
// All weights are in percent of the term's own centipawn output; 100 leaves it unscaled.
type Weights struct {
	Material int32
	PSQT     int32
	Mobility int32
	Pawns    int32
	Pieces   int32
}

// DefaultWeights leaves every term unscaled (100 percent each).
var DefaultWeights = Weights{Material: 100, PSQT: 100, Mobility: 100, Pawns: 100, Pieces: 100}

// Standard is the engine's default combined evaluator: material, piece placement, mobility,
// pawn structure and piece-specific terms, each independently cacheable and unit-testable.
type Standard struct {
	Weights Weights
	Pawns   *PawnCache
}

// NewStandard returns a Standard evaluator with its own pawn hash cache.
func NewStandard(weights Weights, pawnCacheSize int) Standard {
	return Standard{Weights: weights, Pawns: NewPawnCache(pawnCacheSize)}
}

func (s Standard) Evaluate(ctx context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := b.Turn()

	total := weigh(int32(Material{}.Evaluate(ctx, b).Centipawns), s.Weights.Material)
	total += weigh(PSQT(pos, turn), s.Weights.PSQT)
	total += weigh(Mobility(pos, turn), s.Weights.Mobility)
	total += weigh(s.pawnScore(pos, turn), s.Weights.Pawns)
	total += weigh(PieceTerms(pos, turn), s.Weights.Pieces)

	return HeuristicScore(int(total))
}

func (s Standard) pawnScore(pos *board.Position, turn board.Color) int32 {
	if s.Pawns == nil {
		return PawnStructure(pos, turn)
	}
	return s.Pawns.Evaluate(pos, turn)
}

func weigh(centipawns, weight int32) int32 {
	return centipawns * weight / 100
}
