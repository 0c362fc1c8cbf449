package eval_test

import (
	"context"
	"testing"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/board/fen"
	"github.com/herohde/gorgon/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominalValue(t *testing.T) {
	assert.Equal(t, eval.Pawns(1), eval.NominalValue(board.Pawn))
	assert.Equal(t, eval.Pawns(3), eval.NominalValue(board.Bishop))
	assert.Equal(t, eval.Pawns(3), eval.NominalValue(board.Knight))
	assert.Equal(t, eval.Pawns(5), eval.NominalValue(board.Rook))
	assert.Equal(t, eval.Pawns(9), eval.NominalValue(board.Queen))
	assert.True(t, eval.NominalValue(board.King) > eval.NominalValue(board.Queen))
}

func TestNominalValueGain(t *testing.T) {
	tests := []struct {
		name string
		m    board.Move
		want eval.Pawns
	}{
		{"quiet", board.Move{Type: board.Normal}, 0},
		{"capture rook", board.Move{Type: board.Capture, Capture: board.Rook}, 5},
		{"en passant", board.Move{Type: board.EnPassant}, 1},
		{"promotion to queen", board.Move{Type: board.Promotion, Promotion: board.Queen}, 8},
		{"capture-promotion", board.Move{Type: board.CapturePromotion, Capture: board.Rook, Promotion: board.Queen}, 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eval.NominalValueGain(tt.m))
		})
	}
}

func TestMaterialBalancedAtStart(t *testing.T) {
	b, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	s := eval.Material{}.Evaluate(context.Background(), b)
	assert.Equal(t, eval.ZeroScore, s)
}

func TestMaterialFavorsExtraPiece(t *testing.T) {
	// White is missing its queen: black is up a queen's worth of material from white's
	// perspective, so the side-to-move-relative score must be negative for white.
	b, err := fen.NewBoard("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	s := eval.Material{}.Evaluate(context.Background(), b)
	assert.True(t, s.Less(eval.ZeroScore))
}

func TestStandardBalancedAtStart(t *testing.T) {
	b, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	std := eval.NewStandard(eval.DefaultWeights, 0)
	s := std.Evaluate(context.Background(), b)
	assert.Equal(t, eval.ZeroScore, s)
}

func TestWeightsZeroDisablesTerm(t *testing.T) {
	b, err := fen.NewBoard("rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	std := eval.NewStandard(eval.Weights{}, 0)
	s := std.Evaluate(context.Background(), b)
	assert.Equal(t, eval.ZeroScore, s, "all weights zero must neutralize every term, including material")
}
