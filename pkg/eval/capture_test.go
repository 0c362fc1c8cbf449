package eval_test

import (
	"testing"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/board/fen"
	"github.com/herohde/gorgon/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCaptureAndSortByNominalValue(t *testing.T) {
	// d5 is defended by both a black knight (c7) and a black queen (d8).
	pos, _, _, _, err := fen.Decode("3qk3/2n5/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	d5, err := board.ParseSquareStr("d5")
	require.NoError(t, err)

	defenders := eval.SortByNominalValue(eval.FindCapture(pos, board.Black, d5))
	require.Len(t, defenders, 2)
	assert.Equal(t, board.Knight, defenders[0].Piece, "the cheapest defender must sort first")
	assert.Equal(t, board.Queen, defenders[1].Piece)
}

func TestFindCaptureEmptyWhenUndefended(t *testing.T) {
	pos, _, _, _, err := fen.Decode("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	d5, err := board.ParseSquareStr("d5")
	require.NoError(t, err)

	assert.Empty(t, eval.FindCapture(pos, board.Black, d5))
}
