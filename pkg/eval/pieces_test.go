package eval_test

import (
	"testing"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/board/fen"
	"github.com/herohde/gorgon/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceTermsSymmetricAtStart(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, int32(0), eval.PieceTerms(pos, turn))
}

func TestPieceTermsRewardsOpenFileRook(t *testing.T) {
	// White's rook sits on a file with no pawns at all (open file); black has no pieces to
	// offset it, so white's piece terms must come out ahead.
	pos, turn, _, _, err := fen.Decode("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, eval.PieceTerms(pos, turn) > 0)
}

func TestFindPinsAgainstKingDetectsRookPin(t *testing.T) {
	// The white rook on e2 is pinned to its king on e1 by the black rook on e8.
	pos, _, _, _, err := fen.Decode("4r3/8/8/8/8/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	e1, err := board.ParseSquareStr("e1")
	require.NoError(t, err)
	e2, err := board.ParseSquareStr("e2")
	require.NoError(t, err)
	e8, err := board.ParseSquareStr("e8")
	require.NoError(t, err)

	pins := eval.FindPinsAgainstKing(pos, board.White, e1)
	require.Len(t, pins, 1)
	assert.Equal(t, eval.Pin{Attacker: e8, Pinned: e2, Target: e1}, pins[0])
}

func TestFindPinsAgainstKingNoPinWhenBlockedTwice(t *testing.T) {
	// Two white rooks stacked on the e-file: removing either one still leaves a blocker
	// between the black rook and the king, so neither is pinned.
	pos, _, _, _, err := fen.Decode("4r3/8/8/8/4R3/8/4R3/4K3 w - - 0 1")
	require.NoError(t, err)

	e1, err := board.ParseSquareStr("e1")
	require.NoError(t, err)

	assert.Empty(t, eval.FindPinsAgainstKing(pos, board.White, e1))
}
