package eval_test

import (
	"testing"

	"github.com/herohde/gorgon/pkg/board/fen"
	"github.com/herohde/gorgon/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMobilitySymmetricAtStart(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, int32(0), eval.Mobility(pos, turn))
}

func TestMobilityRewardsOpenPosition(t *testing.T) {
	// A lone white queen on an otherwise empty board has far more targets than black, who
	// has nothing but a king (mobilityWeight excludes kings).
	pos, turn, _, _, err := fen.Decode("4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	assert.True(t, eval.Mobility(pos, turn) > 0)
}
