package eval_test

import (
	"testing"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/board/fen"
	"github.com/herohde/gorgon/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPawnStructureSymmetricAtStart(t *testing.T) {
	pos, _, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	assert.Equal(t, int32(0), eval.PawnStructure(pos, board.White))
}

func TestPawnStructureAdvancedPasserScoresHigher(t *testing.T) {
	e4, _, _, _, err := fen.Decode("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	e6, _, _, _, err2 := fen.Decode("4k3/8/4P3/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err2)

	assert.True(t, eval.PawnStructure(e6, board.White) > eval.PawnStructure(e4, board.White))
}

func TestPawnStructureDoubledPawnsPenalized(t *testing.T) {
	single, _, _, _, err := fen.Decode("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	doubled, _, _, _, err2 := fen.Decode("4k3/8/8/8/4P3/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err2)

	assert.True(t, eval.PawnStructure(doubled, board.White) < eval.PawnStructure(single, board.White))
}

func TestPawnCacheMatchesUncached(t *testing.T) {
	pos, _, _, _, err := fen.Decode("4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	cache := eval.NewPawnCache(1024)
	require.NotNil(t, cache)

	want := eval.PawnStructure(pos, board.White)
	assert.Equal(t, want, cache.Evaluate(pos, board.White))
	assert.Equal(t, want, cache.Evaluate(pos, board.White), "second call must hit the cache and agree")
	assert.Equal(t, -want, cache.Evaluate(pos, board.Black))
}

func TestNewPawnCacheZeroSizeDisablesCaching(t *testing.T) {
	assert.Nil(t, eval.NewPawnCache(0))
}
