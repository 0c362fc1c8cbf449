package eval_test

import (
	"testing"

	"github.com/herohde/gorgon/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestRandomZeroValueIsZero(t *testing.T) {
	var r eval.Random
	assert.Equal(t, eval.ZeroScore, r.Sample())
}

func TestRandomZeroLimitIsZero(t *testing.T) {
	r := eval.NewRandom(0, 42)
	assert.Equal(t, eval.ZeroScore, r.Sample())
}

func TestRandomIsDeterministicForSeed(t *testing.T) {
	a := eval.NewRandom(100, 7)
	b := eval.NewRandom(100, 7)
	assert.Equal(t, a.Sample(), b.Sample())
}

func TestRandomWithinBounds(t *testing.T) {
	r := eval.NewRandom(20, 1)
	for i := 0; i < 50; i++ {
		s := r.Sample()
		assert.True(t, s.Centipawns >= -10 && s.Centipawns < 10)
	}
}
