package eval

import "math/rand"

// Random is a noise generator added to leaf evaluations to avoid the engine playing the
// same game twice in a row. limit bounds the total spread, in centipawns; Sample draws
// uniformly from [-limit/2; limit-limit/2), e.g. -10..9 for a limit of 20. The zero value
// always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

// Sample draws a centipawn offset. Safe to call on the zero value.
func (n Random) Sample() Score {
	if n.limit <= 0 || n.rand == nil {
		return ZeroScore
	}
	return HeuristicScore(n.rand.Intn(n.limit) - n.limit/2)
}
