package eval

import "fmt"

// Kind distinguishes the three shapes a Score can take.
type Kind uint8

const (
	// Heuristic is an ordinary static evaluation, in centipawns.
	Heuristic Kind = iota
	// Mate is a forced-mate score: the Mate field encodes both the winner and distance.
	Mate
	// Invalid marks a score that must not be used, e.g. a search cut short by cancellation.
	Invalid
)

// MaxMateDistance bounds the encoded mate distance. It is far larger than any reachable
// search depth, so NegInfScore/InfScore always compare below/above any real mate score.
const MaxMateDistance = 1 << 14

// Score is a signed position or move score, always relative to the side to move: positive
// favors the mover. It is either a Heuristic centipawn value or a forced Mate, never both.
type Score struct {
	Centipawns int32
	Mate       int16
	Kind       Kind
}

var (
	// ZeroScore is a neutral (equal) heuristic score.
	ZeroScore = Score{Kind: Heuristic}
	// NegInfScore is smaller than any reachable score: the mover stands immediately lost.
	NegInfScore = Score{Kind: Mate, Mate: -MaxMateDistance}
	// InfScore is larger than any reachable score: the mover stands immediately won.
	InfScore = Score{Kind: Mate, Mate: MaxMateDistance}
	// InvalidScore marks a score that was never computed, e.g. after a cancelled search.
	InvalidScore = Score{Kind: Invalid}
)

// HeuristicScore returns a static evaluation of n centipawns, favoring the side to move.
func HeuristicScore(n int) Score {
	return Score{Kind: Heuristic, Centipawns: int32(n)}
}

// MateInXScore returns the score for delivering mate in n plies, from the mover's perspective.
func MateInXScore(n int) Score {
	return Score{Kind: Mate, Mate: int16(MaxMateDistance - n)}
}

func (s Score) IsHeuristic() bool {
	return s.Kind == Heuristic
}

func (s Score) IsInvalid() bool {
	return s.Kind == Invalid
}

// MateDistance returns the number of plies to the mate encoded by the score, if any. The
// sign indicates who mates: positive if the mover delivers it, negative if the mover is mated.
func (s Score) MateDistance() (int, bool) {
	if s.Kind != Mate {
		return 0, false
	}
	d := s.Mate
	if d < 0 {
		d = -d
	}
	dist := int(MaxMateDistance - d)
	if s.Mate < 0 {
		dist = -dist
	}
	return dist, true
}

// Negate flips the score to the opponent's perspective, as needed by negamax recursion.
func (s Score) Negate() Score {
	switch s.Kind {
	case Mate:
		return Score{Kind: Mate, Mate: -s.Mate}
	case Heuristic:
		return Score{Kind: Heuristic, Centipawns: -s.Centipawns}
	default:
		return s
	}
}

// value linearizes Mate and Heuristic scores onto a single comparable axis: mate scores
// always dominate heuristic ones, with faster mates ranking above slower ones.
func (s Score) value() int64 {
	switch s.Kind {
	case Mate:
		return int64(s.Mate) * 1_000_000
	case Heuristic:
		return int64(s.Centipawns)
	default:
		return 0
	}
}

// Less reports whether s is strictly worse for the mover than o.
func (s Score) Less(o Score) bool {
	return s.value() < o.value()
}

// IncrementMateDistance adds a ply to a Mate score's distance, leaving other kinds unchanged.
// Used when a mate score is propagated up one ply of negamax recursion.
func IncrementMateDistance(s Score) Score {
	if s.Kind != Mate {
		return s
	}
	if s.Mate < 0 {
		return Score{Kind: Mate, Mate: s.Mate + 1}
	}
	return Score{Kind: Mate, Mate: s.Mate - 1}
}

// Max returns the larger (better for the mover) of the two scores.
func Max(a, b Score) Score {
	if a.Less(b) {
		return b
	}
	return a
}

// Min returns the smaller (worse for the mover) of the two scores.
func Min(a, b Score) Score {
	if b.Less(a) {
		return b
	}
	return a
}

func (s Score) String() string {
	switch s.Kind {
	case Mate:
		if d, ok := s.MateDistance(); ok {
			return fmt.Sprintf("mate(%+d)", d)
		}
		fallthrough
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("%.2f", float64(s.Centipawns)/100)
	}
}
