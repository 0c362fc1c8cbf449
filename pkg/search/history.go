package search

import "github.com/herohde/gorgon/pkg/board"

// History implements the history heuristic: a table of how often a quiet move has produced
// a beta cutoff, indexed by side to move and from/to squares. It is mutated only on quiet
// beta cutoffs and cleared before each top-level search; a nil *History disables it, which
// MoveOrderer and Add both treat as "no hits recorded".
type History struct {
	score [board.NumColors][board.NumSquares][board.NumSquares]int32
}

// NewHistory returns an empty history table.
func NewHistory() *History {
	return &History{}
}

// Add records a quiet beta cutoff for the move, weighted by the remaining depth squared, so
// cutoffs found deep in the tree outweigh shallow ones.
func (h *History) Add(turn board.Color, m board.Move, depth int) {
	if h == nil || !m.IsQuiet() {
		return
	}
	h.score[turn][m.From][m.To] += int32(depth * depth)
}

// Score returns the accumulated cutoff weight for the move, or 0 if it has none.
func (h *History) Score(turn board.Color, m board.Move) int32 {
	if h == nil {
		return 0
	}
	return h.score[turn][m.From][m.To]
}

// maxKillerDepth bounds the killer table. No search in this engine runs deeper than this.
const maxKillerDepth = 128

// Killers implements the killer-move heuristic: up to two quiet moves per depth that most
// recently produced a beta cutoff at that depth. Sibling nodes at the same depth try them
// early, since a move that refuted one line often refutes another. Cleared before each
// top-level search; a nil *Killers disables it.
type Killers struct {
	moves [maxKillerDepth][2]board.Move
}

// NewKillers returns an empty killer table.
func NewKillers() *Killers {
	return &Killers{}
}

// Add records a quiet beta cutoff at depth, keeping the two most recent distinct killers.
func (k *Killers) Add(depth int, m board.Move) {
	if k == nil || depth < 0 || depth >= maxKillerDepth || !m.IsQuiet() {
		return
	}
	if k.moves[depth][0].Equals(m) {
		return
	}
	k.moves[depth][1] = k.moves[depth][0]
	k.moves[depth][0] = m
}

// IsKiller returns true iff the move is a recorded killer at depth.
func (k *Killers) IsKiller(depth int, m board.Move) bool {
	if k == nil || depth < 0 || depth >= maxKillerDepth {
		return false
	}
	return k.moves[depth][0].Equals(m) || k.moves[depth][1].Equals(m)
}
