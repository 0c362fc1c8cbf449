// Package search contains search functionality and utilities: alpha-beta with a
// transposition table and quiescence at the leaves, plus minimax for validation.
package search

import (
	"context"
	"errors"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/eval"
)

// ErrHalted is returned by Search when the search was cancelled mid-flight.
var ErrHalted = errors.New("search halted")

// Context carries the search window and shared resources through a single recursion,
// threaded explicitly rather than stored on the searcher so that concurrent searches over
// the same *board.Board root can share a transposition table safely.
type Context struct {
	Alpha, Beta eval.Score
	TT          TranspositionTable
	Noise       eval.Random
	Ponder      []board.Move // if set, only Ponder[i] is explored at the i-th node of the first line searched

	// History and Killers back the move-ordering heuristics of the same name. Both are
	// constructed fresh once per top-level search and persist across the iterative-deepening
	// depths of that search; a nil value disables the corresponding heuristic.
	History *History
	Killers *Killers
}

// Search implements search of the game tree to a fixed ply depth, returning the node count,
// the score for the side to move, and the principal variation found.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// QuietSearch extends a full search past the horizon until the position is quiet, to avoid
// the horizon effect on forcing lines of captures and checks.
type QuietSearch interface {
	QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score)
}

// ZeroPly is a QuietSearch that skips quiescence entirely and returns the static
// evaluation, clamped into the search window. Useful as a baseline to measure what
// quiescence buys in node count and tactical accuracy.
type ZeroPly struct {
	Eval eval.Evaluator
}

func (z ZeroPly) QuietSearch(ctx context.Context, sctx *Context, b *board.Board) (uint64, eval.Score) {
	score := z.Eval.Evaluate(ctx, b)
	return 1, eval.Max(sctx.Alpha, eval.Min(sctx.Beta, score))
}
