package search

import (
	"context"
	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Null-move and late-move-reduction tuning constants. See the Negamax step order below.
const (
	// nullMoveReduction is R: the reduction applied to the verification search's depth.
	nullMoveReduction = 2
	// nullMoveMinDepth is the shallowest depth at which a null move is still worth trying:
	// below it, depth-1-nullMoveReduction would search a negative or trivial depth.
	nullMoveMinDepth = nullMoveReduction + 1
	// nullMovePieceFloor gates null-move pruning out of sparse endgames, where zugzwang
	// makes "the opponent is better off with a free tempo" an unreliable test.
	nullMovePieceFloor = 14

	// lmrMinMovesSearched and lmrMinDepth gate late-move reduction: only late, quiet moves
	// at a minimum remaining depth are reduced.
	lmrMinMovesSearched = 4
	lmrMinDepth         = 4
	lmrReduction        = 1
)

// AlphaBeta implements alpha-beta pruning with a transposition table, null-move pruning and
// late-move reduction. Step order per node:
//
//  1. TT probe: an exact hit cuts off; a bound hit narrows the window; either way its best
//     move seeds move ordering.
//  2. Leaf (depth <= 0): hand off to quiescence and store the result.
//  3. Null-move pruning: if permitted, verify with a reduced-depth null-window search.
//  4. Move generation and ordering, seeded with the TT move, history and killers.
//  5. Iterate moves, applying late-move reduction to late quiet moves and re-searching at
//     full depth when a reduced search surprisingly raises alpha. On a beta cutoff, record
//     quiet moves into history and killers.
//  6. Store the result in the TT with a bound inferred from the original window.
//
// See: https://en.wikipedia.org/wiki/Alpha–beta_pruning and the chess programming wiki's
// articles on null-move pruning and late-move reductions.
type AlphaBeta struct {
	Explore Exploration
	Eval    QuietSearch
}

func (p AlphaBeta) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	run := &runAlphaBeta{
		explore: fullIfNotSet(p.Explore),
		eval:    p.Eval,
		tt:      sctx.TT,
		noise:   sctx.Noise,
		history: sctx.History,
		killers: sctx.Killers,
		ponder:  sctx.Ponder,
		b:       b,
	}
	low, high := eval.NegInfScore, eval.InfScore
	if !sctx.Alpha.IsInvalid() {
		low = sctx.Alpha
	}
	if !sctx.Beta.IsInvalid() {
		high = sctx.Beta
	}

	score, moves := run.search(ctx, depth, low, high, true)
	if contextx.IsCancelled(ctx) {
		return 0, eval.InvalidScore, nil, ErrHalted
	}
	return run.nodes, score, moves, nil
}

type runAlphaBeta struct {
	explore Exploration
	eval    QuietSearch
	tt      TranspositionTable
	noise   eval.Random
	history *History
	killers *Killers
	b       *board.Board
	nodes   uint64

	ponder []board.Move
}

// search returns the fail-soft score for the side to move: it may lie outside [alpha, beta]
// when the returned bound is not ExactBound. allowNull is false only while inside a null-move
// verification search, to forbid two null moves in a row.
func (m *runAlphaBeta) search(ctx context.Context, depth int, alpha, beta eval.Score, allowNull bool) (eval.Score, []board.Move) {
	if contextx.IsCancelled(ctx) {
		return eval.InvalidScore, nil
	}
	if m.b.Result().Outcome == board.Draw {
		return eval.ZeroScore, nil
	}

	origAlpha := alpha

	// (1) TT probe.

	var ttMove board.Move
	if bound, d, score, best, ok := m.tt.Read(m.b.Hash()); ok {
		ttMove = best
		if d >= depth {
			switch bound {
			case ExactBound:
				return score, nil // cutoff
			case LowerBound:
				alpha = eval.Max(alpha, score)
			case UpperBound:
				beta = eval.Min(beta, score)
			}
			if !alpha.Less(beta) {
				return score, nil // cutoff
			}
		} // else: not deep enough to trust for a cutoff, but best still seeds ordering.
	}

	// (2) Leaf.

	if depth <= 0 {
		sctx := &Context{Alpha: alpha, Beta: beta, TT: m.tt, Noise: m.noise, History: m.history, Killers: m.killers}
		nodes, score := m.eval.QuietSearch(ctx, sctx, m.b)
		m.nodes += nodes

		m.tt.Write(m.b.Hash(), boundFor(score, origAlpha, beta), m.b.Ply(), 0, score, board.Move{})
		return score, nil
	}

	m.nodes++

	turn := m.b.Turn()
	inCheck := m.b.Position().IsChecked(turn)

	// (3) Null-move pruning.

	if allowNull && !inCheck && depth >= nullMoveMinDepth && m.b.Position().Occupied().PopCount() > nullMovePieceFloor {
		nullAlpha := beta.Negate()

		m.b.PushNullMove()
		score, _ := m.search(ctx, depth-1-nullMoveReduction, nullAlpha, nullAlpha, false)
		m.b.PopNullMove()

		score = eval.IncrementMateDistance(score).Negate()
		if !contextx.IsCancelled(ctx) && !score.Less(beta) {
			return score, nil // cutoff: opponent is winning even with a free tempo
		}
	}

	// (4) Move generation and ordering.

	priority, explore := m.explore(ctx, m.b, ttMove, m.history, m.killers, depth)

	if len(m.ponder) > 0 {
		explore = m.ponder[0].Equals // overwrite: use ponder move even if not intended to be explored
		m.ponder = m.ponder[1:]
	}

	// (5) Iterate moves.

	hasLegalMove := false
	best := eval.NegInfScore
	var bestMove board.Move
	var pv []board.Move
	movesSearched := 0

	moves := board.NewMoveList(m.b.Position().PseudoLegalMoves(turn), priority)
	for {
		move, ok := moves.Next()
		if !ok {
			break
		}
		if !m.b.PushMove(move) {
			continue // skip: not legal
		}
		hasLegalMove = true

		if explore(move) {
			givesCheck := m.b.Position().IsChecked(m.b.Turn())

			lmr := 0
			if movesSearched >= lmrMinMovesSearched && depth >= lmrMinDepth && !inCheck && !givesCheck && move.IsQuiet() {
				lmr = lmrReduction
			}

			score, rem := m.search(ctx, depth-1-lmr, beta.Negate(), alpha.Negate(), true)
			score = eval.IncrementMateDistance(score).Negate()

			if lmr > 0 && alpha.Less(score) {
				// Surprising fail-high on a reduced search: re-search at full depth.
				score, rem = m.search(ctx, depth-1, beta.Negate(), alpha.Negate(), true)
				score = eval.IncrementMateDistance(score).Negate()
			}

			if best.Less(score) {
				best = score
				bestMove = move
				pv = append([]board.Move{move}, rem...)
			}
			if alpha.Less(best) {
				alpha = best
			}
			movesSearched++
		}

		m.b.PopMove()

		if !alpha.Less(beta) {
			if move.IsQuiet() {
				m.history.Add(turn, move, depth)
				m.killers.Add(depth, move)
			}
			break // cutoff
		}
	}

	if !hasLegalMove {
		if result := m.b.AdjudicateNoLegalMoves(); result.Reason == board.Checkmate {
			return eval.NegInfScore, nil
		}
		return eval.ZeroScore, nil
	}

	m.tt.Write(m.b.Hash(), boundFor(best, origAlpha, beta), m.b.Ply(), depth, best, bestMove)
	return best, pv
}

// boundFor infers the TT bound flag for a search result relative to the window it was
// searched under, per the store-semantics law: a result at or below the original alpha is a
// fail-low upper bound, a result at or above beta is a fail-high lower bound, and anything
// strictly in between is exact.
func boundFor(score, origAlpha, beta eval.Score) Bound {
	switch {
	case !origAlpha.Less(score):
		return UpperBound
	case !score.Less(beta):
		return LowerBound
	default:
		return ExactBound
	}
}

func fullIfNotSet(p Exploration) Exploration {
	if p == nil {
		return FullExploration
	}
	return p
}
