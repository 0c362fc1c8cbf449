package search

import (
	"context"
	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/eval"
)

// Exploration defines move selection and priority in a given position, given the transposition
// table's suggested move for this node (if any) and the history/killer tables. Limited
// exploration is required by quiescence search and can be used for forward pruning in full
// search. Default: explore all moves per the full move-orderer ranking (MoveOrderer).
type Exploration func(ctx context.Context, b *board.Board, ttMove board.Move, history *History, killers *Killers, depth int) (board.MovePriorityFn, board.MovePredicateFn)

func FullExploration(ctx context.Context, b *board.Board, ttMove board.Move, history *History, killers *Killers, depth int) (board.MovePriorityFn, board.MovePredicateFn) {
	return MoveOrderer(b.Turn(), ttMove, history, killers, depth), board.IsAnyMove
}

// QuiescenceExploration restricts exploration to promotions and captures that either win
// material outright, land on a square the opponent doesn't currently defend, or are made by
// a piece worth no more than the opponent's cheapest defender of that square, so quiescence
// search stays cheap while still resolving tactical sequences.
func QuiescenceExploration(ctx context.Context, b *board.Board, ttMove board.Move, history *History, killers *Killers, depth int) (board.MovePriorityFn, board.MovePredicateFn) {
	pos, turn := b.Position(), b.Turn()

	pick := func(m board.Move) bool {
		if m.IsPromotion() {
			return true
		}
		if m.IsCapture() {
			if eval.NominalValue(m.Piece) < eval.NominalValue(m.Capture) {
				return true
			}

			defenders := eval.SortByNominalValue(eval.FindCapture(pos, turn.Opponent(), m.To))
			return len(defenders) == 0 || eval.NominalValue(m.Piece) <= eval.NominalValue(defenders[0].Piece)
		}
		return false
	}
	return MoveOrderer(turn, ttMove, history, killers, depth), pick
}

// Selection returns a move order and priority for exploring the given moves.
func Selection(list []board.Move) (board.MovePriorityFn, board.MovePredicateFn) {
	rank := map[board.Move]board.MovePriority{}
	for i, m := range list {
		rank[m] = board.MovePriority(len(list) - i)
	}

	priority := func(move board.Move) board.MovePriority {
		return rank[move]
	}
	pick := func(move board.Move) bool {
		_, ok := rank[move]
		return ok
	}
	return priority, pick
}

// HistoryPriorityFn converts an accumulated history-heuristic cutoff counter into a move
// priority rank.
type HistoryPriorityFn func(score int32) board.MovePriority

// HistoryPriority ranks a history hit in the intended direction: a higher cutoff counter
// ranks the move earlier. This is the direction MoveOrderer uses by default.
func HistoryPriority(score int32) board.MovePriority {
	return board.MovePriority(score)
}

// InvertedHistoryPriority reproduces the literal history[side][from][to] / -100 formula,
// which divides the counter by a negative constant and so inverts the intended direction (a
// stronger history score ranks the move later, below most captures). Kept only for bit-for-bit
// replay parity with that formula; MoveOrderer does not use it by default.
func InvertedHistoryPriority(score int32) board.MovePriority {
	return board.MovePriority(score / -100)
}

// killerPriority ranks a quiet killer move above a plain quiet move but below any move that
// the history table or a capture/promotion would already rank higher.
const killerPriority = board.MovePriority(-500)

// quietPriority is the catch-all rank for moves that match none of the rules above.
const quietPriority = board.MovePriority(-1000)

// MoveOrderer implements the ranked move ordering. The rules are tried in this order and the
// first matching one sets the priority: the transposition table's suggested move (600), a
// history-heuristic hit (its counter), en passant (0), MVV-LVA captures, promotions (0), a
// recorded killer, and everything else last. The priorities of different rules interleave:
// a history counter above 600 ranks ahead of the TT move, and one below a capture's MVV-LVA
// value ranks behind that capture.
func MoveOrderer(turn board.Color, ttMove board.Move, history *History, killers *Killers, depth int) board.MovePriorityFn {
	hasTT := ttMove != (board.Move{})

	return func(m board.Move) board.MovePriority {
		switch {
		case hasTT && ttMove.Equals(m):
			return 600
		case history.Score(turn, m) != 0:
			return HistoryPriority(history.Score(turn, m))
		case m.Type == board.EnPassant:
			return 0
		case m.IsCapture():
			return board.MovePriority(100 * (int(m.Capture) - int(m.Piece)))
		case m.IsPromotion():
			return 0
		case killers.IsKiller(depth, m):
			return killerPriority
		default:
			return quietPriority
		}
	}
}
