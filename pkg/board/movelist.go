package board

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
)

// MovePriority represents the move order priority.
type MovePriority int16

// MovePriorityFn assigns a priority to moves
type MovePriorityFn func(move Move) MovePriority

// MovePredicateFn selects whether a move should be explored at all.
type MovePredicateFn func(move Move) bool

// IsAnyMove selects every move. The default predicate for full-width search.
func IsAnyMove(Move) bool {
	return true
}

// NoMove selects no move. Used to disable quiescence entirely.
func NoMove(Move) bool {
	return false
}

// mvvlvaValue orders pieces by nominal worth for MVV-LVA comparisons, without
// depending on the eval package's tuned weights.
var mvvlvaValue = map[Piece]int{
	NoPiece: 0,
	Pawn:    1,
	Knight:  3,
	Bishop:  3,
	Rook:    5,
	Queen:   9,
	King:    0,
}

// ByMVVLVA sorts moves most-valuable-victim, least-valuable-attacker first, with
// promotions ranked above equal-victim captures and quiet moves left in place last.
type ByMVVLVA []Move

func (s ByMVVLVA) Len() int      { return len(s) }
func (s ByMVVLVA) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s ByMVVLVA) Less(i, j int) bool {
	a, b := s[i], s[j]
	av, bv := mvvlvaScore(a), mvvlvaScore(b)
	if av != bv {
		return av > bv
	}
	return mvvlvaValue[a.Piece] < mvvlvaValue[b.Piece]
}

func mvvlvaScore(m Move) int {
	score := 0
	if m.IsCapture() {
		score += 100 * mvvlvaValue[m.Capture]
	}
	if m.IsPromotion() {
		score += 100 * mvvlvaValue[m.Promotion]
	}
	return score
}

// First puts the given move first. Otherwise uses the given function.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt16
		}
		return fn(m)
	}
}

// SortByPriority sorts the moves by priority, preserving order for same priority.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}

// MoveList is move priority queue for move ordering.
type MoveList struct {
	h moveHeap
}

// NewMoveList returns a new move list with the given priorities.
func NewMoveList(moves []Move, fn MovePriorityFn) *MoveList {
	h := moveHeap(make([]elm, len(moves)))
	for i, m := range moves {
		h[i] = elm{m: m, val: fn(m)}
	}
	heap.Init(&h)
	return &MoveList{h: h}
}

// Next returns the next move. It is the highest priority move in the list.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Size() == 0 {
		return Move{}, false
	}
	ret := heap.Pop(&ml.h).(elm)
	return ret.m, true
}

func (ml *MoveList) Size() int {
	return ml.h.Len()
}

func (ml *MoveList) String() string {
	if ml.Size() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0].m, ml.Size())
}

type elm struct {
	m   Move
	val MovePriority
}

type moveHeap []elm

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].val > h[j].val
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	panic("fixed size heap")
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
