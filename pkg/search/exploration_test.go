package search_test

import (
	"testing"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestMoveOrdererRanksTTMoveFirst(t *testing.T) {
	ttMove := board.Move{Type: board.Normal, From: board.E2, To: board.E4, Piece: board.Pawn}
	queenTakesPawn := board.Move{Type: board.Capture, Piece: board.Queen, Capture: board.Pawn}

	rank := search.MoveOrderer(board.White, ttMove, nil, nil, 1)
	assert.Equal(t, board.MovePriority(600), rank(ttMove))
	assert.True(t, rank(ttMove) > rank(queenTakesPawn), "tt move must outrank every other move")
}

func TestMoveOrdererRanksCapturesByMVVLVA(t *testing.T) {
	rank := search.MoveOrderer(board.White, board.Move{}, nil, nil, 1)

	knightTakesBishop := board.Move{Type: board.Capture, Piece: board.Knight, Capture: board.Bishop}
	queenTakesBishop := board.Move{Type: board.Capture, Piece: board.Queen, Capture: board.Bishop}
	queenTakesPawn := board.Move{Type: board.Capture, Piece: board.Queen, Capture: board.Pawn}

	assert.True(t, rank(knightTakesBishop) > rank(queenTakesBishop), "cheaper attacker on equal victim ranks first")
	assert.True(t, rank(queenTakesBishop) > rank(queenTakesPawn), "bigger victim on equal attacker ranks first")
}

func TestMoveOrdererEnPassantRanksAsZero(t *testing.T) {
	rank := search.MoveOrderer(board.White, board.Move{}, nil, nil, 1)

	ep := board.Move{Type: board.EnPassant, Piece: board.Pawn, Capture: board.Pawn}
	assert.Equal(t, board.MovePriority(0), rank(ep))
}

func TestMoveOrdererPromotionRanksAboveQuiet(t *testing.T) {
	rank := search.MoveOrderer(board.White, board.Move{}, nil, nil, 1)

	promo := board.Move{Type: board.Promotion, Piece: board.Pawn, Promotion: board.Queen}
	quiet := board.Move{Type: board.Normal, Piece: board.Bishop, From: board.C1, To: board.D2}

	assert.Equal(t, board.MovePriority(0), rank(promo))
	assert.True(t, rank(promo) > rank(quiet))
}

func TestMoveOrdererHistoryHitOutranksQuiet(t *testing.T) {
	quiet := board.Move{Type: board.Normal, Piece: board.Knight, From: board.B1, To: board.C3}
	other := board.Move{Type: board.Normal, Piece: board.Bishop, From: board.C1, To: board.D2}

	h := search.NewHistory()
	h.Add(board.White, quiet, 6) // +36

	rank := search.MoveOrderer(board.White, board.Move{}, h, nil, 1)
	assert.True(t, rank(quiet) > rank(other), "a history hit must outrank an unseen quiet move")
}

func TestMoveOrdererKillerOutranksPlainQuiet(t *testing.T) {
	killer := board.Move{Type: board.Normal, Piece: board.Knight, From: board.B1, To: board.C3}
	other := board.Move{Type: board.Normal, Piece: board.Bishop, From: board.C1, To: board.D2}

	k := search.NewKillers()
	k.Add(3, killer)

	rank := search.MoveOrderer(board.White, board.Move{}, nil, k, 3)
	assert.True(t, rank(killer) > rank(other), "a recorded killer must outrank a plain quiet move at the same depth")
	assert.False(t, rank(killer) > 0, "a killer still ranks below captures and promotions")
}

func TestHistoryPriorityDirections(t *testing.T) {
	assert.True(t, search.HistoryPriority(100) > search.HistoryPriority(10))
	assert.True(t, search.InvertedHistoryPriority(100) < search.InvertedHistoryPriority(10))
}
