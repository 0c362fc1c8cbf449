package book_test

import (
	"testing"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/board/fen"
	"github.com/herohde/gorgon/pkg/book"
	"github.com/stretchr/testify/assert"
)

func TestPolyglotHash(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	assert.NoError(t, err)

	a := book.PolyglotHash(pos, turn)
	b := book.PolyglotHash(pos, turn)
	assert.Equal(t, a, b, "hash must be deterministic for the same position")

	opp := book.PolyglotHash(pos, turn.Opponent())
	assert.NotEqual(t, a, opp, "side to move must affect the key")

	after, ok := pos.Move(mustMove(t, pos, turn, "e2e4"))
	assert.True(t, ok)
	assert.NotEqual(t, a, book.PolyglotHash(after, turn.Opponent()), "a different position must hash differently")
}

func mustMove(t *testing.T, pos *board.Position, turn board.Color, str string) board.Move {
	want, err := board.ParseMove(str)
	assert.NoError(t, err)

	for _, m := range pos.PseudoLegalMoves(turn) {
		if m.Equals(want) {
			return m
		}
	}
	t.Fatalf("move %v not found", str)
	return board.Move{}
}
