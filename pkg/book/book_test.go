package book_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/board/fen"
	"github.com/herohde/gorgon/pkg/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPolyglot(t *testing.T) {
	pos, turn, _, _, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	key := book.PolyglotHash(pos, turn)

	var buf bytes.Buffer
	var raw [16]byte
	binary.BigEndian.PutUint64(raw[0:8], key)
	binary.BigEndian.PutUint16(raw[8:10], 796) // e2e4: to=e4, from=e2, no promotion
	binary.BigEndian.PutUint16(raw[10:12], 10) // weight
	buf.Write(raw[:])

	b, err := book.ReadPolyglot(&buf)
	require.NoError(t, err)

	moves, err := b.Find(context.Background(), fen.Initial)
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, "e2-e4", board.PrintMoves(moves))
}

func TestReadPolyglotMiss(t *testing.T) {
	b, err := book.ReadPolyglot(bytes.NewReader(nil))
	require.NoError(t, err)

	moves, err := b.Find(context.Background(), fen.Initial)
	require.NoError(t, err)
	assert.Empty(t, moves)
}
