// Package book contains opening book adapters: opaque oracles that, given a position,
// return zero or more book moves. The engine consults a Book only at the root.
package book

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/herohde/gorgon/pkg/board"
	"github.com/herohde/gorgon/pkg/board/fen"
)

// Book returns the book moves for a position, highest weight first. An empty result means
// no entry, not an error: the caller falls through to search.
type Book interface {
	Find(ctx context.Context, position string) ([]board.Move, error)
}

// entry is one weighted move attached to a Polyglot position key.
type entry struct {
	move   board.Move
	weight uint16
}

// Polyglot is a Book backed by a binary opening book in the Polyglot entry layout, keyed by
// PolyglotHash rather than the engine's own internal Zobrist hash. PolyglotHash does not use
// the published Polyglot key table, so entries written by other Polyglot tools do not match.
type Polyglot struct {
	moves map[uint64][]entry
}

// LoadPolyglot reads a Polyglot .bin opening book from disk.
func LoadPolyglot(path string) (*Polyglot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open polyglot book: %w", err)
	}
	defer f.Close()

	return ReadPolyglot(bufio.NewReader(f))
}

// ReadPolyglot decodes a Polyglot-format opening book from r. Each entry is 16 bytes:
// an 8-byte big-endian position key, a 2-byte move, a 2-byte weight and 4 bytes of
// learn data that this reader ignores.
func ReadPolyglot(r io.Reader) (*Polyglot, error) {
	p := &Polyglot{moves: map[uint64][]entry{}}

	var raw [16]byte
	for {
		if _, err := io.ReadFull(r, raw[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, fmt.Errorf("read polyglot entry: %w", err)
		}

		key := binary.BigEndian.Uint64(raw[0:8])
		move := binary.BigEndian.Uint16(raw[8:10])
		weight := binary.BigEndian.Uint16(raw[10:12])

		m, ok := decodePolyglotMove(move)
		if !ok {
			continue // unparseable entry: skip rather than fail the whole book
		}
		p.moves[key] = append(p.moves[key], entry{move: m, weight: weight})
	}
	return p, nil
}

// Find returns the legal moves this book recommends for position, in FEN, sorted by
// descending weight. It reconciles the bare from/to/promotion Polyglot encodes against
// the position's pseudo-legal moves to recover castling/en-passant flags.
func (p *Polyglot) Find(ctx context.Context, position string) ([]board.Move, error) {
	pos, turn, _, _, err := fen.Decode(position)
	if err != nil {
		return nil, fmt.Errorf("invalid position: %w", err)
	}

	key := PolyglotHash(pos, turn)
	candidates, ok := p.moves[key]
	if !ok {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].weight > candidates[j].weight })

	legal := pos.PseudoLegalMoves(turn)
	var found []board.Move
	for _, c := range candidates {
		for _, m := range legal {
			if m.From == c.move.From && m.To == c.move.To && m.Promotion == c.move.Promotion {
				if next, ok := pos.Move(m); ok && !next.IsChecked(turn) {
					found = append(found, m)
				}
				break
			}
		}
	}
	return found, nil
}

// decodePolyglotMove parses the 16-bit move field: bits 0-5 are the to-square, bits 6-11
// the from-square (both in Polyglot's a1=0..h8=63 numbering), and bits 12-14 the
// promotion piece (0=none, 1=knight, 2=bishop, 3=rook, 4=queen). This reader assumes
// standard (non-Chess960) encoding, where castling is a normal two-square king move.
func decodePolyglotMove(data uint16) (board.Move, bool) {
	toFile, toRank := data&7, (data>>3)&7
	fromFile, fromRank := (data>>6)&7, (data>>9)&7
	promo := (data >> 12) & 7

	from, err := board.ParseSquare(rune('a'+fromFile), rune('1'+fromRank))
	if err != nil {
		return board.Move{}, false
	}
	to, err := board.ParseSquare(rune('a'+toFile), rune('1'+toRank))
	if err != nil {
		return board.Move{}, false
	}

	str := from.String() + to.String()
	switch promo {
	case 1:
		str += "n"
	case 2:
		str += "b"
	case 3:
		str += "r"
	case 4:
		str += "q"
	}

	m, err := board.ParseMove(str)
	if err != nil {
		return board.Move{}, false
	}
	return m, true
}
