package engine

import "github.com/herohde/gorgon/pkg/book"

// Book is an opening book oracle, consulted at the root before falling through to search.
type Book = book.Book

// Line represents an opening line: e2e4 d7d5.
type Line = book.Line

// NoBook is an empty opening book.
var NoBook = book.NoBook

// NewBook creates an in-memory opening book from a set of opening lines.
func NewBook(lines []Line) (Book, error) {
	return book.NewLineBook(lines)
}
