package lexer

import (
	"slices"

	"lexkit/read"
)

type Lexer[T comparable] struct {
	cursor   int
	contents []T
}

var _ read.Analyser[byte] = (*Lexer[byte])(nil)

// New builds a lexer over a private copy of content, cursor at the first element.
func New[T comparable](content []T) *Lexer[T] {
	return &Lexer[T]{
		cursor:   0,
		contents: append([]T(nil), content...),
	}
}

// Extract removes the half-open range [start, end) from the buffer and returns
// the removed elements in order. The returned slice is owned by the caller and
// does not alias the buffer. Inverted or out-of-range bounds panic with the
// runtime's slice bounds failure before anything is mutated.
//
// The cursor follows the removal: inside the range it snaps to start; past the
// range it moves back by end. Sitting exactly on end it stays put.
func (lx *Lexer[T]) Extract(start, end int) []T {
	removed := append([]T(nil), lx.contents[start:end]...)
	lx.contents = slices.Delete(lx.contents, start, end)
	switch {
	case start <= lx.cursor && lx.cursor < end:
		lx.cursor = start
	case end < lx.cursor:
		lx.cursor -= end
	}
	return removed
}

// Contents returns the live element sequence regardless of cursor position.
// Callers must treat it as read-only.
func (lx *Lexer[T]) Contents() []T {
	return lx.contents
}

// Pos reports the cursor as an element index into Contents.
func (lx *Lexer[T]) Pos() int {
	return lx.cursor
}

// SetPos overwrites the cursor unconditionally. The error return exists for
// read.Analyser compatibility; it is always nil here.
func (lx *Lexer[T]) SetPos(pos int) error {
	lx.cursor = pos
	return nil
}

// Drain surrenders the entire current contents as an owned sequence and
// invalidates the buffer: afterwards it is empty and exhausted.
func (lx *Lexer[T]) Drain() []T {
	out := lx.contents
	lx.contents = nil
	lx.cursor = 0
	return out
}
