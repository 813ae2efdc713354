package lexer

import (
	"fmt"

	"fortio.org/safecast"
)

// EOF reports whether the cursor is at or past the end of the buffer.
func (lx *Lexer[T]) EOF() bool {
	return lx.cursor >= len(lx.contents)
}

// Len reports how many elements the buffer currently holds.
func (lx *Lexer[T]) Len() int {
	return len(lx.contents)
}

// Peek reads the current element without advancing, zero value at EOF.
func (lx *Lexer[T]) Peek() T {
	if lx.EOF() {
		var zero T
		return zero
	}
	return lx.contents[lx.cursor]
}

// PeekAt reads the element n positions ahead of the cursor, if there is one.
func (lx *Lexer[T]) PeekAt(n int) (T, bool) {
	if i := lx.cursor + n; i >= 0 && i < len(lx.contents) {
		return lx.contents[i], true
	}
	var zero T
	return zero, false
}

// Bump advances the cursor by one element and returns the element read,
// zero value at EOF.
func (lx *Lexer[T]) Bump() T {
	if lx.EOF() {
		var zero T
		return zero
	}
	v := lx.contents[lx.cursor]
	lx.cursor++
	return v
}

// Eat consumes the current element if it equals v.
func (lx *Lexer[T]) Eat(v T) bool {
	if !lx.EOF() && lx.contents[lx.cursor] == v {
		lx.cursor++
		return true
	}
	return false
}

// Mark is a saved cursor position, kept cheap so token producers can
// backtrack and capture spans freely.
type Mark uint32

// Mark saves the current cursor position.
func (lx *Lexer[T]) Mark() Mark {
	off, err := safecast.Conv[uint32](lx.cursor)
	if err != nil {
		panic(fmt.Errorf("cursor overflow: %w", err))
	}
	return Mark(off)
}

// Reset moves the cursor back to a saved mark.
func (lx *Lexer[T]) Reset(m Mark) {
	lx.cursor = int(m)
}

// SpanFrom builds the span covering the elements between a mark and the
// current cursor.
func (lx *Lexer[T]) SpanFrom(m Mark) Span {
	off, err := safecast.Conv[uint32](lx.cursor)
	if err != nil {
		panic(fmt.Errorf("cursor overflow: %w", err))
	}
	return Span{
		Start: uint32(m),
		End:   off,
	}
}
