// Package read defines the capability through which token producers inspect
// and reposition a lexing buffer without depending on its concrete type.
package read

// Analyser exposes a cursor buffer for inspection and repositioning.
//
// Contents is the whole buffer as a read-only view; the cursor never hides
// elements and reading never consumes them. Pos and SetPos expose the cursor
// as an element index, and SetPos overwrites it unconditionally; backends
// that model repositioning as fallible report that through the error return.
// Drain consumes the buffer: it returns the entire current contents as an
// owned sequence and leaves the buffer empty and exhausted.
type Analyser[T comparable] interface {
	Contents() []T
	Pos() int
	SetPos(pos int) error
	Drain() []T
}

// Exhausted reports whether the cursor is at or past the end of the buffer.
func Exhausted[T comparable](a Analyser[T]) bool {
	return a.Pos() >= len(a.Contents())
}

// Remaining returns the unconsumed tail of the buffer as a view, nil once
// the buffer is exhausted.
func Remaining[T comparable](a Analyser[T]) []T {
	if Exhausted(a) {
		return nil
	}
	return a.Contents()[a.Pos():]
}

// Consumed returns the prefix the cursor has already passed, as a view.
func Consumed[T comparable](a Analyser[T]) []T {
	contents := a.Contents()
	if pos := a.Pos(); pos < len(contents) {
		return contents[:pos]
	}
	return contents
}

// Rewind moves the cursor back to the start of the buffer.
func Rewind[T comparable](a Analyser[T]) error {
	return a.SetPos(0)
}
