package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"lexkit/lexer"
	"lexkit/read"
)

// CheckAnalyser runs a minimal set of buffer invariants on a:
// 1) the cursor is within [0, len(contents)]
// 2) SetPos(Pos()) succeeds and leaves the cursor where it was
// 3) contents do not change size while the cursor moves
func CheckAnalyser[T comparable](a read.Analyser[T]) error {
	if a == nil {
		return fmt.Errorf("nil analyser")
	}

	pos := a.Pos()
	size := len(a.Contents())

	// 1) cursor sanity
	if pos < 0 {
		return fmt.Errorf("cursor before start: %d", pos)
	}
	if pos > size {
		return fmt.Errorf("cursor beyond contents: %d > %d", pos, size)
	}

	// 2) repositioning to the current position is a no-op
	if err := a.SetPos(pos); err != nil {
		return fmt.Errorf("SetPos round-trip: %w", err)
	}
	if got := a.Pos(); got != pos {
		return fmt.Errorf("SetPos round-trip moved cursor: got=%d want=%d", got, pos)
	}

	// 3) contents are cursor-independent
	if got := len(a.Contents()); got != size {
		return fmt.Errorf("contents changed size under SetPos: got=%d want=%d", got, size)
	}
	return nil
}

// CheckSpan verifies that sp is well-formed and lies within a's contents.
func CheckSpan[T comparable](sp lexer.Span, a read.Analyser[T]) error {
	if a == nil {
		return fmt.Errorf("nil analyser")
	}
	if sp.End < sp.Start {
		return fmt.Errorf("inverted span: %v", sp)
	}
	lenContents, err := safecast.Conv[uint32](len(a.Contents()))
	if err != nil {
		return fmt.Errorf("len contents overflow: %w", err)
	}
	if sp.End > lenContents {
		return fmt.Errorf("span end beyond contents: %d > %d", sp.End, lenContents)
	}
	return nil
}
