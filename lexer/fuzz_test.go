package lexer_test

import (
	"testing"

	"lexkit/lexer"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// FuzzExtract removes arbitrary in-bounds ranges and checks the bookkeeping:
// removed and kept elements reassemble the input, and the cursor lands where
// the adjustment rules say it must.
func FuzzExtract(f *testing.F) {
	f.Add([]byte("abcde"), 0, 1, 3)
	f.Add([]byte("abcde"), 4, 1, 3)
	f.Add([]byte(""), 0, 0, 0)
	f.Add([]byte("abcdef"), 3, 3, 3)

	f.Fuzz(func(t *testing.T, input []byte, cursor, start, end int) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		}
		if start < 0 || end < start || end > len(input) {
			t.Skip()
		}
		if cursor < 0 || cursor > len(input) {
			t.Skip()
		}

		lx := lexer.New(input)
		if err := lx.SetPos(cursor); err != nil {
			t.Fatalf("SetPos(%d): %v", cursor, err)
		}

		removed := lx.Extract(start, end)

		if got, want := len(removed), end-start; got != want {
			t.Fatalf("removed %d elements, want %d", got, want)
		}
		if got, want := lx.Len(), len(input)-(end-start); got != want {
			t.Fatalf("Len() after Extract = %d, want %d", got, want)
		}
		if got, want := string(removed), string(input[start:end]); got != want {
			t.Errorf("removed = %q, want %q", got, want)
		}

		rest := lx.Contents()
		reassembled := string(rest[:start]) + string(removed) + string(rest[start:])
		if reassembled != string(input) {
			t.Errorf("removed and kept elements reassemble to %q, want %q", reassembled, input)
		}

		want := cursor
		switch {
		case start <= cursor && cursor < end:
			want = start
		case end < cursor:
			want = cursor - end
		}
		if got := lx.Pos(); got != want {
			t.Errorf("cursor after Extract(%d, %d) from %d = %d, want %d", start, end, cursor, got, want)
		}
	})
}
