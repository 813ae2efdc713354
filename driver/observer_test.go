package driver_test

import (
	"errors"
	"testing"

	"lexkit/driver"
	"lexkit/lexer"
)

func TestObserved_ReportsEveryProduction(t *testing.T) {
	lx := lexer.New([]byte("abc"))
	var events []driver.TokenEvent

	tokens, err := driver.TokenizeUntilEnd(lx, driver.Observed(nextByte, func(ev driver.TokenEvent) {
		events = append(events, ev)
	}))
	if err != nil {
		t.Fatalf("TokenizeUntilEnd: %v", err)
	}
	if got := string(tokens); got != "abc" {
		t.Errorf("tokens = %q, want %q", got, "abc")
	}

	if len(events) != 3 {
		t.Fatalf("observed %d events, want 3", len(events))
	}
	for i, ev := range events {
		if ev.Index != i {
			t.Errorf("event %d has index %d, want %d", i, ev.Index, i)
		}
		if want := i + 1; ev.Pos != want {
			t.Errorf("event %d has pos %d, want %d", i, ev.Pos, want)
		}
	}
}

func TestObserved_SilentOnFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := func(lx *lexer.Lexer[byte]) (byte, error) {
		return 0, boom
	}
	lx := lexer.New([]byte("a"))
	calls := 0

	_, err := driver.TokenizeUntilEnd(lx, driver.Observed(failing, func(driver.TokenEvent) {
		calls++
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if calls != 0 {
		t.Errorf("observer ran %d times on a failed production, want 0", calls)
	}
}
