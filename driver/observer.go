package driver

import (
	"time"

	"lexkit/lexer"
)

// TokenEvent describes one successful production.
type TokenEvent struct {
	Index   int // production number within the run, starting at 0
	Pos     int // cursor position after the production
	Elapsed time.Duration
}

// Observer receives an event after every successful production. It is a hook
// for timing and progress reporting; the driver itself never formats or logs.
type Observer func(TokenEvent)

// Observed wraps next so that every successful production is reported to obs.
// Failed productions report nothing.
func Observed[T comparable, Tok any](next lexer.TokenFunc[T, Tok], obs Observer) lexer.TokenFunc[T, Tok] {
	index := 0
	return func(lx *lexer.Lexer[T]) (Tok, error) {
		begin := time.Now()
		tok, err := next(lx)
		if err != nil {
			return tok, err
		}
		obs(TokenEvent{
			Index:   index,
			Pos:     lx.Pos(),
			Elapsed: time.Since(begin),
		})
		index++
		return tok, nil
	}
}
