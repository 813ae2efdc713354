package driver

import (
	"errors"

	"lexkit/lexer"
)

var (
	// ErrTokenLimit reports that a Bounded producer went past its budget.
	ErrTokenLimit = errors.New("driver: token limit exceeded")
	// ErrNoProgress reports a production that succeeded without consuming input.
	ErrNoProgress = errors.New("driver: tokenizer made no progress")
)

// Bounded wraps next so that producing more than max tokens fails with
// ErrTokenLimit. The counter belongs to the wrapper, so each Bounded call
// starts a fresh budget.
func Bounded[T comparable, Tok any](next lexer.TokenFunc[T, Tok], max int) lexer.TokenFunc[T, Tok] {
	produced := 0
	return func(lx *lexer.Lexer[T]) (Tok, error) {
		if produced >= max {
			var zero Tok
			return zero, ErrTokenLimit
		}
		produced++
		return next(lx)
	}
}

// Progressive wraps next so that a success that neither moved the cursor nor
// shrank the buffer fails with ErrNoProgress. Producers are required to
// advance on success; the buffer itself does not check, this wrapper does.
func Progressive[T comparable, Tok any](next lexer.TokenFunc[T, Tok]) lexer.TokenFunc[T, Tok] {
	return func(lx *lexer.Lexer[T]) (Tok, error) {
		pos, size := lx.Pos(), lx.Len()
		tok, err := next(lx)
		if err == nil && lx.Pos() == pos && lx.Len() == size {
			var zero Tok
			return zero, ErrNoProgress
		}
		return tok, err
	}
}
