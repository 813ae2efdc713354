package driver

import (
	"lexkit/lexer"
)

// TokenizeUntilEnd drives next against lx until the buffer is exhausted and
// returns the tokens in production order. The run is all-or-nothing: the
// first error comes back alone and everything collected before it is
// discarded. An already-empty buffer yields no tokens and no error.
func TokenizeUntilEnd[T comparable, Tok any](lx *lexer.Lexer[T], next lexer.TokenFunc[T, Tok]) ([]Tok, error) {
	var tokens []Tok
	for !lx.EOF() {
		tok, err := next(lx)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokenizeUntilEndScoped is TokenizeUntilEnd for scoped producers: the one
// caller-owned scope is threaded through every production, so state written
// while lexing one token is visible while lexing the next. Contrast with
// driving next.Unscoped(), which zeroes the scope on every call.
func TokenizeUntilEndScoped[T comparable, Tok, Scope any](lx *lexer.Lexer[T], scope *Scope, next lexer.ScopedTokenFunc[T, Tok, Scope]) ([]Tok, error) {
	return TokenizeUntilEnd(lx, func(lx *lexer.Lexer[T]) (Tok, error) {
		return next(lx, scope)
	})
}
