package lexer

// TokenFunc produces one token from the front of the buffer. A successful
// call must advance the buffer; an error is returned to the caller untouched,
// with whatever was already consumed left consumed.
type TokenFunc[T comparable, Tok any] func(lx *Lexer[T]) (Tok, error)

// ScopedTokenFunc is TokenFunc for stateful grammars: the driving call site
// owns a Scope value and threads it through every production, so one token
// can leave hints for the next (nesting depth, mode flags, pending text).
type ScopedTokenFunc[T comparable, Tok, Scope any] func(lx *Lexer[T], scope *Scope) (Tok, error)

// Unscoped adapts f into a TokenFunc by handing every call a fresh zero-value
// Scope and discarding it afterwards. Bridged calls never observe state left
// behind by earlier ones; a grammar that needs continuity has to be driven as
// a ScopedTokenFunc with one retained Scope instead.
func (f ScopedTokenFunc[T, Tok, Scope]) Unscoped() TokenFunc[T, Tok] {
	return func(lx *Lexer[T]) (Tok, error) {
		var scope Scope
		return f(lx, &scope)
	}
}
