// Package lexer provides a destructive cursor buffer over a generic element
// sequence, plus the function contracts for producing tokens from it.
// Invariants:
//   - The buffer owns its contents: New copies the input once, nothing else does.
//   - Contents() is a live view of the whole buffer; the cursor never hides elements.
//   - Extract removes a half-open range [start, end) and returns it in order;
//     out-of-range bounds panic like any slice expression.
//   - After Extract the cursor snaps to start when it was inside the range and
//     moves back by end when it was past the range; at exactly end it stays put.
//   - Unscoped bridges a ScopedTokenFunc by zeroing the scope on every call;
//     scope continuity exists only when the call site retains one Scope itself.
package lexer
