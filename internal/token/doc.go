// Package token defines lexical token kinds for the declaration shapes the
// linter inspects.
// Invariants:
//   - Token.Text is the exact source text of the token.
//   - Token.Span matches Text exactly (Start..End).
//   - Built-in type names (int, bool, String, ...) are identifiers. They are
//     recognized by type annotation nodes, not by the token layer.
package token
