package token

import (
	"finlint/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFinal, KwVar, KwConst, KwFor, KwIn, KwThis, KwSuper, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsDeclarationKeyword reports whether the token introduces a variable
// declaration (the qualifier position of a declaration list).
func (t Token) IsDeclarationKeyword() bool {
	switch t.Kind {
	case KwFinal, KwVar, KwConst:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
