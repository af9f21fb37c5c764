package ast

import (
	"finlint/internal/source"
	"finlint/internal/token"
)

// Node is the base interface for all syntax-tree nodes.
type Node interface {
	Span() source.Span
}

// Stmt is a Node that represents a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is a Node that represents an expression.
type Expr interface {
	Node
	exprNode()
}

// Ident is a simple identifier.
type Ident struct {
	Tok token.Token
}

func (n *Ident) Span() source.Span {
	if n == nil {
		return source.Span{}
	}
	return n.Tok.Span
}
func (n *Ident) exprNode() {}

// Name returns the identifier spelling.
func (n *Ident) Name() string { return n.Tok.Text }

// BasicLit is a literal value (integer, float, string, or boolean).
type BasicLit struct {
	Tok token.Token
}

func (n *BasicLit) Span() source.Span { return n.Tok.Span }
func (n *BasicLit) exprNode()         {}

// TypeName is an explicit type annotation written at a declaration site.
type TypeName struct {
	Name *Ident
}

func (n *TypeName) Span() source.Span {
	if n == nil {
		return source.Span{}
	}
	return n.Name.Span()
}

// coverSpans folds non-empty spans into one covering span. Zero-value
// spans (from absent optional parts) are skipped.
func coverSpans(spans ...source.Span) source.Span {
	var out source.Span
	have := false
	for _, sp := range spans {
		if sp == (source.Span{}) {
			continue
		}
		if !have {
			out = sp
			have = true
			continue
		}
		out = out.Cover(sp)
	}
	return out
}

// optSpan returns the span of an optional node, or the zero span.
func optSpan(n Node) source.Span {
	if n == nil {
		return source.Span{}
	}
	return n.Span()
}

// optTokenSpan returns the span of an optional token, or the zero span.
func optTokenSpan(t *token.Token) source.Span {
	if t == nil {
		return source.Span{}
	}
	return t.Span
}
