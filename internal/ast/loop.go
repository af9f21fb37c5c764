package ast

import (
	"finlint/internal/source"
	"finlint/internal/token"
)

// ForLoopParts is the closed family of for-loop headers. Only the
// inline-declaration for-each variant introduces a declaration site; the
// other variants reuse existing bindings or count with C-style clauses.
type ForLoopParts interface {
	Node
	forLoopPartsNode()
}

// DeclaredIdentifier is a loop variable declared inline in a for-each
// header: `for (final x in xs)`.
type DeclaredIdentifier struct {
	Keyword *token.Token // final/var/const, or nil
	IsFinal bool
	TypeAnn *TypeName
	Ident   *Ident
}

func (n *DeclaredIdentifier) Span() source.Span {
	if n == nil {
		return source.Span{}
	}
	return coverSpans(optTokenSpan(n.Keyword), n.TypeAnn.Span(), n.Ident.Span())
}

// ForEachPartsWithDeclaration is a for-each header that both declares and
// binds its loop variable: `for (final x in xs)`.
type ForEachPartsWithDeclaration struct {
	Loop     *DeclaredIdentifier
	InTok    token.Token
	Iterable Expr
}

func (n *ForEachPartsWithDeclaration) Span() source.Span {
	return coverSpans(optSpan(n.Loop), n.InTok.Span, optSpan(n.Iterable))
}
func (n *ForEachPartsWithDeclaration) forLoopPartsNode() {}

// ForEachPartsWithIdentifier is a for-each header that iterates into a
// variable declared outside the loop: `for (x in xs)`.
type ForEachPartsWithIdentifier struct {
	Ident    *Ident
	InTok    token.Token
	Iterable Expr
}

func (n *ForEachPartsWithIdentifier) Span() source.Span {
	return coverSpans(n.Ident.Span(), n.InTok.Span, optSpan(n.Iterable))
}
func (n *ForEachPartsWithIdentifier) forLoopPartsNode() {}

// ForParts is a C-style counted loop header:
// `for (var i = 0; i < n; i = i + 1)`.
type ForParts struct {
	Decls     *VariableDeclarationList // nil when the init clause is empty
	Condition Expr
	Updaters  []Expr
}

func (n *ForParts) Span() source.Span {
	spans := []source.Span{optSpan(n.Decls), optSpan(n.Condition)}
	for _, u := range n.Updaters {
		spans = append(spans, u.Span())
	}
	return coverSpans(spans...)
}
func (n *ForParts) forLoopPartsNode() {}

// ForStatement is a for loop of any header shape.
type ForStatement struct {
	ForTok token.Token
	Parts  ForLoopParts
	Body   Stmt
}

func (n *ForStatement) Span() source.Span {
	return coverSpans(n.ForTok.Span, optSpan(n.Parts), optSpan(n.Body))
}
func (n *ForStatement) stmtNode() {}
