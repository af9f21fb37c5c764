package ast

import (
	"finlint/internal/source"
	"finlint/internal/token"
)

// VariableDeclaration is one name of a declaration list, with an optional
// initializer: the `x = 1` of `final int x = 1, y = 2;`.
type VariableDeclaration struct {
	Ident       *Ident
	AssignTok   *token.Token // nil without an initializer
	Initializer Expr
}

func (n *VariableDeclaration) Span() source.Span {
	return coverSpans(n.Ident.Span(), optTokenSpan(n.AssignTok), optSpan(n.Initializer))
}

// VariableDeclarationList co-declares one or more variables under a single
// shared qualifier/type prefix. The qualifier is written once per list,
// so finality and the keyword token live here, not on the individual
// variables.
type VariableDeclarationList struct {
	Keyword   *token.Token // final/var/const, or nil
	IsFinal   bool
	TypeAnn   *TypeName
	Variables []*VariableDeclaration
}

func (n *VariableDeclarationList) Span() source.Span {
	if n == nil {
		return source.Span{}
	}
	spans := []source.Span{optTokenSpan(n.Keyword), n.TypeAnn.Span()}
	for _, v := range n.Variables {
		spans = append(spans, v.Span())
	}
	return coverSpans(spans...)
}

// Type returns the shared explicit type annotation, or nil when inferred.
func (n *VariableDeclarationList) Type() *TypeName { return n.TypeAnn }

// Final reports whether the list declares immutable bindings.
func (n *VariableDeclarationList) Final() bool { return n.IsFinal }

// VariableDeclarationStatement is a local variable declaration statement:
// `final int x = 1;`.
type VariableDeclarationStatement struct {
	List         *VariableDeclarationList
	SemicolonTok token.Token
}

func (n *VariableDeclarationStatement) Span() source.Span {
	return coverSpans(n.List.Span(), n.SemicolonTok.Span)
}
func (n *VariableDeclarationStatement) stmtNode() {}
