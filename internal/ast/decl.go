package ast

import (
	"finlint/internal/source"
	"finlint/internal/token"
)

// Block is a brace-delimited statement sequence.
type Block struct {
	LBrace token.Token
	Stmts  []Stmt
	RBrace token.Token
}

func (n *Block) Span() source.Span {
	return coverSpans(n.LBrace.Span, n.RBrace.Span)
}
func (n *Block) stmtNode() {}

// ExpressionStatement wraps an expression used in statement position.
type ExpressionStatement struct {
	X            Expr
	SemicolonTok token.Token
}

func (n *ExpressionStatement) Span() source.Span {
	return coverSpans(optSpan(n.X), n.SemicolonTok.Span)
}
func (n *ExpressionStatement) stmtNode() {}

// FunctionDeclaration is a function or method declaration with its
// parameter list and body.
type FunctionDeclaration struct {
	Ident  *Ident
	Params *FormalParameterList
	Body   *Block
}

func (n *FunctionDeclaration) Span() source.Span {
	var paramSpan, bodySpan source.Span
	if n.Params != nil {
		paramSpan = n.Params.Span()
	}
	if n.Body != nil {
		bodySpan = n.Body.Span()
	}
	return coverSpans(n.Ident.Span(), paramSpan, bodySpan)
}

// CompilationUnit is the root of one source file's tree.
type CompilationUnit struct {
	File  source.FileID
	Decls []*FunctionDeclaration
}

func (n *CompilationUnit) Span() source.Span {
	spans := make([]source.Span, 0, len(n.Decls))
	for _, d := range n.Decls {
		spans = append(spans, d.Span())
	}
	return coverSpans(spans...)
}
