package ast

import (
	"finlint/internal/source"
	"finlint/internal/token"
)

// FormalParameter is one entry of a FormalParameterList: either a normal
// parameter or a normal parameter wrapped with a default value.
type FormalParameter interface {
	Node
	formalParameterNode()
}

// NormalFormalParameter is the closed family of unwrapped parameter
// shapes: plain, field-initializing ('this.x'), and super-initializing
// ('super.x'). All variants expose their qualifier and type uniformly.
type NormalFormalParameter interface {
	FormalParameter
	normalFormalParameter()

	// Final reports whether the parameter declares an immutable binding.
	Final() bool
	// Qualifier returns the binding qualifier token, or nil when the
	// shape carries no addressable qualifier.
	Qualifier() *token.Token
	// Type returns the explicit type annotation, or nil when inferred.
	Type() *TypeName
	// Name returns the declared parameter name.
	Name() *Ident
}

// SimpleFormalParameter is a plain parameter: `final int x`, `var x`, `x`.
type SimpleFormalParameter struct {
	Keyword *token.Token // final/var/const, or nil
	IsFinal bool
	TypeAnn *TypeName
	Ident   *Ident
}

func (p *SimpleFormalParameter) Span() source.Span {
	return coverSpans(optTokenSpan(p.Keyword), p.TypeAnn.Span(), p.Ident.Span())
}
func (p *SimpleFormalParameter) formalParameterNode()    {}
func (p *SimpleFormalParameter) normalFormalParameter()  {}
func (p *SimpleFormalParameter) Final() bool             { return p.IsFinal }
func (p *SimpleFormalParameter) Qualifier() *token.Token { return p.Keyword }
func (p *SimpleFormalParameter) Type() *TypeName         { return p.TypeAnn }
func (p *SimpleFormalParameter) Name() *Ident            { return p.Ident }

// FieldFormalParameter initializes a field of the enclosing declaration:
// `final this.x` / `int this.x`.
type FieldFormalParameter struct {
	Keyword *token.Token
	IsFinal bool
	TypeAnn *TypeName
	ThisTok token.Token
	Ident   *Ident
}

func (p *FieldFormalParameter) Span() source.Span {
	return coverSpans(optTokenSpan(p.Keyword), p.TypeAnn.Span(), p.ThisTok.Span, p.Ident.Span())
}
func (p *FieldFormalParameter) formalParameterNode()    {}
func (p *FieldFormalParameter) normalFormalParameter()  {}
func (p *FieldFormalParameter) Final() bool             { return p.IsFinal }
func (p *FieldFormalParameter) Qualifier() *token.Token { return p.Keyword }
func (p *FieldFormalParameter) Type() *TypeName         { return p.TypeAnn }
func (p *FieldFormalParameter) Name() *Ident            { return p.Ident }

// SuperFormalParameter forwards to a parent declaration: `final super.x`.
type SuperFormalParameter struct {
	Keyword  *token.Token
	IsFinal  bool
	TypeAnn  *TypeName
	SuperTok token.Token
	Ident    *Ident
}

func (p *SuperFormalParameter) Span() source.Span {
	return coverSpans(optTokenSpan(p.Keyword), p.TypeAnn.Span(), p.SuperTok.Span, p.Ident.Span())
}
func (p *SuperFormalParameter) formalParameterNode()    {}
func (p *SuperFormalParameter) normalFormalParameter()  {}
func (p *SuperFormalParameter) Final() bool             { return p.IsFinal }
func (p *SuperFormalParameter) Qualifier() *token.Token { return p.Keyword }
func (p *SuperFormalParameter) Type() *TypeName         { return p.TypeAnn }
func (p *SuperFormalParameter) Name() *Ident            { return p.Ident }

// DefaultFormalParameter wraps a normal parameter with an optional default
// expression: `[final int x = 3]`. The wrapper never changes the inner
// parameter's qualifier or type semantics.
type DefaultFormalParameter struct {
	Parameter    NormalFormalParameter
	DefaultValue Expr // nil when only the wrapper syntax is present
}

func (p *DefaultFormalParameter) Span() source.Span {
	return coverSpans(optSpan(p.Parameter), optSpan(p.DefaultValue))
}
func (p *DefaultFormalParameter) formalParameterNode() {}

// FormalParameterList is the ordered parameter list of a function or
// method declaration.
type FormalParameterList struct {
	LParen     token.Token
	Parameters []FormalParameter
	RParen     token.Token
}

func (n *FormalParameterList) Span() source.Span {
	return coverSpans(n.LParen.Span, n.RParen.Span)
}
