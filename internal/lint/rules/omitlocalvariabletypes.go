package rules

import (
	"finlint/internal/ast"
	"finlint/internal/diag"
	"finlint/internal/lint"
)

const omitLocalVariableTypesDetails = `Local declarations whose type is already pinned down by an
initializer or an iterated collection should not repeat it. The
annotation is noise the reader must check against the right-hand side.

**BAD:**

    void sum(List<int> items) {
      int total = 0;
      for (int item in items) {
        total = total + item;
      }
    }

**GOOD:**

    void sum(List<int> items) {
      var total = 0;
      for (var item in items) {
        total = total + item;
      }
    }

Parameters are not locals: their annotation is part of the declared
surface and stays.
`

var redundantType = lint.Variant{
	Code:       diag.RedundantTypeAnnotation,
	Message:    "Unnecessary type annotation.",
	Correction: "Omit the type; it is inferred.",
}

// OmitLocalVariableTypes flags explicit type annotations on local
// declarations that infer the same type without one. It enforces the
// opposite convention from AlwaysSpecifyTypes, and the two must never
// run together.
type OmitLocalVariableTypes struct{}

func (OmitLocalVariableTypes) Info() lint.Info {
	return lint.Info{
		Name:        "omit_local_variable_types",
		Description: "Omit type annotations on initialized local variables.",
		Details:     omitLocalVariableTypesDetails,
		Group:       lint.GroupStyle,
		IncompatibleWith: []string{
			"always_specify_types",
		},
	}
}

func (r OmitLocalVariableTypes) Register(reg *lint.Registry, ctx *lint.Context) {
	reg.AddForStatement(func(n *ast.ForStatement) {
		parts, ok := n.Parts.(*ast.ForEachPartsWithDeclaration)
		if !ok || parts.Loop == nil || parts.Loop.TypeAnn == nil {
			return
		}
		// The iterated collection always determines the element type.
		ctx.ReportSpan(parts.Loop.TypeAnn.Span(), redundantType)
	})
	reg.AddVariableDeclarationStatement(func(n *ast.VariableDeclarationStatement) {
		list := n.List
		if list == nil || list.TypeAnn == nil {
			return
		}
		// The annotation is shared, so it is redundant only when every
		// name in the list infers from its own initializer.
		for _, v := range list.Variables {
			if v == nil || v.Initializer == nil {
				return
			}
		}
		if len(list.Variables) == 0 {
			return
		}
		ctx.ReportSpan(list.TypeAnn.Span(), redundantType)
	})
}
