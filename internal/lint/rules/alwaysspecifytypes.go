package rules

import (
	"finlint/internal/ast"
	"finlint/internal/diag"
	"finlint/internal/lint"
)

const alwaysSpecifyTypesDetails = `Declarations should name the type they bind, so a reader never has
to reconstruct it from the initializer or the surrounding code.

**BAD:**

    void tally(var items) {
      var total = 0;
      for (var item in items) {
        total = total + item;
      }
    }

**GOOD:**

    void tally(List<int> items) {
      int total = 0;
      for (int item in items) {
        total = total + item;
      }
    }
`

var missingType = lint.Variant{
	Code:       diag.MissingTypeAnnotation,
	Message:    "Missing type annotation.",
	Correction: "Specify the type explicitly.",
}

// AlwaysSpecifyTypes flags declarations that omit an explicit type
// annotation. It enforces the opposite convention from
// OmitLocalVariableTypes, and the two must never run together.
type AlwaysSpecifyTypes struct{}

func (AlwaysSpecifyTypes) Info() lint.Info {
	return lint.Info{
		Name:        "always_specify_types",
		Description: "Declare variables and parameters with an explicit type.",
		Details:     alwaysSpecifyTypesDetails,
		Group:       lint.GroupStyle,
		IncompatibleWith: []string{
			"omit_local_variable_types",
		},
	}
}

func (r AlwaysSpecifyTypes) Register(reg *lint.Registry, ctx *lint.Context) {
	reg.AddFormalParameterList(func(n *ast.FormalParameterList) {
		for _, p := range n.Parameters {
			if paramInfo(p).typed {
				continue
			}
			r.reportAt(ctx, nameOf(p))
		}
	})
	reg.AddForStatement(func(n *ast.ForStatement) {
		parts, ok := n.Parts.(*ast.ForEachPartsWithDeclaration)
		if !ok || parts.Loop == nil {
			return
		}
		if loopVarInfo(parts.Loop).typed {
			return
		}
		r.reportAt(ctx, parts.Loop.Ident)
	})
	reg.AddVariableDeclarationStatement(func(n *ast.VariableDeclarationStatement) {
		if n.List == nil || varListInfo(n.List).typed {
			return
		}
		// The type slot is shared, so anchor at the first declared name.
		if len(n.List.Variables) == 0 {
			return
		}
		r.reportAt(ctx, n.List.Variables[0].Ident)
	})
}

func (AlwaysSpecifyTypes) reportAt(ctx *lint.Context, name *ast.Ident) {
	if name == nil {
		return
	}
	ctx.ReportSpan(name.Span(), missingType)
}

// nameOf resolves the declared name of a parameter, unwrapping a default
// value wrapper the same way paramInfo does.
func nameOf(p ast.FormalParameter) *ast.Ident {
	if def, ok := p.(*ast.DefaultFormalParameter); ok {
		p = def.Parameter
	}
	np, ok := p.(ast.NormalFormalParameter)
	if !ok || np == nil {
		return nil
	}
	return np.Name()
}
