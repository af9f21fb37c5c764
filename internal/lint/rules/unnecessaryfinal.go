package rules

import (
	"finlint/internal/ast"
	"finlint/internal/diag"
	"finlint/internal/lint"
)

const unnecessaryFinalDetails = `Local variables, loop variables, and parameters are short-lived
bindings whose whole lifetime is visible at the use site. Marking them
immutable adds a keyword without adding information, so the qualifier
should be dropped: keep the explicit type when one is written, and fall
back to 'var' when the declaration would otherwise lose its keyword.

**BAD:**

    void describe(final String label) {
      for (final part in label.split(' ')) {
        final String trimmed = part.trim();
        final count = trimmed.length;
      }
    }

**GOOD:**

    void describe(String label) {
      for (var part in label.split(' ')) {
        String trimmed = part.trim();
        var count = trimmed.length;
      }
    }
`

// Diagnostic variants for UnnecessaryFinal. The correction depends on
// whether an explicit type remains once the qualifier is removed.
var (
	finalWithType = lint.Variant{
		Code:       diag.UnnecessaryFinalWithType,
		Message:    "Unnecessary use of 'final'.",
		Correction: "Remove the unnecessary 'final'.",
	}
	finalWithoutType = lint.Variant{
		Code:       diag.UnnecessaryFinalWithoutType,
		Message:    "Unnecessary use of 'final'.",
		Correction: "Replace 'final' with 'var'.",
	}
)

func finalVariant(typed bool) lint.Variant {
	if typed {
		return finalWithType
	}
	return finalWithoutType
}

// UnnecessaryFinal flags the immutability qualifier on local variables,
// inline for-each loop variables, and parameters.
type UnnecessaryFinal struct{}

func (UnnecessaryFinal) Info() lint.Info {
	return lint.Info{
		Name:        "unnecessary_final",
		Description: "Local variables and parameters should not be declared 'final'.",
		Details:     unnecessaryFinalDetails,
		Group:       lint.GroupStyle,
		IncompatibleWith: []string{
			"prefer_final_locals",
			"prefer_final_parameters",
			"prefer_final_in_for_each",
		},
	}
}

func (r UnnecessaryFinal) Register(reg *lint.Registry, ctx *lint.Context) {
	reg.AddFormalParameterList(func(n *ast.FormalParameterList) {
		r.checkParameters(ctx, n)
	})
	reg.AddForStatement(func(n *ast.ForStatement) {
		r.checkForStatement(ctx, n)
	})
	reg.AddVariableDeclarationStatement(func(n *ast.VariableDeclarationStatement) {
		r.checkVariables(ctx, n)
	})
}

func (UnnecessaryFinal) checkParameters(ctx *lint.Context, list *ast.FormalParameterList) {
	for _, p := range list.Parameters {
		report(ctx, paramInfo(p))
	}
}

func (UnnecessaryFinal) checkForStatement(ctx *lint.Context, n *ast.ForStatement) {
	// Only the inline-declaration for-each header declares anything.
	// Identifier headers reuse an existing binding and counted loops are
	// checked through their declaration statement, if any.
	parts, ok := n.Parts.(*ast.ForEachPartsWithDeclaration)
	if !ok {
		return
	}
	report(ctx, loopVarInfo(parts.Loop))
}

func (UnnecessaryFinal) checkVariables(ctx *lint.Context, n *ast.VariableDeclarationStatement) {
	// One qualifier per list, so one finding per statement regardless of
	// how many names it co-declares.
	report(ctx, varListInfo(n.List))
}

// report emits the appropriate variant for one declaration site, anchored
// at the qualifier token. A final declaration without a keyword token has
// nothing to point at and is skipped.
func report(ctx *lint.Context, info declInfo) {
	if !info.final || info.keyword == nil {
		return
	}
	ctx.ReportToken(*info.keyword, finalVariant(info.typed))
}
