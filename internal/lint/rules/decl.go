package rules

import (
	"finlint/internal/ast"
	"finlint/internal/token"
)

// declInfo is the uniform view of one declaration site. The zero value
// means "nothing declared here": not final, no qualifier token, no type.
type declInfo struct {
	final   bool
	keyword *token.Token
	typed   bool
}

// paramInfo extracts declaration facts from a single formal parameter.
// A default-value wrapper is unwrapped exactly one level before the
// underlying parameter is inspected. Shapes outside the known variants
// yield the zero value.
func paramInfo(p ast.FormalParameter) declInfo {
	if def, ok := p.(*ast.DefaultFormalParameter); ok {
		p = def.Parameter
	}
	np, ok := p.(ast.NormalFormalParameter)
	if !ok || np == nil {
		return declInfo{}
	}
	return declInfo{
		final:   np.Final(),
		keyword: np.Qualifier(),
		typed:   np.Type() != nil,
	}
}

// loopVarInfo extracts declaration facts from a for-each loop variable
// declared inline in the loop header.
func loopVarInfo(d *ast.DeclaredIdentifier) declInfo {
	if d == nil {
		return declInfo{}
	}
	return declInfo{
		final:   d.IsFinal,
		keyword: d.Keyword,
		typed:   d.TypeAnn != nil,
	}
}

// varListInfo extracts the shared declaration prefix of a variable list.
// All variables in the list share one qualifier and one optional type,
// so a list produces a single declInfo no matter how many names it binds.
func varListInfo(l *ast.VariableDeclarationList) declInfo {
	if l == nil {
		return declInfo{}
	}
	return declInfo{
		final:   l.IsFinal,
		keyword: l.Keyword,
		typed:   l.TypeAnn != nil,
	}
}
