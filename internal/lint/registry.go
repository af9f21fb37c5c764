package lint

import (
	"finlint/internal/ast"
)

// Registry holds the node-shape subscriptions for one run. Rules add
// their callbacks in Register; the walk dispatches each matching node to
// every subscriber in registration order.
type Registry struct {
	formalParameterList          []func(*ast.FormalParameterList)
	forStatement                 []func(*ast.ForStatement)
	variableDeclarationStatement []func(*ast.VariableDeclarationStatement)
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddFormalParameterList subscribes to formal parameter lists.
func (r *Registry) AddFormalParameterList(fn func(*ast.FormalParameterList)) {
	r.formalParameterList = append(r.formalParameterList, fn)
}

// AddForStatement subscribes to for statements of any header shape.
func (r *Registry) AddForStatement(fn func(*ast.ForStatement)) {
	r.forStatement = append(r.forStatement, fn)
}

// AddVariableDeclarationStatement subscribes to local variable
// declaration statements.
func (r *Registry) AddVariableDeclarationStatement(fn func(*ast.VariableDeclarationStatement)) {
	r.variableDeclarationStatement = append(r.variableDeclarationStatement, fn)
}

// walk traverses the unit once, dispatching matching nodes.
func (r *Registry) walk(unit *ast.CompilationUnit) {
	ast.Inspect(unit, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.FormalParameterList:
			for _, fn := range r.formalParameterList {
				fn(node)
			}
		case *ast.ForStatement:
			for _, fn := range r.forStatement {
				fn(node)
			}
		case *ast.VariableDeclarationStatement:
			for _, fn := range r.variableDeclarationStatement {
				fn(node)
			}
		}
		return true
	})
}
