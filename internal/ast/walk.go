package ast

// Inspect walks the tree rooted at n in preorder, calling f for every
// non-nil node. If f returns false, the node's children are skipped.
// Traversal order within a node follows source order.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch node := n.(type) {
	case *CompilationUnit:
		for _, d := range node.Decls {
			Inspect(d, f)
		}

	case *FunctionDeclaration:
		if node.Ident != nil {
			Inspect(node.Ident, f)
		}
		if node.Params != nil {
			Inspect(node.Params, f)
		}
		if node.Body != nil {
			Inspect(node.Body, f)
		}

	case *FormalParameterList:
		for _, p := range node.Parameters {
			Inspect(p, f)
		}

	case *DefaultFormalParameter:
		if node.Parameter != nil {
			Inspect(node.Parameter, f)
		}
		if node.DefaultValue != nil {
			Inspect(node.DefaultValue, f)
		}

	case *SimpleFormalParameter:
		inspectDeclParts(node.TypeAnn, node.Ident, f)

	case *FieldFormalParameter:
		inspectDeclParts(node.TypeAnn, node.Ident, f)

	case *SuperFormalParameter:
		inspectDeclParts(node.TypeAnn, node.Ident, f)

	case *Block:
		for _, s := range node.Stmts {
			Inspect(s, f)
		}

	case *ForStatement:
		if node.Parts != nil {
			Inspect(node.Parts, f)
		}
		if node.Body != nil {
			Inspect(node.Body, f)
		}

	case *ForEachPartsWithDeclaration:
		if node.Loop != nil {
			Inspect(node.Loop, f)
		}
		if node.Iterable != nil {
			Inspect(node.Iterable, f)
		}

	case *ForEachPartsWithIdentifier:
		if node.Ident != nil {
			Inspect(node.Ident, f)
		}
		if node.Iterable != nil {
			Inspect(node.Iterable, f)
		}

	case *ForParts:
		if node.Decls != nil {
			Inspect(node.Decls, f)
		}
		if node.Condition != nil {
			Inspect(node.Condition, f)
		}
		for _, u := range node.Updaters {
			Inspect(u, f)
		}

	case *DeclaredIdentifier:
		inspectDeclParts(node.TypeAnn, node.Ident, f)

	case *VariableDeclarationStatement:
		if node.List != nil {
			Inspect(node.List, f)
		}

	case *VariableDeclarationList:
		if node.TypeAnn != nil {
			Inspect(node.TypeAnn, f)
		}
		for _, v := range node.Variables {
			Inspect(v, f)
		}

	case *VariableDeclaration:
		if node.Ident != nil {
			Inspect(node.Ident, f)
		}
		if node.Initializer != nil {
			Inspect(node.Initializer, f)
		}

	case *ExpressionStatement:
		if node.X != nil {
			Inspect(node.X, f)
		}

	case *TypeName:
		if node.Name != nil {
			Inspect(node.Name, f)
		}

	case *Ident, *BasicLit:
		// Leaves.
	}
}

func inspectDeclParts(typeAnn *TypeName, ident *Ident, f func(Node) bool) {
	if typeAnn != nil {
		Inspect(typeAnn, f)
	}
	if ident != nil {
		Inspect(ident, f)
	}
}
