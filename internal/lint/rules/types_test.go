package rules_test

import (
	"errors"
	"testing"

	"finlint/internal/ast"
	"finlint/internal/lint"
	"finlint/internal/lint/rules"
	"finlint/internal/testkit"
	"finlint/internal/token"
)

func TestAlwaysSpecifyTypes(t *testing.T) {
	t.Run("untyped parameter", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f(x) {}")
		unit := unitOf(t, f, "f",
			paramList(t, f, &ast.SimpleFormalParameter{Ident: f.Ident(t, "x")}))

		got := lintUnit(t, f, unit, rules.AlwaysSpecifyTypes{})
		want := "WARNING LNT1010 test.dl:1:8 Missing type annotation. (Specify the type explicitly.)"
		if got != want {
			t.Errorf("diagnostics mismatch\n got: %q\nwant: %q", got, want)
		}
	})

	t.Run("typed parameter", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f(int x) {}")
		unit := unitOf(t, f, "f", paramList(t, f, &ast.SimpleFormalParameter{
			TypeAnn: f.TypeName(t, "int"),
			Ident:   f.Ident(t, "x"),
		}))

		if got := lintUnit(t, f, unit, rules.AlwaysSpecifyTypes{}); got != "" {
			t.Errorf("unexpected diagnostics: %q", got)
		}
	})

	t.Run("untyped parameter behind default value", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f([x = 3]) {}")
		unit := unitOf(t, f, "f", paramList(t, f, &ast.DefaultFormalParameter{
			Parameter:    &ast.SimpleFormalParameter{Ident: f.Ident(t, "x")},
			DefaultValue: f.IntLit(t, "3"),
		}))

		got := lintUnit(t, f, unit, rules.AlwaysSpecifyTypes{})
		want := "WARNING LNT1010 test.dl:1:9 Missing type annotation. (Specify the type explicitly.)"
		if got != want {
			t.Errorf("diagnostics mismatch\n got: %q\nwant: %q", got, want)
		}
	})

	t.Run("untyped local anchors at first name", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f() { var x = 1, y = 2; }")
		kw := f.Tok(t, token.KwVar, "var")
		a1 := f.TokAt(t, token.Assign, "=", 1)
		a2 := f.TokAt(t, token.Assign, "=", 2)
		stmt := &ast.VariableDeclarationStatement{
			List: &ast.VariableDeclarationList{
				Keyword: &kw,
				Variables: []*ast.VariableDeclaration{
					{Ident: f.Ident(t, "x"), AssignTok: &a1, Initializer: f.IntLit(t, "1")},
					{Ident: f.Ident(t, "y"), AssignTok: &a2, Initializer: f.IntLit(t, "2")},
				},
			},
			SemicolonTok: f.Tok(t, token.Semicolon, ";"),
		}
		unit := unitOf(t, f, "f", paramList(t, f), stmt)

		got := lintUnit(t, f, unit, rules.AlwaysSpecifyTypes{})
		want := "WARNING LNT1010 test.dl:1:16 Missing type annotation. (Specify the type explicitly.)"
		if got != want {
			t.Errorf("diagnostics mismatch\n got: %q\nwant: %q", got, want)
		}
	})

	t.Run("untyped for-each declaration", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f(List items) { for (var x in items) {} }")
		kw := f.Tok(t, token.KwVar, "var")
		loop := &ast.ForStatement{
			ForTok: f.Tok(t, token.KwFor, "for"),
			Parts: &ast.ForEachPartsWithDeclaration{
				Loop:     &ast.DeclaredIdentifier{Keyword: &kw, Ident: f.Ident(t, "x")},
				InTok:    f.Tok(t, token.KwIn, "in"),
				Iterable: f.IdentAt(t, "items", 2),
			},
			Body: block(t, f),
		}
		unit := unitOf(t, f, "f",
			paramList(t, f, &ast.SimpleFormalParameter{TypeAnn: f.TypeName(t, "List"), Ident: f.Ident(t, "items")}),
			loop)

		got := lintUnit(t, f, unit, rules.AlwaysSpecifyTypes{})
		want := "WARNING LNT1010 test.dl:1:31 Missing type annotation. (Specify the type explicitly.)"
		if got != want {
			t.Errorf("diagnostics mismatch\n got: %q\nwant: %q", got, want)
		}
	})
}

func TestOmitLocalVariableTypes(t *testing.T) {
	t.Run("typed initialized local", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f() { int x = 1; }")
		assign := f.Tok(t, token.Assign, "=")
		stmt := &ast.VariableDeclarationStatement{
			List: &ast.VariableDeclarationList{
				TypeAnn: f.TypeName(t, "int"),
				Variables: []*ast.VariableDeclaration{{
					Ident:       f.Ident(t, "x"),
					AssignTok:   &assign,
					Initializer: f.IntLit(t, "1"),
				}},
			},
			SemicolonTok: f.Tok(t, token.Semicolon, ";"),
		}
		unit := unitOf(t, f, "f", paramList(t, f), stmt)

		got := lintUnit(t, f, unit, rules.OmitLocalVariableTypes{})
		want := "WARNING LNT1020 test.dl:1:12 Unnecessary type annotation. (Omit the type; it is inferred.)"
		if got != want {
			t.Errorf("diagnostics mismatch\n got: %q\nwant: %q", got, want)
		}
	})

	t.Run("typed local without initializer stays", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f() { int x; }")
		stmt := &ast.VariableDeclarationStatement{
			List: &ast.VariableDeclarationList{
				TypeAnn:   f.TypeName(t, "int"),
				Variables: []*ast.VariableDeclaration{{Ident: f.Ident(t, "x")}},
			},
			SemicolonTok: f.Tok(t, token.Semicolon, ";"),
		}
		unit := unitOf(t, f, "f", paramList(t, f), stmt)

		if got := lintUnit(t, f, unit, rules.OmitLocalVariableTypes{}); got != "" {
			t.Errorf("unexpected diagnostics: %q", got)
		}
	})

	t.Run("partially initialized list stays", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f() { int x = 1, y; }")
		assign := f.Tok(t, token.Assign, "=")
		stmt := &ast.VariableDeclarationStatement{
			List: &ast.VariableDeclarationList{
				TypeAnn: f.TypeName(t, "int"),
				Variables: []*ast.VariableDeclaration{
					{Ident: f.Ident(t, "x"), AssignTok: &assign, Initializer: f.IntLit(t, "1")},
					{Ident: f.Ident(t, "y")},
				},
			},
			SemicolonTok: f.Tok(t, token.Semicolon, ";"),
		}
		unit := unitOf(t, f, "f", paramList(t, f), stmt)

		if got := lintUnit(t, f, unit, rules.OmitLocalVariableTypes{}); got != "" {
			t.Errorf("unexpected diagnostics: %q", got)
		}
	})

	t.Run("typed for-each declaration", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f(items) { for (int x in items) {} }")
		loop := &ast.ForStatement{
			ForTok: f.Tok(t, token.KwFor, "for"),
			Parts: &ast.ForEachPartsWithDeclaration{
				Loop:     &ast.DeclaredIdentifier{TypeAnn: f.TypeName(t, "int"), Ident: f.Ident(t, "x")},
				InTok:    f.Tok(t, token.KwIn, "in"),
				Iterable: f.IdentAt(t, "items", 2),
			},
			Body: block(t, f),
		}
		unit := unitOf(t, f, "f",
			paramList(t, f, &ast.SimpleFormalParameter{Ident: f.Ident(t, "items")}),
			loop)

		got := lintUnit(t, f, unit, rules.OmitLocalVariableTypes{})
		want := "WARNING LNT1020 test.dl:1:22 Unnecessary type annotation. (Omit the type; it is inferred.)"
		if got != want {
			t.Errorf("diagnostics mismatch\n got: %q\nwant: %q", got, want)
		}
	})

	t.Run("parameter types are not locals", func(t *testing.T) {
		f := testkit.NewFixture(t, "test.dl", "void f(int x) {}")
		unit := unitOf(t, f, "f", paramList(t, f, &ast.SimpleFormalParameter{
			TypeAnn: f.TypeName(t, "int"),
			Ident:   f.Ident(t, "x"),
		}))

		if got := lintUnit(t, f, unit, rules.OmitLocalVariableTypes{}); got != "" {
			t.Errorf("unexpected diagnostics: %q", got)
		}
	})
}

func TestCatalog(t *testing.T) {
	all := rules.All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]struct{}, len(all))
	for _, r := range all {
		name := r.Info().Name
		if _, dup := seen[name]; dup {
			t.Errorf("duplicate rule name %q in catalog", name)
		}
		seen[name] = struct{}{}

		got, ok := rules.ByName(name)
		if !ok {
			t.Errorf("ByName(%q) did not find a catalog rule", name)
			continue
		}
		if got.Info().Name != name {
			t.Errorf("ByName(%q) returned rule %q", name, got.Info().Name)
		}
	}

	if _, ok := rules.ByName("no_such_rule"); ok {
		t.Error("ByName found a rule that does not exist")
	}

	// The catalog carries both type-annotation conventions, so enabling it
	// wholesale must be rejected.
	if err := lint.CheckCompatibility(all); !errors.Is(err, lint.ErrIncompatibleRules) {
		t.Errorf("CheckCompatibility(All()) = %v, want ErrIncompatibleRules", err)
	}
}
