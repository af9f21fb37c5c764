// Package testkit provides fixtures for building syntax trees over real
// source snippets in tests.
//
// The host parser is not part of this module, so tests assemble nodes by
// hand. A Fixture keeps that honest: every token is located inside an
// actual snippet registered as a virtual file, which gives hand-built
// trees real spans that resolve to real lines and columns.
package testkit

import (
	"fmt"
	"strings"
	"testing"

	"fortio.org/safecast"

	"finlint/internal/ast"
	"finlint/internal/source"
	"finlint/internal/token"
)

// Fixture is one virtual source file plus the file set it lives in.
type Fixture struct {
	FS   *source.FileSet
	File *source.File
}

// NewFixture registers src as a virtual file named name.
func NewFixture(tb testing.TB, name, src string) *Fixture {
	tb.Helper()

	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	return &Fixture{FS: fs, File: fs.Get(id)}
}

// Tok mints a token of the given kind spanning the first occurrence of
// text in the snippet.
func (f *Fixture) Tok(tb testing.TB, kind token.Kind, text string) token.Token {
	tb.Helper()
	return f.TokAt(tb, kind, text, 1)
}

// TokAt mints a token spanning the nth (1-based) occurrence of text.
func (f *Fixture) TokAt(tb testing.TB, kind token.Kind, text string, occurrence int) token.Token {
	tb.Helper()

	off, err := f.offsetOf(text, occurrence)
	if err != nil {
		tb.Fatal(err)
	}

	length, err := safecast.Conv[uint32](len(text))
	if err != nil {
		tb.Fatal(fmt.Errorf("token text length overflow: %w", err))
	}

	return token.Token{
		Kind: kind,
		Span: source.Span{File: f.File.ID, Start: off, End: off + length},
		Text: text,
	}
}

// Ident builds an identifier node at the first occurrence of name.
func (f *Fixture) Ident(tb testing.TB, name string) *ast.Ident {
	tb.Helper()
	return &ast.Ident{Tok: f.Tok(tb, token.Ident, name)}
}

// IdentAt builds an identifier node at the nth occurrence of name.
func (f *Fixture) IdentAt(tb testing.TB, name string, occurrence int) *ast.Ident {
	tb.Helper()
	return &ast.Ident{Tok: f.TokAt(tb, token.Ident, name, occurrence)}
}

// TypeName builds a type annotation node at the first occurrence of name.
func (f *Fixture) TypeName(tb testing.TB, name string) *ast.TypeName {
	tb.Helper()
	return &ast.TypeName{Name: f.Ident(tb, name)}
}

// Final mints the 'final' qualifier token at the nth occurrence.
func (f *Fixture) Final(tb testing.TB, occurrence int) token.Token {
	tb.Helper()
	return f.TokAt(tb, token.KwFinal, "final", occurrence)
}

// IntLit builds an integer literal node at the first occurrence of text.
func (f *Fixture) IntLit(tb testing.TB, text string) *ast.BasicLit {
	tb.Helper()
	return &ast.BasicLit{Tok: f.Tok(tb, token.IntLit, text)}
}

func (f *Fixture) offsetOf(text string, occurrence int) (uint32, error) {
	if occurrence < 1 {
		return 0, fmt.Errorf("occurrence must be 1-based, got %d", occurrence)
	}

	src := string(f.File.Content)
	idx := -1
	from := 0
	for k := 0; k < occurrence; k++ {
		next := strings.Index(src[from:], text)
		if next < 0 {
			return 0, fmt.Errorf("occurrence %d of %q not found in %s", occurrence, text, f.File.Path)
		}
		idx = from + next
		from = idx + 1
	}

	off, err := safecast.Conv[uint32](idx)
	if err != nil {
		return 0, fmt.Errorf("offset overflow: %w", err)
	}
	return off, nil
}
