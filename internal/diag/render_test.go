package diag

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"finlint/internal/source"
)

func TestRenderUnderlinesSpan(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	fs := source.NewFileSet()
	id := fs.AddVirtual("a.dl", []byte("final x = 1;\n"))

	var b strings.Builder
	Render(&b, fs, Diagnostic{
		Severity:   SevWarning,
		Code:       UnnecessaryFinalWithoutType,
		Message:    "unnecessary use of 'final'",
		Correction: "replace 'final' with 'var'",
		Primary:    source.Span{File: id, Start: 0, End: 5},
	})

	out := b.String()
	if !strings.Contains(out, "a.dl:1:1: unnecessary use of 'final'") {
		t.Errorf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "   1 | final x = 1;") {
		t.Errorf("missing source line in:\n%s", out)
	}
	if !strings.Contains(out, "^^^^^ replace 'final' with 'var'") {
		t.Errorf("missing underline with correction in:\n%s", out)
	}
}

func TestRenderUnknownFile(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	fs := source.NewFileSet()

	var b strings.Builder
	Render(&b, fs, Diagnostic{
		Severity: SevError,
		Code:     UnknownCode,
		Message:  "boom",
		Primary:  source.Span{File: 9},
	})

	if !strings.Contains(b.String(), "boom") {
		t.Errorf("fallback rendering lost the message: %q", b.String())
	}
}
