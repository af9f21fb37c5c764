package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"finlint/internal/source"
)

var (
	infoColor    = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	codeColor    = color.New(color.Faint)
)

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Render writes a human-readable view of one diagnostic: a header line,
// the offending source line with an underline, and the correction hint.
// Color output follows the fatih/color global settings, so callers control
// it via color.NoColor.
func Render(w io.Writer, fs *source.FileSet, d Diagnostic) {
	loc, ok := fs.Resolve(d.Primary)
	if !ok {
		fmt.Fprintf(w, "%s %s %s\n", severityColor(d.Severity).Sprint(d.Severity.String()), codeColor.Sprintf("[%s]", d.Code.ID()), d.Message)
		return
	}

	fmt.Fprintf(w, "%s %s %s:%d:%d: %s\n",
		severityColor(d.Severity).Sprint(d.Severity.String()),
		codeColor.Sprintf("[%s]", d.Code.ID()),
		loc.Path, loc.Line, loc.Col, d.Message)

	f := fs.Get(d.Primary.File)
	lineText, ok := f.Line(loc.Line)
	if !ok {
		return
	}

	gutter := fmt.Sprintf("%4d | ", loc.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, lineText)

	pad := renderedWidth(lineText, loc.Col-1)
	underline := underlineWidth(lineText, loc.Col-1, d.Primary.Len())
	fmt.Fprintf(w, "%s | %s%s",
		strings.Repeat(" ", 4),
		strings.Repeat(" ", pad),
		severityColor(d.Severity).Sprint(strings.Repeat("^", underline)))

	if d.Correction != "" {
		fmt.Fprintf(w, " %s", d.Correction)
	}
	fmt.Fprintln(w)
}

// renderedWidth returns the display width of the first n bytes of line,
// accounting for wide runes.
func renderedWidth(line []byte, n uint32) int {
	if int(n) > len(line) {
		n = uint32(len(line))
	}
	return runewidth.StringWidth(string(line[:n]))
}

// underlineWidth returns the display width of the span's text on this
// line, clamped to the line end and never below one caret.
func underlineWidth(line []byte, start, length uint32) int {
	if int(start) >= len(line) {
		return 1
	}
	end := start + length
	if int(end) > len(line) {
		end = uint32(len(line))
	}
	w := runewidth.StringWidth(string(line[start:end]))
	if w < 1 {
		w = 1
	}
	return w
}
