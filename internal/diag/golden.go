package diag

import (
	"fmt"
	"sort"
	"strings"

	"finlint/internal/source"
)

type goldenDiagnostic struct {
	Severity   string
	Code       string
	Path       string
	Line       uint32
	Column     uint32
	Message    string
	Correction string
}

// FormatGoldenDiagnostics renders diagnostics into a stable,
// one-line-per-entry representation suitable for golden comparisons in
// tests. Entries are sorted by path, position, severity, code, and
// message. Corrections are appended in parentheses when present.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		loc, ok := fs.Resolve(d.Primary)
		if !ok {
			continue
		}
		rendered = append(rendered, goldenDiagnostic{
			Severity:   d.Severity.String(),
			Code:       d.Code.ID(),
			Path:       loc.Path,
			Line:       loc.Line,
			Column:     loc.Col,
			Message:    sanitizeMessage(d.Message),
			Correction: sanitizeMessage(d.Correction),
		})
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if d.Correction != "" {
			fmt.Fprintf(&b, " (%s)", d.Correction)
		}
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// sanitizeMessage keeps golden entries single-line.
func sanitizeMessage(msg string) string {
	if !strings.ContainsAny(msg, "\r\n") {
		return msg
	}
	msg = strings.ReplaceAll(msg, "\r\n", " ")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.ReplaceAll(msg, "\r", " ")
}
