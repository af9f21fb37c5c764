package diag

import (
	"finlint/internal/source"
)

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one immutable finding. Correction is a human-readable
// hint describing how to resolve the finding; it is advisory text, not a
// machine-applicable edit.
type Diagnostic struct {
	Severity   Severity
	Code       Code
	Rule       string // name of the rule that produced the finding
	Message    string
	Correction string
	Primary    source.Span
	Notes      []Note
}
