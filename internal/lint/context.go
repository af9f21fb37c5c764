package lint

import (
	"finlint/internal/diag"
	"finlint/internal/source"
	"finlint/internal/token"
)

// Context is the per-file, per-rule view handed to rule callbacks. It
// carries the file under analysis and the externally-owned sink; rules
// never construct or replace either.
type Context struct {
	File     *source.File
	Reporter diag.Reporter

	rule string
}

// NewContext binds a file and sink to one rule's name.
func NewContext(file *source.File, reporter diag.Reporter, rule string) *Context {
	return &Context{File: file, Reporter: reporter, rule: rule}
}

// Rule returns the name of the rule this context belongs to.
func (c *Context) Rule() string { return c.rule }

// ReportToken emits a finding anchored at a single token.
func (c *Context) ReportToken(tok token.Token, v Variant) {
	c.ReportSpan(tok.Span, v)
}

// ReportSpan emits a finding anchored at a span.
func (c *Context) ReportSpan(primary source.Span, v Variant) {
	if c.Reporter == nil {
		return
	}
	c.Reporter.Report(diag.Diagnostic{
		Severity:   diag.SevWarning,
		Code:       v.Code,
		Rule:       c.rule,
		Message:    v.Message,
		Correction: v.Correction,
		Primary:    primary,
	})
}
