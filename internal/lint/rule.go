package lint

import (
	"finlint/internal/diag"
)

// Group classifies a rule within the rule set.
type Group uint8

const (
	// GroupStyle collects rules that enforce a stylistic convention.
	GroupStyle Group = iota
	// GroupCorrectness collects rules that flag likely bugs.
	GroupCorrectness
)

func (g Group) String() string {
	switch g {
	case GroupStyle:
		return "style"
	case GroupCorrectness:
		return "correctness"
	}
	return "unknown"
}

// Info is a rule's fixed metadata. It is created once when the rule is
// constructed and never mutated afterwards.
type Info struct {
	// Name is the stable rule identifier, e.g. "unnecessary_final".
	Name string
	// Description is a one-line human-readable summary.
	Description string
	// Details is long-form markdown documentation, including worked
	// examples in the subject language.
	Details string
	// Group classifies the rule.
	Group Group
	// IncompatibleWith lists identifiers of rules enforcing the opposite
	// convention. Consumed by CheckCompatibility, not used during a run.
	IncompatibleWith []string
}

// Variant is one fixed diagnostic record a rule can emit: a stable code,
// a message, and a correction hint. Variants are package-level values
// chosen per occurrence, never constructed dynamically.
type Variant struct {
	Code       diag.Code
	Message    string
	Correction string
}

// Rule is one lint rule. Register subscribes the rule's callbacks for the
// node shapes it wants to observe; the framework calls each callback once
// per matching node during a run.
type Rule interface {
	Info() Info
	Register(reg *Registry, ctx *Context)
}
