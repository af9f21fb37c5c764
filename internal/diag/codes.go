package diag

import (
	"fmt"
)

// Code identifies one fixed diagnostic record. Codes are stable: a rule
// variant keeps its code across releases.
type Code uint16

const (
	// UnknownCode is the zero placeholder.
	UnknownCode Code = 0

	// Finality style (1000-1009).

	// UnnecessaryFinalWithType flags a 'final' qualifier on a declaration
	// that already carries an explicit type annotation.
	UnnecessaryFinalWithType Code = 1000
	// UnnecessaryFinalWithoutType flags a 'final' qualifier on a
	// declaration without an explicit type annotation.
	UnnecessaryFinalWithoutType Code = 1001

	// Type annotation style (1010-1029).

	// MissingTypeAnnotation flags a declaration without an explicit type.
	MissingTypeAnnotation Code = 1010
	// RedundantTypeAnnotation flags an explicit type on a local
	// declaration whose initializer makes the type inferable.
	RedundantTypeAnnotation Code = 1020
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	UnnecessaryFinalWithType:    "unnecessary 'final' on a typed declaration",
	UnnecessaryFinalWithoutType: "unnecessary 'final' on an untyped declaration",
	MissingTypeAnnotation:       "missing type annotation",
	RedundantTypeAnnotation:     "redundant type annotation",
}

// ID renders the stable textual form of the code, e.g. "LNT1000".
func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("LNT%04d", ic)
	}
	return "E0000"
}

// Title returns the short human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
