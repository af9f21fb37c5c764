package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwFinal represents the 'final' qualifier keyword.
	KwFinal // final
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a string literal token.
	StringLit

	// Assign represents the '=' token.
	Assign // =
	// Comma represents the ',' token.
	Comma // ,
	// Semicolon represents the ';' token.
	Semicolon // ;
	// Dot represents the '.' token.
	Dot // .
	// LParen represents the '(' token.
	LParen // (
	// RParen represents the ')' token.
	RParen // )
	// LBrace represents the '{' token.
	LBrace // {
	// RBrace represents the '}' token.
	RBrace // }
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	KwFinal:   "final",
	KwVar:     "var",
	KwConst:   "const",
	KwFor:     "for",
	KwIn:      "in",
	KwThis:    "this",
	KwSuper:   "super",
	KwTrue:    "true",
	KwFalse:   "false",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	Assign:    "=",
	Comma:     ",",
	Semicolon: ";",
	Dot:       ".",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
