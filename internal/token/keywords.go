package token

var keywords = map[string]Kind{
	"final": KwFinal,
	"var":   KwVar,
	"const": KwConst,
	"for":   KwFor,
	"in":    KwIn,
	"this":  KwThis,
	"super": KwSuper,
	"true":  KwTrue,
	"false": KwFalse,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
