package rules

import "finlint/internal/lint"

// All returns the full rule catalog as a fresh slice. The catalog is not
// an enabled set: it carries mutually incompatible rules, and callers
// select a consistent subset before running.
func All() []lint.Rule {
	return []lint.Rule{
		UnnecessaryFinal{},
		AlwaysSpecifyTypes{},
		OmitLocalVariableTypes{},
	}
}

// ByName looks a rule up in the catalog by its stable identifier.
func ByName(name string) (lint.Rule, bool) {
	for _, r := range All() {
		if r.Info().Name == name {
			return r, true
		}
	}
	return nil, false
}
