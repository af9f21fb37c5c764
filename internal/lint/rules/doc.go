// Package rules contains the built-in lint rules.
//
// Each rule is a stateless value: fixed metadata plus pure check-and-report
// callbacks. The shared extraction helpers in decl.go give every rule the
// same three-field view of a declaration site (qualifier flag, qualifier
// token, explicit type), regardless of the concrete shape it came from.
package rules
