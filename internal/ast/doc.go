// Package ast defines the syntax-tree shapes the lint rules observe.
//
// Nodes are read-only views produced by the host front end; the linter
// borrows them for the duration of one callback and never retains them.
// Each closed node family (formal parameters, for-loop headers) is a sealed
// interface: the variants live in this package and outside packages cannot
// add new ones, so a type switch over a family is exhaustive.
//
// A declaration's immutability is carried twice on purpose: as a Final flag
// and as the concrete qualifier token. A malformed tree may set the flag
// without an addressable token; rules treat that as "nothing to anchor at"
// and stay silent.
package ast
