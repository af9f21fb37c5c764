// Package diag defines the diagnostic records lint rules emit and the
// Reporter sinks that collect them.
//
// Rules never construct a sink themselves; the runner owns it. Every
// Reporter implementation here (Bag, Dedup, Sync, Multi, Nop) forwards
// immutable Diagnostic values, so a rule invocation stays side-effect-free
// apart from the records it hands over.
package diag
