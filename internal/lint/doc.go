// Package lint is the rule framework: it defines what a rule is, how a
// rule subscribes to syntax-tree shapes, and how a run dispatches matching
// nodes to subscribers.
//
// A rule is a stateless bundle of fixed metadata plus callbacks. During a
// run the framework walks each compilation unit once and invokes every
// callback registered for the node's shape, in registration order. Rules
// hold no state across callbacks and never retain nodes, so a host may
// run independent files concurrently as long as the shared sink is safe
// for concurrent writes (see Runner).
package lint
