// Package graph is the core in-memory relation tracker: entity interning,
// per-destination incoming-relation indexes, and the per-type top-K
// destination index that the dispatcher keeps incrementally consistent
// across addrel, delrel, and delent.
//
// Everything in this package is single-threaded by design: a *Graph is
// meant to be driven by one command loop and passed around explicitly,
// never held as a package-level singleton or guarded by a mutex. There is
// no cancellation or suspension inside any operation here; each runs to
// completion.
package graph
