// Package logic implements a small formal-reasoning kernel for first-order
// logic extended with Peano arithmetic.
//
// The kernel answers one question: given a finite sequence of formulas, is
// that sequence a valid proof? It also exposes the primitive vocabulary for
// constructing such sequences programmatically: substitution, alpha
// equivalence, template matching, an axiom recognizer, and a proof builder
// with a library of derived tactics.
//
// Formulas are immutable value trees. Structural equality is alpha
// equivalence: two formulas compare equal iff one can be turned into the
// other by consistently renaming bound variables. Every node caches a hash
// that is invariant under such renaming, so equal formulas always hash
// equal.
//
// The package does no I/O and is single-threaded and purely functional
// except for ProofBuilder, whose transcript and per-call name generators are
// the only mutable state in the package. Distinct ProofBuilders share
// nothing and may be driven concurrently.
package logic
