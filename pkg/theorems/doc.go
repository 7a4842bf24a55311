// Package theorems is a client of pkg/logic: it assembles proofs of a
// handful of concrete arithmetic facts (commutativity of addition, 1 < 2,
// and the lemmas those proofs lean on) using nothing but the generic
// tactics ProofBuilder exposes. None of this package's logic belongs in
// the kernel itself — it is exactly the kind of external, theorem-specific
// code pkg/logic is meant to support without knowing about.
package theorems
