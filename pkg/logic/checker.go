package logic

import "fmt"

// ProofStep is one line of a Proof: either a Formula to be justified, or a
// Comment carrying a human-readable annotation that doesn't itself require
// justification.
type ProofStep interface {
	proofStep()
}

// Comment is a proof annotation. CheckProof skips over comments when
// validating a proof, but reports the most recent preceding comment in an
// InvalidProofError to help narrow down the mistake.
type Comment string

func (Comment) proofStep() {}

// formulaStep wraps a Formula so it implements ProofStep.
type formulaStep struct{ f Formula }

func (formulaStep) proofStep() {}

// Step wraps f as a ProofStep.
func Step(f Formula) ProofStep { return formulaStep{f} }

// Proof is an ordered sequence of proof steps.
type Proof []ProofStep

// InvalidProofError reports the first step of a Proof that is neither an
// axiom nor derivable by modus ponens from earlier valid steps.
type InvalidProofError struct {
	InvalidFormula    Formula
	InvalidFormulaIdx int
	LastComment       *Comment
}

func (e *InvalidProofError) Error() string {
	lastComment := "<none>"
	if e.LastComment != nil {
		lastComment = string(*e.LastComment)
	}
	return fmt.Sprintf(
		"proof not valid: error at step number %d, last comment: %s\n\nInvalid formula: %s",
		e.InvalidFormulaIdx, lastComment, e.InvalidFormula.String(),
	)
}

func previousComment(proof Proof, idx int) *Comment {
	for i := idx; i >= 0; i-- {
		if c, ok := proof[i].(Comment); ok {
			return &c
		}
	}
	return nil
}

// validFormulaSet is a set of Formula keyed by alpha-equivalence, since two
// proof steps that are alpha-equivalent but not byte-identical justify one
// another just as well.
type validFormulaSet struct {
	byHash map[uint64][]Formula
}

func newValidFormulaSet() *validFormulaSet {
	return &validFormulaSet{byHash: make(map[uint64][]Formula)}
}

func (s *validFormulaSet) add(f Formula) {
	h := f.hash()
	for _, g := range s.byHash[h] {
		if Equal(f, g) {
			return
		}
	}
	s.byHash[h] = append(s.byHash[h], f)
}

func (s *validFormulaSet) contains(f Formula) bool {
	for _, g := range s.byHash[f.hash()] {
		if Equal(f, g) {
			return true
		}
	}
	return false
}

// implicationSet tracks, for each consequent Q seen so far as the Q of some
// proved "P => Q" step, the set of antecedents P that were paired with it.
type implicationSet struct {
	byHash map[uint64][]struct {
		q       Formula
		anteced []Formula
	}
}

func newImplicationSet() *implicationSet {
	return &implicationSet{byHash: make(map[uint64][]struct {
		q       Formula
		anteced []Formula
	})}
}

func (s *implicationSet) add(p, q Formula) {
	h := q.hash()
	bucket := s.byHash[h]
	for i := range bucket {
		if Equal(bucket[i].q, q) {
			bucket[i].anteced = append(bucket[i].anteced, p)
			s.byHash[h] = bucket
			return
		}
	}
	s.byHash[h] = append(bucket, struct {
		q       Formula
		anteced []Formula
	}{q: q, anteced: []Formula{p}})
}

func (s *implicationSet) antecedentsOf(q Formula) ([]Formula, bool) {
	for _, entry := range s.byHash[q.hash()] {
		if Equal(entry.q, q) {
			return entry.anteced, true
		}
	}
	return nil, false
}

// CheckProof validates proof: every non-comment step must be an axiom, or
// the consequent Q of an earlier valid step "P => Q" whose antecedent P is
// itself an earlier valid step (modus ponens). It returns an *InvalidProofError
// describing the first invalid step, or nil if proof is valid.
func CheckProof(proof Proof) error {
	implications := newImplicationSet()
	validFormulae := newValidFormulaSet()

	for idx, step := range proof {
		comment, isComment := step.(Comment)
		if isComment {
			_ = comment
			continue
		}
		formula := step.(formulaStep).f

		ok := IsAxiom(formula)
		if !ok {
			if antecedents, found := implications.antecedentsOf(formula); found {
				for _, ant := range antecedents {
					if validFormulae.contains(ant) {
						ok = true
						break
					}
				}
			}
		}

		if !ok {
			return &InvalidProofError{
				InvalidFormula:    formula,
				InvalidFormulaIdx: idx,
				LastComment:       previousComment(proof, idx),
			}
		}

		validFormulae.add(formula)

		if impl, isImpl := formula.(Implies); isImpl {
			implications.add(impl.P, impl.Q)
		}
	}

	return nil
}
