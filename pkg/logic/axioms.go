package logic

// IsAxiom reports whether f is an axiom of first-order logic or of Peano
// arithmetic: an induction instance, a propositional tautology, a
// forall-elimination, forall-introduction, or forall-split instance, the
// reflexivity axiom, a substitution (Leibniz equality) axiom, or one of the
// six first-order Peano axioms.
func IsAxiom(f Formula) bool {
	return IsInductionAxiom(f) ||
		IsTautology(f) ||
		IsForallElimination(f) ||
		IsForallIntroduction(f) ||
		IsForallSplit(f) ||
		IsReflexivityAxiom(f) ||
		IsSubstAxiom(f) ||
		IsFirstOrderPeanoAxiom(f)
}

// isGeneralAxiom recognizes innerMatcher under any number of leading
// universal quantifiers, provided f itself has no free variables: axioms
// are closed formulae, but their quantifiers may be peeled off one at a
// time before the pattern underneath is checked.
func isGeneralAxiom(f Formula, innerMatcher func(Formula) bool) bool {
	if len(FreeVars(f)) != 0 {
		return false
	}
	for {
		if innerMatcher(f) {
			return true
		}
		fa, ok := f.(ForAll)
		if !ok {
			return false
		}
		f = fa.Body
	}
}

// IsInductionAxiom recognizes (P(0) & (forall k. P(k) => P(k+1))) => forall x. P(x).
func IsInductionAxiom(f Formula) bool {
	return isGeneralAxiom(f, isInductionAxiomImpl)
}

func isInductionAxiomImpl(f Formula) bool {
	impl, ok := f.(Implies)
	if !ok {
		return false
	}
	rhsForall, ok := impl.Q.(ForAll)
	if !ok {
		return false
	}
	lhsAnd, ok := impl.P.(And)
	if !ok {
		return false
	}
	if !Equal(lhsAnd.A, SubstituteForAll(rhsForall, NewZero())) {
		return false
	}
	inductiveStep, ok := lhsAnd.B.(ForAll)
	if !ok {
		return false
	}
	k := inductiveStep.VarName
	expected := NewForAll(k, NewImplies(
		SubstituteForAll(rhsForall, NewVar(k)),
		SubstituteForAll(rhsForall, NewSucc(NewVar(k))),
	))
	return Equal(expected, inductiveStep)
}

// IsTautology recognizes propositional tautologies built from Eq and
// ForAll atoms connected by And/Not/Implies, verified by brute-force truth
// table over every distinct toplevel atom.
func IsTautology(f Formula) bool {
	return isGeneralAxiom(f, isTautologyImpl)
}

func getToplevelPreds(f Formula, out *[]Formula) {
	switch t := f.(type) {
	case ForAll, Eq:
		*out = append(*out, f)
	case Succ:
		getToplevelPreds(t.X, out)
	case Not:
		getToplevelPreds(t.X, out)
	case Add:
		getToplevelPreds(t.A, out)
		getToplevelPreds(t.B, out)
	case And:
		getToplevelPreds(t.A, out)
		getToplevelPreds(t.B, out)
	case Implies:
		getToplevelPreds(t.P, out)
		getToplevelPreds(t.Q, out)
	}
}

func dedupeByEqual(fs []Formula) []Formula {
	var out []Formula
	for _, f := range fs {
		found := false
		for _, g := range out {
			if Equal(f, g) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, f)
		}
	}
	return out
}

func evaluateWithTruthAssignment(f Formula, preds []Formula, truth []bool) (bool, bool) {
	for i, p := range preds {
		if Equal(f, p) {
			return truth[i], true
		}
	}
	switch t := f.(type) {
	case And:
		a, ok := evaluateWithTruthAssignment(t.A, preds, truth)
		if !ok {
			return false, false
		}
		b, ok := evaluateWithTruthAssignment(t.B, preds, truth)
		if !ok {
			return false, false
		}
		return a && b, true
	case Not:
		x, ok := evaluateWithTruthAssignment(t.X, preds, truth)
		if !ok {
			return false, false
		}
		return !x, true
	case Implies:
		p, ok := evaluateWithTruthAssignment(t.P, preds, truth)
		if !ok {
			return false, false
		}
		q, ok := evaluateWithTruthAssignment(t.Q, preds, truth)
		if !ok {
			return false, false
		}
		return !p || q, true
	default:
		return false, false
	}
}

func isTautologyImpl(f Formula) bool {
	var atoms []Formula
	getToplevelPreds(f, &atoms)
	preds := dedupeByEqual(atoms)

	n := len(preds)
	for mask := 0; mask < (1 << uint(n)); mask++ {
		truth := make([]bool, n)
		for i := 0; i < n; i++ {
			truth[i] = mask&(1<<uint(i)) != 0
		}
		result, ok := evaluateWithTruthAssignment(f, preds, truth)
		if !ok {
			return false
		}
		if !result {
			return false
		}
	}
	return true
}

// IsForallElimination recognizes (forall x. P(x)) => P(k).
func IsForallElimination(f Formula) bool {
	return isGeneralAxiom(f, isForallEliminationImpl)
}

func isForallEliminationImpl(f Formula) bool {
	impl, ok := f.(Implies)
	if !ok {
		return false
	}
	fa, ok := impl.P.(ForAll)
	if !ok {
		return false
	}
	matched, _ := MatchTemplate(fa.Body, impl.Q, []string{fa.VarName}, nil)
	return matched
}

// IsForallIntroduction recognizes f => forall x. f, where x is not free in f.
func IsForallIntroduction(f Formula) bool {
	return isGeneralAxiom(f, isForallIntroductionImpl)
}

func isForallIntroductionImpl(f Formula) bool {
	impl, ok := f.(Implies)
	if !ok {
		return false
	}
	fa, ok := impl.Q.(ForAll)
	if !ok {
		return false
	}
	_, isFree := FreeVars(impl.P)[fa.VarName]
	return !isFree && Equal(fa.Body, impl.P)
}

// IsForallSplit recognizes
// (forall x. (A => B)) => ((forall x. A) => (forall x. B)).
func IsForallSplit(f Formula) bool {
	return isGeneralAxiom(f, isForallSplitImpl)
}

func isForallSplitImpl(f Formula) bool {
	impl, ok := f.(Implies)
	if !ok {
		return false
	}
	p, ok := impl.P.(ForAll)
	if !ok {
		return false
	}
	q, ok := impl.Q.(Implies)
	if !ok {
		return false
	}
	qp, ok := q.P.(ForAll)
	if !ok {
		return false
	}
	qq, ok := q.Q.(ForAll)
	if !ok {
		return false
	}
	pBody, ok := p.Body.(Implies)
	if !ok {
		return false
	}
	return Equal(NewForAll(p.VarName, pBody.P), qp) && Equal(NewForAll(p.VarName, pBody.Q), qq)
}

// IsReflexivityAxiom recognizes forall x. x = x.
func IsReflexivityAxiom(f Formula) bool {
	return isGeneralAxiom(f, isReflexivityAxiomImpl)
}

func isReflexivityAxiomImpl(f Formula) bool {
	return Equal(f, NewForAll("x", NewEq(NewVar("x"), NewVar("x"))))
}

// IsSubstAxiom recognizes x = y => (A => B), where B is A with x replaced
// by y at some (possibly empty) set of positions.
func IsSubstAxiom(f Formula) bool {
	return isGeneralAxiom(f, isSubstAxiomImpl)
}

func isSubstAxiomImpl(f Formula) bool {
	impl, ok := f.(Implies)
	if !ok {
		return false
	}
	eq, ok := impl.P.(Eq)
	if !ok {
		return false
	}
	inner, ok := impl.Q.(Implies)
	if !ok {
		return false
	}
	x, y := eq.A, eq.B
	a, b := inner.P, inner.Q

	genName := NewNameGenerator(f)
	var varnames []string
	localGenvar := func() Formula {
		name := genName()
		varnames = append(varnames, name)
		return NewVar(name)
	}

	template := ReplaceSubformulaFunc(a, x, localGenvar)

	matched, captured := MatchTemplate(template, b, varnames, nil)
	if !matched {
		return false
	}
	for _, v := range captured {
		if !Equal(v, x) && !Equal(v, y) {
			return false
		}
	}
	return true
}

type peanoAxioms struct {
	zeroIsNotSucc   Pred
	succIsInjective Pred
	xPlusZero       Pred
	xPlusSuccY      Pred
	xTimesZero      Pred
	xTimesSuccY     Pred
}

var firstOrderPeanoAxioms = genFirstOrderPeanoAxioms()

func genFirstOrderPeanoAxioms() peanoAxioms {
	x := NewVar("x")
	y := NewVar("y")
	forallx := func(body Pred) ForAll { return NewForAll("x", body) }
	forallxy := func(body Pred) ForAll { return NewForAll("x", NewForAll("y", body)) }

	return peanoAxioms{
		zeroIsNotSucc:   forallx(NewNot(NewEq(NewZero(), NewSucc(x)))),
		succIsInjective: forallxy(NewImplies(NewEq(NewSucc(x), NewSucc(y)), NewEq(x, y))),
		xPlusZero:       forallx(NewEq(NewAdd(x, NewZero()), x)),
		xPlusSuccY:      forallxy(NewEq(NewAdd(x, NewSucc(y)), NewSucc(NewAdd(x, y)))),
		xTimesZero:      forallx(NewEq(NewMul(x, NewZero()), NewZero())),
		xTimesSuccY:     forallxy(NewEq(NewMul(x, NewSucc(y)), NewAdd(NewMul(x, y), x))),
	}
}

// PeanoAxiomZeroIsNotSucc returns "forall x. 0 != S(x)".
func PeanoAxiomZeroIsNotSucc() Pred { return firstOrderPeanoAxioms.zeroIsNotSucc }

// PeanoAxiomSuccIsInjective returns "forall x, y. S(x) = S(y) => x = y".
func PeanoAxiomSuccIsInjective() Pred { return firstOrderPeanoAxioms.succIsInjective }

// PeanoAxiomXPlusZero returns "forall x. x + 0 = x".
func PeanoAxiomXPlusZero() Pred { return firstOrderPeanoAxioms.xPlusZero }

// PeanoAxiomXPlusSuccY returns "forall x, y. x + S(y) = S(x + y)".
func PeanoAxiomXPlusSuccY() Pred { return firstOrderPeanoAxioms.xPlusSuccY }

// PeanoAxiomXTimesZero returns "forall x. x * 0 = 0".
func PeanoAxiomXTimesZero() Pred { return firstOrderPeanoAxioms.xTimesZero }

// PeanoAxiomXTimesSuccY returns "forall x, y. x * S(y) = x * y + x".
func PeanoAxiomXTimesSuccY() Pred { return firstOrderPeanoAxioms.xTimesSuccY }

// IsFirstOrderPeanoAxiom reports whether f is (alpha-equivalent to) one of
// the six first-order Peano axioms.
func IsFirstOrderPeanoAxiom(f Formula) bool {
	all := [...]Pred{
		firstOrderPeanoAxioms.zeroIsNotSucc,
		firstOrderPeanoAxioms.succIsInjective,
		firstOrderPeanoAxioms.xPlusZero,
		firstOrderPeanoAxioms.xPlusSuccY,
		firstOrderPeanoAxioms.xTimesZero,
		firstOrderPeanoAxioms.xTimesSuccY,
	}
	for _, a := range all {
		if Equal(f, a) {
			return true
		}
	}
	return false
}
