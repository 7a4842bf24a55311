package logic

import (
	"strconv"
	"strings"
)

// ProofBuilder is a stateful helper for constructing formal proofs one step
// at a time. Its tactics correspond to common patterns of axiom
// application (splitting a universally quantified implication, flipping an
// equality, chaining implications) so that callers assembling a theorem
// don't have to spell out every intermediate axiom instance by hand.
//
// A ProofBuilder is not safe for concurrent use; build one proof per
// goroutine.
type ProofBuilder struct {
	proof              Proof
	provedEqSymmetric  bool
	provedEqTransitive bool
	checkEachStep      bool
}

// NewProofBuilder returns an empty ProofBuilder. If checkEachStep is true,
// every call to P re-validates the proof so far and panics immediately if
// a tactic produced an invalid step, which is useful when developing a new
// tactic but too slow for routine use.
func NewProofBuilder(checkEachStep bool) *ProofBuilder {
	return &ProofBuilder{checkEachStep: checkEachStep}
}

// P appends f to the proof and returns it, so tactics can write
// `x := b.P(someFormula)` and keep going.
func (b *ProofBuilder) P(f Pred) Pred {
	b.proof = append(b.proof, Step(f))
	if b.checkEachStep {
		if err := CheckProof(b.proof); err != nil {
			panic("logic: ProofBuilder produced an invalid step: " + err.Error())
		}
	}
	return f
}

// Comment appends a comment to the proof, to be surfaced by CheckProof's
// InvalidProofError if a later step fails.
func (b *ProofBuilder) Comment(text string) {
	b.proof = append(b.proof, Comment(text))
}

// Proof returns the accumulated proof.
func (b *ProofBuilder) Proof() Proof { return b.proof }

// String renders the proof as one numbered line per formula step.
func (b *ProofBuilder) String() string {
	var sb strings.Builder
	n := 0
	for _, step := range b.proof {
		if f, ok := step.(formulaStep); ok {
			if n > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(strconv.Itoa(n))
			sb.WriteString(". ")
			sb.WriteString(f.f.String())
			n++
		}
	}
	return sb.String()
}

// LastFormula returns the most recently proved formula, or nil if none has
// been added yet.
func (b *ProofBuilder) LastFormula() Formula {
	for i := len(b.proof) - 1; i >= 0; i-- {
		if f, ok := b.proof[i].(formulaStep); ok {
			return f.f
		}
	}
	return nil
}

// AssertProved panics unless the last proved formula is alpha-equivalent
// to want. It does not itself verify that the proof so far is correct;
// that is CheckProof's job.
func (b *ProofBuilder) AssertProved(want Formula) {
	got := b.LastFormula()
	if got == nil || !Equal(got, want) {
		panic("logic: expected to have just proved " + want.String() + ", but last step was " + formulaOrNone(got))
	}
}

func formulaOrNone(f Formula) string {
	if f == nil {
		return "<nothing proved yet>"
	}
	return f.String()
}

// SimplifyProof removes formula steps that duplicate an earlier step
// (comparing by alpha-equivalence) and comments that repeat an earlier
// comment's text, and reports how many steps of either kind were removed.
func (b *ProofBuilder) SimplifyProof() int {
	seen := newValidFormulaSet()
	seenComments := make(map[Comment]struct{})
	var out Proof
	removed := 0
	for _, step := range b.proof {
		switch s := step.(type) {
		case formulaStep:
			if seen.contains(s.f) {
				removed++
				continue
			}
			seen.add(s.f)
			out = append(out, step)
		case Comment:
			if _, ok := seenComments[s]; ok {
				removed++
				continue
			}
			seenComments[s] = struct{}{}
			out = append(out, step)
		}
	}
	b.proof = out
	return removed
}

// ImmediatelyImplies proves formulae[0] => formulae[1] => ... given that
// every formulae[i] but the last has already been proved and the chained implication is
// itself an axiom (typically forall-split or a Peano axiom instance). It
// adds the full chain, then peels the head off step by step, returning the
// final consequent.
func (b *ProofBuilder) ImmediatelyImplies(formulae ...Pred) Pred {
	if len(formulae) == 1 {
		last := b.LastFormula()
		if last == nil {
			panic("logic: ImmediatelyImplies called with one argument but nothing proved yet")
		}
		formulae = append([]Pred{last.(Pred)}, formulae...)
	}
	b.P(ImpliesN(formulae...))
	if len(formulae) > 2 {
		return b.ImmediatelyImplies(formulae[1:]...)
	}
	return b.P(formulae[1])
}

func asForAll(f Formula, what string) ForAll {
	fa, ok := f.(ForAll)
	if !ok {
		panic("logic: expected " + what + " to be a ForAll")
	}
	return fa
}

func asImplies(f Formula, what string) Implies {
	i, ok := f.(Implies)
	if !ok {
		panic("logic: expected " + what + " to be an Implies")
	}
	return i
}

func asAnd(f Formula, what string) And {
	a, ok := f.(And)
	if !ok {
		panic("logic: expected " + what + " to be an And")
	}
	return a
}

func asEq(f Formula, what string) Eq {
	e, ok := f.(Eq)
	if !ok {
		panic("logic: expected " + what + " to be an Eq")
	}
	return e
}

func (b *ProofBuilder) forallXSplit(forall ForAll) Pred {
	body := asImplies(forall.Body, "forall.body")
	forallx := func(p Pred) ForAll { return NewForAll(forall.VarName, p) }
	return b.P(ImpliesN(forall, forallx(body.P), forallx(body.Q)))
}

func (b *ProofBuilder) forallXYSplit(forall ForAll) Pred {
	inner := asForAll(forall.Body, "forall.body")
	body := asImplies(inner.Body, "forall.body.body")

	forallx := func(p Pred) ForAll { return NewForAll(forall.VarName, p) }
	forally := func(p Pred) ForAll { return NewForAll(inner.VarName, p) }
	forallxy := func(p Pred) ForAll { return forallx(forally(p)) }

	P, Q := body.P, body.Q

	A := Pred(forall)
	Bc := Pred(forallxy(P))
	C := Pred(forallxy(Q))
	D := forallx(ImpliesN(forally(NewImplies(P, Q)), forally(P), forally(Q)))
	E := forallx(ImpliesN(forally(P), forally(Q)))

	ABC := ImpliesN(A, Bc, C)

	b.P(D)
	b.P(ImpliesN(D, A, E))
	AE := b.P(ImpliesN(A, E))
	EBC := b.P(ImpliesN(E, Bc, C))
	return b.immediatelyImpliesTriple(AE, EBC, ABC)
}

// immediatelyImpliesTriple mirrors immediately_implies(A_E, E_B_C, A_B_C):
// it proves A_E => E_B_C => A_B_C is an axiom and derives A_B_C.
func (b *ProofBuilder) immediatelyImpliesTriple(ae, ebc, abc Pred) Pred {
	return b.ImmediatelyImplies(ae, ebc, abc)
}

func (b *ProofBuilder) forallXYZSplit(forall ForAll) Pred {
	innerY := asForAll(forall.Body, "forall.body")
	innerZ := asForAll(innerY.Body, "forall.body.body")
	body := asImplies(innerZ.Body, "forall.body.body.body")

	forallx := func(p Pred) ForAll { return NewForAll(forall.VarName, p) }
	forally := func(p Pred) ForAll { return NewForAll(innerY.VarName, p) }
	forallz := func(p Pred) ForAll { return NewForAll(innerZ.VarName, p) }
	forallxy := func(p Pred) ForAll { return forallx(forally(p)) }
	forallxyz := func(p Pred) ForAll { return forallx(forally(forallz(p))) }

	P, Q := body.P, body.Q

	A := Pred(forall)
	Bc := Pred(forallxyz(P))
	C := Pred(forallxyz(Q))
	ABC := ImpliesN(A, Bc, C)

	fzPQ := forallz(NewImplies(P, Q))
	fzPfzQ := NewImplies(forallz(P), forallz(Q))
	if !Equal(forallxy(fzPQ), A) {
		panic("logic: forallXYZSplit invariant violated")
	}

	b.P(forallxy(NewImplies(fzPQ, fzPfzQ)))

	X := b.ForallSplit("high", nil)
	b.AssertProved(forallxy(fzPfzQ))

	Y := b.ForallSplit("med", nil)
	b.AssertProved(NewImplies(forallxyz(P), forallxyz(Q)))

	return b.immediatelyImpliesTriple(X, Y, ABC)
}

// ForallSplit applies the forall-split tactic to forall (or, if forall is
// nil, to the last proved formula), which must be of the form
// "forall x[, y[, z]]. P => Q". Depending on resolutionLevel:
//
//   - "high": proves "forall x. Q", assuming "forall x. P" has been proved.
//   - "med": proves "forall x. P => forall x. Q".
//   - "low": proves "(forall x. P => Q) => (forall x. P => forall x. Q)".
//
// Works for one, two, or three quantifiers.
func (b *ProofBuilder) ForallSplit(resolutionLevel string, forall *ForAll) Pred {
	var fa ForAll
	if forall != nil {
		fa = *forall
	} else {
		fa = asForAll(b.LastFormula(), "last formula")
	}

	numLevels := 0
	var cur Formula = fa
	for {
		inner, ok := cur.(ForAll)
		if !ok {
			break
		}
		cur = inner.Body
		numLevels++
	}
	if numLevels < 1 || numLevels > 3 {
		panic("logic: ForallSplit only supports one, two, or three quantifiers")
	}
	if resolutionLevel != "low" && resolutionLevel != "med" && resolutionLevel != "high" {
		panic("logic: ForallSplit resolutionLevel must be low, med, or high")
	}

	var prop Pred
	switch numLevels {
	case 1:
		prop = b.forallXSplit(fa)
	case 2:
		prop = b.forallXYSplit(fa)
	default:
		prop = b.forallXYZSplit(fa)
	}

	if resolutionLevel == "low" {
		return b.LastFormula().(Pred)
	}

	propImpl := asImplies(prop, "forall-split result")
	b.P(propImpl.Q)

	if resolutionLevel == "med" {
		return b.LastFormula().(Pred)
	}

	return b.P(asImplies(propImpl.Q, "forall-split result.q").Q)
}

// ProveEqIsSymmetric proves forall x, y. x = y => y = x. Only the first
// call on a builder adds steps; later calls add nothing and return nil.
func (b *ProofBuilder) ProveEqIsSymmetric() Pred {
	if b.provedEqSymmetric {
		return nil
	}
	b.provedEqSymmetric = true

	v := GetCachedVars()
	x, y := Term(v.V("x")), Term(v.V("y"))

	theorem := ForAllN([]string{"x", "y"}, NewImplies(NewEq(x, y), NewEq(y, x)))

	xx := NewEq(x, x)
	xy := NewEq(x, y)
	yx := NewEq(y, x)

	b.P(ForAllN([]string{"x", "y"}, NewImplies(
		ImpliesN(xy, xx, yx),
		ImpliesN(xx, xy, yx),
	)))

	b.ForallSplit("med", nil)
	b.P(ForAllN([]string{"x", "y"}, ImpliesN(xy, xx, yx))) // subst axiom
	b.P(ForAllN([]string{"x", "y"}, ImpliesN(xx, xy, yx)))

	b.ForallSplit("med", nil)
	b.P(ForAllN([]string{"y", "x"}, xx))
	b.FlipXYOrderInForall(nil)
	return b.P(theorem)
}

// FlipEquality proves "forall ... G = F" given that "forall ... F = G" (eq,
// or the last proved formula if eq is nil) has already been proved.
func (b *ProofBuilder) FlipEquality(eq Formula) Pred {
	if eq == nil {
		eq = b.LastFormula()
	}

	var varlist []string
	cur := eq
	for {
		fa, ok := cur.(ForAll)
		if !ok {
			break
		}
		varlist = append(varlist, fa.VarName)
		cur = fa.Body
	}
	if len(varlist) == 0 {
		panic("logic: FlipEquality requires at least one quantifier")
	}
	innerEq := asEq(cur, "flip-equality body")
	F, G := innerEq.A, innerEq.B

	forallOuter := func(body Pred) Pred { return ForAllN(varlist, body) }

	avail := availableLetters(varlist, nil)
	vx, vy := avail[0], avail[1]
	forallxy := func(body Pred) Pred { return ForAllN([]string{vx, vy}, body) }

	b.ProveEqIsSymmetric()

	symmetricAxiom := b.P(forallxy(NewImplies(NewEq(NewVar(vx), NewVar(vy)), NewEq(NewVar(vy), NewVar(vx)))))

	wrapped := symmetricAxiom
	for i := len(varlist) - 1; i >= 0; i-- {
		vn := varlist[i]
		newWrapped := NewForAll(vn, wrapped)
		b.ImmediatelyImplies(newWrapped.Body.(Pred), newWrapped)
		wrapped = newWrapped
	}

	substF := SubstituteForAll(symmetricAxiom.(ForAll), F)
	substFG := SubstituteForAll(substF.(ForAll), G)

	b.P(forallOuter(NewImplies(symmetricAxiom, substF)))
	b.ForallSplit("high", nil)

	b.P(forallOuter(NewImplies(substF, substFG)))
	b.ForallSplit("high", nil)
	return b.ForallSplit("high", nil)
}

// availableLetters returns, in order, the candidate names that are not in
// used. The candidates are preferred when it is non-empty, and the lowercase
// letters a..z otherwise (mirrors the Python helper's
// "sorted(set(candidates) - set(used))" idiom).
func availableLetters(used []string, preferred []string) []string {
	isUsed := make(map[string]struct{}, len(used))
	for _, u := range used {
		isUsed[u] = struct{}{}
	}
	var out []string
	if len(preferred) > 0 {
		for _, c := range preferred {
			if _, skip := isUsed[c]; !skip {
				out = append(out, c)
			}
		}
		return out
	}
	for c := 'a'; c <= 'z'; c++ {
		name := string(c)
		if _, skip := isUsed[name]; !skip {
			out = append(out, name)
		}
	}
	return out
}

// ProveEqIsTransitive proves forall x, y, z. x = y => y = z => x = z. Only
// the first call on a builder adds steps; later calls add nothing and return
// nil.
func (b *ProofBuilder) ProveEqIsTransitive() Pred {
	if b.provedEqTransitive {
		return nil
	}
	b.provedEqTransitive = true

	v := GetCachedVars()
	x, y, z := Term(v.V("x")), Term(v.V("y")), Term(v.V("z"))

	xy := NewEq(x, y)
	yz := NewEq(y, z)
	xz := NewEq(x, z)

	theorem := ForAllN([]string{"x", "y", "z"}, ImpliesN(xy, yz, xz))

	P := ImpliesN(yz, xy, xz)
	Q := ImpliesN(xy, yz, xz)
	if !Equal(ForAllN([]string{"x", "y", "z"}, Q), theorem) {
		panic("logic: ProveEqIsTransitive invariant violated")
	}

	b.P(ForAllN([]string{"x", "y", "z"}, P))
	b.P(ForAllN([]string{"x", "y", "z"}, NewImplies(P, Q)))
	return b.ForallSplit("high", nil)
}

// SubstForallWithExpr proves "forall x. P(F(x))" given that "forall x. P(x)"
// has been proved, where f generates F(x) from x.
func (b *ProofBuilder) SubstForallWithExpr(forall ForAll, f func(Term) Term) Pred {
	v := GetCachedVars()
	if forall.VarName == "t" {
		panic("logic: SubstForallWithExpr cannot be used when the bound variable is already named t")
	}
	forallt := func(body Pred) Pred { return NewForAll("t", body) }

	b.ImmediatelyImplies(forall, forallt(forall))
	b.P(forallt(NewImplies(forall, SubstituteForAll(forall, f(v.V("t"))))))
	return b.ForallSplit("high", nil)
}

// SubstForallWithConst proves P(c) given that "forall x. P(x)" (forall) has
// been proved.
func (b *ProofBuilder) SubstForallWithConst(forall ForAll, c Term) Pred {
	return b.ImmediatelyImplies(forall, SubstituteForAll(forall, c))
}

// FlipXYOrderInForall proves "forall y, x. P(x, y)" given "forall x, y.
// P(x, y)" (forall, or the last proved formula if nil).
func (b *ProofBuilder) FlipXYOrderInForall(forall *ForAll) Pred {
	var fa ForAll
	if forall != nil {
		fa = *forall
	} else {
		fa = asForAll(b.LastFormula(), "last formula")
	}
	inner := asForAll(fa.Body, "forall.body")

	v := GetCachedVars()
	avail := availableLetters([]string{fa.VarName, inner.VarName}, []string{"a", "b", "c", "d"})
	vx, vy := avail[0], avail[1]

	forallx := func(p Pred) Pred { return NewForAll(vx, p) }
	forally := func(p Pred) Pred { return NewForAll(vy, p) }
	forallxy := func(p Pred) Pred { return forallx(forally(p)) }
	foralln := func(p Pred) Pred { return NewForAll("n", p) }

	body := func(x, y Term) Pred {
		first := SubstituteForAll(fa, x)
		return SubstituteForAll(first.(ForAll), y)
	}

	b.P(forallxy(NewImplies(fa, foralln(body(NewVar(vy), v.V("n"))))))
	b.ForallSplit("med", nil)
	b.ImmediatelyImplies(fa, forally(fa))
	b.ImmediatelyImplies(forally(fa), forallxy(fa))
	b.ImmediatelyImplies(forallxy(fa), forallxy(foralln(body(NewVar(vy), v.V("n")))))

	b.P(forallxy(NewImplies(foralln(body(NewVar(vy), v.V("n"))), body(NewVar(vy), NewVar(vx)))))
	b.ForallSplit("med", nil)
	return b.P(forallxy(body(NewVar(vy), NewVar(vx))))
}

// ProveExprEqToItself proves a formula of the form "forall <freeVars>. expr
// = expr", where freeVars must be exactly expr's free variables (one or
// two of them).
func (b *ProofBuilder) ProveExprEqToItself(expr Term, freeVars []string) {
	if len(freeVars) != 1 && len(freeVars) != 2 {
		panic("logic: ProveExprEqToItself requires one or two free variables")
	}
	wantFree := FreeVars(expr)
	if len(wantFree) != len(freeVars) {
		panic("logic: ProveExprEqToItself: freeVars does not match expr's free variables")
	}
	for _, v := range freeVars {
		if _, ok := wantFree[v]; !ok {
			panic("logic: ProveExprEqToItself: freeVars does not match expr's free variables")
		}
	}

	avail := availableLetters(freeVars, []string{"p", "q", "r"})
	x := avail[0]

	forallx := func(p Pred) Pred { return NewForAll(x, p) }
	forally := func(p Pred) Pred { return ForAllN(freeVars, p) }

	xEqX := NewEq(NewVar(x), NewVar(x))
	b.P(forally(forallx(xEqX)))
	b.P(forally(NewImplies(forallx(xEqX).(Pred), NewEq(expr, expr))))
	b.ForallSplit("high", nil)
}

// ApplyFnOnEq proves "forall x. F(M(x)) = F(N(x))" given "forall x. M(x) =
// N(x)" (eq, or the last proved formula if nil), where fn generates F(x).
func (b *ProofBuilder) ApplyFnOnEq(fn func(Term) Term, eq *ForAll) Pred {
	var fa ForAll
	if eq != nil {
		fa = *eq
	} else {
		fa = asForAll(b.LastFormula(), "last formula")
	}
	body := asEq(fa.Body, "eq.body")
	A, B := body.A, body.B

	forallx := func(p Pred) Pred { return NewForAll(fa.VarName, p) }

	b.ProveExprEqToItself(fn(A), []string{fa.VarName})
	b.P(forallx(ImpliesN(body, NewEq(fn(A), fn(A)), NewEq(fn(A), fn(B)))))
	b.ForallSplit("high", nil)
	return b.ForallSplit("high", nil)
}

// FlipImplicationOrder proves "B => A => C" given "A => B => C" (impl, or
// the last proved formula if nil).
func (b *ProofBuilder) FlipImplicationOrder(impl *Implies) Pred {
	var i Implies
	if impl != nil {
		i = *impl
	} else {
		i = asImplies(b.LastFormula(), "last formula")
	}
	inner := asImplies(i.Q, "impl.q")

	b.P(NewImplies(
		ImpliesN(i.P, inner.P, inner.Q),
		ImpliesN(inner.P, i.P, inner.Q),
	))
	return b.P(ImpliesN(inner.P, i.P, inner.Q))
}

// ComposeImplications proves A => C given A => B and B => C.
func (b *ProofBuilder) ComposeImplications(a, bImpl Implies) Pred {
	b.P(ImpliesN(a, bImpl, a.P, bImpl.Q))
	b.P(ImpliesN(bImpl, a.P, bImpl.Q))
	return b.P(ImpliesN(a.P, bImpl.Q))
}

// ProveValuesTransitivelyEqual1Arg proves "forall x. A(x) = B(x) => B(x) =
// C(x) => A(x) = C(x)", where aFn, bFn, cFn generate A, B, C from x.
func (b *ProofBuilder) ProveValuesTransitivelyEqual1Arg(aFn, bFn, cFn func(Term) Term) Pred {
	v := GetCachedVars()
	b.ProveEqIsTransitive()

	body := func(x, y, z Term) Pred {
		return ImpliesN(NewEq(x, y), NewEq(y, z), NewEq(x, z))
	}

	eqTransitive := ForAllN([]string{"x", "y", "z"}, body(v.V("x"), v.V("y"), v.V("z")))
	eqTransitiveM := NewForAll("m", eqTransitive)
	b.ImmediatelyImplies(eqTransitive, eqTransitiveM)

	A := aFn(v.V("m"))
	B := bFn(v.V("m"))
	C := cFn(v.V("m"))

	theorem := NewForAll("m", body(A, B, C))

	b.P(NewForAll("m", NewImplies(eqTransitive, ForAllN([]string{"y", "z"}, body(A, v.V("y"), v.V("z"))))))
	b.ImmediatelyImplies(b.LastFormula().(Pred), eqTransitiveM, NewForAll("m", ForAllN([]string{"y", "z"}, body(A, v.V("y"), v.V("z")))))

	b.P(NewForAll("m", NewImplies(ForAllN([]string{"y", "z"}, body(A, v.V("y"), v.V("z"))), NewForAll("z", body(A, B, v.V("z"))))))
	b.ImmediatelyImplies(
		b.LastFormula().(Pred),
		NewForAll("m", ForAllN([]string{"y", "z"}, body(A, v.V("y"), v.V("z")))),
		NewForAll("m", NewForAll("z", body(A, B, v.V("z")))),
	)

	b.P(NewForAll("m", NewImplies(NewForAll("z", body(A, B, v.V("z"))), body(A, B, C))))
	return b.ImmediatelyImplies(
		b.LastFormula().(Pred),
		NewForAll("m", NewForAll("z", body(A, B, v.V("z")))),
		theorem,
	)
}

// ProveValuesTransitivelyEqual2Args proves "forall x, y. A(x,y) = B(x,y) =>
// B(x,y) = C(x,y) => A(x,y) = C(x,y)", where aFn, bFn, cFn generate A, B, C
// from x and y.
func (b *ProofBuilder) ProveValuesTransitivelyEqual2Args(aFn, bFn, cFn func(Term, Term) Term) Pred {
	v := GetCachedVars()
	b.ProveEqIsTransitive()

	body := func(x, y, z Term) Pred {
		return ImpliesN(NewEq(x, y), NewEq(y, z), NewEq(x, z))
	}

	eqTransitive := ForAllN([]string{"x", "y", "z"}, body(v.V("x"), v.V("y"), v.V("z")))
	eqTransitiveM := NewForAll("m", eqTransitive)
	b.ImmediatelyImplies(eqTransitive, eqTransitiveM)
	eqTransitiveMN := NewForAll("n", eqTransitiveM)
	b.ImmediatelyImplies(eqTransitive, eqTransitiveMN)

	A := aFn(v.V("m"), v.V("n"))
	B := bFn(v.V("m"), v.V("n"))
	C := cFn(v.V("m"), v.V("n"))

	theorem := ForAllN([]string{"m", "n"}, body(A, B, C))

	b.P(ForAllN([]string{"m", "n"}, NewImplies(eqTransitive, ForAllN([]string{"y", "z"}, body(A, v.V("y"), v.V("z"))))))
	b.ForallSplit("high", nil)
	b.P(ForAllN([]string{"m", "n"}, NewImplies(ForAllN([]string{"y", "z"}, body(A, v.V("y"), v.V("z"))), NewForAll("z", body(A, B, v.V("z"))))))
	b.ForallSplit("high", nil)
	b.P(ForAllN([]string{"m", "n"}, NewImplies(NewForAll("z", body(A, B, v.V("z"))), body(A, B, C))))
	result := b.ForallSplit("high", nil)
	b.AssertProved(theorem)
	return result
}

func renameForallQuantifier(varName string, formula Pred) Pred {
	switch t := formula.(type) {
	case ForAll:
		return NewForAll(varName, SubstituteForAll(t, NewVar(varName)))
	case Implies:
		return NewImplies(renameForallQuantifier(varName, t.P), renameForallQuantifier(varName, t.Q))
	case And:
		return NewAnd(renameForallQuantifier(varName, t.A), renameForallQuantifier(varName, t.B))
	default:
		panic("logic: renameForallQuantifier: unsupported formula shape")
	}
}

// RenameForallQuantifier renames every bound variable inside formula (or
// the last proved formula if nil) to varName, which must not otherwise
// occur in formula, then proves the renamed version.
func (b *ProofBuilder) RenameForallQuantifier(varName string, formula Pred) Pred {
	if formula == nil {
		formula = b.LastFormula().(Pred)
	}
	for _, sub := range Subformulas(formula) {
		if v, ok := sub.(Var); ok && v.Name == varName {
			panic("logic: RenameForallQuantifier: varName already occurs in formula")
		}
	}
	return b.P(renameForallQuantifier(varName, formula))
}

// The PeanoAxiom* methods add the corresponding first-order Peano axiom as
// a proof step and return it.

func (b *ProofBuilder) PeanoAxiomZeroIsNotSucc() Pred     { return b.P(PeanoAxiomZeroIsNotSucc()) }
func (b *ProofBuilder) PeanoAxiomSuccIsInjective() Pred   { return b.P(PeanoAxiomSuccIsInjective()) }
func (b *ProofBuilder) PeanoAxiomXPlusZero() Pred         { return b.P(PeanoAxiomXPlusZero()) }
func (b *ProofBuilder) PeanoAxiomXPlusSuccY() Pred        { return b.P(PeanoAxiomXPlusSuccY()) }
func (b *ProofBuilder) PeanoAxiomXTimesZero() Pred        { return b.P(PeanoAxiomXTimesZero()) }
func (b *ProofBuilder) PeanoAxiomXTimesSuccY() Pred       { return b.P(PeanoAxiomXTimesSuccY()) }
