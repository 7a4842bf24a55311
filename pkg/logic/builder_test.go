package logic

import "testing"

func assertValid(t *testing.T, b *ProofBuilder) {
	t.Helper()
	if err := CheckProof(b.Proof()); err != nil {
		t.Fatalf("expected a valid proof, got: %v", err)
	}
}

func TestForallXYSplitOnSymmetry(t *testing.T) {
	b := NewProofBuilder(false)
	b.ProveEqIsSymmetric()
	b.ForallSplit("med", nil)
	b.AssertProved(NewImplies(
		ForAllN([]string{"x", "y"}, NewEq(NewVar("x"), NewVar("y"))),
		ForAllN([]string{"x", "y"}, NewEq(NewVar("y"), NewVar("x"))),
	))
	assertValid(t, b)
}

func TestForallXYZSplitOnTransitivity(t *testing.T) {
	b := NewProofBuilder(false)
	b.ProveEqIsTransitive()
	b.ForallSplit("med", nil)
	b.AssertProved(NewImplies(
		ForAllN([]string{"x", "y", "z"}, NewEq(NewVar("x"), NewVar("y"))),
		ForAllN([]string{"x", "y", "z"}, NewImplies(NewEq(NewVar("y"), NewVar("z")), NewEq(NewVar("x"), NewVar("z")))),
	))
	assertValid(t, b)
}

func TestProveEqIsSymmetric(t *testing.T) {
	b := NewProofBuilder(false)
	b.ProveEqIsSymmetric()
	b.AssertProved(ForAllN([]string{"x", "y"}, NewImplies(NewEq(NewVar("x"), NewVar("y")), NewEq(NewVar("y"), NewVar("x")))))
	assertValid(t, b)
}

func TestExtractAndProveInnerConsequent(t *testing.T) {
	b := NewProofBuilder(false)
	d := NewVar("d")
	example := NewForAll("d", NewImplies(NewEq(d, d), NewForAll("f", NewEq(d, d))))

	b.P(example)
	b.P(NewForAll("d", NewEq(d, d)))
	b.ForallSplit("high", &example)
	b.AssertProved(NewForAll("d", NewForAll("f", NewEq(d, d))))
	assertValid(t, b)
}

func TestFlipEquality(t *testing.T) {
	b := NewProofBuilder(false)
	eq := b.PeanoAxiomXPlusZero()
	if got, want := eq.String(), "(forall x. ((x + 0) = x))"; got != want {
		t.Fatalf("PeanoAxiomXPlusZero() = %q, want %q", got, want)
	}
	b.FlipEquality(eq)
	b.AssertProved(NewForAll("x", NewEq(NewVar("x"), NewAdd(NewVar("x"), NewZero()))))
	assertValid(t, b)
}

func TestProveEqIsTransitive(t *testing.T) {
	b := NewProofBuilder(false)
	b.ProveEqIsTransitive()
	x, y, z := NewVar("x"), NewVar("y"), NewVar("z")
	b.AssertProved(ForAllN([]string{"x", "y", "z"}, ImpliesN(NewEq(x, y), NewEq(y, z), NewEq(x, z))))
	assertValid(t, b)
}

func TestProveValuesTransitivelyEqual(t *testing.T) {
	b := NewProofBuilder(false)
	v := GetCachedVars()

	a := func(x Term) Term { return NewSucc(x) }
	bFn := func(x Term) Term { return NewAdd(x, v.I(1)) }
	c := func(x Term) Term { return NewAdd(v.I(1), x) }

	b.ProveValuesTransitivelyEqual1Arg(a, bFn, c)

	m := v.V("m")
	b.AssertProved(NewForAll("m", ImpliesN(
		NewEq(NewSucc(m), NewAdd(m, v.I(1))),
		NewEq(NewAdd(m, v.I(1)), NewAdd(v.I(1), m)),
		NewEq(NewSucc(m), NewAdd(v.I(1), m)),
	)))
	assertValid(t, b)
}

func TestFlipXYOrderInForall(t *testing.T) {
	b := NewProofBuilder(false)
	fa := b.PeanoAxiomXPlusSuccY().(ForAll)
	b.FlipXYOrderInForall(&fa)
	b.AssertProved(ForAllN([]string{"a", "b"}, NewEq(
		NewAdd(NewVar("b"), NewSucc(NewVar("a"))),
		NewSucc(NewAdd(NewVar("b"), NewVar("a"))),
	)))
	assertValid(t, b)
}

func TestApplyFnOnEq(t *testing.T) {
	b := NewProofBuilder(false)
	b.PeanoAxiomXPlusZero()
	succ := func(t Term) Term { return NewSucc(t) }
	b.ApplyFnOnEq(succ, nil)
	b.AssertProved(NewForAll("x", NewEq(NewSucc(NewAdd(NewVar("x"), NewZero())), NewSucc(NewVar("x")))))
	assertValid(t, b)
}

func TestProofBuilderString(t *testing.T) {
	b := NewProofBuilder(false)
	b.PeanoAxiomXPlusZero()
	succ := func(t Term) Term { return NewSucc(t) }
	b.ApplyFnOnEq(succ, nil)
	assertValid(t, b)

	want := `0. (forall x. ((x + 0) = x))
1. (forall x. (forall p. (p = p)))
2. (forall x. (forall p. (p = p)) => (S((x + 0)) = S((x + 0))))
3. (forall x. (forall p. (p = p)) => (S((x + 0)) = S((x + 0)))) => (forall x. (forall p. (p = p))) => (forall x. (S((x + 0)) = S((x + 0))))
4. (forall x. (forall p. (p = p))) => (forall x. (S((x + 0)) = S((x + 0))))
5. (forall x. (S((x + 0)) = S((x + 0))))
6. (forall x. ((x + 0) = x) => (S((x + 0)) = S((x + 0))) => (S((x + 0)) = S(x)))
7. (forall x. ((x + 0) = x) => (S((x + 0)) = S((x + 0))) => (S((x + 0)) = S(x))) => (forall x. ((x + 0) = x)) => (forall x. (S((x + 0)) = S((x + 0))) => (S((x + 0)) = S(x)))
8. (forall x. ((x + 0) = x)) => (forall x. (S((x + 0)) = S((x + 0))) => (S((x + 0)) = S(x)))
9. (forall x. (S((x + 0)) = S((x + 0))) => (S((x + 0)) = S(x)))
10. (forall x. (S((x + 0)) = S((x + 0))) => (S((x + 0)) = S(x))) => (forall x. (S((x + 0)) = S((x + 0)))) => (forall x. (S((x + 0)) = S(x)))
11. (forall x. (S((x + 0)) = S((x + 0)))) => (forall x. (S((x + 0)) = S(x)))
12. (forall x. (S((x + 0)) = S(x)))`

	if got := b.String(); got != want {
		t.Errorf("ProofBuilder.String() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSimplifyProof(t *testing.T) {
	b := NewProofBuilder(false)
	b.PeanoAxiomXPlusZero()
	b.PeanoAxiomXPlusZero()
	b.AssertProved(NewForAll("x", NewEq(NewAdd(NewVar("x"), NewZero()), NewVar("x"))))

	if got := len(b.Proof()); got != 2 {
		t.Fatalf("len(Proof()) before simplify = %d, want 2", got)
	}
	saved := b.SimplifyProof()
	if saved != 1 {
		t.Errorf("SimplifyProof() removed %d steps, want 1", saved)
	}
	if got := len(b.Proof()); got != 1 {
		t.Errorf("len(Proof()) after simplify = %d, want 1", got)
	}
}
