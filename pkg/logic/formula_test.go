package logic

import "testing"

func additionAxiomFormula() ForAll {
	return NewForAll("x",
		NewForAll("y", NewEq(
			NewAdd(NewVar("x"), NewSucc(NewVar("y"))),
			NewSucc(NewAdd(NewVar("x"), NewVar("y"))),
		)),
	)
}

func TestSerialization(t *testing.T) {
	tests := []struct {
		name string
		f    Formula
		want string
	}{
		{"succ zero", NewSucc(NewZero()), "S(0)"},
		{
			"nested forall",
			additionAxiomFormula(),
			"(forall x. (forall y. ((x + S(y)) = S((x + y)))))",
		},
		{
			"double negation implies",
			NewImplies(NewNot(NewNot(NewEq(NewVar("x"), NewVar("y")))), NewEq(NewVar("x"), NewVar("y"))),
			"!!(x = y) => (x = y)",
		},
		{
			"and implies",
			NewImplies(NewAnd(NewEq(NewVar("x"), NewVar("y")), NewEq(NewVar("p"), NewVar("q"))), NewEq(NewVar("p"), NewVar("q"))),
			"((x = y) & (p = q)) => (p = q)",
		},
		{
			"implies on the left gets parens",
			NewImplies(
				NewImplies(NewEq(NewVar("x"), NewVar("y")), NewEq(NewVar("p"), NewVar("q"))),
				NewEq(NewVar("r"), NewVar("s")),
			),
			"((x = y) => (p = q)) => (r = s)",
		},
		{
			"implies on the right stays bare",
			NewImplies(
				NewEq(NewVar("x"), NewVar("y")),
				NewImplies(NewEq(NewVar("p"), NewVar("q")), NewEq(NewVar("r"), NewVar("s"))),
			),
			"(x = y) => (p = q) => (r = s)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubformulasCountsEveryNode(t *testing.T) {
	subs := Subformulas(additionAxiomFormula())
	if len(subs) != 11 {
		t.Fatalf("len(Subformulas) = %d, want 11", len(subs))
	}

	counts := map[string]int{}
	for _, s := range subs {
		switch s.(type) {
		case ForAll:
			counts["ForAll"]++
		case Eq:
			counts["Eq"]++
		case Add:
			counts["Add"]++
		case Var:
			counts["Var"]++
		case Succ:
			counts["Succ"]++
		}
	}
	want := map[string]int{"ForAll": 2, "Eq": 1, "Add": 2, "Var": 4, "Succ": 2}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("count[%s] = %d, want %d", k, counts[k], v)
		}
	}
}

func TestEqualIsAlphaEquivalence(t *testing.T) {
	axiom0 := additionAxiomFormula()

	t.Run("identical formulas are equal", func(t *testing.T) {
		axiom1 := additionAxiomFormula()
		if !Equal(axiom0, axiom1) {
			t.Error("identical formulas should be Equal")
		}
		if !Equal(axiom0, axiom0) {
			t.Error("a formula should Equal itself")
		}
	})

	t.Run("renaming both binders consistently stays equal", func(t *testing.T) {
		renamed := NewForAll("x",
			NewForAll("z", NewEq(
				NewAdd(NewVar("x"), NewSucc(NewVar("z"))),
				NewSucc(NewAdd(NewVar("x"), NewVar("z"))),
			)),
		)
		if !Equal(axiom0, renamed) {
			t.Error("renaming the inner bound variable should preserve alpha-equivalence")
		}
	})

	t.Run("swapping which variable is bound where is not equal", func(t *testing.T) {
		swapped := NewForAll("x",
			NewForAll("z", NewEq(
				NewAdd(NewVar("z"), NewSucc(NewVar("x"))),
				NewSucc(NewAdd(NewVar("x"), NewVar("z"))),
			)),
		)
		if Equal(axiom0, swapped) {
			t.Error("swapping bound-variable roles should not be alpha-equivalent")
		}
	})
}

func TestHashRespectsAlphaEquivalence(t *testing.T) {
	a := NewForAll("x", NewEq(NewVar("x"), NewZero()))
	b := NewForAll("y", NewEq(NewVar("y"), NewZero()))
	if a.hash() != b.hash() {
		t.Error("alpha-equivalent formulas must hash identically")
	}
}

func TestSubstituteForAll(t *testing.T) {
	axiom := additionAxiomFormula()
	one := NewSucc(NewZero())
	two := NewSucc(one)

	subst0 := SubstituteForAll(axiom, one)
	subst1 := SubstituteForAll(subst0.(ForAll), two)

	want := "((S(0) + S(S(S(0)))) = S((S(0) + S(S(0)))))"
	if got := subst1.String(); got != want {
		t.Errorf("SubstituteForAll chain = %q, want %q", got, want)
	}
}

func TestSubstituteForAllDoesNotCrossRebindingShadow(t *testing.T) {
	repeated := NewForAll("x", NewAnd(
		NewEq(NewVar("x"), NewZero()),
		NewForAll("x", NewEq(NewVar("x"), NewZero())),
	))

	got := SubstituteForAll(repeated, NewSucc(NewZero()))
	want := "((S(0) = 0) & (forall x. (x = 0)))"
	if got.String() != want {
		t.Errorf("SubstituteForAll = %q, want %q", got.String(), want)
	}
}

func TestFreeVars(t *testing.T) {
	axiom := additionAxiomFormula()

	if fv := FreeVars(axiom); len(fv) != 0 {
		t.Errorf("FreeVars(closed formula) = %v, want empty", fv)
	}

	if fv := FreeVars(axiom.Body); len(fv) != 1 || !has(fv, "x") {
		t.Errorf("FreeVars(axiom.Body) = %v, want {x}", fv)
	}
}

func has(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}

func TestSubstituteFreeVarIdempotentWhenAbsent(t *testing.T) {
	f := NewEq(NewVar("x"), NewZero())
	got := SubstituteFreeVar(f, "y", NewSucc(NewZero()))
	if !Equal(got, f) {
		t.Errorf("substituting an absent free var should be a no-op: got %s, want %s", got.String(), f.String())
	}
}

func TestReplaceSubformula(t *testing.T) {
	one := NewSucc(NewZero())
	add1 := NewForAll("y", NewEq(NewAdd(one, NewSucc(NewVar("y"))), NewSucc(NewAdd(one, NewVar("y")))))

	two := NewSucc(one)
	result := ReplaceSubformula(add1, one, two)

	want := "(forall y. ((S(S(0)) + S(y)) = S((S(S(0)) + y))))"
	if got := result.String(); got != want {
		t.Errorf("ReplaceSubformula = %q, want %q", got, want)
	}
}

func TestReplaceSubformulaFuncGeneratesFreshNamePerMatch(t *testing.T) {
	one := NewSucc(NewZero())
	add1 := NewForAll("y", NewEq(NewAdd(one, NewSucc(NewVar("y"))), NewSucc(NewAdd(one, NewVar("y")))))

	counter := 0
	gen := func() Formula {
		name := "$" + string(rune('0'+counter))
		counter++
		return NewVar(name)
	}

	result := ReplaceSubformulaFunc(add1, one, gen)
	want := "(forall y. (($0 + S(y)) = S(($1 + y))))"
	if got := result.String(); got != want {
		t.Errorf("ReplaceSubformulaFunc = %q, want %q", got, want)
	}
}

func TestMatchTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template Formula
		f        Formula
		capture  []string
		want     bool
	}{
		{
			"capture a free var under identically-named binders",
			NewForAll("x", NewEq(NewVar("x"), NewVar("y"))),
			NewForAll("x", NewEq(NewVar("x"), NewSucc(NewZero()))),
			[]string{"y"},
			true,
		},
		{
			"capture a free var across differently-named binders",
			NewForAll("x", NewEq(NewVar("x"), NewVar("y"))),
			NewForAll("z", NewEq(NewVar("z"), NewSucc(NewZero()))),
			[]string{"y"},
			true,
		},
		{
			"no capture var: reflexive template must match pointwise",
			NewForAll("x", NewEq(NewVar("x"), NewVar("x"))),
			NewForAll("z", NewEq(NewVar("z"), NewSucc(NewZero()))),
			nil,
			false,
		},
		{
			"no capture var: reflexive template matches a reflexive formula",
			NewForAll("x", NewEq(NewVar("x"), NewVar("x"))),
			NewForAll("z", NewEq(NewVar("z"), NewVar("z"))),
			nil,
			true,
		},
		{
			"capture under a nested binder that doesn't shadow it",
			NewForAll("j", NewForAll("x", NewEq(NewVar("x"), NewVar("A")))),
			NewForAll("i", NewForAll("z", NewEq(NewVar("z"), NewZero()))),
			[]string{"A"},
			true,
		},
		{
			"capture rejected when the matched value contains a locally bound var",
			NewForAll("j", NewForAll("x", NewEq(NewVar("x"), NewVar("A")))),
			NewForAll("i", NewForAll("z", NewEq(NewVar("z"), NewVar("z")))),
			[]string{"A"},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := MatchTemplate(tt.template, tt.f, tt.capture, nil)
			if got != tt.want {
				t.Errorf("MatchTemplate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchTemplateRoundTrip(t *testing.T) {
	template := NewForAll("x", NewEq(NewAdd(NewVar("x"), NewVar("y")), NewVar("z")))
	assignment := map[string]Formula{
		"y": Term(NewSucc(NewZero())),
		"z": Term(NewSucc(NewSucc(NewZero()))),
	}

	f := SubstituteFreeVar(SubstituteFreeVar(template, "y", NewSucc(NewZero())), "z", NewSucc(NewSucc(NewZero())))

	ok, captured := MatchTemplate(template, f, []string{"y", "z"}, nil)
	if !ok {
		t.Fatal("expected MatchTemplate to succeed on its own substitution")
	}
	for name, want := range assignment {
		got, present := captured[name]
		if !present {
			t.Errorf("captured[%s] missing", name)
			continue
		}
		if !Equal(got, want) {
			t.Errorf("captured[%s] = %s, want %s", name, got.String(), want.String())
		}
	}
}

func TestCanonicalizeBoundVars(t *testing.T) {
	t.Run("closed formula has no free vars left over", func(t *testing.T) {
		uniqued, free := CanonicalizeBoundVars(additionAxiomFormula())
		want := "(forall $0. (forall $1. (($0 + S($1)) = S(($0 + $1)))))"
		if got := uniqued.String(); got != want {
			t.Errorf("CanonicalizeBoundVars = %q, want %q", got, want)
		}
		if len(free) != 0 {
			t.Errorf("free vars = %v, want none", free)
		}
	})

	t.Run("open sentence reports its free var", func(t *testing.T) {
		open := NewForAll("x",
			NewForAll("y", NewEq(
				NewAdd(NewVar("x"), NewSucc(NewVar("z"))),
				NewSucc(NewAdd(NewVar("x"), NewVar("y"))),
			)),
		)
		uniqued, free := CanonicalizeBoundVars(open)
		want := "(forall $0. (forall $1. (($0 + S(z)) = S(($0 + $1)))))"
		if got := uniqued.String(); got != want {
			t.Errorf("CanonicalizeBoundVars = %q, want %q", got, want)
		}
		if _, ok := free["z"]; !ok || len(free) != 1 {
			t.Errorf("free vars = %v, want {z}", free)
		}
	})

	t.Run("result is alpha-equivalent to the input", func(t *testing.T) {
		f := additionAxiomFormula()
		uniqued, _ := CanonicalizeBoundVars(f)
		if !Equal(f, uniqued) {
			t.Error("canonicalized form must remain alpha-equivalent to the original")
		}
	})
}

func TestNewNameGeneratorAvoidsExistingDollarNames(t *testing.T) {
	f := NewForAll("$3", NewEq(NewVar("$3"), NewVar("$1")))
	gen := NewNameGenerator(f)
	if got := gen(); got != "$4" {
		t.Errorf("first generated name = %q, want $4", got)
	}
	if got := gen(); got != "$5" {
		t.Errorf("second generated name = %q, want $5", got)
	}
}
