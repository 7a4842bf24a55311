package logic

// Exists returns "there exists var such that predicateWithFreeVar", encoded
// as the classical !(forall var. !predicateWithFreeVar).
func Exists(varName string, predicateWithFreeVar Pred) Pred {
	return NewNot(NewForAll(varName, NewNot(predicateWithFreeVar)))
}

// Or returns x or y, encoded as !(!x & !y).
func Or(x, y Pred) Pred {
	return NewNot(NewAnd(NewNot(x), NewNot(y)))
}

// LessThanOrEq returns "x <= y", encoded as "exists z. x + z = y".
func LessThanOrEq(x, y Term) Pred {
	varName := NewNameGenerator(x, y)()
	return Exists(varName, NewEq(NewAdd(x, NewVar(varName)), y))
}

// LessThan returns "x < y", encoded as "exists z. x + S(z) = y".
func LessThan(x, y Term) Pred {
	varName := NewNameGenerator(x, y)()
	return Exists(varName, NewEq(NewAdd(x, NewSucc(NewVar(varName))), y))
}

// ForAllN binds each name in vs, innermost name last, around body:
// ForAllN([]string{"x","y"}, body) == forall x. forall y. body.
func ForAllN(vs []string, body Pred) ForAll {
	if len(vs) == 0 {
		panic("logic: ForAllN requires at least one variable")
	}
	if len(vs) == 1 {
		return NewForAll(vs[0], body)
	}
	return NewForAll(vs[0], ForAllN(vs[1:], body))
}

// ImpliesN returns a right-associated chain A => (B => (C => ...)) over at
// least two arguments.
func ImpliesN(args ...Pred) Pred {
	if len(args) < 2 {
		panic("logic: ImpliesN requires at least two arguments")
	}
	if len(args) == 2 {
		return NewImplies(args[0], args[1])
	}
	return NewImplies(args[0], ImpliesN(args[1:]...))
}

// GenInductionAxiom generates the induction axiom for predicate p, inducting
// on the free variable named varName.
//
//	GenInductionAxiom("x", Eq(Var("x"), Zero()))
//	  == ((0 = 0) & (forall $0. ($0 = 0) => (S($0) = 0))) => (forall $1. ($1 = 0))
func GenInductionAxiom(varName string, p Pred) Pred {
	if _, ok := FreeVars(p)[varName]; !ok {
		panic("logic: GenInductionAxiom requires varName to be free in p")
	}

	namegen := NewNameGenerator(p)
	k := namegen()
	x := namegen()

	return NewImplies(
		NewAnd(
			SubstituteFreeVar(p, varName, NewZero()).(Pred),
			NewForAll(k, NewImplies(
				SubstituteFreeVar(p, varName, NewVar(k)).(Pred),
				SubstituteFreeVar(p, varName, NewSucc(NewVar(k))).(Pred),
			)),
		),
		NewForAll(x, SubstituteFreeVar(p, varName, NewVar(x)).(Pred)),
	)
}

// CachedVars exposes the lowercase letters a..z as pre-built Var values (and,
// through S, each letter's successor) plus the natural numbers 0..19
// (through I), to save callers from re-allocating the same few terms
// throughout a proof.
type CachedVars struct {
	vars  map[string]Var
	succs map[string]Succ
	nats  []Term
}

var cachedVars = buildCachedVars()

func buildCachedVars() CachedVars {
	cv := CachedVars{
		vars:  make(map[string]Var, 26),
		succs: make(map[string]Succ, 26),
	}
	for c := 'a'; c <= 'z'; c++ {
		name := string(c)
		v := NewVar(name)
		cv.vars[name] = v
		cv.succs[name] = NewSucc(v)
	}
	nat := Term(NewZero())
	cv.nats = make([]Term, 20)
	for i := 0; i < 20; i++ {
		cv.nats[i] = nat
		nat = NewSucc(nat)
	}
	return cv
}

// GetCachedVars returns the package-wide CachedVars instance.
func GetCachedVars() CachedVars { return cachedVars }

// V returns the cached Var named name (a single lowercase letter).
func (c CachedVars) V(name string) Var { return c.vars[name] }

// S returns the cached Succ(Var(name)).
func (c CachedVars) S(name string) Succ { return c.succs[name] }

// Zero returns the cached Zero term, i.e. I(0).
func (c CachedVars) Zero() Term { return c.nats[0] }

// SuccZero returns the cached Succ(Zero) term, i.e. I(1).
func (c CachedVars) SuccZero() Term { return c.nats[1] }

// I returns the cached natural number n as a Term, for 0 <= n < 20.
func (c CachedVars) I(n int) Term { return c.nats[n] }
