package logic

// ReplaceSubformula returns a copy of f with every subformula alpha-
// equivalent to x replaced by y. x and y must belong to the same Formula
// kind (both Term or both Pred) for the result to type-check against f's
// surrounding structure.
func ReplaceSubformula(f, x, y Formula) Formula {
	return replaceSubformula(f, x, func() Formula { return y })
}

// ReplaceSubformulaFunc is ReplaceSubformula but calls gen for a fresh
// replacement value at every matched occurrence, letting callers thread a
// NameGenerator through to produce distinct fresh variables per match.
func ReplaceSubformulaFunc(f, x Formula, gen func() Formula) Formula {
	return replaceSubformula(f, x, gen)
}

func replaceSubformula(f, x Formula, gen func() Formula) Formula {
	if Equal(f, x) {
		return gen()
	}

	switch t := f.(type) {
	case Zero, Var:
		return f
	case Succ:
		return NewSucc(replaceSubformula(t.X, x, gen).(Term))
	case Add:
		return NewAdd(replaceSubformula(t.A, x, gen).(Term), replaceSubformula(t.B, x, gen).(Term))
	case Mul:
		return NewMul(replaceSubformula(t.A, x, gen).(Term), replaceSubformula(t.B, x, gen).(Term))
	case Eq:
		return NewEq(replaceSubformula(t.A, x, gen).(Term), replaceSubformula(t.B, x, gen).(Term))
	case And:
		return NewAnd(replaceSubformula(t.A, x, gen).(Pred), replaceSubformula(t.B, x, gen).(Pred))
	case Not:
		return NewNot(replaceSubformula(t.X, x, gen).(Pred))
	case Implies:
		return NewImplies(replaceSubformula(t.P, x, gen).(Pred), replaceSubformula(t.Q, x, gen).(Pred))
	case ForAll:
		return NewForAll(t.VarName, replaceSubformula(t.Body, x, gen).(Pred))
	default:
		panic("logic: unhandled formula type in ReplaceSubformula")
	}
}
