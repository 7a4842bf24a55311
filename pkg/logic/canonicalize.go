package logic

import "strconv"

// CanonicalizeBoundVars rewrites every bound variable in f to a fresh
// sequential name ("$0", "$1", ...) in binder order, and reports the
// distinct free Var occurrences it encountered along the way (keyed by
// name, since a free Var's identity beyond its name carries no
// information). Two formulas that are alpha-equivalent canonicalize to
// the same result.
func CanonicalizeBoundVars(f Formula) (Formula, map[string]Var) {
	freeVars := make(map[string]Var)
	counter := 0
	vargen := func() string {
		name := "$" + strconv.Itoa(counter)
		counter++
		return name
	}
	result := canonicalizeBoundVars(f, map[string]Var{}, vargen, freeVars)
	return result, freeVars
}

func canonicalizeBoundVars(f Formula, bindings map[string]Var, vargen func() string, freeVars map[string]Var) Formula {
	recurse := func(sub Formula) Formula {
		return canonicalizeBoundVars(sub, bindings, vargen, freeVars)
	}

	switch t := f.(type) {
	case Zero:
		return t
	case Var:
		if bound, ok := bindings[t.Name]; ok {
			return bound
		}
		freeVars[t.Name] = t
		return t
	case Succ:
		return NewSucc(recurse(t.X).(Term))
	case Add:
		return NewAdd(recurse(t.A).(Term), recurse(t.B).(Term))
	case Mul:
		return NewMul(recurse(t.A).(Term), recurse(t.B).(Term))
	case Eq:
		return NewEq(recurse(t.A).(Term), recurse(t.B).(Term))
	case And:
		return NewAnd(recurse(t.A).(Pred), recurse(t.B).(Pred))
	case Not:
		return NewNot(recurse(t.X).(Pred))
	case Implies:
		return NewImplies(recurse(t.P).(Pred), recurse(t.Q).(Pred))
	case ForAll:
		newName := vargen()
		newBindings := make(map[string]Var, len(bindings)+1)
		for k, v := range bindings {
			newBindings[k] = v
		}
		newBindings[t.VarName] = NewVar(newName)
		body := canonicalizeBoundVars(t.Body, newBindings, vargen, freeVars)
		return NewForAll(newName, body.(Pred))
	default:
		panic("logic: unhandled formula type in CanonicalizeBoundVars")
	}
}
