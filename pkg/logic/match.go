package logic

// Equal reports whether a and b are alpha-equivalent: identical up to a
// consistent renaming of bound variables. Use Equal instead of == or
// reflect.DeepEqual whenever comparing Formula values.
func Equal(a, b Formula) bool {
	if a.hash() != b.hash() {
		return false
	}
	return matchFreeVars(a, b, map[string]string{}, map[string]struct{}{}, nil, map[string]Formula{})
}

// MatchTemplate tries to match f against template, treating the names in
// varsToCapture as placeholders: it succeeds if there is an assignment of
// each captured name to a Formula such that substituting those Formulas for
// the free occurrences of their names in template produces something
// alpha-equivalent to f. On success the captures are recorded into (or, if
// nil, a freshly allocated) captured map, which is returned alongside the
// bool result.
//
// Grounded on pyano's match_template/_match_free_vars: a captured name is
// never allowed to bind a value that contains a variable bound somewhere
// between the template's root and the matched occurrence, since no
// substitution could ever produce that capture.
func MatchTemplate(template, f Formula, varsToCapture []string, captured map[string]Formula) (bool, map[string]Formula) {
	if captured == nil {
		captured = map[string]Formula{}
	}
	toCapture := make(map[string]struct{}, len(varsToCapture))
	for _, v := range varsToCapture {
		toCapture[v] = struct{}{}
	}
	ok := matchFreeVars(template, f, map[string]string{}, toCapture, nil, captured)
	return ok, captured
}

func matchFreeVars(
	a, b Formula,
	varReplacements map[string]string,
	varsToCapture map[string]struct{},
	bBindingsStack []string,
	capturedFormulae map[string]Formula,
) bool {
	if av, ok := a.(Var); ok {
		if _, capture := varsToCapture[av.Name]; capture {
			if existing, already := capturedFormulae[av.Name]; already {
				return Equal(existing, b)
			}
			for _, sub := range Subformulas(b) {
				if subVar, isVar := sub.(Var); isVar && contains(bBindingsStack, subVar.Name) {
					return false
				}
			}
			capturedFormulae[av.Name] = b
			return true
		}
	}

	recurse := func(aa, bb Formula) bool {
		return matchFreeVars(aa, bb, varReplacements, varsToCapture, bBindingsStack, capturedFormulae)
	}

	switch at := a.(type) {
	case Var:
		bv, ok := b.(Var)
		if !ok {
			return false
		}
		bName := bv.Name
		if replaced, ok := varReplacements[bv.Name]; ok {
			bName = replaced
		}
		return at.Name == bName
	case Zero:
		_, ok := b.(Zero)
		return ok
	case Succ:
		bt, ok := b.(Succ)
		return ok && recurse(at.X, bt.X)
	case Not:
		bt, ok := b.(Not)
		return ok && recurse(at.X, bt.X)
	case Add:
		bt, ok := b.(Add)
		return ok && recurse(at.A, bt.A) && recurse(at.B, bt.B)
	case Mul:
		bt, ok := b.(Mul)
		return ok && recurse(at.A, bt.A) && recurse(at.B, bt.B)
	case Eq:
		bt, ok := b.(Eq)
		return ok && recurse(at.A, bt.A) && recurse(at.B, bt.B)
	case And:
		bt, ok := b.(And)
		return ok && recurse(at.A, bt.A) && recurse(at.B, bt.B)
	case Implies:
		bt, ok := b.(Implies)
		return ok && recurse(at.P, bt.P) && recurse(at.Q, bt.Q)
	case ForAll:
		bt, ok := b.(ForAll)
		if !ok {
			return false
		}
		if at.VarName != bt.VarName {
			varReplacements = copyStringMap(varReplacements)
			varReplacements[bt.VarName] = at.VarName
		}
		if _, captured := varsToCapture[at.VarName]; captured {
			varsToCapture = copyStringSet(varsToCapture)
			delete(varsToCapture, at.VarName)
		}
		bBindingsStack = append(append([]string{}, bBindingsStack...), bt.VarName)
		return matchFreeVars(at.Body, bt.Body, varReplacements, varsToCapture, bBindingsStack, capturedFormulae)
	default:
		panic("logic: unhandled formula type in matchFreeVars")
	}
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyStringSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
