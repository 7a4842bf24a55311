package logic

// Subformulas returns f and every sub-node of f, in pre-order.
func Subformulas(f Formula) []Formula {
	var out []Formula
	appendSubformulas(f, &out)
	return out
}

func appendSubformulas(f Formula, out *[]Formula) {
	*out = append(*out, f)

	switch t := f.(type) {
	case Zero, Var:
		// no children
	case Succ:
		appendSubformulas(t.X, out)
	case Add:
		appendSubformulas(t.A, out)
		appendSubformulas(t.B, out)
	case Mul:
		appendSubformulas(t.A, out)
		appendSubformulas(t.B, out)
	case Eq:
		appendSubformulas(t.A, out)
		appendSubformulas(t.B, out)
	case And:
		appendSubformulas(t.A, out)
		appendSubformulas(t.B, out)
	case Not:
		appendSubformulas(t.X, out)
	case Implies:
		appendSubformulas(t.P, out)
		appendSubformulas(t.Q, out)
	case ForAll:
		appendSubformulas(t.Body, out)
	default:
		panic("logic: unhandled formula type in Subformulas")
	}
}
