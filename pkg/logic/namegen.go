package logic

import "strconv"

// NameGenerator produces a fresh variable name on every call. Names have
// the form "$k" with k increasing monotonically.
type NameGenerator func() string

// NewNameGenerator returns a NameGenerator whose first emitted name is one
// above the largest "$k" name appearing free or bound in any of fs. Every
// name it emits is guaranteed fresh with respect to fs and to every name
// the same generator has already emitted.
func NewNameGenerator(fs ...Formula) NameGenerator {
	maxSuffix := -1
	for _, f := range fs {
		for _, sub := range Subformulas(f) {
			v, ok := sub.(Var)
			if !ok {
				continue
			}
			if n, ok := dollarSuffix(v.Name); ok && n > maxSuffix {
				maxSuffix = n
			}
		}
	}

	next := maxSuffix
	return func() string {
		next++
		return "$" + strconv.Itoa(next)
	}
}

func dollarSuffix(name string) (int, bool) {
	if len(name) < 2 || name[0] != '$' {
		return 0, false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, false
	}
	return n, true
}
