package logic

import "hash/fnv"

// Formula is the disjoint union of Term and Pred. Every constructor in this
// package returns an immutable value implementing Formula; values are never
// mutated after construction and may be shared freely.
//
// Structural equality (Equal) is alpha-equivalence, not identity: two
// Formula values compare equal iff one can be turned into the other by
// consistently renaming bound variables. Never compare Formula values with
// == or reflect.DeepEqual; always use Equal.
type Formula interface {
	formula()
	hash() uint64
	String() string
}

// Term is a Formula that denotes a natural number: Zero, Succ, Add, Mul, or
// Var.
type Term interface {
	Formula
	term()
}

// Pred is a Formula that denotes a proposition: Eq, And, Not, Implies, or
// ForAll.
type Pred interface {
	Formula
	pred()
}

// hashTag mixes a variant tag and a sequence of child hashes into a single
// hash, following the teacher's fnv64a-over-structure convention
// (gokando/pkg/minikanren's Fact hashing). The tag is never the variable
// name of a Var, and the children of a ForAll never include its bound name,
// so alpha-equivalent formulas always hash identically.
func hashTag(tag byte, children ...uint64) uint64 {
	h := fnv.New64a()
	h.Write([]byte{tag})
	buf := make([]byte, 8)
	for _, c := range children {
		for i := 0; i < 8; i++ {
			buf[i] = byte(c >> (8 * i))
		}
		h.Write(buf)
	}
	return h.Sum64()
}

const (
	tagZero byte = iota
	tagSucc
	tagAdd
	tagMul
	tagVar
	tagEq
	tagAnd
	tagNot
	tagImplies
	tagForAll
)

// Zero is the constant 0.
type Zero struct {
	h uint64
}

// NewZero returns the constant 0.
func NewZero() Zero {
	return Zero{h: hashTag(tagZero)}
}

func (Zero) formula()       {}
func (Zero) term()          {}
func (z Zero) hash() uint64 { return z.h }
func (Zero) String() string { return "0" }

// Succ is the successor function applied to a term.
type Succ struct {
	X Term
	h uint64
}

// NewSucc returns Succ(x). Panics if x is nil.
func NewSucc(x Term) Succ {
	if x == nil {
		panic("logic: Succ requires a non-nil Term")
	}
	return Succ{X: x, h: hashTag(tagSucc, x.hash())}
}

func (Succ) formula()       {}
func (Succ) term()          {}
func (s Succ) hash() uint64 { return s.h }
func (s Succ) String() string { return "S(" + s.X.String() + ")" }

// Add is addition of two terms.
type Add struct {
	A, B Term
	h    uint64
}

// NewAdd returns Add(a, b). Panics if a or b is nil.
func NewAdd(a, b Term) Add {
	if a == nil || b == nil {
		panic("logic: Add requires non-nil Terms")
	}
	return Add{A: a, B: b, h: hashTag(tagAdd, a.hash(), b.hash())}
}

func (Add) formula()       {}
func (Add) term()          {}
func (a Add) hash() uint64 { return a.h }
func (a Add) String() string { return "(" + a.A.String() + " + " + a.B.String() + ")" }

// Mul is multiplication of two terms.
type Mul struct {
	A, B Term
	h    uint64
}

// NewMul returns Mul(a, b). Panics if a or b is nil.
func NewMul(a, b Term) Mul {
	if a == nil || b == nil {
		panic("logic: Mul requires non-nil Terms")
	}
	return Mul{A: a, B: b, h: hashTag(tagMul, a.hash(), b.hash())}
}

func (Mul) formula()       {}
func (Mul) term()          {}
func (m Mul) hash() uint64 { return m.h }
func (m Mul) String() string { return "(" + m.A.String() + " * " + m.B.String() + ")" }

// Var is a variable occurrence, bound by an enclosing ForAll or free.
//
// Var's hash deliberately ignores Name: two formulas that differ only by a
// consistent bound-variable renaming must hash identically, and the hash is
// computed bottom-up from immutable children, so a Var's contribution to
// any enclosing hash cannot depend on its name.
type Var struct {
	Name string
	h    uint64
}

// NewVar returns a variable occurrence named name. Panics if name is empty.
func NewVar(name string) Var {
	if name == "" {
		panic("logic: Var name must not be empty")
	}
	return Var{Name: name, h: hashTag(tagVar)}
}

func (Var) formula()       {}
func (Var) term()          {}
func (v Var) hash() uint64 { return v.h }
func (v Var) String() string { return v.Name }
