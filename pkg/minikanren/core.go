// Package minikanren implements a small embedded relational programming
// language in the miniKanren family.
//
// Client programs describe relations over symbolic terms; the engine
// searches for term bindings (substitutions) that satisfy conjunctions and
// disjunctions of primitive goals, and returns a bounded list of reified
// answers.
//
// The engine is single-threaded and cooperative: goals are pure values,
// streams are immutable, and the only mutable state in the whole package is
// the atomic counter used to mint fresh variable identities.
package minikanren

import "fmt"

// Term is any value in the object language: a logic variable, an atom, or
// a cons pair over terms.
type Term interface {
	// String renders the term in its raw dotted-pair form. Use Pretty for
	// list-friendly rendering of reified answers.
	String() string

	// Equal reports strict structural equality, not unification.
	Equal(other Term) bool

	// IsVar reports whether this term is a logic variable.
	IsVar() bool
}

// Var is a logic variable: a process-unique identity with an optional
// name used only for debugging output; Reify ignores it.
// Two variables are equal only if their ids match; sharing a name never
// makes two variables equal.
type Var struct {
	id   int64
	name string
}

// ID returns the variable's process-unique identity.
func (v *Var) ID() int64 { return v.id }

// Name returns the variable's debug name, or "" if it was created
// anonymously.
func (v *Var) Name() string { return v.name }

func (v *Var) String() string {
	if v.name != "" {
		return fmt.Sprintf("#[%s.%d]", v.name, v.id)
	}
	return fmt.Sprintf("#[_.%d]", v.id)
}

func (v *Var) Equal(other Term) bool {
	ov, ok := other.(*Var)
	return ok && v.id == ov.id
}

func (v *Var) IsVar() bool { return true }

// Atom is an opaque ground value: an integer, a string, a symbol, a bool,
// anything the host program treats as atomic. Two atoms are equal iff
// their underlying values compare equal with Go's ==, so atom values must
// be comparable.
type Atom struct {
	value interface{}
}

// NewAtom wraps any comparable Go value as an atomic term.
func NewAtom(value interface{}) *Atom {
	return &Atom{value: value}
}

// Value returns the underlying Go value.
func (a *Atom) Value() interface{} { return a.value }

func (a *Atom) String() string {
	if a.value == nil {
		return "()"
	}
	return fmt.Sprintf("%v", a.value)
}

func (a *Atom) Equal(other Term) bool {
	oa, ok := other.(*Atom)
	return ok && a.value == oa.value
}

func (a *Atom) IsVar() bool { return false }

// Pair is the universal cons cell. Lists of length n are right-nested
// pairs terminated by Nil; improper tails are permitted.
type Pair struct {
	car Term
	cdr Term
}

// NewPair builds a cons cell. Construction never creates cycles; a cyclic
// term can only arise from ExtendUnsafe bypassing the occurs-check.
func NewPair(car, cdr Term) *Pair {
	return &Pair{car: car, cdr: cdr}
}

// Car returns the first element.
func (p *Pair) Car() Term { return p.car }

// Cdr returns the rest of the structure.
func (p *Pair) Cdr() Term { return p.cdr }

func (p *Pair) String() string {
	return fmt.Sprintf("(%s . %s)", p.car.String(), p.cdr.String())
}

func (p *Pair) Equal(other Term) bool {
	op, ok := other.(*Pair)
	return ok && p.car.Equal(op.car) && p.cdr.Equal(op.cdr)
}

func (p *Pair) IsVar() bool { return false }

// Nil is the distinguished empty list, represented as an atom so that
// unification treats it like any other ground value.
var Nil = NewAtom(nil)

// List builds a proper list (right-nested pairs terminated by Nil) from
// the given terms.
func List(terms ...Term) Term {
	var result Term = Nil
	for i := len(terms) - 1; i >= 0; i-- {
		result = NewPair(terms[i], result)
	}
	return result
}

// Cons is a readable alias for NewPair, matching the cons/car/cdr
// vocabulary used throughout the relation library.
func Cons(head, tail Term) Term {
	return NewPair(head, tail)
}
