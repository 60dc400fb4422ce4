package minikanren

// This file is a thin convenience layer over the core term/goal/clause
// API: constructors for building terms from plain Go values, a
// list-friendly pretty-printer for reified answers, and extractors for
// pulling plain Go values back out of them.

import (
	"fmt"
	"strings"
)

// A creates an Atom term from any comparable Go value. Shorthand for
// NewAtom.
func A(value interface{}) Term { return NewAtom(value) }

// L builds a proper list term from plain Go values. A value that is
// already a Term is used as-is; anything else is wrapped with A.
// Example: L(1, 2, 3) renders as (1 2 3).
func L(values ...interface{}) Term {
	terms := make([]Term, len(values))
	for i, v := range values {
		if t, ok := v.(Term); ok {
			terms[i] = t
		} else {
			terms[i] = A(v)
		}
	}
	return List(terms...)
}

// Pretty renders a reified term in list-friendly form rather than raw
// dotted-pair notation: the empty list as (), proper lists as (a b c),
// improper lists as (a b . tail), strings quoted, everything else via
// fmt's %v. Unlike Term.String, it never exposes the underlying cons
// structure of a list directly.
//
// A properly reified term never contains a *Var — every free variable
// has already been renamed to an atom like "_0" by Reify. Pretty marks
// an unreified *Var distinctly from that, as #<var> with its id, rather
// than let it print as a bare "_N" and be mistaken for a reified name.
func Pretty(t Term) string {
	if v, ok := t.(*Var); ok {
		if v.Name() != "" {
			return fmt.Sprintf("#<var:%s.%d>", v.Name(), v.ID())
		}
		return fmt.Sprintf("#<var:%d>", v.ID())
	}

	if a, ok := t.(*Atom); ok {
		if a.Value() == nil {
			return "()"
		}
		if s, ok := a.Value().(string); ok {
			return fmt.Sprintf("%q", s)
		}
		return fmt.Sprintf("%v", a.Value())
	}

	if p, ok := t.(*Pair); ok {
		var elems []string
		tail := Term(p)
		for {
			pr, ok := tail.(*Pair)
			if !ok {
				break
			}
			elems = append(elems, Pretty(pr.Car()))
			tail = pr.Cdr()
		}
		if a, ok := tail.(*Atom); ok && a.Value() == nil {
			return "(" + strings.Join(elems, " ") + ")"
		}
		return "(" + strings.Join(elems, " ") + " . " + Pretty(tail) + ")"
	}

	return t.String()
}

// AsInt extracts an int from a reified term, reporting ok=false if the
// term isn't an Atom wrapping one.
func AsInt(t Term) (int, bool) {
	if a, ok := t.(*Atom); ok {
		if v, ok2 := a.Value().(int); ok2 {
			return v, true
		}
	}
	return 0, false
}

// MustInt extracts an int from a reified term or panics. Intended for
// examples and tests where the shape of the answer is already known.
func MustInt(t Term) int {
	if v, ok := AsInt(t); ok {
		return v
	}
	panic(fmt.Sprintf("minikanren: expected int atom, got %T: %s", t, Pretty(t)))
}

// AsString extracts a string from a reified term, reporting ok=false if
// the term isn't an Atom wrapping one.
func AsString(t Term) (string, bool) {
	if a, ok := t.(*Atom); ok {
		if v, ok2 := a.Value().(string); ok2 {
			return v, true
		}
	}
	return "", false
}

// MustString extracts a string from a reified term or panics.
func MustString(t Term) string {
	if v, ok := AsString(t); ok {
		return v
	}
	panic(fmt.Sprintf("minikanren: expected string atom, got %T: %s", t, Pretty(t)))
}

// AsList collects a proper list term into a Go slice of its elements,
// reporting ok=false if t isn't a proper list (any improper tail, or a
// non-list term, fails).
func AsList(t Term) ([]Term, bool) {
	if a, ok := t.(*Atom); ok && a.Value() == nil {
		return []Term{}, true
	}
	var elems []Term
	cur := t
	for {
		p, ok := cur.(*Pair)
		if !ok {
			if a, ok := cur.(*Atom); ok && a.Value() == nil {
				return elems, true
			}
			return nil, false
		}
		elems = append(elems, p.Car())
		cur = p.Cdr()
	}
}
