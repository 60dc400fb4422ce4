package minikanren

// Subst is an immutable, triangular mapping from variable id to term. It
// is represented as a persistent chain of binding frames rather than a
// copy-on-write map: ExtendUnsafe conses a new frame onto the front in
// O(1), and Walk follows the chain in O(chain length). This is the
// "linked list of recent extensions" representation — it gives every
// substitution built so far free structural sharing with every
// substitution derived from it, which is what makes backtracking through
// a suspended stream continuation cheap: the continuation simply holds a
// pointer into a chain nobody else mutates.
//
// The nil *Subst is the empty substitution.
type Subst struct {
	id     int64
	term   Term
	parent *Subst
}

// Empty returns the substitution with no bindings.
func Empty() *Subst { return nil }

// ExtendUnsafe binds x to v without any occurs-check. It can introduce a
// cyclic substitution if the caller hasn't established safety elsewhere
// (see the two-fresh-variables case in Unify). Walk diverges on a cycle,
// so callers outside Unify should prefer Extend.
func ExtendUnsafe(s *Subst, x *Var, v Term) *Subst {
	return &Subst{id: x.id, term: v, parent: s}
}

// lookup returns the term directly bound to a variable id, if any. It
// does not follow chains of bindings — that's Walk's job.
func (s *Subst) lookup(id int64) (Term, bool) {
	for f := s; f != nil; f = f.parent {
		if f.id == id {
			return f.term, true
		}
	}
	return nil, false
}

// Walk follows variable bindings in s until it reaches a non-variable
// term or a variable with no binding in s (a "fresh" variable). Walking a
// substitution built only through Extend/Unify always terminates, since
// those never introduce cycles.
func Walk(s *Subst, t Term) Term {
	for {
		v, ok := t.(*Var)
		if !ok {
			return t
		}
		bound, found := s.lookup(v.id)
		if !found {
			return t
		}
		t = bound
	}
}

// OccursIn reports whether x appears anywhere in the term tree reached by
// deeply walking v under s — in the head or tail of any Pair,
// recursively. It is the cycle guard behind Extend.
func OccursIn(s *Subst, x *Var, v Term) bool {
	return occursIn(s, x, Walk(s, v))
}

func occursIn(s *Subst, x *Var, walked Term) bool {
	switch t := walked.(type) {
	case *Var:
		return t.id == x.id
	case *Pair:
		return occursIn(s, x, Walk(s, t.Car())) || occursIn(s, x, Walk(s, t.Cdr()))
	default:
		return false
	}
}

// Extend binds x to v, refusing to create a cycle. It reports ok=false
// (the "failure" marker of §7) if x occurs in the walked form of v; the
// returned substitution is meaningless in that case.
func Extend(s *Subst, x *Var, v Term) (*Subst, bool) {
	if OccursIn(s, x, v) {
		return nil, false
	}
	return ExtendUnsafe(s, x, v), true
}

// Unify computes a most general extension of s making u and v equal, or
// reports ok=false if no such extension exists.
func Unify(s *Subst, u, v Term) (*Subst, bool) {
	u = Walk(s, u)
	v = Walk(s, v)

	if u.Equal(v) {
		return s, true
	}

	uVar, uIsVar := u.(*Var)
	vVar, vIsVar := v.(*Var)

	switch {
	case uIsVar && vIsVar:
		// Both walked to fresh variables (Walk never returns a bound one).
		// Two distinct fresh variables can't introduce a cycle, so the
		// occurs-check Extend would run is provably redundant here.
		return ExtendUnsafe(s, uVar, v), true
	case uIsVar:
		return Extend(s, uVar, v)
	case vIsVar:
		return Extend(s, vVar, u)
	}

	uPair, uIsPair := u.(*Pair)
	vPair, vIsPair := v.(*Pair)
	if uIsPair && vIsPair {
		s1, ok := Unify(s, uPair.Car(), vPair.Car())
		if !ok {
			return nil, false
		}
		return Unify(s1, uPair.Cdr(), vPair.Cdr())
	}

	return nil, false
}

// DeepWalk recursively walks t, rewriting every Pair with deep-walked
// sub-terms. The result contains only fresh variables and ground
// constructors. The cdr spine of a list is walked iteratively so that
// deep-walking a long list doesn't consume a stack frame per element.
func DeepWalk(s *Subst, t Term) Term {
	t = Walk(s, t)
	if _, ok := t.(*Pair); !ok {
		return t
	}

	var cars []Term
	cur := t
	for {
		p, ok := cur.(*Pair)
		if !ok {
			break
		}
		cars = append(cars, DeepWalk(s, p.Car()))
		cur = Walk(s, p.Cdr())
	}

	result := cur
	for i := len(cars) - 1; i >= 0; i-- {
		result = NewPair(cars[i], result)
	}
	return result
}
