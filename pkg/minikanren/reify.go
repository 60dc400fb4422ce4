package minikanren

import "fmt"

// Reify deep-walks t under s and renames every variable still free in
// the result to _0, _1, _2, … in left-to-right depth-first order of
// first occurrence. Two occurrences of the same free variable always get
// the same reified name; occurrences of two different free variables
// never collide. The result contains no *Var terms at all — free
// variables become atoms named "_N", ready to print.
func Reify(s *Subst, t Term) Term {
	walked := DeepWalk(s, t)
	names := make(map[int64]Term)
	counter := 0
	return reifyTerm(walked, names, &counter)
}

func reifyTerm(t Term, names map[int64]Term, counter *int) Term {
	p, ok := t.(*Pair)
	if !ok {
		return reifyLeaf(t, names, counter)
	}

	var cars []Term
	cur := Term(p)
	for {
		pp, ok := cur.(*Pair)
		if !ok {
			break
		}
		cars = append(cars, reifyTerm(pp.Car(), names, counter))
		cur = pp.Cdr()
	}

	result := reifyLeaf(cur, names, counter)
	for i := len(cars) - 1; i >= 0; i-- {
		result = NewPair(cars[i], result)
	}
	return result
}

func reifyLeaf(t Term, names map[int64]Term, counter *int) Term {
	v, ok := t.(*Var)
	if !ok {
		return t
	}
	if name, ok := names[v.id]; ok {
		return name
	}
	name := NewAtom(fmt.Sprintf("_%d", *counter))
	*counter++
	names[v.id] = name
	return name
}
