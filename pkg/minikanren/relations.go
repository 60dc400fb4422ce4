package minikanren

// Relations built from the clause compiler: every one of these is a
// defrel in the surface language, which is why each body is wrapped in a
// thunk passed to DefRel — the delay that lets Appendo recurse down a
// list without unfolding the whole recursion the instant it's applied.

// Membero holds wherever x appears somewhere in the proper list l.
func Membero(x, l Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Fresh(1, func(vs []*Var) Goal {
				return Identical(l, Cons(x, vs[0]))
			})},
			Clause{Fresh(2, func(vs []*Var) Goal {
				head, tail := vs[0], vs[1]
				return ConjOf(
					Identical(l, Cons(head, tail)),
					Membero(x, tail),
				)
			})},
		)
	})
}

// Appendo holds wherever l, shared with s, yields out: append(l, s) ==
// out. It is the canonical bidirectional relation — run forward it
// concatenates, run with out ground and l/s free it enumerates every
// split of out.
func Appendo(l, s, out Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Identical(l, Nil), Identical(s, out)},
			Clause{Fresh(3, func(vs []*Var) Goal {
				a, d, res := vs[0], vs[1], vs[2]
				return ConjOf(
					Identical(l, Cons(a, d)),
					Identical(out, Cons(a, res)),
					Appendo(d, s, res),
				)
			})},
		)
	})
}

// Rembero holds wherever out is l with one element that unifies with x
// removed, or is l itself. With x and l ground, the first answer removes
// the first occurrence of x; later answers remove later occurrences, and
// l unchanged is always among the answers (the only one if x doesn't
// occur in l).
func Rembero(x, l, out Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Identical(l, Nil), Identical(out, Nil)},
			Clause{Fresh(2, func(vs []*Var) Goal {
				head, tail := vs[0], vs[1]
				return ConjOf(
					Identical(l, Cons(head, tail)),
					Identical(head, x),
					Identical(out, tail),
				)
			})},
			Clause{Fresh(3, func(vs []*Var) Goal {
				head, tail, rest := vs[0], vs[1], vs[2]
				return ConjOf(
					Identical(l, Cons(head, tail)),
					Identical(out, Cons(head, rest)),
					Rembero(x, tail, rest),
				)
			})},
		)
	})
}

// Lengtho holds wherever n, an int atom, is the length of the proper
// list l. Counting through peanoSucc rather than a plain Go loop lets
// either side be the ground one: with l ground, n is derived and the
// search ends; with n ground and l free, the first answer is a list of n
// fresh variables, but the search does not end after it, so only a
// bounded Run returns.
func Lengtho(l Term, n Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Identical(l, Nil), Identical(n, intAtom(0))},
			Clause{Fresh(3, func(vs []*Var) Goal {
				head, tail, nMinus1 := vs[0], vs[1], vs[2]
				return ConjOf(
					Identical(l, Cons(head, tail)),
					Lengtho(tail, nMinus1),
					peanoSucc(nMinus1, n),
				)
			})},
		)
	})
}

// SameLengtho holds wherever l1 and l2 are proper lists of equal
// length. Neither list needs to be ground.
func SameLengtho(l1, l2 Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Identical(l1, Nil), Identical(l2, Nil)},
			Clause{Fresh(4, func(vs []*Var) Goal {
				h1, t1, h2, t2 := vs[0], vs[1], vs[2], vs[3]
				return ConjOf(
					Identical(l1, Cons(h1, t1)),
					Identical(l2, Cons(h2, t2)),
					SameLengtho(t1, t2),
				)
			})},
		)
	})
}

// Reverso holds wherever out is l with its elements in reverse order.
func Reverso(l, out Term) Goal {
	return DefRel(func() Goal {
		return reversoAcc(l, Nil, out)
	})
}

func reversoAcc(l, acc, out Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Identical(l, Nil), Identical(acc, out)},
			Clause{Fresh(2, func(vs []*Var) Goal {
				head, tail := vs[0], vs[1]
				return ConjOf(
					Identical(l, Cons(head, tail)),
					reversoAcc(tail, Cons(head, acc), out),
				)
			})},
		)
	})
}

// Permuteo holds wherever out is some permutation of l. Run with l
// ground it enumerates every permutation of l, in the order repeated
// Rembero calls expose them.
func Permuteo(l, out Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Identical(l, Nil), Identical(out, Nil)},
			Clause{Fresh(5, func(vs []*Var) Goal {
				head, rest, tail, first, lTail := vs[0], vs[1], vs[2], vs[3], vs[4]
				// tail must be one element shorter than l: Rembero also
				// answers with l unchanged, which would recurse forever.
				return ConjOf(
					Identical(l, Cons(first, lTail)),
					Identical(out, Cons(head, rest)),
					Rembero(head, l, tail),
					SameLengtho(tail, lTail),
					Permuteo(tail, rest),
				)
			})},
		)
	})
}

// Flatteno holds wherever out is l with every level of list nesting
// removed, leaving a single flat proper list of l's non-list leaves in
// order.
func Flatteno(l, out Term) Goal {
	return DefRel(func() Goal {
		return Conde(
			Clause{Identical(l, Nil), Identical(out, Nil)},
			Clause{Fresh(1, func(vs []*Var) Goal {
				a := vs[0]
				return ConjOf(
					Identical(l, a),
					nonPairNonNil(a),
					Identical(out, Cons(a, Nil)),
				)
			})},
			Clause{Fresh(4, func(vs []*Var) Goal {
				head, tail, flatHead, flatTail := vs[0], vs[1], vs[2], vs[3]
				return ConjOf(
					Identical(l, Cons(head, tail)),
					Flatteno(head, flatHead),
					Flatteno(tail, flatTail),
					Appendo(flatHead, flatTail, out),
				)
			})},
		)
	})
}

// nonPairNonNil holds wherever a walks to neither a Pair nor Nil — the
// "ordinary leaf" guard Flatteno uses to decide a term is a single
// element rather than a sublist.
func nonPairNonNil(a Term) Goal {
	return func(s *Subst) *Stream {
		w := Walk(s, a)
		if w.Equal(Nil) {
			return EmptyStream
		}
		if _, ok := w.(*Pair); ok {
			return EmptyStream
		}
		return Succeed(s)
	}
}

// AllPermutedDistincto holds wherever every element of items fails to
// unify with every other element, checked against the substitution as
// it stands at the moment this goal runs. It has no way to re-check
// itself if a later binding makes two elements equal after the fact, so
// it belongs downstream of whatever enumerates items — after Permuteo
// has committed to a concrete assignment, say — not upstream of it. That
// restriction is the tradeoff for expressing "distinct" without a
// disequality constraint: a real =/= would re-fire on every future
// binding, this only ever looks once.
func AllPermutedDistincto(items []Term) Goal {
	return DefRel(func() Goal {
		return allDistinctFrom(items)
	})
}

func allDistinctFrom(items []Term) Goal {
	if len(items) < 2 {
		return Succeed
	}
	head := items[0]
	rest := items[1:]
	return ConjOf(
		notMembero(head, rest),
		allDistinctFrom(rest),
	)
}

// notMembero holds wherever x provably cannot unify with any element of
// l as l stands right now — it fails closed (refuses to hold) whenever x
// could still unify with some element, including whenever x or that
// element is an unbound variable, rather than ever assert a disequality
// constraint between two terms.
func notMembero(x Term, l []Term) Goal {
	return func(s *Subst) *Stream {
		for _, e := range l {
			if _, ok := Unify(s, x, e); ok {
				return EmptyStream
			}
		}
		return Succeed(s)
	}
}

func intAtom(n int) Term { return NewAtom(n) }

// peanoSucc holds wherever succ is one greater than n, both represented
// as int atoms — a relational successor in the spirit of a Peano
// numeral's, without paying for a unary representation. Lengtho uses it
// to count list cells symmetrically in both directions.
func peanoSucc(n, succ Term) Goal {
	return func(s *Subst) *Stream {
		nWalked := Walk(s, n)
		succWalked := Walk(s, succ)

		if nAtom, ok := nWalked.(*Atom); ok {
			if iv, ok := nAtom.Value().(int); ok {
				return Identical(succ, intAtom(iv+1))(s)
			}
		}
		if succAtom, ok := succWalked.(*Atom); ok {
			if iv, ok := succAtom.Value().(int); ok && iv > 0 {
				return Identical(n, intAtom(iv-1))(s)
			}
			return EmptyStream
		}
		return EmptyStream
	}
}
