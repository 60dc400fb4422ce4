package minikanren

import "testing"

func TestReifyGroundTerm(t *testing.T) {
	got := Reify(Empty(), List(NewAtom(1), NewAtom(2)))
	want := List(NewAtom(1), NewAtom(2))
	if !got.Equal(want) {
		t.Errorf("Reify(ground term) = %v, want %v", got, want)
	}
}

func TestReifyNamesFreeVariablesInOrder(t *testing.T) {
	a, b := FreshVar(), FreshVar()
	got := Reify(Empty(), List(a, b, a))

	elems, ok := AsList(got)
	if !ok || len(elems) != 3 {
		t.Fatalf("unexpected shape: %v", got)
	}
	if s := elems[0].String(); s != "_0" {
		t.Errorf("first free variable = %v, want _0", s)
	}
	if s := elems[1].String(); s != "_1" {
		t.Errorf("second free variable = %v, want _1", s)
	}
	if !elems[0].Equal(elems[2]) {
		t.Error("repeated occurrences of the same variable must reify identically")
	}
}

func TestReifyAfterUnification(t *testing.T) {
	x, y := FreshVar(), FreshVar()
	s, ok := Unify(Empty(), x, NewAtom("hi"))
	if !ok {
		t.Fatal("unification should succeed")
	}

	got := Reify(s, List(x, y))
	elems, ok := AsList(got)
	if !ok || len(elems) != 2 {
		t.Fatalf("unexpected shape: %v", got)
	}
	if !elems[0].Equal(NewAtom("hi")) {
		t.Errorf("bound variable reified as %v, want hi", elems[0])
	}
	if elems[1].String() != "_0" {
		t.Errorf("remaining free variable reified as %v, want _0", elems[1])
	}
}

func TestReifySharedVariableInsideNestedSublist(t *testing.T) {
	// x |-> [u, w, y, z, [ice, z]], y |-> corn, w |-> [v, u]. w's binding
	// nests one free variable (v) and repeats another (u) that x's own
	// top-level spine already saw, so naming order has to follow one
	// left-to-right depth-first walk across both levels, not a walk that
	// resets inside the sublist.
	u, v, w, x, y, z := FreshVar(), FreshVar(), FreshVar(), FreshVar(), FreshVar(), FreshVar()

	s, ok := Extend(Empty(), x, List(u, w, y, z, List(NewAtom("ice"), z)))
	if !ok {
		t.Fatal("binding x failed")
	}
	s, ok = Extend(s, y, NewAtom("corn"))
	if !ok {
		t.Fatal("binding y failed")
	}
	s, ok = Extend(s, w, List(v, u))
	if !ok {
		t.Fatal("binding w failed")
	}

	got := Reify(s, x)
	want := List(
		NewAtom("_0"),
		List(NewAtom("_1"), NewAtom("_0")),
		NewAtom("corn"),
		NewAtom("_2"),
		List(NewAtom("ice"), NewAtom("_2")),
	)
	if !got.Equal(want) {
		t.Errorf("Reify(x) = %v, want %v", Pretty(got), Pretty(want))
	}
}

func TestReifyContainsNoVarTerms(t *testing.T) {
	a := FreshVar()
	got := Reify(Empty(), a)
	if got.IsVar() {
		t.Error("a reified term must never contain a *Var")
	}
}
