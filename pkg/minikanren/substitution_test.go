package minikanren

import "testing"

func TestWalkFollowsChain(t *testing.T) {
	x := FreshVar()
	y := FreshVar()
	z := FreshVar()

	s := Empty()
	s = ExtendUnsafe(s, x, y)
	s = ExtendUnsafe(s, y, z)
	s = ExtendUnsafe(s, z, NewAtom(1))

	if got := Walk(s, x); !got.Equal(NewAtom(1)) {
		t.Errorf("Walk(x) = %v, want 1", got)
	}
}

func TestWalkStopsAtFreshVariable(t *testing.T) {
	x := FreshVar()
	y := FreshVar()
	s := ExtendUnsafe(Empty(), x, y)

	if got := Walk(s, x); !got.Equal(y) {
		t.Errorf("Walk(x) = %v, want y unbound", got)
	}
}

func TestUnifyGroundTerms(t *testing.T) {
	t.Run("equal atoms succeed", func(t *testing.T) {
		if _, ok := Unify(Empty(), NewAtom(1), NewAtom(1)); !ok {
			t.Error("unifying equal atoms should succeed")
		}
	})
	t.Run("unequal atoms fail", func(t *testing.T) {
		if _, ok := Unify(Empty(), NewAtom(1), NewAtom(2)); ok {
			t.Error("unifying unequal atoms should fail")
		}
	})
}

func TestUnifyBindsVariable(t *testing.T) {
	x := FreshVar()
	s, ok := Unify(Empty(), x, NewAtom(42))
	if !ok {
		t.Fatal("unification should succeed")
	}
	if got := Walk(s, x); !got.Equal(NewAtom(42)) {
		t.Errorf("Walk(x) = %v, want 42", got)
	}
}

func TestUnifyPairs(t *testing.T) {
	x := FreshVar()
	y := FreshVar()

	s, ok := Unify(Empty(), List(x, NewAtom(2)), List(NewAtom(1), y))
	if !ok {
		t.Fatal("unification of matching-shape pairs should succeed")
	}
	if got := Walk(s, x); !got.Equal(NewAtom(1)) {
		t.Errorf("x = %v, want 1", got)
	}
	if got := Walk(s, y); !got.Equal(NewAtom(2)) {
		t.Errorf("y = %v, want 2", got)
	}
}

func TestUnifyMismatchedPairsFail(t *testing.T) {
	if _, ok := Unify(Empty(), List(NewAtom(1), NewAtom(2)), List(NewAtom(1))); ok {
		t.Error("lists of different length should not unify")
	}
}

func TestOccursCheckRejectsCycle(t *testing.T) {
	x := FreshVar()
	if _, ok := Extend(Empty(), x, List(x)); ok {
		t.Error("extending x with a term containing x should fail the occurs-check")
	}
}

func TestUnifyTwoFreshVariablesNeverCycles(t *testing.T) {
	x := FreshVar()
	y := FreshVar()
	s, ok := Unify(Empty(), x, y)
	if !ok {
		t.Fatal("unifying two fresh variables should succeed")
	}
	// Walking either direction must terminate.
	_ = Walk(s, x)
	_ = Walk(s, y)
}

func TestDeepWalkMaterializesNestedBindings(t *testing.T) {
	x := FreshVar()
	y := FreshVar()
	s, ok := Unify(Empty(), List(x, y), List(NewAtom(1), List(NewAtom(2), NewAtom(3))))
	if !ok {
		t.Fatal("unification should succeed")
	}

	got := DeepWalk(s, List(x, y))
	want := List(NewAtom(1), List(NewAtom(2), NewAtom(3)))
	if !got.Equal(want) {
		t.Errorf("DeepWalk = %v, want %v", got, want)
	}
}

func TestDeepWalkLeavesFreeVariables(t *testing.T) {
	x := FreshVar()
	got := DeepWalk(Empty(), x)
	if !got.IsVar() {
		t.Errorf("DeepWalk of an unbound variable should return a variable, got %v", got)
	}
}
