package minikanren

import "testing"

func TestSucceedAndFail(t *testing.T) {
	if got := Take(Succeed(Empty()), Unbounded); len(got) != 1 {
		t.Errorf("Succeed should yield exactly one answer, got %d", len(got))
	}
	if got := Take(Fail(Empty()), Unbounded); len(got) != 0 {
		t.Errorf("Fail should yield no answers, got %d", len(got))
	}
}

func TestIdentical(t *testing.T) {
	x := FreshVar()
	t.Run("unifiable terms succeed", func(t *testing.T) {
		got := Take(Identical(x, NewAtom(1))(Empty()), Unbounded)
		if len(got) != 1 {
			t.Fatalf("expected one answer, got %d", len(got))
		}
		if w := Walk(got[0], x); !w.Equal(NewAtom(1)) {
			t.Errorf("x = %v, want 1", w)
		}
	})
	t.Run("conflicting terms fail", func(t *testing.T) {
		g := Identical(NewAtom(1), NewAtom(2))
		if got := Take(g(Empty()), Unbounded); len(got) != 0 {
			t.Errorf("expected no answers, got %d", len(got))
		}
	})
}

func TestDisjUnionsAnswers(t *testing.T) {
	x := FreshVar()
	g := Disj(Identical(x, NewAtom(1)), Identical(x, NewAtom(2)))

	got := Take(g(Empty()), Unbounded)
	if len(got) != 2 {
		t.Fatalf("expected two answers, got %d", len(got))
	}
}

func TestConjRequiresBoth(t *testing.T) {
	x := FreshVar()
	y := FreshVar()

	t.Run("both succeed", func(t *testing.T) {
		g := Conj(Identical(x, NewAtom(1)), Identical(y, NewAtom(2)))
		got := Take(g(Empty()), Unbounded)
		if len(got) != 1 {
			t.Fatalf("expected one answer, got %d", len(got))
		}
	})
	t.Run("second conjunct fails", func(t *testing.T) {
		g := Conj(Identical(x, NewAtom(1)), Identical(x, NewAtom(2)))
		got := Take(g(Empty()), Unbounded)
		if len(got) != 0 {
			t.Fatalf("expected no answers, got %d", len(got))
		}
	})
}

func TestDelayDefersWork(t *testing.T) {
	ran := false
	g := Delay(func() Goal {
		return func(s *Subst) *Stream {
			ran = true
			return Succeed(s)
		}
	})

	stream := g(Empty())
	if ran {
		t.Fatal("Delay must not run its goal before the stream is forced")
	}
	Take(stream, 1)
	if !ran {
		t.Fatal("forcing the suspended stream should run the goal")
	}
}

func TestDelayedRecursionTerminates(t *testing.T) {
	// A relation that would build an infinite goal tree immediately if
	// DefRel/Delay didn't suspend each recursive step.
	var loop Goal
	loop = DefRel(func() Goal {
		return Disj(Succeed, loop)
	})

	got := Take(loop(Empty()), 3)
	if len(got) != 3 {
		t.Fatalf("expected to pull 3 answers from an infinite relation, got %d", len(got))
	}
}
