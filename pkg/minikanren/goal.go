package minikanren

// Goal is a relation applied to its arguments, reduced to the one thing
// every relation boils down to: a function from a substitution to the
// stream of substitutions that satisfy it. Goals are pure values — no
// goal ever mutates the substitution it receives or any stream it
// returns.
type Goal func(s *Subst) *Stream

// Succeed is the goal that always holds, returning s unchanged as its
// only answer.
func Succeed(s *Subst) *Stream {
	return ConsStream(s, EmptyStream)
}

// Fail is the goal that never holds.
func Fail(s *Subst) *Stream {
	return EmptyStream
}

// Identical is the unification primitive: it holds wherever u and v can
// be made equal, extending s with whatever bindings that takes.
func Identical(u, v Term) Goal {
	return func(s *Subst) *Stream {
		s2, ok := Unify(s, u, v)
		if !ok {
			return EmptyStream
		}
		return ConsStream(s2, EmptyStream)
	}
}

// Disj holds wherever either g1 or g2 holds. Answers are drawn from both
// branches in a fair interleaving — see Append — so an infinite g1 can
// never prevent g2's answers from surfacing.
func Disj(g1, g2 Goal) Goal {
	return func(s *Subst) *Stream {
		return Append(g1(s), g2(s))
	}
}

// Conj holds wherever g1 holds and, for each way it can, g2 also holds
// against the resulting substitution.
func Conj(g1, g2 Goal) Goal {
	return func(s *Subst) *Stream {
		return AppendMap(g1(s), g2)
	}
}

// Delay turns a goal-producing thunk into a goal that suspends before
// doing any work — including building the goal thunk returns. Every
// defrel body is wrapped in Delay by the clause compiler (the inverse-eta
// delay) so that a recursive relation reaches its base case on demand
// rather than unfolding its whole call tree the moment it's applied. The
// thunk, not just its application to s, has to be what's deferred: Go
// evaluates arguments before a call, so a Goal built eagerly (say, a
// Conde whose branches recurse) would already be infinite by the time
// Delay ever saw it.
func Delay(thunk func() Goal) Goal {
	return func(s *Subst) *Stream {
		return SuspendStream(func() *Stream {
			return thunk()(s)
		})
	}
}
