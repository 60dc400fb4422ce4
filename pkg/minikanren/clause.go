package minikanren

// This file is the clause compiler: the handful of constructors that
// turn the surface vocabulary of fresh/conde/defrel/run into the goal
// trees goal.go knows how to run. Nothing here touches a Subst or a
// Stream directly — it only folds Goal values together in the order the
// surface forms require.

// ConjOf folds goals into a single left-associative conjunction. An
// empty call is vacuously true (Succeed); a single goal is returned
// unwrapped.
func ConjOf(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Succeed
	case 1:
		return goals[0]
	}
	g := goals[0]
	for _, next := range goals[1:] {
		g = Conj(g, next)
	}
	return g
}

// DisjOf folds goals into a single left-associative disjunction. An
// empty call never holds (Fail); a single goal is returned unwrapped.
func DisjOf(goals ...Goal) Goal {
	switch len(goals) {
	case 0:
		return Fail
	case 1:
		return goals[0]
	}
	g := goals[0]
	for _, next := range goals[1:] {
		g = Disj(g, next)
	}
	return g
}

// Fresh allocates n anonymous logic variables and passes them to body,
// which builds the goal that uses them. The variables are allocated the
// moment Fresh is called, not deferred — callers that need the
// allocation itself deferred (so a recursive relation doesn't allocate
// its whole call tree eagerly) wrap the enclosing goal in Delay, which is
// exactly what DefRel does for a relation's body.
func Fresh(n int, body func(vars []*Var) Goal) Goal {
	if n < 0 {
		panic(newCompileError("Fresh", "negative variable count %d", n))
	}
	vars := make([]*Var, n)
	for i := range vars {
		vars[i] = FreshVar()
	}
	return body(vars)
}

// FreshNamedVars allocates one named variable per entry in names and
// passes them to body, in order. Named variables behave identically to
// anonymous ones during search; the names exist only so Run/RunBlock
// queries read naturally and so debugging output is legible.
func FreshNamedVars(names []string, body func(vars []*Var) Goal) Goal {
	vars := FreshVars(names...)
	return body(vars)
}

// Clause is one conjunctive branch of a Conde: a conjunction of goals
// that either all hold together or the branch fails as a whole.
type Clause []Goal

// Conde holds wherever at least one of its clauses holds, trying each
// clause's goals as a conjunction. Clauses are explored in the fair
// interleaving Disj/Append provide, so a clause that recurses forever
// never starves the clauses after it.
func Conde(clauses ...Clause) Goal {
	branches := make([]Goal, len(clauses))
	for i, c := range clauses {
		branches[i] = ConjOf(c...)
	}
	return DisjOf(branches...)
}

// DefRel marks body as a relation definition, applying the mandatory
// inverse-eta delay: body is not called, and so builds no goal tree at
// all, until something actually pulls an answer through the relation.
// Without this delay a relation that recurses before ever failing or
// succeeding — which every useful recursive relation does — would try
// to build an infinite goal tree the moment it's applied rather than
// only as far as the search actually needs.
func DefRel(body func() Goal) Goal {
	return Delay(body)
}

// Run collects up to n reified answers for a single query variable. n
// may be Unbounded to collect every answer, which only terminates if the
// goal's search space is finite.
func Run(n int, query func(q *Var) Goal) []Term {
	tuples := RunBlock(n, []string{"q"}, func(vars []*Var) Goal {
		return query(vars[0])
	})
	out := make([]Term, len(tuples))
	for i, tuple := range tuples {
		out[i] = tuple.(*Pair).Car()
	}
	return out
}

// RunBlock collects up to n reified answers for several query
// variables at once, one per name in names. Each answer is a proper list
// of the variables' reified values, in the order names were given, with
// any variables still shared across the tuple reified to the same name.
func RunBlock(n int, names []string, query func(vars []*Var) Goal) []Term {
	if n < Unbounded {
		panic(newCompileError("Run", "invalid answer count %d", n))
	}
	if len(names) == 0 {
		panic(newCompileError("Run", "at least one query variable is required"))
	}
	vars := FreshVars(names...)
	varTerms := make([]Term, len(vars))
	for i, v := range vars {
		varTerms[i] = v
	}

	goal := query(vars)
	answers := Take(goal(Empty()), n)

	results := make([]Term, len(answers))
	for i, s := range answers {
		results[i] = Reify(s, List(varTerms...))
	}
	return results
}
