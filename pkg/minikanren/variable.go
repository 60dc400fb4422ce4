package minikanren

import "sync/atomic"

// varCounter mints process-unique variable identities. It is the only
// mutable state in the package; every other value — terms, substitutions,
// streams, goals — is immutable once constructed.
var varCounter int64

// FreshVar allocates an anonymous logic variable with a globally unique
// id. Safe to call concurrently, though the engine itself never needs to.
func FreshVar() *Var {
	return &Var{id: atomic.AddInt64(&varCounter, 1)}
}

// FreshNamed allocates a logic variable carrying a debug name. The name
// has no effect on equality or unification; it is surfaced only by
// String() and by the CLI's pretty-printer.
func FreshNamed(name string) *Var {
	return &Var{id: atomic.AddInt64(&varCounter, 1), name: name}
}

// FreshVars allocates one variable per name given, in order. A blank name
// ("") produces an anonymous variable.
func FreshVars(names ...string) []*Var {
	vars := make([]*Var, len(names))
	for i, n := range names {
		vars[i] = FreshNamed(n)
	}
	return vars
}
