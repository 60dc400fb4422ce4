package minikanren

import "fmt"

// CompileError reports a malformed clause: a Fresh call asked for a
// negative variable count, a Run/RunBlock call given an answer count
// below Unbounded or no query variables, or similar mistakes a
// programmer makes while building a goal tree. These are raised by
// panicking with a *CompileError — search failure (no answers) is
// reported entirely differently, by an empty Stream, never by an error.
type CompileError struct {
	Op  string
	Msg string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("minikanren: %s: %s", e.Op, e.Msg)
}

func newCompileError(op, format string, args ...interface{}) *CompileError {
	return &CompileError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
