package hm

import (
	"minihm/printer"
	"minihm/types"
)

// ScopeError is raised when a Var refers to a name not present in the
// current environment. It is never recovered internally; it propagates
// to the top of the InferExpr call that raised it.
type ScopeError struct {
	Name string
}

func (e *ScopeError) Error() string {
	return "Unknown variable " + e.Name
}

// UnifyError is raised by the unifier on a structural mismatch or an
// occurs-check violation. Left and Right are the two terms as they
// stood, after applying the current substitution, at the point of
// failure; either ordering may appear.
type UnifyError struct {
	Left, Right types.Type
}

func (e *UnifyError) Error() string {
	return "Can't match " + printer.Print(e.Left) + " with " + printer.Print(e.Right)
}
