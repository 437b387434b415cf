// Package env implements the typing environment: an immutable mapping
// from variable names to type terms.
package env

import (
	"github.com/benbjohnson/immutable"

	"minihm/types"
)

var emptyMap = immutable.NewSortedMap(nil)

// Env is an immutable name -> Type mapping. Extending an Env returns a
// new Env; the receiver is left untouched, so sibling subtrees of an
// expression can share a parent environment safely.
type Env struct {
	m *immutable.SortedMap
}

// New returns an empty environment.
func New() *Env {
	return &Env{m: emptyMap}
}

// Lookup returns the type bound to name, and whether it was found.
func (e *Env) Lookup(name string) (types.Type, bool) {
	if e == nil {
		return nil, false
	}
	v, ok := e.m.Get(name)
	if !ok {
		return nil, false
	}
	return v.(types.Type), true
}

// Extend returns a new environment with name bound to t. If name was
// already bound, the new binding shadows the old one in the returned
// environment; the receiver's binding for name (if any) is unaffected.
func (e *Env) Extend(name string, t types.Type) *Env {
	base := emptyMap
	if e != nil {
		base = e.m
	}
	return &Env{m: base.Set(name, t)}
}

// Len returns the number of bindings in the environment.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return e.m.Len()
}

// FromMap builds an environment from a plain Go map, useful for setting
// up an initial typing environment (e.g. built-in operators) in tests
// and the CLI driver.
func FromMap(bindings map[string]types.Type) *Env {
	e := New()
	for name, t := range bindings {
		e = e.Extend(name, t)
	}
	return e
}
