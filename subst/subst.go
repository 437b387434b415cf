// Package subst implements substitutions: mappings from unification
// variable ids to type terms, with application and composition.
package subst

import "minihm/types"

// Substitution is a finite mapping from Unknown ids to type terms.
// A Substitution is not safe for concurrent use; each inference engine
// owns exactly one for the duration of a call.
type Substitution struct {
	bindings map[int]types.Type
}

// New returns an empty substitution.
func New() *Substitution {
	return &Substitution{bindings: make(map[int]types.Type)}
}

// Extend inserts a single binding id -> t. The caller is responsible for
// having already checked the occurs condition; Extend does not check it.
func (s *Substitution) Extend(id int, t types.Type) {
	s.bindings[id] = t
}

// Lookup returns the binding for id, if any, without resolving further.
func (s *Substitution) Lookup(id int) (types.Type, bool) {
	t, ok := s.bindings[id]
	return t, ok
}

// Len returns the number of bindings currently held.
func (s *Substitution) Len() int { return len(s.bindings) }

// Apply recursively rewrites t, replacing every Unknown whose id is a key
// of the substitution with the (further-applied) value of that key. The
// result is fully expanded: no Unknown in the result is a key of s.
func (s *Substitution) Apply(t types.Type) types.Type {
	switch t := t.(type) {
	case *types.Unknown:
		if bound, ok := s.bindings[t.ID]; ok {
			return s.Apply(bound)
		}
		return t
	case *types.Func:
		arg := s.Apply(t.Arg)
		result := s.Apply(t.Result)
		if arg == t.Arg && result == t.Result {
			return t
		}
		return &types.Func{Arg: arg, Result: result}
	default:
		return t
	}
}

// Compose returns a substitution equivalent to applying s first, then
// other: compose(s, other).Apply(t) == other.Apply(s.Apply(t)).
//
// The engine keeps a single mutable substitution and extends it in
// place as unification proceeds, so Compose is not required for the
// core algorithm; it is provided to satisfy the algebraic contract
// described for substitutions and to let callers combine independently
// built substitutions (e.g. in tests).
func (s *Substitution) Compose(other *Substitution) *Substitution {
	merged := make(map[int]types.Type, len(s.bindings)+len(other.bindings))
	for id, t := range s.bindings {
		merged[id] = other.Apply(t)
	}
	for id, t := range other.bindings {
		if _, exists := merged[id]; !exists {
			merged[id] = t
		}
	}
	return &Substitution{bindings: merged}
}
