package hm

import "minihm/types"

// unify reconciles a and b by extending e.Substitution so that
// e.Substitution.Apply(a) == e.Substitution.Apply(b). It applies the
// current substitution to both sides before dispatching on their
// shapes.
func (e *Engine) unify(a, b types.Type) error {
	a = e.Substitution.Apply(a)
	b = e.Substitution.Apply(b)

	au, aIsUnknown := a.(*types.Unknown)
	bu, bIsUnknown := b.(*types.Unknown)

	switch {
	case aIsUnknown && bIsUnknown:
		if au.ID == bu.ID {
			return nil
		}
		return e.bind(au.ID, b)
	case aIsUnknown:
		return e.bind(au.ID, b)
	case bIsUnknown:
		return e.bind(bu.ID, a)
	}

	switch a := a.(type) {
	case *types.Base:
		if b, ok := b.(*types.Base); ok && a.Name == b.Name {
			return nil
		}
	case *types.Func:
		if b, ok := b.(*types.Func); ok {
			if err := e.unify(a.Arg, b.Arg); err != nil {
				return err
			}
			return e.unify(a.Result, b.Result)
		}
	}

	return &UnifyError{Left: a, Right: b}
}

// bind extends the substitution with id -> t, after checking that id
// does not occur within t (the occurs check). A binding that would
// create a self-referential type is reported as the same mismatch
// message the caller would see for any other unification failure.
func (e *Engine) bind(id int, t types.Type) error {
	resolved := e.Substitution.Apply(t)
	if types.Occurs(id, resolved) {
		return &UnifyError{Left: &types.Unknown{ID: id}, Right: resolved}
	}
	e.Substitution.Extend(id, resolved)
	return nil
}
