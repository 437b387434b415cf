package hm

import (
	"minihm/ast"
	"minihm/env"
	"minihm/fresh"
	"minihm/subst"
	"minihm/types"
)

// Engine is a re-usable type-inference context. An Engine owns exactly
// one substitution and one fresh-variable supply for the duration of a
// call to InferExpr; environments and expression trees passed to it
// are read-only and may be shared across calls or across engines.
//
// An Engine is not safe for concurrent use. Concurrent inference
// requires one Engine per caller.
type Engine struct {
	Substitution *subst.Substitution
	FreshSupply  *fresh.Supply

	err     error
	invalid ast.Expr
}

// New returns an Engine with an empty substitution and its fresh
// counter at 0.
func New() *Engine {
	return &Engine{
		Substitution: subst.New(),
		FreshSupply:  fresh.New(),
	}
}

// Reset clears the engine's substitution and fresh counter, so it can
// be reused for an unrelated InferExpr call without leaking state
// between them.
func (e *Engine) Reset() {
	e.Substitution = subst.New()
	e.FreshSupply.Reset()
	e.err = nil
	e.invalid = nil
}

// Err returns the error which caused the most recent InferExpr call to
// fail, or nil.
func (e *Engine) Err() error { return e.err }

// InvalidExpr returns the sub-expression which caused the most recent
// InferExpr call to fail, or nil.
func (e *Engine) InvalidExpr() ast.Expr { return e.invalid }

// InferExpr infers the principal type of expr within env, or returns
// the error that made inference fail. On success, the returned type
// has the current substitution fully applied (zonked): no unknown that
// was solved during inference survives in the result.
func (e *Engine) InferExpr(environment *env.Env, expr ast.Expr) (types.Type, error) {
	e.err, e.invalid = nil, nil
	t, err := e.infer(environment, expr)
	if err != nil {
		e.err, e.invalid = err, expr
		return nil, err
	}
	return e.Substitution.Apply(t), nil
}

func (e *Engine) infer(environment *env.Env, expr ast.Expr) (types.Type, error) {
	switch ex := expr.(type) {
	case *ast.IntLit:
		return &types.Base{Name: "Int"}, nil

	case *ast.BoolLit:
		return &types.Base{Name: "Bool"}, nil

	case *ast.StringLit:
		return &types.Base{Name: "String"}, nil

	case *ast.Var:
		t, ok := environment.Lookup(ex.Name)
		if !ok {
			return nil, &ScopeError{Name: ex.Name}
		}
		return t, nil

	case *ast.Lambda:
		argType := e.FreshSupply.Fresh()
		bodyEnv := environment.Extend(ex.Param, argType)
		resultType, err := e.infer(bodyEnv, ex.Body)
		if err != nil {
			return nil, err
		}
		return &types.Func{Arg: argType, Result: resultType}, nil

	case *ast.App:
		funcType, err := e.infer(environment, ex.Func)
		if err != nil {
			return nil, err
		}
		argType, err := e.infer(environment, ex.Arg)
		if err != nil {
			return nil, err
		}
		resultType := e.FreshSupply.Fresh()
		if err := e.unify(funcType, &types.Func{Arg: argType, Result: resultType}); err != nil {
			return nil, err
		}
		return resultType, nil

	case *ast.If:
		condType, err := e.infer(environment, ex.Cond)
		if err != nil {
			return nil, err
		}
		if err := e.unify(condType, &types.Base{Name: "Bool"}); err != nil {
			return nil, err
		}
		thenType, err := e.infer(environment, ex.Then)
		if err != nil {
			return nil, err
		}
		elseType, err := e.infer(environment, ex.Else)
		if err != nil {
			return nil, err
		}
		if err := e.unify(thenType, elseType); err != nil {
			return nil, err
		}
		return thenType, nil

	case *ast.Let:
		return e.inferLet(environment, ex)

	default:
		panic("hm: unhandled expression " + expr.ExprName())
	}
}

// inferLet implements the recursive, non-generalizing let described in
// spec.md §4.5/§4.6: a fresh variable stands in for the bound name
// while its own value is inferred (so a self-reference inside the
// bound expression is well-scoped), the two are unified, and the body
// is inferred against the same binding. No type scheme is ever
// constructed: name is monomorphic within body.
func (e *Engine) inferLet(environment *env.Env, ex *ast.Let) (types.Type, error) {
	alpha := e.FreshSupply.Fresh()
	boundEnv := environment.Extend(ex.Name, alpha)

	boundType, err := e.infer(boundEnv, ex.Bound)
	if err != nil {
		return nil, err
	}
	if err := e.unify(alpha, boundType); err != nil {
		return nil, err
	}

	// name goes out of scope again once body has been inferred; the
	// caller's environment is untouched since Extend never mutates it.
	return e.infer(boundEnv, ex.Body)
}
