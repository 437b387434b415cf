// Package construct provides small constructor helpers for building
// ast.Expr and types.Type values directly in tests, without going
// through the parser.
package construct

import (
	"minihm/ast"
	"minihm/types"
)

// Types

// TBase constructs a base type: Int, Bool, String, ...
func TBase(name string) *types.Base { return &types.Base{Name: name} }

// TUnknown constructs a unification variable with a given id.
func TUnknown(id int) *types.Unknown { return &types.Unknown{ID: id} }

// TFunc constructs a function arrow: arg -> result.
func TFunc(arg, result types.Type) *types.Func { return &types.Func{Arg: arg, Result: result} }

// TArrow constructs a curried, right-associative chain of arrows ending
// in ret, e.g. TArrow(ret, a, b) is a -> b -> ret.
func TArrow(ret types.Type, args ...types.Type) types.Type {
	t := ret
	for i := len(args) - 1; i >= 0; i-- {
		t = &types.Func{Arg: args[i], Result: t}
	}
	return t
}

// Expressions

// Int constructs an integer literal.
func Int(n int64) *ast.IntLit { return &ast.IntLit{Value: n} }

// Bool constructs a boolean literal.
func Bool(b bool) *ast.BoolLit { return &ast.BoolLit{Value: b} }

// Str constructs a string literal.
func Str(s string) *ast.StringLit { return &ast.StringLit{Value: s} }

// Var constructs a variable reference.
func Var(name string) *ast.Var { return &ast.Var{Name: name} }

// Lambda constructs a single-parameter abstraction.
func Lambda(param string, body ast.Expr) *ast.Lambda {
	return &ast.Lambda{Param: param, Body: body}
}

// App constructs a function application.
func App(fn, arg ast.Expr) *ast.App { return &ast.App{Func: fn, Arg: arg} }

// Apply constructs a left-associative chain of applications:
// Apply(f, x, y) is App{App{f, x}, y}.
func Apply(fn ast.Expr, args ...ast.Expr) ast.Expr {
	e := fn
	for _, arg := range args {
		e = &ast.App{Func: e, Arg: arg}
	}
	return e
}

// If constructs a conditional.
func If(cond, then, els ast.Expr) *ast.If { return &ast.If{Cond: cond, Then: then, Else: els} }

// Let constructs a (potentially recursive) let-binding.
func Let(name string, bound, body ast.Expr) *ast.Let {
	return &ast.Let{Name: name, Bound: bound, Body: body}
}
