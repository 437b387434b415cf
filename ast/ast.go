// Package ast defines the expression-tree shapes consumed by the
// inference engine. The surface-syntax parser (package parser) is the
// only producer of these trees outside of tests and the construct
// package's fixture builders.
package ast

// Expr is the base for all expressions.
type Expr interface {
	// ExprName is the syntax-type name of the expression, used in
	// diagnostics.
	ExprName() string
}

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*BoolLit)(nil)
	_ Expr = (*StringLit)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Lambda)(nil)
	_ Expr = (*App)(nil)
	_ Expr = (*If)(nil)
	_ Expr = (*Let)(nil)
)

// IntLit is an integer literal, e.g. 42.
type IntLit struct {
	Value int64
}

func (e *IntLit) ExprName() string { return "IntLit" }

// BoolLit is a boolean literal: true or false.
type BoolLit struct {
	Value bool
}

func (e *BoolLit) ExprName() string { return "BoolLit" }

// StringLit is a double-quoted string literal.
type StringLit struct {
	Value string
}

func (e *StringLit) ExprName() string { return "StringLit" }

// Var is a variable reference.
type Var struct {
	Name string
}

func (e *Var) ExprName() string { return "Var" }

// Lambda is a single-parameter abstraction: \param -> body.
// Multi-parameter functions are curried at the surface.
type Lambda struct {
	Param string
	Body  Expr
}

func (e *Lambda) ExprName() string { return "Lambda" }

// App is function application: Func Arg. Application is left-associative
// at the surface, so f x y parses as App{App{f, x}, y}.
type App struct {
	Func Expr
	Arg  Expr
}

func (e *App) ExprName() string { return "App" }

// If is a conditional: if Cond then Then else Else.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (e *If) ExprName() string { return "If" }

// Let is a (potentially recursive) let-binding: let Name = Bound in Body.
// Name is in scope within both Bound and Body.
type Let struct {
	Name  string
	Bound Expr
	Body  Expr
}

func (e *Let) ExprName() string { return "Let" }
