// Package types defines the type-term model for the inference engine:
// base types, unification variables ("unknowns"), and function arrows.
//
// Type terms are immutable once constructed; unification never mutates
// a Type value in place, it only extends a substitution that maps
// Unknown ids to Type values.
package types

// Type is the base interface for all type terms.
type Type interface {
	TypeName() string
}

// Base is a built-in type constant, e.g. "Int", "Bool", "String".
type Base struct {
	Name string
}

func (t *Base) TypeName() string { return "Base" }

// Unknown is a unification variable, identified by a positive integer.
type Unknown struct {
	ID int
}

func (t *Unknown) TypeName() string { return "Unknown" }

// Func is a function arrow: Arg -> Result. Arrows are right-associative
// in surface syntax: A -> B -> C is Func{A, Func{B, C}}.
type Func struct {
	Arg    Type
	Result Type
}

func (t *Func) TypeName() string { return "Func" }

// Equal reports whether a and b are structurally identical type terms.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Base:
		b, ok := b.(*Base)
		return ok && a.Name == b.Name
	case *Unknown:
		b, ok := b.(*Unknown)
		return ok && a.ID == b.ID
	case *Func:
		b, ok := b.(*Func)
		return ok && Equal(a.Arg, b.Arg) && Equal(a.Result, b.Result)
	default:
		return false
	}
}

// Occurs reports whether the unification variable identified by id
// appears anywhere within t.
func Occurs(id int, t Type) bool {
	switch t := t.(type) {
	case *Unknown:
		return t.ID == id
	case *Func:
		return Occurs(id, t.Arg) || Occurs(id, t.Result)
	default:
		return false
	}
}
