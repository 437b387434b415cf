// Package hm implements a Hindley-Milner type inference engine for a
// small ML-family expression language: base types, unification
// variables, and function arrows; let-bindings are always potentially
// recursive and are never generalized to type schemes.
//
// The implementation follows Algorithm W: a single re-usable Engine
// holds a mutable substitution and a fresh-variable counter for the
// duration of one InferExpr call, extends the substitution as
// unification proceeds, and applies it to the result before returning
// (zonking) so that only the principal type's free variables remain.
//
// Links:
//
// Hindley-Milner type system (Wikipedia): https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package hm
