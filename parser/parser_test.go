package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minihm/ast"
	"minihm/parser"
)

func TestParseIntLit(t *testing.T) {
	e, err := parser.ParseExpr("42")
	require.NoError(t, err)
	lit, ok := e.(*ast.IntLit)
	require.True(t, ok)
	assert.EqualValues(t, 42, lit.Value)
}

func TestParseStringLit(t *testing.T) {
	e, err := parser.ParseExpr(`"Hello :)"`)
	require.NoError(t, err)
	lit, ok := e.(*ast.StringLit)
	require.True(t, ok)
	assert.Equal(t, "Hello :)", lit.Value)
}

func TestParseLambdaNesting(t *testing.T) {
	e, err := parser.ParseExpr(`\x -> (\y -> x)`)
	require.NoError(t, err)
	outer, ok := e.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, "x", outer.Param)
	inner, ok := outer.Body.(*ast.Lambda)
	require.True(t, ok)
	assert.Equal(t, "y", inner.Param)
	innerVar, ok := inner.Body.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "x", innerVar.Name)
}

func TestParseApplicationIsLeftAssociative(t *testing.T) {
	e, err := parser.ParseExpr("f x y")
	require.NoError(t, err)
	outer, ok := e.(*ast.App)
	require.True(t, ok)
	inner, ok := outer.Func.(*ast.App)
	require.True(t, ok)
	fVar, ok := inner.Func.(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "f", fVar.Name)
}

func TestParseLetIsRecursiveByDefault(t *testing.T) {
	e, err := parser.ParseExpr("let identity = \\x -> x in identity 5")
	require.NoError(t, err)
	let, ok := e.(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "identity", let.Name)
	_, ok = let.Bound.(*ast.Lambda)
	assert.True(t, ok)
	_, ok = let.Body.(*ast.App)
	assert.True(t, ok)
}

func TestParseIf(t *testing.T) {
	e, err := parser.ParseExpr("if true then 0 else 1")
	require.NoError(t, err)
	ifExpr, ok := e.(*ast.If)
	require.True(t, ok)
	_, ok = ifExpr.Cond.(*ast.BoolLit)
	assert.True(t, ok)
}

func TestParseRecursiveSumExample(t *testing.T) {
	src := `let sum = \x -> if eq_int x 0 then 0 else add x (sum (sub x 1)) in sum 3`
	_, err := parser.ParseExpr(src)
	require.NoError(t, err)
}

func TestParseTrailingGarbageIsError(t *testing.T) {
	_, err := parser.ParseExpr("42 43 )")
	assert.Error(t, err)
}
