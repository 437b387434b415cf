package printer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minihm/printer"
	"minihm/types"
)

func TestPrintBase(t *testing.T) {
	assert.Equal(t, "Int", printer.Print(&types.Base{Name: "Int"}))
}

func TestPrintUnknown(t *testing.T) {
	assert.Equal(t, "u3", printer.Print(&types.Unknown{ID: 3}))
}

func TestPrintFuncRightAssociative(t *testing.T) {
	// u1 -> u2 -> u1
	ty := &types.Func{
		Arg:    &types.Unknown{ID: 1},
		Result: &types.Func{Arg: &types.Unknown{ID: 2}, Result: &types.Unknown{ID: 1}},
	}
	assert.Equal(t, "u1 -> u2 -> u1", printer.Print(ty))
}

func TestPrintFuncArgParenthesized(t *testing.T) {
	// (Int -> Bool) -> String: the argument is itself a Func, so it is
	// parenthesized to preserve right-associative reading.
	ty := &types.Func{
		Arg:    &types.Func{Arg: &types.Base{Name: "Int"}, Result: &types.Base{Name: "Bool"}},
		Result: &types.Base{Name: "String"},
	}
	assert.Equal(t, "(Int -> Bool) -> String", printer.Print(ty))
}
