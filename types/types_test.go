package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"minihm/types"
)

func TestEqualBase(t *testing.T) {
	assert.True(t, types.Equal(&types.Base{Name: "Int"}, &types.Base{Name: "Int"}))
	assert.False(t, types.Equal(&types.Base{Name: "Int"}, &types.Base{Name: "Bool"}))
}

func TestEqualUnknown(t *testing.T) {
	assert.True(t, types.Equal(&types.Unknown{ID: 1}, &types.Unknown{ID: 1}))
	assert.False(t, types.Equal(&types.Unknown{ID: 1}, &types.Unknown{ID: 2}))
}

func TestEqualFunc(t *testing.T) {
	a := &types.Func{Arg: &types.Base{Name: "Int"}, Result: &types.Base{Name: "Bool"}}
	b := &types.Func{Arg: &types.Base{Name: "Int"}, Result: &types.Base{Name: "Bool"}}
	c := &types.Func{Arg: &types.Base{Name: "Int"}, Result: &types.Base{Name: "Int"}}
	assert.True(t, types.Equal(a, b))
	assert.False(t, types.Equal(a, c))
}

func TestEqualDifferentShapes(t *testing.T) {
	assert.False(t, types.Equal(&types.Base{Name: "Int"}, &types.Unknown{ID: 1}))
}

func TestOccurs(t *testing.T) {
	u := &types.Unknown{ID: 2}
	nested := &types.Func{Arg: &types.Base{Name: "Int"}, Result: u}
	assert.True(t, types.Occurs(2, nested))
	assert.False(t, types.Occurs(3, nested))
	assert.False(t, types.Occurs(2, &types.Base{Name: "Int"}))
}
