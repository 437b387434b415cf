package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minihm/subst"
	"minihm/types"
)

func TestApplyResolvesChain(t *testing.T) {
	s := subst.New()
	s.Extend(1, &types.Unknown{ID: 2})
	s.Extend(2, &types.Base{Name: "Int"})

	got := s.Apply(&types.Unknown{ID: 1})
	require.IsType(t, &types.Base{}, got)
	assert.Equal(t, "Int", got.(*types.Base).Name)
}

func TestApplyLeavesUnboundUnknown(t *testing.T) {
	s := subst.New()
	u := &types.Unknown{ID: 7}
	assert.True(t, types.Equal(u, s.Apply(u)))
}

func TestApplyRecursesIntoFunc(t *testing.T) {
	s := subst.New()
	s.Extend(1, &types.Base{Name: "Int"})
	s.Extend(2, &types.Base{Name: "Bool"})

	ft := &types.Func{Arg: &types.Unknown{ID: 1}, Result: &types.Unknown{ID: 2}}
	got := s.Apply(ft)

	want := &types.Func{Arg: &types.Base{Name: "Int"}, Result: &types.Base{Name: "Bool"}}
	assert.True(t, types.Equal(want, got))
}

// Soundness of apply: after Apply, no remaining Unknown in the result is a
// key of the substitution.
func TestApplyIsFixedPoint(t *testing.T) {
	s := subst.New()
	s.Extend(1, &types.Unknown{ID: 2})
	s.Extend(2, &types.Unknown{ID: 3})
	s.Extend(3, &types.Base{Name: "String"})

	got := s.Apply(&types.Unknown{ID: 1})
	require.IsType(t, &types.Base{}, got)
	assert.Equal(t, "String", got.(*types.Base).Name)
}

func TestCompose(t *testing.T) {
	s1 := subst.New()
	s1.Extend(1, &types.Unknown{ID: 2})
	s2 := subst.New()
	s2.Extend(2, &types.Base{Name: "Int"})

	composed := s1.Compose(s2)
	direct := s2.Apply(s1.Apply(&types.Unknown{ID: 1}))

	assert.True(t, types.Equal(direct, composed.Apply(&types.Unknown{ID: 1})))
}
