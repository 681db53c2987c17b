package gst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAddContains(t *testing.T) {
	s := NewSet[int](1, 2, 2, 3)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(4))
}

func TestSetUnion(t *testing.T) {
	a := NewSet[int](1, 2)
	b := NewSet[int](2, 3)
	u := a.Union(b)
	require.Equal(t, 3, u.Len())
	for _, id := range []int{1, 2, 3} {
		require.True(t, u.Contains(id))
	}
	// Union must not mutate its operands.
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, b.Len())
}

func TestSetToSlice(t *testing.T) {
	s := NewSet[int](5, 6, 7)
	got := s.ToSlice()
	require.ElementsMatch(t, []int{5, 6, 7}, got)
}

func TestPayloadSetPreservesInsertionOrderAndDedups(t *testing.T) {
	p := newPayloadSet()
	require.True(t, p.add(3))
	require.True(t, p.add(1))
	require.False(t, p.add(3))
	require.Equal(t, []int{3, 1}, p.ids())
}
