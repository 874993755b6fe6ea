package diskavl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rootValue(t *testing.T, s *Set[int64]) int64 {
	t.Helper()
	off, err := s.st.root()
	require.NoError(t, err)
	v, err := s.value(off)
	require.NoError(t, err)
	return v
}

func rootHeight(t *testing.T, s *Set[int64]) int32 {
	t.Helper()
	off, err := s.st.root()
	require.NoError(t, err)
	h, err := s.st.height(off)
	require.NoError(t, err)
	return h
}

func TestAscendingSpineRotations(t *testing.T) {
	s, _ := openInt64(t)

	for v := int64(1); v <= 7; v++ {
		added, err := s.Add(v)
		require.NoError(t, err)
		require.True(t, added)
		require.NoError(t, s.Verify(), "after inserting %d", v)

		if v == 3 {
			// First rotation: the 1-2-3 spine pivots about 1.
			require.Equal(t, int64(2), rootValue(t, s))
		}
	}
	require.Equal(t, int32(2), rootHeight(t, s))
}

func TestDescendingSpineRotations(t *testing.T) {
	s, _ := openInt64(t)

	for v := int64(7); v >= 1; v-- {
		added, err := s.Add(v)
		require.NoError(t, err)
		require.True(t, added)
		require.NoError(t, s.Verify(), "after inserting %d", v)
	}
	require.Equal(t, int32(2), rootHeight(t, s))
}

func TestSingleAndDoubleRotationCases(t *testing.T) {
	cases := []struct {
		name    string
		inserts []int64
	}{
		{"left-left", []int64{3, 2, 1}},
		{"right-right", []int64{1, 2, 3}},
		{"left-right", []int64{3, 1, 2}},
		{"right-left", []int64{1, 3, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := openInt64(t)
			for _, v := range tc.inserts {
				_, err := s.Add(v)
				require.NoError(t, err)
			}
			require.NoError(t, s.Verify())
			require.Equal(t, int64(2), rootValue(t, s))
			require.Equal(t, int32(1), rootHeight(t, s))
		})
	}
}

func TestZigZagInserts(t *testing.T) {
	s, _ := openInt64(t)

	// Alternate ends toward the middle so both double-rotation shapes fire
	// along the way.
	vals := []int64{1, 100, 2, 99, 3, 98, 4, 97, 5, 96, 6, 95, 7, 94}
	for _, v := range vals {
		_, err := s.Add(v)
		require.NoError(t, err)
		require.NoError(t, s.Verify(), "after inserting %d", v)
	}

	n, err := s.Len()
	require.NoError(t, err)
	require.Equal(t, int64(len(vals)), n)
}
