package diskavl

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBloomFilterProbes(t *testing.T) {
	f := newBloomFilter(128)

	elem := func(b byte) []byte { return []byte{b, b ^ 0x5A, 3, 4, 5, 6, 7, 8} }

	// An empty filter is definitely-not-present for everything.
	require.False(t, f.maybeContains(elem(1)))

	f.insert(elem(1))
	require.True(t, f.maybeContains(elem(1)))

	for i := byte(0); i < 20; i++ {
		f.insert(elem(i))
	}
	for i := byte(0); i < 20; i++ {
		require.True(t, f.maybeContains(elem(i)))
	}
}

func TestBloomFilterNeverFalseNegative(t *testing.T) {
	s, _ := openInt64(t, WithBloomFilter(512))

	for v := int64(0); v < 512; v++ {
		_, err := s.Add(v * 3)
		require.NoError(t, err)
	}
	for v := int64(0); v < 512; v++ {
		has, err := s.Contains(v * 3)
		require.NoError(t, err)
		require.True(t, has, "present element %d filtered out", v*3)
	}
}

func TestBloomFilterRebuiltOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.avl")

	s, err := Open[int64](path, Int64Codec{})
	require.NoError(t, err)
	for v := int64(0); v < 200; v++ {
		_, err := s.Add(v * 7)
		require.NoError(t, err)
	}
	require.NoError(t, s.Close())

	// Reopen with the filter enabled: it must be rebuilt from the node
	// region, so nothing already on disk may be reported absent.
	s, err = Open[int64](path, Int64Codec{}, WithBloomFilter(1000))
	require.NoError(t, err)
	defer s.Close()

	for v := int64(0); v < 200; v++ {
		has, err := s.Contains(v * 7)
		require.NoError(t, err)
		require.True(t, has, "element %d lost across reopen", v*7)
	}

	// Absent probes still answer false, whether the filter short-circuits
	// them or the descent does.
	for v := int64(0); v < 200; v++ {
		has, err := s.Contains(v*7 + 1)
		require.NoError(t, err)
		require.False(t, has)
	}
}
