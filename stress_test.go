package diskavl

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// refSet is the in-memory reference ordered set the engine is checked
// against: a sorted slice with binary-search lookups.
type refSet struct {
	vals []int64
}

func (r *refSet) add(v int64) bool {
	i := sort.Search(len(r.vals), func(i int) bool { return r.vals[i] >= v })
	if i < len(r.vals) && r.vals[i] == v {
		return false
	}
	r.vals = append(r.vals, 0)
	copy(r.vals[i+1:], r.vals[i:])
	r.vals[i] = v
	return true
}

func (r *refSet) contains(v int64) bool {
	i := sort.Search(len(r.vals), func(i int) bool { return r.vals[i] >= v })
	return i < len(r.vals) && r.vals[i] == v
}

func (r *refSet) higher(v int64) (int64, bool) {
	i := sort.Search(len(r.vals), func(i int) bool { return r.vals[i] > v })
	if i == len(r.vals) {
		return 0, false
	}
	return r.vals[i], true
}

func (r *refSet) ceiling(v int64) (int64, bool) {
	i := sort.Search(len(r.vals), func(i int) bool { return r.vals[i] >= v })
	if i == len(r.vals) {
		return 0, false
	}
	return r.vals[i], true
}

func (r *refSet) floor(v int64) (int64, bool) {
	i := sort.Search(len(r.vals), func(i int) bool { return r.vals[i] > v })
	if i == 0 {
		return 0, false
	}
	return r.vals[i-1], true
}

func TestRandomStressAgainstReference(t *testing.T) {
	configs := []struct {
		name string
		opts []Option
	}{
		{"plain", nil},
		{"cache", []Option{WithPayloadCache(64)}},
		{"bloom", []Option{WithBloomFilter(2000)}},
		{"cache-and-bloom", []Option{WithPayloadCache(64), WithBloomFilter(2000)}},
	}

	for _, cfg := range configs {
		t.Run(cfg.name, func(t *testing.T) {
			s, _ := openInt64(t, cfg.opts...)
			ref := &refSet{}
			rng := rand.New(rand.NewSource(42))

			for i := 0; i < 1000; i++ {
				v := int64(int32(rng.Uint32()))
				wantAdded := ref.add(v)
				added, err := s.Add(v)
				require.NoError(t, err)
				require.Equal(t, wantAdded, added, "insert %d of %d", i, v)

				n, err := s.Len()
				require.NoError(t, err)
				require.Equal(t, int64(len(ref.vals)), n)

				// The full audit reads every node; run it on a stride once
				// the tree is large.
				if i < 100 || i%50 == 0 {
					require.NoError(t, s.Verify(), "after insert %d of %d", i, v)
				}
			}
			require.NoError(t, s.Verify())

			for _, v := range ref.vals {
				has, err := s.Contains(v)
				require.NoError(t, err)
				require.True(t, has, "missing %d", v)
			}

			for i := 0; i < 1000; i++ {
				q := int64(int32(rng.Uint32()))

				has, err := s.Contains(q)
				require.NoError(t, err)
				require.Equal(t, ref.contains(q), has, "contains %d", q)

				wantV, wantOK := ref.higher(q)
				gotV, gotOK, err := s.Higher(q)
				require.NoError(t, err)
				require.Equal(t, wantOK, gotOK, "higher %d", q)
				if wantOK {
					require.Equal(t, wantV, gotV, "higher %d", q)
				}

				wantV, wantOK = ref.ceiling(q)
				gotV, gotOK, err = s.Ceiling(q)
				require.NoError(t, err)
				require.Equal(t, wantOK, gotOK, "ceiling %d", q)
				if wantOK {
					require.Equal(t, wantV, gotV, "ceiling %d", q)
				}

				wantV, wantOK = ref.floor(q)
				gotV, gotOK, err = s.Floor(q)
				require.NoError(t, err)
				require.Equal(t, wantOK, gotOK, "floor %d", q)
				if wantOK {
					require.Equal(t, wantV, gotV, "floor %d", q)
				}
			}

			first, err := s.First()
			require.NoError(t, err)
			require.Equal(t, ref.vals[0], first)
			last, err := s.Last()
			require.NoError(t, err)
			require.Equal(t, ref.vals[len(ref.vals)-1], last)
		})
	}
}

func TestStringElements(t *testing.T) {
	path := t.TempDir() + "/strings.avl"
	s, err := Open[string](path, StringCodec{})
	require.NoError(t, err)
	defer s.Close()

	words := []string{"pear", "apple", "quince", "fig", "banana", "apple", "date"}
	for _, w := range words {
		_, err := s.Add(w)
		require.NoError(t, err)
	}
	require.NoError(t, s.Verify())

	n, err := s.Len()
	require.NoError(t, err)
	require.Equal(t, int64(6), n)

	first, err := s.First()
	require.NoError(t, err)
	require.Equal(t, "apple", first)

	got, ok, err := s.Higher("banana")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "date", got)
}
