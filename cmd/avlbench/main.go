// Command avlbench exercises the disk AVL set against an in-memory
// reference ordered set and a pebble store over the same keys: it
// cross-checks membership and neighbor answers, then emits per-operation
// latency rows as CSV.
package main

import (
	"encoding/binary"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"

	diskavl "github.com/ordset/go-diskavl"
)

func main() {
	var (
		n      = flag.Int("n", 50000, "number of random keys to insert")
		probes = flag.Int("probes", 10000, "number of query probes per operation")
		seed   = flag.Int64("seed", 1, "rng seed")
		out    = flag.String("out", "avlbench.csv", "csv results path")
	)
	flag.Parse()

	dir, err := os.MkdirTemp("", "avlbench")
	if err != nil {
		log.Fatalf("workdir: %v", err)
	}
	defer os.RemoveAll(dir)

	rng := rand.New(rand.NewSource(*seed))
	keys := make([]int64, *n)
	for i := range keys {
		keys[i] = rng.Int63()
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	w.Write([]string{"Run", "Engine", "Op", "N", "LatencyNs"})

	runID := uuid.NewString()
	record := func(engine, op string, count int, elapsed time.Duration) {
		perOp := elapsed.Nanoseconds() / int64(count)
		w.Write([]string{runID, engine, op, strconv.Itoa(count), strconv.FormatInt(perOp, 10)})
		log.Printf("%-8s %-14s n=%-8d %8d ns/op", engine, op, count, perOp)
	}

	ref := buildReference(keys)
	benchDiskAVL(record, dir, keys, ref, *probes, rng)
	benchPebble(record, dir, keys, *probes, rng)

	fmt.Printf("results written to %s (run %s)\n", *out, runID)
}

// buildReference dedupes and sorts the keys; binary searches over the
// result supply the expected answers for every query kind.
func buildReference(keys []int64) []int64 {
	ref := slices.Clone(keys)
	slices.Sort(ref)
	return slices.Compact(ref)
}

func refContains(ref []int64, v int64) bool {
	i := sort.Search(len(ref), func(i int) bool { return ref[i] >= v })
	return i < len(ref) && ref[i] == v
}

func refHigher(ref []int64, v int64) (int64, bool) {
	i := sort.Search(len(ref), func(i int) bool { return ref[i] > v })
	if i == len(ref) {
		return 0, false
	}
	return ref[i], true
}

func benchDiskAVL(record func(string, string, int, time.Duration), dir string, keys, ref []int64, probes int, rng *rand.Rand) {
	s, err := diskavl.Open[int64](
		filepath.Join(dir, "bench.avl"),
		diskavl.Int64Codec{},
		diskavl.WithPayloadCache(1024),
		diskavl.WithBloomFilter(int64(len(keys))),
	)
	if err != nil {
		log.Fatalf("diskavl open: %v", err)
	}
	defer s.Close()

	start := time.Now()
	for _, k := range keys {
		if _, err := s.Add(k); err != nil {
			log.Fatalf("diskavl add %d: %v", k, err)
		}
	}
	record("diskavl", "insert", len(keys), time.Since(start))

	if n, err := s.Len(); err != nil || n != int64(len(ref)) {
		log.Fatalf("diskavl size %d (err %v), reference %d", n, err, len(ref))
	}

	start = time.Now()
	for i := 0; i < probes; i++ {
		k := keys[rng.Intn(len(keys))]
		has, err := s.Contains(k)
		if err != nil {
			log.Fatalf("diskavl contains: %v", err)
		}
		if !has {
			log.Fatalf("diskavl lost key %d", k)
		}
	}
	record("diskavl", "contains-hit", probes, time.Since(start))

	start = time.Now()
	for i := 0; i < probes; i++ {
		q := rng.Int63()
		has, err := s.Contains(q)
		if err != nil {
			log.Fatalf("diskavl contains: %v", err)
		}
		if has != refContains(ref, q) {
			log.Fatalf("diskavl contains(%d) disagrees with reference", q)
		}
	}
	record("diskavl", "contains-probe", probes, time.Since(start))

	start = time.Now()
	for i := 0; i < probes; i++ {
		q := rng.Int63()
		got, ok, err := s.Higher(q)
		if err != nil {
			log.Fatalf("diskavl higher: %v", err)
		}
		want, wantOK := refHigher(ref, q)
		if ok != wantOK || (ok && got != want) {
			log.Fatalf("diskavl higher(%d) = (%d,%v), reference (%d,%v)", q, got, ok, want, wantOK)
		}
	}
	record("diskavl", "higher", probes, time.Since(start))

	first, err := s.First()
	if err != nil || first != ref[0] {
		log.Fatalf("diskavl first %d (err %v), reference %d", first, err, ref[0])
	}
	last, err := s.Last()
	if err != nil || last != ref[len(ref)-1] {
		log.Fatalf("diskavl last %d (err %v), reference %d", last, err, ref[len(ref)-1])
	}
}

func benchPebble(record func(string, string, int, time.Duration), dir string, keys []int64, probes int, rng *rand.Rand) {
	db, err := pebble.Open(filepath.Join(dir, "pebble"), &pebble.Options{})
	if err != nil {
		log.Fatalf("pebble open: %v", err)
	}
	defer db.Close()

	start := time.Now()
	for _, k := range keys {
		if err := db.Set(encodeKey(k), nil, pebble.NoSync); err != nil {
			log.Fatalf("pebble set: %v", err)
		}
	}
	record("pebble", "insert", len(keys), time.Since(start))

	start = time.Now()
	for i := 0; i < probes; i++ {
		k := keys[rng.Intn(len(keys))]
		_, closer, err := db.Get(encodeKey(k))
		if err != nil {
			log.Fatalf("pebble get: %v", err)
		}
		closer.Close()
	}
	record("pebble", "contains-hit", probes, time.Since(start))

	start = time.Now()
	for i := 0; i < probes; i++ {
		q := rng.Int63()
		_, closer, err := db.Get(encodeKey(q))
		if err == nil {
			closer.Close()
		} else if err != pebble.ErrNotFound {
			log.Fatalf("pebble get: %v", err)
		}
	}
	record("pebble", "contains-probe", probes, time.Since(start))

	iter, err := db.NewIter(nil)
	if err != nil {
		log.Fatalf("pebble iter: %v", err)
	}
	defer iter.Close()
	start = time.Now()
	for i := 0; i < probes; i++ {
		// SeekGE past q is pebble's strict successor.
		q := rng.Int63()
		iter.SeekGE(encodeKey(q + 1))
	}
	record("pebble", "higher", probes, time.Since(start))
}

// encodeKey maps a non-negative int64 to 8 big-endian bytes so pebble's
// lexicographic key order matches numeric order.
func encodeKey(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
