package diskavl

import (
	"crypto/sha256"
	"fmt"
)

// bloomFilter is an in-memory negative-lookup accelerator over encoded
// payloads: "definitely not present" answers let Contains skip the tree
// descent entirely. k probe positions are derived from one sha256 by
// double hashing. False positives only cost the descent that would have
// happened anyway; false negatives cannot occur.
//
// The filter is never persisted. The data file stays the single source of
// truth and Open rebuilds the filter by scanning the node region in
// allocation order.

const (
	bloomBitsPerElement = 10
	bloomProbes         = 7
	bloomMinBits        = 64
	bloomDomain         = 0xA5
)

type bloomFilter struct {
	mBits uint64
	bits  []byte
}

func newBloomFilter(expected int64) *bloomFilter {
	mBits := uint64(expected) * bloomBitsPerElement
	if mBits < bloomMinBits {
		mBits = bloomMinBits
	}
	return &bloomFilter{
		mBits: mBits,
		bits:  make([]byte, (mBits+7)/8),
	}
}

func (f *bloomFilter) insert(payload []byte) {
	h1, h2 := bloomHashPair(payload)
	for i := uint64(0); i < bloomProbes; i++ {
		j := (h1 + i*h2) % f.mBits
		f.bits[j>>3] |= 1 << (j & 7)
	}
}

func (f *bloomFilter) maybeContains(payload []byte) bool {
	h1, h2 := bloomHashPair(payload)
	for i := uint64(0); i < bloomProbes; i++ {
		j := (h1 + i*h2) % f.mBits
		if f.bits[j>>3]&(1<<(j&7)) == 0 {
			return false
		}
	}
	return true
}

// bloomHashPair derives the double-hashing pair from
// sha256(domain || payload); h2 is forced odd-like nonzero so the probe
// sequence never degenerates.
func bloomHashPair(payload []byte) (h1, h2 uint64) {
	h := sha256.New()
	h.Write([]byte{bloomDomain})
	h.Write(payload)
	sum := h.Sum(nil)
	h1 = beUint64(sum[0:8])
	h2 = beUint64(sum[8:16])
	if h2 == 0 {
		h2 = 1
	}
	return h1, h2
}

// rebuildFilter replays every allocated payload into the filter with one
// sequential pass over the node region. The reachability invariant makes
// this equivalent to a tree traversal, without the random reads.
func (st *store) rebuildFilter() error {
	end, err := st.nextFree()
	if err != nil {
		return err
	}
	off := int64(HeaderBytes)
	for off < end {
		n, err := st.payloadLen(off)
		if err != nil {
			return err
		}
		if n < 0 || off+NodeHeaderBytes+int64(n) > end {
			return fmt.Errorf("%w: node at %d with payload length %d overruns next-free %d", ErrCorruptHeader, off, n, end)
		}
		payload, err := st.payload(off)
		if err != nil {
			return err
		}
		st.filter.insert(payload)
		off += NodeHeaderBytes + int64(n)
	}
	return nil
}
