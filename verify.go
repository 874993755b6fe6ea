package diskavl

import "fmt"

// Verify audits the whole file against the structural invariants: strictly
// increasing in-order values, AVL balance with correctly stored heights,
// header count matching the reachable node count, and the reachable set
// being exactly the back-to-back allocation run from offset 24 to
// next-free. It reads every node, so it is a test and recovery tool, not
// an operation to run per insert in production.
func (s *Set[E]) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	count, err := s.st.count()
	if err != nil {
		return err
	}
	nextFree, err := s.st.nextFree()
	if err != nil {
		return err
	}
	rootOff, err := s.st.root()
	if err != nil {
		return err
	}

	// Walk the allocation run first; child pointers are checked against it.
	allocated := make(map[int64]struct{})
	off := int64(HeaderBytes)
	for off < nextFree {
		n, err := s.st.payloadLen(off)
		if err != nil {
			return err
		}
		if n < 0 || off+NodeHeaderBytes+int64(n) > nextFree {
			return fmt.Errorf("%w: node at %d with payload length %d overruns next-free %d", ErrCorruptHeader, off, n, nextFree)
		}
		allocated[off] = struct{}{}
		off += NodeHeaderBytes + int64(n)
	}
	if off != nextFree {
		return fmt.Errorf("%w: allocation run ends at %d, next-free is %d", ErrCorruptHeader, off, nextFree)
	}

	if count == 0 {
		if rootOff != nextFree {
			return fmt.Errorf("%w: empty set root %d is not the next-free sentinel %d", ErrCorruptHeader, rootOff, nextFree)
		}
		if len(allocated) != 0 {
			return fmt.Errorf("%w: empty set with %d allocated nodes", ErrCountMismatch, len(allocated))
		}
		return nil
	}

	seen := make(map[int64]struct{})
	var last E
	haveLast := false

	var walk func(off int64) (int32, int64, error)
	walk = func(off int64) (int32, int64, error) {
		if off == NilOff {
			return -1, 0, nil
		}
		if _, ok := allocated[off]; !ok {
			return 0, 0, fmt.Errorf("%w: child pointer %d is not an allocated node", ErrTopologyViolation, off)
		}
		if _, ok := seen[off]; ok {
			return 0, 0, fmt.Errorf("%w: node %d reachable twice", ErrTopologyViolation, off)
		}
		seen[off] = struct{}{}

		l, err := s.st.left(off)
		if err != nil {
			return 0, 0, err
		}
		hl, nl, err := walk(l)
		if err != nil {
			return 0, 0, err
		}

		v, err := s.value(off)
		if err != nil {
			return 0, 0, err
		}
		if haveLast && s.codec.Compare(last, v) >= 0 {
			return 0, 0, fmt.Errorf("%w: in-order predecessor of node %d does not compare less", ErrOrderViolation, off)
		}
		last, haveLast = v, true

		r, err := s.st.right(off)
		if err != nil {
			return 0, 0, err
		}
		hr, nr, err := walk(r)
		if err != nil {
			return 0, 0, err
		}

		if diff := hl - hr; diff < -1 || diff > 1 {
			return 0, 0, fmt.Errorf("%w: node %d has child heights %d and %d", ErrBalanceViolation, off, hl, hr)
		}
		want := 1 + max(hl, hr)
		stored, err := s.st.height(off)
		if err != nil {
			return 0, 0, err
		}
		if stored != want {
			return 0, 0, fmt.Errorf("%w: node %d stores height %d, computed %d", ErrHeightMismatch, off, stored, want)
		}
		return want, nl + nr + 1, nil
	}

	_, reachable, err := walk(rootOff)
	if err != nil {
		return err
	}
	if reachable != count {
		return fmt.Errorf("%w: header count %d, reachable nodes %d", ErrCountMismatch, count, reachable)
	}
	if reachable != int64(len(allocated)) {
		return fmt.Errorf("%w: %d allocated nodes, %d reachable", ErrTopologyViolation, len(allocated), reachable)
	}
	return nil
}
