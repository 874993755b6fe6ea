package diskavl

import (
	"fmt"
	"sync"
)

// Set is an ordered set of E persisted in a single file. All public
// operations serialize on an internal mutex; a Set is safe for use from
// multiple goroutines but a file must only ever be open in one Set at a
// time.
type Set[E any] struct {
	mu     sync.Mutex
	st     *store
	codec  Codec[E]
	closed bool
}

// Open opens or creates the set file at path. An empty file gets a fresh
// header; a non-empty file's header is trusted as-is, so the codec must
// match the one the file was written with.
func Open[E any](path string, codec Codec[E], opts ...Option) (*Set[E], error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	file, size, err := openOffsetFile(path)
	if err != nil {
		return nil, err
	}
	st := &store{file: file}

	if cfg.cacheSize > 0 {
		st.cache, err = newPayloadCache(cfg.cacheSize)
		if err != nil {
			file.close()
			return nil, err
		}
	}

	switch {
	case size == 0:
		if err := st.initHeader(); err != nil {
			file.close()
			return nil, err
		}
	case size < HeaderBytes:
		file.close()
		return nil, fmt.Errorf("%w: file is %d bytes, shorter than the header", ErrCorruptHeader, size)
	}

	if cfg.bloomExpected > 0 {
		st.filter = newBloomFilter(cfg.bloomExpected)
		if err := st.rebuildFilter(); err != nil {
			file.close()
			return nil, err
		}
	}

	return &Set[E]{st: st, codec: codec}, nil
}

// Close flushes and releases the file handle. Further operations return
// ErrClosed.
func (s *Set[E]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.st.file.close()
}

// Add inserts v and reports whether the set changed: false with a nil
// error always means v was already present. The writes are not
// transactional; an error mid-insert can leave the file inconsistent and
// should be treated as fatal for the file.
func (s *Set[E]) Add(v E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrClosed
	}

	loc, err := s.locate(v)
	if err != nil {
		return false, err
	}
	if loc.kind == locPresent {
		return false, nil
	}

	payload, err := s.codec.Encode(v)
	if err != nil {
		return false, fmt.Errorf("diskavl: encode: %w", err)
	}

	off, err := s.st.appendNode(payload)
	if err != nil {
		return false, err
	}

	switch loc.kind {
	case locEmptyRoot:
		// The allocator wrote the first node at next-free, which is the
		// exact address the root sentinel already holds.
		if err := s.st.rebalancePath(loc.path); err != nil {
			return false, err
		}
		if err := s.st.setCount(1); err != nil {
			return false, err
		}
	case locMissingLeft, locMissingRight:
		parent := loc.top()
		if loc.kind == locMissingLeft {
			err = s.st.setLeft(parent, off)
		} else {
			err = s.st.setRight(parent, off)
		}
		if err != nil {
			return false, err
		}
		loc.path = append(loc.path, off)
		if err := s.st.rebalancePath(loc.path); err != nil {
			return false, err
		}
		n, err := s.st.count()
		if err != nil {
			return false, err
		}
		if err := s.st.setCount(n + 1); err != nil {
			return false, err
		}
	}

	if s.st.filter != nil {
		s.st.filter.insert(payload)
	}
	return true, nil
}

// AddAll inserts every value in vs, reporting whether any insert changed
// the set. It stops at the first error.
func (s *Set[E]) AddAll(vs []E) (bool, error) {
	changed := false
	for _, v := range vs {
		ok, err := s.Add(v)
		if err != nil {
			return changed, err
		}
		changed = changed || ok
	}
	return changed, nil
}

// Contains reports whether v is in the set.
func (s *Set[E]) Contains(v E) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrClosed
	}

	if s.st.filter != nil {
		payload, err := s.codec.Encode(v)
		if err != nil {
			return false, fmt.Errorf("diskavl: encode: %w", err)
		}
		if !s.st.filter.maybeContains(payload) {
			return false, nil
		}
	}

	loc, err := s.locate(v)
	if err != nil {
		return false, err
	}
	return loc.kind == locPresent, nil
}

// Len returns the number of elements.
func (s *Set[E]) Len() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}
	return s.st.count()
}

// IsEmpty reports whether the set has no elements.
func (s *Set[E]) IsEmpty() (bool, error) {
	n, err := s.Len()
	return n == 0, err
}

// The allocator is append-only: nothing below is implementable without
// leaking space or compacting, neither of which this format provides.
// Delete the file and rebuild instead.

// Remove is unsupported.
func (s *Set[E]) Remove(v E) error { return ErrUnsupported }

// RemoveAll is unsupported.
func (s *Set[E]) RemoveAll(vs []E) error { return ErrUnsupported }

// RetainAll is unsupported.
func (s *Set[E]) RetainAll(vs []E) error { return ErrUnsupported }

// Clear is unsupported.
func (s *Set[E]) Clear() error { return ErrUnsupported }

// ContainsAll is unsupported.
func (s *Set[E]) ContainsAll(vs []E) (bool, error) { return false, ErrUnsupported }

// ToSlice is unsupported; use Iterator for ordered extraction.
func (s *Set[E]) ToSlice() ([]E, error) { return nil, ErrUnsupported }
