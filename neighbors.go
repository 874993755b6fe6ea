package diskavl

// Ordered queries. First and Last walk one spine; Higher, Ceiling and
// Floor are recursive descents that keep the best candidate seen so far,
// each step reading one node. On an empty set First and Last return
// ErrNoSuchElement while the bound queries report absence through their ok
// result.

// First returns the minimum element.
func (s *Set[E]) First() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extreme(s.st.left)
}

// Last returns the maximum element.
func (s *Set[E]) Last() (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.extreme(s.st.right)
}

func (s *Set[E]) extreme(step func(int64) (int64, error)) (E, error) {
	var zero E
	if s.closed {
		return zero, ErrClosed
	}
	n, err := s.st.count()
	if err != nil {
		return zero, err
	}
	if n == 0 {
		return zero, ErrNoSuchElement
	}
	cur, err := s.st.root()
	if err != nil {
		return zero, err
	}
	for {
		next, err := step(cur)
		if err != nil {
			return zero, err
		}
		if next == NilOff {
			return s.value(cur)
		}
		cur = next
	}
}

// Higher returns the least element strictly greater than v.
func (s *Set[E]) Higher(v E) (E, bool, error) {
	return s.bound(v, s.higherRec)
}

// Ceiling returns the least element greater than or equal to v.
func (s *Set[E]) Ceiling(v E) (E, bool, error) {
	return s.bound(v, s.ceilingRec)
}

// Floor returns the greatest element less than or equal to v.
func (s *Set[E]) Floor(v E) (E, bool, error) {
	return s.bound(v, s.floorRec)
}

func (s *Set[E]) bound(v E, rec func(int64, E) (E, bool, error)) (E, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero E
	if s.closed {
		return zero, false, ErrClosed
	}
	n, err := s.st.count()
	if err != nil {
		return zero, false, err
	}
	if n == 0 {
		return zero, false, nil
	}
	rootOff, err := s.st.root()
	if err != nil {
		return zero, false, err
	}
	return rec(rootOff, v)
}

func (s *Set[E]) higherRec(off int64, v E) (E, bool, error) {
	var zero E
	if off == NilOff {
		return zero, false, nil
	}
	cur, err := s.value(off)
	if err != nil {
		return zero, false, err
	}
	if s.codec.Compare(cur, v) <= 0 {
		// cur cannot be a strict successor; only the right subtree can.
		r, err := s.st.right(off)
		if err != nil {
			return zero, false, err
		}
		return s.higherRec(r, v)
	}
	// cur qualifies, but the left subtree may hold something smaller that
	// still qualifies.
	l, err := s.st.left(off)
	if err != nil {
		return zero, false, err
	}
	if got, ok, err := s.higherRec(l, v); err != nil || ok {
		return got, ok, err
	}
	return cur, true, nil
}

func (s *Set[E]) ceilingRec(off int64, v E) (E, bool, error) {
	var zero E
	if off == NilOff {
		return zero, false, nil
	}
	cur, err := s.value(off)
	if err != nil {
		return zero, false, err
	}
	switch c := s.codec.Compare(cur, v); {
	case c < 0:
		r, err := s.st.right(off)
		if err != nil {
			return zero, false, err
		}
		return s.ceilingRec(r, v)
	case c > 0:
		l, err := s.st.left(off)
		if err != nil {
			return zero, false, err
		}
		if got, ok, err := s.ceilingRec(l, v); err != nil || ok {
			return got, ok, err
		}
		return cur, true, nil
	default:
		return cur, true, nil
	}
}

func (s *Set[E]) floorRec(off int64, v E) (E, bool, error) {
	var zero E
	if off == NilOff {
		return zero, false, nil
	}
	cur, err := s.value(off)
	if err != nil {
		return zero, false, err
	}
	switch c := s.codec.Compare(cur, v); {
	case c > 0:
		l, err := s.st.left(off)
		if err != nil {
			return zero, false, err
		}
		return s.floorRec(l, v)
	case c < 0:
		r, err := s.st.right(off)
		if err != nil {
			return zero, false, err
		}
		if got, ok, err := s.floorRec(r, v); err != nil || ok {
			return got, ok, err
		}
		return cur, true, nil
	default:
		return cur, true, nil
	}
}
