package diskavl

// Iterator yields the set in ascending order. Its only state is the last
// value yielded; every step re-derives the successor from the root, so a
// step costs O(log n) reads but the iterator itself stays O(1) no matter
// how deep the tree is. Elements added behind the iterator's position are
// not revisited; elements added ahead of it are yielded.
type Iterator[E any] struct {
	s       *Set[E]
	started bool
	last    E
}

// Iterator returns a fresh iterator positioned before the first element.
func (s *Set[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{s: s}
}

// HasNext reports whether Next would yield an element.
func (it *Iterator[E]) HasNext() (bool, error) {
	if !it.started {
		n, err := it.s.Len()
		return n > 0, err
	}
	_, ok, err := it.s.Higher(it.last)
	return ok, err
}

// Next yields the next element in order, or ErrNoSuchElement when the
// iterator is exhausted.
func (it *Iterator[E]) Next() (E, error) {
	var zero E
	if !it.started {
		v, err := it.s.First()
		if err != nil {
			return zero, err
		}
		it.started = true
		it.last = v
		return v, nil
	}
	v, ok, err := it.s.Higher(it.last)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrNoSuchElement
	}
	it.last = v
	return v, nil
}
