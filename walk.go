package diskavl

// locKind classifies where a search for a value bottomed out.
type locKind int

const (
	// locEmptyRoot: the set is empty; path holds the root sentinel, which
	// is also the offset the first node will be allocated at.
	locEmptyRoot locKind = iota
	// locPresent: the value is stored at the top of the path.
	locPresent
	// locMissingLeft: absent; it would hang off the left of the path top.
	locMissingLeft
	// locMissingRight: absent; it would hang off the right of the path top.
	locMissingRight
)

// location is the walker's result: the kind, plus the root-to-site path of
// node offsets the balancer will consume bottom-up. AVL bounds its length
// at about 1.44*log2(count+2), so it is the only per-operation state whose
// size depends on n at all.
type location struct {
	kind locKind
	path []int64
}

func (loc *location) top() int64 { return loc.path[len(loc.path)-1] }

// locate descends from the root comparing v against each decoded payload,
// recording every visited offset.
func (s *Set[E]) locate(v E) (location, error) {
	rootOff, err := s.st.root()
	if err != nil {
		return location{}, err
	}
	loc := location{path: []int64{rootOff}}

	n, err := s.st.count()
	if err != nil {
		return location{}, err
	}
	if n == 0 {
		loc.kind = locEmptyRoot
		return loc, nil
	}

	for {
		cur := loc.top()
		curVal, err := s.value(cur)
		if err != nil {
			return location{}, err
		}
		switch c := s.codec.Compare(v, curVal); {
		case c < 0:
			l, err := s.st.left(cur)
			if err != nil {
				return location{}, err
			}
			if l == NilOff {
				loc.kind = locMissingLeft
				return loc, nil
			}
			loc.path = append(loc.path, l)
		case c > 0:
			r, err := s.st.right(cur)
			if err != nil {
				return location{}, err
			}
			if r == NilOff {
				loc.kind = locMissingRight
				return loc, nil
			}
			loc.path = append(loc.path, r)
		default:
			loc.kind = locPresent
			return loc, nil
		}
	}
}

// value decodes the element stored at off.
func (s *Set[E]) value(off int64) (E, error) {
	b, err := s.st.payload(off)
	if err != nil {
		var zero E
		return zero, err
	}
	return s.codec.Decode(b)
}
