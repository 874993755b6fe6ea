package diskavl

import "fmt"

// Node field accessors. Read accessors tolerate NilOff so tree walks can
// probe absent children without branching at every call site: left, right
// and height of NilOff are NilOff, NilOff and -1 respectively. Writes to
// NilOff are always a bug and are rejected.

func (st *store) left(off int64) (int64, error) {
	if off == NilOff {
		return NilOff, nil
	}
	return st.file.readInt64(off + nodeLeftOff)
}

func (st *store) setLeft(off, child int64) error {
	if off == NilOff {
		return fmt.Errorf("%w: setLeft", ErrNilOffset)
	}
	return st.file.writeInt64(off+nodeLeftOff, child)
}

func (st *store) right(off int64) (int64, error) {
	if off == NilOff {
		return NilOff, nil
	}
	return st.file.readInt64(off + nodeRightOff)
}

func (st *store) setRight(off, child int64) error {
	if off == NilOff {
		return fmt.Errorf("%w: setRight", ErrNilOffset)
	}
	return st.file.writeInt64(off+nodeRightOff, child)
}

func (st *store) height(off int64) (int32, error) {
	if off == NilOff {
		return -1, nil
	}
	return st.file.readInt32(off + nodeHeightOff)
}

func (st *store) setHeight(off int64, h int32) error {
	if off == NilOff {
		return fmt.Errorf("%w: setHeight", ErrNilOffset)
	}
	return st.file.writeInt32(off+nodeHeightOff, h)
}

func (st *store) payloadLen(off int64) (int32, error) {
	if off == NilOff {
		return -1, nil
	}
	return st.file.readInt32(off + nodeLenOff)
}

// payload returns the encoded element stored at off. The returned slice is
// owned by the store (it may be shared with the cache) and must not be
// mutated; decode it instead.
func (st *store) payload(off int64) ([]byte, error) {
	if off == NilOff {
		return nil, fmt.Errorf("%w: payload", ErrNilOffset)
	}
	if st.cache != nil {
		if b, ok := st.cache.get(off); ok {
			return b, nil
		}
	}
	n, err := st.payloadLen(off)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: node at %d has payload length %d", ErrBadPayloadLen, off, n)
	}
	b := make([]byte, n)
	if err := st.file.readFull(off+NodeHeaderBytes, b); err != nil {
		return nil, err
	}
	if st.cache != nil {
		st.cache.add(off, b)
	}
	return b, nil
}
