package diskavl

import (
	"fmt"
	"math"
)

// appendNode writes a fresh leaf record (no children, height 0) carrying
// payload at the current next-free offset and bumps next-free past its
// tail. Offsets are never reused and nothing is ever compacted; the
// allocator's whole state is the next-free header field.
func (st *store) appendNode(payload []byte) (int64, error) {
	if int64(len(payload)) > math.MaxInt32 {
		return NilOff, fmt.Errorf("%w: payload of %d bytes does not fit the length field", ErrBadPayloadLen, len(payload))
	}
	off, err := st.nextFree()
	if err != nil {
		return NilOff, err
	}

	rec := make([]byte, NodeHeaderBytes+len(payload))
	putInt64(rec[nodeLeftOff:], NilOff)
	putInt64(rec[nodeRightOff:], NilOff)
	putInt32(rec[nodeHeightOff:], 0)
	putInt32(rec[nodeLenOff:], int32(len(payload)))
	copy(rec[NodeHeaderBytes:], payload)

	if err := st.file.writeAt(off, rec); err != nil {
		return NilOff, err
	}
	if err := st.setNextFree(off + int64(len(rec))); err != nil {
		return NilOff, err
	}
	if st.cache != nil {
		st.cache.add(off, rec[NodeHeaderBytes:])
	}
	return off, nil
}
