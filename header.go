package diskavl

// store is the offset-level half of the engine: header fields, node field
// access, allocation and rotations, none of which need to decode payloads.
// Nothing here caches header values; the file is the single source of
// truth between operations.
type store struct {
	file   *offsetFile
	cache  *payloadCache
	filter *bloomFilter
}

func (st *store) count() (int64, error) {
	return st.file.readInt64(headerCountOff)
}

func (st *store) setCount(n int64) error {
	return st.file.writeInt64(headerCountOff, n)
}

func (st *store) nextFree() (int64, error) {
	return st.file.readInt64(headerNextFreeOff)
}

func (st *store) setNextFree(off int64) error {
	return st.file.writeInt64(headerNextFreeOff, off)
}

func (st *store) root() (int64, error) {
	return st.file.readInt64(headerRootOff)
}

func (st *store) setRoot(off int64) error {
	return st.file.writeInt64(headerRootOff, off)
}

// initHeader lays down the header for a fresh file. The root field points
// at next-free: the address the first node will land on.
func (st *store) initHeader() error {
	var b [HeaderBytes]byte
	putInt64(b[headerCountOff:], 0)
	putInt64(b[headerNextFreeOff:], HeaderBytes)
	putInt64(b[headerRootOff:], HeaderBytes)
	return st.file.writeAt(0, b[:])
}
