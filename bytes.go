package diskavl

import "encoding/binary"

func putInt64(b []byte, v int64) { binary.BigEndian.PutUint64(b, uint64(v)) }
func putInt32(b []byte, v int32) { binary.BigEndian.PutUint32(b, uint32(v)) }

func beUint64(b []byte) uint64 { return binary.BigEndian.Uint64(b) }
