package diskavl

import (
	"encoding/binary"
	"fmt"
	"os"
)

// offsetFile provides absolute-offset fixed-width integer primitives over a
// single regular file. It is the only thing in the package that touches the
// file descriptor; everything above it speaks in offsets.
type offsetFile struct {
	f *os.File
}

func openOffsetFile(path string) (*offsetFile, int64, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, 0, fmt.Errorf("diskavl: open %s: %w", path, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("diskavl: stat %s: %w", path, err)
	}
	return &offsetFile{f: f}, fi.Size(), nil
}

func (of *offsetFile) readInt64(off int64) (int64, error) {
	var b [8]byte
	if _, err := of.f.ReadAt(b[:], off); err != nil {
		return 0, fmt.Errorf("diskavl: read int64 at %d: %w", off, err)
	}
	return int64(binary.BigEndian.Uint64(b[:])), nil
}

func (of *offsetFile) writeInt64(off int64, v int64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	if _, err := of.f.WriteAt(b[:], off); err != nil {
		return fmt.Errorf("diskavl: write int64 at %d: %w", off, err)
	}
	return nil
}

func (of *offsetFile) readInt32(off int64) (int32, error) {
	var b [4]byte
	if _, err := of.f.ReadAt(b[:], off); err != nil {
		return 0, fmt.Errorf("diskavl: read int32 at %d: %w", off, err)
	}
	return int32(binary.BigEndian.Uint32(b[:])), nil
}

func (of *offsetFile) writeInt32(off int64, v int32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	if _, err := of.f.WriteAt(b[:], off); err != nil {
		return fmt.Errorf("diskavl: write int32 at %d: %w", off, err)
	}
	return nil
}

func (of *offsetFile) readFull(off int64, b []byte) error {
	if _, err := of.f.ReadAt(b, off); err != nil {
		return fmt.Errorf("diskavl: read %d bytes at %d: %w", len(b), off, err)
	}
	return nil
}

func (of *offsetFile) writeAt(off int64, b []byte) error {
	if _, err := of.f.WriteAt(b, off); err != nil {
		return fmt.Errorf("diskavl: write %d bytes at %d: %w", len(b), off, err)
	}
	return nil
}

func (of *offsetFile) close() error {
	if err := of.f.Sync(); err != nil {
		of.f.Close()
		return fmt.Errorf("diskavl: sync: %w", err)
	}
	if err := of.f.Close(); err != nil {
		return fmt.Errorf("diskavl: close: %w", err)
	}
	return nil
}
