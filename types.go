package diskavl

import "errors"

const (
	// HeaderBytes is the fixed byte width of the file header.
	HeaderBytes = 24

	headerCountOff    = 0
	headerNextFreeOff = 8
	headerRootOff     = 16

	// NodeHeaderBytes is the fixed prefix of every node record; the payload
	// follows immediately after.
	NodeHeaderBytes = 24

	nodeLeftOff   = 0
	nodeRightOff  = 8
	nodeHeightOff = 16
	nodeLenOff    = 20
)

// NilOff is the canonical absent-child sentinel. A subtree hanging off a
// NilOff pointer is empty and has conventional height -1.
const NilOff int64 = -1

var (
	ErrClosed        = errors.New("diskavl: set is closed")
	ErrNoSuchElement = errors.New("diskavl: no such element")
	ErrUnsupported   = errors.New("diskavl: operation not supported")
	ErrNilOffset     = errors.New("diskavl: nil offset dereference")
	ErrCorruptHeader = errors.New("diskavl: corrupt header")
	ErrBadPayloadLen = errors.New("diskavl: bad payload length")

	ErrOrderViolation    = errors.New("diskavl: order invariant violated")
	ErrBalanceViolation  = errors.New("diskavl: balance invariant violated")
	ErrHeightMismatch    = errors.New("diskavl: stored height mismatch")
	ErrCountMismatch     = errors.New("diskavl: count mismatch")
	ErrTopologyViolation = errors.New("diskavl: topology invariant violated")
)
