// Package jump computes byte lengths on already-validated CBOR buffers
// without re-validating them: the head alone, a leaf (head plus any inline
// string bytes), and a complete data item including its nested children.
//
// DataItem is the engine the accessors and the deterministic map-order check
// reuse (the validator runs its own walk of the same shape): it walks with an explicit (cursor, pending)
// pair instead of recursion, mirroring the iterative index-entry walk mebo's
// NumericDecoder runs over its columnar index rather than recursing through
// a tree.
package jump

import (
	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/header"
)

// Header returns the byte length of the head at the start of buf.
func Header(buf []byte) (int, error) {
	h, err := header.ReadHead(buf)
	if err != nil {
		return 0, err
	}
	return h.Size, nil
}

// Leaf returns the byte length of the head plus, for byte strings and text
// strings, the declared string length that follows it. For every other
// major type it equals Header.
func Leaf(buf []byte) (int, error) {
	h, err := header.ReadHead(buf)
	if err != nil {
		return 0, err
	}

	n := h.Size
	if h.Major == format.ByteString || h.Major == format.TextString {
		n += int(h.Arg)
	}

	if n > len(buf) {
		return 0, errs.ErrNotEnoughData
	}

	return n, nil
}

// childrenCount returns the number of immediate children the head (mt, arg)
// introduces into the pending-items walk: N for arrays, 2N for maps (key and
// value per entry), 1 for tags (the tagged item), 0 otherwise.
func childrenCount(mt format.MajorType, arg uint64) uint64 {
	switch mt {
	case format.Array:
		return arg
	case format.Map:
		return arg * 2
	case format.Tag:
		return 1
	default:
		return 0
	}
}

// MaxPendingItems bounds the pending-items counter DataItem accumulates, as
// a backstop against adversarial inputs that claim enormous array or map
// lengths while supplying few actual bytes. It is not configurable here;
// item.Validate runs its own walk and enforces a separate, configurable
// ceiling.
const MaxPendingItems = 1 << 40

// DataItem returns the total byte length of the complete data item at the
// start of buf, including all of its nested children.
//
// It runs the iterative descent described by the pending-items algorithm:
// starting with pending=1, each step consumes one leaf, replaces it in the
// pending count with the number of children its head introduces, and
// continues until pending reaches 0. No call stack depth is proportional to
// nesting depth; pending is a plain counter.
func DataItem(buf []byte) (int, error) {
	consumed := 0
	pending := uint64(1)

	for pending > 0 {
		cur := buf[consumed:]

		h, err := header.ReadHead(cur)
		if err != nil {
			return 0, err
		}

		n := h.Size
		if h.Major == format.ByteString || h.Major == format.TextString {
			n += int(h.Arg)
		}

		if n > len(cur) {
			return 0, errs.ErrNotEnoughData
		}

		consumed += n
		pending--

		children := childrenCount(h.Major, h.Arg)
		if children > MaxPendingItems || pending > MaxPendingItems-children {
			return 0, errs.ErrNestingLimitExceeded
		}
		pending += children
	}

	return consumed, nil
}
