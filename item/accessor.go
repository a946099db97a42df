package item

import (
	"fmt"

	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/header"
	"github.com/dcbor/dcbor/internal/jump"
)

// Every accessor below follows the same rule: if v is Serialized, decode
// just enough of v.serialized to answer the question; otherwise read the
// constructed fields directly. A Serialized value is never eagerly expanded
// by an accessor call — that is what Materialize (materialize.go) is for.

// Kind classifies v, reading its head on demand if v is Serialized.
func Kind(v Value) (format.Kind, error) {
	if !v.IsSerialized() {
		return v.kind, nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return format.KindInvalid, err
	}
	return kindOf(h.Major, h.AI, h.Arg)
}

func kindOf(mt format.MajorType, ai format.AdditionalInfo, arg uint64) (format.Kind, error) {
	switch mt {
	case format.UnsignedInt, format.NegativeInt:
		return format.KindInt, nil
	case format.ByteString:
		return format.KindBytes, nil
	case format.TextString:
		return format.KindText, nil
	case format.Array:
		return format.KindArray, nil
	case format.Map:
		return format.KindMap, nil
	case format.Tag:
		return format.KindTag, nil
	case format.SimpleFloat:
		// Float-family bytes (AI 25/26/27) carry an IEEE-754 bit pattern in
		// arg, not a simple-value number; that bit pattern must never be
		// compared against the bool/null/undefined markers below, which only
		// apply to the direct and one-byte-form simple-value encodings.
		switch {
		case ai == format.FloatHalf || ai == format.FloatSingle || ai == format.FloatDouble:
			return format.KindSimple, nil
		case arg == uint64(format.SimpleFalse) || arg == uint64(format.SimpleTrue):
			return format.KindBool, nil
		case arg == uint64(format.SimpleNull):
			return format.KindNull, nil
		case arg == uint64(format.SimpleUndefined):
			return format.KindUndefined, nil
		default:
			return format.KindSimple, nil
		}
	default:
		return format.KindInvalid, fmt.Errorf("%w: unknown major type %d", errs.ErrWrongKind, mt)
	}
}

// isFloatFamily reports whether v is a Serialized major-7 item whose
// additional info is a float width selector (25/26/27). Materialize uses
// this to leave float-family bytes untouched rather than decoding them,
// per §1's Non-goal on floating-point handling beyond major-type
// classification; it never interprets the argument bytes as a bit pattern.
func isFloatFamily(v Value) bool {
	if !v.IsSerialized() {
		return false
	}
	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return false
	}
	return h.Major == format.SimpleFloat &&
		(h.AI == format.FloatHalf || h.AI == format.FloatSingle || h.AI == format.FloatDouble)
}

// MajorType returns v's major type.
func MajorType(v Value) (format.MajorType, error) {
	if !v.IsSerialized() {
		return v.major, nil
	}
	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return 0, err
	}
	return h.Major, nil
}

// Int64Parts returns v's major type (0 or 1) and raw 64-bit argument. It
// fails with errs.ErrWrongKind if v is not an integer.
func Int64Parts(v Value) (format.MajorType, uint64, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindInt {
			return 0, 0, errs.ErrWrongKind
		}
		return v.major, v.intVal, nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return 0, 0, err
	}
	if h.Major != format.UnsignedInt && h.Major != format.NegativeInt {
		return 0, 0, errs.ErrWrongKind
	}
	return h.Major, h.Arg, nil
}

// SimpleValue returns v's raw simple-value byte. It is valid for any major-7
// value (KindBool, KindNull, KindUndefined, KindSimple, including the
// float-family bytes AI 25/26/27, which classify as KindSimple); for the
// serialized case, a one-byte form (AI=24) is reduced to its argument,
// otherwise AI itself is returned directly, per §4.F. For a float-family
// item this returns the AI (25, 26, or 27) as an opaque family marker, never
// the IEEE-754 bit pattern — this package does not decode float payloads.
func SimpleValue(v Value) (uint8, error) {
	if !v.IsSerialized() {
		switch v.kind {
		case format.KindBool, format.KindNull, format.KindUndefined, format.KindSimple:
			return v.simple, nil
		default:
			return 0, errs.ErrWrongKind
		}
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return 0, err
	}
	if h.Major != format.SimpleFloat {
		return 0, errs.ErrWrongKind
	}
	if h.AI == format.AIOneByte {
		return uint8(h.Arg), nil
	}
	return uint8(h.AI), nil
}

// StringParts returns v's major type (byte-string or text-string), declared
// length, and payload slice. The slice borrows from v's backing buffer.
func StringParts(v Value) (format.MajorType, uint64, []byte, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindBytes && v.kind != format.KindText {
			return 0, 0, nil, errs.ErrWrongKind
		}
		return v.major, uint64(len(v.strPayload)), v.strPayload, nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return 0, 0, nil, err
	}
	if h.Major != format.ByteString && h.Major != format.TextString {
		return 0, 0, nil, errs.ErrWrongKind
	}
	payload := v.serialized[h.Size : h.Size+int(h.Arg)]
	return h.Major, h.Arg, payload, nil
}

// TaggedParts returns v's tag number and tagged payload value.
func TaggedParts(v Value) (uint64, Value, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindTag {
			return 0, Value{}, errs.ErrWrongKind
		}
		return v.tag, *v.tagPayload, nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return 0, Value{}, err
	}
	if h.Major != format.Tag {
		return 0, Value{}, errs.ErrWrongKind
	}

	rest := v.serialized[h.Size:]
	n, err := jump.DataItem(rest)
	if err != nil {
		return 0, Value{}, err
	}
	return h.Arg, NewSerialized(rest[:n]), nil
}

// ArrayLength returns the number of elements in v.
func ArrayLength(v Value) (uint64, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindArray {
			return 0, errs.ErrWrongKind
		}
		return uint64(len(v.items)), nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return 0, err
	}
	if h.Major != format.Array {
		return 0, errs.ErrWrongKind
	}
	return h.Arg, nil
}

// ArrayIndex returns the i'th element of array v. For a Serialized array
// this walks from the start via repeated jump.DataItem calls, so it costs
// O(i); callers that need every element should use NewArrayIterator or All instead.
func ArrayIndex(v Value, i uint64) (Value, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindArray {
			return Value{}, errs.ErrWrongKind
		}
		if i >= uint64(len(v.items)) {
			return Value{}, errs.ErrIndexOutOfRange
		}
		return v.items[i], nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return Value{}, err
	}
	if h.Major != format.Array {
		return Value{}, errs.ErrWrongKind
	}
	if i >= h.Arg {
		return Value{}, errs.ErrIndexOutOfRange
	}

	cur := v.serialized[h.Size:]
	for skip := uint64(0); skip < i; skip++ {
		n, err := jump.DataItem(cur)
		if err != nil {
			return Value{}, err
		}
		cur = cur[n:]
	}

	n, err := jump.DataItem(cur)
	if err != nil {
		return Value{}, err
	}
	return NewSerialized(cur[:n]), nil
}

// MapLength returns the number of key/value pairs in v.
func MapLength(v Value) (uint64, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindMap {
			return 0, errs.ErrWrongKind
		}
		return uint64(len(v.pairs)), nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return 0, err
	}
	if h.Major != format.Map {
		return 0, errs.ErrWrongKind
	}
	return h.Arg, nil
}

// BulkReadArray fills out with v's top-level elements, as Serialized
// subslices when v is itself Serialized, and returns the number written.
// It returns errs.ErrIndexOutOfRange if out is shorter than v's length.
func BulkReadArray(v Value, out []Value) (int, error) {
	n, err := ArrayLength(v)
	if err != nil {
		return 0, err
	}
	if uint64(len(out)) < n {
		return 0, errs.ErrIndexOutOfRange
	}

	it, err := NewArrayIterator(v)
	if err != nil {
		return 0, err
	}

	i := 0
	for {
		elem, ok, err := it.Next()
		if err != nil {
			return i, err
		}
		if !ok {
			break
		}
		out[i] = elem
		i++
	}
	return i, nil
}
