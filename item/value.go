// Package item implements the core CBOR value model: validation, the
// constructed/serialized value representation, accessors and iterators,
// the two-pass writer, the comparator, and the materializer/fingerprint
// supplements.
//
// A Value is a closed, seven-variant tagged union, mirrored directly from
// §3 of the specification this package implements: Int, String (byte or
// text), Tagged, Array, Map, Simple (including bool/null/undefined/float),
// and Serialized. Every accessor and the writer dispatch on this union
// uniformly whether a Value was built by hand or parsed from a buffer.
package item

import "github.com/dcbor/dcbor/format"

// Pair is one key/value entry of a Map value, kept in caller-supplied order.
type Pair struct {
	Key   Value
	Value Value
}

// Value is a CBOR data item, either constructed in memory or borrowed from
// an already-validated byte slice.
//
// When serialized is non-nil, Value is the Serialized variant: every other
// field is meaningless and accessors re-read serialized on demand instead.
// Otherwise kind selects which of the remaining fields is live, exactly as
// a tagged union's discriminant would.
type Value struct {
	kind format.Kind

	// major distinguishes the two sub-variants kind alone does not: 0 vs 1
	// for KindInt, 2 vs 3 for KindBytes/KindText.
	major format.MajorType

	intVal uint64 // KindInt: raw 64-bit argument

	strPayload []byte // KindBytes / KindText: owned or caller-supplied payload

	tag        uint64 // KindTag
	tagPayload *Value // KindTag

	items []Value // KindArray
	pairs []Pair  // KindMap

	simple uint8 // KindBool (SimpleFalse/SimpleTrue), KindSimple: the raw simple-value byte, or (float-family) the AI itself

	serialized []byte // non-nil => Serialized variant
	size       int    // Serialized variant: cached byte length, equals len(serialized)
}

// IsSerialized reports whether v is the Serialized variant.
func (v Value) IsSerialized() bool {
	return v.serialized != nil
}

// SerializedBytes returns the borrowed byte slice backing a Serialized
// value. It panics if v is not Serialized; callers should check
// IsSerialized first.
func (v Value) SerializedBytes() []byte {
	if v.serialized == nil {
		panic("dcbor: SerializedBytes called on a constructed value")
	}
	return v.serialized
}

// NewSerialized wraps an already-validated byte slice of exactly one
// complete data item as a Serialized value. Callers obtain such slices from
// Read, ReadDeterministic, or the jump engine; NewSerialized performs no
// validation of its own.
func NewSerialized(buf []byte) Value {
	return Value{serialized: buf, size: len(buf)}
}

// NewUint constructs the Int variant for major type 0 (unsigned integer).
func NewUint(v uint64) Value {
	return Value{kind: format.KindInt, major: format.UnsignedInt, intVal: v}
}

// NewNegInt constructs the Int variant for major type 1 (negative integer).
// The represented integer is -1-int64(v); v is the raw wire argument, not
// the signed value.
func NewNegInt(v uint64) Value {
	return Value{kind: format.KindInt, major: format.NegativeInt, intVal: v}
}

// NewBytes constructs a byte-string value. The payload is used as-is, not
// copied; callers that need an owned copy should clone before passing it in.
func NewBytes(b []byte) Value {
	return Value{kind: format.KindBytes, major: format.ByteString, strPayload: b}
}

// NewText constructs a text-string value from s.
func NewText(s string) Value {
	return Value{kind: format.KindText, major: format.TextString, strPayload: []byte(s)}
}

// NewTag constructs a tagged value wrapping payload.
func NewTag(tag uint64, payload Value) Value {
	return Value{kind: format.KindTag, tag: tag, tagPayload: &payload}
}

// NewArray constructs an array value from items, in order.
func NewArray(items []Value) Value {
	return Value{kind: format.KindArray, items: items}
}

// NewMap constructs a map value from pairs, in the order given. NewMap does
// not sort or validate key order, and Write emits pairs in the order given,
// so canonical output needs pairs that are already sorted.
func NewMap(pairs []Pair) Value {
	return Value{kind: format.KindMap, pairs: pairs}
}

// NewBool constructs the simple value true or false.
func NewBool(b bool) Value {
	sv := uint8(format.SimpleFalse)
	if b {
		sv = format.SimpleTrue
	}
	return Value{kind: format.KindBool, simple: sv}
}

// NewNull constructs the simple value null.
func NewNull() Value {
	return Value{kind: format.KindNull, simple: format.SimpleNull}
}

// NewUndefined constructs the simple value undefined.
func NewUndefined() Value {
	return Value{kind: format.KindUndefined, simple: format.SimpleUndefined}
}

// NewSimple constructs an arbitrary simple value. v must be in [0,19] or
// [32,255]; the reserved [20,23] range has dedicated constructors
// (NewBool/NewNull/NewUndefined) and [24,31] is unassigned/indefinite.
func NewSimple(v uint8) (Value, error) {
	if v >= 20 && v <= 31 {
		return Value{}, errUnassignedOrReservedSimple(v)
	}
	return Value{kind: format.KindSimple, simple: v}, nil
}

// There is no NewFloat16/32/64 constructor: per §1's Non-goal, floating-point
// values are treated opaquely beyond major-type classification, and the value
// model's Lifecycle (§3) lists no explicit float constructor. A float-family
// item (major 7, AI 25/26/27) can only be produced by parsing — it arrives as
// a Serialized value and stays that way through Materialize (materialize.go).
