// Package dcbor provides a Go implementation of RFC 8949 Concise Binary
// Object Representation (CBOR): a structural, definite-length-only codec
// with an optional deterministic-encoding (canonical) mode.
//
// # Core Features
//
//   - Zero-copy decoding via Serialized values that borrow their input buffer
//   - A closed, tagged-union constructed value type for building documents
//   - A strict mode enforcing RFC 8949 §4.2 Core Deterministic Encoding
//     Requirements (minimal head width, canonical map-key ordering)
//   - A byte-lexicographic comparator over Serialized values
//   - Materialize and Fingerprint helpers for canonicalization and hashing
//   - A bundle container for packing many items together with an index,
//     optional compression, and a CRC32 integrity check
//
// # Basic Usage
//
//	v, rest, err := dcbor.Read(buf)
//	if err != nil {
//	    return err
//	}
//	// v.IsSerialized() is true; rest holds whatever followed the item.
//
//	out, err := dcbor.Marshal(item.NewArray([]item.Value{item.NewUint(1), item.NewUint(2)}))
//
// # Package Structure
//
// This package is a thin, convenience-oriented wrapper around the item
// package (the core codec) and the bundle package. For fine-grained control
// — validator options, custom iteration, accessor-level access — use those
// packages directly.
package dcbor

import (
	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/item"
)

// Value is the core tagged-union value type, re-exported for convenience so
// callers need not import the item package for the common case.
type Value = item.Value

// Pair is a map key/value pair, re-exported from item.
type Pair = item.Pair

// Read validates exactly one well-formed data item at the front of buf and
// returns it as a Serialized value together with whatever bytes followed it.
// It does not require the item to consume all of buf; callers that expect an
// exact single item should check that the returned remainder is empty.
func Read(buf []byte) (Value, []byte, error) {
	n, err := item.Validate(buf)
	if err != nil {
		return Value{}, nil, err
	}
	return item.NewSerialized(buf[:n]), buf[n:], nil
}

// ReadDeterministic is Read, but additionally rejects any non-canonical
// encoding: non-minimal head widths or out-of-order/duplicate map keys.
func ReadDeterministic(buf []byte) (Value, []byte, error) {
	n, err := item.ValidateDeterministic(buf)
	if err != nil {
		return Value{}, nil, err
	}
	return item.NewSerialized(buf[:n]), buf[n:], nil
}

// Unmarshal is Read, but additionally requires buf to contain exactly one
// data item with no trailing bytes.
func Unmarshal(buf []byte) (Value, error) {
	v, rest, err := Read(buf)
	if err != nil {
		return Value{}, err
	}
	if len(rest) != 0 {
		return Value{}, errs.ErrTrailingData
	}
	return v, nil
}

// Marshal encodes v into an owned, right-sized byte slice.
func Marshal(v Value) ([]byte, error) {
	return item.Marshal(v)
}

// Write encodes v into dst, which must be at least as large as SizeOf(v).
func Write(v Value, dst []byte) (int, error) {
	return item.WriteInto(v, dst)
}

// SizeOf returns the exact number of bytes Write(v, ...) will emit.
func SizeOf(v Value) (int, error) {
	return item.SizeOf(v)
}

// Compare orders two Serialized values by their encoded bytes. Any other
// pairing returns Incomparable; see item.Materialize for the sanctioned
// opt-in upgrade path for constructed values.
func Compare(a, b Value) item.Ordering {
	return item.Compare(a, b)
}

// Materialize recursively expands a Serialized value into a fully owned
// constructed tree.
func Materialize(v Value) (Value, error) {
	return item.Materialize(v)
}

// Fingerprint returns a content hash of v's canonical encoding, stable
// across constructed and Serialized representations of the same value.
func Fingerprint(v Value) (uint64, error) {
	return item.Fingerprint(v)
}
