package item

import "github.com/dcbor/dcbor/format"

// Materialize recursively expands a Serialized value (and any Serialized
// values nested under a constructed Tagged/Array/Map) into a fully owned
// constructed tree. It is the structural analogue of the teacher's
// MaterializedNumericBlobSet/MaterializedTextBlobSet: it trades the
// zero-copy laziness of the serialized path for O(1) repeated random
// access, amortized over however many times the result gets read.
//
// For a value whose heads are all minimally encoded (as ValidateDeterministic
// guarantees), Write(Materialize(v)) produces the same bytes Write(v) would.
// A non-minimal integer, length or tag head is written at its minimal width
// once materialized, so such a value does not round-trip byte for byte.
func Materialize(v Value) (Value, error) {
	if !v.IsSerialized() {
		return materializeConstructed(v)
	}
	return materializeSerialized(v)
}

func materializeConstructed(v Value) (Value, error) {
	switch v.kind {
	case format.KindTag:
		inner, err := Materialize(*v.tagPayload)
		if err != nil {
			return Value{}, err
		}
		return NewTag(v.tag, inner), nil

	case format.KindArray:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			m, err := Materialize(item)
			if err != nil {
				return Value{}, err
			}
			items[i] = m
		}
		return NewArray(items), nil

	case format.KindMap:
		pairs := make([]Pair, len(v.pairs))
		for i, p := range v.pairs {
			mk, err := Materialize(p.Key)
			if err != nil {
				return Value{}, err
			}
			mv, err := Materialize(p.Value)
			if err != nil {
				return Value{}, err
			}
			pairs[i] = Pair{Key: mk, Value: mv}
		}
		return NewMap(pairs), nil

	default:
		// Int, Bytes, Text, Bool, Null, Undefined, Simple carry no
		// nested Serialized values; return as-is.
		return v, nil
	}
}

func materializeSerialized(v Value) (Value, error) {
	k, err := Kind(v)
	if err != nil {
		return Value{}, err
	}

	switch k {
	case format.KindInt:
		mt, arg, err := Int64Parts(v)
		if err != nil {
			return Value{}, err
		}
		if mt == format.UnsignedInt {
			return NewUint(arg), nil
		}
		return NewNegInt(arg), nil

	case format.KindBytes:
		_, _, payload, err := StringParts(v)
		if err != nil {
			return Value{}, err
		}
		owned := make([]byte, len(payload))
		copy(owned, payload)
		return NewBytes(owned), nil

	case format.KindText:
		_, _, payload, err := StringParts(v)
		if err != nil {
			return Value{}, err
		}
		return NewText(string(payload)), nil

	case format.KindTag:
		tag, payload, err := TaggedParts(v)
		if err != nil {
			return Value{}, err
		}
		inner, err := Materialize(payload)
		if err != nil {
			return Value{}, err
		}
		return NewTag(tag, inner), nil

	case format.KindArray:
		n, err := ArrayLength(v)
		if err != nil {
			return Value{}, err
		}
		items := make([]Value, 0, n)
		for elem := range All(v) {
			m, err := Materialize(elem)
			if err != nil {
				return Value{}, err
			}
			items = append(items, m)
		}
		return NewArray(items), nil

	case format.KindMap:
		n, err := MapLength(v)
		if err != nil {
			return Value{}, err
		}
		pairs := make([]Pair, 0, n)
		for key, val := range AllPairs(v) {
			mk, err := Materialize(key)
			if err != nil {
				return Value{}, err
			}
			mv, err := Materialize(val)
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: mk, Value: mv})
		}
		return NewMap(pairs), nil

	case format.KindSimple:
		// A float-family byte (AI 25/26/27) also classifies as KindSimple;
		// leave it as the original Serialized sub-value rather than decoding
		// it, since there is no constructed representation that can hold its
		// payload without this package interpreting the bit pattern.
		if isFloatFamily(v) {
			return v, nil
		}
		sv, err := SimpleValue(v)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: k, simple: sv}, nil

	default: // KindBool, KindNull, KindUndefined
		sv, err := SimpleValue(v)
		if err != nil {
			return Value{}, err
		}
		return Value{kind: k, simple: sv}, nil
	}
}
