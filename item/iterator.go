package item

import (
	"iter"

	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/header"
	"github.com/dcbor/dcbor/internal/jump"
)

// ArrayIterator is a restartable forward iterator over an array's elements.
// Its state is either (remaining, index-into-items) for a constructed array
// or (remaining, byte-cursor) for a Serialized one, matching §4.F's
// description exactly; Next never re-scans from the start.
type ArrayIterator struct {
	items     []Value // constructed path
	cur       []byte  // serialized path
	remaining uint64
	index     int
}

// NewArrayIterator returns an iterator over v's elements. v must be an
// array, constructed or Serialized.
func NewArrayIterator(v Value) (*ArrayIterator, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindArray {
			return nil, errs.ErrWrongKind
		}
		return &ArrayIterator{items: v.items, remaining: uint64(len(v.items))}, nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return nil, err
	}
	if h.Major != format.Array {
		return nil, errs.ErrWrongKind
	}
	return &ArrayIterator{cur: v.serialized[h.Size:], remaining: h.Arg}, nil
}

// Next yields the next element and advances the iterator. The second
// return value is false once every element has been yielded.
func (it *ArrayIterator) Next() (Value, bool, error) {
	if it.remaining == 0 {
		return Value{}, false, nil
	}

	if it.items != nil {
		v := it.items[it.index]
		it.index++
		it.remaining--
		return v, true, nil
	}

	n, err := jump.DataItem(it.cur)
	if err != nil {
		return Value{}, false, err
	}
	v := NewSerialized(it.cur[:n])
	it.cur = it.cur[n:]
	it.remaining--
	return v, true, nil
}

// All returns an iter.Seq over v's elements, following the same yield
// convention as the teacher's ColumnarDecoder.All. Iteration stops early,
// without error surfacing, if the underlying Serialized buffer turns out to
// be malformed; callers that need to detect that should use
// NewArrayIterator directly.
func All(v Value) iter.Seq[Value] {
	return func(yield func(Value) bool) {
		it, err := NewArrayIterator(v)
		if err != nil {
			return
		}
		for {
			elem, ok, err := it.Next()
			if err != nil || !ok {
				return
			}
			if !yield(elem) {
				return
			}
		}
	}
}

// MapIterator is a restartable forward iterator over a map's key/value
// pairs, mirroring ArrayIterator's two-mode state.
type MapIterator struct {
	pairs     []Pair
	cur       []byte
	remaining uint64
	index     int
}

// NewMapIterator returns an iterator over v's pairs. v must be a map,
// constructed or Serialized.
func NewMapIterator(v Value) (*MapIterator, error) {
	if !v.IsSerialized() {
		if v.kind != format.KindMap {
			return nil, errs.ErrWrongKind
		}
		return &MapIterator{pairs: v.pairs, remaining: uint64(len(v.pairs))}, nil
	}

	h, err := header.ReadHead(v.serialized)
	if err != nil {
		return nil, err
	}
	if h.Major != format.Map {
		return nil, errs.ErrWrongKind
	}
	return &MapIterator{cur: v.serialized[h.Size:], remaining: h.Arg}, nil
}

// Next yields the next (key, value) pair and advances the iterator.
func (it *MapIterator) Next() (Value, Value, bool, error) {
	if it.remaining == 0 {
		return Value{}, Value{}, false, nil
	}

	if it.pairs != nil {
		p := it.pairs[it.index]
		it.index++
		it.remaining--
		return p.Key, p.Value, true, nil
	}

	kn, err := jump.DataItem(it.cur)
	if err != nil {
		return Value{}, Value{}, false, err
	}
	key := NewSerialized(it.cur[:kn])
	rest := it.cur[kn:]

	vn, err := jump.DataItem(rest)
	if err != nil {
		return Value{}, Value{}, false, err
	}
	val := NewSerialized(rest[:vn])

	it.cur = rest[vn:]
	it.remaining--
	return key, val, true, nil
}

// AllPairs returns an iter.Seq2 over v's key/value pairs.
func AllPairs(v Value) iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		it, err := NewMapIterator(v)
		if err != nil {
			return
		}
		for {
			key, val, ok, err := it.Next()
			if err != nil || !ok {
				return
			}
			if !yield(key, val) {
				return
			}
		}
	}
}
