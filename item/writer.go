// Writer implements the two-pass serializer of §4.G: SizeOf computes the
// exact output length a value needs (pass 1), and WriteInto emits it into a
// caller-provided buffer (pass 2). Marshal wraps both behind a pooled
// scratch buffer, the same shape as the teacher's Finish() encoders, which
// size a buffer once and then write into it without growing mid-stream.
package item

import (
	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/header"
	"github.com/dcbor/dcbor/internal/pool"
)

// SizeOf returns the exact number of bytes Write would emit for v.
func SizeOf(v Value) (int, error) {
	if v.IsSerialized() {
		return v.size, nil
	}

	switch v.kind {
	case format.KindInt:
		return header.Size(v.intVal), nil

	case format.KindBool, format.KindNull, format.KindUndefined, format.KindSimple:
		if v.simple <= uint8(format.AIDirectMax) {
			return 1, nil
		}
		return 2, nil

	case format.KindBytes, format.KindText:
		return header.Size(uint64(len(v.strPayload))) + len(v.strPayload), nil

	case format.KindTag:
		inner, err := SizeOf(*v.tagPayload)
		if err != nil {
			return 0, err
		}
		return header.Size(v.tag) + inner, nil

	case format.KindArray:
		total := header.Size(uint64(len(v.items)))
		for _, item := range v.items {
			n, err := SizeOf(item)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil

	case format.KindMap:
		total := header.Size(uint64(len(v.pairs)))
		for _, p := range v.pairs {
			kn, err := SizeOf(p.Key)
			if err != nil {
				return 0, err
			}
			vn, err := SizeOf(p.Value)
			if err != nil {
				return 0, err
			}
			total += kn + vn
		}
		return total, nil

	default:
		return 0, errs.ErrWrongKind
	}
}

// WriteInto serializes v into dst and returns the number of bytes written.
// dst must be at least SizeOf(v) bytes long; otherwise WriteInto returns
// errs.ErrBufferTooSmall without writing anything.
func WriteInto(v Value, dst []byte) (int, error) {
	n, err := SizeOf(v)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, errs.ErrBufferTooSmall
	}

	end := appendValue(dst[:0], v)
	return len(end), nil
}

// appendValue appends v's encoding to dst and returns the extended slice.
// It assumes the caller already confirmed dst has enough spare capacity via
// SizeOf; it performs no bounds checks of its own, matching §4.G's
// unchecked pass-2 cursor contract.
func appendValue(dst []byte, v Value) []byte {
	if v.IsSerialized() {
		return append(dst, v.serialized...)
	}

	switch v.kind {
	case format.KindInt:
		return header.AppendHead(dst, v.major, v.intVal)

	case format.KindBool, format.KindNull, format.KindUndefined, format.KindSimple:
		if v.simple <= uint8(format.AIDirectMax) {
			return header.AppendHeadWidth(dst, format.SimpleFloat, format.AdditionalInfo(v.simple), uint64(v.simple))
		}
		return header.AppendHeadWidth(dst, format.SimpleFloat, format.AIOneByte, uint64(v.simple))

	case format.KindBytes, format.KindText:
		dst = header.AppendHead(dst, v.major, uint64(len(v.strPayload)))
		return append(dst, v.strPayload...)

	case format.KindTag:
		dst = header.AppendHead(dst, format.Tag, v.tag)
		return appendValue(dst, *v.tagPayload)

	case format.KindArray:
		dst = header.AppendHead(dst, format.Array, uint64(len(v.items)))
		for _, item := range v.items {
			dst = appendValue(dst, item)
		}
		return dst

	case format.KindMap:
		dst = header.AppendHead(dst, format.Map, uint64(len(v.pairs)))
		for _, p := range v.pairs {
			dst = appendValue(dst, p.Key)
			dst = appendValue(dst, p.Value)
		}
		return dst

	default:
		return dst
	}
}

// Write is the top-level entry point of §6: it size-computes v, then writes
// it into out if out is large enough. It returns the same (0, error) shape
// WriteInto does on an undersized buffer.
func Write(v Value, out []byte) (int, error) {
	return WriteInto(v, out)
}

// Marshal serializes v into a freshly allocated, exactly-sized byte slice.
// It uses a pooled scratch buffer internally (§5's "convenience Marshal
// wrapper") and returns an owned copy, never the pooled buffer itself.
func Marshal(v Value) ([]byte, error) {
	n, err := SizeOf(v)
	if err != nil {
		return nil, err
	}

	scratch := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(scratch)

	scratch.Reset()
	scratch.Grow(n)

	buf := appendValue(scratch.B[:0], v)

	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}
