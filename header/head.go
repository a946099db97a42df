// Package header decodes and encodes the head of a single CBOR data item:
// the initial byte and the argument bytes that follow it.
//
// It plays the role mebo's section package plays for NumericHeader.Parse and
// .Bytes, but a CBOR head is variable-width (1 to 9 bytes) rather than a
// fixed 32-byte struct, so ReadHead reports how many bytes it consumed.
package header

import (
	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/internal/bytecodec"
)

// Head is a decoded initial byte plus its argument.
type Head struct {
	// Major is the 3-bit major type from the initial byte.
	Major format.MajorType
	// AI is the raw 5-bit additional-info field from the initial byte.
	AI format.AdditionalInfo
	// Arg is the decoded argument value: the length, count, tag number,
	// unsigned integer magnitude, or simple-value/float selector, depending
	// on Major and AI. For AI <= 23 it equals uint64(AI).
	Arg uint64
	// Size is the number of bytes the head occupies on the wire, including
	// the initial byte.
	Size int
}

// ReadHead decodes the head at the start of buf.
//
// It rejects additional-info values CBOR reserves (28-30) and the
// indefinite-length marker (31), since this codec only speaks definite
// lengths. It does not enforce minimal-width encoding; use IsMinimal or
// item's deterministic validator for that.
func ReadHead(buf []byte) (Head, error) {
	b, err := bytecodec.ReadUint8(buf)
	if err != nil {
		return Head{}, errs.ErrNotEnoughData
	}

	major, ai := format.DecodeInitialByte(b)

	switch {
	case ai <= format.AIDirectMax:
		return Head{Major: major, AI: ai, Arg: uint64(ai), Size: 1}, nil

	case ai == format.AIOneByte:
		v, err := bytecodec.ReadUint8(buf[1:])
		if err != nil {
			return Head{}, errs.ErrNotEnoughData
		}
		return Head{Major: major, AI: ai, Arg: uint64(v), Size: 2}, nil

	case ai == format.AITwoByte:
		v, err := bytecodec.ReadUint16(buf[1:])
		if err != nil {
			return Head{}, errs.ErrNotEnoughData
		}
		return Head{Major: major, AI: ai, Arg: uint64(v), Size: 3}, nil

	case ai == format.AIFourByte:
		v, err := bytecodec.ReadUint32(buf[1:])
		if err != nil {
			return Head{}, errs.ErrNotEnoughData
		}
		return Head{Major: major, AI: ai, Arg: uint64(v), Size: 5}, nil

	case ai == format.AIEightByte:
		v, err := bytecodec.ReadUint64(buf[1:])
		if err != nil {
			return Head{}, errs.ErrNotEnoughData
		}
		return Head{Major: major, AI: ai, Arg: v, Size: 9}, nil

	case ai >= format.AIReservedStart && ai <= format.AIReservedEnd:
		return Head{}, errs.ErrReservedAdditionalInfo

	default: // AIIndefinite
		return Head{}, errs.ErrIndefiniteLength
	}
}

// MinimalWidth reports the AdditionalInfo that encodes arg in the fewest
// bytes, per RFC 8949's deterministic-encoding rule. For major type 7,
// callers pass the raw simple-value/float selector as arg; MinimalWidth
// never chooses 24 for arg < 24 there either, since the one-byte form of a
// simple value under 24 is itself non-minimal (it must be encoded directly).
func MinimalWidth(arg uint64) format.AdditionalInfo {
	switch {
	case arg <= uint64(format.AIDirectMax):
		return format.AdditionalInfo(arg)
	case arg <= 0xFF:
		return format.AIOneByte
	case arg <= 0xFFFF:
		return format.AITwoByte
	case arg <= 0xFFFFFFFF:
		return format.AIFourByte
	default:
		return format.AIEightByte
	}
}

// ArgWidth returns the number of argument bytes that follow the initial
// byte for a given AdditionalInfo: 0 for direct values, 1/2/4/8 for the
// sized forms.
func ArgWidth(ai format.AdditionalInfo) int {
	switch ai {
	case format.AIOneByte:
		return 1
	case format.AITwoByte:
		return 2
	case format.AIFourByte:
		return 4
	case format.AIEightByte:
		return 8
	default:
		return 0
	}
}

// IsMinimal reports whether ai is the narrowest encoding of arg.
func IsMinimal(ai format.AdditionalInfo, arg uint64) bool {
	return ai == MinimalWidth(arg)
}

// AppendHead appends the minimally-encoded head for (major, arg) to dst and
// returns the extended slice. It always chooses MinimalWidth, which is what
// every writer path in item uses; callers that must produce a specific
// (possibly non-minimal) width use AppendHeadWidth instead.
func AppendHead(dst []byte, major format.MajorType, arg uint64) []byte {
	return AppendHeadWidth(dst, major, MinimalWidth(arg), arg)
}

// AppendHeadWidth appends a head for (major, arg) encoded at exactly the
// given AdditionalInfo width, without checking minimality. It is used by
// major type 7's fixed-width simple-value encoding, where the
// caller -- not MinimalWidth -- determines the width.
func AppendHeadWidth(dst []byte, major format.MajorType, ai format.AdditionalInfo, arg uint64) []byte {
	dst = append(dst, format.EncodeInitialByte(major, ai))

	switch ArgWidth(ai) {
	case 1:
		dst = bytecodec.AppendUint8(dst, uint8(arg))
	case 2:
		dst = bytecodec.AppendUint16(dst, uint16(arg))
	case 4:
		dst = bytecodec.AppendUint32(dst, uint32(arg))
	case 8:
		dst = bytecodec.AppendUint64(dst, arg)
	}

	return dst
}

// Size returns the number of bytes AppendHead would write for (major, arg),
// without writing them. It is used by item's two-pass writer to compute
// exact output sizes before allocating.
func Size(arg uint64) int {
	return 1 + ArgWidth(MinimalWidth(arg))
}
