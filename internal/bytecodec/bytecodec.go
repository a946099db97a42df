// Package bytecodec provides the fixed-width big-endian primitives the rest
// of dcbor builds its head and argument codec on top of.
//
// It wraps endian.EndianEngine the same way mebo's section package reads
// header fields through a flag-selected engine, except here the engine is
// always network byte order because RFC 8949 does not allow a choice.
package bytecodec

import (
	"github.com/dcbor/dcbor/endian"
	"github.com/dcbor/dcbor/errs"
)

var engine = endian.GetBigEndianEngine()

// PutUint8 writes v into b[0].
func PutUint8(b []byte, v uint8) {
	b[0] = v
}

// PutUint16 writes v into b[0:2] in network byte order.
func PutUint16(b []byte, v uint16) {
	engine.PutUint16(b, v)
}

// PutUint32 writes v into b[0:4] in network byte order.
func PutUint32(b []byte, v uint32) {
	engine.PutUint32(b, v)
}

// PutUint64 writes v into b[0:8] in network byte order.
func PutUint64(b []byte, v uint64) {
	engine.PutUint64(b, v)
}

// AppendUint8 appends v to b and returns the extended slice.
func AppendUint8(b []byte, v uint8) []byte {
	return append(b, v)
}

// AppendUint16 appends v to b in network byte order.
func AppendUint16(b []byte, v uint16) []byte {
	return engine.AppendUint16(b, v)
}

// AppendUint32 appends v to b in network byte order.
func AppendUint32(b []byte, v uint32) []byte {
	return engine.AppendUint32(b, v)
}

// AppendUint64 appends v to b in network byte order.
func AppendUint64(b []byte, v uint64) []byte {
	return engine.AppendUint64(b, v)
}

// ReadUint8 reads one byte from buf.
//
// It returns errs.ErrNotEnoughData if buf is empty.
func ReadUint8(buf []byte) (uint8, error) {
	if len(buf) < 1 {
		return 0, errs.ErrNotEnoughData
	}
	return buf[0], nil
}

// ReadUint16 reads a big-endian uint16 from buf[0:2].
//
// It returns errs.ErrNotEnoughData if buf is shorter than 2 bytes.
func ReadUint16(buf []byte) (uint16, error) {
	if len(buf) < 2 {
		return 0, errs.ErrNotEnoughData
	}
	return engine.Uint16(buf), nil
}

// ReadUint32 reads a big-endian uint32 from buf[0:4].
//
// It returns errs.ErrNotEnoughData if buf is shorter than 4 bytes.
func ReadUint32(buf []byte) (uint32, error) {
	if len(buf) < 4 {
		return 0, errs.ErrNotEnoughData
	}
	return engine.Uint32(buf), nil
}

// ReadUint64 reads a big-endian uint64 from buf[0:8].
//
// It returns errs.ErrNotEnoughData if buf is shorter than 8 bytes.
func ReadUint64(buf []byte) (uint64, error) {
	if len(buf) < 8 {
		return 0, errs.ErrNotEnoughData
	}
	return engine.Uint64(buf), nil
}
