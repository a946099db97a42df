// Package endian provides the byte order engine used to encode and decode
// CBOR heads and arguments.
//
// RFC 8949 fixes CBOR's wire byte order to network byte order (big-endian);
// there is no little-endian variant to select. This package exists anyway,
// as a thin named seam over encoding/binary, so the rest of dcbor depends on
// an EndianEngine interface rather than importing encoding/binary directly.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.BigEndian from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the network byte order engine CBOR requires.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
