// Package format defines the wire-level constants of RFC 8949 CBOR: major
// types, additional-info argument widths, and the simple-value/float family
// that shares major type 7.
package format

// MajorType is the 3-bit major type carried in bits 7-5 of an initial byte.
type MajorType uint8

const (
	UnsignedInt MajorType = 0 // unsigned integer
	NegativeInt MajorType = 1 // negative integer
	ByteString  MajorType = 2 // byte string
	TextString  MajorType = 3 // UTF-8 text string
	Array       MajorType = 4 // array of data items
	Map         MajorType = 5 // map of key/value pairs
	Tag         MajorType = 6 // tagged data item
	SimpleFloat MajorType = 7 // simple value or floating point number
)

func (m MajorType) String() string {
	switch m {
	case UnsignedInt:
		return "UnsignedInt"
	case NegativeInt:
		return "NegativeInt"
	case ByteString:
		return "ByteString"
	case TextString:
		return "TextString"
	case Array:
		return "Array"
	case Map:
		return "Map"
	case Tag:
		return "Tag"
	case SimpleFloat:
		return "SimpleFloat"
	default:
		return "Unknown"
	}
}

// AdditionalInfo is the 5-bit argument-width selector in bits 4-0 of an
// initial byte. Values 0-23 carry the argument directly; 24-27 say the
// argument follows in 1/2/4/8 bytes; 28-30 are reserved; 31 marks
// indefinite length, which this codec rejects.
type AdditionalInfo uint8

const (
	AIDirectMax     AdditionalInfo = 23 // highest value encoded directly in the initial byte
	AIOneByte       AdditionalInfo = 24 // argument follows in 1 byte
	AITwoByte       AdditionalInfo = 25 // argument follows in 2 bytes
	AIFourByte      AdditionalInfo = 26 // argument follows in 4 bytes
	AIEightByte     AdditionalInfo = 27 // argument follows in 8 bytes
	AIReservedStart AdditionalInfo = 28 // start of the reserved, unassigned range
	AIReservedEnd   AdditionalInfo = 30 // end of the reserved, unassigned range
	AIIndefinite    AdditionalInfo = 31 // indefinite length marker; unsupported
)

// Kind discriminates the shapes a Value can take. It refines MajorType by
// giving major types 0/1 a single signed-integer identity and splitting
// major type 7 into its named simple-value sub-families. Float-family bytes
// (AI 25/26/27) are not split out as their own Kind: per the core's Non-goal
// on floating-point handling, they classify as KindSimple, the same as any
// other major-7 byte the core does not give special meaning to.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt          // unsigned or negative integer, major types 0 and 1
	KindBytes        // byte string, major type 2
	KindText         // UTF-8 text string, major type 3
	KindArray        // array, major type 4
	KindMap          // map, major type 5
	KindTag          // tagged data item, major type 6
	KindBool         // simple values 20/21
	KindNull         // simple value 22
	KindUndefined    // simple value 23
	KindSimple       // any other simple/float-family byte (0-19, 25-27, 32-255)
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindBytes:
		return "Bytes"
	case KindText:
		return "Text"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindTag:
		return "Tag"
	case KindBool:
		return "Bool"
	case KindNull:
		return "Null"
	case KindUndefined:
		return "Undefined"
	case KindSimple:
		return "Simple"
	default:
		return "Invalid"
	}
}

// Simple values RFC 8949 assigns to false, true, null and undefined; each is
// encoded directly in the initial byte (additional info 20-23).
const (
	SimpleFalse     uint8 = 20
	SimpleTrue      uint8 = 21
	SimpleNull      uint8 = 22
	SimpleUndefined uint8 = 23
)

// Additional-info values within major type 7 that select a float width
// rather than a simple value.
const (
	FloatHalf   AdditionalInfo = 25 // IEEE 754 binary16
	FloatSingle AdditionalInfo = 26 // IEEE 754 binary32
	FloatDouble AdditionalInfo = 27 // IEEE 754 binary64
)

// EncodeInitialByte packs a major type and a 5-bit additional-info field
// into a single initial byte.
func EncodeInitialByte(mt MajorType, ai AdditionalInfo) byte {
	return byte(mt)<<5 | byte(ai)&0x1F
}

// DecodeInitialByte splits an initial byte into its major type and
// additional-info field.
func DecodeInitialByte(b byte) (MajorType, AdditionalInfo) {
	return MajorType(b >> 5), AdditionalInfo(b & 0x1F)
}

// CompressionType identifies the codec used to compress a bundle's payload
// section.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // no compression
	CompressionZstd CompressionType = 0x2 // Zstandard
	CompressionS2   CompressionType = 0x3 // S2 (Snappy-compatible)
	CompressionLZ4  CompressionType = 0x4 // LZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
