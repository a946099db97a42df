package bundle

import (
	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/internal/bytecodec"
)

// MagicV1 identifies a version-1 bundle. It has no structural meaning beyond
// letting OpenBundle reject a buffer that is not a bundle at all.
const MagicV1 uint32 = 0x44434252 // "DCBR"

// Version1 is the only bundle format version this package knows how to read.
const Version1 uint8 = 1

// HeaderSize is the fixed size, in bytes, of a bundle header.
const HeaderSize = 24

// IndexEntrySize is the fixed size, in bytes, of one index entry.
const IndexEntrySize = 8

// header is the fixed 24-byte preamble of a bundle, the same shape as the
// teacher's NumericHeader: a magic/version field, the item count, and the
// byte offsets where the index and payload sections begin.
type header struct {
	Magic         uint32
	Version       uint8
	Compression   format.CompressionType
	ItemCount     uint32
	IndexOffset   uint32
	PayloadOffset uint32
	PayloadSize   uint32 // size of the payload once decompressed
}

// parseHeader reads a header from the front of buf.
func parseHeader(buf []byte) (header, error) {
	if len(buf) < HeaderSize {
		return header{}, errs.ErrBundleTooShort
	}

	magic, err := bytecodec.ReadUint32(buf[0:4])
	if err != nil {
		return header{}, err
	}
	if magic != MagicV1 {
		return header{}, errs.ErrBadMagic
	}

	version := buf[4]
	if version != Version1 {
		return header{}, errs.ErrUnsupportedVersion
	}
	compression := format.CompressionType(buf[5])
	// buf[6:8] is reserved padding, always zero on write.

	itemCount, err := bytecodec.ReadUint32(buf[8:12])
	if err != nil {
		return header{}, err
	}
	indexOffset, err := bytecodec.ReadUint32(buf[12:16])
	if err != nil {
		return header{}, err
	}
	payloadOffset, err := bytecodec.ReadUint32(buf[16:20])
	if err != nil {
		return header{}, err
	}
	payloadSize, err := bytecodec.ReadUint32(buf[20:24])
	if err != nil {
		return header{}, err
	}

	return header{
		Magic:         magic,
		Version:       version,
		Compression:   compression,
		ItemCount:     itemCount,
		IndexOffset:   indexOffset,
		PayloadOffset: payloadOffset,
		PayloadSize:   payloadSize,
	}, nil
}

// bytes encodes h as a HeaderSize-byte slice.
func (h header) bytes() []byte {
	buf := make([]byte, HeaderSize)
	bytecodec.PutUint32(buf[0:4], h.Magic)
	buf[4] = h.Version
	buf[5] = byte(h.Compression)
	// buf[6:8] reserved, left zero.
	bytecodec.PutUint32(buf[8:12], h.ItemCount)
	bytecodec.PutUint32(buf[12:16], h.IndexOffset)
	bytecodec.PutUint32(buf[16:20], h.PayloadOffset)
	bytecodec.PutUint32(buf[20:24], h.PayloadSize)
	return buf
}

// indexEntry records one item's offset and length within the (uncompressed)
// payload section, the same shape as the teacher's NumericIndexEntry.
type indexEntry struct {
	Offset uint32
	Length uint32
}

func parseIndexEntry(buf []byte) (indexEntry, error) {
	if len(buf) < IndexEntrySize {
		return indexEntry{}, errs.ErrBundleTooShort
	}
	offset, err := bytecodec.ReadUint32(buf[0:4])
	if err != nil {
		return indexEntry{}, err
	}
	length, err := bytecodec.ReadUint32(buf[4:8])
	if err != nil {
		return indexEntry{}, err
	}
	return indexEntry{Offset: offset, Length: length}, nil
}

func (e indexEntry) bytes() []byte {
	buf := make([]byte, IndexEntrySize)
	bytecodec.PutUint32(buf[0:4], e.Offset)
	bytecodec.PutUint32(buf[4:8], e.Length)
	return buf
}
