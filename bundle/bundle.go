// Package bundle packs many validated CBOR items into one batched container:
// a fixed header, a byte-offset index, and a payload section, with an
// optional whole-payload compression stage and a trailing CRC32 integrity
// check. It is not a CBOR extension; it is an ambient, out-of-band envelope
// for moving a corpus of CBOR documents together, modeled directly on the
// teacher's blob container layout (fixed header + fixed-size index entries +
// payload).
package bundle

import (
	"fmt"
	"hash/crc32"

	"github.com/dcbor/dcbor/compress"
	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/internal/options"
	"github.com/dcbor/dcbor/item"
	"github.com/dcbor/dcbor/logging"
)

// crc32 is computed with the standard IEEE polynomial via the standard
// library; no example repo in the pack provides a CRC32 implementation of
// its own, so this one concern is grounded on hash/crc32 rather than a
// third-party package.

type packConfig struct {
	compression format.CompressionType
	logger      logging.Logger
}

// BundleOption configures PackBundle.
type BundleOption = options.Option[*packConfig]

// WithCompression selects the algorithm used to compress the bundle's
// payload section. The default is format.CompressionNone.
func WithCompression(c format.CompressionType) BundleOption {
	return options.NoError(func(cfg *packConfig) {
		cfg.compression = c
	})
}

// WithLogger routes PackBundle's progress logging through l instead of
// discarding it.
func WithLogger(l logging.Logger) BundleOption {
	return options.NoError(func(cfg *packConfig) {
		cfg.logger = l
	})
}

// Bundle is a parsed, read-only view over a packed bundle. OpenBundle parses
// the header and index eagerly but does not parse item payloads; Item slices
// and hands back one item's bytes on demand.
type Bundle struct {
	hdr     header
	entries []indexEntry
	payload []byte // decompressed, CRC-verified
}

// PackBundle validates each item (an invalid item is a packing error, not a
// silent pass-through), concatenates their bytes into a payload section,
// optionally compresses that payload as a whole, and returns the complete
// bundle bytes: header, index, payload, trailing CRC32 of the uncompressed
// payload.
func PackBundle(items [][]byte, opts ...BundleOption) ([]byte, error) {
	cfg := &packConfig{compression: format.CompressionNone, logger: logging.NopLogger{}}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	payloadSize := 0
	entries := make([]indexEntry, 0, len(items))
	for i, it := range items {
		n, err := item.Validate(it)
		if err != nil {
			return nil, fmt.Errorf("bundle: item %d: %w", i, err)
		}
		if n != len(it) {
			return nil, fmt.Errorf("bundle: item %d: %w", i, errs.ErrTrailingData)
		}
		entries = append(entries, indexEntry{Offset: uint32(payloadSize), Length: uint32(len(it))})
		payloadSize += len(it)
	}

	payload := make([]byte, 0, payloadSize)
	for _, it := range items {
		payload = append(payload, it...)
	}

	checksum := crc32.ChecksumIEEE(payload)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("bundle: compressing payload: %w", err)
	}

	indexOffset := uint32(HeaderSize)
	payloadOffset := indexOffset + uint32(len(entries))*IndexEntrySize

	hdr := header{
		Magic:         MagicV1,
		Version:       Version1,
		Compression:   cfg.compression,
		ItemCount:     uint32(len(items)),
		IndexOffset:   indexOffset,
		PayloadOffset: payloadOffset,
		PayloadSize:   uint32(payloadSize),
	}

	out := make([]byte, 0, int(payloadOffset)+len(compressed)+4)
	out = append(out, hdr.bytes()...)
	for _, e := range entries {
		out = append(out, e.bytes()...)
	}
	out = append(out, compressed...)
	out = append(out, byte(checksum>>24), byte(checksum>>16), byte(checksum>>8), byte(checksum))

	cfg.logger.Info("packed bundle", logging.Fields{
		"items":         len(items),
		"payload_bytes": payloadSize,
		"packed_bytes":  len(out),
		"compression":   cfg.compression.String(),
	})

	return out, nil
}

// OpenBundle parses a bundle's header and index. The payload is decompressed
// and checksum-verified eagerly (cheap relative to parsing the items it
// holds), but individual items are left for the caller to read on demand via
// Item.
func OpenBundle(data []byte) (*Bundle, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	entries := make([]indexEntry, hdr.ItemCount)
	for i := range entries {
		off := int(hdr.IndexOffset) + i*IndexEntrySize
		if off+IndexEntrySize > len(data) {
			return nil, errs.ErrBundleTooShort
		}
		e, err := parseIndexEntry(data[off : off+IndexEntrySize])
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}

	if int(hdr.PayloadOffset) > len(data)-4 {
		return nil, errs.ErrBundleTooShort
	}
	compressed := data[hdr.PayloadOffset : len(data)-4]
	storedChecksum := uint32(data[len(data)-4])<<24 | uint32(data[len(data)-3])<<16 |
		uint32(data[len(data)-2])<<8 | uint32(data[len(data)-1])

	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return nil, errs.ErrUnknownCompressionCodec
	}
	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("bundle: decompressing payload: %w", err)
	}
	if uint32(len(payload)) != hdr.PayloadSize {
		return nil, errs.ErrBundleIndexCorrupt
	}

	if crc32.ChecksumIEEE(payload) != storedChecksum {
		return nil, errs.ErrChecksumMismatch
	}

	for _, e := range entries {
		if uint64(e.Offset)+uint64(e.Length) > uint64(len(payload)) {
			return nil, errs.ErrBundleIndexCorrupt
		}
	}

	return &Bundle{hdr: hdr, entries: entries, payload: payload}, nil
}

// Len returns the number of items the bundle holds.
func (b *Bundle) Len() int {
	return len(b.entries)
}

// Item slices out item i's bytes in O(1) using the index. The returned slice
// aliases the bundle's decompressed payload and is ready to pass to
// item.NewSerialized or dcbor.Read.
func (b *Bundle) Item(i int) ([]byte, error) {
	if i < 0 || i >= len(b.entries) {
		return nil, errs.ErrIndexOutOfRange
	}
	e := b.entries[i]
	return b.payload[e.Offset : e.Offset+e.Length], nil
}

// Compression reports the algorithm the bundle's payload was packed with.
func (b *Bundle) Compression() format.CompressionType {
	return b.hdr.Compression
}
