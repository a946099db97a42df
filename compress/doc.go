// Package compress provides compression and decompression codecs for bundle
// payload sections.
//
// A bundle packs many validated CBOR items into one payload section before
// writing its fixed header and index (see the bundle package). Compression is
// applied to that whole concatenated payload, as an optional stage between
// packing and the final CRC32 checksum.
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no compression, fastest
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Selection guide
//
// | Workload             | Recommended | Reason                         |
// |----------------------|-------------|--------------------------------|
// | Storage-constrained  | Zstd        | best compression ratio         |
// | Write-heavy          | S2          | balanced speed and ratio       |
// | Read-heavy           | LZ4         | fastest decompression          |
// | CPU-constrained      | None        | no compression overhead        |
//
// # Memory management
//
// The LZ4 compressor and the pure-Go Zstd encoder/decoder are pooled with
// sync.Pool; output buffers are allocated per call. Callers own the returned
// slice, except for the None codec, which returns its input slice unchanged.
//
// # Error handling
//
// Decompress returns an error for corrupted input or an unsupported format.
// LZ4 decompression also fails once its output buffer would exceed 128MB.
// The pure-Go Zstd decoder wraps its errors with context; the S2 and LZ4
// codecs return the underlying library error as is.
//
// # Extending
//
// Custom codecs implement Compressor/Decompressor and register with
// CreateCodec's target switch; built-in codecs are resolved via GetCodec.
package compress
