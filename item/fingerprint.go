package item

import "github.com/dcbor/dcbor/internal/hash"

// Fingerprint computes a 64-bit xxHash64 digest of v's canonical encoding.
//
// It canonicalizes via Materialize+Marshal rather than a separate
// hash-while-walking traversal, so the writer remains the single source of
// truth for "what are this value's canonical bytes" — the same design the
// teacher applies in internal/hash.ID, which hashes a metric name string
// rather than re-deriving a digest from some other representation of it.
// Two values that round-trip to the same canonical bytes always produce the
// same fingerprint.
func Fingerprint(v Value) (uint64, error) {
	m, err := Materialize(v)
	if err != nil {
		return 0, err
	}

	canonical, err := Marshal(m)
	if err != nil {
		return 0, err
	}

	return hash.Bytes(canonical), nil
}
