// Package errs defines the sentinel errors returned across dcbor.
//
// Callers should match on these with errors.Is; functions that add context
// wrap a sentinel with fmt.Errorf("%w: ...", errs.ErrX, ...) rather than
// defining new error types.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotEnoughData is returned when a buffer ends before a head or argument
// the decoder expected to find is fully present.
var ErrNotEnoughData = errors.New("dcbor: not enough data")

// ErrConstraintFailed is the umbrella sentinel for every structural rule
// violation the validator can find beyond plain truncation: reserved AI,
// indefinite length, an out-of-range simple value, or (in strict mode) a
// non-minimal head or disordered map. Every more specific sentinel below
// wraps this one, so callers can match at whichever granularity they need:
// errors.Is(err, errs.ErrConstraintFailed) catches all of them, while
// errors.Is(err, errs.ErrMapKeyOrder) catches only that one.
var ErrConstraintFailed = errors.New("dcbor: structural constraint violated")

// Structural decode errors (header.ReadHead, jump.DataItem, item.Validate,
// item.NewSimple, dcbor.Unmarshal). All but ErrTrailingData and ErrEmptyInput
// wrap ErrConstraintFailed.
var (
	// ErrReservedAdditionalInfo is returned for additional-info values 28-30,
	// which RFC 8949 reserves and never assigns a meaning to.
	ErrReservedAdditionalInfo = fmt.Errorf("%w: reserved additional information value", ErrConstraintFailed)

	// ErrIndefiniteLength is returned when additional-info 31 is seen.
	// Indefinite-length items are outside this codec's scope.
	ErrIndefiniteLength = fmt.Errorf("%w: indefinite-length items are not supported", ErrConstraintFailed)

	// ErrSimpleValueTooSmall is returned for a one-byte simple value
	// (major type 7, AI 24) whose argument is below 32: values 0-23 belong in
	// the initial byte itself, and 24-31 are reserved by RFC 8949.
	ErrSimpleValueTooSmall = fmt.Errorf("%w: one-byte simple value below 32", ErrConstraintFailed)

	// ErrUnassignedSimpleValue is returned for a simple value in the
	// reserved-but-unassigned ranges of the simple value space.
	ErrUnassignedSimpleValue = fmt.Errorf("%w: unassigned simple value", ErrConstraintFailed)

	// ErrNestingLimitExceeded is returned when a pending-item count would
	// exceed its ceiling: the configurable one item.Validate enforces
	// (WithMaxPendingItems), or jump.DataItem's fixed jump.MaxPendingItems.
	ErrNestingLimitExceeded = fmt.Errorf("%w: nesting limit exceeded", ErrConstraintFailed)

	// ErrTrailingData is returned (by dcbor.Unmarshal and bundle.PackBundle)
	// when a buffer that must hold exactly one data item has bytes left over
	// after it.
	ErrTrailingData = errors.New("dcbor: trailing data after top-level item")

	// ErrEmptyInput is returned when a zero-length buffer is passed where a
	// single data item is expected.
	ErrEmptyInput = errors.New("dcbor: empty input")
)

// Deterministic-encoding errors (item.ValidateDeterministic), all wrapping
// ErrConstraintFailed.
var (
	// ErrNonMinimalHead is returned when an integer, length, or tag argument
	// is encoded in more bytes than its value requires.
	ErrNonMinimalHead = fmt.Errorf("%w: head argument is not minimally encoded", ErrConstraintFailed)

	// ErrMapKeyOrder is returned when a map's keys are not in strictly
	// increasing byte-lexicographic order of their encoded form.
	ErrMapKeyOrder = fmt.Errorf("%w: map keys are not in canonical order", ErrConstraintFailed)

	// ErrDuplicateMapKey is returned when two keys in the same map encode to
	// identical bytes.
	ErrDuplicateMapKey = fmt.Errorf("%w: duplicate map key", ErrConstraintFailed)
)

// There is no ErrNonCanonicalFloat or ErrNonCanonicalNaN: per §1's Non-goal,
// this codec treats floats opaquely and performs no float-shortening or
// NaN-payload canonicalization check. A non-minimal-width check would need
// to interpret the bit pattern it is validating, which is exactly the
// handling the core declines to do.

// Accessor and iterator errors (item package).
var (
	// ErrWrongKind is returned when an accessor is called against a Value
	// whose Kind does not match the requested shape.
	ErrWrongKind = errors.New("dcbor: value has the wrong kind")

	// ErrIndexOutOfRange is returned when an array or map index is outside
	// the item's bounds.
	ErrIndexOutOfRange = errors.New("dcbor: index out of range")

	// ErrIteratorExhausted names the state of an iterator with no elements
	// left. The item iterators do not return it: their Next reports
	// exhaustion with ok == false and a nil error.
	ErrIteratorExhausted = errors.New("dcbor: iterator exhausted")
)

// Comparison errors (item.Compare).
var (
	// ErrIncomparable names the case of two values that are not both
	// Serialized, the one pairing this codec defines an ordering for. Compare
	// reports that case as the Incomparable ordering, not as this error.
	ErrIncomparable = errors.New("dcbor: values are not comparable")
)

// Writer errors (item.Write, item.Marshal).
var (
	// ErrBufferTooSmall is returned when WriteInto is given a destination
	// slice shorter than the previously computed size.
	ErrBufferTooSmall = errors.New("dcbor: destination buffer too small")

	// ErrValueTooLarge is returned when a byte string, text string, array,
	// or map length exceeds what a 64-bit CBOR length argument can hold.
	ErrValueTooLarge = errors.New("dcbor: value length exceeds encodable range")
)

// Bundle errors (bundle package).
var (
	// ErrBundleTooShort is returned when a byte slice is too short to hold a
	// bundle's fixed header, its index entries, or its trailing checksum.
	ErrBundleTooShort = errors.New("dcbor: bundle too short to contain a header")

	// ErrBadMagic is returned when a bundle's magic number does not match.
	ErrBadMagic = errors.New("dcbor: bundle has an invalid magic number")

	// ErrUnsupportedVersion is returned when a bundle's format version is
	// any value other than the one version this package knows how to read.
	ErrUnsupportedVersion = errors.New("dcbor: unsupported bundle version")

	// ErrChecksumMismatch is returned when a bundle's stored CRC32 does not
	// match the checksum of its payload.
	ErrChecksumMismatch = errors.New("dcbor: bundle checksum mismatch")

	// ErrBundleIndexCorrupt is returned when a bundle's index entries do not
	// describe offsets within the payload section.
	ErrBundleIndexCorrupt = errors.New("dcbor: bundle index is corrupt")

	// ErrUnknownCompressionCodec is returned when a bundle's header names a
	// compression codec ID this build does not register.
	ErrUnknownCompressionCodec = errors.New("dcbor: unknown compression codec")
)
