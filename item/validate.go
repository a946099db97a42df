package item

import (
	"bytes"
	"fmt"

	"github.com/dcbor/dcbor/errs"
	"github.com/dcbor/dcbor/format"
	"github.com/dcbor/dcbor/header"
	"github.com/dcbor/dcbor/internal/jump"
	"github.com/dcbor/dcbor/internal/options"
)

// DefaultMaxPendingItems is the pending-item ceiling Validate enforces when
// the caller supplies no WithMaxPendingItems option. It bounds the damage
// an adversarial, deeply- or widely-nested input can do before validation
// gives up, without constraining any legitimate document this codec
// expects to see.
const DefaultMaxPendingItems = 1 << 20

type validateConfig struct {
	maxPendingItems uint64
	strict          bool
}

// ValidateOption configures Validate and ValidateDeterministic.
type ValidateOption = options.Option[*validateConfig]

// WithMaxPendingItems overrides the pending-item ceiling (§4.D.2.g) used to
// bound adversarial nesting and width. The default is DefaultMaxPendingItems.
func WithMaxPendingItems(n uint64) ValidateOption {
	return options.NoError(func(c *validateConfig) {
		c.maxPendingItems = n
	})
}

// WithStrict turns on RFC 8949 §4.2 deterministic-encoding checks inside
// Validate: minimal head width and, via ValidateDeterministic's post-pass,
// ascending map-key order. Validate itself only applies the minimal-width
// half of strict mode; ValidateDeterministic always runs both halves
// regardless of this option.
func WithStrict(strict bool) ValidateOption {
	return options.NoError(func(c *validateConfig) {
		c.strict = strict
	})
}

func resolveValidateConfig(opts []ValidateOption) (*validateConfig, error) {
	cfg := &validateConfig{maxPendingItems: DefaultMaxPendingItems}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate runs the well-formedness walk of §4.D over buf and returns the
// number of bytes the single leading data item consumes. With WithStrict,
// it additionally requires every head to use its minimal encoding width,
// but does not check map-key order; use ValidateDeterministic for the full
// canonical-encoding check.
func Validate(buf []byte, opts ...ValidateOption) (int, error) {
	cfg, err := resolveValidateConfig(opts)
	if err != nil {
		return 0, err
	}
	return validateWellFormed(buf, cfg)
}

// ValidateDeterministic runs Validate in strict mode and then re-traverses
// the consumed prefix to check that every map's keys appear in strictly
// ascending byte-lexicographic order, per RFC 8949 §4.2.3.
func ValidateDeterministic(buf []byte, opts ...ValidateOption) (int, error) {
	cfg, err := resolveValidateConfig(opts)
	if err != nil {
		return 0, err
	}
	cfg.strict = true

	consumed, err := validateWellFormed(buf, cfg)
	if err != nil {
		return 0, err
	}

	if err := validateMapKeyOrder(buf[:consumed]); err != nil {
		return 0, err
	}

	return consumed, nil
}

// validateWellFormed is the iterative (cursor, pending) walker of §4.D.
func validateWellFormed(buf []byte, cfg *validateConfig) (int, error) {
	if len(buf) == 0 {
		return 0, errs.ErrEmptyInput
	}

	consumed := 0
	pending := uint64(1)

	for pending > 0 {
		cur := buf[consumed:]
		if len(cur) == 0 {
			return 0, errs.ErrNotEnoughData
		}

		h, err := header.ReadHead(cur)
		if err != nil {
			return 0, err
		}

		if h.Major == format.SimpleFloat && h.AI == format.AIOneByte && h.Arg < 32 {
			return 0, fmt.Errorf("%w: one-byte simple value %d below 32", errs.ErrSimpleValueTooSmall, h.Arg)
		}

		isFloatHead := h.Major == format.SimpleFloat &&
			(h.AI == format.FloatHalf || h.AI == format.FloatSingle || h.AI == format.FloatDouble)

		// MinimalWidth is an integer-argument-magnitude staircase; it has no
		// defined meaning against a float's raw IEEE-754 bit pattern (the
		// width there is fixed by which of half/single/double was chosen,
		// not by the numeric size of the bits), so it is never applied to a
		// float head. Per §1's Non-goal, this core treats floats opaquely
		// and performs no float-specific canonicalization check either.
		if cfg.strict && !isFloatHead && !header.IsMinimal(h.AI, h.Arg) {
			return 0, fmt.Errorf("%w: head for major %s encodes argument %d at non-minimal width",
				errs.ErrNonMinimalHead, h.Major, h.Arg)
		}

		n := h.Size
		if h.Major == format.ByteString || h.Major == format.TextString {
			if h.Arg > uint64(len(cur)-n) {
				return 0, errs.ErrNotEnoughData
			}
			n += int(h.Arg)
		}

		consumed += n
		pending--

		// Every child takes at least one byte, so a child count above the
		// bytes left can never be satisfied.
		remaining := uint64(len(buf) - consumed)
		if (h.Major == format.Array || h.Major == format.Map) && h.Arg > remaining {
			return 0, errs.ErrNotEnoughData
		}
		children := childrenCount(h.Major, h.Arg)
		if pending+children > remaining {
			return 0, errs.ErrNotEnoughData
		}
		if pending+children > cfg.maxPendingItems {
			return 0, fmt.Errorf("%w: pending item count would reach %d, ceiling is %d",
				errs.ErrNestingLimitExceeded, pending+children, cfg.maxPendingItems)
		}
		pending += children
	}

	return consumed, nil
}

func childrenCount(mt format.MajorType, arg uint64) uint64 {
	switch mt {
	case format.Array:
		return arg
	case format.Map:
		return arg * 2
	case format.Tag:
		return 1
	default:
		return 0
	}
}

// validateMapKeyOrder is the deterministic-encoding post-pass of §4.H: it
// re-walks buf with the same (cursor, pending) shape as validateWellFormed,
// but the only check it performs is, at every map head, verifying that
// buf's encoded keys for that map appear in strictly ascending
// byte-lexicographic order.
func validateMapKeyOrder(buf []byte) error {
	consumed := 0
	pending := uint64(1)

	for pending > 0 {
		cur := buf[consumed:]

		h, err := header.ReadHead(cur)
		if err != nil {
			return err
		}

		n, err := jump.Leaf(cur)
		if err != nil {
			return err
		}

		if h.Major == format.Map {
			if err := checkMapKeyOrder(cur[n:], h.Arg); err != nil {
				return err
			}
		}

		consumed += n
		pending--
		pending += childrenCount(h.Major, h.Arg)
	}

	return nil
}

// checkMapKeyOrder walks the numPairs (key, value) entries starting at buf
// and verifies each key's encoded bytes strictly precede the next key's,
// byte-lexicographically. It does not recurse into nested maps; the outer
// (cursor, pending) walk in validateMapKeyOrder visits those separately.
func checkMapKeyOrder(buf []byte, numPairs uint64) error {
	var prevKey []byte
	offset := 0

	for i := uint64(0); i < numPairs; i++ {
		keyLen, err := jump.DataItem(buf[offset:])
		if err != nil {
			return err
		}
		key := buf[offset : offset+keyLen]
		offset += keyLen

		if prevKey != nil {
			cmp := bytes.Compare(prevKey, key)
			if cmp == 0 {
				return fmt.Errorf("%w: repeated key bytes", errs.ErrDuplicateMapKey)
			}
			if cmp > 0 {
				return fmt.Errorf("%w: map keys are not in ascending order", errs.ErrMapKeyOrder)
			}
		}
		prevKey = key

		valLen, err := jump.DataItem(buf[offset:])
		if err != nil {
			return err
		}
		offset += valLen
	}

	return nil
}
