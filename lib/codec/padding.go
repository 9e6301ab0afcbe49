package codec

import (
	"fmt"

	"github.com/thebagchi/binpack/lib/codecerr"
)

// Padding parameterizes FixedString: it decides how a short value is
// padded out to the declared length on pack, and how padding is stripped
// back off on unpack (spec.md 4.6).
type Padding interface {
	// Name identifies the strategy for error messages and FixedString.Name.
	Name() string
	// Pad right-pads (or validates the exact length of) value to reach
	// length, or fails with invalid_input if value cannot be made to fit.
	Pad(value []byte, length int) ([]byte, error)
	// Strip removes this strategy's padding from a decoded, already
	// length-validated byte slice.
	Strip(padded []byte) []byte
}

type noPadding struct{}

func (noPadding) Name() string { return "none" }

func (noPadding) Pad(value []byte, length int) ([]byte, error) {
	if len(value) != length {
		return nil, invalidFixedStringLength(len(value), length)
	}
	return value, nil
}

func (noPadding) Strip(padded []byte) []byte { return padded }

// NoPadding requires the packed value's length to equal the declared
// length exactly; strip is the identity.
var NoPadding Padding = noPadding{}

type byteFillPadding struct{ fill byte }

func (p byteFillPadding) Name() string {
	switch p.fill {
	case 0x00:
		return "null"
	case ' ':
		return "space"
	default:
		return "byte_fill"
	}
}

func (p byteFillPadding) Pad(value []byte, length int) ([]byte, error) {
	if len(value) > length {
		return nil, invalidFixedStringLength(len(value), length)
	}
	out := make([]byte, length)
	copy(out, value)
	for i := len(value); i < length; i++ {
		out[i] = p.fill
	}
	return out, nil
}

func (p byteFillPadding) Strip(padded []byte) []byte {
	end := len(padded)
	for end > 0 && padded[end-1] == p.fill {
		end--
	}
	return padded[:end]
}

// BytePadding right-pads with fill on pack and strips the maximal trailing
// run of fill on unpack. Round-tripping a value whose last byte equals
// fill is lossy by construction (spec.md 3, "Invariants").
func BytePadding(fill byte) Padding { return byteFillPadding{fill: fill} }

// NullPadding is BytePadding(0x00), the named alias from spec.md 4.6.
var NullPadding = BytePadding(0x00)

// SpacePadding is BytePadding(' '), the named alias from spec.md 4.6.
var SpacePadding = BytePadding(' ')

func invalidFixedStringLength(got, want int) error {
	return codecerr.NewInvalidInput("fixed_string", fmt.Sprintf("expected length %d, got %d", want, got))
}
