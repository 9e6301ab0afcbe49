package codec

import (
	"fmt"

	"github.com/thebagchi/binpack/lib/codecerr"
	"github.com/thebagchi/binpack/lib/cursor"
	"github.com/thebagchi/binpack/lib/endian"
)

// VarUint is the variable-length unsigned integer codec: a sequence of
// base-128 digits, one byte each, with the high bit (0x80) marking
// continuation (spec.md 4.3 for Little, 4.4 for Big). Decoding checks the
// accumulated value against maxBits and raises Overlong if it would
// exceed the declared maximum representable value.
type VarUint struct {
	order   endian.Order // only Little or Big are meaningful digit orders
	maxBits int
}

// NewVarUint builds a varint codec. order selects which end of the
// base-128 digit sequence is most significant (Little: least-significant
// digit first; Big: most-significant digit first). maxBits must be one of
// 8, 16, 32, 64; pass 0 to default to 64.
func NewVarUint(order endian.Order, maxBits int) *VarUint {
	if maxBits == 0 {
		maxBits = 64
	}
	return &VarUint{order: order, maxBits: maxBits}
}

func (c *VarUint) Name() string {
	return fmt.Sprintf("compressed<unsigned,%s,%d>", c.order, c.maxBits)
}

func (c *VarUint) maxRepr() uint64 {
	if c.maxBits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(c.maxBits)) - 1
}

// Pack emits at least one byte. v == 0 emits the single byte 0x00.
// Infallible.
func (c *VarUint) Pack(w *cursor.Writer, v uint64) error {
	digits := make([]byte, 0, 10)
	if v == 0 {
		digits = append(digits, 0x00)
	} else {
		for v > 0 {
			digits = append(digits, byte(v&0x7F)|0x80)
			v >>= 7
		}
		digits[len(digits)-1] &^= 0x80
	}
	if c.order == endian.Big {
		// Reverse digit order, then rebuild the continuation bits: after
		// reversal the old first/last bytes have swapped positions, so
		// their continuation flags no longer match where they sit.
		for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
			digits[i], digits[j] = digits[j], digits[i]
		}
		for i := range digits {
			if i == len(digits)-1 {
				digits[i] &^= 0x80
			} else {
				digits[i] |= 0x80
			}
		}
	}
	w.Write(digits)
	return nil
}

// Unpack reads continuation-flagged base-128 digits until one with the
// high bit clear, checking for overlong on every accumulation step and
// out_of_bounds if the buffer ends before a terminating byte.
func (c *VarUint) Unpack(r *cursor.Reader) (uint64, error) {
	if c.order == endian.Big {
		return c.unpackBig(r)
	}
	return c.unpackLittle(r)
}

func (c *VarUint) unpackLittle(r *cursor.Reader) (uint64, error) {
	maxRepr := c.maxRepr()
	var ret, factor uint64 = 0, 1
	for {
		b, err := r.TakeByte("compressed integer")
		if err != nil {
			return 0, err
		}
		payload := uint64(b & 0x7F)
		// factor wraps to 0 once it passes 2^63; any non-zero digit there
		// is beyond 64 bits.
		if (factor == 0 && payload != 0) || (factor != 0 && payload > maxRepr/factor) {
			return 0, codecerr.NewOverlong(c.Name(), c.maxBits)
		}
		ret += payload * factor
		if b&0x80 == 0 {
			return ret, nil
		}
		factor *= 128
	}
}

func (c *VarUint) unpackBig(r *cursor.Reader) (uint64, error) {
	maxRepr := c.maxRepr()
	var ret uint64
	for {
		b, err := r.TakeByte("compressed integer")
		if err != nil {
			return 0, err
		}
		if ret > maxRepr/128 {
			return 0, codecerr.NewOverlong(c.Name(), c.maxBits)
		}
		ret = ret*128 + uint64(b&0x7F)
		if b&0x80 == 0 {
			return ret, nil
		}
	}
}
