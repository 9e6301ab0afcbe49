package codec

import (
	"errors"
	"fmt"

	"github.com/thebagchi/binpack/lib/codecerr"
	"github.com/thebagchi/binpack/lib/cursor"
	"github.com/thebagchi/binpack/lib/endian"
)

// VarInt is the variable-length signed integer codec: a zigzag mapping
// from int64 to uint64 composed on top of VarUint (spec.md 4.5). Zigzag
// maps small-magnitude negatives to small unsigned values so they still
// encode compactly under the continuation-bit scheme.
type VarInt struct {
	unsigned *VarUint
	maxBits  int
}

// NewVarInt builds a zigzag varint codec from the declared byte order and
// maximum bit-width (0 defaults to 64, matching VarUint).
func NewVarInt(order endian.Order, maxBits int) *VarInt {
	return &VarInt{unsigned: NewVarUint(order, maxBits), maxBits: maxBits}
}

func (c *VarInt) Name() string {
	return fmt.Sprintf("compressed<signed,%s,%d>", c.unsigned.order, c.unsigned.maxBits)
}

// Pack computes zigzag = (v<<1) XOR (v>>63) using 64-bit arithmetic — the
// arithmetic right-shift propagates the sign bit, so a negative v produces
// an all-ones mask that flips zigzag's low bits — then forwards to the
// unsigned codec. The shift width is fixed at 63 regardless of maxBits:
// for any v that actually fits within a narrower declared width, a 63-bit
// arithmetic shift and a (maxBits-1)-bit arithmetic shift produce the same
// sign mask, since the sign bit of a correctly range-limited value already
// propagates all the way to bit 63 in Go's int64 representation.
func (c *VarInt) Pack(w *cursor.Writer, v int64) error {
	zigzag := (uint64(v) << 1) ^ uint64(v>>63)
	return c.unsigned.Pack(w, zigzag)
}

// Unpack decodes the unsigned zigzag value and un-maps it back to a
// signed int64. An Overlong from the unsigned decode is rethrown typed to
// this codec's signed name rather than the underlying unsigned name.
func (c *VarInt) Unpack(r *cursor.Reader) (int64, error) {
	z, err := c.unsigned.Unpack(r)
	if err != nil {
		var ce *codecerr.Error
		if errors.As(err, &ce) && ce.Kind == codecerr.Overlong {
			return 0, codecerr.NewOverlong(c.Name(), c.unsigned.maxBits)
		}
		return 0, err
	}
	return int64(z>>1) ^ -int64(z&1), nil
}
