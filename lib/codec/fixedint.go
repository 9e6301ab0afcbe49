package codec

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/thebagchi/binpack/lib/cursor"
	"github.com/thebagchi/binpack/lib/endian"
)

// Integer is the set of Go integer types a FixedInt or an AsLengthCodec
// length-encoder adapter may be instantiated with.
type Integer = constraints.Integer

// FixedInt packs and unpacks a fixed-width two's-complement (signed) or
// plain-binary (unsigned) integer in width/8 bytes, per spec.md 4.2. The
// width is derived from T itself (int8/uint8 -> 1 byte, ... int64/uint64
// -> 8 bytes); there is no separate width parameter to keep in sync with
// the Go type.
type FixedInt[T Integer] struct {
	order endian.Order
	width int
}

// NewFixedInt builds a FixedInt codec for T under the declared byte order.
// There is no default order: spec.md leaves this an open parameter, so
// callers always state Little, Big, or Native explicitly.
func NewFixedInt[T Integer](order endian.Order) *FixedInt[T] {
	var zero T
	return &FixedInt[T]{order: order, width: sizeofInt(zero)}
}

func sizeofInt[T Integer](_ T) int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32:
		return 4
	case int64, uint64, int, uint:
		return 8
	default:
		return 8
	}
}

// Width returns the number of bytes this codec reads or writes.
func (c *FixedInt[T]) Width() int { return c.width }

func (c *FixedInt[T]) Name() string {
	return fmt.Sprintf("fixed_int<%d,%s>", c.width*8, c.order)
}

// Pack emits exactly Width() bytes in the declared order. Infallible.
func (c *FixedInt[T]) Pack(w *cursor.Writer, v T) error {
	buf := make([]byte, c.width)
	endian.PutUint(buf, uint64(v), c.order)
	w.Write(buf)
	return nil
}

// Unpack requires at least Width() bytes remaining, else out_of_bounds.
func (c *FixedInt[T]) Unpack(r *cursor.Reader) (T, error) {
	var zero T
	b, err := r.Take(c.width, c.Name())
	if err != nil {
		return zero, err
	}
	raw := endian.GetUint(b, c.order)
	shift := uint(64 - c.width*8)
	// Arithmetic right-shift after a left-shift into the top of a uint64
	// sign-extends correctly for a signed T and is a no-op truncation for
	// an unsigned T, regardless of T's width.
	signExtended := int64(raw<<shift) >> shift
	return T(signExtended), nil
}
