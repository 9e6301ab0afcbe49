package codec

import (
	"fmt"

	"github.com/thebagchi/binpack/lib/cursor"
)

// FixedString packs a byte slice into exactly length bytes, delegating
// short-value padding and its inverse to a Padding strategy (spec.md 4.7).
type FixedString struct {
	length  int
	padding Padding
}

// NewFixedString builds a fixed-length string codec. padding must not be
// nil; use NoPadding for strict exact-length semantics.
func NewFixedString(length int, padding Padding) *FixedString {
	return &FixedString{length: length, padding: padding}
}

func (c *FixedString) Name() string {
	return fmt.Sprintf("fixed_string<%d,%s>", c.length, c.padding.Name())
}

// Pack delegates to the padding strategy, then emits exactly length bytes.
func (c *FixedString) Pack(w *cursor.Writer, v []byte) error {
	padded, err := c.padding.Pad(v, c.length)
	if err != nil {
		return err
	}
	w.Write(padded)
	return nil
}

// Unpack requires at least length bytes remaining, consumes exactly
// length bytes, and passes them through the padding strategy's Strip.
func (c *FixedString) Unpack(r *cursor.Reader) ([]byte, error) {
	b, err := r.Take(c.length, c.Name())
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return c.padding.Strip(out), nil
}
