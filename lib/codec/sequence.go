package codec

import (
	"fmt"

	"github.com/thebagchi/binpack/lib/cursor"
)

// Sequence packs a length-encoded count followed by the concatenation of
// each element's encoding in order (spec.md 4.9). Decode is eager: every
// element is unpacked into a plain Go slice before Unpack returns. This is
// the deliberate resolution of the self-referential decoder bug spec.md 9
// notes in one source revision — there is no lazy/streaming sequence view.
type Sequence[E any] struct {
	elem   Codec[E]
	length LengthCodec
}

// NewSequence builds a sequence-of-E codec from an element codec and a
// length encoder.
func NewSequence[E any](elem Codec[E], length LengthCodec) *Sequence[E] {
	return &Sequence[E]{elem: elem, length: length}
}

func (c *Sequence[E]) Name() string {
	return fmt.Sprintf("sequence<%s,%s>", c.elem.Name(), c.length.Name())
}

// Pack emits length_encoder.Pack(len(list)) then elem.Pack(item) for each
// item in order.
func (c *Sequence[E]) Pack(w *cursor.Writer, list []E) error {
	if err := c.length.Pack(w, uint64(len(list))); err != nil {
		return err
	}
	for _, item := range list {
		if err := c.elem.Pack(w, item); err != nil {
			return err
		}
	}
	return nil
}

// Unpack decodes the count, then invokes elem.Unpack that many times in
// order, propagating the first element error it hits.
func (c *Sequence[E]) Unpack(r *cursor.Reader) ([]E, error) {
	n, err := c.length.Unpack(r)
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, n)
	for i := uint64(0); i < n; i++ {
		v, err := c.elem.Unpack(r)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
