package codec

import (
	"fmt"

	"github.com/thebagchi/binpack/lib/cursor"
)

// Varchar is the length-prefixed string codec: a LengthCodec encoding of
// the byte count, followed by that many raw payload bytes (spec.md 4.8).
type Varchar struct {
	length LengthCodec
}

// NewVarchar builds a varchar codec using lengthCodec to encode the byte
// count. Any LengthCodec works, including a VarUint directly or a
// FixedInt wrapped with AsLengthCodec.
func NewVarchar(lengthCodec LengthCodec) *Varchar {
	return &Varchar{length: lengthCodec}
}

func (c *Varchar) Name() string {
	return fmt.Sprintf("varchar<%s>", c.length.Name())
}

// Pack emits length_encoder.Pack(len(s)) followed by the raw bytes of s.
func (c *Varchar) Pack(w *cursor.Writer, s []byte) error {
	if err := c.length.Pack(w, uint64(len(s))); err != nil {
		return err
	}
	w.Write(s)
	return nil
}

// Unpack decodes the length via the length encoder, then requires and
// consumes that many bytes, else out_of_bounds("varchar").
func (c *Varchar) Unpack(r *cursor.Reader) ([]byte, error) {
	n, err := c.length.Unpack(r)
	if err != nil {
		return nil, err
	}
	b, err := r.Take(int(n), "varchar")
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}
