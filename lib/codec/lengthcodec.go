package codec

import (
	"github.com/thebagchi/binpack/lib/cursor"
)

// LengthCodec is the shape Varchar and Sequence require of their length
// encoder: any codec whose decoded value type is an unsigned integer,
// normalized to uint64 so both can share one field type regardless of
// the underlying encoder's declared width (spec.md 4.8/4.9: "any codec
// whose decoded value type is an unsigned integer").
type LengthCodec = Codec[uint64]

// AsLengthCodec adapts a Codec[T] with an integer-typed T (e.g. a
// FixedInt[uint16] or a VarUint, which is already Codec[uint64]) into a
// LengthCodec, so it can be used as the length encoder for Varchar or
// Sequence.
func AsLengthCodec[T Integer](inner Codec[T]) LengthCodec {
	return lengthAdapter[T]{inner}
}

type lengthAdapter[T Integer] struct {
	inner Codec[T]
}

func (a lengthAdapter[T]) Name() string { return a.inner.Name() }

func (a lengthAdapter[T]) Pack(w *cursor.Writer, v uint64) error {
	return a.inner.Pack(w, T(v))
}

func (a lengthAdapter[T]) Unpack(r *cursor.Reader) (uint64, error) {
	v, err := a.inner.Unpack(r)
	return uint64(v), err
}
