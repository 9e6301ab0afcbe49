package format

import (
	"fmt"

	"github.com/thebagchi/binpack/lib/codec"
	"github.com/thebagchi/binpack/lib/codecerr"
	"github.com/thebagchi/binpack/lib/cursor"
)

// AnyCodec is the type-erased shape a codec.Codec[T] is adapted to so it
// can sit in a runtime-built, heterogeneous codec list. See Adapt.
type AnyCodec interface {
	Name() string
	PackAny(w *cursor.Writer, v any) error
	UnpackAny(r *cursor.Reader) (any, error)
}

type anyAdapter[T any] struct {
	inner codec.Codec[T]
}

// Adapt wraps a typed Codec[T] as an AnyCodec for use in a DynamicFormat.
func Adapt[T any](c codec.Codec[T]) AnyCodec {
	return anyAdapter[T]{inner: c}
}

func (a anyAdapter[T]) Name() string { return a.inner.Name() }

func (a anyAdapter[T]) PackAny(w *cursor.Writer, v any) error {
	tv, ok := v.(T)
	if !ok {
		var zero T
		return codecerr.NewInvalidInput(a.inner.Name(), fmt.Sprintf("value type mismatch: want %T, got %T", zero, v))
	}
	return a.inner.Pack(w, tv)
}

func (a anyAdapter[T]) UnpackAny(r *cursor.Reader) (any, error) {
	return a.inner.Unpack(r)
}

// DynamicFormat composes a runtime-built list of codecs into one record
// codec whose decoded tuple is modeled as a tagged sum ([]any), per
// spec.md 9's resolution of the "compile-time vs runtime composition"
// open question: "Runtime dynamic formats ... are acceptable if the
// result-tuple type is modeled as a tagged sum." Unlike Format1..Format6,
// a DynamicFormat's arity and per-slot types are only known once its
// codec list is assembled — typically from a schema read at startup
// rather than fixed at compile time.
type DynamicFormat struct {
	codecs []AnyCodec
}

// NewDynamic builds a DynamicFormat from an ordered list of adapted
// codecs.
func NewDynamic(codecs ...AnyCodec) *DynamicFormat {
	return &DynamicFormat{codecs: codecs}
}

// Pack enforces arity against len(values), then concatenates each
// element's encoding in order. Mismatches are invalid_input, since a
// dynamic format cannot catch an arity mismatch at compile time the way
// Format1..Format6 do.
func (f *DynamicFormat) Pack(values ...any) ([]byte, error) {
	if len(values) != len(f.codecs) {
		return nil, codecerr.NewInvalidInput("format", fmt.Sprintf("arity mismatch: want %d values, got %d", len(f.codecs), len(values)))
	}
	w := cursor.NewWriter()
	for i, c := range f.codecs {
		if err := c.PackAny(w, values[i]); err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

// UnpackWithEnd drives every codec left to right over buf and also
// returns the final cursor position, for partial-parse use cases.
func (f *DynamicFormat) UnpackWithEnd(buf []byte) ([]any, int, error) {
	r := cursor.NewReader(buf)
	out := make([]any, len(f.codecs))
	for i, c := range f.codecs {
		v, err := c.UnpackAny(r)
		if err != nil {
			return nil, r.Pos(), err
		}
		out[i] = v
	}
	return out, r.Pos(), nil
}

// Unpack requires the whole buffer to be consumed, else incomplete_parse.
func (f *DynamicFormat) Unpack(buf []byte) ([]any, error) {
	out, end, err := f.UnpackWithEnd(buf)
	if err != nil {
		return nil, err
	}
	if err := checkFullyConsumed(end, len(buf)); err != nil {
		return nil, err
	}
	return out, nil
}
