// Package codec implements the element-codec family: fixed-width integer,
// variable-length unsigned integer (LE/BE continuation), variable-length
// signed zigzag integer, padding-aware fixed-length string, length-prefixed
// string, length-prefixed sequence, the cursor-return sentinel, and
// single-element pack/unpack convenience entry points.
//
// # Overview
//
// Every type in this package implements Codec[T]: a definition-time
// configured strategy mapping one logical value of type T to and from a
// byte range via a shared lib/cursor.Writer/lib/cursor.Reader contract.
// Codecs are stateless once constructed and compose into the lib/format
// record codecs (Format1..Format6, DynamicFormat) without any further
// configuration.
//
// # Dependencies
//
// golang.org/x/exp/constraints for the Integer type-set constraint shared
// by FixedInt and the AsLengthCodec length-encoder adapter — the same
// constraint shape used across the retrieved corpus's own generic
// binary-codec code. Otherwise standard library only (fmt, errors).
package codec

import (
	"github.com/thebagchi/binpack/lib/cursor"
)

// Codec packs and unpacks a single logical value of type T. Every element
// codec in this package, and every format in lib/format, is built from
// values satisfying this one contract.
type Codec[T any] interface {
	// Name identifies the codec for error messages (e.g. "fixed_int<16,big>").
	Name() string
	// Pack writes v's wire representation to w.
	Pack(w *cursor.Writer, v T) error
	// Unpack consumes this codec's wire representation from r and returns
	// the decoded value.
	Unpack(r *cursor.Reader) (T, error)
}

// Pack is the single-element convenience entry point: construct a Writer,
// run c.Pack once, and return the accumulated bytes.
func Pack[T any](c Codec[T], v T) ([]byte, error) {
	w := cursor.NewWriter()
	if err := c.Pack(w, v); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unpack is the single-element convenience entry point: construct a
// Reader over buf and run c.Unpack once. Unlike a format's strict Unpack,
// this does not check that buf was fully consumed — callers that need
// that guarantee should use lib/format or check the returned Reader
// position themselves via UnpackWithEnd.
func Unpack[T any](c Codec[T], buf []byte) (T, error) {
	r := cursor.NewReader(buf)
	return c.Unpack(r)
}

// UnpackWithEnd is Unpack plus the final cursor position, for callers that
// want to detect trailing bytes without going through a format.
func UnpackWithEnd[T any](c Codec[T], buf []byte) (T, int, error) {
	r := cursor.NewReader(buf)
	v, err := c.Unpack(r)
	return v, r.Pos(), err
}
