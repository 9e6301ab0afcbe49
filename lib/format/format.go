// Package format implements the format combinator: an ordered list of
// element codecs treated as one record codec (spec.md 4.11).
//
// # Overview
//
// A format's arity and per-slot types are fixed at definition time, not
// discovered at runtime (spec.md 9, "Compile-time vs runtime
// composition"). We realize that with one generic type per arity
// (Format1..Format6) generated in the style of per-arity tuple types,
// rather than a single variadic-any format — the same "per-arity
// generated format types" option spec.md's design notes call out. Each
// Format*.Pack enforces its arity at compile time via the type system;
// each Format*.Unpack drives its codecs strictly left to right over one
// lib/cursor.Reader, exactly as spec.md 4.11 requires ("no lookahead;
// variable-length codecs commit the cursor as they consume").
//
// For the cases spec.md 9 explicitly allows — "runtime dynamic formats...
// acceptable if the result-tuple type is modeled as a tagged sum" — see
// DynamicFormat in dynamic.go, which composes a runtime-built codec list
// into a []any tuple.
//
// # Dependencies
//
// Only lib/codec, lib/codecerr, and lib/cursor from this module; no
// third-party packages (the per-arity boilerplate here does not need
// one).
package format

import (
	"github.com/thebagchi/binpack/lib/codec"
	"github.com/thebagchi/binpack/lib/codecerr"
	"github.com/thebagchi/binpack/lib/cursor"
)

func checkFullyConsumed(consumed, total int) error {
	if consumed != total {
		return codecerr.NewIncompleteParse(consumed, total)
	}
	return nil
}

// Format1 composes a single element codec into a one-field record codec.
// It exists mainly for symmetry with the single-element convenience
// entry points in lib/codec; most callers with exactly one codec should
// just use codec.Pack/codec.Unpack directly.
type Format1[A any] struct {
	CA codec.Codec[A]
}

// New1 builds a Format1 from one element codec.
func New1[A any](ca codec.Codec[A]) *Format1[A] {
	return &Format1[A]{CA: ca}
}

// Pack concatenates ca.Pack(a).
func (f *Format1[A]) Pack(a A) ([]byte, error) {
	w := cursor.NewWriter()
	if err := f.CA.Pack(w, a); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnpackWithEnd runs every codec left to right and also returns the final
// cursor position, for partial-parse use cases.
func (f *Format1[A]) UnpackWithEnd(buf []byte) (A, int, error) {
	r := cursor.NewReader(buf)
	a, err := f.CA.Unpack(r)
	return a, r.Pos(), err
}

// Unpack requires the whole buffer to be consumed, else incomplete_parse.
func (f *Format1[A]) Unpack(buf []byte) (A, error) {
	a, end, err := f.UnpackWithEnd(buf)
	if err != nil {
		return a, err
	}
	if err := checkFullyConsumed(end, len(buf)); err != nil {
		return a, err
	}
	return a, nil
}

// Format2 composes two element codecs into a two-field record codec.
type Format2[A, B any] struct {
	CA codec.Codec[A]
	CB codec.Codec[B]
}

// New2 builds a Format2 from two element codecs, in declaration order.
func New2[A, B any](ca codec.Codec[A], cb codec.Codec[B]) *Format2[A, B] {
	return &Format2[A, B]{CA: ca, CB: cb}
}

func (f *Format2[A, B]) Pack(a A, b B) ([]byte, error) {
	w := cursor.NewWriter()
	if err := f.CA.Pack(w, a); err != nil {
		return nil, err
	}
	if err := f.CB.Pack(w, b); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (f *Format2[A, B]) UnpackWithEnd(buf []byte) (A, B, int, error) {
	r := cursor.NewReader(buf)
	a, err := f.CA.Unpack(r)
	if err != nil {
		var zb B
		return a, zb, r.Pos(), err
	}
	b, err := f.CB.Unpack(r)
	return a, b, r.Pos(), err
}

func (f *Format2[A, B]) Unpack(buf []byte) (A, B, error) {
	a, b, end, err := f.UnpackWithEnd(buf)
	if err != nil {
		return a, b, err
	}
	if err := checkFullyConsumed(end, len(buf)); err != nil {
		return a, b, err
	}
	return a, b, nil
}

// Format3 composes three element codecs into a three-field record codec.
type Format3[A, B, C any] struct {
	CA codec.Codec[A]
	CB codec.Codec[B]
	CC codec.Codec[C]
}

// New3 builds a Format3 from three element codecs, in declaration order.
func New3[A, B, C any](ca codec.Codec[A], cb codec.Codec[B], cc codec.Codec[C]) *Format3[A, B, C] {
	return &Format3[A, B, C]{CA: ca, CB: cb, CC: cc}
}

func (f *Format3[A, B, C]) Pack(a A, b B, c C) ([]byte, error) {
	w := cursor.NewWriter()
	if err := f.CA.Pack(w, a); err != nil {
		return nil, err
	}
	if err := f.CB.Pack(w, b); err != nil {
		return nil, err
	}
	if err := f.CC.Pack(w, c); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (f *Format3[A, B, C]) UnpackWithEnd(buf []byte) (A, B, C, int, error) {
	r := cursor.NewReader(buf)
	a, err := f.CA.Unpack(r)
	if err != nil {
		var zb B
		var zc C
		return a, zb, zc, r.Pos(), err
	}
	b, err := f.CB.Unpack(r)
	if err != nil {
		var zc C
		return a, b, zc, r.Pos(), err
	}
	c, err := f.CC.Unpack(r)
	return a, b, c, r.Pos(), err
}

func (f *Format3[A, B, C]) Unpack(buf []byte) (A, B, C, error) {
	a, b, c, end, err := f.UnpackWithEnd(buf)
	if err != nil {
		return a, b, c, err
	}
	if err := checkFullyConsumed(end, len(buf)); err != nil {
		return a, b, c, err
	}
	return a, b, c, nil
}

// Format4 composes four element codecs into a four-field record codec —
// the shape exercised end to end by spec.md's concrete scenario 1
// (a big-endian u16, a space-padded fixed string, a little-endian
// varint, and a varchar keyed by a varint length).
type Format4[A, B, C, D any] struct {
	CA codec.Codec[A]
	CB codec.Codec[B]
	CC codec.Codec[C]
	CD codec.Codec[D]
}

// New4 builds a Format4 from four element codecs, in declaration order.
func New4[A, B, C, D any](ca codec.Codec[A], cb codec.Codec[B], cc codec.Codec[C], cd codec.Codec[D]) *Format4[A, B, C, D] {
	return &Format4[A, B, C, D]{CA: ca, CB: cb, CC: cc, CD: cd}
}

func (f *Format4[A, B, C, D]) Pack(a A, b B, c C, d D) ([]byte, error) {
	w := cursor.NewWriter()
	if err := f.CA.Pack(w, a); err != nil {
		return nil, err
	}
	if err := f.CB.Pack(w, b); err != nil {
		return nil, err
	}
	if err := f.CC.Pack(w, c); err != nil {
		return nil, err
	}
	if err := f.CD.Pack(w, d); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (f *Format4[A, B, C, D]) UnpackWithEnd(buf []byte) (A, B, C, D, int, error) {
	r := cursor.NewReader(buf)
	a, err := f.CA.Unpack(r)
	if err != nil {
		var zb B
		var zc C
		var zd D
		return a, zb, zc, zd, r.Pos(), err
	}
	b, err := f.CB.Unpack(r)
	if err != nil {
		var zc C
		var zd D
		return a, b, zc, zd, r.Pos(), err
	}
	c, err := f.CC.Unpack(r)
	if err != nil {
		var zd D
		return a, b, c, zd, r.Pos(), err
	}
	d, err := f.CD.Unpack(r)
	return a, b, c, d, r.Pos(), err
}

func (f *Format4[A, B, C, D]) Unpack(buf []byte) (A, B, C, D, error) {
	a, b, c, d, end, err := f.UnpackWithEnd(buf)
	if err != nil {
		return a, b, c, d, err
	}
	if err := checkFullyConsumed(end, len(buf)); err != nil {
		return a, b, c, d, err
	}
	return a, b, c, d, nil
}
