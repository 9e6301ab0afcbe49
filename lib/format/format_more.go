package format

import (
	"github.com/thebagchi/binpack/lib/codec"
	"github.com/thebagchi/binpack/lib/cursor"
)

// Format5 composes five element codecs into a five-field record codec.
type Format5[A, B, C, D, E any] struct {
	CA codec.Codec[A]
	CB codec.Codec[B]
	CC codec.Codec[C]
	CD codec.Codec[D]
	CE codec.Codec[E]
}

// New5 builds a Format5 from five element codecs, in declaration order.
func New5[A, B, C, D, E any](ca codec.Codec[A], cb codec.Codec[B], cc codec.Codec[C], cd codec.Codec[D], ce codec.Codec[E]) *Format5[A, B, C, D, E] {
	return &Format5[A, B, C, D, E]{CA: ca, CB: cb, CC: cc, CD: cd, CE: ce}
}

func (f *Format5[A, B, C, D, E]) Pack(a A, b B, c C, d D, e E) ([]byte, error) {
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
	if err := f.CE.Pack(w, e); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (f *Format5[A, B, C, D, E]) UnpackWithEnd(buf []byte) (A, B, C, D, E, int, error) {
	r := cursor.NewReader(buf)
	a, err := f.CA.Unpack(r)
	if err != nil {
		var zb B
		var zc C
		var zd D
		var ze E
		return a, zb, zc, zd, ze, r.Pos(), err
	}
	b, err := f.CB.Unpack(r)
	if err != nil {
		var zc C
		var zd D
		var ze E
		return a, b, zc, zd, ze, r.Pos(), err
	}
	c, err := f.CC.Unpack(r)
	if err != nil {
		var zd D
		var ze E
		return a, b, c, zd, ze, r.Pos(), err
	}
	d, err := f.CD.Unpack(r)
	if err != nil {
		var ze E
		return a, b, c, d, ze, r.Pos(), err
	}
	e, err := f.CE.Unpack(r)
	return a, b, c, d, e, r.Pos(), err
}

func (f *Format5[A, B, C, D, E]) Unpack(buf []byte) (A, B, C, D, E, error) {
	a, b, c, d, e, end, err := f.UnpackWithEnd(buf)
	if err != nil {
		return a, b, c, d, e, err
	}
	if err := checkFullyConsumed(end, len(buf)); err != nil {
		return a, b, c, d, e, err
	}
	return a, b, c, d, e, nil
}

// Format6 composes six element codecs into a six-field record codec.
type Format6[A, B, C, D, E, F any] struct {
	CA codec.Codec[A]
	CB codec.Codec[B]
	CC codec.Codec[C]
	CD codec.Codec[D]
	CE codec.Codec[E]
	CF codec.Codec[F]
}

// New6 builds a Format6 from six element codecs, in declaration order.
func New6[A, B, C, D, E, F any](ca codec.Codec[A], cb codec.Codec[B], cc codec.Codec[C], cd codec.Codec[D], ce codec.Codec[E], cf codec.Codec[F]) *Format6[A, B, C, D, E, F] {
	return &Format6[A, B, C, D, E, F]{CA: ca, CB: cb, CC: cc, CD: cd, CE: ce, CF: cf}
}

func (f *Format6[A, B, C, D, E, F]) Pack(a A, b B, c C, d D, e E, fv F) ([]byte, error) {
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
	if err := f.CE.Pack(w, e); err != nil {
		return nil, err
	}
	if err := f.CF.Pack(w, fv); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func (f *Format6[A, B, C, D, E, F]) UnpackWithEnd(buf []byte) (A, B, C, D, E, F, int, error) {
	r := cursor.NewReader(buf)
	a, err := f.CA.Unpack(r)
	if err != nil {
		var zb B
		var zc C
		var zd D
		var ze E
		var zf F
		return a, zb, zc, zd, ze, zf, r.Pos(), err
	}
	b, err := f.CB.Unpack(r)
	if err != nil {
		var zc C
		var zd D
		var ze E
		var zf F
		return a, b, zc, zd, ze, zf, r.Pos(), err
	}
	c, err := f.CC.Unpack(r)
	if err != nil {
		var zd D
		var ze E
		var zf F
		return a, b, c, zd, ze, zf, r.Pos(), err
	}
	d, err := f.CD.Unpack(r)
	if err != nil {
		var ze E
		var zf F
		return a, b, c, d, ze, zf, r.Pos(), err
	}
	e, err := f.CE.Unpack(r)
	if err != nil {
		var zf F
		return a, b, c, d, e, zf, r.Pos(), err
	}
	fv, err := f.CF.Unpack(r)
	return a, b, c, d, e, fv, r.Pos(), err
}

func (f *Format6[A, B, C, D, E, F]) Unpack(buf []byte) (A, B, C, D, E, F, error) {
	a, b, c, d, e, fv, end, err := f.UnpackWithEnd(buf)
	if err != nil {
		return a, b, c, d, e, fv, err
	}
	if err := checkFullyConsumed(end, len(buf)); err != nil {
		return a, b, c, d, e, fv, err
	}
	return a, b, c, d, e, fv, nil
}
