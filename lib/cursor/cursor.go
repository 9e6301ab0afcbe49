// Package cursor provides the byte buffer and read cursor that every
// element codec in lib/codec packs into and unpacks from.
//
// # Overview
//
// Writer is a growable output buffer; Reader is a monotonically advancing
// read cursor over an immutable input slice. Neither type is specific to
// any one codec — they are the concatenation/consumption primitives the
// format combinator and every element codec share (spec.md's "Byte
// buffer" and "Read cursor" entities).
//
// # Dependencies
//
// Standard library only (slices, for Writer's exponential growth).
//
// # Scope
//
// A Reader's offset only ever advances; nothing in this package rewinds
// it. A Writer has no rollback: bytes written before an element codec
// fails mid-pack stay in the Writer, so callers that get such an error
// discard the Writer.
//
// # Thread Safety
//
// Neither type is safe for concurrent use. A Reader lives only for the
// duration of one top-level unpack call; a Writer lives only for the
// duration of one top-level pack call.
package cursor

import (
	"slices"

	"github.com/thebagchi/binpack/lib/codecerr"
)

// enableTrace is a compile-time switch for the diagnostic Trace hook,
// following the teacher's bitbuffer.Codec.Trace convention. Off by
// default; flip locally when chasing cursor-arithmetic bugs.
const enableTrace = false

// initialBufferSize is the starting capacity for a fresh Writer.
var initialBufferSize = 64

// Writer is a growable output buffer built up by successive codec Pack
// calls, then consumed once via Bytes.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer pre-sized to reduce early reallocation.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, initialBufferSize)}
}

// Write appends p to the buffer, growing it if necessary.
func (w *Writer) Write(p []byte) {
	if enableTrace {
		println("[cursor.Write] n=", len(p))
	}
	if len(p) == 0 {
		return
	}
	if cap(w.buf) < len(w.buf)+len(p) {
		capacity := max(cap(w.buf)*2, len(w.buf)+len(p))
		w.buf = slices.Grow(w.buf, capacity-len(w.buf))
	}
	w.buf = append(w.buf, p...)
}

// WriteByte appends a single byte, satisfying io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.Write([]byte{b})
	return nil
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns a copy of the accumulated buffer, or nil if nothing has
// been written. The caller owns the result; later writes to w do not
// affect it.
func (w *Writer) Bytes() []byte {
	if len(w.buf) == 0 {
		return nil
	}
	out := make([]byte, len(w.buf))
	copy(out, w.buf)
	return out
}

// Reader is a monotonically advancing read cursor over an immutable byte
// slice. It never rewinds: every element codec consumes a contiguous
// range starting at the current position.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Pos returns the current read offset, i.e. the number of bytes consumed
// so far.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Remaining returns the number of unconsumed bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

// Take consumes exactly n bytes from the current position and returns
// them, advancing the cursor. what names the type being decoded, used to
// build a codecerr.OutOfBounds error if fewer than n bytes remain.
func (r *Reader) Take(n int, what string) ([]byte, error) {
	if enableTrace {
		println("[cursor.Take] n=", n, "pos=", r.pos)
	}
	if n < 0 || r.Remaining() < n {
		return nil, codecerr.NewOutOfBounds(what)
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// TakeByte consumes a single byte, or fails with OutOfBounds(what).
func (r *Reader) TakeByte(what string) (byte, error) {
	b, err := r.Take(1, what)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
