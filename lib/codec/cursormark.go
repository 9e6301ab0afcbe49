package codec

import "github.com/thebagchi/binpack/lib/cursor"

// CursorMark is the cursor-return sentinel (spec.md 4.10): placed as a
// format element, it contributes nothing on pack and, on unpack, returns
// the current read position without consuming any bytes. Useful as a
// format's trailing element to observe how many bytes a partial parse
// consumed.
type CursorMark struct{}

// NewCursorMark returns a cursor-return sentinel codec.
func NewCursorMark() *CursorMark { return &CursorMark{} }

func (c *CursorMark) Name() string { return "cursor_mark" }

// Pack contributes nothing to the output; v is ignored.
func (c *CursorMark) Pack(w *cursor.Writer, v int) error { return nil }

// Unpack consumes no bytes and returns the current cursor position.
func (c *CursorMark) Unpack(r *cursor.Reader) (int, error) {
	return r.Pos(), nil
}
