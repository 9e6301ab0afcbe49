package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thebagchi/binpack/lib/cursor"
)

func TestCursorMarkContributesNoBytesOnPack(t *testing.T) {
	c := NewCursorMark()
	w := cursor.NewWriter()
	assert.NoError(t, c.Pack(w, 0))
	assert.Equal(t, 0, w.Len())
}

func TestCursorMarkReportsPositionWithoutConsuming(t *testing.T) {
	c := NewCursorMark()
	r := cursor.NewReader([]byte{0x01, 0x02, 0x03})
	_, _ = r.Take(2, "probe")

	pos, err := c.Unpack(r)
	assert.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, 2, r.Pos())
}
