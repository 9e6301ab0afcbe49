package cursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thebagchi/binpack/lib/codecerr"
)

func TestWriterAccumulatesBytes(t *testing.T) {
	w := NewWriter()
	w.Write([]byte{0x01, 0x02})
	assert.NoError(t, w.WriteByte(0x03))
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, w.Bytes())
}

func TestWriterEmptyReturnsNil(t *testing.T) {
	w := NewWriter()
	assert.Nil(t, w.Bytes())
}

func TestWriterGrowsPastInitialCapacity(t *testing.T) {
	w := NewWriter()
	big := make([]byte, initialBufferSize*3)
	for i := range big {
		big[i] = byte(i)
	}
	w.Write(big)
	assert.Equal(t, big, w.Bytes())
}

func TestReaderTakeAdvancesMonotonically(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	b, err := r.Take(2, "probe")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)
	assert.Equal(t, 2, r.Pos())
	assert.Equal(t, 2, r.Remaining())

	b, err = r.Take(2, "probe")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x04}, b)
	assert.Equal(t, 4, r.Pos())
	assert.Equal(t, 0, r.Remaining())
}

func TestReaderTakeOutOfBounds(t *testing.T) {
	r := NewReader([]byte{0x01})
	_, err := r.Take(2, "fixed_string")
	var ce *codecerr.Error
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, codecerr.OutOfBounds, ce.Kind)
	assert.Contains(t, err.Error(), "fixed_string")
}

func TestReaderTakeByte(t *testing.T) {
	r := NewReader([]byte{0xAB})
	b, err := r.TakeByte("integer")
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)

	_, err = r.TakeByte("integer")
	assert.Error(t, err)
}
