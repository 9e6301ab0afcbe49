package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thebagchi/binpack/lib/codecerr"
	"github.com/thebagchi/binpack/lib/cursor"
	"github.com/thebagchi/binpack/lib/endian"
)

func TestFixedIntUint16BigEndianWire(t *testing.T) {
	c := NewFixedInt[uint16](endian.Big)
	b, err := Pack[uint16](c, 1)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01}, b)

	v, err := Unpack[uint16](c, b)
	assert.NoError(t, err)
	assert.Equal(t, uint16(1), v)
}

func TestFixedIntSignedRoundTrip(t *testing.T) {
	c := NewFixedInt[int32](endian.Little)
	for _, v := range []int32{0, 1, -1, 2147483647, -2147483648} {
		b, err := Pack[int32](c, v)
		assert.NoError(t, err)
		got, err := Unpack[int32](c, b)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFixedIntUnpackOutOfBoundsWithOneFewerByte(t *testing.T) {
	c := NewFixedInt[uint32](endian.Big)
	full, err := Pack[uint32](c, 0xAABBCCDD)
	assert.NoError(t, err)

	_, err = Unpack[uint32](c, full[:len(full)-1])
	var ce *codecerr.Error
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, codecerr.OutOfBounds, ce.Kind)
}

func TestFixedIntDeterministic(t *testing.T) {
	c := NewFixedInt[uint64](endian.Big)
	a, err1 := Pack[uint64](c, 123456789)
	b, err2 := Pack[uint64](c, 123456789)
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, a, b)
}

func TestFixedIntWidths(t *testing.T) {
	assert.Equal(t, 1, NewFixedInt[uint8](endian.Big).Width())
	assert.Equal(t, 2, NewFixedInt[int16](endian.Big).Width())
	assert.Equal(t, 4, NewFixedInt[uint32](endian.Big).Width())
	assert.Equal(t, 8, NewFixedInt[int64](endian.Big).Width())
}

func TestFixedIntNativeOrderResolvesConsistently(t *testing.T) {
	c := NewFixedInt[uint32](endian.Native)
	w := cursor.NewWriter()
	assert.NoError(t, c.Pack(w, 0x01020304))
	v, err := Unpack[uint32](c, w.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), v)
}
