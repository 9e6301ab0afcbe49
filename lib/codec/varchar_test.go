package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thebagchi/binpack/lib/codecerr"
	"github.com/thebagchi/binpack/lib/endian"
)

func TestVarcharRoundTripWithVarUintLength(t *testing.T) {
	c := NewVarchar(NewVarUint(endian.Little, 0))
	b, err := Pack[[]byte](c, []byte("abc"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x03, 'a', 'b', 'c'}, b)

	v, err := Unpack[[]byte](c, b)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), v)
}

func TestVarcharWithFixedIntLength(t *testing.T) {
	c := NewVarchar(AsLengthCodec(NewFixedInt[uint16](endian.Big)))
	b, err := Pack[[]byte](c, []byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o'}, b)

	v, err := Unpack[[]byte](c, b)
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), v)
}

func TestVarcharUnpackOutOfBounds(t *testing.T) {
	c := NewVarchar(NewVarUint(endian.Little, 0))
	_, err := Unpack[[]byte](c, []byte{0x05, 'a', 'b'})
	var ce *codecerr.Error
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, codecerr.OutOfBounds, ce.Kind)
}
