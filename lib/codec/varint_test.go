package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thebagchi/binpack/lib/codecerr"
	"github.com/thebagchi/binpack/lib/endian"
)

func TestVarIntZigzagConcreteScenarios(t *testing.T) {
	signed := NewVarInt(endian.Little, 0)
	unsigned := NewVarUint(endian.Little, 0)

	zero, err := Pack[int64](signed, 0)
	assert.NoError(t, err)
	zeroU, _ := Pack[uint64](unsigned, 0)
	assert.Equal(t, zeroU, zero)

	negOne, err := Pack[int64](signed, -1)
	assert.NoError(t, err)
	oneU, _ := Pack[uint64](unsigned, 1)
	assert.Equal(t, oneU, negOne)

	one, err := Pack[int64](signed, 1)
	assert.NoError(t, err)
	twoU, _ := Pack[uint64](unsigned, 2)
	assert.Equal(t, twoU, one)

	negTwo, err := Pack[int64](signed, -2)
	assert.NoError(t, err)
	threeU, _ := Pack[uint64](unsigned, 3)
	assert.Equal(t, threeU, negTwo)
}

func TestVarIntRoundTripIncludingMinInt64(t *testing.T) {
	c := NewVarInt(endian.Little, 0)
	for _, v := range []int64{0, 1, -1, 2, -2, 12345, -12345, 1<<62 - 1, -(1 << 62), -9223372036854775808, 9223372036854775807} {
		b, err := Pack[int64](c, v)
		assert.NoError(t, err)
		got, err := Unpack[int64](c, b)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestVarIntOverlongTypedToSignedName(t *testing.T) {
	producer := NewVarInt(endian.Little, 32)
	consumer := NewVarInt(endian.Little, 8)

	b, err := Pack[int64](producer, 1000)
	assert.NoError(t, err)
	_, err = Unpack[int64](consumer, b)
	var ce *codecerr.Error
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, codecerr.Overlong, ce.Kind)
	assert.Contains(t, err.Error(), "signed")
}
