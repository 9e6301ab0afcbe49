package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thebagchi/binpack/lib/codecerr"
)

func TestNoPaddingExactLength(t *testing.T) {
	out, err := NoPadding.Pad([]byte("abcd"), 4)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abcd"), out)
	assert.Equal(t, []byte("abcd"), NoPadding.Strip(out))
}

func TestNoPaddingRejectsWrongLength(t *testing.T) {
	_, err := NoPadding.Pad([]byte("abc"), 4)
	var ce *codecerr.Error
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, codecerr.InvalidInput, ce.Kind)

	_, err = NoPadding.Pad([]byte("abcde"), 4)
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, codecerr.InvalidInput, ce.Kind)
}

func TestSpacePaddingPadsAndStrips(t *testing.T) {
	out, err := SpacePadding.Pad([]byte("ab"), 4)
	assert.NoError(t, err)
	assert.Equal(t, []byte("ab  "), out)
	assert.Equal(t, []byte("ab"), SpacePadding.Strip(out))
}

func TestNullPaddingRejectsOverlongValue(t *testing.T) {
	_, err := NullPadding.Pad([]byte("abcde"), 4)
	var ce *codecerr.Error
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, codecerr.InvalidInput, ce.Kind)
}

func TestBytePaddingLossyOnTrailingPadByteValue(t *testing.T) {
	// Documented lossy case: a value whose last byte equals the pad byte
	// strips further than it should on decode.
	padded, err := NullPadding.Pad([]byte{'a', 0x00}, 4)
	assert.NoError(t, err)
	assert.Equal(t, []byte{'a', 0x00, 0x00, 0x00}, padded)
	assert.Equal(t, []byte{'a'}, NullPadding.Strip(padded))
}

func TestPaddingNames(t *testing.T) {
	assert.Equal(t, "none", NoPadding.Name())
	assert.Equal(t, "null", NullPadding.Name())
	assert.Equal(t, "space", SpacePadding.Name())
	assert.Equal(t, "byte_fill", BytePadding('x').Name())
}
