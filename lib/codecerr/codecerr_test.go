package codecerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "invalid_input", InvalidInput.String())
	assert.Equal(t, "out_of_bounds", OutOfBounds.String())
	assert.Equal(t, "overlong", Overlong.String())
	assert.Equal(t, "incomplete_parse", IncompleteParse.String())
}

func TestNewIncompleteParseCarriesFields(t *testing.T) {
	err := NewIncompleteParse(3, 10)
	var ce *Error
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, IncompleteParse, ce.Kind)
	assert.Equal(t, 3, ce.Consumed)
	assert.Equal(t, 10, ce.Total)
}

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := NewOverlong("compressed<unsigned>", 16)
	assert.True(t, errors.Is(err, New(Overlong, "")))
	assert.False(t, errors.Is(err, New(OutOfBounds, "")))
}

func TestNewOutOfBoundsMessageNamesType(t *testing.T) {
	err := NewOutOfBounds("fixed_string")
	assert.Contains(t, err.Error(), "fixed_string")
}
