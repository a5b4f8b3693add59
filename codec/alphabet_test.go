package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAlphabet(t *testing.T) {
	assert.NoError(t, CheckAlphabet(xrpAlphabet))
	assert.NoError(t, CheckAlphabet("01"))

	for _, bad := range []string{"", "aa", "abcb", "ab\xff"} {
		err := CheckAlphabet(bad)
		assert.True(t, errors.Is(err, ErrInvalidAlphabet), "%q", bad)
	}
}

func TestBase58Codec(t *testing.T) {
	ac, err := NewBase58Codec(xrpAlphabet)
	require.NoError(t, err)
	assert.Equal(t, 58, ac.Base())
	assert.Equal(t, xrpAlphabet, ac.Alphabet())

	// leading zero bytes map to the first symbol
	assert.Equal(t, "rrr", ac.Encode([]byte{0, 0, 0}))
	assert.Equal(t, "p", ac.Encode([]byte{1}))
	assert.Equal(t, "z", ac.Encode([]byte{57}))
	assert.Equal(t, "pr", ac.Encode([]byte{58}))

	b, err := ac.Decode("rpr")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 58}, b)

	_, err = ac.Decode("0")
	assert.True(t, errors.Is(err, ErrInvalidEncoding))
}
