package codec

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFuncs(t *testing.T) {
	cases := map[string]string{
		HashSha256:     "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		HashSha3256:    "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a",
		HashKeccak256:  "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		HashBlake2b256: "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
	}
	for name, want := range cases {
		h, err := GetHashFunc(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, hex.EncodeToString(h(nil)), name)
	}
	assert.Equal(t, []string{HashBlake2b256, HashKeccak256, HashSha256, HashSha3256}, HashNames())

	_, err := GetHashFunc("md5")
	assert.True(t, errors.Is(err, ErrUnknownHash))
}

func TestChecksum(t *testing.T) {
	sum := checksum(Sha256, []byte("hello"))
	assert.Len(t, sum, ChecksumLength)
	// sha256(sha256("hello"))
	assert.Equal(t, "9595c9df", hex.EncodeToString(sum))
}

func TestCodecWithOtherHash(t *testing.T) {
	c, err := New(xrpAlphabet, Keccak256)
	require.NoError(t, err)
	opts := &Options{Versions: Versions(Byte(0)), ExpectedLength: 20}
	encoded, err := c.Encode(make([]byte, 20), opts)
	require.NoError(t, err)
	assert.NotEqual(t, accountZero, encoded)

	decoded, err := c.Decode(encoded, opts)
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 20), decoded.Payload)

	sha := newTestCodec(t)
	_, err = sha.Decode(encoded, opts)
	assert.Equal(t, ErrChecksumInvalid, err)
}
