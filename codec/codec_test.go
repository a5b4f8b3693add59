package codec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const xrpAlphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

var (
	accountZero = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	accountOne  = "rrrrrrrrrrrrrrrrrrrrBZbvji"

	ed25519Seed = Bytes(0x01, 0xE1, 0x4B)
	familySeed  = Byte(0x21)
)

func newTestCodec(t *testing.T) *Codec {
	c, err := New(xrpAlphabet, Sha256)
	require.NoError(t, err)
	return c
}

func TestNewCodec(t *testing.T) {
	c := newTestCodec(t)
	assert.Equal(t, 58, c.Base())
	assert.Equal(t, xrpAlphabet, c.Alphabet())

	_, err := New("", Sha256)
	assert.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = New("rr"+xrpAlphabet[2:], Sha256)
	assert.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = New(xrpAlphabet[:57], Sha256)
	assert.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = New(xrpAlphabet, nil)
	assert.True(t, errors.Is(err, ErrUnknownHash))

	short := func([]byte) []byte { return []byte{1, 2} }
	_, err = New(xrpAlphabet, short)
	assert.True(t, errors.Is(err, ErrUnknownHash))

	assert.Panics(t, func() { MustNew("abc", Sha256) })
}

func TestEncodeZeroAccount(t *testing.T) {
	c := newTestCodec(t)
	opts := &Options{Versions: Versions(Byte(0)), ExpectedLength: 20}

	encoded, err := c.Encode(make([]byte, 20), opts)
	require.NoError(t, err)
	assert.Equal(t, accountZero, encoded)

	raw, err := c.DecodeRaw(encoded)
	require.NoError(t, err)
	require.Len(t, raw, 25)
	assert.Equal(t, make([]byte, 21), raw[:21])
	assert.Equal(t, Sha256(Sha256(make([]byte, 21)))[:4], raw[21:])

	decoded, err := c.Decode(encoded, opts)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, decoded.Version)
	assert.Equal(t, make([]byte, 20), decoded.Payload)
	assert.Equal(t, "", decoded.Type)
}

func TestEncodeAccountOne(t *testing.T) {
	c := newTestCodec(t)
	payload := make([]byte, 20)
	payload[19] = 1
	encoded, err := c.Encode(payload, &Options{Versions: Versions(Byte(0)), ExpectedLength: 20})
	require.NoError(t, err)
	assert.Equal(t, accountOne, encoded)
}

func TestEncodeLengthMismatch(t *testing.T) {
	c := newTestCodec(t)
	opts := &Options{Versions: Versions(Byte(0)), ExpectedLength: 20}
	for _, n := range []int{0, 1, 19, 21, 33} {
		encoded, err := c.Encode(make([]byte, n), opts)
		assert.True(t, errors.Is(err, ErrPayloadLengthMismatch), "length %d", n)
		assert.Equal(t, "", encoded)
	}
}

func TestEncodeWithoutVersion(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Encode([]byte{1, 2, 3}, nil)
	assert.Equal(t, ErrNoVersions, err)
	_, err = c.Encode([]byte{1, 2, 3}, &Options{})
	assert.Equal(t, ErrNoVersions, err)
	_, err = c.Encode([]byte{1, 2, 3}, &Options{Versions: Versions(Bytes())})
	assert.True(t, errors.Is(err, ErrNoVersions))
}

func TestEncodeUsesFirstVersion(t *testing.T) {
	c := newTestCodec(t)
	entropy := bytes.Repeat([]byte{0xab}, 16)

	multi, err := c.Encode(entropy, &Options{Versions: Versions(ed25519Seed, familySeed)})
	require.NoError(t, err)
	single, err := c.Encode(entropy, &Options{Versions: Versions(ed25519Seed)})
	require.NoError(t, err)
	assert.Equal(t, single, multi)
}

func TestRoundTrip(t *testing.T) {
	c := newTestCodec(t)
	cases := []struct {
		version VersionSpec
		length  int
	}{
		{Byte(0), 20},
		{Byte(28), 33},
		{familySeed, 16},
		{ed25519Seed, 16},
		{Byte(35), 33},
	}
	for _, tc := range cases {
		for _, fill := range []byte{0x00, 0x01, 0x7f, 0xff} {
			payload := bytes.Repeat([]byte{fill}, tc.length)
			opts := &Options{Versions: Versions(tc.version), ExpectedLength: tc.length}
			encoded, err := c.Encode(payload, opts)
			require.NoError(t, err)

			decoded, err := c.Decode(encoded, opts)
			require.NoError(t, err)
			assert.Equal(t, payload, decoded.Payload)
			assert.Equal(t, tc.version.Bytes(), decoded.Version)

			// inferred payload length
			decoded, err = c.Decode(encoded, &Options{Versions: Versions(tc.version)})
			require.NoError(t, err)
			assert.Equal(t, payload, decoded.Payload)
		}
	}
}

func TestDecodeSeedTypes(t *testing.T) {
	c := newTestCodec(t)
	entropy := bytes.Repeat([]byte{0x5a}, 16)
	decodeOpts := &Options{
		Versions:       Versions(ed25519Seed, familySeed),
		VersionTypes:   []string{"ed25519", "secp256k1"},
		ExpectedLength: 16,
	}

	ed, err := c.Encode(entropy, &Options{Versions: Versions(ed25519Seed), ExpectedLength: 16})
	require.NoError(t, err)
	decoded, err := c.Decode(ed, decodeOpts)
	require.NoError(t, err)
	assert.Equal(t, "ed25519", decoded.Type)
	assert.Equal(t, []byte{0x01, 0xE1, 0x4B}, decoded.Version)
	assert.Equal(t, entropy, decoded.Payload)

	secp, err := c.Encode(entropy, &Options{Versions: Versions(familySeed), ExpectedLength: 16})
	require.NoError(t, err)
	decoded, err = c.Decode(secp, decodeOpts)
	require.NoError(t, err)
	assert.Equal(t, "secp256k1", decoded.Type)
	assert.Equal(t, []byte{0x21}, decoded.Version)
}

func TestDecodeFirstMatchWins(t *testing.T) {
	c := newTestCodec(t)
	encoded, err := c.Encode(make([]byte, 20), &Options{Versions: Versions(Byte(0))})
	require.NoError(t, err)

	decoded, err := c.Decode(encoded, &Options{
		Versions:       Versions(Byte(0), Byte(0)),
		VersionTypes:   []string{"first", "second"},
		ExpectedLength: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "first", decoded.Type)
}

func TestDecodeTypesShorterThanVersions(t *testing.T) {
	c := newTestCodec(t)
	encoded, err := c.Encode(make([]byte, 20), &Options{Versions: Versions(Byte(28))})
	require.NoError(t, err)

	decoded, err := c.Decode(encoded, &Options{
		Versions:       Versions(Byte(0), Byte(28)),
		VersionTypes:   []string{"account"},
		ExpectedLength: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "", decoded.Type)
}

func TestDecodeAmbiguousLength(t *testing.T) {
	c := newTestCodec(t)
	encoded, err := c.Encode(make([]byte, 16), &Options{Versions: Versions(familySeed)})
	require.NoError(t, err)

	_, err = c.Decode(encoded, &Options{Versions: Versions(ed25519Seed, familySeed)})
	assert.Equal(t, ErrAmbiguousLength, err)
}

func TestDecodeVersionMismatch(t *testing.T) {
	c := newTestCodec(t)
	_, err := c.Decode(accountZero, &Options{Versions: Versions(Byte(28)), ExpectedLength: 20})
	assert.True(t, errors.Is(err, ErrVersionMismatch))

	// multi byte candidate against a single byte version
	_, err = c.Decode(accountZero, &Options{Versions: Versions(ed25519Seed)})
	assert.True(t, errors.Is(err, ErrVersionMismatch))

	// expected length longer than the decoded data
	_, err = c.Decode(accountZero, &Options{Versions: Versions(Byte(0)), ExpectedLength: 40})
	assert.True(t, errors.Is(err, ErrVersionMismatch))
}

func TestDecodeExplicitLengthSplit(t *testing.T) {
	c := newTestCodec(t)
	// with an expected length the split point moves, so [0x00] | 16 zero
	// bytes also reads as [0x00 0x00] | 15 zero bytes
	encoded, err := c.Encode(make([]byte, 16), &Options{Versions: Versions(Byte(0))})
	require.NoError(t, err)
	_, err = c.Decode(encoded, &Options{Versions: Versions(Bytes(0, 0)), ExpectedLength: 15})
	require.NoError(t, err)
	_, err = c.Decode(encoded, &Options{Versions: Versions(Byte(0)), ExpectedLength: 20})
	assert.True(t, errors.Is(err, ErrVersionMismatch))
}

func TestDecodeInvalidInput(t *testing.T) {
	c := newTestCodec(t)
	opts := &Options{Versions: Versions(Byte(0))}

	_, err := c.Decode("", opts)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	_, err = c.Decode("r0OIl", opts)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	short := c.EncodeRaw([]byte{0, 1, 2, 3})
	_, err = c.Decode(short, opts)
	assert.True(t, errors.Is(err, ErrInvalidInputSize))

	_, err = c.Decode(accountZero, nil)
	assert.Equal(t, ErrNoVersions, err)

	_, err = c.Decode(accountZero[:len(accountZero)-1], opts)
	assert.Error(t, err)
}

func TestChecksumSensitivity(t *testing.T) {
	c := newTestCodec(t)
	payload, _ := hex.DecodeString("88a5a57c829f40f25ea83385bbde6c3d8b4ca082")
	opts := &Options{Versions: Versions(Byte(0)), ExpectedLength: 20}
	encoded, err := c.Encode(payload, opts)
	require.NoError(t, err)

	raw, err := c.DecodeRaw(encoded)
	require.NoError(t, err)
	for i := range raw {
		for bit := uint(0); bit < 8; bit++ {
			corrupted := append([]byte(nil), raw...)
			corrupted[i] ^= 1 << bit
			_, err := c.Decode(c.EncodeRaw(corrupted), opts)
			assert.Equal(t, ErrChecksumInvalid, err, "byte %d bit %d", i, bit)
		}
	}
}

func TestDecodeChecked(t *testing.T) {
	c := newTestCodec(t)
	data := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05}
	encoded := c.EncodeChecked(data)

	decoded, err := c.DecodeChecked(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	raw, err := c.DecodeRaw(encoded)
	require.NoError(t, err)
	assert.True(t, c.VerifyChecksum(raw))
	raw[len(raw)-1] ^= 0xff
	assert.False(t, c.VerifyChecksum(raw))
	assert.False(t, c.VerifyChecksum([]byte{1, 2}))

	_, err = c.DecodeChecked(c.EncodeRaw(raw))
	assert.Equal(t, ErrChecksumInvalid, err)
}

func TestEncodeCheckedDoesNotAlias(t *testing.T) {
	c := newTestCodec(t)
	backing := make([]byte, 8, 32)
	buf := backing[:4]
	_ = c.EncodeChecked(buf)
	assert.Equal(t, make([]byte, 8), backing[:8])
}

// hexAlphabet is a base16 alphabet codec used to check the codec works
// with other bases.
type hexAlphabet struct{}

func (hexAlphabet) Encode(b []byte) string { return hex.EncodeToString(b) }

func (hexAlphabet) Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return b, nil
}

func (hexAlphabet) Alphabet() string { return "0123456789abcdef" }

func (hexAlphabet) Base() int { return 16 }

func TestCustomAlphabetCodec(t *testing.T) {
	c, err := NewWithAlphabetCodec(hexAlphabet{}, Sha256)
	require.NoError(t, err)
	assert.Equal(t, 16, c.Base())

	opts := &Options{Versions: Versions(Byte(0x42)), ExpectedLength: 4}
	encoded, err := c.Encode([]byte{1, 2, 3, 4}, opts)
	require.NoError(t, err)
	expectedSum := hex.EncodeToString(Sha256(Sha256([]byte{0x42, 1, 2, 3, 4}))[:4])
	assert.Equal(t, "4201020304"+expectedSum, encoded)

	decoded, err := c.Decode(encoded, opts)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, decoded.Payload)

	_, err = NewWithAlphabetCodec(nil, Sha256)
	assert.True(t, errors.Is(err, ErrInvalidAlphabet))
}
