// Package codec implements base58check style encoding with version prefixes.
//
// An encoded string is the alphabet encoding of
//
//	version bytes | payload | first 4 bytes of hash(hash(version | payload))
//
// A Codec is immutable once created and may be shared by any number of
// goroutines.
package codec

import (
	"bytes"
	"fmt"
)

// Codec encodes and decodes versioned payloads with a checksum.
type Codec struct {
	alphabet AlphabetCodec
	hash     HashFunc
}

// Options controls versioned encoding and decoding.
//
// Only the first version is used when encoding. When decoding, every version
// is a candidate and VersionTypes (if not empty) labels them by index.
// ExpectedLength is ignored when zero.
type Options struct {
	Versions       []VersionSpec
	VersionTypes   []string
	ExpectedLength int
}

// Decoded is the result of a versioned decode.
type Decoded struct {
	Version []byte
	Payload []byte
	Type    string
}

// New creates a codec with a base58 alphabet and a hash function.
func New(alphabet string, hash HashFunc) (*Codec, error) {
	ac, err := NewBase58Codec(alphabet)
	if err != nil {
		return nil, err
	}
	return NewWithAlphabetCodec(ac, hash)
}

// NewWithAlphabetCodec creates a codec over a custom alphabet codec.
func NewWithAlphabetCodec(alphabet AlphabetCodec, hash HashFunc) (*Codec, error) {
	if alphabet == nil {
		return nil, fmt.Errorf("%w: nil alphabet codec", ErrInvalidAlphabet)
	}
	if err := CheckAlphabet(alphabet.Alphabet()); err != nil {
		return nil, err
	}
	if err := checkHashFunc(hash); err != nil {
		return nil, err
	}
	return &Codec{alphabet: alphabet, hash: hash}, nil
}

// MustNew is like New but panics on error.
func MustNew(alphabet string, hash HashFunc) *Codec {
	c, err := New(alphabet, hash)
	if err != nil {
		panic(err)
	}
	return c
}

// Alphabet returns the alphabet symbols.
func (c *Codec) Alphabet() string {
	return c.alphabet.Alphabet()
}

// Base returns the numeric base, which is the alphabet size.
func (c *Codec) Base() int {
	return c.alphabet.Base()
}

// Encode prefixes payload with the first version in opts, appends the
// checksum and returns the alphabet encoding.
func (c *Codec) Encode(payload []byte, opts *Options) (string, error) {
	if opts == nil || len(opts.Versions) == 0 {
		return "", ErrNoVersions
	}
	if opts.ExpectedLength > 0 && len(payload) != opts.ExpectedLength {
		return "", fmt.Errorf("%w: payload length %d does not match expected length %d",
			ErrPayloadLengthMismatch, len(payload), opts.ExpectedLength)
	}
	version := opts.Versions[0]
	if version.Len() == 0 {
		return "", fmt.Errorf("%w: empty version", ErrNoVersions)
	}
	buf := make([]byte, 0, version.Len()+len(payload)+ChecksumLength)
	buf = append(buf, version.b...)
	buf = append(buf, payload...)
	return c.encodeChecked(buf), nil
}

// EncodeChecked appends the checksum of buf and returns the alphabet encoding.
func (c *Codec) EncodeChecked(buf []byte) string {
	b := make([]byte, 0, len(buf)+ChecksumLength)
	b = append(b, buf...)
	return c.encodeChecked(b)
}

// buf must have room to be appended to without aliasing caller memory.
func (c *Codec) encodeChecked(buf []byte) string {
	buf = append(buf, checksum(c.hash, buf)...)
	return c.EncodeRaw(buf)
}

// EncodeRaw returns the alphabet encoding of b without any checksum.
func (c *Codec) EncodeRaw(b []byte) string {
	return c.alphabet.Encode(b)
}

// Decode verifies the checksum of s and matches its version bytes against
// the candidate versions in opts. The first matching candidate wins.
func (c *Codec) Decode(s string, opts *Options) (*Decoded, error) {
	if opts == nil || len(opts.Versions) == 0 {
		return nil, ErrNoVersions
	}
	withoutSum, err := c.DecodeChecked(s)
	if err != nil {
		return nil, err
	}
	versions := opts.Versions
	if len(versions) > 1 && opts.ExpectedLength <= 0 {
		return nil, ErrAmbiguousLength
	}

	payloadLength := opts.ExpectedLength
	if payloadLength <= 0 {
		payloadLength = len(withoutSum) - versions[0].Len()
	}
	split := len(withoutSum) - payloadLength
	if split < 0 {
		split = 0
	}
	if split > len(withoutSum) {
		split = len(withoutSum)
	}
	versionBytes := withoutSum[:split]
	payload := withoutSum[split:]

	matched := -1
	for i, version := range versions {
		if version.Len() != 0 && version.Equal(versionBytes) {
			matched = i
			break
		}
	}
	if matched < 0 {
		return nil, fmt.Errorf("%w: got %x", ErrVersionMismatch, versionBytes)
	}
	if opts.ExpectedLength > 0 && len(payload) != opts.ExpectedLength {
		return nil, fmt.Errorf("%w: payload length %d does not match expected length %d",
			ErrPayloadLengthMismatch, len(payload), opts.ExpectedLength)
	}

	ret := &Decoded{
		Version: versions[matched].Bytes(),
		Payload: payload,
	}
	if matched < len(opts.VersionTypes) {
		ret.Type = opts.VersionTypes[matched]
	}
	return ret, nil
}

// DecodeChecked decodes s, verifies the trailing checksum and returns the
// data without it.
func (c *Codec) DecodeChecked(s string) ([]byte, error) {
	buf, err := c.DecodeRaw(s)
	if err != nil {
		return nil, err
	}
	if len(buf) < 1+ChecksumLength {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInputSize, len(buf))
	}
	if !c.VerifyChecksum(buf) {
		return nil, ErrChecksumInvalid
	}
	return buf[:len(buf)-ChecksumLength], nil
}

// DecodeRaw returns the alphabet decoding of s.
func (c *Codec) DecodeRaw(s string) ([]byte, error) {
	return c.alphabet.Decode(s)
}

// VerifyChecksum reports whether the last 4 bytes of b are the checksum of
// the bytes before them.
func (c *Codec) VerifyChecksum(b []byte) bool {
	if len(b) < ChecksumLength {
		return false
	}
	data, sum := b[:len(b)-ChecksumLength], b[len(b)-ChecksumLength:]
	return bytes.Equal(checksum(c.hash, data), sum)
}
