// Package addresscodec encodes and decodes XRP Ledger account IDs, seeds and
// keys as base58check strings.
package addresscodec

import (
	"fmt"

	"github.com/anyswap/ripple-address-codec/codec"
)

// Encoder binds the XRP Ledger version tags to a codec.
type Encoder struct {
	codec *codec.Codec
}

var defaultEncoder = NewEncoder(codec.MustNew(Alphabet, codec.Sha256))

// NewEncoder creates an encoder on top of c. An encoder with a nil codec
// fails every operation with ErrNilCodec.
func NewEncoder(c *codec.Codec) *Encoder {
	return &Encoder{codec: c}
}

// NewEncoderWithHash creates an encoder over the XRP alphabet with the hash
// function registered under hashName.
func NewEncoderWithHash(alphabet, hashName string) (*Encoder, error) {
	hash, err := codec.GetHashFunc(hashName)
	if err != nil {
		return nil, err
	}
	c, err := codec.New(alphabet, hash)
	if err != nil {
		return nil, err
	}
	return NewEncoder(c), nil
}

// Default returns the encoder using the XRP alphabet and double SHA-256.
func Default() *Encoder {
	return defaultEncoder
}

// Codec returns the underlying codec.
func (e *Encoder) Codec() *codec.Codec {
	return e.codec
}

func (e *Encoder) checkCodec() error {
	if e == nil || e.codec == nil {
		return ErrNilCodec
	}
	return nil
}

func kindOptions(kind Kind) (*codec.Options, error) {
	if !kind.IsKnown() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	return &codec.Options{
		Versions:       codec.Versions(codec.Byte(byte(kind))),
		ExpectedLength: kind.PayloadLength(),
	}, nil
}

// Encode encodes payload tagged with kind.
func (e *Encoder) Encode(kind Kind, payload []byte) (string, error) {
	if err := e.checkCodec(); err != nil {
		return "", err
	}
	opts, err := kindOptions(kind)
	if err != nil {
		return "", err
	}
	return e.codec.Encode(payload, opts)
}

// Decode decodes s which must be tagged with kind.
func (e *Encoder) Decode(kind Kind, s string) ([]byte, error) {
	if err := e.checkCodec(); err != nil {
		return nil, err
	}
	opts, err := kindOptions(kind)
	if err != nil {
		return nil, err
	}
	res, err := e.codec.Decode(s, opts)
	if err != nil {
		return nil, err
	}
	return res.Payload, nil
}

// EncodeAccountID encodes a 20 bytes account ID to an address.
func (e *Encoder) EncodeAccountID(b []byte) (string, error) {
	return e.Encode(AccountID, b)
}

// DecodeAccountID decodes an address to its 20 bytes account ID.
func (e *Encoder) DecodeAccountID(address string) ([]byte, error) {
	return e.Decode(AccountID, address)
}

// IsValidAddress reports whether address decodes to an account ID.
func (e *Encoder) IsValidAddress(address string) bool {
	_, err := e.DecodeAccountID(address)
	return err == nil
}

// EncodeNodePublic encodes a 33 bytes node public key.
func (e *Encoder) EncodeNodePublic(b []byte) (string, error) {
	return e.Encode(NodePublic, b)
}

// DecodeNodePublic decodes a node public key.
func (e *Encoder) DecodeNodePublic(s string) ([]byte, error) {
	return e.Decode(NodePublic, s)
}

// EncodeNodePrivate encodes a 32 bytes node private key.
func (e *Encoder) EncodeNodePrivate(b []byte) (string, error) {
	return e.Encode(NodePrivate, b)
}

// DecodeNodePrivate decodes a node private key.
func (e *Encoder) DecodeNodePrivate(s string) ([]byte, error) {
	return e.Decode(NodePrivate, s)
}

// EncodeAccountPublic encodes a 33 bytes account public key.
func (e *Encoder) EncodeAccountPublic(b []byte) (string, error) {
	return e.Encode(AccountPublic, b)
}

// DecodeAccountPublic decodes an account public key.
func (e *Encoder) DecodeAccountPublic(s string) ([]byte, error) {
	return e.Decode(AccountPublic, s)
}

// EncodeAccountPrivate encodes a 32 bytes account private key.
func (e *Encoder) EncodeAccountPrivate(b []byte) (string, error) {
	return e.Encode(AccountPrivate, b)
}

// DecodeAccountPrivate decodes an account private key.
func (e *Encoder) DecodeAccountPrivate(s string) ([]byte, error) {
	return e.Decode(AccountPrivate, s)
}

// EncodeAccountID encodes with the default encoder.
func EncodeAccountID(b []byte) (string, error) {
	return defaultEncoder.EncodeAccountID(b)
}

// DecodeAccountID decodes with the default encoder.
func DecodeAccountID(address string) ([]byte, error) {
	return defaultEncoder.DecodeAccountID(address)
}

// IsValidAddress never fails, any decode error results in false.
func IsValidAddress(address string) bool {
	return defaultEncoder.IsValidAddress(address)
}

// EncodeNodePublic encodes with the default encoder.
func EncodeNodePublic(b []byte) (string, error) {
	return defaultEncoder.EncodeNodePublic(b)
}

// DecodeNodePublic decodes with the default encoder.
func DecodeNodePublic(s string) ([]byte, error) {
	return defaultEncoder.DecodeNodePublic(s)
}

// EncodeNodePrivate encodes with the default encoder.
func EncodeNodePrivate(b []byte) (string, error) {
	return defaultEncoder.EncodeNodePrivate(b)
}

// DecodeNodePrivate decodes with the default encoder.
func DecodeNodePrivate(s string) ([]byte, error) {
	return defaultEncoder.DecodeNodePrivate(s)
}

// EncodeAccountPublic encodes with the default encoder.
func EncodeAccountPublic(b []byte) (string, error) {
	return defaultEncoder.EncodeAccountPublic(b)
}

// DecodeAccountPublic decodes with the default encoder.
func DecodeAccountPublic(s string) ([]byte, error) {
	return defaultEncoder.DecodeAccountPublic(s)
}

// EncodeAccountPrivate encodes with the default encoder.
func EncodeAccountPrivate(b []byte) (string, error) {
	return defaultEncoder.EncodeAccountPrivate(b)
}

// DecodeAccountPrivate decodes with the default encoder.
func DecodeAccountPrivate(s string) ([]byte, error) {
	return defaultEncoder.DecodeAccountPrivate(s)
}
