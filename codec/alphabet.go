package codec

import (
	"fmt"

	mapset "github.com/deckarep/golang-set"
	"github.com/mr-tron/base58"
)

// Base58 is the only base supported by the builtin alphabet codec.
const Base58 = 58

// AlphabetCodec converts between raw bytes and strings over a fixed
// ordered alphabet.
type AlphabetCodec interface {
	Encode(b []byte) string
	Decode(s string) ([]byte, error)
	Alphabet() string
	Base() int
}

type base58Codec struct {
	alphabet string
	table    *base58.Alphabet
}

// NewBase58Codec creates a base58 codec over the given alphabet.
func NewBase58Codec(alphabet string) (AlphabetCodec, error) {
	if err := CheckAlphabet(alphabet); err != nil {
		return nil, err
	}
	if len(alphabet) != Base58 {
		return nil, fmt.Errorf("%w: base58 alphabet must have %d symbols, got %d", ErrInvalidAlphabet, Base58, len(alphabet))
	}
	return &base58Codec{
		alphabet: alphabet,
		table:    base58.NewAlphabet(alphabet),
	}, nil
}

// CheckAlphabet checks the alphabet is non empty, ascii, and has no
// duplicated symbols.
func CheckAlphabet(alphabet string) error {
	if alphabet == "" {
		return fmt.Errorf("%w: empty alphabet", ErrInvalidAlphabet)
	}
	symbols := mapset.NewThreadUnsafeSet()
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= 0x80 {
			return fmt.Errorf("%w: non ascii symbol at index %d", ErrInvalidAlphabet, i)
		}
		if !symbols.Add(c) {
			return fmt.Errorf("%w: duplicated symbol %q at index %d", ErrInvalidAlphabet, c, i)
		}
	}
	return nil
}

func (c *base58Codec) Encode(b []byte) string {
	return base58.EncodeAlphabet(b, c.table)
}

func (c *base58Codec) Decode(s string) ([]byte, error) {
	b, err := base58.DecodeAlphabet(s, c.table)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return b, nil
}

func (c *base58Codec) Alphabet() string {
	return c.alphabet
}

func (c *base58Codec) Base() int {
	return Base58
}
