package addresscodec

import (
	"fmt"

	"github.com/anyswap/ripple-address-codec/codec"
)

// SeedType is the key derivation algorithm a seed is meant for.
type SeedType string

// seed types
const (
	SeedTypeEd25519   SeedType = "ed25519"
	SeedTypeSecp256k1 SeedType = "secp256k1"
)

var (
	ed25519SeedVersion = codec.Bytes(ed25519SeedPrefix...)
	familySeedVersion  = codec.Byte(byte(FamilySeed))
)

// ParseSeedType converts s to a seed type.
func ParseSeedType(s string) (SeedType, error) {
	switch t := SeedType(s); t {
	case SeedTypeEd25519, SeedTypeSecp256k1:
		return t, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidSeedType, s)
	}
}

// Version returns the version tag of the seed type.
func (t SeedType) Version() (codec.VersionSpec, error) {
	switch t {
	case SeedTypeEd25519:
		return ed25519SeedVersion, nil
	case SeedTypeSecp256k1:
		return familySeedVersion, nil
	default:
		return codec.VersionSpec{}, fmt.Errorf("%w: got %q", ErrInvalidSeedType, string(t))
	}
}

// DecodeSeedOption customizes DecodeSeed.
type DecodeSeedOption func(*codec.Options)

// WithSeedVersions replaces the candidate versions and their type labels.
// Both must be given, otherwise the defaults stay in effect.
func WithSeedVersions(versions []codec.VersionSpec, types []string) DecodeSeedOption {
	return func(opts *codec.Options) {
		if len(versions) == 0 || len(types) == 0 {
			return
		}
		opts.Versions = versions
		opts.VersionTypes = types
	}
}

// WithExpectedLength replaces the expected seed length.
func WithExpectedLength(n int) DecodeSeedOption {
	return func(opts *codec.Options) {
		if n > 0 {
			opts.ExpectedLength = n
		}
	}
}

// EncodeSeed encodes 16 bytes of entropy as a seed of the given type.
func (e *Encoder) EncodeSeed(entropy []byte, seedType SeedType) (string, error) {
	if err := e.checkCodec(); err != nil {
		return "", err
	}
	if len(entropy) != SeedLength {
		return "", fmt.Errorf("%w: got %d", ErrInvalidEntropyLength, len(entropy))
	}
	version, err := seedType.Version()
	if err != nil {
		return "", err
	}
	return e.codec.Encode(entropy, &codec.Options{
		Versions:       codec.Versions(version),
		ExpectedLength: SeedLength,
	})
}

// DecodeSeed decodes a seed. Without options both the ed25519 and the
// secp256k1 tags are tried and the result's Type tells which one matched.
func (e *Encoder) DecodeSeed(seed string, options ...DecodeSeedOption) (*codec.Decoded, error) {
	if err := e.checkCodec(); err != nil {
		return nil, err
	}
	opts := &codec.Options{
		Versions:       codec.Versions(ed25519SeedVersion, familySeedVersion),
		VersionTypes:   []string{string(SeedTypeEd25519), string(SeedTypeSecp256k1)},
		ExpectedLength: SeedLength,
	}
	for _, option := range options {
		option(opts)
	}
	return e.codec.Decode(seed, opts)
}

// EncodeSeed encodes with the default encoder.
func EncodeSeed(entropy []byte, seedType SeedType) (string, error) {
	return defaultEncoder.EncodeSeed(entropy, seedType)
}

// DecodeSeed decodes with the default encoder.
func DecodeSeed(seed string, options ...DecodeSeedOption) (*codec.Decoded, error) {
	return defaultEncoder.DecodeSeed(seed, options...)
}
