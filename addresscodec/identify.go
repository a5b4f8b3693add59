package addresscodec

import (
	"errors"

	"github.com/anyswap/ripple-address-codec/codec"
)

// Identified is the result of Identify.
type Identified struct {
	Kind     Kind
	SeedType SeedType
	Version  []byte
	Payload  []byte
}

// Identify decodes a string of any known kind. The short forms "0" and "1"
// stand for AccountZero and AccountOne.
func (e *Encoder) Identify(s string) (*Identified, error) {
	if err := e.checkCodec(); err != nil {
		return nil, err
	}
	switch s {
	case "0":
		s = AccountZero
	case "1":
		s = AccountOne
	}
	if _, err := e.codec.DecodeChecked(s); err != nil {
		return nil, err
	}

	seed, err := e.DecodeSeed(s)
	if err == nil {
		return &Identified{
			Kind:     FamilySeed,
			SeedType: SeedType(seed.Type),
			Version:  seed.Version,
			Payload:  seed.Payload,
		}, nil
	}
	if !errors.Is(err, codec.ErrVersionMismatch) && !errors.Is(err, codec.ErrPayloadLengthMismatch) {
		return nil, err
	}

	for _, kind := range Kinds() {
		if kind == FamilySeed {
			continue
		}
		payload, err := e.Decode(kind, s)
		if err != nil {
			continue
		}
		return &Identified{
			Kind:    kind,
			Version: []byte{byte(kind)},
			Payload: payload,
		}, nil
	}
	return nil, ErrUnknownKind
}

// Identify identifies with the default encoder.
func Identify(s string) (*Identified, error) {
	return defaultEncoder.Identify(s)
}
