package addresscodec

import (
	"errors"
)

// address codec errors
var (
	ErrInvalidEntropyLength = errors.New("entropy must have length 16")
	ErrInvalidSeedType      = errors.New("type must be ed25519 or secp256k1")
	ErrUnknownKind          = errors.New("unknown kind")
	ErrNilCodec             = errors.New("encoder has no codec")
)
