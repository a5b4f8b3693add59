package codec

import (
	"errors"
)

// codec errors
var (
	ErrPayloadLengthMismatch = errors.New("unexpected payload length")
	ErrInvalidInputSize      = errors.New("invalid input size: decoded data must have length >= 5")
	ErrChecksumInvalid       = errors.New("checksum invalid")
	ErrVersionMismatch       = errors.New("version bytes do not match any of the provided versions")
	ErrAmbiguousLength       = errors.New("expected length is required because there are >= 2 possible versions")
	ErrInvalidEncoding       = errors.New("invalid encoding")
	ErrNoVersions            = errors.New("no version specified")
	ErrInvalidAlphabet       = errors.New("invalid alphabet")
	ErrUnknownHash           = errors.New("unknown hash function")
)
