package codec

import (
	"bytes"
	"encoding/hex"
)

// VersionSpec identifies the type of an encoded payload by the bytes
// prefixed to it. Use Byte for single byte versions and Bytes for
// multi byte version tags.
type VersionSpec struct {
	b []byte
}

// Byte returns a single byte version spec.
func Byte(v byte) VersionSpec {
	return VersionSpec{b: []byte{v}}
}

// Bytes returns a version spec made of the given byte sequence.
func Bytes(v ...byte) VersionSpec {
	b := make([]byte, len(v))
	copy(b, v)
	return VersionSpec{b: b}
}

// Versions is a shorthand for building candidate lists.
func Versions(specs ...VersionSpec) []VersionSpec {
	return specs
}

// Bytes returns a copy of the version bytes.
func (v VersionSpec) Bytes() []byte {
	b := make([]byte, len(v.b))
	copy(b, v.b)
	return b
}

// Len returns the number of version bytes.
func (v VersionSpec) Len() int {
	return len(v.b)
}

// Equal reports whether b is exactly the version byte sequence.
func (v VersionSpec) Equal(b []byte) bool {
	return bytes.Equal(v.b, b)
}

// String returns the hex form of the version bytes.
func (v VersionSpec) String() string {
	return hex.EncodeToString(v.b)
}
