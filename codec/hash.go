package codec

import (
	"crypto/sha256"
	"fmt"
	"sort"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ChecksumLength is the number of digest bytes appended to encoded data.
const ChecksumLength = 4

// HashFunc is the digest primitive used to compute checksums.
type HashFunc func([]byte) []byte

// hash names
const (
	HashSha256     = "sha256"
	HashSha3256    = "sha3-256"
	HashKeccak256  = "keccak256"
	HashBlake2b256 = "blake2b-256"
)

var hashFuncs = map[string]HashFunc{
	HashSha256:     Sha256,
	HashSha3256:    Sha3256,
	HashKeccak256:  Keccak256,
	HashBlake2b256: Blake2b256,
}

// Sha256 returns the SHA-256 digest of b.
func Sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// Sha3256 returns the SHA3-256 digest of b.
func Sha3256(b []byte) []byte {
	sum := sha3.Sum256(b)
	return sum[:]
}

// Keccak256 returns the legacy Keccak-256 digest of b.
func Keccak256(b []byte) []byte {
	d := sha3.NewLegacyKeccak256()
	d.Write(b)
	return d.Sum(nil)
}

// Blake2b256 returns the BLAKE2b-256 digest of b.
func Blake2b256(b []byte) []byte {
	sum := blake2b.Sum256(b)
	return sum[:]
}

// GetHashFunc returns the hash function registered under name.
func GetHashFunc(name string) (HashFunc, error) {
	h, ok := hashFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
	return h, nil
}

// HashNames returns the sorted names of all registered hash functions.
func HashNames() []string {
	names := make([]string, 0, len(hashFuncs))
	for name := range hashFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkHashFunc(hash HashFunc) error {
	if hash == nil {
		return fmt.Errorf("%w: nil hash function", ErrUnknownHash)
	}
	if n := len(hash(nil)); n < ChecksumLength {
		return fmt.Errorf("%w: digest length %d is shorter than checksum", ErrUnknownHash, n)
	}
	return nil
}

// checksum: first four bytes of hash^2
func checksum(hash HashFunc, input []byte) []byte {
	return hash(hash(input))[:ChecksumLength]
}
