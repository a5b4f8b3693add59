package addresscodec

import (
	"fmt"
	"sort"
)

// Alphabet is the XRP Ledger base58 alphabet.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// well known accounts
const (
	AccountZero = "rrrrrrrrrrrrrrrrrrrrrhoLvTp"
	AccountOne  = "rrrrrrrrrrrrrrrrrrrrBZbvji"
	AccountRoot = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"
)

// Kind is the version byte of a single byte tagged payload.
type Kind byte

// kinds
const (
	AccountID      Kind = 0
	NodePublic     Kind = 28
	NodePrivate    Kind = 32
	FamilySeed     Kind = 33
	AccountPrivate Kind = 34
	AccountPublic  Kind = 35
)

// payload lengths
const (
	AccountIDLength  = 20
	PublicKeyLength  = 33
	PrivateKeyLength = 32
	SeedLength       = 16
)

// ed25519 seeds use a three byte version tag instead of FamilySeed.
var ed25519SeedPrefix = []byte{0x01, 0xE1, 0x4B}

type kindInfo struct {
	Name              string
	Description       string
	Prefix            byte
	Payload           int
	MaximumCharacters int
}

var kindInfos = map[Kind]kindInfo{
	AccountID:      {"AccountID", "Short name for sending funds to an account.", 'r', AccountIDLength, 35},
	NodePublic:     {"NodePublic", "Validation public key for node.", 'n', PublicKeyLength, 53},
	NodePrivate:    {"NodePrivate", "Validation private key for node.", 'p', PrivateKeyLength, 52},
	FamilySeed:     {"FamilySeed", "Family seed.", 's', SeedLength, 29},
	AccountPrivate: {"AccountPrivate", "Account private key.", 'p', PrivateKeyLength, 52},
	AccountPublic:  {"AccountPublic", "Account public key.", 'a', PublicKeyLength, 53},
}

// Kinds returns all known kinds ordered by version byte.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindInfos))
	for k := range kindInfos {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ParseKind returns the kind with the given name (case sensitive).
func ParseKind(name string) (Kind, error) {
	for k, info := range kindInfos {
		if info.Name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// IsKnown reports whether k is a known kind.
func (k Kind) IsKnown() bool {
	_, ok := kindInfos[k]
	return ok
}

func (k Kind) String() string {
	if info, ok := kindInfos[k]; ok {
		return info.Name
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Description returns a human readable description.
func (k Kind) Description() string {
	return kindInfos[k].Description
}

// Prefix returns the leading character of encoded strings of this kind.
func (k Kind) Prefix() byte {
	return kindInfos[k].Prefix
}

// PayloadLength returns the payload length in bytes.
func (k Kind) PayloadLength() int {
	return kindInfos[k].Payload
}

// MaximumCharacters returns the maximum length of encoded strings.
func (k Kind) MaximumCharacters() int {
	return kindInfos[k].MaximumCharacters
}
