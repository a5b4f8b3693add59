package common

import (
	"encoding/hex"
	"errors"
	"os"
	"strings"
)

// ErrEmptyHex is returned when decoding an empty hex string
var ErrEmptyHex = errors.New("empty hex string")

// FileExist returns true if a regular file exists at path
func FileExist(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Has0xPrefix validates str begins with '0x' or '0X'.
func Has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// FromHex decodes a hex string with optional 0x prefix.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if Has0xPrefix(s) {
		s = s[2:]
	}
	if s == "" {
		return nil, ErrEmptyHex
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// ToHex encodes b as upper case hex without prefix.
func ToHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
