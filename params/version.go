package params

import (
	"fmt"
)

// version parts
const (
	VersionMajor = 0  // Major version component of the current release
	VersionMinor = 1  // Minor version component of the current release
	VersionPatch = 0  // Patch version component of the current release
	VersionMeta  = "" // Version metadata to append to the version string
)

const (
	versionStable = "stable"
)

// Version holds the textual version string.
var Version = func() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}()

// VersionWithMeta holds the textual version string including the metadata.
var VersionWithMeta = func() string {
	v := Version
	if VersionMeta != "" {
		v += "-" + VersionMeta
	}
	return v
}()

// VersionWithCommit add git commit and data to version.
func VersionWithCommit(gitCommit, gitDate string) string {
	vsn := VersionWithMeta
	if len(gitCommit) >= 8 {
		vsn += "-" + gitCommit[:8]
	}
	if (VersionMeta != versionStable) && (gitDate != "") {
		vsn += "-" + gitDate
	}
	return vsn
}

// VersionInfo version details reported by the api server
type VersionInfo struct {
	Identifier string
	Version    string
	Alphabet   string
	Hash       string
}

// GetVersionInfo returns the version details of the running config
func GetVersionInfo() *VersionInfo {
	config := GetConfig()
	return &VersionInfo{
		Identifier: config.Identifier,
		Version:    VersionWithMeta,
		Alphabet:   config.Codec.Alphabet,
		Hash:       config.Codec.Hash,
	}
}
