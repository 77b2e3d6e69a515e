package vg

import "fmt"

const (
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0
)

// Version returns MAJOR*10000 + MINOR*100 + PATCH as a single integer.
func Version() int {
	return VersionMajor*10000 + VersionMinor*100 + VersionPatch
}

// VersionString returns "major.minor.patch".
func VersionString() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
