// Package version holds the build version, set at link time with
// -ldflags "-X github.com/battlesnakeio/voicesnake/version.Version=...".
package version

// Version of the binary.
var Version = "dev"
