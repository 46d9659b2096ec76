package internal

// Version is set by the build using ldflags.
var Version = "0.1.0-dev"

// FullVersion returns the version string reported by the API and CLI.
func FullVersion() string {
	return Version
}
