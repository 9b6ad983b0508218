// Package version holds the build-time version string yamscan writes into
// its "##yamscan v..." output header line (neither binary has a flag that
// prints it on its own), overridable via -ldflags "-X yamscan/internal/version.Version=...".
package version

// Version is the released version string. "dev" marks a local build.
var Version = "dev"
