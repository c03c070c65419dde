// Package foreman holds shared project metadata.
package foreman

// Version is the foreman release version, overridden at build time via
// -ldflags "-X github.com/deixis/foreman.Version=...".
var Version = "0.4.0-dev"
