// Package version reports build information for the utl binary.
//
// Release builds stamp the variables with -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/utl/version.Version=1.2.0" ./cmd/utl
//
// Unstamped builds fall back to the VCS data the Go toolchain embeds.
package version
