// Package version provides build version information and the client's
// default User-Agent.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/xapi/version.Version=1.0.0"
package version
