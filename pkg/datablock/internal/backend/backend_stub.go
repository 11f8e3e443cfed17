//go:build !cgo || windows

package backend

// Stub declarations for builds without cgo. Status, Type, and the error
// types live in status.go with no build tag so they are available to pure-Go
// tests everywhere.

// Built reports whether the native bindings were compiled in.
func Built() bool { return false }
