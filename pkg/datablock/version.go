package datablock

import "github.com/cosmosis/cosmosis-go/pkg/datablock/internal/backend"

// Version is the wrapper version, populated at build time via ldflags. In
// development it defaults to the placeholder below.
var Version = "v0.0.0-dev"

// WrapperVersion returns the semantic version of this binding.
func WrapperVersion() string {
	return Version
}

// NativeEnabled reports whether this binary was built with the native
// bindings. The native library itself exports no version string.
func NativeEnabled() bool {
	return backend.Built()
}
