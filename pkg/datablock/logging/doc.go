// Package logging provides a minimal structured logging interface over
// log/slog for the cosmosis-go command line tools.
package logging
