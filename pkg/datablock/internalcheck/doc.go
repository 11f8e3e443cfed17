// Package internalcheck contains repository policy tests implemented as
// static analysis over the module's source, keeping the cgo surface confined
// to the backend package.
package internalcheck
