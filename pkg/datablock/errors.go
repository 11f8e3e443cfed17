package datablock

import (
	"errors"
	"fmt"
	"math"

	"github.com/cosmosis/cosmosis-go/pkg/datablock/internal/backend"
)

// Sentinel errors classifying every failure the binding can surface. Match
// with errors.Is; the wrapping *Error carries the key and the raw native
// status for diagnostics.
var (
	// ErrNotFound reports that a key or section was absent on a read or
	// replace.
	ErrNotFound = errors.New("value not found")

	// ErrAlreadyExists reports that Put was called on an existing key. Put
	// is insert-only; use Replace to overwrite.
	ErrAlreadyExists = errors.New("value already exists")

	// ErrTypeMismatch reports that the stored kind differs from the
	// requested or declared kind.
	ErrTypeMismatch = errors.New("stored type does not match request")

	// ErrShape reports that an array entry's dimensions do not match what
	// the caller expected.
	ErrShape = errors.New("array shape does not match request")

	// ErrRange reports an integer that does not fit the native storage
	// width. Native integer entries are C ints, 32 bits on every supported
	// platform, so wider Go values are rejected rather than truncated.
	ErrRange = errors.New("integer out of range for native storage")

	// ErrClosed reports an operation on a DataBlock whose native handle was
	// already released.
	ErrClosed = errors.New("datablock is closed")

	// ErrInvalidKey reports an empty section or name.
	ErrInvalidKey = errors.New("section and name must be non-empty")

	// ErrNotBuilt reports that the binary was built without the native
	// bindings (CGO disabled or unsupported platform).
	ErrNotBuilt = backend.ErrNotBuilt
)

// Status is the raw DATABLOCK_STATUS value reported by a native entry point.
type Status = backend.Status

// Error describes a failed datablock operation. It wraps one of the sentinel
// errors when the native status has a host-level classification; for any
// other non-zero status the Status field alone preserves the diagnostic.
type Error struct {
	Op      string // native entry point group, e.g. "get_double"
	Section string
	Name    string
	Status  Status // raw native status; StatusSuccess when the failure is host-side
	err     error  // sentinel classification, may be nil
}

func (e *Error) Error() string {
	msg := "datablock: " + e.Op
	if e.Section != "" || e.Name != "" {
		msg += " " + e.Section + "/" + e.Name
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	if e.Status != backend.StatusSuccess {
		msg += fmt.Sprintf(" (%s)", e.Status)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.err }

// classify maps a native status to the sentinel taxonomy. Statuses with no
// host-level meaning (allocation failure, logic error, null arguments) stay
// unclassified and are reported through the Status field only.
func classify(s Status) error {
	switch s {
	case backend.StatusSectionNotFound, backend.StatusNameNotFound:
		return ErrNotFound
	case backend.StatusNameAlreadyExists:
		return ErrAlreadyExists
	case backend.StatusWrongValueType:
		return ErrTypeMismatch
	case backend.StatusSizeNull, backend.StatusSizeNonpositive, backend.StatusSizeInsufficient,
		backend.StatusNdimNonpositive, backend.StatusNdimOverflow, backend.StatusNdimMismatch,
		backend.StatusExtentsNull, backend.StatusExtentsMismatch:
		return ErrShape
	}
	return nil
}

// checkInt32 rejects integers that would be truncated when stored as a
// native C int.
func checkInt32(op, section, name string, v int) error {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return &Error{Op: op, Section: section, Name: name, err: ErrRange}
	}
	return nil
}

// opError converts a backend error to the public error type, attaching the
// key that was being accessed. Nil passes through.
func opError(section, name string, err error) error {
	if err == nil {
		return nil
	}
	var se *backend.StatusError
	if errors.As(err, &se) {
		return &Error{Op: se.Op, Section: section, Name: name, Status: se.Status, err: classify(se.Status)}
	}
	return err
}
