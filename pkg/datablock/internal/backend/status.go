package backend

import (
	"errors"
	"fmt"
)

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("datablock/internal/backend: native bindings not built")

// Status mirrors the DATABLOCK_STATUS enum from
// cosmosis/datablock/datablock_status.h. Values are translated from the C
// enum by an exhaustive switch in the cgo layer, never by a numeric cast, so
// an installed header whose enum drifted from this list fails to compile
// instead of silently misreporting errors.
type Status int

const (
	StatusSuccess Status = iota
	StatusDatablockNull
	StatusSectionNull
	StatusSectionNotFound
	StatusNameNull
	StatusNameNotFound
	StatusNameAlreadyExists
	StatusValueNull
	StatusWrongValueType
	StatusMemoryAllocFailure
	StatusSizeNull
	StatusSizeNonpositive
	StatusSizeInsufficient
	StatusNdimNonpositive
	StatusNdimOverflow
	StatusNdimMismatch
	StatusExtentsNull
	StatusExtentsMismatch
	StatusLogicError
	StatusUsedDefault
)

var statusNames = map[Status]string{
	StatusSuccess:            "DBS_SUCCESS",
	StatusDatablockNull:      "DBS_DATABLOCK_NULL",
	StatusSectionNull:        "DBS_SECTION_NULL",
	StatusSectionNotFound:    "DBS_SECTION_NOT_FOUND",
	StatusNameNull:           "DBS_NAME_NULL",
	StatusNameNotFound:       "DBS_NAME_NOT_FOUND",
	StatusNameAlreadyExists:  "DBS_NAME_ALREADY_EXISTS",
	StatusValueNull:          "DBS_VALUE_NULL",
	StatusWrongValueType:     "DBS_WRONG_VALUE_TYPE",
	StatusMemoryAllocFailure: "DBS_MEMORY_ALLOC_FAILURE",
	StatusSizeNull:           "DBS_SIZE_NULL",
	StatusSizeNonpositive:    "DBS_SIZE_NONPOSITIVE",
	StatusSizeInsufficient:   "DBS_SIZE_INSUFFICIENT",
	StatusNdimNonpositive:    "DBS_NDIM_NONPOSITIVE",
	StatusNdimOverflow:       "DBS_NDIM_OVERFLOW",
	StatusNdimMismatch:       "DBS_NDIM_MISMATCH",
	StatusExtentsNull:        "DBS_EXTENTS_NULL",
	StatusExtentsMismatch:    "DBS_EXTENTS_MISMATCH",
	StatusLogicError:         "DBS_LOGIC_ERROR",
	StatusUsedDefault:        "DBS_USED_DEFAULT",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("DBS_UNKNOWN(%d)", int(s))
}

// StatusError reports a non-success status from a native entry point,
// preserving the raw status and the operation that produced it.
type StatusError struct {
	Op     string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %s (status %d)", e.Op, e.Status, int(e.Status))
}

// statusErr maps a translated status to nil or a *StatusError.
func statusErr(op string, s Status) error {
	if s == StatusSuccess {
		return nil
	}
	return &StatusError{Op: op, Status: s}
}

// Type mirrors the datablock_type_t enum from
// cosmosis/datablock/datablock_types.h, again translated by exhaustive
// switch rather than cast.
type Type int

const (
	TypeInt Type = iota
	TypeDouble
	TypeComplex
	TypeString
	TypeIntArray
	TypeDoubleArray
	TypeComplexArray
	TypeBool
	TypeIntGrid
	TypeDoubleGrid
	TypeComplexGrid
	TypeUnknown
)

var typeNames = map[Type]string{
	TypeInt:          "DBT_INT",
	TypeDouble:       "DBT_DOUBLE",
	TypeComplex:      "DBT_COMPLEX",
	TypeString:       "DBT_STRING",
	TypeIntArray:     "DBT_INT1D",
	TypeDoubleArray:  "DBT_DOUBLE1D",
	TypeComplexArray: "DBT_COMPLEX1D",
	TypeBool:         "DBT_BOOL",
	TypeIntGrid:      "DBT_INTND",
	TypeDoubleGrid:   "DBT_DOUBLEND",
	TypeComplexGrid:  "DBT_COMPLEXND",
	TypeUnknown:      "DBT_UNKNOWN",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("DBT_UNKNOWN(%d)", int(t))
}
