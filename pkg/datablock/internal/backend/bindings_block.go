//go:build cgo && !windows

package backend

/*
#cgo linux CFLAGS: -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib
#cgo LDFLAGS: -lcosmosis
#include <stdlib.h>
#include "cosmosis/datablock/c_datablock.h"
*/
import "C"

import (
	"unsafe"
)

// Block is a type alias for *C.c_datablock, the native library's opaque
// datablock handle.
type Block = *C.c_datablock

// goStatus translates a native DATABLOCK_STATUS to a Go Status. The switch is
// exhaustive over the enum constants so a header revision that renumbers or
// removes a status breaks the build here rather than misreporting at runtime.
func goStatus(rc C.DATABLOCK_STATUS) Status {
	switch rc {
	case C.DBS_SUCCESS:
		return StatusSuccess
	case C.DBS_DATABLOCK_NULL:
		return StatusDatablockNull
	case C.DBS_SECTION_NULL:
		return StatusSectionNull
	case C.DBS_SECTION_NOT_FOUND:
		return StatusSectionNotFound
	case C.DBS_NAME_NULL:
		return StatusNameNull
	case C.DBS_NAME_NOT_FOUND:
		return StatusNameNotFound
	case C.DBS_NAME_ALREADY_EXISTS:
		return StatusNameAlreadyExists
	case C.DBS_VALUE_NULL:
		return StatusValueNull
	case C.DBS_WRONG_VALUE_TYPE:
		return StatusWrongValueType
	case C.DBS_MEMORY_ALLOC_FAILURE:
		return StatusMemoryAllocFailure
	case C.DBS_SIZE_NULL:
		return StatusSizeNull
	case C.DBS_SIZE_NONPOSITIVE:
		return StatusSizeNonpositive
	case C.DBS_SIZE_INSUFFICIENT:
		return StatusSizeInsufficient
	case C.DBS_NDIM_NONPOSITIVE:
		return StatusNdimNonpositive
	case C.DBS_NDIM_OVERFLOW:
		return StatusNdimOverflow
	case C.DBS_NDIM_MISMATCH:
		return StatusNdimMismatch
	case C.DBS_EXTENTS_NULL:
		return StatusExtentsNull
	case C.DBS_EXTENTS_MISMATCH:
		return StatusExtentsMismatch
	case C.DBS_LOGIC_ERROR:
		return StatusLogicError
	case C.DBS_USED_DEFAULT:
		return StatusUsedDefault
	}
	return Status(int(rc))
}

// goType translates a native datablock_type_t to a Go Type.
func goType(t C.datablock_type_t) Type {
	switch t {
	case C.DBT_INT:
		return TypeInt
	case C.DBT_DOUBLE:
		return TypeDouble
	case C.DBT_COMPLEX:
		return TypeComplex
	case C.DBT_STRING:
		return TypeString
	case C.DBT_INT1D:
		return TypeIntArray
	case C.DBT_DOUBLE1D:
		return TypeDoubleArray
	case C.DBT_COMPLEX1D:
		return TypeComplexArray
	case C.DBT_BOOL:
		return TypeBool
	case C.DBT_INTND:
		return TypeIntGrid
	case C.DBT_DOUBLEND:
		return TypeDoubleGrid
	case C.DBT_COMPLEXND:
		return TypeComplexGrid
	}
	return TypeUnknown
}

// key converts a (section, name) pair to C strings. The caller must free both
// with freeKey.
func key(section, name string) (*C.char, *C.char) {
	return C.CString(section), C.CString(name)
}

func freeKey(csec, cname *C.char) {
	C.free(unsafe.Pointer(csec))
	C.free(unsafe.Pointer(cname))
}

// Make constructs a fresh, empty native datablock.
func Make() Block {
	return C.make_c_datablock()
}

// CloneBlock deep-copies a native datablock.
func CloneBlock(b Block) Block {
	return C.clone_c_datablock(b)
}

// Destroy releases a native datablock. The handle must not be used afterward.
func Destroy(b Block) error {
	return statusErr("destroy", goStatus(C.destroy_c_datablock(b)))
}

// FromPointer reinterprets a raw handle produced by the native library, e.g.
// the block passed to a pipeline module's execute hook.
func FromPointer(p unsafe.Pointer) Block {
	return (Block)(p)
}

// HasSection reports whether the block contains the named section.
func HasSection(b Block, section string) bool {
	csec := C.CString(section)
	defer C.free(unsafe.Pointer(csec))
	return bool(C.c_datablock_has_section(b, csec))
}

// HasValue reports whether the block contains an entry under (section, name).
func HasValue(b Block, section, name string) bool {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return bool(C.c_datablock_has_value(b, csec, cname))
}

// SectionNames returns all section names in native iteration order. Each name
// is copied out of native memory before the call returns.
func SectionNames(b Block) []string {
	n := int(C.c_datablock_num_sections(b))
	if n <= 0 {
		return nil
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		cs := C.c_datablock_get_section_name(b, C.int(i))
		if cs == nil {
			continue
		}
		names = append(names, C.GoString(cs))
	}
	return names
}

// ValueNames returns the entry names of a section in native iteration order.
// The section must exist; callers check HasSection first.
func ValueNames(b Block, section string) []string {
	csec := C.CString(section)
	defer C.free(unsafe.Pointer(csec))
	n := int(C.c_datablock_num_values(b, csec))
	if n <= 0 {
		return nil
	}
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		cs := C.c_datablock_get_value_name(b, csec, C.int(i))
		if cs == nil {
			continue
		}
		names = append(names, C.GoString(cs))
	}
	return names
}

// GetType reports the stored kind of (section, name).
func GetType(b Block, section, name string) (Type, error) {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var t C.datablock_type_t = C.DBT_UNKNOWN
	rc := goStatus(C.c_datablock_get_type(b, csec, cname, &t))
	if rc != StatusSuccess {
		return TypeUnknown, statusErr("get_type", rc)
	}
	return goType(t), nil
}

// ArrayLength returns the length of a 1-D array entry, or a negative value if
// the entry is absent or not a 1-D array (native semantics).
func ArrayLength(b Block, section, name string) int {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return int(C.c_datablock_get_array_length(b, csec, cname))
}

// Built reports whether the native bindings were compiled in.
func Built() bool { return true }
