//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include "cosmosis/datablock/c_datablock.h"
*/
import "C"

import (
	"unsafe"
)

// GetInt reads an integer entry.
func GetInt(b Block, section, name string) (int, error) {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var v C.int
	rc := goStatus(C.c_datablock_get_int(b, csec, cname, &v))
	if rc != StatusSuccess {
		return 0, statusErr("get_int", rc)
	}
	return int(v), nil
}

// PutInt writes a new integer entry.
func PutInt(b Block, section, name string, v int) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("put_int", goStatus(C.c_datablock_put_int(b, csec, cname, C.int(v))))
}

// ReplaceInt overwrites an existing integer entry.
func ReplaceInt(b Block, section, name string, v int) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("replace_int", goStatus(C.c_datablock_replace_int(b, csec, cname, C.int(v))))
}

// GetBool reads a boolean entry.
func GetBool(b Block, section, name string) (bool, error) {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var v C.bool
	rc := goStatus(C.c_datablock_get_bool(b, csec, cname, &v))
	if rc != StatusSuccess {
		return false, statusErr("get_bool", rc)
	}
	return bool(v), nil
}

// PutBool writes a new boolean entry.
func PutBool(b Block, section, name string, v bool) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("put_bool", goStatus(C.c_datablock_put_bool(b, csec, cname, C.bool(v))))
}

// ReplaceBool overwrites an existing boolean entry.
func ReplaceBool(b Block, section, name string, v bool) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("replace_bool", goStatus(C.c_datablock_replace_bool(b, csec, cname, C.bool(v))))
}

// GetDouble reads a double entry.
func GetDouble(b Block, section, name string) (float64, error) {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var v C.double
	rc := goStatus(C.c_datablock_get_double(b, csec, cname, &v))
	if rc != StatusSuccess {
		return 0, statusErr("get_double", rc)
	}
	return float64(v), nil
}

// PutDouble writes a new double entry.
func PutDouble(b Block, section, name string, v float64) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("put_double", goStatus(C.c_datablock_put_double(b, csec, cname, C.double(v))))
}

// ReplaceDouble overwrites an existing double entry.
func ReplaceDouble(b Block, section, name string, v float64) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("replace_double", goStatus(C.c_datablock_replace_double(b, csec, cname, C.double(v))))
}

// GetComplex reads a complex entry.
func GetComplex(b Block, section, name string) (complex128, error) {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var v C.complexdouble
	rc := goStatus(C.c_datablock_get_complex(b, csec, cname, &v))
	if rc != StatusSuccess {
		return 0, statusErr("get_complex", rc)
	}
	return complex128(v), nil
}

// PutComplex writes a new complex entry.
func PutComplex(b Block, section, name string, v complex128) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("put_complex", goStatus(C.c_datablock_put_complex(b, csec, cname, C.complexdouble(v))))
}

// ReplaceComplex overwrites an existing complex entry.
func ReplaceComplex(b Block, section, name string, v complex128) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	return statusErr("replace_complex", goStatus(C.c_datablock_replace_complex(b, csec, cname, C.complexdouble(v))))
}

// GetString reads a string entry. The native side allocates the buffer; it is
// copied into Go memory and freed before returning, so no native pointer
// outlives the call.
func GetString(b Block, section, name string) (string, error) {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var cs *C.char
	rc := goStatus(C.c_datablock_get_string(b, csec, cname, &cs))
	if rc != StatusSuccess {
		return "", statusErr("get_string", rc)
	}
	v := C.GoString(cs)
	C.free(unsafe.Pointer(cs))
	return v, nil
}

// PutString writes a new string entry.
func PutString(b Block, section, name, v string) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	cv := C.CString(v)
	defer C.free(unsafe.Pointer(cv))
	return statusErr("put_string", goStatus(C.c_datablock_put_string(b, csec, cname, cv)))
}

// ReplaceString overwrites an existing string entry.
func ReplaceString(b Block, section, name, v string) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	cv := C.CString(v)
	defer C.free(unsafe.Pointer(cv))
	return statusErr("replace_string", goStatus(C.c_datablock_replace_string(b, csec, cname, cv)))
}
