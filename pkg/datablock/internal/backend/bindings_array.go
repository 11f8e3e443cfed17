//go:build cgo && !windows

package backend

/*
#include <stdlib.h>
#include "cosmosis/datablock/c_datablock.h"
*/
import "C"

// arrayGetStatus classifies a negative length report from
// c_datablock_get_array_length: the entry is either absent or not a 1-D
// array of the requested kind.
func arrayGetStatus(b Block, section, name string) Status {
	if HasValue(b, section, name) {
		return StatusWrongValueType
	}
	return StatusNameNotFound
}

// GetIntArray reads a 1-D integer array into a freshly allocated Go slice.
func GetIntArray(b Block, section, name string) ([]int32, error) {
	n := ArrayLength(b, section, name)
	if n < 0 {
		return nil, statusErr("get_int_array_1d", arrayGetStatus(b, section, name))
	}
	out := make([]int32, n)
	if n == 0 {
		return out, nil
	}
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	size := C.int(n)
	rc := goStatus(C.c_datablock_get_int_array_1d_preallocated(
		b, csec, cname, (*C.int)(&out[0]), &size, C.int(n)))
	if rc != StatusSuccess {
		return nil, statusErr("get_int_array_1d", rc)
	}
	return out[:int(size)], nil
}

// PutIntArray writes a new 1-D integer array entry.
func PutIntArray(b Block, section, name string, v []int32) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var p *C.int
	if len(v) > 0 {
		p = (*C.int)(&v[0])
	}
	return statusErr("put_int_array_1d",
		goStatus(C.c_datablock_put_int_array_1d(b, csec, cname, p, C.int(len(v)))))
}

// ReplaceIntArray overwrites an existing 1-D integer array entry.
func ReplaceIntArray(b Block, section, name string, v []int32) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var p *C.int
	if len(v) > 0 {
		p = (*C.int)(&v[0])
	}
	return statusErr("replace_int_array_1d",
		goStatus(C.c_datablock_replace_int_array_1d(b, csec, cname, p, C.int(len(v)))))
}

// GetDoubleArray reads a 1-D double array into a freshly allocated Go slice.
func GetDoubleArray(b Block, section, name string) ([]float64, error) {
	n := ArrayLength(b, section, name)
	if n < 0 {
		return nil, statusErr("get_double_array_1d", arrayGetStatus(b, section, name))
	}
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	size := C.int(n)
	rc := goStatus(C.c_datablock_get_double_array_1d_preallocated(
		b, csec, cname, (*C.double)(&out[0]), &size, C.int(n)))
	if rc != StatusSuccess {
		return nil, statusErr("get_double_array_1d", rc)
	}
	return out[:int(size)], nil
}

// GetDoubleArrayPrealloc fills a caller-owned buffer with a 1-D double
// array and reports how many elements were stored. The native side fails
// with DBS_SIZE_INSUFFICIENT when the entry is longer than the buffer.
func GetDoubleArrayPrealloc(b Block, section, name string, dst []float64) (int, error) {
	if len(dst) == 0 {
		return 0, statusErr("get_double_array_1d", StatusSizeNonpositive)
	}
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	size := C.int(0)
	rc := goStatus(C.c_datablock_get_double_array_1d_preallocated(
		b, csec, cname, (*C.double)(&dst[0]), &size, C.int(len(dst))))
	if rc != StatusSuccess {
		return 0, statusErr("get_double_array_1d", rc)
	}
	return int(size), nil
}

// PutDoubleArray writes a new 1-D double array entry.
func PutDoubleArray(b Block, section, name string, v []float64) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var p *C.double
	if len(v) > 0 {
		p = (*C.double)(&v[0])
	}
	return statusErr("put_double_array_1d",
		goStatus(C.c_datablock_put_double_array_1d(b, csec, cname, p, C.int(len(v)))))
}

// ReplaceDoubleArray overwrites an existing 1-D double array entry.
func ReplaceDoubleArray(b Block, section, name string, v []float64) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var p *C.double
	if len(v) > 0 {
		p = (*C.double)(&v[0])
	}
	return statusErr("replace_double_array_1d",
		goStatus(C.c_datablock_replace_double_array_1d(b, csec, cname, p, C.int(len(v)))))
}

// GetComplexArray reads a 1-D complex array into a freshly allocated Go slice.
func GetComplexArray(b Block, section, name string) ([]complex128, error) {
	n := ArrayLength(b, section, name)
	if n < 0 {
		return nil, statusErr("get_complex_array_1d", arrayGetStatus(b, section, name))
	}
	out := make([]complex128, n)
	if n == 0 {
		return out, nil
	}
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	size := C.int(n)
	rc := goStatus(C.c_datablock_get_complex_array_1d_preallocated(
		b, csec, cname, (*C.complexdouble)(&out[0]), &size, C.int(n)))
	if rc != StatusSuccess {
		return nil, statusErr("get_complex_array_1d", rc)
	}
	return out[:int(size)], nil
}

// PutComplexArray writes a new 1-D complex array entry.
func PutComplexArray(b Block, section, name string, v []complex128) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var p *C.complexdouble
	if len(v) > 0 {
		p = (*C.complexdouble)(&v[0])
	}
	return statusErr("put_complex_array_1d",
		goStatus(C.c_datablock_put_complex_array_1d(b, csec, cname, p, C.int(len(v)))))
}

// ReplaceComplexArray overwrites an existing 1-D complex array entry.
func ReplaceComplexArray(b Block, section, name string, v []complex128) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var p *C.complexdouble
	if len(v) > 0 {
		p = (*C.complexdouble)(&v[0])
	}
	return statusErr("replace_complex_array_1d",
		goStatus(C.c_datablock_replace_complex_array_1d(b, csec, cname, p, C.int(len(v)))))
}

// gridShape queries the rank and extents of an n-dimensional entry and
// requires rank 2. Extents are translated to (rows, cols).
func gridShape(b Block, section, name, op string, shape func(csec, cname *C.char, extents *C.int) C.DATABLOCK_STATUS) (rows, cols int, err error) {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	var ndim C.int
	rc := goStatus(C.c_datablock_get_array_ndim(b, csec, cname, &ndim))
	if rc != StatusSuccess {
		return 0, 0, statusErr(op, rc)
	}
	if ndim != 2 {
		return 0, 0, statusErr(op, StatusNdimMismatch)
	}
	var extents [2]C.int
	rc = goStatus(shape(csec, cname, &extents[0]))
	if rc != StatusSuccess {
		return 0, 0, statusErr(op, rc)
	}
	return int(extents[0]), int(extents[1]), nil
}

// GetDoubleGrid reads a rank-2 double array. Data is row-major.
func GetDoubleGrid(b Block, section, name string) (rows, cols int, data []float64, err error) {
	rows, cols, err = gridShape(b, section, name, "get_double_array_shape",
		func(csec, cname *C.char, extents *C.int) C.DATABLOCK_STATUS {
			return C.c_datablock_get_double_array_shape(b, csec, cname, 2, extents)
		})
	if err != nil {
		return 0, 0, nil, err
	}
	data = make([]float64, rows*cols)
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.double
	if len(data) > 0 {
		p = (*C.double)(&data[0])
	}
	rc := goStatus(C.c_datablock_get_double_array(b, csec, cname, p, 2, &extents[0]))
	if rc != StatusSuccess {
		return 0, 0, nil, statusErr("get_double_array", rc)
	}
	return rows, cols, data, nil
}

// PutDoubleGrid writes a new rank-2 double array entry.
func PutDoubleGrid(b Block, section, name string, rows, cols int, data []float64) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.double
	if len(data) > 0 {
		p = (*C.double)(&data[0])
	}
	return statusErr("put_double_array",
		goStatus(C.c_datablock_put_double_array(b, csec, cname, p, 2, &extents[0])))
}

// ReplaceDoubleGrid overwrites an existing rank-2 double array entry.
func ReplaceDoubleGrid(b Block, section, name string, rows, cols int, data []float64) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.double
	if len(data) > 0 {
		p = (*C.double)(&data[0])
	}
	return statusErr("replace_double_array",
		goStatus(C.c_datablock_replace_double_array(b, csec, cname, p, 2, &extents[0])))
}

// GetIntGrid reads a rank-2 integer array. Data is row-major.
func GetIntGrid(b Block, section, name string) (rows, cols int, data []int32, err error) {
	rows, cols, err = gridShape(b, section, name, "get_int_array_shape",
		func(csec, cname *C.char, extents *C.int) C.DATABLOCK_STATUS {
			return C.c_datablock_get_int_array_shape(b, csec, cname, 2, extents)
		})
	if err != nil {
		return 0, 0, nil, err
	}
	data = make([]int32, rows*cols)
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.int
	if len(data) > 0 {
		p = (*C.int)(&data[0])
	}
	rc := goStatus(C.c_datablock_get_int_array(b, csec, cname, p, 2, &extents[0]))
	if rc != StatusSuccess {
		return 0, 0, nil, statusErr("get_int_array", rc)
	}
	return rows, cols, data, nil
}

// PutIntGrid writes a new rank-2 integer array entry.
func PutIntGrid(b Block, section, name string, rows, cols int, data []int32) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.int
	if len(data) > 0 {
		p = (*C.int)(&data[0])
	}
	return statusErr("put_int_array",
		goStatus(C.c_datablock_put_int_array(b, csec, cname, p, 2, &extents[0])))
}

// ReplaceIntGrid overwrites an existing rank-2 integer array entry.
func ReplaceIntGrid(b Block, section, name string, rows, cols int, data []int32) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.int
	if len(data) > 0 {
		p = (*C.int)(&data[0])
	}
	return statusErr("replace_int_array",
		goStatus(C.c_datablock_replace_int_array(b, csec, cname, p, 2, &extents[0])))
}

// GetComplexGrid reads a rank-2 complex array. Data is row-major.
func GetComplexGrid(b Block, section, name string) (rows, cols int, data []complex128, err error) {
	rows, cols, err = gridShape(b, section, name, "get_complex_array_shape",
		func(csec, cname *C.char, extents *C.int) C.DATABLOCK_STATUS {
			return C.c_datablock_get_complex_array_shape(b, csec, cname, 2, extents)
		})
	if err != nil {
		return 0, 0, nil, err
	}
	data = make([]complex128, rows*cols)
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.complexdouble
	if len(data) > 0 {
		p = (*C.complexdouble)(&data[0])
	}
	rc := goStatus(C.c_datablock_get_complex_array(b, csec, cname, p, 2, &extents[0]))
	if rc != StatusSuccess {
		return 0, 0, nil, statusErr("get_complex_array", rc)
	}
	return rows, cols, data, nil
}

// PutComplexGrid writes a new rank-2 complex array entry.
func PutComplexGrid(b Block, section, name string, rows, cols int, data []complex128) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.complexdouble
	if len(data) > 0 {
		p = (*C.complexdouble)(&data[0])
	}
	return statusErr("put_complex_array",
		goStatus(C.c_datablock_put_complex_array(b, csec, cname, p, 2, &extents[0])))
}

// ReplaceComplexGrid overwrites an existing rank-2 complex array entry.
func ReplaceComplexGrid(b Block, section, name string, rows, cols int, data []complex128) error {
	csec, cname := key(section, name)
	defer freeKey(csec, cname)
	extents := [2]C.int{C.int(rows), C.int(cols)}
	var p *C.complexdouble
	if len(data) > 0 {
		p = (*C.complexdouble)(&data[0])
	}
	return statusErr("replace_complex_array",
		goStatus(C.c_datablock_replace_complex_array(b, csec, cname, p, 2, &extents[0])))
}
