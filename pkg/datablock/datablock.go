//go:build cgo && !windows

package datablock

import (
	"runtime"
	"unsafe"

	"github.com/cosmosis/cosmosis-go/pkg/datablock/internal/backend"
)

// DataBlock wraps a native CosmoSIS datablock handle. A block is either Open
// (handle valid) or Closed (handle released); Close performs the one and
// only release, and every later operation fails with ErrClosed.
//
// Memory management: call Close when done, or rely on the finalizer as a
// backstop. A DataBlock must not be shared across goroutines without
// external synchronization.
type DataBlock struct {
	handle backend.Block
	owned  bool
}

// New constructs a fresh, empty datablock owned by the returned value.
func New() (*DataBlock, error) {
	h := backend.Make()
	if h == nil {
		return nil, &Error{Op: "make", Status: backend.StatusMemoryAllocFailure}
	}
	return newBlock(h, true), nil
}

// Adopt wraps a handle produced by the native library, such as the block
// passed to a pipeline module's execute hook. When owned is true the
// returned DataBlock releases the handle on Close; pass false for blocks the
// native pipeline still owns, in which case Close only detaches.
func Adopt(handle unsafe.Pointer, owned bool) (*DataBlock, error) {
	if handle == nil {
		return nil, &Error{Op: "adopt", Status: backend.StatusDatablockNull}
	}
	return newBlock(backend.FromPointer(handle), owned), nil
}

// Clone deep-copies the block, including all sections and entries. The copy
// is independently owned.
func (b *DataBlock) Clone() (*DataBlock, error) {
	if b == nil || b.handle == nil {
		return nil, &Error{Op: "clone", err: ErrClosed}
	}
	h := backend.CloneBlock(b.handle)
	runtime.KeepAlive(b)
	if h == nil {
		return nil, &Error{Op: "clone", Status: backend.StatusMemoryAllocFailure}
	}
	return newBlock(h, true), nil
}

func newBlock(h backend.Block, owned bool) *DataBlock {
	b := &DataBlock{handle: h, owned: owned}
	if owned {
		runtime.SetFinalizer(b, (*DataBlock).Close)
	}
	return b
}

// Close releases the native block. Only the first call releases; calling
// Close again is a no-op returning nil, so the native free runs exactly
// once per handle.
func (b *DataBlock) Close() error {
	if b == nil || b.handle == nil {
		return nil
	}
	h := b.handle
	owned := b.owned
	b.handle = nil
	runtime.SetFinalizer(b, nil)
	if !owned {
		return nil
	}
	return opError("", "", backend.Destroy(h))
}

// check guards every keyed operation: the handle must be open and the key
// non-empty.
func (b *DataBlock) check(op, section, name string) error {
	if b == nil || b.handle == nil {
		return &Error{Op: op, Section: section, Name: name, err: ErrClosed}
	}
	if section == "" || name == "" {
		return &Error{Op: op, Section: section, Name: name, err: ErrInvalidKey}
	}
	return nil
}

// HasValue reports whether an entry exists under (section, name). It never
// fails; a closed block reports false.
func (b *DataBlock) HasValue(section, name string) bool {
	if b == nil || b.handle == nil || section == "" || name == "" {
		return false
	}
	ok := backend.HasValue(b.handle, section, name)
	runtime.KeepAlive(b)
	return ok
}

// HasSection reports whether the named section exists. Sections come into
// existence implicitly on the first Put into them.
func (b *DataBlock) HasSection(section string) bool {
	if b == nil || b.handle == nil || section == "" {
		return false
	}
	ok := backend.HasSection(b.handle, section)
	runtime.KeepAlive(b)
	return ok
}

// Sections returns all section names in native iteration order.
func (b *DataBlock) Sections() ([]string, error) {
	if b == nil || b.handle == nil {
		return nil, &Error{Op: "sections", err: ErrClosed}
	}
	names := backend.SectionNames(b.handle)
	runtime.KeepAlive(b)
	return names, nil
}

// Keys returns the entry names of a section in native iteration order, or
// ErrNotFound if the section is absent.
func (b *DataBlock) Keys(section string) ([]string, error) {
	if b == nil || b.handle == nil {
		return nil, &Error{Op: "keys", Section: section, err: ErrClosed}
	}
	if !backend.HasSection(b.handle, section) {
		return nil, &Error{Op: "keys", Section: section, Status: backend.StatusSectionNotFound, err: ErrNotFound}
	}
	names := backend.ValueNames(b.handle, section)
	runtime.KeepAlive(b)
	return names, nil
}

// TypeOf reports which kind is stored under (section, name), or ErrNotFound
// when the key is absent.
func (b *DataBlock) TypeOf(section, name string) (Type, error) {
	if err := b.check("get_type", section, name); err != nil {
		return TypeUnknown, err
	}
	t, err := backend.GetType(b.handle, section, name)
	runtime.KeepAlive(b)
	if err != nil {
		return TypeUnknown, opError(section, name, err)
	}
	return typeFromBackend(t), nil
}

// ArrayLength returns the length of a 1-D array entry. ErrNotFound when the
// key is absent, ErrTypeMismatch when the entry is not a 1-D array.
func (b *DataBlock) ArrayLength(section, name string) (int, error) {
	if err := b.check("get_array_length", section, name); err != nil {
		return 0, err
	}
	n := backend.ArrayLength(b.handle, section, name)
	if n < 0 {
		has := backend.HasValue(b.handle, section, name)
		runtime.KeepAlive(b)
		if has {
			return 0, &Error{Op: "get_array_length", Section: section, Name: name,
				Status: backend.StatusWrongValueType, err: ErrTypeMismatch}
		}
		return 0, &Error{Op: "get_array_length", Section: section, Name: name,
			Status: backend.StatusNameNotFound, err: ErrNotFound}
	}
	runtime.KeepAlive(b)
	return n, nil
}

// GetInt reads an integer entry.
func (b *DataBlock) GetInt(section, name string) (int, error) {
	if err := b.check("get_int", section, name); err != nil {
		return 0, err
	}
	v, err := backend.GetInt(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// PutInt writes a new integer entry; ErrAlreadyExists if the key is present,
// ErrRange if the value does not fit 32 bits.
func (b *DataBlock) PutInt(section, name string, v int) error {
	if err := b.check("put_int", section, name); err != nil {
		return err
	}
	if err := checkInt32("put_int", section, name, v); err != nil {
		return err
	}
	err := backend.PutInt(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceInt overwrites an existing integer entry; ErrNotFound if absent,
// ErrRange if the value does not fit 32 bits.
func (b *DataBlock) ReplaceInt(section, name string, v int) error {
	if err := b.check("replace_int", section, name); err != nil {
		return err
	}
	if err := checkInt32("replace_int", section, name, v); err != nil {
		return err
	}
	err := backend.ReplaceInt(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetBool reads a boolean entry.
func (b *DataBlock) GetBool(section, name string) (bool, error) {
	if err := b.check("get_bool", section, name); err != nil {
		return false, err
	}
	v, err := backend.GetBool(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// PutBool writes a new boolean entry.
func (b *DataBlock) PutBool(section, name string, v bool) error {
	if err := b.check("put_bool", section, name); err != nil {
		return err
	}
	err := backend.PutBool(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceBool overwrites an existing boolean entry.
func (b *DataBlock) ReplaceBool(section, name string, v bool) error {
	if err := b.check("replace_bool", section, name); err != nil {
		return err
	}
	err := backend.ReplaceBool(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetDouble reads a double entry.
func (b *DataBlock) GetDouble(section, name string) (float64, error) {
	if err := b.check("get_double", section, name); err != nil {
		return 0, err
	}
	v, err := backend.GetDouble(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// PutDouble writes a new double entry.
func (b *DataBlock) PutDouble(section, name string, v float64) error {
	if err := b.check("put_double", section, name); err != nil {
		return err
	}
	err := backend.PutDouble(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceDouble overwrites an existing double entry.
func (b *DataBlock) ReplaceDouble(section, name string, v float64) error {
	if err := b.check("replace_double", section, name); err != nil {
		return err
	}
	err := backend.ReplaceDouble(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetComplex reads a complex entry.
func (b *DataBlock) GetComplex(section, name string) (complex128, error) {
	if err := b.check("get_complex", section, name); err != nil {
		return 0, err
	}
	v, err := backend.GetComplex(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// PutComplex writes a new complex entry.
func (b *DataBlock) PutComplex(section, name string, v complex128) error {
	if err := b.check("put_complex", section, name); err != nil {
		return err
	}
	err := backend.PutComplex(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceComplex overwrites an existing complex entry.
func (b *DataBlock) ReplaceComplex(section, name string, v complex128) error {
	if err := b.check("replace_complex", section, name); err != nil {
		return err
	}
	err := backend.ReplaceComplex(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetString reads a string entry. The value is copied out of native memory.
func (b *DataBlock) GetString(section, name string) (string, error) {
	if err := b.check("get_string", section, name); err != nil {
		return "", err
	}
	v, err := backend.GetString(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// PutString writes a new string entry.
func (b *DataBlock) PutString(section, name, v string) error {
	if err := b.check("put_string", section, name); err != nil {
		return err
	}
	err := backend.PutString(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceString overwrites an existing string entry.
func (b *DataBlock) ReplaceString(section, name, v string) error {
	if err := b.check("replace_string", section, name); err != nil {
		return err
	}
	err := backend.ReplaceString(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetIntArray reads a 1-D integer array into a new Go-owned slice.
func (b *DataBlock) GetIntArray(section, name string) ([]int32, error) {
	if err := b.check("get_int_array_1d", section, name); err != nil {
		return nil, err
	}
	v, err := backend.GetIntArray(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// PutIntArray writes a new 1-D integer array entry.
func (b *DataBlock) PutIntArray(section, name string, v []int32) error {
	if err := b.check("put_int_array_1d", section, name); err != nil {
		return err
	}
	err := backend.PutIntArray(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceIntArray overwrites an existing 1-D integer array entry.
func (b *DataBlock) ReplaceIntArray(section, name string, v []int32) error {
	if err := b.check("replace_int_array_1d", section, name); err != nil {
		return err
	}
	err := backend.ReplaceIntArray(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetDoubleArray reads a 1-D double array into a new Go-owned slice.
func (b *DataBlock) GetDoubleArray(section, name string) ([]float64, error) {
	if err := b.check("get_double_array_1d", section, name); err != nil {
		return nil, err
	}
	v, err := backend.GetDoubleArray(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// GetDoubleArrayInto fills a caller-owned buffer with a 1-D double array.
// The stored length must equal len(dst) exactly; any mismatch is ErrShape.
func (b *DataBlock) GetDoubleArrayInto(section, name string, dst []float64) error {
	if err := b.check("get_double_array_1d", section, name); err != nil {
		return err
	}
	n, err := backend.GetDoubleArrayPrealloc(b.handle, section, name, dst)
	runtime.KeepAlive(b)
	if err != nil {
		return opError(section, name, err)
	}
	if n != len(dst) {
		return &Error{Op: "get_double_array_1d", Section: section, Name: name,
			Status: backend.StatusSizeInsufficient, err: ErrShape}
	}
	return nil
}

// PutDoubleArray writes a new 1-D double array entry.
func (b *DataBlock) PutDoubleArray(section, name string, v []float64) error {
	if err := b.check("put_double_array_1d", section, name); err != nil {
		return err
	}
	err := backend.PutDoubleArray(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceDoubleArray overwrites an existing 1-D double array entry.
func (b *DataBlock) ReplaceDoubleArray(section, name string, v []float64) error {
	if err := b.check("replace_double_array_1d", section, name); err != nil {
		return err
	}
	err := backend.ReplaceDoubleArray(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetComplexArray reads a 1-D complex array into a new Go-owned slice.
func (b *DataBlock) GetComplexArray(section, name string) ([]complex128, error) {
	if err := b.check("get_complex_array_1d", section, name); err != nil {
		return nil, err
	}
	v, err := backend.GetComplexArray(b.handle, section, name)
	runtime.KeepAlive(b)
	return v, opError(section, name, err)
}

// PutComplexArray writes a new 1-D complex array entry.
func (b *DataBlock) PutComplexArray(section, name string, v []complex128) error {
	if err := b.check("put_complex_array_1d", section, name); err != nil {
		return err
	}
	err := backend.PutComplexArray(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceComplexArray overwrites an existing 1-D complex array entry.
func (b *DataBlock) ReplaceComplexArray(section, name string, v []complex128) error {
	if err := b.check("replace_complex_array_1d", section, name); err != nil {
		return err
	}
	err := backend.ReplaceComplexArray(b.handle, section, name, v)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetIntGrid reads a rank-2 integer array as a row-major grid.
func (b *DataBlock) GetIntGrid(section, name string) (*Grid[int32], error) {
	if err := b.check("get_int_array", section, name); err != nil {
		return nil, err
	}
	rows, cols, data, err := backend.GetIntGrid(b.handle, section, name)
	runtime.KeepAlive(b)
	if err != nil {
		return nil, opError(section, name, err)
	}
	return &Grid[int32]{Rows: rows, Cols: cols, Data: data}, nil
}

// PutIntGrid writes a new rank-2 integer array entry.
func (b *DataBlock) PutIntGrid(section, name string, g *Grid[int32]) error {
	if err := b.check("put_int_array", section, name); err != nil {
		return err
	}
	if err := g.validate(); err != nil {
		return &Error{Op: "put_int_array", Section: section, Name: name, err: ErrShape}
	}
	err := backend.PutIntGrid(b.handle, section, name, g.Rows, g.Cols, g.Data)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceIntGrid overwrites an existing rank-2 integer array entry.
func (b *DataBlock) ReplaceIntGrid(section, name string, g *Grid[int32]) error {
	if err := b.check("replace_int_array", section, name); err != nil {
		return err
	}
	if err := g.validate(); err != nil {
		return &Error{Op: "replace_int_array", Section: section, Name: name, err: ErrShape}
	}
	err := backend.ReplaceIntGrid(b.handle, section, name, g.Rows, g.Cols, g.Data)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetDoubleGrid reads a rank-2 double array as a row-major grid.
func (b *DataBlock) GetDoubleGrid(section, name string) (*Grid[float64], error) {
	if err := b.check("get_double_array", section, name); err != nil {
		return nil, err
	}
	rows, cols, data, err := backend.GetDoubleGrid(b.handle, section, name)
	runtime.KeepAlive(b)
	if err != nil {
		return nil, opError(section, name, err)
	}
	return &Grid[float64]{Rows: rows, Cols: cols, Data: data}, nil
}

// PutDoubleGrid writes a new rank-2 double array entry.
func (b *DataBlock) PutDoubleGrid(section, name string, g *Grid[float64]) error {
	if err := b.check("put_double_array", section, name); err != nil {
		return err
	}
	if err := g.validate(); err != nil {
		return &Error{Op: "put_double_array", Section: section, Name: name, err: ErrShape}
	}
	err := backend.PutDoubleGrid(b.handle, section, name, g.Rows, g.Cols, g.Data)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceDoubleGrid overwrites an existing rank-2 double array entry.
func (b *DataBlock) ReplaceDoubleGrid(section, name string, g *Grid[float64]) error {
	if err := b.check("replace_double_array", section, name); err != nil {
		return err
	}
	if err := g.validate(); err != nil {
		return &Error{Op: "replace_double_array", Section: section, Name: name, err: ErrShape}
	}
	err := backend.ReplaceDoubleGrid(b.handle, section, name, g.Rows, g.Cols, g.Data)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// GetComplexGrid reads a rank-2 complex array as a row-major grid.
func (b *DataBlock) GetComplexGrid(section, name string) (*Grid[complex128], error) {
	if err := b.check("get_complex_array", section, name); err != nil {
		return nil, err
	}
	rows, cols, data, err := backend.GetComplexGrid(b.handle, section, name)
	runtime.KeepAlive(b)
	if err != nil {
		return nil, opError(section, name, err)
	}
	return &Grid[complex128]{Rows: rows, Cols: cols, Data: data}, nil
}

// PutComplexGrid writes a new rank-2 complex array entry.
func (b *DataBlock) PutComplexGrid(section, name string, g *Grid[complex128]) error {
	if err := b.check("put_complex_array", section, name); err != nil {
		return err
	}
	if err := g.validate(); err != nil {
		return &Error{Op: "put_complex_array", Section: section, Name: name, err: ErrShape}
	}
	err := backend.PutComplexGrid(b.handle, section, name, g.Rows, g.Cols, g.Data)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}

// ReplaceComplexGrid overwrites an existing rank-2 complex array entry.
func (b *DataBlock) ReplaceComplexGrid(section, name string, g *Grid[complex128]) error {
	if err := b.check("replace_complex_array", section, name); err != nil {
		return err
	}
	if err := g.validate(); err != nil {
		return &Error{Op: "replace_complex_array", Section: section, Name: name, err: ErrShape}
	}
	err := backend.ReplaceComplexGrid(b.handle, section, name, g.Rows, g.Cols, g.Data)
	runtime.KeepAlive(b)
	return opError(section, name, err)
}
