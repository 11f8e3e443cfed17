//go:build !cgo || windows

package datablock

import "unsafe"

// DataBlock is a stub for builds without the native bindings. Every
// operation fails with ErrNotBuilt.
type DataBlock struct{}

// New is a stub that returns ErrNotBuilt.
func New() (*DataBlock, error) { return nil, ErrNotBuilt }

// Adopt is a stub that returns ErrNotBuilt.
func Adopt(unsafe.Pointer, bool) (*DataBlock, error) { return nil, ErrNotBuilt }

// Clone is a stub that returns ErrNotBuilt.
func (b *DataBlock) Clone() (*DataBlock, error) { return nil, ErrNotBuilt }

// Close is a no-op stub.
func (b *DataBlock) Close() error { return nil }

// HasValue is a stub that reports false.
func (b *DataBlock) HasValue(section, name string) bool { return false }

// HasSection is a stub that reports false.
func (b *DataBlock) HasSection(section string) bool { return false }

// Sections is a stub that returns ErrNotBuilt.
func (b *DataBlock) Sections() ([]string, error) { return nil, ErrNotBuilt }

// Keys is a stub that returns ErrNotBuilt.
func (b *DataBlock) Keys(string) ([]string, error) { return nil, ErrNotBuilt }

// TypeOf is a stub that returns ErrNotBuilt.
func (b *DataBlock) TypeOf(string, string) (Type, error) { return TypeUnknown, ErrNotBuilt }

// ArrayLength is a stub that returns ErrNotBuilt.
func (b *DataBlock) ArrayLength(string, string) (int, error) { return 0, ErrNotBuilt }

func (b *DataBlock) GetInt(string, string) (int, error) { return 0, ErrNotBuilt }
func (b *DataBlock) PutInt(string, string, int) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceInt(string, string, int) error { return ErrNotBuilt }
func (b *DataBlock) GetBool(string, string) (bool, error) { return false, ErrNotBuilt }
func (b *DataBlock) PutBool(string, string, bool) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceBool(string, string, bool) error { return ErrNotBuilt }
func (b *DataBlock) GetDouble(string, string) (float64, error) {
	return 0, ErrNotBuilt
}
func (b *DataBlock) PutDouble(string, string, float64) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceDouble(string, string, float64) error { return ErrNotBuilt }
func (b *DataBlock) GetComplex(string, string) (complex128, error) {
	return 0, ErrNotBuilt
}
func (b *DataBlock) PutComplex(string, string, complex128) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceComplex(string, string, complex128) error { return ErrNotBuilt }
func (b *DataBlock) GetString(string, string) (string, error) { return "", ErrNotBuilt }
func (b *DataBlock) PutString(string, string, string) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceString(string, string, string) error { return ErrNotBuilt }

func (b *DataBlock) GetIntArray(string, string) ([]int32, error) { return nil, ErrNotBuilt }
func (b *DataBlock) PutIntArray(string, string, []int32) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceIntArray(string, string, []int32) error {
	return ErrNotBuilt
}
func (b *DataBlock) GetDoubleArray(string, string) ([]float64, error) { return nil, ErrNotBuilt }
func (b *DataBlock) GetDoubleArrayInto(string, string, []float64) error {
	return ErrNotBuilt
}
func (b *DataBlock) PutDoubleArray(string, string, []float64) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceDoubleArray(string, string, []float64) error {
	return ErrNotBuilt
}
func (b *DataBlock) GetComplexArray(string, string) ([]complex128, error) {
	return nil, ErrNotBuilt
}
func (b *DataBlock) PutComplexArray(string, string, []complex128) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceComplexArray(string, string, []complex128) error {
	return ErrNotBuilt
}

func (b *DataBlock) GetIntGrid(string, string) (*Grid[int32], error) { return nil, ErrNotBuilt }
func (b *DataBlock) PutIntGrid(string, string, *Grid[int32]) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceIntGrid(string, string, *Grid[int32]) error {
	return ErrNotBuilt
}
func (b *DataBlock) GetDoubleGrid(string, string) (*Grid[float64], error) {
	return nil, ErrNotBuilt
}
func (b *DataBlock) PutDoubleGrid(string, string, *Grid[float64]) error { return ErrNotBuilt }
func (b *DataBlock) ReplaceDoubleGrid(string, string, *Grid[float64]) error {
	return ErrNotBuilt
}
func (b *DataBlock) GetComplexGrid(string, string) (*Grid[complex128], error) {
	return nil, ErrNotBuilt
}
func (b *DataBlock) PutComplexGrid(string, string, *Grid[complex128]) error {
	return ErrNotBuilt
}
func (b *DataBlock) ReplaceComplexGrid(string, string, *Grid[complex128]) error {
	return ErrNotBuilt
}
