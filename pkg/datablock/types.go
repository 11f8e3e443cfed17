package datablock

import (
	"fmt"

	"github.com/cosmosis/cosmosis-go/pkg/datablock/internal/backend"
)

// Type identifies the stored kind of a datablock entry. A given
// (section, name) key holds values of exactly one kind at a time; changing
// the kind requires an explicit Replace of the same kind, never happens
// silently.
type Type int

const (
	TypeUnknown Type = iota
	TypeInt
	TypeBool
	TypeDouble
	TypeComplex
	TypeString
	TypeIntArray
	TypeDoubleArray
	TypeComplexArray
	TypeIntGrid
	TypeDoubleGrid
	TypeComplexGrid
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeDouble:
		return "double"
	case TypeComplex:
		return "complex"
	case TypeString:
		return "string"
	case TypeIntArray:
		return "int[]"
	case TypeDoubleArray:
		return "double[]"
	case TypeComplexArray:
		return "complex[]"
	case TypeIntGrid:
		return "int[][]"
	case TypeDoubleGrid:
		return "double[][]"
	case TypeComplexGrid:
		return "complex[][]"
	}
	return "unknown"
}

// typeFromBackend maps the native type tag to the public enum.
func typeFromBackend(t backend.Type) Type {
	switch t {
	case backend.TypeInt:
		return TypeInt
	case backend.TypeBool:
		return TypeBool
	case backend.TypeDouble:
		return TypeDouble
	case backend.TypeComplex:
		return TypeComplex
	case backend.TypeString:
		return TypeString
	case backend.TypeIntArray:
		return TypeIntArray
	case backend.TypeDoubleArray:
		return TypeDoubleArray
	case backend.TypeComplexArray:
		return TypeComplexArray
	case backend.TypeIntGrid:
		return TypeIntGrid
	case backend.TypeDoubleGrid:
		return TypeDoubleGrid
	case backend.TypeComplexGrid:
		return TypeComplexGrid
	}
	return TypeUnknown
}

// GridElem constrains the element kinds a Grid can hold. These are the three
// numeric kinds the native library stores as multidimensional arrays.
type GridElem interface {
	~int32 | ~float64 | ~complex128
}

// Grid is a dense row-major matrix exchanged with the native block. Data
// holds Rows*Cols elements; element (i, j) lives at Data[i*Cols+j].
type Grid[T GridElem] struct {
	Rows int
	Cols int
	Data []T
}

// NewGrid allocates a zeroed rows-by-cols grid.
func NewGrid[T GridElem](rows, cols int) *Grid[T] {
	return &Grid[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}
}

// At returns element (i, j). Indices are bounds-checked by the slice access.
func (g *Grid[T]) At(i, j int) T {
	return g.Data[i*g.Cols+j]
}

// Set assigns element (i, j).
func (g *Grid[T]) Set(i, j int, v T) {
	g.Data[i*g.Cols+j] = v
}

// validate checks that the declared dimensions agree with the backing slice.
func (g *Grid[T]) validate() error {
	if g == nil {
		return fmt.Errorf("nil grid")
	}
	if g.Rows < 0 || g.Cols < 0 || len(g.Data) != g.Rows*g.Cols {
		return fmt.Errorf("grid dimensions %dx%d do not match %d elements", g.Rows, g.Cols, len(g.Data))
	}
	return nil
}
