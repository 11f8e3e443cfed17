//go:build cgo && !windows

package datablock_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cosmosis/cosmosis-go/pkg/datablock"
)

func newBlock(t *testing.T) *datablock.DataBlock {
	t.Helper()
	b, err := datablock.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestScalarRoundTrip(t *testing.T) {
	b := newBlock(t)

	if err := b.PutInt("params", "n", 42); err != nil {
		t.Fatalf("PutInt failed: %v", err)
	}
	if v, err := b.GetInt("params", "n"); err != nil || v != 42 {
		t.Errorf("GetInt = %d, %v", v, err)
	}

	if err := b.PutBool("params", "flat", true); err != nil {
		t.Fatalf("PutBool failed: %v", err)
	}
	if v, err := b.GetBool("params", "flat"); err != nil || !v {
		t.Errorf("GetBool = %v, %v", v, err)
	}

	if err := b.PutDouble("params", "h0", 0.72); err != nil {
		t.Fatalf("PutDouble failed: %v", err)
	}
	if v, err := b.GetDouble("params", "h0"); err != nil || v != 0.72 {
		t.Errorf("GetDouble = %v, %v", v, err)
	}

	if err := b.PutComplex("params", "z", complex(1.5, -2.5)); err != nil {
		t.Fatalf("PutComplex failed: %v", err)
	}
	if v, err := b.GetComplex("params", "z"); err != nil || v != complex(1.5, -2.5) {
		t.Errorf("GetComplex = %v, %v", v, err)
	}

	if err := b.PutString("params", "name", "planck_2018"); err != nil {
		t.Fatalf("PutString failed: %v", err)
	}
	if v, err := b.GetString("params", "name"); err != nil || v != "planck_2018" {
		t.Errorf("GetString = %q, %v", v, err)
	}
}

func TestArrayRoundTrip(t *testing.T) {
	b := newBlock(t)

	ints := []int32{1, 2, 3}
	if err := b.PutIntArray("arrays", "ell", ints); err != nil {
		t.Fatalf("PutIntArray failed: %v", err)
	}
	got, err := b.GetIntArray("arrays", "ell")
	if err != nil {
		t.Fatalf("GetIntArray failed: %v", err)
	}
	if diff := cmp.Diff(ints, got); diff != "" {
		t.Errorf("int array mismatch (-want +got):\n%s", diff)
	}

	doubles := []float64{0.1, 0.2, 0.3, 0.4}
	if err := b.PutDoubleArray("arrays", "z", doubles); err != nil {
		t.Fatalf("PutDoubleArray failed: %v", err)
	}
	gotD, err := b.GetDoubleArray("arrays", "z")
	if err != nil {
		t.Fatalf("GetDoubleArray failed: %v", err)
	}
	if diff := cmp.Diff(doubles, gotD); diff != "" {
		t.Errorf("double array mismatch (-want +got):\n%s", diff)
	}

	n, err := b.ArrayLength("arrays", "z")
	if err != nil || n != 4 {
		t.Errorf("ArrayLength = %d, %v", n, err)
	}

	cplx := []complex128{complex(1, 2), complex(3, 4)}
	if err := b.PutComplexArray("arrays", "fft", cplx); err != nil {
		t.Fatalf("PutComplexArray failed: %v", err)
	}
	gotC, err := b.GetComplexArray("arrays", "fft")
	if err != nil {
		t.Fatalf("GetComplexArray failed: %v", err)
	}
	if diff := cmp.Diff(cplx, gotC); diff != "" {
		t.Errorf("complex array mismatch (-want +got):\n%s", diff)
	}
}

func TestDoubleArrayInto(t *testing.T) {
	b := newBlock(t)

	vals := []float64{1, 2, 3}
	if err := b.PutDoubleArray("arrays", "pk", vals); err != nil {
		t.Fatalf("PutDoubleArray failed: %v", err)
	}

	dst := make([]float64, 3)
	if err := b.GetDoubleArrayInto("arrays", "pk", dst); err != nil {
		t.Fatalf("GetDoubleArrayInto failed: %v", err)
	}
	if diff := cmp.Diff(vals, dst); diff != "" {
		t.Errorf("buffer mismatch (-want +got):\n%s", diff)
	}

	short := make([]float64, 2)
	if err := b.GetDoubleArrayInto("arrays", "pk", short); !errors.Is(err, datablock.ErrShape) {
		t.Errorf("short buffer: got %v, want ErrShape", err)
	}

	long := make([]float64, 5)
	if err := b.GetDoubleArrayInto("arrays", "pk", long); !errors.Is(err, datablock.ErrShape) {
		t.Errorf("oversized buffer: got %v, want ErrShape", err)
	}
}

func TestGridRoundTrip(t *testing.T) {
	b := newBlock(t)

	g := datablock.NewGrid[float64](2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			g.Set(i, j, float64(i*10+j))
		}
	}
	if err := b.PutDoubleGrid("grids", "pk", g); err != nil {
		t.Fatalf("PutDoubleGrid failed: %v", err)
	}

	got, err := b.GetDoubleGrid("grids", "pk")
	if err != nil {
		t.Fatalf("GetDoubleGrid failed: %v", err)
	}
	if got.Rows != 2 || got.Cols != 3 {
		t.Fatalf("grid shape = %dx%d, want 2x3", got.Rows, got.Cols)
	}
	if diff := cmp.Diff(g.Data, got.Data); diff != "" {
		t.Errorf("grid data mismatch (-want +got):\n%s", diff)
	}

	bad := &datablock.Grid[float64]{Rows: 2, Cols: 2, Data: make([]float64, 3)}
	if err := b.PutDoubleGrid("grids", "bad", bad); !errors.Is(err, datablock.ErrShape) {
		t.Errorf("inconsistent grid: got %v, want ErrShape", err)
	}
}

func TestIntAndComplexGrids(t *testing.T) {
	b := newBlock(t)

	ig := datablock.NewGrid[int32](2, 2)
	ig.Set(0, 0, 7)
	ig.Set(1, 1, -7)
	if err := b.PutIntGrid("grids", "mask", ig); err != nil {
		t.Fatalf("PutIntGrid failed: %v", err)
	}
	gotI, err := b.GetIntGrid("grids", "mask")
	if err != nil {
		t.Fatalf("GetIntGrid failed: %v", err)
	}
	if diff := cmp.Diff(ig.Data, gotI.Data); diff != "" {
		t.Errorf("int grid mismatch (-want +got):\n%s", diff)
	}

	cg := datablock.NewGrid[complex128](1, 2)
	cg.Set(0, 0, complex(1, 1))
	cg.Set(0, 1, complex(-1, 2))
	if err := b.PutComplexGrid("grids", "vis", cg); err != nil {
		t.Fatalf("PutComplexGrid failed: %v", err)
	}
	gotC, err := b.GetComplexGrid("grids", "vis")
	if err != nil {
		t.Fatalf("GetComplexGrid failed: %v", err)
	}
	if diff := cmp.Diff(cg.Data, gotC.Data); diff != "" {
		t.Errorf("complex grid mismatch (-want +got):\n%s", diff)
	}
}

func TestPutIsInsertOnly(t *testing.T) {
	b := newBlock(t)

	if err := b.PutDouble("params", "sigma8", 0.8); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := b.PutDouble("params", "sigma8", 0.9); !errors.Is(err, datablock.ErrAlreadyExists) {
		t.Errorf("second Put: got %v, want ErrAlreadyExists", err)
	}
	if err := b.ReplaceDouble("params", "sigma8", 0.9); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if v, _ := b.GetDouble("params", "sigma8"); v != 0.9 {
		t.Errorf("after Replace, value = %v, want 0.9", v)
	}
}

func TestReplaceAbsentFails(t *testing.T) {
	b := newBlock(t)
	if err := b.ReplaceDouble("params", "missing", 1.0); !errors.Is(err, datablock.ErrNotFound) {
		t.Errorf("Replace on absent key: got %v, want ErrNotFound", err)
	}
}

func TestGetAbsentFails(t *testing.T) {
	b := newBlock(t)
	if _, err := b.GetDouble("params", "missing"); !errors.Is(err, datablock.ErrNotFound) {
		t.Errorf("Get on absent key: got %v, want ErrNotFound", err)
	}
	if _, err := b.GetDoubleArray("params", "missing"); !errors.Is(err, datablock.ErrNotFound) {
		t.Errorf("array Get on absent key: got %v, want ErrNotFound", err)
	}
}

func TestTypeSafety(t *testing.T) {
	b := newBlock(t)

	if err := b.PutDouble("params", "omega_m", 0.3); err != nil {
		t.Fatalf("PutDouble failed: %v", err)
	}
	if _, err := b.GetInt("params", "omega_m"); !errors.Is(err, datablock.ErrTypeMismatch) {
		t.Errorf("GetInt on double: got %v, want ErrTypeMismatch", err)
	}
	if _, err := b.GetString("params", "omega_m"); !errors.Is(err, datablock.ErrTypeMismatch) {
		t.Errorf("GetString on double: got %v, want ErrTypeMismatch", err)
	}
	if _, err := b.GetDoubleArray("params", "omega_m"); !errors.Is(err, datablock.ErrTypeMismatch) {
		t.Errorf("array Get on scalar: got %v, want ErrTypeMismatch", err)
	}
	if err := b.ReplaceInt("params", "omega_m", 1); !errors.Is(err, datablock.ErrTypeMismatch) {
		t.Errorf("ReplaceInt on double: got %v, want ErrTypeMismatch", err)
	}

	ty, err := b.TypeOf("params", "omega_m")
	if err != nil || ty != datablock.TypeDouble {
		t.Errorf("TypeOf = %v, %v", ty, err)
	}
	if _, err := b.TypeOf("params", "missing"); !errors.Is(err, datablock.ErrNotFound) {
		t.Errorf("TypeOf on absent key: got %v, want ErrNotFound", err)
	}
}

func TestExistenceConsistency(t *testing.T) {
	b := newBlock(t)

	if b.HasValue("params", "omega_m") {
		t.Error("HasValue true before Put")
	}
	if err := b.PutDouble("params", "omega_m", 0.3); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if !b.HasValue("params", "omega_m") {
		t.Error("HasValue false after Put")
	}
	if !b.HasSection("params") {
		t.Error("HasSection false after Put")
	}
	if b.HasSection("other") {
		t.Error("HasSection true for untouched section")
	}
}

func TestListingCompleteness(t *testing.T) {
	b := newBlock(t)

	if err := b.PutDouble("cosmological_parameters", "omega_m", 0.3); err != nil {
		t.Fatal(err)
	}
	if err := b.PutDouble("cosmological_parameters", "h0", 0.7); err != nil {
		t.Fatal(err)
	}
	if err := b.PutInt("likelihoods", "count", 2); err != nil {
		t.Fatal(err)
	}
	// Repeated writes to an existing key must not duplicate listings.
	if err := b.ReplaceDouble("cosmological_parameters", "omega_m", 0.31); err != nil {
		t.Fatal(err)
	}

	sections, err := b.Sections()
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	wantSections := map[string]bool{"cosmological_parameters": true, "likelihoods": true}
	if len(sections) != len(wantSections) {
		t.Fatalf("Sections = %v, want exactly %v", sections, wantSections)
	}
	for _, s := range sections {
		if !wantSections[s] {
			t.Errorf("unexpected section %q", s)
		}
	}

	keys, err := b.Keys("cosmological_parameters")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	wantKeys := map[string]bool{"omega_m": true, "h0": true}
	if len(keys) != len(wantKeys) {
		t.Fatalf("Keys = %v, want exactly %v", keys, wantKeys)
	}
	for _, k := range keys {
		if !wantKeys[k] {
			t.Errorf("unexpected key %q", k)
		}
	}

	if _, err := b.Keys("nonexistent"); !errors.Is(err, datablock.ErrNotFound) {
		t.Errorf("Keys on absent section: got %v, want ErrNotFound", err)
	}
}

func TestCloseGuardsOperations(t *testing.T) {
	b, err := datablock.New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := b.PutDouble("params", "x", 1.0); err != nil {
		t.Fatal(err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := b.GetDouble("params", "x"); !errors.Is(err, datablock.ErrClosed) {
		t.Errorf("Get after Close: got %v, want ErrClosed", err)
	}
	if err := b.PutDouble("params", "y", 2.0); !errors.Is(err, datablock.ErrClosed) {
		t.Errorf("Put after Close: got %v, want ErrClosed", err)
	}
	if _, err := b.Sections(); !errors.Is(err, datablock.ErrClosed) {
		t.Errorf("Sections after Close: got %v, want ErrClosed", err)
	}
	if b.HasValue("params", "x") {
		t.Error("HasValue true after Close")
	}

	// Second Close is a no-op, not a double free.
	if err := b.Close(); err != nil {
		t.Errorf("second Close = %v, want nil", err)
	}
}

func TestClone(t *testing.T) {
	b := newBlock(t)
	if err := b.PutDouble("params", "x", 1.5); err != nil {
		t.Fatal(err)
	}

	c, err := b.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	defer c.Close()

	if v, err := c.GetDouble("params", "x"); err != nil || v != 1.5 {
		t.Errorf("clone GetDouble = %v, %v", v, err)
	}

	// The clone is independent; writes to it do not affect the original.
	if err := c.PutDouble("params", "y", 2.5); err != nil {
		t.Fatal(err)
	}
	if b.HasValue("params", "y") {
		t.Error("write to clone leaked into original")
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	b := newBlock(t)
	if err := b.PutDouble("", "x", 1.0); !errors.Is(err, datablock.ErrInvalidKey) {
		t.Errorf("empty section: got %v, want ErrInvalidKey", err)
	}
	if err := b.PutDouble("params", "", 1.0); !errors.Is(err, datablock.ErrInvalidKey) {
		t.Errorf("empty name: got %v, want ErrInvalidKey", err)
	}
}

// The workflow from the project README: put, re-put, replace, get.
func TestNativeEnabled(t *testing.T) {
	if !datablock.NativeEnabled() {
		t.Error("cgo build reported native bindings disabled")
	}
}

func TestIntRangeRejected(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int to hold an out-of-range value")
	}
	b := newBlock(t)

	if err := b.PutInt("params", "n", math.MaxInt32); err != nil {
		t.Fatalf("PutInt at limit failed: %v", err)
	}
	if v, err := b.GetInt("params", "n"); err != nil || v != math.MaxInt32 {
		t.Errorf("GetInt = %d, %v", v, err)
	}

	wide := int(int64(math.MaxInt32) + 1)
	if err := b.PutInt("params", "wide", wide); !errors.Is(err, datablock.ErrRange) {
		t.Errorf("PutInt(%d) = %v, want ErrRange", wide, err)
	}
	if b.HasValue("params", "wide") {
		t.Error("rejected PutInt left a value behind")
	}

	narrow := int(int64(math.MinInt32) - 1)
	if err := b.ReplaceInt("params", "n", narrow); !errors.Is(err, datablock.ErrRange) {
		t.Errorf("ReplaceInt(%d) = %v, want ErrRange", narrow, err)
	}
	if v, err := b.GetInt("params", "n"); err != nil || v != math.MaxInt32 {
		t.Errorf("GetInt after rejected replace = %d, %v", v, err)
	}
}

func TestParameterUpdateScenario(t *testing.T) {
	b := newBlock(t)

	if err := b.PutDouble("cosmological_parameters", "omega_m", 0.3); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	v, err := b.GetDouble("cosmological_parameters", "omega_m")
	if err != nil || v != 0.3 {
		t.Fatalf("Get = %v, %v, want 0.3", v, err)
	}

	if err := b.PutDouble("cosmological_parameters", "omega_m", 0.31); !errors.Is(err, datablock.ErrAlreadyExists) {
		t.Fatalf("re-Put: got %v, want ErrAlreadyExists", err)
	}
	if err := b.ReplaceDouble("cosmological_parameters", "omega_m", 0.31); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	v, err = b.GetDouble("cosmological_parameters", "omega_m")
	if err != nil || v != 0.31 {
		t.Fatalf("Get after Replace = %v, %v, want 0.31", v, err)
	}
}
