package main

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseSeed(t *testing.T) {
	in := `
cosmological_parameters:
  omega_m: 0.3
  n_massive: 1
  flat: true
  label: planck
distances:
  z: [0.1, 0.2, 0.5]
  bins: [1, 2, 3]
`
	entries, err := parseSeed(strings.NewReader(in))
	require.NoError(t, err)

	want := []seedEntry{
		{"cosmological_parameters", "omega_m", 0.3},
		{"cosmological_parameters", "n_massive", 1},
		{"cosmological_parameters", "flat", true},
		{"cosmological_parameters", "label", "planck"},
		{"distances", "z", []float64{0.1, 0.2, 0.5}},
		{"distances", "bins", []int32{1, 2, 3}},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSeedMixedListPromotesToFloat(t *testing.T) {
	entries, err := parseSeed(strings.NewReader("s:\n  v: [1, 2.5]\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, []float64{1, 2.5}, entries[0].Value)
}

func TestParseSeedRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"top level list":   "- a\n- b\n",
		"scalar section":   "section: 3\n",
		"nested mapping":   "s:\n  v:\n    deep: 1\n",
		"non-numeric list": "s:\n  v: [a, b]\n",
		"null scalar":      "s:\n  v: ~\n",
	}
	for name, in := range cases {
		if _, err := parseSeed(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestParseSeedRejectsWideIntegers(t *testing.T) {
	cases := map[string]string{
		"scalar":                "s:\n  v: 3000000000\n",
		"list element":          "s:\n  v: [3000000000]\n",
		"negative list element": "s:\n  v: [1, -3000000000]\n",
	}
	for name, in := range cases {
		if _, err := parseSeed(strings.NewReader(in)); err == nil {
			t.Errorf("%s: expected error, values wider than 32 bits cannot be stored", name)
		}
	}

	entries, err := parseSeed(strings.NewReader("s:\n  v: [2147483647, -2147483648]\n"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, []int32{math.MaxInt32, math.MinInt32}, entries[0].Value)
}

func TestParseSeedEmpty(t *testing.T) {
	entries, err := parseSeed(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, entries)
}
