package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cosmosis/cosmosis-go/pkg/datablock"
	"github.com/cosmosis/cosmosis-go/pkg/datablock/logging"
)

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Build a datablock from a YAML file and dump its contents",
	Long: `Reads a two-level YAML mapping of section -> name -> value and puts each
value into a fresh datablock, then dumps the resulting sections, keys, types
and values. Supported value kinds: integers, floats, booleans, strings, and
homogeneous lists of integers or floats.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		entries, err := parseSeed(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		log := logging.New(slog.Default()).With("file", args[0])
		log.Debug(cmd.Context(), "parsed seed file", "entries", len(entries))

		b, err := datablock.New()
		if err != nil {
			if errors.Is(err, datablock.ErrNotBuilt) {
				fmt.Fprintln(cmd.OutOrStdout(), "native library not built; nothing to do")
				return nil
			}
			return err
		}
		defer b.Close()

		if err := applySeed(cmd.Context(), log, b, entries); err != nil {
			return err
		}
		log.Info(cmd.Context(), "datablock seeded", "entries", len(entries))
		return dumpBlock(cmd.OutOrStdout(), b)
	},
}

// seedEntry is one (section, name, value) triple in file order.
type seedEntry struct {
	Section string
	Name    string
	Value   any // int, bool, float64, string, []int32, or []float64
}

// parseSeed reads a two-level YAML mapping into entries, preserving document
// order so that section creation order matches the file.
func parseSeed(r io.Reader) ([]seedEntry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping of sections")
	}

	var entries []seedEntry
	for i := 0; i+1 < len(root.Content); i += 2 {
		section := root.Content[i].Value
		values := root.Content[i+1]
		if values.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("section %q must be a mapping of names to values", section)
		}
		for j := 0; j+1 < len(values.Content); j += 2 {
			name := values.Content[j].Value
			v, err := parseValue(values.Content[j+1])
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", section, name, err)
			}
			entries = append(entries, seedEntry{Section: section, Name: name, Value: v})
		}
	}
	return entries, nil
}

// parseValue converts a YAML node to one of the supported kinds.
func parseValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		switch x := v.(type) {
		case int:
			if err := checkIntRange(x); err != nil {
				return nil, err
			}
			return x, nil
		case bool, float64, string:
			return v, nil
		}
		return nil, fmt.Errorf("unsupported scalar %q", n.Value)
	case yaml.SequenceNode:
		var raw []any
		if err := n.Decode(&raw); err != nil {
			return nil, err
		}
		ints := make([]int32, 0, len(raw))
		floats := make([]float64, 0, len(raw))
		allInt := true
		for _, e := range raw {
			switch x := e.(type) {
			case int:
				if err := checkIntRange(x); err != nil {
					return nil, err
				}
				ints = append(ints, int32(x))
				floats = append(floats, float64(x))
			case float64:
				allInt = false
				floats = append(floats, x)
			default:
				return nil, fmt.Errorf("lists must be numeric, got %T", e)
			}
		}
		if allInt {
			return ints, nil
		}
		return floats, nil
	}
	return nil, fmt.Errorf("unsupported value kind")
}

// checkIntRange rejects integers a datablock cannot store without
// truncation; the native store holds 32-bit integers.
func checkIntRange(v int) error {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return fmt.Errorf("integer %d outside 32-bit range", v)
	}
	return nil
}

// applySeed puts every entry into the block through the typed API.
func applySeed(ctx context.Context, log logging.Logger, b *datablock.DataBlock, entries []seedEntry) error {
	for _, e := range entries {
		log.Debug(ctx, "seeding entry", logging.Key(e.Section, e.Name))
		var err error
		switch v := e.Value.(type) {
		case int:
			err = b.PutInt(e.Section, e.Name, v)
		case bool:
			err = b.PutBool(e.Section, e.Name, v)
		case float64:
			err = b.PutDouble(e.Section, e.Name, v)
		case string:
			err = b.PutString(e.Section, e.Name, v)
		case []int32:
			err = b.PutIntArray(e.Section, e.Name, v)
		case []float64:
			err = b.PutDoubleArray(e.Section, e.Name, v)
		default:
			err = fmt.Errorf("unsupported value type %T", v)
		}
		if err != nil {
			return fmt.Errorf("put %s/%s: %w", e.Section, e.Name, err)
		}
	}
	return nil
}

// dumpBlock writes every entry of the block, section by section.
func dumpBlock(w io.Writer, b *datablock.DataBlock) error {
	sections, err := b.Sections()
	if err != nil {
		return err
	}
	sort.Strings(sections)
	for _, section := range sections {
		fmt.Fprintf(w, "[%s]\n", section)
		keys, err := b.Keys(section)
		if err != nil {
			return err
		}
		sort.Strings(keys)
		for _, name := range keys {
			ty, err := b.TypeOf(section, name)
			if err != nil {
				return err
			}
			val, err := formatValue(b, section, name, ty)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  %s (%s) = %s\n", name, ty, val)
		}
	}
	return nil
}

func formatValue(b *datablock.DataBlock, section, name string, ty datablock.Type) (string, error) {
	switch ty {
	case datablock.TypeInt:
		v, err := b.GetInt(section, name)
		return fmt.Sprint(v), err
	case datablock.TypeBool:
		v, err := b.GetBool(section, name)
		return fmt.Sprint(v), err
	case datablock.TypeDouble:
		v, err := b.GetDouble(section, name)
		return fmt.Sprint(v), err
	case datablock.TypeComplex:
		v, err := b.GetComplex(section, name)
		return fmt.Sprint(v), err
	case datablock.TypeString:
		v, err := b.GetString(section, name)
		return fmt.Sprintf("%q", v), err
	case datablock.TypeIntArray:
		v, err := b.GetIntArray(section, name)
		return strings.Trim(fmt.Sprint(v), "[]"), err
	case datablock.TypeDoubleArray:
		v, err := b.GetDoubleArray(section, name)
		return strings.Trim(fmt.Sprint(v), "[]"), err
	case datablock.TypeComplexArray:
		v, err := b.GetComplexArray(section, name)
		return strings.Trim(fmt.Sprint(v), "[]"), err
	}
	return "<" + ty.String() + ">", nil
}
