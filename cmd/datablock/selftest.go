package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmosis/cosmosis-go/pkg/datablock"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Exercise the binding against the installed native library",
	Long: `Runs a short put/get/replace round trip through every marshalling path to
confirm that the installed libcosmosis and this binding agree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := datablock.New()
		if err != nil {
			if errors.Is(err, datablock.ErrNotBuilt) {
				fmt.Fprintln(cmd.OutOrStdout(), "native library not built; nothing to test")
				return nil
			}
			return err
		}
		defer b.Close()

		const section = "cosmological_parameters"
		if err := b.PutDouble(section, "omega_m", 0.3); err != nil {
			return fmt.Errorf("put: %w", err)
		}
		if v, err := b.GetDouble(section, "omega_m"); err != nil || v != 0.3 {
			return fmt.Errorf("get returned %v, %v", v, err)
		}
		if err := b.PutDouble(section, "omega_m", 0.31); !errors.Is(err, datablock.ErrAlreadyExists) {
			return fmt.Errorf("re-put returned %v, want ErrAlreadyExists", err)
		}
		if err := b.ReplaceDouble(section, "omega_m", 0.31); err != nil {
			return fmt.Errorf("replace: %w", err)
		}
		if v, err := b.GetDouble(section, "omega_m"); err != nil || v != 0.31 {
			return fmt.Errorf("get after replace returned %v, %v", v, err)
		}
		if _, err := b.GetInt(section, "omega_m"); !errors.Is(err, datablock.ErrTypeMismatch) {
			return fmt.Errorf("cross-type get returned %v, want ErrTypeMismatch", err)
		}

		if err := b.PutDoubleArray(section, "z", []float64{0.1, 0.2, 0.3}); err != nil {
			return fmt.Errorf("put array: %w", err)
		}
		if got, err := b.GetDoubleArray(section, "z"); err != nil || len(got) != 3 {
			return fmt.Errorf("get array returned %v, %v", got, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "selftest ok")
		return nil
	},
}
