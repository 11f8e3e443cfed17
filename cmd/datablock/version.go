package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmosis/cosmosis-go/pkg/datablock"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wrapper version and native build mode",
	Run: func(cmd *cobra.Command, args []string) {
		native := "disabled"
		if datablock.NativeEnabled() {
			native = "enabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cosmosis-go %s (native bindings %s)\n",
			datablock.WrapperVersion(), native)
	},
}
