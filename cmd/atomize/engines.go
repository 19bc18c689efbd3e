package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/atomize/internal/atomize"
	"github.com/yacobolo/atomize/internal/engine"
)

var enginesCmd = &cobra.Command{
	Use:   "engines",
	Short: "List the supported class engines",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		current := buildTransformConfig().Engine
		useColors := atomize.ShouldUseColors(getBoolWithFallback("color", "color", false))

		for _, name := range engine.Names() {
			line := "  " + name
			if name == current {
				line = "* " + atomize.RenderStyle(atomize.StyleGreen, name, useColors)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}
