package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atomize [paths...]",
	Short: "Convert CSS declarations into UnoCSS or Tailwind utility classes",
	Long: `Convert CSS declarations copied from a design tool's inspector into
atomic utility classes for UnoCSS or Tailwind CSS.

Input is a declaration block (.css, .txt) or a JSON object of
property/value pairs (.json, .jsonc). Use "-" to read from stdin.`,
	// Default behavior: run convert when no subcommand is given.
	// We must call loadConfig here because PreRunE of convertCmd
	// is not triggered when delegating via rootCmd.RunE.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runConvert(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	f := rootCmd.PersistentFlags()
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.BoolP("quiet", "q", false, "Print only the class string")
	f.Bool("color", false, "Force color output")
	f.String("config", ".atomize.yaml", "Config file path")
	f.StringP("engine", "e", "", "Target engine: unocss|tailwind (default unocss)")
	f.Bool("rem", false, "Convert px lengths to rem")
	f.StringP("prefix", "p", "", "Prefix prepended to every class")
	f.StringP("output-format", "o", "", "Output format: text|explain|json|yaml|css|uno|mini (default text)")
	f.StringSlice("include", nil, "Glob patterns for input files when a directory is given")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
