package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .atomize.yaml config file",
	Long:  `Create a .atomize.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".atomize.yaml"); err == nil && !force {
			return fmt.Errorf(".atomize.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".atomize.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .atomize.yaml")
		return nil
	},
}

const defaultConfig = `# atomize configuration
# Docs: https://github.com/yacobolo/atomize

# Shared settings
engine: unocss             # unocss | tailwind
rem: false                 # convert px lengths to rem
prefix: ""                 # prepended to every class
verbose: false

# Conversion settings
convert:
  output-format: text      # text | explain | json | yaml | css | uno | mini
  include:
    - "**/*.css"
    - "**/*.json"
    - "**/*.jsonc"

# Watch mode settings
watch:
  debounce-ms: 200
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
