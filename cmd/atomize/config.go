package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/atomize/internal/atomize"
)

var k = koanf.New(".")

// configSections are the nested blocks of .atomize.yaml
var configSections = []string{"convert", "watch"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".atomize.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	flags := cmd.Flags()
	provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	})
	if err := k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ATOMIZE_* prefix)
	if err := k.Load(env.Provider("ATOMIZE_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps environment variables to config keys:
//
//	ATOMIZE_ENGINE                -> engine
//	ATOMIZE_CONVERT_OUTPUT_FORMAT -> convert.output-format
//	ATOMIZE_WATCH_DEBOUNCE_MS     -> watch.debounce-ms
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "ATOMIZE_"))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildTransformConfig constructs the library's Config struct from koanf state.
func buildTransformConfig() atomize.Config {
	return atomize.Config{
		Engine: getStringWithFallback("engine", "engine", atomize.EngineUnocss),
		IsRem:  getBoolWithFallback("rem", "rem", false),
		Prefix: getStringWithFallback("prefix", "prefix", ""),
	}
}

// convertOptions holds the CLI-only settings around a transformation
type convertOptions struct {
	OutputFormat atomize.OutputFormat
	Includes     []string
	Verbose      bool
	Quiet        bool
	UseColors    bool
}

// buildConvertOptions reads output and input settings from koanf state.
func buildConvertOptions() convertOptions {
	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := getStringWithFallback("output-format", "convert.output-format", string(atomize.OutputText))

	opts := convertOptions{
		OutputFormat: atomize.DetermineOutputFormat(format, quiet),
		Verbose:      getBoolWithFallback("verbose", "verbose", false),
		Quiet:        quiet,
		UseColors:    atomize.ShouldUseColors(getBoolWithFallback("color", "color", false)),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		opts.Includes = includes
	} else if includes := k.Strings("convert.include"); len(includes) > 0 {
		opts.Includes = includes
	} else {
		opts.Includes = atomize.DefaultIncludes
	}

	return opts
}

// buildWatchOptions reads watcher settings from koanf state.
func buildWatchOptions(includes []string) atomize.WatchOptions {
	ms := getIntWithFallback("debounce-ms", "watch.debounce-ms", int(atomize.DefaultDebounce/time.Millisecond))
	return atomize.WatchOptions{
		Includes: includes,
		Debounce: time.Duration(ms) * time.Millisecond,
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
