package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/atomize/internal/atomize"
)

// stdinPath selects standard input as a source
const stdinPath = "-"

var convertCmd = &cobra.Command{
	Use:     "convert [paths...]",
	Aliases: []string{"c"},
	Short:   "Convert CSS declarations to utility classes",
	Long: `Convert declaration files to utility classes. Each path may be a file,
a directory (matched against --include) or "-" for stdin. Without paths
stdin is read.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	config := buildTransformConfig()
	if err := config.Validate(); err != nil {
		return err
	}

	opts := buildConvertOptions()
	logger := newLogger(opts.Verbose, opts.Quiet)
	defer func() { _ = logger.Sync() }()

	if len(args) == 0 {
		args = []string{stdinPath}
	}

	conversions, err := convertPaths(cmd.InOrStdin(), args, config, opts, logger)
	if len(conversions) > 0 {
		if werr := atomize.WriteOutput(cmd.OutOrStdout(), conversions, opts.OutputFormat, opts.UseColors, atomize.WithLogger(logger)); werr != nil {
			err = multierr.Append(err, werr)
		}
	}
	return err
}

// convertPaths converts every input reachable from paths. Failures are
// collected so one bad file does not stop the others.
func convertPaths(stdin io.Reader, paths []string, config atomize.Config, opts convertOptions, logger *zap.Logger) ([]atomize.Conversion, error) {
	var (
		conversions []atomize.Conversion
		errs        error
	)

	for _, path := range paths {
		if path == stdinPath {
			style, err := atomize.ReadStyleMap(stdin, "")
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("stdin: %w", err))
				continue
			}
			conversions = append(conversions, atomize.Convert("", style, config, atomize.WithLogger(logger)))
			continue
		}

		files, err := atomize.ScanInputs(path, opts.Includes)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if len(files) == 0 {
			logger.Warn("no input files found", zap.String("path", path), zap.Strings("include", opts.Includes))
			continue
		}

		explicit := len(files) == 1 && files[0] == path
		for _, file := range files {
			c, err := convertFile(file, config, logger)
			switch {
			case err == nil:
				conversions = append(conversions, c)
			case !explicit && errors.Is(err, atomize.ErrEmptyInput):
				logger.Debug("skipping file without declarations", zap.String("file", file))
			default:
				errs = multierr.Append(errs, err)
			}
		}
	}

	return conversions, errs
}

func convertFile(path string, config atomize.Config, logger *zap.Logger) (atomize.Conversion, error) {
	style, err := atomize.LoadStyleMap(path)
	if err != nil {
		return atomize.Conversion{}, err
	}

	c := atomize.Convert(path, style, config, atomize.WithLogger(logger))
	logger.Debug("converted file",
		zap.String("file", path),
		zap.Int("declarations", len(style)),
		zap.Int("skipped", len(c.Result.Skipped)))
	return c, nil
}
