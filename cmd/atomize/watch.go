package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/atomize/internal/atomize"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-convert input files whenever they change",
	Long: `Convert every input file below a directory, then keep watching it and
print the new classes each time a file is saved. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Int("debounce-ms", 0, "Quiet period in milliseconds before a change is converted (default 200)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	config := buildTransformConfig()
	if err := config.Validate(); err != nil {
		return err
	}

	opts := buildConvertOptions()
	logger := newLogger(opts.Verbose, opts.Quiet)
	defer func() { _ = logger.Sync() }()

	root := args[0]
	out := cmd.OutOrStdout()

	// Initial pass so the current state is visible before the first save
	conversions, err := convertPaths(nil, []string{root}, config, opts, logger)
	if err != nil {
		logger.Warn("initial conversion", zap.Error(err))
	}
	if err := atomize.WriteOutput(out, conversions, opts.OutputFormat, opts.UseColors); err != nil {
		return err
	}

	// Debounce timers for different files fire concurrently
	var mu sync.Mutex
	onChange := func(path string) {
		mu.Lock()
		defer mu.Unlock()

		c, err := convertFile(path, config, logger)
		if err != nil {
			logger.Warn("conversion failed", zap.String("file", path), zap.Error(err))
			return
		}
		if err := atomize.WriteOutput(out, []atomize.Conversion{c}, opts.OutputFormat, opts.UseColors); err != nil {
			logger.Error("writing output", zap.Error(err))
		}
	}

	watcher, err := atomize.NewWatcher(root, buildWatchOptions(opts.Includes), onChange, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watcher.Run(ctx)
}

func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
