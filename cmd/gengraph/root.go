// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gengraph/config"
	"github.com/katalvlaran/gengraph/edgelist"
)

// runner carries flag values and the logger for one command invocation.
type runner struct {
	out    io.Writer
	logger *zap.Logger
	level  *zap.AtomicLevel // nil when the logger was injected

	input      string
	configPath string
	verbose    bool
}

// newRootCmd builds the gengraph command writing generated code to out.
// A nil logger is replaced by a zap production logger on stderr.
func newRootCmd(out io.Writer, logger *zap.Logger) *cobra.Command {
	r := &runner{out: out, logger: logger}

	cmd := &cobra.Command{
		Use:   "gengraph",
		Short: "Generate C++ adjacency-list code from an edge list",
		Long: `gengraph reads a plain-text edge list and prints C++ statements that
populate an adjacency-list array.

Input lines:
  (blank)        copied as a blank line
  # comment      rewritten as // comment (one // per leading #)
  A B            graph[A].push_back(B); and graph[B].push_back(A);

With no flags it reads ./map.txt and writes to stdout.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if r.logger != nil {
				_ = r.logger.Sync()
			}
		},
		RunE: r.run,
	}

	cmd.Flags().StringVarP(&r.input, "input", "i", "", "edge list to read (default \"map.txt\")")
	cmd.Flags().StringVarP(&r.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().BoolVarP(&r.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func (r *runner) initLogger() error {
	if r.logger != nil {
		return nil
	}
	zc := zap.NewProductionConfig()
	if r.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	r.logger = logger
	r.level = &zc.Level

	return nil
}

func (r *runner) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(r.configPath)
	if err != nil {
		r.logger.Error("load config", zap.String("path", r.configPath), zap.Error(err))
		return err
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = r.input
	}
	if r.verbose {
		cfg.Verbose = true
	}
	if cfg.Verbose && r.level != nil {
		r.level.SetLevel(zapcore.DebugLevel)
	}
	if err := cfg.Validate(); err != nil {
		r.logger.Error("invalid config", zap.Error(err))
		return err
	}

	opts := append(cfg.Options(), edgelist.WithLogger(r.logger))
	stats, err := edgelist.TransduceFile(cfg.Input, r.out, opts...)
	if err != nil {
		var fe *edgelist.FormatError
		if errors.As(err, &fe) {
			r.logger.Error("malformed edge line",
				zap.String("path", cfg.Input),
				zap.Int("line", fe.Number),
				zap.Int("tokens", fe.Tokens),
				zap.String("raw", fe.Raw))
		} else {
			r.logger.Error("generate graph", zap.String("path", cfg.Input), zap.Error(err))
		}
		return err
	}

	r.logger.Debug("graph generated",
		zap.String("path", cfg.Input),
		zap.Int("blank", stats.Blank),
		zap.Int("comment", stats.Comment),
		zap.Int("edge", stats.Edge),
		zap.Int("output", stats.Output))

	return nil
}
