// SPDX-License-Identifier: MIT

// Package cli implements the bimatch command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bimatch/internal/config"
)

// RootOptions holds global flags and the state shared by all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	// Config is loaded in PersistentPreRunE.
	Config config.Config

	// Logger writes to stderr. Tests may preset it.
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the bimatch CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bimatch",
		Short: "bimatch - optimal weighted bipartite matching",
		Long: `bimatch pairs the two sides of a weighted bipartite graph one-to-one
so that the total weight is minimal (or maximal), using the Hungarian method.

Input is a document mapping each node to its weighted neighbours:

  {"alice": {"db": 3, "web": 1}, "bob": {"db": 2, "web": 4}}`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "load config", err)
			}
			opts.Config = cfg

			if opts.Logger == nil {
				if opts.Logger, err = newLogger(cfg.LogLevel, opts.Verbose); err != nil {
					return WrapExitError(ExitCommandError, "init logger", err)
				}
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// newLogger builds a production JSON logger on stderr.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zc.Level = lvl
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return zc.Build()
}
