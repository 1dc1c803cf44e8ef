// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/assignment"
	"github.com/katalvlaran/bimatch/bipartite"
)

type solveFlags struct {
	maximize    bool
	objective   string
	inputFormat string
	format      string
	timeout     time.Duration
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	f := &solveFlags{}

	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve one adjacency document and print the pairing",
		Long: `Read an adjacency document from file (or stdin when omitted or "-"),
split it into its two sides, solve the assignment problem and print
{"assignment": {left: right, ...}, "weight": total}.

Exit codes: 0 success, 1 input cannot be matched, 2 command error.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			return runSolve(cmd, rootOpts, f, path)
		},
	}

	cmd.Flags().BoolVar(&f.maximize, "maximize", false, "maximize total weight (shorthand for --objective max)")
	cmd.Flags().StringVar(&f.objective, "objective", "", "min|max (default from config)")
	cmd.Flags().StringVarP(&f.inputFormat, "input-format", "i", "", "json|yaml (default from config)")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "json|yaml|text (default from config)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "abort the solve after this long (default from config)")

	return cmd
}

func runSolve(cmd *cobra.Command, opts *RootOptions, f *solveFlags, path string) error {
	cfg := opts.Config
	log := opts.Logger

	objective := cfg.ObjectiveValue()
	if f.objective != "" {
		o, err := assignment.ParseObjective(f.objective)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --objective", err)
		}
		objective = o
	}
	if f.maximize {
		objective = assignment.Maximize
	}

	inFmt, err := bipartite.ParseFormat(firstNonEmpty(f.inputFormat, cfg.InputFormat))
	if err == nil && inFmt == bipartite.FormatText {
		err = fmt.Errorf("%w: text is output-only", bipartite.ErrUnknownFormat)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --input-format", err)
	}
	outFmt, err := bipartite.ParseFormat(firstNonEmpty(f.format, cfg.Format))
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --format", err)
	}

	timeout := cfg.Timeout
	if f.timeout > 0 {
		timeout = f.timeout
	}

	r, closeFn, err := openInput(cmd, path)
	if err != nil {
		return WrapExitError(ExitCommandError, "open input", err)
	}
	defer closeFn()

	in, err := bipartite.Decode(r, inFmt)
	if err != nil {
		return matchExit(err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	rep, err := bipartite.Match(ctx, in, objective)
	if err != nil {
		log.Debug("match failed", zap.String("input", path), zap.Error(err))
		return matchExit(err)
	}
	log.Debug("matched",
		zap.String("input", path),
		zap.String("objective", objective.String()),
		zap.Int("pairs", len(rep.Assignment)),
		zap.Float64("weight", rep.Weight),
		zap.Duration("elapsed", time.Since(start)),
	)

	if err = bipartite.Write(cmd.OutOrStdout(), rep, outFmt); err != nil {
		return WrapExitError(ExitCommandError, "write report", err)
	}

	return nil
}

// openInput returns the file at path, or the command's stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return fh, func() { _ = fh.Close() }, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}

	return ""
}
