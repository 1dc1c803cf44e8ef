// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/internal/httpapi"
)

// shutdownGrace bounds graceful shutdown after the command context ends.
const shutdownGrace = 10 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /api/v1/match over HTTP",
		Long: `Start an HTTP server exposing the matcher:

  POST /api/v1/match?objective=min|max&format=json|yaml|text
  GET  /healthz

The server stops gracefully when interrupted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config
			if listen != "" {
				cfg.Listen = listen
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			return serve(ctx, rootOpts.Logger, &http.Server{
				Addr:              cfg.Listen,
				Handler:           httpapi.NewServer(rootOpts.Logger, cfg),
				ReadHeaderTimeout: 10 * time.Second,
			})
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config)")

	return cmd
}

// serve runs srv until ctx is done, then shuts it down.
func serve(ctx context.Context, log *zap.Logger, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return WrapExitError(ExitCommandError, "serve", err)
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	log.Info("shutting down")
	if err := srv.Shutdown(shutCtx); err != nil {
		return WrapExitError(ExitCommandError, "shutdown", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return WrapExitError(ExitCommandError, "serve", err)
	}

	return nil
}
