package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aretw0/nbserve/internal/cli"
	"github.com/aretw0/nbserve/internal/presentation/tui"
	httpAdapter "github.com/aretw0/nbserve/pkg/adapters/http"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Starts the notebook API and the static front-end over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd)
		if err != nil {
			return err
		}
		logger := app.Logger

		handler := httpAdapter.NewHandler(app.Service,
			httpAdapter.WithStaticDir(app.Config.Paths.StaticDir),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              app.Config.Server.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			tui.PrintBanner(cmd.OutOrStdout())
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("Starting nbserve", "addr", srv.Addr, "documents", app.Store.BasePath, "engine", app.Config.Render.Engine)
			serverErrors <- srv.ListenAndServe()
		}()

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err

		case <-ctx.Done():
			logger.Info("Start shutdown", "signal", ctx.Signal())

			// Give outstanding requests a deadline for completion.
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
				if err := srv.Close(); err != nil {
					return err
				}
			}
			logger.Info("nbserve stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Address to listen on (overrides server.addr)")
	serveCmd.Flags().String("engine", "", "Tree render engine: exec or graphviz (overrides render.engine)")
	serveCmd.Flags().BoolP("quiet", "q", false, "Do not print the banner")
}
