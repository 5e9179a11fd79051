package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/contentpub/internal/logging"
	"github.com/aretw0/contentpub/internal/presentation/tui"
	httpAdapter "github.com/aretw0/contentpub/pkg/adapters/http"
	"github.com/aretw0/contentpub/pkg/adapters/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveStubCmd = &cobra.Command{
	Use:   "serve-stub",
	Short: "Run an in-memory content store over HTTP",
	Long: `Starts a local stand-in for the publishing API. Requests are validated
against the bundled OpenAPI document and kept in memory until shutdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Stub.Addr, _ = cmd.Flags().GetString("addr")
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger := logging.New(level)

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		handler, err := httpAdapter.NewHandler(memory.NewStore(),
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
		)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              cfg.Stub.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}

		out := cmd.OutOrStdout()
		serverErrors := make(chan error, 1)
		go func() {
			tui.PrintBanner(out)
			fmt.Fprintf(out, "Starting stub content store on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(shutdown)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			fmt.Fprintf(out, "\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("error killing server: %w", err)
				}
			}
			tui.Success(out, "stub stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveStubCmd)
	serveStubCmd.Flags().String("addr", "", "Listen address (defaults to stub.addr)")
}
