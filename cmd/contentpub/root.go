package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/contentpub/internal/cli"
	"github.com/aretw0/contentpub/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contentpub",
	Short: "contentpub publishes flows and standalone pages to a content store",
	Long: `contentpub registers guided flows, transactions and answers with a remote
content store using a create-then-publish protocol.

Settings come from an optional YAML file, a .env file and CONTENTPUB_*
environment variables, in that order.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Use an in-memory store instead of the publishing API")
}

// loadConfig reads the configuration and applies the persistent flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}
	return cfg, nil
}

// loadApp builds the publisher for commands that talk to the store.
func loadApp(ctx context.Context, cmd *cobra.Command) (*cli.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	app, err := cli.Build(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("error initializing publisher: %w", err)
	}
	return app, nil
}
