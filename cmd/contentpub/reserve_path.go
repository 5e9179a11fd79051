package main

import (
	"github.com/aretw0/contentpub/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var reservePathCmd = &cobra.Command{
	Use:   "reserve-path <base-path>",
	Short: "Reserve a base path for a publishing application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		publishingApp, _ := cmd.Flags().GetString("publishing-app")
		if err := app.Publisher.ReservePathForPublishingApp(cmd.Context(), args[0], publishingApp); err != nil {
			return err
		}
		tui.Success(cmd.OutOrStdout(), "%s reserved for %s", args[0], publishingApp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reservePathCmd)
	reservePathCmd.Flags().String("publishing-app", "", "Publishing application that owns the path")
	_ = reservePathCmd.MarkFlagRequired("publishing-app")
}
