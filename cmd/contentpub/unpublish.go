package main

import (
	"github.com/aretw0/contentpub/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var unpublishCmd = &cobra.Command{
	Use:   "unpublish <content-id>",
	Short: "Withdraw a content item as gone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.Publisher.Unpublish(cmd.Context(), args[0]); err != nil {
			return err
		}
		tui.Success(cmd.OutOrStdout(), "%s unpublished", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpublishCmd)
}
