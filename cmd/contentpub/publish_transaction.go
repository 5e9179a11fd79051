package main

import (
	"github.com/aretw0/contentpub/internal/presentation/tui"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/spf13/cobra"
)

var publishTransactionCmd = &cobra.Command{
	Use:   "publish-transaction <base-path>",
	Short: "Publish a standalone transaction page",
	Long:  `Creates and publishes a transaction page under a freshly generated content id.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := pageContent(cmd)
		if err != nil {
			return err
		}
		app, err := loadApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		opts := domain.TransactionOptions{Content: content}
		opts.PublishingApp, _ = cmd.Flags().GetString("publishing-app")
		opts.Title, _ = cmd.Flags().GetString("title")
		opts.Link, _ = cmd.Flags().GetString("link")

		id, err := app.Publisher.PublishTransaction(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}
		tui.Success(cmd.OutOrStdout(), "%s published as %s", args[0], id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishTransactionCmd)
	addPageFlags(publishTransactionCmd)
	publishTransactionCmd.Flags().String("link", "", "Transaction start link")
}
