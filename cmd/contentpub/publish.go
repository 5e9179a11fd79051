package main

import (
	"github.com/aretw0/contentpub/internal/cli"
	"github.com/aretw0/contentpub/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var publishCmd = &cobra.Command{
	Use:   "publish [flow...]",
	Short: "Publish flows from a directory of definitions",
	Long: `Publishes the named flows, or every flow found when none is named.
Each flow publishes its start page, the flow page and one page per node,
stopping at the first failure.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		app, err := loadApp(sc, cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		dir := app.Config.FlowsDir
		if cmd.Flags().Changed("dir") {
			dir, _ = cmd.Flags().GetString("dir")
		}

		out := cmd.OutOrStdout()
		if err := app.Publisher.PublishDir(sc, dir, args...); err != nil {
			tui.Failure(out, "publish failed: %v", err)
			return err
		}
		if app.Config.DryRun {
			tui.Notice(out, "dry run: nothing was sent to %s", app.Config.PublishingAPI.URL)
		}
		tui.Success(out, "flows from %s published", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
	publishCmd.Flags().String("dir", "", "Directory containing flow definitions (defaults to flows_dir)")
}
