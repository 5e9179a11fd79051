package main

import (
	"fmt"

	"github.com/aretw0/contentpub/internal/presentation/tui"
	loamAdapter "github.com/aretw0/contentpub/pkg/adapters/loam"
	"github.com/aretw0/contentpub/pkg/presentation"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flow...]",
	Short: "Show the pages a publish would send, without contacting the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dir := cfg.FlowsDir
		if cmd.Flags().Changed("dir") {
			dir, _ = cmd.Flags().GetString("dir")
		}
		raw, _ := cmd.Flags().GetBool("raw")

		loader, err := loamAdapter.Open(dir)
		if err != nil {
			return err
		}
		batch, err := presentation.LoadBatch(cmd.Context(), loader, cfg.Pages, args...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		render := func(s string) (string, error) { return s, nil }
		if !raw {
			tui.PrintBanner(out)
			if render, err = tui.NewRenderer(tui.Width(out, 80)); err != nil {
				return err
			}
		}

		for _, flow := range batch {
			md, err := tui.PreviewMarkdown(flow)
			if err != nil {
				return fmt.Errorf("flow %s: %w", flow.Name(), err)
			}
			rendered, err := render(md)
			if err != nil {
				return err
			}
			fmt.Fprint(out, rendered)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().String("dir", "", "Directory containing flow definitions (defaults to flows_dir)")
	previewCmd.Flags().Bool("raw", false, "Print markdown without styling")
}
