package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/contentpub"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of contentpub",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "contentpub version %s\n", strings.TrimSpace(contentpub.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
