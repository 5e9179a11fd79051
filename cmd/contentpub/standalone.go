package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// addPageFlags registers the flags shared by the standalone page commands.
func addPageFlags(cmd *cobra.Command) {
	cmd.Flags().String("publishing-app", "", "Publishing application that owns the page")
	cmd.Flags().String("title", "", "Page title")
	cmd.Flags().String("content", "", "Markdown body")
	cmd.Flags().String("content-file", "", "Read the markdown body from a file")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")
}

// pageContent returns --content or the contents of --content-file.
func pageContent(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("content-file")
	if path == "" {
		content, _ := cmd.Flags().GetString("content")
		return content, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read content file: %w", err)
	}
	return string(raw), nil
}
