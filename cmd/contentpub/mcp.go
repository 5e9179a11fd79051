package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/aretw0/contentpub/internal/cli"
	loamAdapter "github.com/aretw0/contentpub/pkg/adapters/loam"
	"github.com/aretw0/contentpub/pkg/adapters/mcp"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes publishing operations as MCP tools so agents can publish pages.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		app, err := loadApp(sc, cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		var loader ports.FlowLoader
		dir := app.Config.FlowsDir
		if cmd.Flags().Changed("dir") {
			dir, _ = cmd.Flags().GetString("dir")
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if loader, err = loamAdapter.Open(dir); err != nil {
				return err
			}
		} else {
			app.Logger.Info("no flows directory, publish_flows disabled", "dir", dir)
		}

		srv := mcp.NewServer(app.Publisher, loader, app.Logger)

		switch transport {
		case "stdio":
			// Keep stray log output off the JSON-RPC stream.
			log.SetOutput(os.Stderr)
			app.Logger.Info("Starting MCP Server (Stdio)")
			return srv.ServeStdio()
		case "sse":
			app.Logger.Info("Starting MCP Server (SSE)", "port", port)
			if err := srv.ServeSSE(sc, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			app.Logger.Info("MCP Server stopped gracefully", "signal", sc.Signal())
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	mcpCmd.Flags().String("dir", "", "Directory containing flow definitions (defaults to flows_dir)")
}
