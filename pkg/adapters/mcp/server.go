package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/contentpub"
	"github.com/aretw0/contentpub/internal/logging"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FlowsURI is the resource listing the available flow names.
const FlowsURI = "contentpub://flows"

// Result is the structured output of every tool.
type Result struct {
	Status    string   `json:"status" jsonschema_description:"ok when the operation completed"`
	ContentID string   `json:"content_id,omitempty" jsonschema_description:"Identifier of the published item"`
	BasePath  string   `json:"base_path,omitempty" jsonschema_description:"Base path the operation addressed"`
	Flows     []string `json:"flows,omitempty" jsonschema_description:"Flows published, in order"`
}

// Publisher is the subset of contentpub.Publisher the tools call.
type Publisher interface {
	Unpublish(ctx context.Context, contentID string) error
	ReservePathForPublishingApp(ctx context.Context, basePath, publishingApp string) error
	PublishTransaction(ctx context.Context, basePath string, opts domain.TransactionOptions) (string, error)
	PublishAnswer(ctx context.Context, basePath string, opts domain.AnswerOptions) (string, error)
	PublishFlows(ctx context.Context, loader ports.FlowLoader, names ...string) error
}

var _ Publisher = (*contentpub.Publisher)(nil)

// Server exposes a Publisher as an MCP Server.
type Server struct {
	publisher Publisher
	loader    ports.FlowLoader
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance. loader may be nil, in which
// case the flow tool and resource are not registered.
func NewServer(publisher Publisher, loader ports.FlowLoader, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		publisher: publisher,
		loader:    loader,
		logger:    logger,
		mcpServer: server.NewMCPServer("contentpub-mcp", strings.TrimSpace(contentpub.Version)),
	}
	s.registerTools()
	if loader != nil {
		s.registerResources()
	}
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	answerTool := mcp.NewTool("publish_answer",
		mcp.WithDescription("Create and publish a standalone answer page under a fresh content id."),
		mcp.WithString("base_path", mcp.Required(), mcp.Description("Path the page is served at, e.g. /tea-or-coffee")),
		mcp.WithString("publishing_app", mcp.Required(), mcp.Description("Application owning the page")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Page title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Markdown body")),
		mcp.WithOutputSchema[Result](),
	)
	s.mcpServer.AddTool(answerTool, mcp.NewStructuredToolHandler(s.handlePublishAnswer))

	transactionTool := mcp.NewTool("publish_transaction",
		mcp.WithDescription("Create and publish a transaction page linking to an external service."),
		mcp.WithString("base_path", mcp.Required(), mcp.Description("Path the page is served at")),
		mcp.WithString("publishing_app", mcp.Required(), mcp.Description("Application owning the page")),
		mcp.WithString("title", mcp.Required(), mcp.Description("Page title")),
		mcp.WithString("content", mcp.Required(), mcp.Description("Markdown introduction")),
		mcp.WithString("link", mcp.Required(), mcp.Description("URL of the service the start button leads to")),
		mcp.WithOutputSchema[Result](),
	)
	s.mcpServer.AddTool(transactionTool, mcp.NewStructuredToolHandler(s.handlePublishTransaction))

	unpublishTool := mcp.NewTool("unpublish",
		mcp.WithDescription("Withdraw a published content item."),
		mcp.WithString("content_id", mcp.Required(), mcp.Description("Identifier of the item")),
		mcp.WithOutputSchema[Result](),
	)
	s.mcpServer.AddTool(unpublishTool, mcp.NewStructuredToolHandler(s.handleUnpublish))

	reserveTool := mcp.NewTool("reserve_path",
		mcp.WithDescription("Reserve a base path for a publishing application."),
		mcp.WithString("base_path", mcp.Required(), mcp.Description("Path to reserve")),
		mcp.WithString("publishing_app", mcp.Required(), mcp.Description("Application claiming the path")),
		mcp.WithOutputSchema[Result](),
	)
	s.mcpServer.AddTool(reserveTool, mcp.NewStructuredToolHandler(s.handleReservePath))

	if s.loader == nil {
		return
	}
	flowsTool := mcp.NewTool("publish_flows",
		mcp.WithDescription("Publish flows (start page, flow page and nodes). Publishes every flow when none is named."),
		mcp.WithString("flows", mcp.Description("JSON array or comma separated list of flow names (optional)")),
		mcp.WithOutputSchema[Result](),
	)
	s.mcpServer.AddTool(flowsTool, mcp.NewStructuredToolHandler(s.handlePublishFlows))
}

func str(args map[string]interface{}, key string) string {
	v, _ := args[key].(string)
	return v
}

func (s *Server) handlePublishAnswer(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (Result, error) {
	basePath := str(args, "base_path")
	id, err := s.publisher.PublishAnswer(ctx, basePath, domain.AnswerOptions{
		PublishingApp: str(args, "publishing_app"),
		Title:         str(args, "title"),
		Content:       str(args, "content"),
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Status: "ok", ContentID: id, BasePath: basePath}, nil
}

func (s *Server) handlePublishTransaction(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (Result, error) {
	basePath := str(args, "base_path")
	id, err := s.publisher.PublishTransaction(ctx, basePath, domain.TransactionOptions{
		PublishingApp: str(args, "publishing_app"),
		Title:         str(args, "title"),
		Content:       str(args, "content"),
		Link:          str(args, "link"),
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Status: "ok", ContentID: id, BasePath: basePath}, nil
}

func (s *Server) handleUnpublish(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (Result, error) {
	id := str(args, "content_id")
	if err := s.publisher.Unpublish(ctx, id); err != nil {
		return Result{}, err
	}
	return Result{Status: "ok", ContentID: id}, nil
}

func (s *Server) handleReservePath(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (Result, error) {
	basePath := str(args, "base_path")
	if err := s.publisher.ReservePathForPublishingApp(ctx, basePath, str(args, "publishing_app")); err != nil {
		return Result{}, err
	}
	return Result{Status: "ok", BasePath: basePath}, nil
}

func (s *Server) handlePublishFlows(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (Result, error) {
	names := parseNames(str(args, "flows"))
	if len(names) == 0 {
		all, err := s.loader.ListFlows(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("list flows failed: %w", err)
		}
		names = all
	}
	if err := s.publisher.PublishFlows(ctx, s.loader, names...); err != nil {
		s.logger.Error("MCP publish_flows failed", "flows", names, "error", err)
		return Result{}, err
	}
	return Result{Status: "ok", Flows: names}, nil
}

// parseNames accepts a JSON array or a comma separated list.
func parseNames(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		return names
	}
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(FlowsURI, "Available flows",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		names, err := s.loader.ListFlows(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list flows: %w", err)
		}
		jsonBytes, _ := json.Marshal(names)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      FlowsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
