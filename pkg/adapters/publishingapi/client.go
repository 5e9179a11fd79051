// Package publishingapi is the HTTP gateway to the remote content store.
// It shapes requests only: response bodies are drained and discarded.
package publishingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aretw0/contentpub/internal/logging"
	"github.com/aretw0/contentpub/pkg/domain"
	"github.com/aretw0/contentpub/pkg/ports"
)

// DefaultTimeout applies when no HTTP client is injected.
const DefaultTimeout = 10 * time.Second

// HTTPError is returned when the store answers a publish, unpublish or
// reservation request with a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// Client implements ports.ContentStore over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

var _ ports.ContentStore = (*Client)(nil)

// Option configures the Client.
type Option func(*Client)

// WithBearerToken sends token in the Authorization header.
func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the store at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type publishRequest struct {
	UpdateType string `json:"update_type,omitempty"`
}

type unpublishRequest struct {
	Type string `json:"type"`
}

type reservationRequest struct {
	PublishingApp    string `json:"publishing_app"`
	OverrideExisting bool   `json:"override_existing"`
}

// PutContent sends the draft. Any HTTP status yields a Response; only
// transport failures are errors.
func (c *Client) PutContent(ctx context.Context, id string, payload domain.Payload) (*domain.Response, error) {
	status, err := c.do(ctx, http.MethodPut, contentPath(id, ""), payload)
	if err != nil {
		return nil, err
	}
	return &domain.Response{StatusCode: status}, nil
}

// Publish makes the draft for id live.
func (c *Client) Publish(ctx context.Context, id string) error {
	return c.expectSuccess(ctx, http.MethodPost, contentPath(id, "/publish"), publishRequest{})
}

// Unpublish withdraws id as gone.
func (c *Client) Unpublish(ctx context.Context, id string) error {
	return c.expectSuccess(ctx, http.MethodPost, contentPath(id, "/unpublish"), unpublishRequest{Type: domain.UnpublishGone})
}

// ReservePath claims basePath for publishingApp. The base path is appended
// verbatim, so "/a" is addressed as "/paths//a".
func (c *Client) ReservePath(ctx context.Context, basePath, publishingApp string) error {
	body := reservationRequest{PublishingApp: publishingApp, OverrideExisting: true}
	return c.expectSuccess(ctx, http.MethodPut, reservationPath(basePath), body)
}

// contentPath escapes id as a single path segment.
func contentPath(id, suffix string) string {
	return "/v2/content/" + url.PathEscape(id) + suffix
}

// reservationPath escapes each segment of basePath, keeping its slashes.
func reservationPath(basePath string) string {
	return (&url.URL{Path: "/paths/" + basePath}).EscapedPath()
}

func (c *Client) expectSuccess(ctx context.Context, method, path string, body any) error {
	status, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if status < 200 || status > 299 {
		return &HTTPError{Method: method, URL: c.baseURL + path, StatusCode: status}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("failed to encode request body: %w", err)
	}

	target := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "request failed", "method", method, "url", target, "err", err)
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.DebugContext(ctx, "request completed",
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	return resp.StatusCode, nil
}
