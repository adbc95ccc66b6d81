// Package notion implements the property-database source against the
// Notion-style HTTP API: schema introspection and cursor-paginated
// record queries with bounded retry.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nightowl-labs/homedash/domain/record"
	"github.com/nightowl-labs/homedash/domain/service"
	"github.com/nightowl-labs/homedash/internal/config"
	"github.com/nightowl-labs/homedash/internal/retry"
)

// maxQueryPages bounds the pagination loop so a source that keeps
// reporting has_more can never spin the sync forever.
const maxQueryPages = 1000

// Error is a failure reported by the source API.
type Error struct {
	Operation  string
	StatusCode int
	Code       string
	Message    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("source %s: status %d (%s): %s", e.Operation, e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("source %s: %s", e.Operation, e.Message)
}

// Client talks to the external property-database HTTP API.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	version       string
	pageSize      int
	maxRetries    int
	initialDelay  time.Duration
	backoffFactor float64
}

// ClientOption is a functional option for Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithPageSize sets the query page size.
func WithPageSize(n int) ClientOption {
	return func(c *Client) { c.pageSize = n }
}

// WithMaxRetries sets the transient-failure retry budget.
func WithMaxRetries(n int) ClientOption {
	return func(c *Client) { c.maxRetries = n }
}

// WithInitialDelay sets the first retry delay.
func WithInitialDelay(d time.Duration) ClientOption {
	return func(c *Client) { c.initialDelay = d }
}

// NewClient creates a Client with defaults.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: config.DefaultSourceTimeout},
		baseURL:       config.DefaultSourceBaseURL,
		token:         token,
		version:       config.DefaultSourceVersion,
		pageSize:      config.DefaultSourcePageSize,
		maxRetries:    config.DefaultSourceMaxRetries,
		initialDelay:  config.DefaultSourceInitialDelay,
		backoffFactor: config.DefaultSourceBackoffFactor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a Client from configuration.
func NewClientFromConfig(cfg config.SourceConfig) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: cfg.Timeout()},
		baseURL:       cfg.BaseURL(),
		token:         cfg.Token(),
		version:       cfg.Version(),
		pageSize:      cfg.PageSize(),
		maxRetries:    cfg.MaxRetries(),
		initialDelay:  cfg.InitialDelay(),
		backoffFactor: cfg.BackoffFactor(),
	}
}

// DatabaseSchema fetches the property schema of a database.
func (c *Client) DatabaseSchema(ctx context.Context, databaseID string) (record.Schema, error) {
	var dto databaseDTO
	path := fmt.Sprintf("/v1/databases/%s", databaseID)
	if err := c.do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, fmt.Errorf("fetch database schema: %w", err)
	}
	return toSchema(dto), nil
}

// QueryDatabase fetches every record of a database, following the
// pagination cursor until the source reports no more pages.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string) ([]record.Record, error) {
	path := fmt.Sprintf("/v1/databases/%s/query", databaseID)

	var records []record.Record
	cursor := ""
	for page := 0; page < maxQueryPages; page++ {
		req := queryRequestDTO{PageSize: c.pageSize, StartCursor: cursor}

		var resp queryResponseDTO
		if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
			return nil, fmt.Errorf("query database page %d: %w", page, err)
		}

		for _, dto := range resp.Results {
			records = append(records, toRecord(dto))
		}

		if !resp.HasMore || resp.NextCursor == nil || *resp.NextCursor == "" {
			return records, nil
		}
		cursor = *resp.NextCursor
	}
	return nil, &Error{Operation: "query", Message: fmt.Sprintf("pagination exceeded %d pages", maxQueryPages)}
}

// do performs one API call with bounded retry on transient failures.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	return retry.Do(ctx, c.maxRetries+1, c.initialDelay, c.backoffFactor, func() error {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return retry.Stop(err)
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
		req.Header.Set("Notion-Version", c.version)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := c.apiError(method+" "+path, resp.StatusCode, data)
			if isRetryableStatus(resp.StatusCode) {
				return apiErr
			}
			return retry.Stop(apiErr)
		}

		if err := json.Unmarshal(data, out); err != nil {
			return retry.Stop(fmt.Errorf("decode response: %w", err))
		}
		return nil
	})
}

func (c *Client) apiError(operation string, status int, body []byte) error {
	var dto errorResponseDTO
	_ = json.Unmarshal(body, &dto)
	msg := dto.Message
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Operation: operation, StatusCode: status, Code: dto.Code, Message: msg}
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

var _ service.Source = (*Client)(nil)
