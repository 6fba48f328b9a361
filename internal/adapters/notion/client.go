// Package notion implements the DatabaseStore secondary port against
// the hosted structured-database REST API.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// APIVersion is the fixed version header sent with every request.
const APIVersion = "2022-06-28"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the API root (e.g. "https://api.notion.com/v1").
	BaseURL string
	// Token is the bearer credential.
	Token string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
	// WriteDelay is the fixed pause after every mutating call,
	// respecting the API's undocumented request-rate ceiling. Zero
	// disables the pause (tests).
	WriteDelay time.Duration
}

// Client is a synchronous, single-threaded API client. Every call
// completes or fails before the next statement executes.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
	writeDelay time.Duration
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("notion: BaseURL is required")
	}
	if config.Token == "" {
		return nil, fmt.Errorf("notion: Token is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		token:      config.Token,
		httpClient: httpClient,
		logger:     logger,
		writeDelay: config.WriteDelay,
	}, nil
}

// APIError is a non-2xx response. The body is always carried so the
// operator sees the remote's validation message verbatim.
type APIError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("notion: %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// doRequest performs one request and returns the response body.
// Non-2xx responses come back as *APIError.
func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any) ([]byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("notion: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("notion: failed to create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Notion-Version", APIVersion)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("notion request", "method", method, "path", path)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("notion: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("notion: failed to read response body: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return responseBody, nil
	}
	return nil, &APIError{
		Status: response.StatusCode,
		Method: method,
		Path:   path,
		Body:   string(responseBody),
	}
}

// pauseAfterWrite is the fixed inter-write delay. Not adaptive: no
// backoff, no rate-limit header handling.
func (c *Client) pauseAfterWrite() {
	if c.writeDelay > 0 {
		time.Sleep(c.writeDelay)
	}
}
