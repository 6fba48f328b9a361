// Package github implements the RepoHost secondary port against the
// code-hosting REST API.
package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/waypoint/internal/ports/secondary"
)

// acceptHeader is the fixed media type sent with every request.
const acceptHeader = "application/vnd.github+json"

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// BaseURL is the API root (e.g. "https://api.github.com").
	BaseURL string
	// Token is the bearer credential.
	Token string
	// Owner is the account under which repositories live.
	Owner string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
	// WriteDelay is the fixed pause after every mutating call.
	WriteDelay time.Duration
}

// Client implements secondary.RepoHost. All I/O is synchronous and
// sequential.
type Client struct {
	baseURL    string
	token      string
	owner      string
	httpClient *http.Client
	logger     *slog.Logger
	writeDelay time.Duration
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("github: BaseURL is required")
	}
	if config.Token == "" {
		return nil, fmt.Errorf("github: Token is required")
	}
	if config.Owner == "" {
		return nil, fmt.Errorf("github: Owner is required")
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
		owner:      config.Owner,
		httpClient: httpClient,
		logger:     logger,
		writeDelay: config.WriteDelay,
	}, nil
}

// APIError is a non-2xx response with the body preserved for the
// operator.
type APIError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: %s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

func (c *Client) doRequest(ctx context.Context, method, path string, requestBody any) (int, []byte, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return 0, nil, fmt.Errorf("github: failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("github: failed to create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Accept", acceptHeader)
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("github request", "method", method, "path", path)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return 0, nil, fmt.Errorf("github: request to %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("github: failed to read response body: %w", err)
	}
	return response.StatusCode, responseBody, nil
}

// RepoExists checks existence by direct owner/name lookup, not a list
// scan.
func (c *Client) RepoExists(ctx context.Context, name string) (bool, error) {
	path := fmt.Sprintf("/repos/%s/%s", c.owner, name)
	status, body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}
	switch {
	case status == http.StatusOK:
		return true, nil
	case status == http.StatusNotFound:
		return false, nil
	default:
		return false, &APIError{Status: status, Method: http.MethodGet, Path: path, Body: string(body)}
	}
}

// CreateRepo creates a repository under the configured account.
func (c *Client) CreateRepo(ctx context.Context, req secondary.CreateHostedRepoRequest) error {
	payload := map[string]any{
		"name":        req.Name,
		"description": req.Description,
		"private":     req.Private,
		"auto_init":   req.AutoInit,
	}
	status, body, err := c.doRequest(ctx, http.MethodPost, "/user/repos", payload)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusAccepted {
		return &APIError{Status: status, Method: http.MethodPost, Path: "/user/repos", Body: string(body)}
	}
	c.pauseAfterWrite()
	return nil
}

// GetFileSHA returns the version identifier of an existing file, or ""
// when the path does not exist. The identifier must accompany any
// overwrite of the path.
func (c *Client) GetFileSHA(ctx context.Context, repo, path string) (string, error) {
	requestPath := fmt.Sprintf("/repos/%s/%s/contents/%s", c.owner, repo, path)
	status, body, err := c.doRequest(ctx, http.MethodGet, requestPath, nil)
	if err != nil {
		return "", err
	}
	switch {
	case status == http.StatusOK:
		var file struct {
			SHA string `json:"sha"`
		}
		if err := json.Unmarshal(body, &file); err != nil {
			return "", fmt.Errorf("github: failed to parse file metadata: %w", err)
		}
		return file.SHA, nil
	case status == http.StatusNotFound:
		return "", nil
	default:
		return "", &APIError{Status: status, Method: http.MethodGet, Path: requestPath, Body: string(body)}
	}
}

// PutFile creates or overwrites a file. Content is base64-encoded on
// the wire; overwrites carry the current SHA (optimistic concurrency).
func (c *Client) PutFile(ctx context.Context, req secondary.PutFileRequest) error {
	requestPath := fmt.Sprintf("/repos/%s/%s/contents/%s", c.owner, req.Repo, req.Path)
	payload := map[string]any{
		"message": req.Message,
		"content": base64.StdEncoding.EncodeToString(req.Content),
	}
	if req.SHA != "" {
		payload["sha"] = req.SHA
	}

	status, body, err := c.doRequest(ctx, http.MethodPut, requestPath, payload)
	if err != nil {
		return err
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return &APIError{Status: status, Method: http.MethodPut, Path: requestPath, Body: string(body)}
	}
	c.pauseAfterWrite()
	return nil
}

// RepoURL returns the canonical browse URL for a repository name.
func (c *Client) RepoURL(name string) string {
	return fmt.Sprintf("https://github.com/%s/%s", c.owner, name)
}

func (c *Client) pauseAfterWrite() {
	if c.writeDelay > 0 {
		time.Sleep(c.writeDelay)
	}
}
