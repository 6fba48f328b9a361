// Package billing implements the BudgetCreator secondary port against a
// cloud billing API's budget endpoint.
package billing

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

	"github.com/example/waypoint/internal/ports/secondary"
)

// ClientConfig holds configuration for creating a Client.
type ClientConfig struct {
	// Endpoint is the budgets API root.
	Endpoint string
	// Token is the bearer credential.
	Token string
	// Region tags the budget with a billing region.
	Region string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
	// WriteDelay is the fixed pause after every mutating call.
	WriteDelay time.Duration
}

// Client implements secondary.BudgetCreator.
type Client struct {
	endpoint   string
	token      string
	region     string
	httpClient *http.Client
	logger     *slog.Logger
	writeDelay time.Duration
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("billing: Endpoint is required")
	}
	if config.Token == "" {
		return nil, fmt.Errorf("billing: Token is required")
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
		endpoint:   strings.TrimRight(config.Endpoint, "/"),
		token:      config.Token,
		region:     config.Region,
		httpClient: httpClient,
		logger:     logger,
		writeDelay: config.WriteDelay,
	}, nil
}

// budgetPayload is the wire shape for a monthly cost budget with a
// single actual-spend email notification.
type budgetPayload struct {
	Name     string      `json:"name"`
	TimeUnit string      `json:"time_unit"`
	Type     string      `json:"budget_type"`
	Region   string      `json:"region,omitempty"`
	Limit    budgetLimit `json:"limit"`
	Notify   []notifyCfg `json:"notifications"`
}

type budgetLimit struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type notifyCfg struct {
	Type         string   `json:"notification_type"`
	ThresholdPct float64  `json:"threshold"`
	Comparison   string   `json:"comparison_operator"`
	Subscribers  []string `json:"subscribers"`
}

// CreateBudget creates a monthly cost budget. An "already exists"
// response from the API is treated as success so repeated runs stay
// idempotent.
func (c *Client) CreateBudget(ctx context.Context, req secondary.BudgetRequest) error {
	payload := budgetPayload{
		Name:     req.Name,
		TimeUnit: "MONTHLY",
		Type:     "COST",
		Region:   c.region,
		Limit:    budgetLimit{Amount: req.LimitUSD, Unit: "USD"},
		Notify: []notifyCfg{{
			Type:         "ACTUAL",
			ThresholdPct: req.ThresholdPct,
			Comparison:   "GREATER_THAN",
			Subscribers:  []string{req.Email},
		}},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("billing: failed to encode budget: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/budgets", bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("billing: failed to create request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Content-Type", "application/json")

	c.logger.Debug("billing request", "budget", req.Name, "limit", req.LimitUSD)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("billing: budget request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("billing: failed to read response body: %w", err)
	}

	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
		if c.writeDelay > 0 {
			time.Sleep(c.writeDelay)
		}
		return nil
	case response.StatusCode == http.StatusConflict, isDuplicateError(body):
		c.logger.Debug("budget already exists", "budget", req.Name)
		return nil
	default:
		return fmt.Errorf("billing: budget creation returned %d: %s", response.StatusCode, string(body))
	}
}

func isDuplicateError(body []byte) bool {
	var parsed struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return false
	}
	return parsed.Code == "DuplicateRecordException" ||
		strings.Contains(strings.ToLower(parsed.Message), "already exists")
}
