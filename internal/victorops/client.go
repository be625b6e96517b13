package victorops

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Splunk On-Call (VictorOps) REST endpoint.
const DefaultBaseURL = "https://api.victorops.com/api-public"

// Creds is the static API-key pair sent with every request.
type Creds struct {
	APIID  string
	APIKey string
}

// Client provides typed access to the on-call scheduling API.
type Client struct {
	baseURL    string
	creds      Creds
	httpClient *http.Client
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// New constructs a Client pointing at the provided API base URL.
func New(base string, creds Creds, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if strings.TrimSpace(creds.APIID) == "" || strings.TrimSpace(creds.APIKey) == "" {
		return nil, fmt.Errorf("api credentials required")
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		creds:      creds,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

// APIError represents an error response from the API.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed with status %d", e.Status)
	}
	return fmt.Sprintf("api request failed (%d): %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, path string, v any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-VO-Api-Id", c.creds.APIID)
	req.Header.Set("X-VO-Api-Key", c.creds.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg := extractError(resp.Body)
		return APIError{Status: resp.StatusCode, Message: msg}
	}

	if v == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// TeamSchedule returns the on-call schedule for the given team slug, looking
// daysForward days ahead.
func (c *Client) TeamSchedule(ctx context.Context, team string, daysForward int) (TeamScheduleResponse, error) {
	slug := strings.TrimSpace(team)
	if slug == "" {
		return TeamScheduleResponse{}, fmt.Errorf("team slug is required")
	}
	path := fmt.Sprintf("/v2/team/%s/oncall/schedule?daysForward=%d", url.PathEscape(slug), daysForward)
	var resp TeamScheduleResponse
	if err := c.do(ctx, path, &resp); err != nil {
		return TeamScheduleResponse{}, err
	}
	return resp, nil
}

// Users returns the organization's user directory. Each user is a loose map
// so callers can pick the display field by name.
func (c *Client) Users(ctx context.Context) ([]map[string]any, error) {
	var resp usersResponse
	if err := c.do(ctx, "/v2/user", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

func extractError(body io.Reader) string {
	if body == nil {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}
	if payload.Error != "" {
		return strings.TrimSpace(payload.Error)
	}
	return strings.TrimSpace(payload.Message)
}
