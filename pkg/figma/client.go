package figma

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.figma.com"

// Config configures the API client.
type Config struct {
	// Token is the personal access token sent as X-Figma-Token.
	Token string
	// BaseURL overrides the API host. Used by tests; empty means the
	// public API.
	BaseURL string
	// Timeout for a single request. Zero means 30s.
	Timeout time.Duration
	// Logger for request diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
}

// Client calls the design-file REST API. Safe for concurrent use.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// NewClient creates an API client.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("X-Figma-Token", cfg.Token).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err == nil && r.StatusCode() >= http.StatusInternalServerError
		})

	return &Client{http: httpClient, log: logger}
}

// FileComponents returns the published components of a file, preserving
// the API response order. The reconciler treats that order as the design
// collection's natural order.
func (c *Client) FileComponents(ctx context.Context, fileKey string) ([]DesignComponent, error) {
	if fileKey == "" {
		return nil, fmt.Errorf("file key is required")
	}

	var out componentsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/v1/files/%s/components", fileKey))
	if err != nil {
		return nil, fmt.Errorf("fetch components for %s: %w", fileKey, err)
	}
	if err := apiError(resp, fileKey); err != nil {
		return nil, err
	}

	components := make([]DesignComponent, 0, len(out.Meta.Components))
	for _, wc := range out.Meta.Components {
		components = append(components, DesignComponent{
			ID:             wc.NodeID,
			Name:           wc.Name,
			Description:    wc.Description,
			ComponentSetID: wc.ComponentSetID,
		})
	}

	c.log.Debug("fetched design components", "file", fileKey, "count", len(components))
	return components, nil
}

// FileStyles returns the published styles of a file in API order.
func (c *Client) FileStyles(ctx context.Context, fileKey string) ([]DesignStyle, error) {
	if fileKey == "" {
		return nil, fmt.Errorf("file key is required")
	}

	var out stylesResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/v1/files/%s/styles", fileKey))
	if err != nil {
		return nil, fmt.Errorf("fetch styles for %s: %w", fileKey, err)
	}
	if err := apiError(resp, fileKey); err != nil {
		return nil, err
	}

	styles := make([]DesignStyle, 0, len(out.Meta.Styles))
	for _, ws := range out.Meta.Styles {
		styles = append(styles, DesignStyle{
			ID:          ws.NodeID,
			Name:        ws.Name,
			Type:        ws.StyleType,
			Description: ws.Description,
		})
	}

	c.log.Debug("fetched design styles", "file", fileKey, "count", len(styles))
	return styles, nil
}

// apiError maps non-2xx responses to caller-facing errors. Rate limits and
// auth failures get dedicated messages since they are the two conditions
// users actually hit.
func apiError(resp *resty.Response, fileKey string) error {
	if !resp.IsError() {
		return nil
	}
	switch resp.StatusCode() {
	case http.StatusTooManyRequests:
		retryAfter := resp.Header().Get("Retry-After")
		if retryAfter != "" {
			return fmt.Errorf("rate limited by the API, retry after %ss", retryAfter)
		}
		return fmt.Errorf("rate limited by the API")
	case http.StatusForbidden, http.StatusUnauthorized:
		return fmt.Errorf("access denied for file %s: check FIGMA_TOKEN", fileKey)
	case http.StatusNotFound:
		return fmt.Errorf("file %s not found", fileKey)
	default:
		return fmt.Errorf("API error for file %s: %s", fileKey, resp.Status())
	}
}
