// Package mercury is a small client for the Mercury banking API endpoints the
// trigger needs: webhook registration and resource lookup.
package mercury

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-http-utils/headers"
	"golang.org/x/time/rate"

	"github.com/grantsy/mercuryhook/internal/infra/logger"
	"github.com/grantsy/mercuryhook/internal/infra/metrics"
)

const (
	DefaultBaseURL = "https://api.mercury.com/api/v1"
	maxErrorBody   = 64 << 10
)

// Webhook is a registered Mercury webhook. Secret is only returned on create.
type Webhook struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Secret      string   `json:"secret"`
	Status      string   `json:"status,omitempty"`
	EventTypes  []string `json:"eventTypes,omitempty"`
	FilterPaths []string `json:"filterPaths,omitempty"`
}

type CreateWebhookRequest struct {
	URL         string   `json:"url"`
	EventTypes  []string `json:"eventTypes"`
	FilterPaths []string `json:"filterPaths,omitempty"`
}

type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

type Options struct {
	BaseURL string
	Auth    Auth
	Timeout time.Duration
	// RateLimit is requests per second; 0 disables limiting.
	RateLimit float64
	// Transport defaults to http.DefaultTransport.
	Transport http.RoundTripper
}

func NewClient(ctx context.Context, opts Options) *Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	if opts.Auth != nil {
		base = opts.Auth.Transport(ctx, base)
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	limit := rate.Inf
	burst := 0
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
		burst = max(1, int(opts.RateLimit))
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Transport: base, Timeout: opts.Timeout},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// CreateWebhook registers a webhook and returns its id and signing secret.
func (c *Client) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (*Webhook, error) {
	var wh Webhook
	if err := c.do(ctx, http.MethodPost, "/webhooks", req, &wh); err != nil {
		return nil, err
	}
	if wh.ID == "" {
		return nil, fmt.Errorf("mercury: create webhook: response has no id")
	}
	return &wh, nil
}

// DeleteWebhook deregisters a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/webhooks/"+url.PathEscape(id), nil, nil)
}

// GetResource fetches a resource by API path (e.g. /transaction/{id}) and
// returns its JSON unchanged.
func (c *Client) GetResource(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// TestCredentials checks the configured credentials against /accounts.
func (c *Client) TestCredentials(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/accounts", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	log := logger.FromContext(ctx)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("mercury: failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("mercury: failed to create request: %w", err)
	}
	req.Header.Set(headers.Accept, "application/json")
	if in != nil {
		req.Header.Set(headers.ContentType, "application/json")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mercury: rate limiter: %w", err)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordMercuryRequest(method, 0, duration)
		return fmt.Errorf("mercury: %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	metrics.RecordMercuryRequest(method, resp.StatusCode, duration)
	log.Debug("mercury request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", duration,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newAPIError(resp.StatusCode, b)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("mercury: failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}
