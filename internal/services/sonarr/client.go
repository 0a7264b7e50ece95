package sonarr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/amaumene/seasonsync/internal/config"
	"github.com/amaumene/seasonsync/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	serviceName = "sonarr"
	userAgent   = "seasonsync/1.0"

	// maxErrorBody bounds how much of an unexpected response ends up in errors and logs
	maxErrorBody = 4 * 1024
)

// HTTPClient is the subset of *http.Client used by the client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client wraps read-only Sonarr v3 API calls
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient HTTPClient
	logger     *logrus.Logger
}

// NewClient creates a new Sonarr client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.SonarrURL == "" {
		return nil, fmt.Errorf("sonarr URL is required")
	}
	if cfg.SonarrAPIKey == "" {
		return nil, fmt.Errorf("sonarr API key is required")
	}

	return New(cfg.SonarrURL, cfg.SonarrAPIKey, &http.Client{Timeout: cfg.HTTPTimeout}, logger)
}

// New creates a client against baseURL (including the API root, e.g. http://host:8989/api/v3)
func New(baseURL, apiKey string, httpClient HTTPClient, logger *logrus.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid sonarr URL: %w", err)
	}

	return &Client{
		baseURL:    u,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// endpoint joins the resource onto the API root
func (c *Client) endpoint(resource string, params url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + "/" + resource
	u.RawQuery = params.Encode()
	return u.String()
}

// get performs a GET request and decodes the JSON body into out
func (c *Client) get(ctx context.Context, op, resource string, params url.Values, out interface{}) error {
	finalURL := c.endpoint(resource, params)

	c.logger.WithFields(logrus.Fields{
		"op":       op,
		"resource": resource,
		"query":    params.Encode(),
	}).Debug("Performing Sonarr request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, finalURL, nil)
	if err != nil {
		return &models.UpstreamError{Service: serviceName, Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &models.UpstreamError{Service: serviceName, Op: op, Err: err}
	}
	defer resp.Body.Close()

	// Check response status
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WithFields(logrus.Fields{
			"op":          op,
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("Sonarr API returned non-OK status")
		return &models.UpstreamError{Service: serviceName, Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &models.UpstreamError{Service: serviceName, Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}
