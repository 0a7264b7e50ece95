package qbittorrent

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/amaumene/seasonsync/internal/config"
	"github.com/amaumene/seasonsync/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	serviceName  = "qbittorrent"
	maxErrorBody = 4 * 1024
)

// HTTPClient is the subset of *http.Client used by the client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client submits releases to the qBittorrent Web API
type Client struct {
	baseURL    string
	httpClient HTTPClient
	logger     *logrus.Logger
}

// NewClient creates a new qBittorrent client
func NewClient(cfg *config.Config, logger *logrus.Logger) (*Client, error) {
	if cfg.QBittorrentURL == "" {
		return nil, fmt.Errorf("qBittorrent URL is required")
	}

	return New(cfg.QBittorrentURL, &http.Client{Timeout: cfg.HTTPTimeout}, logger), nil
}

// New creates a client against baseURL (including the API root, e.g. http://host:8080/api/v2)
func New(baseURL string, httpClient HTTPClient, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Submit adds the release at url to the download client under category
func (c *Client) Submit(ctx context.Context, url string, category string) error {
	// Create multipart form data
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("urls", url); err != nil {
		return c.failure(fmt.Errorf("failed to add urls field: %w", err))
	}
	if err := writer.WriteField("category", category); err != nil {
		return c.failure(fmt.Errorf("failed to add category field: %w", err))
	}

	// Close the writer to finalize the multipart form
	if err := writer.Close(); err != nil {
		return c.failure(fmt.Errorf("failed to close multipart writer: %w", err))
	}

	c.logger.WithFields(logrus.Fields{
		"url":      url,
		"category": category,
	}).Debug("Submitting release to qBittorrent")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/torrents/add", &buf)
	if err != nil {
		return c.failure(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.failure(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &models.UpstreamError{
			Service:    serviceName,
			Op:         "submit",
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	c.logger.WithFields(logrus.Fields{
		"url":      url,
		"category": category,
	}).Info("Release submitted to qBittorrent")
	return nil
}

func (c *Client) failure(err error) error {
	return &models.UpstreamError{Service: serviceName, Op: "submit", Err: err}
}
