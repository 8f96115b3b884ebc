package ailmentapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	apperrors "github.com/makjesusfreak-ai/ReactWebApp99/pkg/errors"
)

// HTTPClient is a view.Remote over the REST API, for sessions running in a
// separate process from the service.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new ailment API client
func NewClient(baseURL string) *HTTPClient {
	return NewClientWithTimeout(baseURL, 10*time.Second)
}

// NewClientWithTimeout creates a new ailment API client with a custom timeout
func NewClientWithTimeout(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type listResponse struct {
	Ailments []entities.Ailment `json:"ailments"`
	Count    int                `json:"count"`
}

// List retrieves every aggregate
func (c *HTTPClient) List(ctx context.Context) ([]entities.Ailment, error) {
	out := &listResponse{}
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/api/ailments", nil, out); err != nil {
		return nil, err
	}
	return out.Ailments, nil
}

// Create stores a new aggregate under its client-generated id
func (c *HTTPClient) Create(ctx context.Context, ailment entities.Ailment) error {
	return c.doJSON(ctx, http.MethodPost, c.baseURL+"/api/ailments", ailment, nil)
}

// Update replaces an existing aggregate wholesale
func (c *HTTPClient) Update(ctx context.Context, ailment entities.Ailment) error {
	endpoint := fmt.Sprintf("%s/api/ailments/%s", c.baseURL, url.PathEscape(ailment.ID))
	return c.doJSON(ctx, http.MethodPut, endpoint, ailment, nil)
}

// Delete removes the aggregate with the given id
func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("%s/api/ailments/%s", c.baseURL, url.PathEscape(id))
	return c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %s returned 404", method, endpoint))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewExternalError(
			fmt.Sprintf("unexpected status %d from ailment API", resp.StatusCode),
			errors.New(strings.TrimSpace(string(data))),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
