// Package adminclient is a typed client for the MinIO Lite Admin REST API.
package adminclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/edvin/minio-lite-admin/internal/model"
	"github.com/edvin/minio-lite-admin/internal/platform"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code   int
	Status string
	// Message is the server's error text, only populated for mutations.
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// newStatusError keeps the reason phrase the server sent, which may differ
// from http.StatusText for non-standard codes.
func newStatusError(resp *http.Response) *StatusError {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return &StatusError{Code: resp.StatusCode, Status: reason}
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", platform.NewID())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// get fetches path and decodes the JSON body into result. Non-2xx responses
// become a *StatusError without reading the body.
func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("admin API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, reader)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("admin API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := newStatusError(resp)
		var errBody struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			statusErr.Message = errBody.Error
		}
		return statusErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Health(ctx context.Context) (*model.HealthResponse, error) {
	var out model.HealthResponse
	if err := c.get(ctx, "/api/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ServerInfo(ctx context.Context) (*model.ServerInfo, error) {
	var out model.ServerInfo
	if err := c.get(ctx, "/api/server-info", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DataUsage(ctx context.Context) (*model.DataUsage, error) {
	var out model.DataUsage
	if err := c.get(ctx, "/api/data-usage", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AccessKeysPath builds the listing URL path. The type parameter is omitted
// for "all" and the user parameter when empty.
func AccessKeysPath(opts model.AccessKeysOptions) string {
	q := url.Values{}
	if opts.Type != "" && opts.Type != model.KeyFilterAll {
		q.Set("type", opts.Type)
	}
	if opts.User != "" {
		q.Set("user", opts.User)
	}
	if len(q) == 0 {
		return "/api/access-keys"
	}
	return "/api/access-keys?" + q.Encode()
}

func (c *Client) AccessKeys(ctx context.Context, opts model.AccessKeysOptions) (*model.AccessKeysResponse, error) {
	var out model.AccessKeysResponse
	if err := c.get(ctx, AccessKeysPath(opts), &out); err != nil {
		return nil, err
	}
	if out.AccessKeys == nil {
		out.AccessKeys = []model.AccessKeyInfo{}
	}
	return &out, nil
}

func (c *Client) CreateServiceAccount(ctx context.Context, req model.CreateServiceAccountRequest) (*model.CreateServiceAccountResponse, error) {
	var out model.CreateServiceAccountResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/access-keys", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateServiceAccount(ctx context.Context, accessKey string, req model.UpdateServiceAccountRequest) (*model.MutationResponse, error) {
	var out model.MutationResponse
	if err := c.doJSON(ctx, http.MethodPut, "/api/access-keys/"+url.PathEscape(accessKey), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteServiceAccount(ctx context.Context, accessKey string) (*model.MutationResponse, error) {
	var out model.MutationResponse
	if err := c.doJSON(ctx, http.MethodDelete, "/api/access-keys/"+url.PathEscape(accessKey), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SiteReplication(ctx context.Context) (*model.SiteReplicationInfo, error) {
	var out model.SiteReplicationInfo
	if err := c.get(ctx, "/api/site-replication", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Buckets(ctx context.Context) (*model.BucketsResponse, error) {
	var out model.BucketsResponse
	if err := c.get(ctx, "/api/buckets", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
