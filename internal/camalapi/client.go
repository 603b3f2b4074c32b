package camalapi

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

	"github.com/google/uuid"
)

// APIPrefix is the versioned path every camal resource lives under.
const APIPrefix = "v1/1.0.0"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithStaticToken sets a token used when the context carries none.
func WithStaticToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/" + APIPrefix,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type tokenKey struct{}

// WithAccessToken returns a context whose requests authenticate with token.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// AccessToken returns the token stored by WithAccessToken.
func AccessToken(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Do performs one request against path (relative to the versioned prefix).
// body is JSON-encoded when non-nil, query is appended when non-empty, and
// the response body is decoded into result when result is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokenFor(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resource := resourceLabel(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(method, resource, "network", start)
		return &ConnectivityError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		observe(method, resource, "network", start)
		return &ConnectivityError{Method: method, Path: path, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observe(method, resource, "http_error", start)
		return newHTTPError(resp.StatusCode, respBody)
	}
	observe(method, resource, "ok", start)

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) tokenFor(ctx context.Context) string {
	if token := AccessToken(ctx); token != "" {
		return token
	}
	return c.token
}

// resourceLabel keeps metric cardinality bounded: "brands/introducer/4" -> "brands".
func resourceLabel(path string) string {
	path = strings.TrimLeft(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}
