// Package httpclient provides the low-level HTTP call primitive used by the
// Nexus client. It owns a connection-reusing *http.Client with a fixed
// timeout and merges persistent identity headers with per-call overrides.
// It never judges status codes: whatever response the server produced is
// returned intact, and classification belongs to the caller.
package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

// defaultTimeout bounds every request, including connection setup and
// reading the full body.
const defaultTimeout = 30 * time.Second

// Client wraps an *http.Client with a base URL and a set of persistent
// headers applied to every request.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient substitutes the underlying *http.Client. The caller keeps
// responsibility for its timeout configuration.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client rooted at baseURL. The given headers are sent with
// every request; per-call headers in RequestOptions override them on
// conflict. No network I/O happens until Do is called.
func New(baseURL string, headers map[string]string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		headers:    headers,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestOptions describes a single HTTP request. Query, Form and Headers
// may be nil; a nil or empty Query produces a URL with no query string at
// all rather than an empty one.
type RequestOptions struct {
	Method  string            // HTTP method (GET, POST, DELETE)
	Path    string            // endpoint path relative to the base URL
	Query   map[string]string // optional query parameters
	Form    map[string]string // optional form-encoded body
	Headers map[string]string // per-call header overrides
}

// RawResponse is the unjudged outcome of a request: status, headers and
// body exactly as the transport delivered them.
type RawResponse struct {
	StatusCode int
	Reason     string // reason phrase from the status line
	Header     http.Header
	Body       []byte
}

// Do performs one HTTP request. It returns an error only for transport
// failures (unreachable host, timeout, unreadable body); every HTTP status
// the server managed to send comes back as a RawResponse.
func (c *Client) Do(opts RequestOptions) (*RawResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %v", err)
	}
	u.Path = path.Join(u.Path, opts.Path)

	if len(opts.Query) > 0 {
		q := u.Query()
		for k, v := range opts.Query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if len(opts.Form) > 0 {
		form := url.Values{}
		for k, v := range opts.Form {
			form.Set(k, v)
		}
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequest(opts.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// reasonPhrase extracts the reason phrase from the response status line,
// falling back to the standard text for the code when the transport
// supplied none.
func reasonPhrase(resp *http.Response) string {
	prefix := strconv.Itoa(resp.StatusCode) + " "
	if strings.HasPrefix(resp.Status, prefix) {
		return strings.TrimPrefix(resp.Status, prefix)
	}
	return http.StatusText(resp.StatusCode)
}
