// Package nexus implements a client for the Nexus Mods public API.
//
// A Client is constructed from an API key (New) or obtained through the
// browser-based single sign-on handshake (SSOLogin). Every endpoint method
// issues one synchronous HTTP request and returns the decoded JSON payload,
// or an error from the taxonomy in errors.go. Payload shapes are
// endpoint-specific and left to the caller to interpret.
package nexus

import (
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"strings"

	jsonitor "github.com/json-iterator/go"

	"github.com/gonxm/gonxm/internal/common/httpclient"
	"github.com/gonxm/gonxm/internal/common/logtrace"
)

var json = jsonitor.ConfigCompatibleWithStandardLibrary

// BaseURL is the root of the Nexus Mods public API.
const BaseURL = "https://api.nexusmods.com/v1/"

// Version is the library version reported in the user-agent header.
const Version = "0.1.0"

// userAgent identifies the library, host platform, word size and Go
// runtime, e.g. "gonxm/0.1.0 (linux; 64bit) go/1.24.2". Computed once per
// process; the server does not parse it.
var userAgent = fmt.Sprintf("gonxm/%s (%s; %dbit) go/%s",
	Version, runtime.GOOS, strconv.IntSize,
	strings.TrimPrefix(runtime.Version(), "go"))

// Client holds an authenticated identity and the transport used to reach
// the API.
//
// A Client is not safe for concurrent use: the rate-limit metadata map is
// refreshed last-write-wins on every call. Callers needing concurrency
// should use one Client per goroutine or synchronize externally.
type Client struct {
	apiKey   string
	http     *httpclient.Client
	metadata map[string]string
}

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client at construction time.
type Option func(*clientConfig)

// WithBaseURL overrides the API root. Intended for tests.
func WithBaseURL(u string) Option {
	return func(c *clientConfig) {
		c.baseURL = u
	}
}

// WithHTTPClient substitutes the underlying *http.Client, replacing the
// default transport and its 30-second timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// New creates a Client for the given API key. The key is sent in the
// "apikey" header of every request. No network I/O happens at construction
// time.
func New(apiKey string, opts ...Option) *Client {
	cfg := clientConfig{baseURL: BaseURL}
	for _, opt := range opts {
		opt(&cfg)
	}

	headers := map[string]string{
		"user-agent":   userAgent,
		"apikey":       apiKey,
		"content-type": "application/json",
	}

	var hcOpts []httpclient.Option
	if cfg.httpClient != nil {
		hcOpts = append(hcOpts, httpclient.WithHTTPClient(cfg.httpClient))
	}

	return &Client{
		apiKey:   apiKey,
		http:     httpclient.New(cfg.baseURL, headers, hcOpts...),
		metadata: map[string]string{},
	}
}

// SetDebugLogging toggles debug-level logging of API calls and SSO
// handshake steps on the process-wide logger.
func SetDebugLogging(enabled bool) {
	logtrace.SetDebug(enabled)
}

// RateLimitMetadata returns a copy of the rate-limit related response
// headers (names containing "X-") from the most recent API call, success
// or failure. Nexus reports hourly and daily limits in X-RL-* headers.
func (c *Client) RateLimitMetadata() map[string]string {
	out := make(map[string]string, len(c.metadata))
	for k, v := range c.metadata {
		out[k] = v
	}
	return out
}
