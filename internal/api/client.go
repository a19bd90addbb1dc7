// Package api provides the HTTP client for the nexchat counsellor backend.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/proxy"

	apierrors "github.com/ananth/nexchat/internal/errors"
)

// DefaultBaseURL is where a locally run backend listens.
const DefaultBaseURL = "http://localhost:5000"

// defaultHeaderTimeout bounds connection setup and the wait for response
// headers. Stream bodies are never deadlined: a reply takes as long as
// the counsellor model takes.
const defaultHeaderTimeout = 30 * time.Second

// Backend endpoints
const (
	endpointChat  = "/chat"
	endpointClear = "/clear"
)

// ClientInterface defines the backend operations the UI layers use
type ClientInterface interface {
	// StreamMessage posts a user message and invokes fn once per decoded
	// text fragment, in arrival order, until the stream ends.
	StreamMessage(ctx context.Context, message string, fn func(fragment string)) error
	// ClearSession asks the backend to drop its conversation memory.
	ClearSession(ctx context.Context) error
	// BaseURL returns the configured backend base URL.
	BaseURL() string
	// Close releases the client. Further calls return ErrClientClosed.
	Close()
	// IsClosed reports whether Close was called.
	IsClosed() bool
}

// Client talks to the chat backend over plain HTTP
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	proxyAddr  string
	logger     *zap.Logger

	mu     sync.RWMutex
	closed bool
}

var _ ClientInterface = (*Client)(nil)

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the header/connect timeout. It does not bound how
// long a reply may stream.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithProxy routes backend traffic through a SOCKS5 proxy (host:port)
func WithProxy(addr string) ClientOption {
	return func(c *Client) {
		c.proxyAddr = addr
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new backend client for the given base URL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, apierrors.ErrNoBackend
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", baseURL)
	}

	client := &Client{
		baseURL: baseURL,
		timeout: defaultHeaderTimeout,
		logger:  zap.NewNop(),
	}

	// Apply options
	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		transport := &http.Transport{
			ResponseHeaderTimeout: client.timeout,
		}

		if client.proxyAddr != "" {
			dialer, err := proxy.SOCKS5("tcp", client.proxyAddr, nil, proxy.Direct)
			if err != nil {
				return nil, fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
			}
			if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
				transport.DialContext = contextDialer.DialContext
			} else {
				transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
					return dialer.Dial(network, addr)
				}
			}
		}

		client.httpClient = &http.Client{Transport: transport}
	}

	client.logger.Debug("backend client created",
		zap.String("base_url", client.baseURL),
		zap.Duration("timeout", client.timeout),
		zap.Bool("proxied", client.proxyAddr != ""))

	return client, nil
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the client and its idle connections
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.httpClient.CloseIdleConnections()
	c.logger.Debug("backend client closed")
}

// IsClosed returns whether the client is closed
func (c *Client) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// endpoint joins the base URL with a backend path
func (c *Client) endpoint(path string) string {
	return c.baseURL + path
}
