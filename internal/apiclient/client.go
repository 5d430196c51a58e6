// Package apiclient is the single point of egress to the UniGov REST API.
//
// Every call goes through the same pipeline: request interceptors (request id,
// bearer token from the persisted session), the HTTP round trip, and, on
// failure, error interceptors (structured logging) before the original error
// is handed back to the caller unchanged.
package apiclient

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

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/session"
)

const maxErrorBody = 1 << 20

// RequestInterceptor runs on every outgoing request before it is sent.
type RequestInterceptor func(req *http.Request) error

// ErrorInterceptor observes every failed call. It cannot replace or swallow
// the error: the caller always receives the original *RequestError.
type ErrorInterceptor func(ctx context.Context, err *appErrors.RequestError)

// Observer records call outcomes, e.g. *service.MetricsService.
type Observer interface {
	ObserveAPICall(method, path string, status int, duration time.Duration)
}

// Client is safe for concurrent use; it holds no mutable state after New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	observer   Observer

	requestInterceptors []RequestInterceptor
	errorInterceptors   []ErrorInterceptor
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout. The http.Client is copied first, so a
// client passed through WithHTTPClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithLogger sets the logger used by the error-logging interceptor.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver attaches a metrics observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithRequestInterceptor appends an interceptor after the built-in ones.
func WithRequestInterceptor(i RequestInterceptor) Option {
	return func(c *Client) {
		c.requestInterceptors = append(c.requestInterceptors, i)
	}
}

// WithErrorInterceptor appends an interceptor after the logging one.
func WithErrorInterceptor(i ErrorInterceptor) Option {
	return func(c *Client) {
		c.errorInterceptors = append(c.errorInterceptors, i)
	}
}

// New builds a client bound to baseURL. The bearer token is read from store on
// every request; a nil store means every request goes out unauthenticated.
func New(baseURL string, store session.Storage, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.requestInterceptors = append([]RequestInterceptor{RequestIDInterceptor(), AuthInterceptor(store)}, c.requestInterceptors...)
	c.errorInterceptors = append([]ErrorInterceptor{LogErrorInterceptor(c.logger)}, c.errorInterceptors...)
	return c
}

// BaseURL returns the origin the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UploadsURL resolves a stored profile photo or attachment name to a URL.
// Absolute http(s) URLs are returned as they are.
func (c *Client) UploadsURL(name string) string {
	if name == "" || strings.HasPrefix(name, "http") {
		return name
	}
	origin := strings.TrimSuffix(c.baseURL, "/api")
	return origin + "/uploads/" + strings.TrimLeft(name, "/")
}

// endpoint pairs a verb with a path template such as /polls/{optionId}/vote.
type endpoint struct {
	method  string
	pattern string
}

func (e endpoint) path(params ...string) string {
	p := e.pattern
	for _, param := range params {
		start := strings.Index(p, "{")
		end := strings.Index(p, "}")
		if start < 0 || end < start {
			break
		}
		p = p[:start] + url.PathEscape(param) + p[end+1:]
	}
	return p
}

// body is an encoded request payload.
type body interface {
	encode() (io.Reader, string, error)
}

type jsonBody struct {
	v interface{}
}

func (b jsonBody) encode() (io.Reader, string, error) {
	payload, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(payload), "application/json", nil
}

func (c *Client) call(ctx context.Context, ep endpoint, params []string, in body, out interface{}) error {
	target := c.baseURL + ep.path(params...)

	var (
		reader      io.Reader = http.NoBody
		contentType string
	)
	if in != nil {
		r, ct, err := in.encode()
		if err != nil {
			return c.fail(ctx, appErrors.NewClientError(ep.method, target, 0, nil, "invalid request body", err))
		}
		reader, contentType = r, ct
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, target, reader)
	if err != nil {
		return c.fail(ctx, appErrors.NewClientError(ep.method, target, 0, nil, "invalid request", err))
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	for _, intercept := range c.requestInterceptors {
		if err := intercept(req); err != nil {
			return c.fail(ctx, appErrors.NewClientError(ep.method, target, 0, nil, "request interceptor failed", err))
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(ep, 0, start)
		return c.fail(ctx, appErrors.NewTransportError(ep.method, target, err))
	}
	defer resp.Body.Close()
	c.observe(ep, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return c.fail(ctx, appErrors.NewStatusError(ep.method, target, resp.StatusCode, payload))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(ctx, appErrors.NewTransportError(ep.method, target, err))
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return c.fail(ctx, appErrors.NewClientError(ep.method, target, resp.StatusCode, truncateBody(payload), "invalid response body", err))
	}
	return nil
}

func truncateBody(payload []byte) []byte {
	if len(payload) > maxErrorBody {
		return payload[:maxErrorBody]
	}
	return payload
}

func (c *Client) fail(ctx context.Context, reqErr *appErrors.RequestError) error {
	for _, intercept := range c.errorInterceptors {
		intercept(ctx, reqErr)
	}
	return reqErr
}

func (c *Client) observe(ep endpoint, status int, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveAPICall(ep.method, ep.pattern, status, time.Since(start))
}
