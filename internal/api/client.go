package api

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

	"github.com/sirupsen/logrus"

	"github.com/jonathan/marketing-agent/internal/schemas"
)

// DefaultTimeout is the default per-request timeout. A hung backend call must
// not leave the caller suspended indefinitely.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

// Client talks to the marketing-automation backend over HTTP+JSON.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logrus.Logger
	strict     bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger attaches a structured logger for request diagnostics.
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithStrictValidation enables JSON Schema validation of backend payloads.
// A payload that parses but violates its schema is treated as a rejection.
func WithStrictValidation() Option {
	return func(c *Client) {
		c.strict = true
	}
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is implemented by all backend response bodies. Every endpoint
// except /health wraps its payload in {success, message?, ...}.
type envelope interface {
	ok() bool
	detail() string
}

// apiResponse is the common success/message wrapper, embedded in every
// endpoint-specific response type.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (r *apiResponse) ok() bool {
	return r.Success
}

func (r *apiResponse) detail() string {
	return r.Message
}

// statusResponse is the body of mutation endpoints that return no payload.
type statusResponse struct {
	apiResponse
}

// do issues one request and decodes the enveloped response into out.
// Failure normalization:
//   - transport error: *UnreachableError
//   - non-2xx status: *RequestError carrying the server message when the
//     body provides one
//   - 2xx with success:false: *RequestError carrying the server message
//
// schemaName, when non-empty and strict mode is on, names the JSON Schema
// the raw payload is validated against before decoding.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body any, out envelope, schemaName string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request body: %w", op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, op, out, schemaName)
}

// send executes a prepared request and normalizes the response. Shared by do
// and the multipart onboarding path.
func (c *Client) send(req *http.Request, op string, out envelope, schemaName string) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logRequest(op, req, 0)
		return &UnreachableError{URL: c.baseURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	c.logRequest(op, req, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error bodies still carry the server's own message; preserve it.
		var probe apiResponse
		_ = json.Unmarshal(data, &probe)
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: probe.Message}
	}

	if c.strict && schemaName != "" {
		if err := schemas.Validate(schemaName, data); err != nil {
			return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: "response failed schema validation", Cause: err}
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: "failed to parse response body", Cause: err}
	}
	if !out.ok() {
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: out.detail()}
	}
	return nil
}

func (c *Client) logRequest(op string, req *http.Request, status int) {
	if c.log == nil {
		return
	}
	c.log.WithFields(logrus.Fields{
		"op":     op,
		"method": req.Method,
		"path":   req.URL.Path,
		"status": status,
	}).Debug("backend request")
}

// HealthStatus is the body of GET /health. The health endpoint is the one
// route without a success envelope.
type HealthStatus struct {
	Status string `json:"status"`
}

// Health checks backend reachability.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("health check: failed to create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnreachableError{URL: c.baseURL, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Op: "health check", StatusCode: resp.StatusCode}
	}
	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, &RequestError{Op: "health check", StatusCode: resp.StatusCode, Message: "failed to parse response body", Cause: err}
	}
	return &status, nil
}
