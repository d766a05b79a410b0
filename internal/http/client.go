// Package http is the transport used by every resource client: it builds
// requests, attaches a bearer token, and maps non-2xx responses to errors.
package http

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

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/hashicorp/go-retryablehttp"
)

// TokenSource supplies the access token for a request.
type TokenSource interface {
	GetToken(ctx context.Context) (string, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client performs HTTP requests against a single base URL.
type Client struct {
	baseURL    string
	httpClient *retryablehttp.Client
	tokens     TokenSource
	logger     Logger
	debug      bool
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// Request describes one API call.
//
// Body is JSON-encoded unless it is an io.Reader, in which case it is sent as
// is with ContentType (default application/octet-stream).
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// NewClient creates a client for baseURL. A nil tokens sends requests
// without an Authorization header.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		tokens:    tokens,
		userAgent: constants.DefaultUserAgent,
		timeout:   constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = client.newRetryableClient()

	return client
}

// newRetryableClient builds a transport that makes exactly one attempt per
// request and hands every HTTP status back to the caller.
func (c *Client) newRetryableClient() *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = c.timeout
	retryClient.CheckRetry = func(_ context.Context, _ *http.Response, _ error) (bool, error) {
		return false, nil
	}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if c.debug && c.logger != nil {
		retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
			c.logger.Debug("HTTP Request", map[string]interface{}{
				"method": req.Method,
				"url":    req.URL.Redacted(),
			})
		}
		retryClient.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
			c.logger.Debug("HTTP Response", map[string]interface{}{
				"status": resp.StatusCode,
				"url":    resp.Request.URL.Redacted(),
			})
		}
	}

	return retryClient
}

// Do sends req and returns the response. A non-2xx status yields both the
// response and a *domo.APIError (or *domo.ResponseDecodeError).
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.GetToken(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting access token: %w", err)
		}

		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return response, parseErrorResponse(resp.StatusCode, respBody)
	}

	return response, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) buildURL(path string, query url.Values) string {
	fullURL := c.baseURL + path

	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	return fullURL
}

func encodeBody(req *Request) (interface{}, string, error) {
	switch body := req.Body.(type) {
	case nil:
		return nil, "", nil
	case io.Reader:
		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		return body, contentType, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("encoding request body: %w", err)
		}

		contentType := req.ContentType
		if contentType == "" {
			contentType = constants.ContentTypeJSON
		}

		return bytes.NewReader(data), contentType, nil
	}
}

// parseErrorResponse decodes a non-2xx body into a *domo.APIError. A body
// that does not decode is reported as *domo.ResponseDecodeError carrying the
// original status.
func parseErrorResponse(statusCode int, body []byte) error {
	var apiErr domo.APIError

	err := json.Unmarshal(body, &apiErr)
	if err != nil {
		return &domo.ResponseDecodeError{StatusCode: statusCode, Body: body, Err: err}
	}

	if apiErr.Status == 0 {
		apiErr.Status = statusCode
	}

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	return &apiErr
}
