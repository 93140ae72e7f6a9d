// Package apiclient is a thin client for the PressGraph REST API. It adds
// API-key authentication, a fixed per-request timeout, and a uniform failure
// classification on top of resty; it does not retry, cache, or pool beyond
// what the transport already does.
package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// requestTimeout bounds every request issued by the client. It is fixed:
// callers cannot extend it or cancel a call early.
const requestTimeout = 30 * time.Second

// Params holds query parameters for GET-style calls. Entries with a nil
// value are dropped; every other value is stringified, so zero, false, and
// the empty string are all sent.
type Params map[string]any

func (p Params) stringify() map[string]string {
	out := make(map[string]string, len(p))
	for k, v := range p {
		if v == nil {
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out
}

// Client issues authenticated requests against a single PressGraph API base
// URL. It holds only immutable configuration after construction and is safe
// for concurrent use.
type Client struct {
	http    *resty.Client
	headers map[string]string
	timeout time.Duration
}

// New builds a client for the given base URL. The API key must be non-empty;
// it is sent as x-api-key on every request.
func New(baseURL, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}

	return &Client{
		http: resty.New().SetBaseURL(baseURL),
		headers: map[string]string{
			"accept":       "application/json",
			"content-type": "application/json",
			"x-api-key":    apiKey,
		},
		timeout: requestTimeout,
	}, nil
}

// Do executes a single request and decodes the JSON response body.
//
// Outcomes are classified as follows: a non-2xx response or a timeout fails
// with an *APIError; any other transport failure propagates unmodified; a
// 2xx response with an undecodable body fails with a plain wrapped error.
func (c *Client) Do(ctx context.Context, method, path string, query Params, body any, headers map[string]string) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.headers)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	if len(query) > 0 {
		req.SetQueryParams(query.stringify())
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, newTimeoutError()
		}
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, newStatusError(resp)
	}

	var out any
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// Get issues a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query Params) (any, error) {
	return c.Do(ctx, http.MethodGet, path, query, nil, nil)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPost, path, nil, body, nil)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPut, path, nil, body, nil)
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPatch, path, nil, body, nil)
}

// Delete issues a DELETE request with an optional JSON body.
func (c *Client) Delete(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, body, nil)
}
