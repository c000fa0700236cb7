// Package client talks to the pizzeria HTTP API
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/thenoetrevino/pizzeria/internal/models"
)

// DefaultBaseURL is where the API listens unless configured otherwise
const DefaultBaseURL = "http://localhost:5000"

// maxErrorBody caps how much of a failure body is read when looking for an error message
const maxErrorBody = 64 << 10

// ToppingCreator is the capability the submission form depends on
type ToppingCreator interface {
	CreateTopping(ctx context.Context, name string) Result
}

// ToppingLister lists the current toppings
type ToppingLister interface {
	ListToppings(ctx context.Context) ([]*models.Topping, error)
}

// APIError is a non-2xx response from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}
	return fmt.Sprintf("api returned status %d: %s", e.Status, e.Message)
}

// Client is an HTTP client for the topping endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a client for the API at baseURL; an empty baseURL means DefaultBaseURL.
// Requests carry no timeout of their own; deadlines come from the caller's context.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client sends requests to
func (c *Client) BaseURL() string {
	return c.baseURL
}

type toppingPayload struct {
	Name string `json:"name"`
}

type toppingWire struct {
	ToppingID int    `json:"topping_id"`
	Name      string `json:"name"`
}

type errorBody struct {
	Error string `json:"error"`
}

// CreateTopping posts a new topping. Every failure, transport errors included,
// comes back as an Err result rather than a Go error.
func (c *Client) CreateTopping(ctx context.Context, name string) Result {
	err := c.send(ctx, http.MethodPost, "/toppings", toppingPayload{Name: name}, nil)
	if err == nil {
		return Ok()
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return Err(apiErr.Message)
	}
	return Err("")
}

// ListToppings fetches every topping
func (c *Client) ListToppings(ctx context.Context) ([]*models.Topping, error) {
	var wire []toppingWire
	if err := c.send(ctx, http.MethodGet, "/toppings", nil, &wire); err != nil {
		return nil, err
	}

	toppings := make([]*models.Topping, len(wire))
	for i, w := range wire {
		toppings[i] = &models.Topping{ID: w.ToppingID, Name: w.Name}
	}
	return toppings, nil
}

// UpdateTopping renames the topping with the given ID
func (c *Client) UpdateTopping(ctx context.Context, id int, name string) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/toppings/%d", id), toppingPayload{Name: name}, nil)
}

// DeleteTopping removes the topping with the given ID
func (c *Client) DeleteTopping(ctx context.Context, id int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/toppings/%d", id), nil, nil)
}

// send performs one request. Non-2xx statuses become *APIError; out, when
// non-nil, receives the decoded success body.
func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// readErrorMessage extracts the "error" string field from a failure body, if any
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var body errorBody
	if json.Unmarshal(data, &body) != nil {
		return ""
	}
	return body.Error
}
