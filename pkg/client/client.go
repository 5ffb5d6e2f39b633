// Package client is a Go client for the StoryHub API that mirrors the browser session:
// the session cookie lives in a cookie jar, a copy of the token and user is persisted
// in a TokenStore, and stores keep blog and comment lists in sync with the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultCookieName = "token"
)

// APIError is returned for every response with success=false or a non-2xx status.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("storyhub: %d %s", e.Status, e.Message)
	}

	return fmt.Sprintf("storyhub: %d %s: %s", e.Status, e.Code, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// messageOf returns the server message carried by err, or fallback.
func messageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}

	return fallback
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details,omitempty"`
	} `json:"error,omitempty"`
}

// Client talks JSON to the API under baseURL, e.g. http://localhost:8080/api.
type Client struct {
	baseURL    string
	cookieName string
	httpClient *http.Client

	mu             sync.RWMutex
	onUnauthorized []func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. A cookie jar is added when it has none.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCookieName matches a server configured with a non-default auth.cookie.name.
func WithCookieName(name string) Option {
	return func(c *Client) {
		c.cookieName = name
	}
}

// New creates a client with its own cookie jar.
func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookieName: defaultCookieName,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		c.httpClient.Jar = jar
	}

	return c, nil
}

// OnUnauthorized registers fn to run after any request answered with 401.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onUnauthorized = append(c.onUnauthorized, fn)
}

// Do sends in as JSON and decodes the response envelope into out.
// It returns the envelope message on success.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) (string, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return "", errors.Wrap(err, "failed to encode request")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.unauthorized()
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < http.StatusBadRequest {
			return "", errors.Wrap(err, "failed to decode response")
		}
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		apiErr := &APIError{Status: resp.StatusCode, Message: env.Message}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Details = env.Error.Details
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		return "", apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return "", errors.Wrap(err, "failed to decode response payload")
		}
	}

	return env.Message, nil
}

// restoreSessionCookie puts a persisted token back into the cookie jar.
func (c *Client) restoreSessionCookie(token string) error {
	target, err := url.Parse(c.baseURL)
	if err != nil {
		return errors.WithStack(err)
	}

	c.httpClient.Jar.SetCookies(target, []*http.Cookie{{
		Name:     c.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	}})

	return nil
}

// sessionCookie returns the session cookie the server set, if any.
func (c *Client) sessionCookie() string {
	target, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}

	for _, cookie := range c.httpClient.Jar.Cookies(target) {
		if cookie.Name == c.cookieName {
			return cookie.Value
		}
	}

	return ""
}

func (c *Client) unauthorized() {
	c.mu.RLock()
	hooks := append([]func(){}, c.onUnauthorized...)
	c.mu.RUnlock()

	for _, hook := range hooks {
		hook()
	}
}
