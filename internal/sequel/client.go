// Package sequel is an HTTP client for the Sequel event-hosting API:
// credential exchange plus the company, event and embed-code reads used by
// the portal. All calls send JSON and authorize with a bearer token
// supplied by the caller; the client itself keeps no state between calls.
package sequel

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseURL is the production Sequel API.
	DefaultBaseURL = "https://api.introvoke.com"

	// DefaultAudience is the audience claim requested during the
	// credential exchange.
	DefaultAudience = "https://www.introvoke.com/api"
)

type Client struct {
	baseURL  string
	audience string
	httpc    *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the transport, primarily for tests.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithAudience overrides the audience sent during credential exchange.
func WithAudience(audience string) Option {
	return func(c *Client) { c.audience = audience }
}

// New returns a client for the Sequel API at baseURL. An empty baseURL
// selects the production API.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		audience: DefaultAudience,
		httpc:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one JSON request. A non-nil token authorizes the request with a
// bearer Authorization header. The raw body is returned for 2xx responses;
// everything else is an error.
func (c *Client) do(ctx context.Context, method, path string, tok *oauth2.Token, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrapf(err, "sequel: encode %s %s", method, path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.Wrapf(err, "sequel: build %s %s", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok != nil {
		tok.SetAuthHeader(req)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "sequel: %s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "sequel: read %s %s", method, path)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.Errorf("sequel: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return data, nil
}
