package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/agentstation/mirrorsync/pkg/constants"
	"github.com/agentstation/mirrorsync/pkg/errors"
)

// Client performs authenticated JSON requests against the Notion API.
type Client struct {
	http    *http.Client
	token   string
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL, primarily for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// New creates a transport client authenticating with the given integration token.
func New(token string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		token:   token,
		baseURL: constants.NotionBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DoJSON performs one API call under the retry policy: marshals body (when
// non-nil), issues method path, and unmarshals the response into out (when
// non-nil). Non-2xx statuses become APIError so the retry predicate can
// classify them.
func (c *Client) DoJSON(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return &errors.ValidationError{Field: path, Message: "cannot encode request body: " + err.Error()}
		}
	}

	return Retry(ctx, func() error {
		return c.once(ctx, method, path, payload, out)
	})
}

// once performs a single request attempt.
func (c *Client) once(ctx context.Context, method, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &errors.ValidationError{Field: path, Message: "cannot build request: " + err.Error()}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", constants.NotionVersion)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapAPI(0, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapAPI(0, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewAPIError(resp.StatusCode, path, apiMessage(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &errors.ValidationError{Field: path, Message: "cannot decode response: " + err.Error()}
		}
	}
	return nil
}

// apiMessage extracts the human-readable message from a Notion error body,
// falling back to the raw body.
func apiMessage(raw []byte) string {
	var parsed struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(raw))
}
