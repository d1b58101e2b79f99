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
)

// Client talks to the upstream marketplace backend. Every call runs under a
// per-call timeout so a stale slow response cannot outlive the request that
// replaced it.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// OnError, when set, is invoked once per failed upstream call. Used to
	// feed the error counter without importing metrics here.
	OnError func()
}

// Envelope is the upstream response wrapper: {status, data, message?}.
type Envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

const callTimeout = 7 * time.Second

// NewClient constructs an upstream client.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{httpClient: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Get performs a GET with optional query params and decodes the envelope.
func (c *Client) Get(ctx context.Context, path string, params url.Values, token string) (Envelope, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil, token)
}

// Post performs a POST with a JSON body and decodes the envelope.
func (c *Client) Post(ctx context.Context, path string, body interface{}, token string) (Envelope, error) {
	return c.doWithBody(ctx, http.MethodPost, path, body, token)
}

// Put performs a PUT with a JSON body and decodes the envelope.
func (c *Client) Put(ctx context.Context, path string, body interface{}, token string) (Envelope, error) {
	return c.doWithBody(ctx, http.MethodPut, path, body, token)
}

// Delete performs a DELETE with an optional JSON body and decodes the envelope.
func (c *Client) Delete(ctx context.Context, path string, body interface{}, token string) (Envelope, error) {
	return c.doWithBody(ctx, http.MethodDelete, path, body, token)
}

func (c *Client) doWithBody(ctx context.Context, method, path string, body interface{}, token string) (Envelope, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return Envelope{}, fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
	}
	return c.do(ctx, method, c.baseURL+path, payload, token)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, token string) (env Envelope, err error) {
	defer func() {
		if err != nil && c.OnError != nil {
			c.OnError()
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return Envelope{}, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Envelope{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, err
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("api: decode %s %s: %w", method, endpoint, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return env, &UpstreamError{StatusCode: resp.StatusCode, Message: msg}
	}
	return env, nil
}

// UpstreamError carries the backend's status code and message through to the
// caller so handlers can decide the presentation.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
}

// DecodeData unmarshals the envelope data into dst, tolerating a null body.
func (env Envelope) DecodeData(dst interface{}) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	return json.Unmarshal(env.Data, dst)
}
