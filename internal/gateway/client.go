// Package gateway is the typed client of the CMS REST and GraphQL API.
package gateway

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

	"github.com/azaliaz/ruboni/internal/logger"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	graphqlURL string
	http       *http.Client
}

func New(baseURL, graphqlURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		graphqlURL: graphqlURL,
		http:       httpClient,
	}
}

type request struct {
	method   string
	path     string
	query    url.Values
	token    string
	body     any
	fallback string
}

type errorBody struct {
	Status  int    `json:"status"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorBody      `json:"error"`
}

// do sends the request and returns the raw body of a 2xx response.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	log := logger.Get()

	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, &APIError{Message: r.fallback, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, &APIError{Message: r.fallback, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", r.method).Str("path", r.path).Msg("cms request failed")
		return nil, &APIError{Message: r.fallback, Err: err}
	}
	defer resp.Body.Close()

	raw, err := readBody(resp.Body)
	if err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: r.fallback, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: r.fallback}
		var env envelope
		if json.Unmarshal(raw, &env) == nil && env.Error != nil {
			apiErr.Name = env.Error.Name
			if env.Error.Message != "" {
				apiErr.Message = env.Error.Message
			}
		}
		log.Debug().Int("status", resp.StatusCode).Str("path", r.path).Str("message", apiErr.Message).Msg("cms rejected request")
		return nil, apiErr
	}
	return raw, nil
}

// data runs the request and returns the unwrapped "data" member.
func (c *Client) data(ctx context.Context, r request) (json.RawMessage, error) {
	raw, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &APIError{Message: r.fallback, Err: fmt.Errorf("decode envelope: %w", err)}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, &APIError{Message: r.fallback, Err: ErrEmptyResponse}
	}
	return env.Data, nil
}

func populateAll() url.Values {
	return url.Values{"populate": {"*"}}
}

// maxResponseBytes caps how much of a cms response body is buffered.
const maxResponseBytes = 4 << 20

func readBody(body io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxResponseBytes+1))
	if err != nil {
		return nil, err
	}
	if len(raw) > maxResponseBytes {
		return nil, ErrResponseTooLarge
	}
	return raw, nil
}
