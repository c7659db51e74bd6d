package rapidapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/honeycarbs/linkedin-mcp/pkg/logging"
)

const (
	defaultTimeout = 30 * time.Second
	maxErrorBody   = 4096
)

// NewClient instantiates a RapidAPI client for one provider host
func NewClient(cfg Config) (*Client, error) {
	if cfg.Key == "" {
		return nil, fmt.Errorf("rapidapi: key is required")
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("rapidapi: host is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://" + cfg.Host
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Client{
		key:        cfg.Key,
		host:       cfg.Host,
		baseURL:    baseURL,
		httpClient: httpClient,
		timeout:    timeout,
		logger:     logger.With("upstream", cfg.Host),
	}, nil
}

// Do sends req and returns the fully read body of a 2xx response.
// Every failure is an *Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if c == nil {
		return nil, &Error{Kind: KindTransport, Err: errors.New("client is nil")}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Debug("upstream request failed", "method", req.Method, "path", req.Path, "err", err)
		return nil, classify(ctx, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("upstream responded",
		"method", req.Method,
		"path", req.Path,
		"status", resp.StatusCode,
		"latency", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &Error{
			Kind:       KindHTTP,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(ctx, err)
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// GetJSON issues a GET and returns the decoded-valid JSON body
func (c *Client) GetJSON(ctx context.Context, p string, query url.Values) (json.RawMessage, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: p, Query: query})
	if err != nil {
		return nil, err
	}
	return resp.JSON()
}

// PostJSON issues a POST with a JSON body and returns the decoded-valid JSON body
func (c *Client) PostJSON(ctx context.Context, p string, body any) (json.RawMessage, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodPost, Path: p, Body: body})
	if err != nil {
		return nil, err
	}
	return resp.JSON()
}

// GetBytes issues a GET and returns the raw body
func (c *Client) GetBytes(ctx context.Context, p string, query url.Values) ([]byte, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: p, Query: query})
	if err != nil {
		return nil, err
	}
	return resp.Bytes()
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	u.Path = path.Join("/", u.Path, req.Path)
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		buf, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("x-rapidapi-key", c.key)
	httpReq.Header.Set("x-rapidapi-host", c.host)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return httpReq, nil
}

func classify(ctx context.Context, err error) *Error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	return &Error{Kind: KindTransport, Err: err}
}

// JSON returns the body when it is valid JSON carrying a non-empty value
func (r *Response) JSON() (json.RawMessage, error) {
	var v any
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	if isEmpty(v) {
		return nil, &Error{Kind: KindEmpty}
	}
	return json.RawMessage(r.Body), nil
}

// Bytes returns the raw body, failing on a zero-length payload
func (r *Response) Bytes() ([]byte, error) {
	if len(r.Body) == 0 {
		return nil, &Error{Kind: KindEmpty}
	}
	return r.Body, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	default:
		return false
	}
}
