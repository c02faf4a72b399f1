package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"onlinemart-client/internal/domain"
)

// Empty marks calls whose success response carries no body.
type Empty struct{}

// Client is the single chokepoint for all remote calls. It holds only
// configuration and is safe for concurrent use by every store.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *log.Logger
}

// New builds a Client for the given service base URL. A zero timeout keeps
// the transport default.
func New(baseURL string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q", domain.ErrInvalidRequest, baseURL)
	}
	return &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL.JoinPath(strings.Split(strings.Trim(path, "/"), "/")...)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do issues one request and classifies the outcome. Success statuses decode
// into T; an explicit no-content success against Empty is a success with a
// zero value. Non-2xx statuses become ServerError, with the structured
// envelope when the server sent one.
func do[T any](ctx context.Context, c *Client, method, path, token string, query url.Values, body any) (T, error) {
	var out T

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("%w: encode body: %v", domain.ErrInvalidRequest, err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), payload)
	if err != nil {
		return out, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("%w: %v", domain.ErrInvalidResponse, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("%w: read body: %v", domain.ErrInvalidResponse, err)
	}
	if c.logger != nil {
		c.logger.Printf("%s %s -> %d (%s) rid=%s", method, path, resp.StatusCode,
			time.Since(start).Round(time.Millisecond), req.Header.Get("X-Request-Id"))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env domain.ErrorEnvelope
		if json.Unmarshal(data, &env) == nil && env.Message != "" {
			return out, &domain.ServerError{Message: env.Message, Code: resp.StatusCode, Details: env.Details}
		}
		return out, &domain.ServerError{Message: "Request failed.", Code: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		if _, ok := any(out).(Empty); ok {
			return out, nil
		}
		return out, &domain.DecodeError{Raw: fmt.Sprintf("empty %d response", resp.StatusCode)}
	}
	if _, ok := any(out).(Empty); ok {
		// Body on an expected-empty call is fine; nothing to decode.
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &domain.DecodeError{Raw: truncate(string(data), 256), Err: err}
	}
	return out, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
