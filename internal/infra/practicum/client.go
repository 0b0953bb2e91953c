// internal/infra/practicum/client.go
package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"
)

// DefaultEndpoint is the homework statuses endpoint of the Practicum API.
const DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

const maxResponseBodySize = 1 << 20 // 1MB

// maxErrorBodyRunes caps the body kept in errors; 5xx pages can be huge.
const maxErrorBodyRunes = 500

// Client implements homework.StatusSource over the Practicum REST API.
type Client struct {
	endpoint   string
	token      string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a status API client. A zero timeout leaves requests unbounded.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// FetchStatuses requests homework statuses changed since from (a Unix timestamp).
// Any failure is reported as *homework.RemoteAPIError.
func (c *Client) FetchStatuses(ctx context.Context, from int64) (any, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, &homework.RemoteAPIError{Err: fmt.Errorf("invalid endpoint: %w", err)}
	}
	query := reqURL.Query()
	query.Set("from_date", strconv.FormatInt(from, 10))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, &homework.RemoteAPIError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Authorization", "OAuth "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &homework.RemoteAPIError{Err: fmt.Errorf("execute request: %w", err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, &homework.RemoteAPIError{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &homework.RemoteAPIError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			Body:       homework.Abbreviate(string(body), maxErrorBodyRunes),
		}
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, &homework.RemoteAPIError{Err: fmt.Errorf("parse response: %w", err)}
	}
	return payload, nil
}
