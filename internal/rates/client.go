package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrMalformedPayload indicates a rates response that cannot be used.
var ErrMalformedPayload = errors.New("malformed rates payload")

// Payload is the JSON document returned by the rates endpoint.
type Payload struct {
	Base  string             `json:"base"`
	Date  string             `json:"date,omitempty"`
	Rates map[string]float64 `json:"rates"`
}

// Client fetches current exchange rates from a public endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	delay      time.Duration
	maxRetries int
}

// NewClient creates a rates client. Requests go to {baseURL}/{base}.
func NewClient(baseURL string, timeout, delay time.Duration, maxRetries int) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		delay:      delay,
		maxRetries: maxRetries,
	}
}

// FetchLatest fetches the latest rates relative to base.
func (c *Client) FetchLatest(ctx context.Context, base string) (Payload, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, base)

	body, err := c.fetchWithRetry(ctx, url)
	if err != nil {
		return Payload{}, err
	}

	// Parse: {"base":"USD","date":"2024-05-01","rates":{"EUR":0.92,...}}
	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if p.Base == "" || len(p.Rates) == 0 {
		return Payload{}, fmt.Errorf("%w: missing base or rates", ErrMalformedPayload)
	}

	return p, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := range c.maxRetries + 1 {
		if attempt > 0 {
			baseDelay := c.delay
			if baseDelay == 0 {
				baseDelay = time.Second
			}
			delay := baseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating rates request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("rates request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading rates response: %w", err)
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("rates endpoint rate limited (attempt %d/%d)", attempt+1, c.maxRetries+1)
			continue
		}

		return nil, fmt.Errorf("rates HTTP %d: %s", resp.StatusCode, string(body))
	}

	return nil, lastErr
}
