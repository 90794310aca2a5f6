package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// maxBody caps how much of a provider response is read.
const maxBody = 4 << 20

// Option configures a provider client.
type Option func(*base)

type base struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL points the client at another host, e.g. a test server or GitHub Enterprise.
func WithBaseURL(u string) Option {
	return func(b *base) { b.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(b *base) {
		if h != nil {
			b.httpClient = h
		}
	}
}

func newBase(defaultURL string, opts []Option) base {
	b := base{
		baseURL:    strings.TrimRight(defaultURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// StatusError is a non-2xx provider response.
type StatusError struct {
	Provider string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error (%d): %s", e.Provider, e.Status, e.Body)
}

// getJSON issues a GET and decodes a 2xx body into out.
func (b base) getJSON(ctx context.Context, provider, url string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", provider, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	return b.do(req, provider, out)
}

func (b base) do(req *http.Request, provider string, out any) error {
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", provider, err)
	}
	if resp.StatusCode >= 300 {
		return &StatusError{Provider: provider, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", provider, err)
	}
	return nil
}
