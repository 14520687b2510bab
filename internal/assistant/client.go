package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dom/pickup-hoops/internal/balancing"
)

const (
	defaultTimeout   = 5 * time.Second
	maxResponseBytes = 1 << 20
)

// ErrEmptyProposal is returned when the service answers without any teams
var ErrEmptyProposal = errors.New("assistant: response contained no teams")

// StatusError reports a non-200 answer from the balancing service
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("assistant: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Permanent reports whether repeating the same request cannot succeed.
// Client errors other than 408 and 429 are permanent.
func (e *StatusError) Permanent() bool {
	switch e.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return e.StatusCode >= 400 && e.StatusCode < 500
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the balancing service.
type Config struct {
	URL        string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client asks a remote balancing service for team splits over JSON.
type Client struct {
	url        string
	apiKey     string
	timeout    time.Duration
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	var client httpDoer = &http.Client{Timeout: timeout}
	if cfg.HTTPClient != nil {
		client = cfg.HTTPClient
	}
	return &Client{
		url:        strings.TrimSuffix(cfg.URL, "/"),
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		httpClient: client,
	}
}

// Propose implements balancing.Assistant. Every call is bounded by the
// configured timeout regardless of the caller's context.
func (c *Client) Propose(ctx context.Context, req balancing.AssistRequest) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(proposeRequest{
		Strategy: string(req.Strategy),
		Plan:     req.Plan,
		Players:  toPlayerPayloads(req.Players),
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	var payload proposeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("assistant: decode response: %w", err)
	}
	if len(payload.Teams) == 0 {
		return nil, ErrEmptyProposal
	}

	teams := make([][]string, len(payload.Teams))
	for i, t := range payload.Teams {
		teams[i] = t.PlayerIDs
	}
	return teams, nil
}
