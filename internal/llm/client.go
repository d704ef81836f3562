package llm

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

	"movefunnel/internal/domain"
)

const (
	DefaultBaseURL = "https://api.anthropic.com/v1"
	DefaultModel   = "claude-sonnet-4-20250514"
	apiVersion     = "2023-06-01"

	// PlaceholderKey is the sample key shipped in env templates. It counts as
	// no key at all.
	PlaceholderKey = "sk-ant-..."

	maxResponseBytes = 1 << 20
)

var (
	// ErrNotConfigured is returned when no usable API key is set.
	ErrNotConfigured = errors.New("llm: api key not configured")
	// ErrEmptyResponse is returned when the reply carries no text.
	ErrEmptyResponse = errors.New("llm: empty response")
)

// StatusError is a non-2xx reply from the API.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("llm post /messages: %s", e.Status)
}

// Config configures a Client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	HTTP    *http.Client
}

// Client calls the Messages endpoint.
type Client struct {
	apiKey string
	base   string
	model  string
	http   *http.Client
}

// New returns a Client. Empty fields take their defaults.
func New(cfg Config) *Client {
	c := &Client{
		apiKey: strings.TrimSpace(cfg.APIKey),
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		model:  cfg.Model,
		http:   cfg.HTTP,
	}
	if c.base == "" {
		c.base = DefaultBaseURL
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.http == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		c.http = &http.Client{Timeout: timeout}
	}
	return c
}

// Configured reports whether the client has a real API key.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiKey != PlaceholderKey
}

type messagesRequest struct {
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens"`
	System    string           `json:"system,omitempty"`
	Messages  []messageContent `json:"messages"`
}

type messageContent struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Complete sends one request and returns the text of the first content block.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	in := messagesRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  make([]messageContent, len(req.Messages)),
	}
	for i, m := range req.Messages {
		in.Messages[i] = messageContent{Role: string(m.Role), Content: m.Content}
	}

	var out messagesResponse
	if err := c.post(ctx, "/messages", in, &out); err != nil {
		return "", err
	}
	if len(out.Content) == 0 || out.Content[0].Text == "" {
		return "", ErrEmptyResponse
	}
	return out.Content[0].Text, nil
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := readAllWithLimit(resp.Body, maxResponseBytes)
	if err != nil {
		return fmt.Errorf("llm read body: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return &StatusError{Code: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("llm decode: %w", err)
	}
	return nil
}

// readAllWithLimit reads at most limit bytes and fails if the body is longer.
func readAllWithLimit(r io.Reader, limit int64) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, fmt.Errorf("response exceeds %d bytes", limit)
	}
	return b, nil
}

var _ domain.Completer = (*Client)(nil)
