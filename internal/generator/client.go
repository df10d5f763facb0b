package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ClientConfig configures the chat-completions client.
type ClientConfig struct {
	BaseURL             string
	APIKey              string
	Model               string
	ChatCompletionsPath string
	Timeout             time.Duration
}

// Client talks to an OpenAI-compatible chat-completions endpoint. It keeps
// the raw request and response bytes so callers can persist the exchange
// next to whatever it produced.
type Client struct {
	baseURL             string
	apiKey              string
	model               string
	chatCompletionsPath string
	timeout             time.Duration
	httpClient          *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content,omitempty"`
		} `json:"message,omitempty"`
		Text string `json:"text,omitempty"`
	} `json:"choices"`
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("generator: base url required")
	}
	chatPath := strings.TrimSpace(cfg.ChatCompletionsPath)
	if chatPath == "" {
		chatPath = "/v1/chat/completions"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL:             baseURL,
		apiKey:              strings.TrimSpace(cfg.APIKey),
		model:               cfg.Model,
		chatCompletionsPath: chatPath,
		timeout:             timeout,
		httpClient:          &http.Client{Transport: tr},
	}, nil
}

// chat sends one completion request and returns the first choice's text
// along with the raw request and response payloads.
func (c *Client) chat(ctx context.Context, prompt string, temperature float64) (string, json.RawMessage, json.RawMessage, error) {
	reqBody := chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
	}
	reqRaw, err := json.Marshal(reqBody)
	if err != nil {
		return "", nil, nil, err
	}

	ctx2, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx2, http.MethodPost, c.baseURL+c.chatCompletionsPath, bytes.NewReader(reqRaw))
	if err != nil {
		return "", nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, nil, err
	}
	defer resp.Body.Close()

	respRaw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", nil, nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", reqRaw, respRaw, fmt.Errorf("generator: upstream status %d: %s", resp.StatusCode, string(respRaw))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respRaw, &parsed); err != nil {
		return "", reqRaw, respRaw, fmt.Errorf("generator: decode response: %w", err)
	}
	text := extractChatText(parsed)
	if strings.TrimSpace(text) == "" {
		return "", reqRaw, respRaw, errors.New("generator: empty upstream completion")
	}
	return text, reqRaw, respRaw, nil
}

func extractChatText(resp chatCompletionResponse) string {
	for _, c := range resp.Choices {
		if strings.TrimSpace(c.Message.Content) != "" {
			return c.Message.Content
		}
		if strings.TrimSpace(c.Text) != "" {
			return c.Text
		}
	}
	return ""
}

// sanitizeJSONText strips a markdown code fence that some upstreams wrap
// around JSON answers despite being told not to.
func sanitizeJSONText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	firstNL := strings.IndexByte(s, '\n')
	if firstNL == -1 {
		return strings.TrimSpace(strings.Trim(s, "`"))
	}
	s = s[firstNL+1:]
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
