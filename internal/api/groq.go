package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Devp21/talentscout-hiring-chatbot/internal/config"
	"github.com/Devp21/talentscout-hiring-chatbot/internal/metrics"
)

const groqURL = "https://api.groq.com/openai/v1/chat/completions"

// Client talks to the Groq chat-completions API. Groq is wire
// compatible with the OpenAI chat format.
type Client struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	baseURL     string
	client      *http.Client
	metrics     *metrics.Metrics
}

type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	ID      string    `json:"id"`
	Model   string    `json:"model"`
	Choices []Choice  `json:"choices"`
	Usage   Usage     `json:"usage"`
	Error   *APIError `json:"error,omitempty"`
}

type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewClient creates a Groq client from the app configuration. The
// HTTP timeout is the per-call ceiling; callers additionally pass a
// context so a turn never blocks past its deadline.
func NewClient(cfg config.GroqConfig, m *metrics.Metrics) *Client {
	return &Client{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		baseURL:     groqURL,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		metrics: m,
	}
}

// WithParams returns a copy of the client with different sampling
// parameters. Question generation and answer evaluation use different
// temperatures against the same underlying HTTP client.
func (c *Client) WithParams(temperature float64, maxTokens int) *Client {
	clone := *c
	clone.temperature = temperature
	clone.maxTokens = maxTokens
	return &clone
}

// Complete sends a single-message prompt and returns the model's text
// response with markdown fencing stripped.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	content, err := c.complete(ctx, prompt)
	if c.metrics != nil {
		c.metrics.IncrementAPICall(err == nil)
	}
	return content, err
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	request := ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("error unmarshaling response: %w", err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("groq API error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from groq API")
	}

	return cleanResponse(chatResp.Choices[0].Message.Content), nil
}

// cleanResponse removes markdown formatting the model sometimes wraps
// around its output.
func cleanResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")

	return strings.TrimSpace(response)
}
