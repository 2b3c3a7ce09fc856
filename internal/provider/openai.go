package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// OpenAI is the first-choice cloud adapter. It participates in the chain
// only when an API key is configured.
type OpenAI struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
	client  *http.Client
}

func NewOpenAI(apiKey, model, baseURL string, timeout time.Duration) *OpenAI {
	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	return &OpenAI{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
	}
}

func (o *OpenAI) Name() string { return "openai" }

func (o *OpenAI) Available() bool { return o.apiKey != "" }

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func (o *OpenAI) Generate(ctx context.Context, p Prompt) (string, error) {
	if !o.Available() {
		return "", &Error{Provider: o.Name(), Kind: Unavailable, Err: errors.New("no API key configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	body, err := json.Marshal(openAIChatRequest{
		Model: o.model,
		Messages: []openAIMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.Question},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", o.classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var out openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(out.Choices) == 0 {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: errors.New("empty choices")}
	}

	sql, err := ExtractSQL(out.Choices[0].Message.Content)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return "", err
		}
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: err}
	}
	return sql, nil
}

func (o *OpenAI) classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Provider: o.Name(), Kind: Timeout, Err: err}
	}
	return &Error{Provider: o.Name(), Kind: Unavailable, Err: err}
}
