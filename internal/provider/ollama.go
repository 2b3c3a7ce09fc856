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

// Ollama is the locally hosted fallback adapter. It needs no credential and
// is always considered configured, but generation fails with Unavailable
// when the runtime is unreachable or the model is not pulled.
type Ollama struct {
	baseURL string
	model   string
	timeout time.Duration
	client  *http.Client
}

func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	// Deployments configured with the full generate endpoint still work.
	base := strings.TrimRight(baseURL, "/")
	base = strings.TrimSuffix(base, "/api/generate")
	return &Ollama{
		baseURL: base,
		model:   model,
		timeout: timeout,
		client:  &http.Client{},
	}
}

func (o *Ollama) Name() string { return "ollama-" + o.model }

func (o *Ollama) Available() bool { return true }

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (o *Ollama) Generate(ctx context.Context, p Prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"%s\n\nQuestion: %s\n\nReturn only a single DuckDB-compatible SQL SELECT statement, or the exact words: insufficient data.",
		p.System, p.Question,
	)

	body, err := json.Marshal(generateRequest{Model: o.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &Error{Provider: o.Name(), Kind: Timeout, Err: err}
		}
		return "", &Error{Provider: o.Name(), Kind: Unavailable, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 404 means the model has not been pulled yet.
		return "", &Error{Provider: o.Name(), Kind: Unavailable, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: fmt.Errorf("decoding response: %w", err)}
	}

	sql, err := ExtractSQL(out.Response)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return "", err
		}
		return "", &Error{Provider: o.Name(), Kind: Generation, Err: err}
	}
	return sql, nil
}
