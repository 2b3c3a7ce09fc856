package provider

import (
	"context"
	"errors"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 500

// Anthropic is the second-choice cloud adapter, wrapping the Anthropic SDK.
// A custom base URL can point it at a compatible proxy.
type Anthropic struct {
	client  *anthropic.Client
	apiKey  string
	model   string
	timeout time.Duration
}

func NewAnthropic(apiKey, model, baseURL string, timeout time.Duration) *Anthropic {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Anthropic{
		client:  anthropic.NewClient(opts...),
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

func (a *Anthropic) Name() string { return "anthropic" }

func (a *Anthropic) Available() bool { return a.apiKey != "" }

func (a *Anthropic) Generate(ctx context.Context, p Prompt) (string, error) {
	if !a.Available() {
		return "", &Error{Provider: a.Name(), Kind: Unavailable, Err: errors.New("no API key configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.F(anthropic.Model(a.model)),
		MaxTokens: anthropic.F(int64(anthropicMaxTokens)),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.Question)),
		}),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(p.System),
		}),
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &Error{Provider: a.Name(), Kind: Timeout, Err: err}
		}
		return "", &Error{Provider: a.Name(), Kind: Unavailable, Err: err}
	}

	var text string
	for _, block := range resp.Content {
		if b, ok := block.AsUnion().(anthropic.TextBlock); ok {
			text += b.Text
		}
	}

	sql, err := ExtractSQL(text)
	if err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return "", err
		}
		return "", &Error{Provider: a.Name(), Kind: Generation, Err: err}
	}
	return sql, nil
}
