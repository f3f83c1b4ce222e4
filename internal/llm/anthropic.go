package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/anthropic"
)

// AnthropicProvider implements Provider on the Anthropic API through
// langchaingo.
type AnthropicProvider struct {
	llm     *anthropic.LLM
	timeout time.Duration
}

// NewAnthropicProvider builds the client. Low temperature keeps
// responses consistent between identical prompts.
func NewAnthropicProvider(apiKey, model string, timeout time.Duration) (*AnthropicProvider, error) {
	client, err := anthropic.New(
		anthropic.WithToken(apiKey),
		anthropic.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Anthropic client: %w", err)
	}

	return &AnthropicProvider{llm: client, timeout: timeout}, nil
}

func (a *AnthropicProvider) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	result, err := llms.GenerateFromSinglePrompt(ctx, a.llm, prompt,
		llms.WithMaxTokens(1500),
		llms.WithTemperature(0.1),
	)
	if err != nil {
		return "", fmt.Errorf("anthropic generation failed: %w", err)
	}
	return result, nil
}
