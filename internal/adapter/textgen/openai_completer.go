package textgen

import (
	"fmt"

	"learnbyte/internal/domain"

	"github.com/tmc/langchaingo/llms/openai"
)

// NewOpenAICompleter creates a TextCompleter backed by the hosted OpenAI API.
func NewOpenAICompleter(apiKey, model string) (domain.TextCompleter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &llmCompleter{llm: llm}, nil
}
