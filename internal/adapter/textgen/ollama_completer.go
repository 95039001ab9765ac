package textgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"learnbyte/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// callLLM is the slice of the langchaingo client surface the adapters use.
// Both *ollama.LLM and *openai.LLM satisfy it.
type callLLM interface {
	Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// llmCompleter implements domain.TextCompleter on top of a langchaingo client.
// It forwards the prompt unchanged and returns the backend's plain-text
// response; it makes a single attempt and performs no retries.
type llmCompleter struct {
	llm callLLM
}

func (c *llmCompleter) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	response, err := c.llm.Call(ctx, prompt,
		llms.WithMaxTokens(maxTokens),
		llms.WithTemperature(0.7),
	)
	if err != nil {
		return "", fmt.Errorf("LLM call failed: %w", err)
	}
	return response, nil
}

// NewOllamaCompleter creates a TextCompleter backed by a locally-run Ollama
// server.
func NewOllamaCompleter(serverURL, model string) (domain.TextCompleter, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	httpClient := &http.Client{Timeout: 60 * time.Second}
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	return &llmCompleter{llm: llm}, nil
}
