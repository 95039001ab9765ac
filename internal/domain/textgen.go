package domain

import "context"

// TextCompleter is the port to the pluggable text-generation backend. The
// backend identity (hosted API vs locally-run model) is a configuration
// choice; callers must not assume anything about the response beyond plain
// text.
type TextCompleter interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
