package llm

import "context"

// Provider is the generative collaborator consumed by the fallback
// answerer and the plan generator. Implementations own their own
// timeout policy; callers just await the result.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
