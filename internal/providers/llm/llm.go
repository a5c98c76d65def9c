package llm

import "context"

type Provider interface {
	// Generate sends the prompt to the named model and returns the full
	// textual response.
	Generate(ctx context.Context, model, prompt string) (string, error)
}
