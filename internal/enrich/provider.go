package enrich

import "context"

// Provider generates free-form enrichment text for a prompt. Implementations
// talk to hosted model endpoints and are expected to fail often; callers
// treat every provider as best effort.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
