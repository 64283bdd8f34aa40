package enrich

import (
	"context"
	"strings"
)

// StageResult records one provider attempt in a chain run.
type StageResult struct {
	Provider string
	Chars    int
	Err      error
}

// Chain tries providers in order and returns the first non-empty result.
type Chain struct {
	providers []Provider
}

func NewChain(providers ...Provider) *Chain {
	return &Chain{providers: providers}
}

// Empty reports whether the chain has no providers at all, meaning
// enrichment is disabled.
func (c *Chain) Empty() bool {
	return c == nil || len(c.providers) == 0
}

// Run walks the providers until one returns usable text. Every attempt is
// recorded so callers can log the fallback path. When all providers fail the
// text is empty and the caller proceeds without enrichment.
func (c *Chain) Run(ctx context.Context, prompt string) (string, []StageResult) {
	if c == nil {
		return "", nil
	}

	var out []StageResult
	for _, p := range c.providers {
		text, err := p.Generate(ctx, prompt)
		text = strings.TrimSpace(text)
		out = append(out, StageResult{
			Provider: p.Name(),
			Chars:    len(text),
			Err:      err,
		})
		if err == nil && text != "" {
			return text, out
		}
		if ctx.Err() != nil {
			break
		}
	}
	return "", out
}
