package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ChainOptions selects and configures the enrichment providers.
type ChainOptions struct {
	Provider    string
	Token       string
	Models      []string
	BaseURL     string
	GeminiModel string
	Timeout     time.Duration
}

// NewProviderChain builds the fallback chain for the configured provider.
// Provider "none" (or an empty token) yields an empty chain, which disables
// enrichment without failing startup.
func NewProviderChain(ctx context.Context, opts ChainOptions) (*Chain, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "hub"
	}

	switch provider {
	case "none":
		return NewChain(), nil
	case "hub":
		if strings.TrimSpace(opts.Token) == "" {
			return NewChain(), nil
		}
		providers := make([]Provider, 0, len(opts.Models))
		for _, model := range opts.Models {
			providers = append(providers, NewHubProvider(opts.Token, model, opts.BaseURL, opts.Timeout))
		}
		return NewChain(providers...), nil
	case "gemini":
		if strings.TrimSpace(opts.Token) == "" {
			return NewChain(), nil
		}
		p, err := NewGeminiProvider(ctx, opts.Token, opts.GeminiModel)
		if err != nil {
			return nil, err
		}
		return NewChain(p), nil
	default:
		return nil, fmt.Errorf("unsupported enrichment provider: %s", opts.Provider)
	}
}
