package driven

import (
	"context"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

// Capturer fetches a pasted link and extracts its readable text.
// Implementations are selected per URL: a GitHub issue/PR capturer for
// github.com links, a generic HTML capturer for everything else.
type Capturer interface {
	// Supports reports whether this capturer handles the given URL.
	Supports(url string) bool

	// Fetch downloads the page and extracts readable text.
	Fetch(ctx context.Context, url string) (*domain.CapturedPage, error)
}

// LLMConfigValidator checks LLM settings by contacting the provider.
// Optional; when nil, settings are saved without a connectivity check.
type LLMConfigValidator interface {
	// ValidateLLM pings the provider described by the settings.
	ValidateLLM(ctx context.Context, settings domain.LLMSettings) error
}
