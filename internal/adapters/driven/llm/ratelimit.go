// Package llm provides shared helpers for the LLM service adapters.
package llm

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

// Ensure RateLimited implements the interface.
var _ driven.LLMService = (*RateLimited)(nil)

// RateLimitConfig holds rate limiting configuration for an LLM provider.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit is a conservative default suitable for hosted providers.
// Local Ollama instances can take a higher rate but one request per second
// keeps the parse pipeline well under every hosted provider's quota.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 1.0, BurstSize: 3}

// RateLimited wraps an LLM service with a token bucket rate limiter and
// backoff for provider rate limit responses.
type RateLimited struct {
	inner   driven.LLMService
	limiter *rate.Limiter

	mu      sync.Mutex
	retryAt time.Time
}

// NewRateLimited wraps the given service with the supplied rate limit.
// A zero config falls back to DefaultRateLimit.
func NewRateLimited(inner driven.LLMService, cfg RateLimitConfig) *RateLimited {
	if cfg.RequestsPerSecond <= 0 {
		cfg = DefaultRateLimit
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 1
	}

	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by recordRateLimitError.
func (r *RateLimited) wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return r.limiter.Wait(ctx)
}

// recordRateLimitError sets a backoff period after a provider 429 response.
func (r *RateLimited) recordRateLimitError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retryAt = time.Now().Add(30 * time.Second)
}

// rateLimitedError reports whether an adapter error is a provider 429.
// The adapters surface provider errors as text so this is a string check.
func rateLimitedError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "status 429") || strings.Contains(msg, "rate_limit")
}

// Generate produces text completion from a prompt.
func (r *RateLimited) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := r.wait(ctx); err != nil {
		return "", err
	}
	result, err := r.inner.Generate(ctx, prompt, opts)
	if rateLimitedError(err) {
		r.recordRateLimitError()
		return "", domain.ErrRateLimited
	}
	return result, err
}

// Chat conducts a multi-turn conversation.
func (r *RateLimited) Chat(ctx context.Context, messages []driven.ChatMessage, opts driven.ChatOptions) (string, error) {
	if err := r.wait(ctx); err != nil {
		return "", err
	}
	result, err := r.inner.Chat(ctx, messages, opts)
	if rateLimitedError(err) {
		r.recordRateLimitError()
		return "", domain.ErrRateLimited
	}
	return result, err
}

// ModelName returns the name of the underlying LLM model.
func (r *RateLimited) ModelName() string {
	return r.inner.ModelName()
}

// Ping validates the underlying service is reachable. Pings are not rate
// limited so a health check never blocks behind queued inference calls.
func (r *RateLimited) Ping(ctx context.Context) error {
	return r.inner.Ping(ctx)
}

// Close releases resources held by the underlying service.
func (r *RateLimited) Close() error {
	return r.inner.Close()
}
