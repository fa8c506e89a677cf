package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Chat(_ context.Context, _ []driven.ChatMessage, _ driven.ChatOptions) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) ModelName() string            { return "fake" }
func (f *fakeLLM) Ping(_ context.Context) error { return nil }
func (f *fakeLLM) Close() error                 { return nil }

func TestRateLimited_PassThrough(t *testing.T) {
	inner := &fakeLLM{reply: "ok"}
	limited := NewRateLimited(inner, RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})

	result, err := limited.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "fake", limited.ModelName())
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimited_MapsProviderRateLimit(t *testing.T) {
	inner := &fakeLLM{err: errors.New("openai error (status 429): too many requests")}
	limited := NewRateLimited(inner, RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})

	_, err := limited.Generate(context.Background(), "prompt", driven.GenerateOptions{})
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	// Backoff is now active, so the next call blocks; a cancelled context
	// must unblock it instead of sleeping for the full backoff window.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = limited.Generate(ctx, "prompt", driven.GenerateOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimited_OtherErrorsUnchanged(t *testing.T) {
	innerErr := errors.New("boom")
	inner := &fakeLLM{err: innerErr}
	limited := NewRateLimited(inner, RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})

	_, err := limited.Chat(context.Background(), nil, driven.ChatOptions{})
	assert.ErrorIs(t, err, innerErr)
}
