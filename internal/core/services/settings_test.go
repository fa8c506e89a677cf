package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfold-labs/clipfold-cli/internal/adapters/driven/storage/memory"
	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
)

type stubValidator struct {
	err  error
	seen domain.LLMSettings
}

func (v *stubValidator) ValidateLLM(_ context.Context, settings domain.LLMSettings) error {
	v.seen = settings
	return v.err
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	settings, err := service.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.LLM.Provider, settings.LLM.Provider)
	assert.Equal(t, defaults.LLM.Model, settings.LLM.Model)
	assert.Equal(t, defaults.Server.Addr, settings.Server.Addr)
	assert.Equal(t, defaults.History.MaxEntries, settings.History.MaxEntries)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.provider", "anthropic")
	_ = store.Set("llm.model", "claude-3-5-sonnet-latest")
	_ = store.Set("history.max_entries", 50)

	service := NewSettingsService(store, nil)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	assert.Equal(t, "claude-3-5-sonnet-latest", settings.LLM.Model)
	assert.Equal(t, 50, settings.History.MaxEntries)
}

func TestSettingsService_Get_InvalidProviderFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("llm.provider", "not_a_provider")

	service := NewSettingsService(store, nil)

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings().LLM.Provider, settings.LLM.Provider)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	in := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider: domain.AIProviderOpenAI,
			Model:    "gpt-4o-mini",
			APIKey:   "sk-test",
		},
		Capture: domain.CaptureSettings{
			GitHubToken:    "ghp_test",
			TimeoutSeconds: 15,
		},
		Server:  domain.ServerSettings{Addr: "127.0.0.1:9000"},
		History: domain.HistorySettings{MaxEntries: 100},
	}
	require.NoError(t, service.Save(in))

	out, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, in.LLM, out.LLM)
	assert.Equal(t, in.Capture, out.Capture)
	assert.Equal(t, in.Server, out.Server)
	assert.Equal(t, in.History, out.History)
}

func TestSettingsService_SetLLMProvider(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store, nil)

	require.NoError(t, service.SetLLMProvider(domain.AIProviderAnthropic, "claude-3-5-haiku-latest", "sk-ant"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", settings.LLM.Model)
	assert.Equal(t, "sk-ant", settings.LLM.APIKey)

	err = service.SetLLMProvider("bogus", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsService_ValidateLLMConfig(t *testing.T) {
	store := memory.NewConfigStore()

	// Nil validator: validation succeeds trivially.
	service := NewSettingsService(store, nil)
	assert.NoError(t, service.ValidateLLMConfig(context.Background()))

	// Validator errors surface.
	validator := &stubValidator{err: errors.New("unreachable")}
	service = NewSettingsService(store, validator)
	err := service.ValidateLLMConfig(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.DefaultAppSettings().LLM.Provider, validator.seen.Provider)
}
