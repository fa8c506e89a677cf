package services

import (
	"context"
	"fmt"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMBaseURL        = "llm.base_url"
	keyLLMAPIKey         = "llm.api_key"
	keyCaptureGitHub     = "capture.github_token"
	keyCaptureTimeout    = "capture.timeout_seconds"
	keyServerAddr        = "server.addr"
	keyHistoryMaxEntries = "history.max_entries"
)

// SettingsService manages application settings over a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
	validator   driven.LLMConfigValidator
}

// NewSettingsService creates a new settings service. validator may be nil,
// in which case ValidateLLMConfig is a no-op success.
func NewSettingsService(configStore driven.ConfigStore, validator driven.LLMConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validator:   validator,
	}
}

// Get retrieves current application settings. Missing or invalid stored
// values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider: s.getProvider(defaults.LLM.Provider),
			Model:    s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:  s.configStore.GetString(keyLLMBaseURL), // No default - empty is valid for cloud providers
			APIKey:   s.configStore.GetString(keyLLMAPIKey),
		},
		Capture: domain.CaptureSettings{
			GitHubToken:    s.configStore.GetString(keyCaptureGitHub),
			TimeoutSeconds: s.getInt(keyCaptureTimeout, defaults.Capture.TimeoutSeconds),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddr, defaults.Server.Addr),
		},
		History: domain.HistorySettings{
			MaxEntries: s.getInt(keyHistoryMaxEntries, defaults.History.MaxEntries),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}

	if settings.Capture.GitHubToken != "" {
		if err := s.configStore.Set(keyCaptureGitHub, settings.Capture.GitHubToken); err != nil {
			return fmt.Errorf("save capture github_token: %w", err)
		}
	}
	if err := s.configStore.Set(keyCaptureTimeout, settings.Capture.TimeoutSeconds); err != nil {
		return fmt.Errorf("save capture timeout: %w", err)
	}

	if err := s.configStore.Set(keyServerAddr, settings.Server.Addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}
	if err := s.configStore.Set(keyHistoryMaxEntries, settings.History.MaxEntries); err != nil {
		return fmt.Errorf("save history max_entries: %w", err)
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("%w: provider %q", domain.ErrInvalidInput, provider)
	}

	if err := s.configStore.Set(keyLLMProvider, provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if model != "" {
		if err := s.configStore.Set(keyLLMModel, model); err != nil {
			return fmt.Errorf("save llm model: %w", err)
		}
	}
	if apiKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, apiKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return *domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the
// provider.
func (s *SettingsService) ValidateLLMConfig(ctx context.Context) error {
	if s.validator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.validator.ValidateLLM(ctx, settings.LLM)
}

// getProvider reads a provider key, falling back to a default when the
// stored value is missing or invalid.
func (s *SettingsService) getProvider(fallback domain.AIProvider) domain.AIProvider {
	value := s.configStore.GetString(keyLLMProvider)
	if value == "" {
		return fallback
	}
	provider := domain.AIProvider(value)
	if !provider.IsValid() {
		return fallback
	}
	return provider
}

func (s *SettingsService) getString(key, fallback string) string {
	if value := s.configStore.GetString(key); value != "" {
		return value
	}
	return fallback
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetInt(key)
}
