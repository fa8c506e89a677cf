package domain

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for the parse pipeline.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// AllAIProviders returns every provider in menu order.
func AllAIProviders() []AIProvider {
	return []AIProvider{AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic}
}

// DefaultLLMModels maps each provider to its default model.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}

// LLMSettings holds LLM provider configuration.
type LLMSettings struct {
	// Provider selects the AI backend.
	Provider AIProvider

	// Model is the model identifier passed to the provider.
	Model string

	// BaseURL overrides the provider endpoint. Empty means the provider
	// default; required for Ollama only when not on localhost.
	BaseURL string

	// APIKey authenticates cloud providers. Unused for Ollama.
	APIKey string
}

// IsConfigured returns true if the settings are complete enough to
// create a service: a valid provider and an API key where one is needed.
func (s *LLMSettings) IsConfigured() bool {
	if s == nil || !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}

// CaptureSettings holds link capture configuration.
type CaptureSettings struct {
	// GitHubToken authenticates GitHub issue/PR capture. Empty means
	// unauthenticated requests with their lower rate limits.
	GitHubToken string

	// TimeoutSeconds bounds a single page fetch.
	TimeoutSeconds int
}

// ServerSettings holds local HTTP API configuration.
type ServerSettings struct {
	// Addr is the listen address for the HTTP API.
	Addr string
}

// HistorySettings holds parse history retention configuration.
type HistorySettings struct {
	// MaxEntries is the number of records kept before the oldest are
	// pruned. Zero or negative disables pruning.
	MaxEntries int
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	LLM     LLMSettings
	Capture CaptureSettings
	Server  ServerSettings
	History HistorySettings
}

// DefaultAppSettings returns the out-of-the-box configuration: a local
// Ollama model, no GitHub token, and a loopback API listener.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		LLM: LLMSettings{
			Provider: AIProviderOllama,
			Model:    "llama3.2",
		},
		Capture: CaptureSettings{
			TimeoutSeconds: 30,
		},
		Server: ServerSettings{
			Addr: "127.0.0.1:8787",
		},
		History: HistorySettings{
			MaxEntries: 500,
		},
	}
}
