// Package llm provides chat-completion client abstractions over hosted model providers.
// Callers depend on Client; concrete providers are selected through Config.
package llm

import (
	"fmt"
	"strings"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is Groq's OpenAI-compatible chat completions API
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

const (
	// DefaultGroqModel is the model the resume writer has always used.
	DefaultGroqModel = "llama3-8b-8192"
	// DefaultGroqBaseURL is Groq's OpenAI-compatible API root.
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	// DefaultGeminiModel is used when LLM_PROVIDER=gemini and no model is set.
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config holds the model configuration for a client
type Config struct {
	Provider Provider
	Model    string
	// BaseURL overrides the provider endpoint. Only honored by OpenAI-compatible providers.
	BaseURL string
}

// DefaultConfig returns the default configuration (Groq)
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider: ProviderGroq,
		Model:    DefaultGroqModel,
		BaseURL:  DefaultGroqBaseURL,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
	}
}

// ConfigFor returns the default configuration for a provider
func ConfigFor(provider Provider) (*Config, error) {
	switch provider {
	case ProviderGroq:
		return DefaultGroqConfig(), nil
	case ProviderGemini:
		return DefaultGeminiConfig(), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", provider)
	}
}

// ParseProvider maps a user-supplied name to a Provider. Empty selects Groq.
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return ProviderGroq, nil
	case ProviderGroq, ProviderGemini:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported LLM provider %q (want %q or %q)", name, ProviderGroq, ProviderGemini)
	}
}

// WithModel returns a copy of the config using model. An empty model keeps the current one.
func (c *Config) WithModel(model string) *Config {
	out := *c
	if model != "" {
		out.Model = model
	}
	return &out
}

// WithBaseURL returns a copy of the config pointing at baseURL. An empty URL keeps the current one.
func (c *Config) WithBaseURL(baseURL string) *Config {
	out := *c
	if baseURL != "" {
		out.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return &out
}
