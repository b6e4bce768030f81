package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGroq, config.Provider)
	assert.Equal(t, "llama3-8b-8192", config.Model)
	assert.Equal(t, "https://api.groq.com/openai/v1", config.BaseURL)
}

func TestDefaultGeminiConfig(t *testing.T) {
	config := DefaultGeminiConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, DefaultGeminiModel, config.Model)
	assert.Empty(t, config.BaseURL)
}

func TestConfigFor(t *testing.T) {
	groq, err := ConfigFor(ProviderGroq)
	require.NoError(t, err)
	assert.Equal(t, DefaultGroqConfig(), groq)

	gemini, err := ConfigFor(ProviderGemini)
	require.NoError(t, err)
	assert.Equal(t, DefaultGeminiConfig(), gemini)

	_, err = ConfigFor("openai")
	assert.Error(t, err)
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in       string
		expected Provider
		wantErr  bool
	}{
		{"", ProviderGroq, false},
		{"groq", ProviderGroq, false},
		{" Gemini ", ProviderGemini, false},
		{"anthropic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParseProvider(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported LLM provider")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel("llama-3.1-8b-instant")

	// Original should be unchanged
	assert.Equal(t, DefaultGroqModel, config.Model)
	assert.Equal(t, "llama-3.1-8b-instant", newConfig.Model)
	assert.Equal(t, config.BaseURL, newConfig.BaseURL)

	assert.Equal(t, DefaultGroqModel, config.WithModel("").Model)
}

func TestWithBaseURL(t *testing.T) {
	config := DefaultConfig().WithBaseURL("http://127.0.0.1:9999/v1/")

	assert.Equal(t, "http://127.0.0.1:9999/v1", config.BaseURL)
	assert.Equal(t, DefaultGroqBaseURL, DefaultConfig().WithBaseURL("").BaseURL)
}

func TestProviderConstants(t *testing.T) {
	assert.Equal(t, Provider("groq"), ProviderGroq)
	assert.Equal(t, Provider("gemini"), ProviderGemini)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), DefaultGroqConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")

	_, err = NewClient(context.Background(), DefaultGeminiConfig(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestNewClient_UnknownProvider(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{Provider: "openai"}, "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider")
}

func TestNewClient_NilConfigIsGroq(t *testing.T) {
	client, err := NewClient(context.Background(), nil, "key")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.IsType(t, &GroqClient{}, client)
	assert.Equal(t, DefaultGroqModel, client.Model())
}
