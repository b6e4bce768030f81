package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jonathan/resumeforge/internal/llm"
)

// Settings holds process configuration read from the environment.
type Settings struct {
	Port             int
	Provider         llm.Provider
	Model            string // empty selects the provider default
	BaseURL          string // empty selects the provider default
	APIKey           string
	ResultTTL        time.Duration
	ResultMaxEntries int
	MaxBodyBytes     int64
}

// Environment defaults.
const (
	DefaultPort             = 8080
	DefaultResultTTL        = time.Hour
	DefaultResultMaxEntries = 1024
	DefaultMaxBodyBytes     = 256 << 10
)

// APIKeyEnv names the environment variable holding the credential for provider.
func APIKeyEnv(provider llm.Provider) string {
	if provider == llm.ProviderGemini {
		return "GEMINI_API_KEY"
	}
	return "GROQ_API_KEY"
}

// LoadSettings reads PORT, LLM_PROVIDER, LLM_MODEL, LLM_BASE_URL, the provider API key,
// RESULT_TTL, RESULT_MAX_ENTRIES and MAX_BODY_BYTES. Malformed values are errors;
// a missing API key is reported by Validate so flags can still supply it.
func LoadSettings() (*Settings, error) {
	provider, err := llm.ParseProvider(os.Getenv("LLM_PROVIDER"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %w", err)
	}

	port, err := envInt("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}
	ttl, err := envDuration("RESULT_TTL", DefaultResultTTL)
	if err != nil {
		return nil, err
	}
	maxEntries, err := envInt("RESULT_MAX_ENTRIES", DefaultResultMaxEntries)
	if err != nil {
		return nil, err
	}
	maxBody, err := envInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		Port:             port,
		Provider:         provider,
		Model:            os.Getenv("LLM_MODEL"),
		BaseURL:          os.Getenv("LLM_BASE_URL"),
		APIKey:           os.Getenv(APIKeyEnv(provider)),
		ResultTTL:        ttl,
		ResultMaxEntries: maxEntries,
		MaxBodyBytes:     int64(maxBody),
	}
	return s, nil
}

// Validate checks that the settings can start a client.
func (s *Settings) Validate() error {
	if s.APIKey == "" {
		return fmt.Errorf("%s environment variable is required", APIKeyEnv(s.Provider))
	}
	if s.Port <= 0 || s.Port > 65535 {
		return fmt.Errorf("invalid port %d", s.Port)
	}
	if s.ResultTTL <= 0 {
		return fmt.Errorf("RESULT_TTL must be positive")
	}
	if s.ResultMaxEntries <= 0 {
		return fmt.Errorf("RESULT_MAX_ENTRIES must be positive")
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive")
	}
	return nil
}

// LLMConfig returns the client configuration for the selected provider.
func (s *Settings) LLMConfig() *llm.Config {
	cfg, err := llm.ConfigFor(s.Provider)
	if err != nil {
		cfg = llm.DefaultConfig()
	}
	return cfg.WithModel(s.Model).WithBaseURL(s.BaseURL)
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", key, err)
	}
	return d, nil
}
