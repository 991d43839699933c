package config

import "os"

// ProvidersConfig holds credential indirection for the outbound providers.
// Keys are named by environment variable so YAML never carries secrets.
type ProvidersConfig struct {
	// YouTubeAPIKeyEnv names the env var holding the YouTube Data API key.
	YouTubeAPIKeyEnv string `yaml:"youtube_api_key_env"`

	// GeminiAPIKeyEnv names the env var holding the Gemini API key.
	GeminiAPIKeyEnv string `yaml:"gemini_api_key_env"`
}

// DefaultProvidersConfig returns the built-in provider defaults.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		YouTubeAPIKeyEnv: "YOUTUBE_API_KEY",
		GeminiAPIKeyEnv:  "GEMINI_API_KEY",
	}
}

// YouTubeAPIKey resolves the YouTube key from the configured env var.
func (p *ProvidersConfig) YouTubeAPIKey() string {
	return os.Getenv(p.YouTubeAPIKeyEnv)
}

// GeminiAPIKey resolves the Gemini key from the configured env var.
func (p *ProvidersConfig) GeminiAPIKey() string {
	return os.Getenv(p.GeminiAPIKeyEnv)
}
