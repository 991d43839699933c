package config

// Config is the umbrella configuration object returned by Initialize()
// and threaded through the application.
type Config struct {
	configDir string

	// API holds the inbound HTTP surface settings.
	API *APIConfig

	// Pipeline holds stage behavior: segmentation geometry, attempt
	// budgets, backoff, stream caps.
	Pipeline *PipelineConfig

	// Quota holds the active tier and metering behavior.
	Quota *QuotaConfig

	// Queue holds worker pool and per-queue throttle configuration.
	Queue *QueueConfig

	// Providers holds outbound provider credentials indirection.
	Providers *ProvidersConfig

	// Retention controls quota bookkeeping cleanup.
	Retention *RetentionConfig
}

// APIConfig holds the HTTP control-surface settings.
type APIConfig struct {
	// ListenAddr is the host:port the gin server binds to.
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultAPIConfig returns the built-in API defaults.
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		ListenAddr: ":8080",
	}
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
