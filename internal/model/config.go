package model

import "time"

// Config is the process-wide configuration, loaded from defaults, the
// config file, LESSONSIFT_* environment variables, and CLI flags.
type Config struct {
	HTTP        HTTPConfig        `json:"http" yaml:"http"`
	Validation  ValidationConfig  `json:"validation" yaml:"validation"`
	Privacy     PrivacySettings   `json:"privacy" yaml:"privacy"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `json:"output" yaml:"output"`
}

// HTTPConfig configures the page and robots.txt fetchers.
type HTTPConfig struct {
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	UserAgent    string        `json:"user_agent" yaml:"user_agent"`
	MaxBodyBytes int64         `json:"max_body_bytes" yaml:"max_body_bytes"`
	InsecureTLS  bool          `json:"insecure_tls" yaml:"insecure_tls"`
}

// ValidationConfig tunes the validation engine thresholds.
type ValidationConfig struct {
	MinWordCount    int     `json:"min_word_count" yaml:"min_word_count"`
	MinQualityScore float64 `json:"min_quality_score" yaml:"min_quality_score"`
	StrictMode      bool    `json:"strict_mode" yaml:"strict_mode"`
}

// CacheConfig configures analysis memoization and robots caching.
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// ConcurrencyConfig configures the batch worker pool and rate limiting.
type ConcurrencyConfig struct {
	Workers           int     `json:"workers" yaml:"workers"`
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int     `json:"burst" yaml:"burst"`
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      30 * time.Second,
			UserAgent:    "Lessonsift/0.1 (+https://github.com/avoronova/lessonsift)",
			MaxBodyBytes: 2_000_000,
		},
		Validation: ValidationConfig{
			MinWordCount:    200,
			MinQualityScore: 60,
		},
		Privacy: DefaultPrivacySettings(),
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers:           4,
			RequestsPerSecond: 2,
			Burst:             5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
