package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g., GEMINI_API_KEY).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 127.0.0.1)
	Host string `envconfig:"HOST" default:"127.0.0.1"`

	// Port is the server port to listen on.
	// Env: PORT (default: 5000)
	Port int `envconfig:"PORT" default:"5000"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Provider selects the generative-text backend (gemini or openai).
	// Env: PROVIDER (default: gemini)
	Provider string `envconfig:"PROVIDER" default:"gemini"`

	// Gemini configures the Gemini generateContent endpoint.
	Gemini EndpointEnv `envconfig:"GEMINI"`

	// OpenAI configures an OpenAI-compatible chat completion endpoint.
	OpenAI EndpointEnv `envconfig:"OPENAI"`

	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Env: CORS_ALLOWED_ORIGINS (default: *)
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// EndpointEnv holds environment configuration for a provider endpoint.
// Fields are untagged: only the prefixed names (GEMINI_API_KEY, ...) resolve.
type EndpointEnv struct {
	// Env: *_BASE_URL
	BaseURL string `split_words:"true"`

	// Env: *_MODEL
	Model string `split_words:"true"`

	// Env: *_API_KEY
	APIKey string `split_words:"true"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (e EnvConfig) Validate() error {
	switch ProviderKind(strings.ToLower(e.Provider)) {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider %q: want %q or %q", e.Provider, ProviderGemini, ProviderOpenAI)
	}
	return nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.Provider != "" {
		cfg = applyOption(cfg, WithProvider(ProviderKind(strings.ToLower(e.Provider))))
	}

	cfg = applyOption(cfg, WithGemini(e.Gemini.toEndpoint(cfg.Gemini())))
	cfg = applyOption(cfg, WithOpenAI(e.OpenAI.toEndpoint(cfg.OpenAI())))
	cfg = applyOption(cfg, WithAllowedOrigins(ParseOrigins(e.CORSAllowedOrigins)))

	return cfg
}

// toEndpoint overlays the set fields onto defaults.
func (e EndpointEnv) toEndpoint(defaults Endpoint) Endpoint {
	baseURL := defaults.BaseURL()
	if e.BaseURL != "" {
		baseURL = strings.TrimRight(e.BaseURL, "/")
	}
	model := defaults.Model()
	if e.Model != "" {
		model = e.Model
	}
	return NewEndpoint(baseURL, model, strings.TrimSpace(e.APIKey))
}

func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
