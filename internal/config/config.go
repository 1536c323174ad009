// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Default configuration values.
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 5000
	DefaultLogLevel       = "INFO"
	DefaultProvider       = ProviderGemini
	DefaultGeminiBaseURL  = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel    = "gemini-1.5-flash-latest"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultAllowedOrigins = "*"
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// ProviderKind selects the generative-text backend.
type ProviderKind string

// ProviderKind values.
const (
	ProviderGemini ProviderKind = "gemini"
	ProviderOpenAI ProviderKind = "openai"
)

// Endpoint configures a generative-text provider endpoint.
type Endpoint struct {
	baseURL string
	model   string
	apiKey  string
}

// NewEndpoint creates a new Endpoint.
func NewEndpoint(baseURL, model, apiKey string) Endpoint {
	return Endpoint{baseURL: baseURL, model: model, apiKey: apiKey}
}

// BaseURL returns the base URL for the endpoint.
func (e Endpoint) BaseURL() string { return e.baseURL }

// Model returns the model identifier.
func (e Endpoint) Model() string { return e.model }

// APIKey returns the API key.
func (e Endpoint) APIKey() string { return e.apiKey }

// HasAPIKey reports whether an API key is configured.
func (e Endpoint) HasAPIKey() bool { return e.apiKey != "" }

// AppConfig holds the main application configuration.
type AppConfig struct {
	host           string
	port           int
	logLevel       string
	logFormat      LogFormat
	provider       ProviderKind
	gemini         Endpoint
	openai         Endpoint
	allowedOrigins []string
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		host:           DefaultHost,
		port:           DefaultPort,
		logLevel:       DefaultLogLevel,
		logFormat:      LogFormatPretty,
		provider:       DefaultProvider,
		gemini:         NewEndpoint(DefaultGeminiBaseURL, DefaultGeminiModel, ""),
		openai:         NewEndpoint("", DefaultOpenAIModel, ""),
		allowedOrigins: []string{DefaultAllowedOrigins},
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Provider returns the selected provider kind.
func (c AppConfig) Provider() ProviderKind { return c.provider }

// Gemini returns the Gemini endpoint configuration.
func (c AppConfig) Gemini() Endpoint { return c.gemini }

// OpenAI returns the OpenAI-compatible endpoint configuration.
func (c AppConfig) OpenAI() Endpoint { return c.openai }

// ActiveEndpoint returns the endpoint of the selected provider.
func (c AppConfig) ActiveEndpoint() Endpoint {
	if c.provider == ProviderOpenAI {
		return c.openai
	}
	return c.gemini
}

// AllowedOrigins returns a copy of the CORS origin list.
func (c AppConfig) AllowedOrigins() []string {
	origins := make([]string, len(c.allowedOrigins))
	copy(origins, c.allowedOrigins)
	return origins
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithProvider sets the provider kind.
func WithProvider(p ProviderKind) AppConfigOption {
	return func(c *AppConfig) { c.provider = p }
}

// WithGemini sets the Gemini endpoint.
func WithGemini(e Endpoint) AppConfigOption {
	return func(c *AppConfig) { c.gemini = e }
}

// WithOpenAI sets the OpenAI-compatible endpoint.
func WithOpenAI(e Endpoint) AppConfigOption {
	return func(c *AppConfig) { c.openai = e }
}

// WithAllowedOrigins sets the CORS origin list.
func WithAllowedOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) {
		if len(origins) == 0 {
			return
		}
		c.allowedOrigins = make([]string, len(origins))
		copy(c.allowedOrigins, origins)
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	cfg := NewAppConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns the non-secret settings as log attributes.
// API keys are reported only as set or unset.
func (c AppConfig) LogAttrs() []slog.Attr {
	active := c.ActiveEndpoint()
	return []slog.Attr{
		slog.String("addr", c.Addr()),
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.String("provider", string(c.provider)),
		slog.String("provider_base_url", active.BaseURL()),
		slog.String("provider_model", active.Model()),
		slog.Bool("provider_api_key_set", active.HasAPIKey()),
		slog.String("allowed_origins", strings.Join(c.allowedOrigins, ",")),
	}
}

// ParseOrigins parses a comma-separated list of CORS origins.
func ParseOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
