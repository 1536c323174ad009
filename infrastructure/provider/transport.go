package provider

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport is an http.RoundTripper that logs each outbound provider
// call at debug level. The request URL is logged with its key parameter
// redacted.
type LoggingTransport struct {
	inner  http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport creates a LoggingTransport. If inner is nil,
// http.DefaultTransport is used.
func NewLoggingTransport(inner http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if inner == nil {
		inner = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingTransport{inner: inner, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	target := redactKey(req.URL.String())

	resp, err := t.inner.RoundTrip(req)
	if err != nil {
		t.logger.DebugContext(req.Context(), "provider call failed",
			slog.String("method", req.Method),
			slog.String("url", target),
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	t.logger.DebugContext(req.Context(), "provider call completed",
		slog.String("method", req.Method),
		slog.String("url", target),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}

// newHTTPClient returns a client without a timeout that logs through logger.
func newHTTPClient(logger *slog.Logger) *http.Client {
	return &http.Client{Transport: NewLoggingTransport(nil, logger)}
}
