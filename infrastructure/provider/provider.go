// Package provider implements generative-text backends. Each provider turns a
// prompt into generated text with exactly one outbound HTTP call.
package provider

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUpstreamStatus matches any ProviderError caused by a non-2xx reply.
var ErrUpstreamStatus = errors.New("upstream returned non-success status")

// maxErrorBody caps how much of an upstream error body is quoted in messages.
const maxErrorBody = 512

// TextGenerator generates text from a single prompt.
type TextGenerator interface {
	// Name identifies the provider in logs.
	Name() string

	// Generate sends prompt upstream and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProviderError wraps provider failures with the operation and upstream status.
type ProviderError struct {
	operation  string
	statusCode int
	message    string
	cause      error
}

// NewProviderError creates a new ProviderError. statusCode is 0 when no HTTP
// response was received.
func NewProviderError(operation string, statusCode int, message string, cause error) *ProviderError {
	return &ProviderError{
		operation:  operation,
		statusCode: statusCode,
		message:    message,
		cause:      cause,
	}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	msg := e.operation + ": " + e.message
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ProviderError) Unwrap() error {
	return e.cause
}

// Is reports whether target is ErrUpstreamStatus and the error carries a
// non-success HTTP status.
func (e *ProviderError) Is(target error) bool {
	return target == ErrUpstreamStatus && (e.statusCode < 200 || e.statusCode > 299) && e.statusCode != 0
}

// Operation returns the operation that failed.
func (e *ProviderError) Operation() string { return e.operation }

// StatusCode returns the HTTP status code if available.
func (e *ProviderError) StatusCode() int { return e.statusCode }

// Message returns the error message.
func (e *ProviderError) Message() string { return e.message }

// statusMessage describes a non-2xx reply, quoting a trimmed body.
func statusMessage(code int, status string, body []byte) string {
	if status == "" {
		status = fmt.Sprintf("%d", code)
	}
	msg := "upstream returned status " + status
	snippet := strings.Join(strings.Fields(string(body)), " ")
	if len(snippet) > maxErrorBody {
		snippet = snippet[:maxErrorBody] + "..."
	}
	if snippet != "" {
		msg += ": " + snippet
	}
	return msg
}

// redactKey masks the "key" query parameter of a raw URL.
func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if !q.Has("key") {
		return raw
	}
	q.Set("key", "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}
