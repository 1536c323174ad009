// Package enhancement defines the event description rewrite domain.
package enhancement

import (
	"context"
	"errors"
)

// PromptPrefix is the fixed instruction placed before every description.
const PromptPrefix = "Improve the following college event description so it sounds " +
	"professional, engaging, and attractive to sponsors:\n\n"

// Domain errors.
var (
	// ErrMissingAPIKey indicates no provider API key was configured.
	ErrMissingAPIKey = errors.New("provider API key is not configured")

	// ErrMalformedResponse indicates the provider reply lacked the generated text.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

// Request is a single enhancement request. It lives for one HTTP call.
type Request struct {
	description string
}

// NewRequest creates a new Request.
func NewRequest(description string) Request {
	return Request{description: description}
}

// Description returns the raw event description.
func (r Request) Description() string { return r.description }

// Prompt returns the full instruction sent to the provider.
func (r Request) Prompt() string {
	return BuildPrompt(r.description)
}

// BuildPrompt concatenates the fixed instruction and the description.
// An empty description yields the bare instruction.
func BuildPrompt(description string) string {
	return PromptPrefix + description
}

// Enhancer rewrites event descriptions.
type Enhancer interface {
	Enhance(ctx context.Context, req Request) (string, error)
}
