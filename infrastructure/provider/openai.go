package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"

	"github.com/helixml/sponsorlink/domain/enhancement"
)

const openAIOperation = "openai chat completion"

// OpenAIProvider generates text through an OpenAI-compatible chat completion API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
	hasKey bool
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// NewOpenAIProvider creates a provider from configuration.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		config.HTTPClient = cfg.HTTPClient
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  model,
		hasKey: cfg.APIKey != "",
	}
}

// Name returns "openai".
func (p *OpenAIProvider) Name() string { return "openai" }

// Generate sends the prompt as a single user message.
func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if !p.hasKey {
		return "", enhancement.ErrMissingAPIKey
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", p.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", NewProviderError(openAIOperation, http.StatusOK, "decode response",
			fmt.Errorf("%w: no choices", enhancement.ErrMalformedResponse))
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) wrapError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusText(apiErr.HTTPStatusCode)
		return NewProviderError(openAIOperation, apiErr.HTTPStatusCode,
			statusMessage(apiErr.HTTPStatusCode, fmt.Sprintf("%d %s", apiErr.HTTPStatusCode, status), []byte(apiErr.Message)), nil)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return NewProviderError(openAIOperation, reqErr.HTTPStatusCode,
			statusMessage(reqErr.HTTPStatusCode, reqErr.HTTPStatus, reqErr.Body), nil)
	}

	return NewProviderError(openAIOperation, 0, "request failed", err)
}

var _ TextGenerator = (*OpenAIProvider)(nil)
