package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/helixml/sponsorlink/domain/enhancement"
)

const geminiOperation = "gemini generateContent"

// GeminiProvider calls the Gemini generateContent REST endpoint.
type GeminiProvider struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
}

// GeminiConfig holds configuration for the Gemini provider.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	// HTTPClient defaults to a client without a timeout.
	HTTPClient *http.Client
}

// NewGeminiProvider creates a provider from configuration.
func NewGeminiProvider(cfg GeminiConfig) *GeminiProvider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-1.5-flash-latest"
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &GeminiProvider{
		client:  client,
		baseURL: baseURL,
		model:   model,
		apiKey:  cfg.APIKey,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text *string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Name returns "gemini".
func (p *GeminiProvider) Name() string { return "gemini" }

// Generate sends one generateContent request and returns the first
// candidate's first text part.
func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiKey == "" {
		return "", enhancement.ErrMissingAPIKey
	}

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", NewProviderError(geminiOperation, 0, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", NewProviderError(geminiOperation, 0, "build request", scrubURLError(err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", NewProviderError(geminiOperation, 0, "request failed", scrubURLError(err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewProviderError(geminiOperation, resp.StatusCode, "read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", NewProviderError(geminiOperation, resp.StatusCode, statusMessage(resp.StatusCode, resp.Status, body), nil)
	}

	text, err := extractGeminiText(body)
	if err != nil {
		return "", NewProviderError(geminiOperation, resp.StatusCode, "decode response", err)
	}
	return text, nil
}

// endpoint builds the request URL with the API key as a query parameter.
func (p *GeminiProvider) endpoint() string {
	query := url.Values{"key": []string{p.apiKey}}
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?%s", p.baseURL, url.PathEscape(p.model), query.Encode())
}

func extractGeminiText(body []byte) (string, error) {
	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", enhancement.ErrMalformedResponse, err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", enhancement.ErrMalformedResponse)
	}
	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: candidate has no content parts", enhancement.ErrMalformedResponse)
	}
	if parts[0].Text == nil {
		return "", fmt.Errorf("%w: first part has no text", enhancement.ErrMalformedResponse)
	}
	return *parts[0].Text, nil
}

// scrubURLError removes the API key from *url.Error messages.
func scrubURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		uerr.URL = redactKey(uerr.URL)
	}
	return err
}

var _ TextGenerator = (*GeminiProvider)(nil)
