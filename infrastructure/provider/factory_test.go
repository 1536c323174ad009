package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helixml/sponsorlink/internal/config"
)

func TestFromConfig_DefaultsToGemini(t *testing.T) {
	cfg := config.NewAppConfigWithOptions(
		config.WithGemini(config.NewEndpoint("http://localhost:1234", "gemini-test", "k")),
	)

	gen := FromConfig(cfg, nil)

	p, ok := gen.(*GeminiProvider)
	require.True(t, ok, "expected *GeminiProvider, got %T", gen)
	assert.Equal(t, "http://localhost:1234/v1beta/models/gemini-test:generateContent?key=k", p.endpoint())
}

func TestFromConfig_OpenAI(t *testing.T) {
	cfg := config.NewAppConfigWithOptions(
		config.WithProvider(config.ProviderOpenAI),
		config.WithOpenAI(config.NewEndpoint("http://localhost:8000/v1", "llama3", "sk")),
	)

	gen := FromConfig(cfg, nil)

	p, ok := gen.(*OpenAIProvider)
	require.True(t, ok, "expected *OpenAIProvider, got %T", gen)
	assert.Equal(t, "llama3", p.model)
	assert.True(t, p.hasKey)
}
