package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/helixml/sponsorlink/domain/enhancement"
	"github.com/helixml/sponsorlink/infrastructure/provider"
)

// Enhancer rewrites event descriptions through a text generator.
type Enhancer struct {
	generator provider.TextGenerator
	logger    *slog.Logger
}

// NewEnhancer creates a new Enhancer.
func NewEnhancer(generator provider.TextGenerator, logger *slog.Logger) *Enhancer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enhancer{
		generator: generator,
		logger:    logger,
	}
}

// Enhance builds the prompt for req and issues one provider call.
func (s *Enhancer) Enhance(ctx context.Context, req enhancement.Request) (string, error) {
	if s.generator == nil {
		return "", ErrNoProvider
	}

	start := time.Now()
	text, err := s.generator.Generate(ctx, req.Prompt())
	if err != nil {
		return "", fmt.Errorf("enhance event description: %w", err)
	}

	s.logger.DebugContext(ctx, "enhancement generated",
		slog.String("provider", s.generator.Name()),
		slog.Int("input_chars", len(req.Description())),
		slog.Int("output_chars", len(text)),
		slog.Duration("duration", time.Since(start)),
	)
	return text, nil
}

var _ enhancement.Enhancer = (*Enhancer)(nil)
