// Package generator runs the per-request excuse pipeline: classify the
// scenario, assemble the prompt, call the generation model and sanitize its
// output. Each invocation is self-contained; there is no state shared across
// requests.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/excuselab/excuse-engine/apimodels"
	"github.com/excuselab/excuse-engine/internal/config"
	"github.com/excuselab/excuse-engine/internal/llm"
	"github.com/excuselab/excuse-engine/internal/metrics"
	"github.com/excuselab/excuse-engine/internal/persona"
	"github.com/excuselab/excuse-engine/internal/prompt"
	"github.com/excuselab/excuse-engine/internal/sanitize"
)

type Generator struct {
	llmProvider llm.Provider
	model       string
}

func New(llmProvider llm.Provider, cfg config.OpenAIConfig) *Generator {
	return &Generator{
		llmProvider: llmProvider,
		model:       cfg.Model,
	}
}

// Generate runs the pipeline in strict sequence and returns 1..variants
// excuse options. Any generation or sanitization failure is returned as a
// single error; no partial results.
func (g *Generator) Generate(ctx context.Context, req apimodels.GenerateRequest) (*apimodels.GenerateResponse, error) {
	slog.Info("starting excuse generation", "scenario", req.Scenario, "variants", req.Variants)
	startTime := time.Now()

	audience, tone := persona.Classify(req.Scenario)
	slog.Debug("classified scenario", "audience", audience, "tone", tone)

	userMsg := prompt.Build(req, audience, tone, persona.AgeStyleHint(req.Age))

	llmResp, err := g.llmProvider.Complete(ctx, prompt.SystemPrompt, userMsg)
	if err != nil {
		slog.Error("generation call failed", "error", err)
		metrics.GenerationTotal.WithLabelValues(metrics.StatusGenerationError).Inc()
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	texts, err := sanitize.Parse(llmResp.Content)
	if err != nil {
		slog.Error("model output could not be parsed", "error", err)
		metrics.GenerationTotal.WithLabelValues(metrics.StatusParseError).Inc()
		return nil, err
	}

	limit := req.Variants
	if limit < 1 {
		limit = 1
	}
	options := sanitize.Filter(texts, limit)

	metrics.GenerationTotal.WithLabelValues(metrics.StatusOK).Inc()
	metrics.GenerationDuration.Observe(time.Since(startTime).Seconds())
	slog.Info("excuse generation completed", "options", len(options), "tokens", llmResp.Usage.TotalTokens)

	return &apimodels.GenerateResponse{
		Options: options,
		Metadata: apimodels.GenerateMetadata{
			Duration:   time.Since(startTime).String(),
			Model:      g.model,
			TokensUsed: llmResp.Usage.TotalTokens,
		},
	}, nil
}
