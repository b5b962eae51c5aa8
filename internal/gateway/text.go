package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/jalvarado/brandstudio/internal/metrics"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Source is one web citation attached to a grounded response.
type Source struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// GroundingResult is a grounded text response with its web citations.
// It is transient: callers render it and discard it.
type GroundingResult struct {
	Text    string   `json:"text"`
	Sources []Source `json:"sources"`
}

// GenerateText produces free-form text. useThinking applies the configured
// reasoning budget, intended for strategy-grade generation.
func (g *Gateway) GenerateText(ctx context.Context, prompt string, useThinking bool) (string, error) {
	var config *genai.GenerateContentConfig
	if useThinking && g.cfg.ThinkingBudget > 0 {
		config = &genai.GenerateContentConfig{
			ThinkingConfig: &genai.ThinkingConfig{
				ThinkingBudget: genai.Ptr(g.cfg.ThinkingBudget),
			},
		}
	}

	log.Debug().
		Str("model", g.cfg.TextModel).
		Int("prompt_length", len(prompt)).
		Bool("thinking", useThinking).
		Msg("Sending text generation request")

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TextModel, genai.Text(prompt), config)
	g.emitCallMetrics("text", resp, err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("generate text: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("received empty response from generation API")
	}
	return text, nil
}

// GenerateGrounded produces text with the web-search grounding tool enabled
// and returns the response alongside its source citations.
func (g *Gateway) GenerateGrounded(ctx context.Context, prompt string) (*GroundingResult, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	log.Debug().
		Str("model", g.cfg.TextModel).
		Int("prompt_length", len(prompt)).
		Msg("Sending grounded generation request")

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TextModel, genai.Text(prompt), config)
	g.emitCallMetrics("grounded", resp, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("generate grounded text: %w", err)
	}

	result := groundingFromResponse(resp)
	if result.Text == "" {
		return nil, fmt.Errorf("received empty response from generation API")
	}
	return result, nil
}

// groundingFromResponse extracts the text and web citations from a response.
func groundingFromResponse(resp *genai.GenerateContentResponse) *GroundingResult {
	result := &GroundingResult{Text: resp.Text()}

	for _, candidate := range resp.Candidates {
		if candidate.GroundingMetadata == nil {
			continue
		}
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			result.Sources = append(result.Sources, Source{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}

	return result
}

// emitCallMetrics records latency and token usage for one gateway call.
func (g *Gateway) emitCallMetrics(operation string, resp *genai.GenerateContentResponse, err error, elapsed time.Duration) {
	m := metrics.New("BrandStudio").
		Dimension("Operation", operation).
		Metric("GatewayLatencyMs", float64(elapsed.Milliseconds()), metrics.UnitMilliseconds).
		Count("GatewayCalls")
	if err != nil {
		m.Count("GatewayErrors")
	}
	if resp != nil && resp.UsageMetadata != nil {
		m.Metric("GatewayInputTokens", float64(resp.UsageMetadata.PromptTokenCount), metrics.UnitCount)
		m.Metric("GatewayOutputTokens", float64(resp.UsageMetadata.CandidatesTokenCount), metrics.UnitCount)
	}
	m.Flush()
}
