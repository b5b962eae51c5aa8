package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// GenerateJSON issues a schema-constrained generation request and returns the
// raw JSON payload. The provider enforces the shape; callers remain
// responsible for parsing, since a syntactically broken payload still gets
// through often enough to matter.
func (g *Gateway) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	log.Debug().
		Str("model", g.cfg.TextModel).
		Int("prompt_length", len(prompt)).
		Msg("Sending schema-constrained generation request")

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TextModel, genai.Text(prompt), config)
	g.emitCallMetrics("structured", resp, err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("generate structured response: %w", err)
	}

	payload := resp.Text()
	if payload == "" {
		return "", fmt.Errorf("received empty response from generation API")
	}
	return payload, nil
}
