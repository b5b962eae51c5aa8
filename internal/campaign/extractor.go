package campaign

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jalvarado/brandstudio/internal/jsonutil"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// strategyPrefixLimit caps how much of the strategy document is sent to the
// extraction request. Strategy runs can produce very long documents; the
// campaign fields are always established early in the text.
const strategyPrefixLimit = 5000

// ParseError indicates the extraction response was not valid JSON or did not
// match the requested shape. Callers log it and leave the store untouched;
// no partial campaign is ever stored.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("campaign extraction payload: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// JSONGenerator issues a schema-constrained generation request and returns
// the raw JSON payload.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// extractionSchema requests exactly the four derived campaign fields.
// BrandName comes from user input, not from the model.
var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"visualStyle": {
			Type:        genai.TypeString,
			Description: "A concise visual style guide for image generation, e.g. lighting, palette, mood.",
		},
		"videoConcept": {
			Type:        genai.TypeString,
			Description: "A short concept for a promotional video scene.",
		},
		"socialHooks": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "Exactly three short social media post hooks.",
		},
		"targetAudience": {
			Type:        genai.TypeString,
			Description: "One sentence describing the target audience.",
		},
	},
	Required: []string{"visualStyle", "videoConcept", "socialHooks", "targetAudience"},
}

// Extract turns a free-form strategy document into a Campaign. The strategy
// text is truncated to a fixed prefix before the schema-constrained request.
// A malformed payload returns a *ParseError.
func Extract(ctx context.Context, gen JSONGenerator, brandName, strategyText string) (*Campaign, error) {
	if len(strategyText) > strategyPrefixLimit {
		cut := strategyPrefixLimit
		// Back off to a rune boundary so the prefix stays valid UTF-8.
		for cut > 0 && !utf8.RuneStart(strategyText[cut]) {
			cut--
		}
		strategyText = strategyText[:cut]
	}

	prompt := buildExtractionPrompt(brandName, strategyText)

	payload, err := gen.GenerateJSON(ctx, prompt, extractionSchema)
	if err != nil {
		return nil, fmt.Errorf("campaign extraction request: %w", err)
	}

	fields, err := jsonutil.ParseJSON[extractedFields](payload)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	log.Debug().
		Str("brand", brandName).
		Int("social_hooks", len(fields.SocialHooks)).
		Msg("Campaign extracted from strategy text")

	return &Campaign{
		BrandName:      brandName,
		VisualStyle:    fields.VisualStyle,
		VideoConcept:   fields.VideoConcept,
		SocialHooks:    fields.SocialHooks,
		TargetAudience: fields.TargetAudience,
	}, nil
}

// extractedFields mirrors the extraction schema.
type extractedFields struct {
	VisualStyle    string   `json:"visualStyle"`
	VideoConcept   string   `json:"videoConcept"`
	SocialHooks    []string `json:"socialHooks"`
	TargetAudience string   `json:"targetAudience"`
}

// buildExtractionPrompt frames the strategy prefix for field extraction.
func buildExtractionPrompt(brandName, strategyText string) string {
	return fmt.Sprintf(
		"From the following marketing strategy for the brand %q, extract the "+
			"visual style, a video concept, exactly three social media hooks, "+
			"and the target audience.\n\nStrategy:\n%s",
		brandName, strategyText)
}
