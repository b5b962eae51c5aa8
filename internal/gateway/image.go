package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// ErrNoImage indicates a completed generation response carried no image part.
var ErrNoImage = errors.New("no image generated")

// ImageResult holds the outcome of an image generation or editing call.
type ImageResult struct {
	// Data is the raw bytes of the generated image.
	Data []byte
	// MIMEType is the image MIME type, e.g. "image/png".
	MIMEType string
	// Text is any commentary returned alongside the image.
	Text string
}

// GenerateImage produces an image from a text prompt. aspectRatio is an
// optional provider ratio string such as "1:1" or "16:9".
func (g *Gateway) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*ImageResult, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}
	if aspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: aspectRatio}
	}

	log.Info().
		Str("model", g.cfg.ImageModel).
		Str("aspect_ratio", aspectRatio).
		Int("prompt_length", len(prompt)).
		Msg("Sending image generation request")

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.ImageModel, genai.Text(prompt), config)
	g.emitCallMetrics("image_generate", resp, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	return imageFromResponse(resp)
}

// EditImage sends an image with a natural-language instruction and returns
// the edited image.
func (g *Gateway) EditImage(ctx context.Context, imageData []byte, mimeType, instruction string) (*ImageResult, error) {
	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			{Text: instruction},
		},
	}}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	log.Info().
		Str("model", g.cfg.ImageModel).
		Int("image_bytes", len(imageData)).
		Str("image_mime", mimeType).
		Msg("Sending image editing request")

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.ImageModel, contents, config)
	g.emitCallMetrics("image_edit", resp, err, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("edit image: %w", err)
	}

	return imageFromResponse(resp)
}

// AnalyzeImage sends an image with a question and returns a text answer.
func (g *Gateway) AnalyzeImage(ctx context.Context, imageData []byte, mimeType, question string) (string, error) {
	contents := []*genai.Content{{
		Role: "user",
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			{Text: question},
		},
	}}

	log.Info().
		Str("model", g.cfg.TextModel).
		Int("image_bytes", len(imageData)).
		Msg("Sending image analysis request")

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.cfg.TextModel, contents, nil)
	g.emitCallMetrics("image_analyze", resp, err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("analyze image: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("received empty response from generation API")
	}
	return text, nil
}

// imageFromResponse extracts the first inline image from any candidate,
// collecting any accompanying text. A response with no inline image part in
// any content part fails with ErrNoImage rather than returning an empty
// result.
func imageFromResponse(resp *genai.GenerateContentResponse) (*ImageResult, error) {
	result := &ImageResult{}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 && result.Data == nil {
				result.Data = part.InlineData.Data
				result.MIMEType = part.InlineData.MIMEType
			}
			if part.Text != "" {
				result.Text += part.Text
			}
		}
	}

	if result.Data == nil {
		return nil, fmt.Errorf("%w (text: %s)", ErrNoImage, truncate(result.Text, 200))
	}
	return result, nil
}

// truncate shortens s to max characters, appending "..." when cut.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
