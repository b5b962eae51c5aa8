package console

import (
	"context"
	"fmt"

	"github.com/jalvarado/brandstudio/internal/campaign"
	"github.com/jalvarado/brandstudio/internal/filehandler"
	"github.com/rs/zerolog/log"
)

// ImageScreen generates, edits, and analyzes images. Its prompt field is
// auto-filled once from the active campaign's visual style.
type ImageScreen struct {
	screenState
	gen   Generator
	store *campaign.Store

	prompt       string
	lastImageURI string // data URI of the most recent result
}

// imagePromptFromCampaign derives the default image prompt.
func imagePromptFromCampaign(c *campaign.Campaign) string {
	return fmt.Sprintf("Product photograph for %s. Style: %s. Audience: %s.",
		c.BrandName, c.VisualStyle, c.TargetAudience)
}

// Prompt returns the screen's prompt field after applying auto-fill.
func (s *ImageScreen) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoFill(s.store, &s.prompt, imagePromptFromCampaign)
	return s.prompt
}

// SetPrompt records a user edit. Edits never write back to the campaign.
func (s *ImageScreen) SetPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = prompt
}

// LastImage returns the data URI of the most recent result, or "".
func (s *ImageScreen) LastImage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastImageURI
}

// Generate produces an image from prompt (falling back to the screen's
// auto-filled field when empty) and returns it as a data URI.
func (s *ImageScreen) Generate(ctx context.Context, prompt, aspectRatio string) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	if prompt == "" {
		prompt = s.Prompt()
	}
	if prompt == "" {
		return "", fmt.Errorf("image prompt is required")
	}

	result, err := s.gen.GenerateImage(ctx, prompt, aspectRatio)
	if err != nil {
		return "", err
	}

	payload := &filehandler.FilePayload{Data: result.Data, MIMEType: result.MIMEType}
	uri := payload.DataURI()

	s.mu.Lock()
	s.lastImageURI = uri
	s.mu.Unlock()

	return uri, nil
}

// Edit applies a natural-language instruction to an uploaded image (as a
// data URI) and returns the edited image as a data URI.
func (s *ImageScreen) Edit(ctx context.Context, imageDataURI, instruction string) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	if instruction == "" {
		return "", fmt.Errorf("edit instruction is required")
	}

	payload, err := filehandler.ParseDataURI(imageDataURI)
	if err != nil {
		return "", fmt.Errorf("input image: %w", err)
	}

	result, err := s.gen.EditImage(ctx, payload.Data, payload.MIMEType, instruction)
	if err != nil {
		return "", err
	}

	edited := &filehandler.FilePayload{Data: result.Data, MIMEType: result.MIMEType}
	uri := edited.DataURI()

	s.mu.Lock()
	s.lastImageURI = uri
	s.mu.Unlock()

	return uri, nil
}

// Analyze answers a question about an uploaded image. EXIF metadata, when
// present, is appended to the question for better-grounded answers.
func (s *ImageScreen) Analyze(ctx context.Context, imageDataURI, question string) (string, error) {
	if err := s.begin(); err != nil {
		return "", err
	}
	defer s.end()

	if question == "" {
		question = "Describe this image and assess its fit for a marketing campaign."
	}

	payload, err := filehandler.ParseDataURI(imageDataURI)
	if err != nil {
		return "", fmt.Errorf("input image: %w", err)
	}

	if meta, err := filehandler.ExtractImageMetadata(payload.Data); err == nil {
		if extra := meta.PromptContext(); extra != "" {
			question = question + "\n\n" + extra
		}
	} else {
		log.Debug().Err(err).Msg("No EXIF metadata available for analysis prompt")
	}

	return s.gen.AnalyzeImage(ctx, payload.Data, payload.MIMEType, question)
}
