package console

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jalvarado/brandstudio/internal/campaign"
	"github.com/jalvarado/brandstudio/internal/filehandler"
	"github.com/jalvarado/brandstudio/internal/gateway"
)

// JobStatus is the externally visible state of a video generation job.
type JobStatus string

const (
	JobPending JobStatus = "pending"
	JobDone    JobStatus = "done"
)

// GenerationJob is a snapshot of one video job. It is created by a
// generation request and reaches its terminal state when polling completes;
// there is no retry state and no cancellation token.
type GenerationJob struct {
	ID        string    `json:"id"`
	Status    JobStatus `json:"status"`
	ResultURI string    `json:"resultUri,omitempty"`
}

// VideoScreen generates videos and animates stills. Its prompt field is
// auto-filled once from the active campaign's video concept.
type VideoScreen struct {
	screenState
	gen   Generator
	store *campaign.Store

	prompt  string
	lastJob *GenerationJob
}

// videoPromptFromCampaign derives the default video prompt.
func videoPromptFromCampaign(c *campaign.Campaign) string {
	return c.VideoConcept
}

// Prompt returns the screen's prompt field after applying auto-fill.
func (s *VideoScreen) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoFill(s.store, &s.prompt, videoPromptFromCampaign)
	return s.prompt
}

// SetPrompt records a user edit.
func (s *VideoScreen) SetPrompt(prompt string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = prompt
}

// LastJob returns the most recent job snapshot, or nil.
func (s *VideoScreen) LastJob() *GenerationJob {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastJob
}

// Generate submits a video job and blocks the screen's flow (not the rest of
// the console) until the job is terminal. The returned job is done with a
// result URI, or the call fails and the screen returns to idle.
func (s *VideoScreen) Generate(ctx context.Context, prompt, aspectRatio string) (*GenerationJob, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	if prompt == "" {
		prompt = s.Prompt()
	}
	if prompt == "" {
		return nil, fmt.Errorf("video prompt is required")
	}

	result, err := s.gen.GenerateVideo(ctx, gateway.VideoRequest{Prompt: prompt, AspectRatio: aspectRatio})
	if err != nil {
		return nil, err
	}

	return s.finishJob(result), nil
}

// Animate seeds a video job with an uploaded still image (as a data URI).
func (s *VideoScreen) Animate(ctx context.Context, imageDataURI, prompt, aspectRatio string) (*GenerationJob, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	payload, err := filehandler.ParseDataURI(imageDataURI)
	if err != nil {
		return nil, fmt.Errorf("input image: %w", err)
	}

	if prompt == "" {
		prompt = s.Prompt()
	}

	result, err := s.gen.AnimateImage(ctx, payload.Data, payload.MIMEType, prompt, aspectRatio)
	if err != nil {
		return nil, err
	}

	return s.finishJob(result), nil
}

func (s *VideoScreen) finishJob(result *gateway.VideoResult) *GenerationJob {
	uri := result.URI
	if uri == "" {
		// Some models return the media inline instead of hosting it.
		// Encode it so the job still points at playable media.
		payload := &filehandler.FilePayload{Data: result.Data, MIMEType: result.MIMEType}
		uri = payload.DataURI()
	}

	job := &GenerationJob{
		ID:        uuid.NewString(),
		Status:    JobDone,
		ResultURI: uri,
	}

	s.mu.Lock()
	s.lastJob = job
	s.mu.Unlock()

	return job
}
