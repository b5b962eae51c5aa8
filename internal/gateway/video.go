package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jalvarado/brandstudio/internal/metrics"
	"github.com/jalvarado/brandstudio/internal/poller"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// ErrNoVideo indicates a completed video operation carried no media.
var ErrNoVideo = errors.New("video operation completed without a result URI")

// VideoRequest describes one video generation job.
type VideoRequest struct {
	// Prompt is the motion/scene description.
	Prompt string
	// AspectRatio is an optional ratio string such as "16:9" or "9:16".
	AspectRatio string
	// Image, when set, seeds the job with a still frame to animate.
	Image *genai.Image
}

// VideoResult is the terminal outcome of a video job.
type VideoResult struct {
	// URI points at the generated media. The provider appends the API key
	// as a query parameter on fetch; the URI itself is unauthenticated.
	URI string
	// Data carries inline video bytes when the provider returns them
	// instead of a URI.
	Data []byte
	// MIMEType of the generated media.
	MIMEType string
}

// GenerateVideo submits an asynchronous video job and polls it to a terminal
// state. The poll interval is fixed; by default there is no attempt ceiling,
// so a job the provider never finishes keeps the call pending until the
// context is cancelled.
func (g *Gateway) GenerateVideo(ctx context.Context, req VideoRequest) (*VideoResult, error) {
	var config *genai.GenerateVideosConfig
	if req.AspectRatio != "" {
		config = &genai.GenerateVideosConfig{AspectRatio: req.AspectRatio}
	}

	log.Info().
		Str("model", g.cfg.VideoModel).
		Str("aspect_ratio", req.AspectRatio).
		Bool("seeded_with_image", req.Image != nil).
		Int("prompt_length", len(req.Prompt)).
		Msg("Submitting video generation job")

	start := time.Now()
	op, err := g.client.Models.GenerateVideos(ctx, g.cfg.VideoModel, req.Prompt, req.Image, config)
	if err != nil {
		g.emitVideoMetrics("submit_failed", time.Since(start), 0)
		return nil, fmt.Errorf("submit video job: %w", err)
	}

	log.Debug().Str("operation", op.Name).Bool("done", op.Done).Msg("Video job submitted")

	polls := 0
	op, err = poller.Wait(ctx, g.cfg.Poll, op,
		func(op *genai.GenerateVideosOperation) bool { return op.Done },
		func(ctx context.Context, op *genai.GenerateVideosOperation) (*genai.GenerateVideosOperation, error) {
			polls++
			return g.client.Operations.GetVideosOperation(ctx, op, nil)
		})
	if err != nil {
		g.emitVideoMetrics("poll_failed", time.Since(start), polls)
		return nil, err
	}

	result, err := videoFromOperation(op)
	if err != nil {
		g.emitVideoMetrics("no_result", time.Since(start), polls)
		return nil, err
	}

	g.emitVideoMetrics("success", time.Since(start), polls)
	log.Info().
		Str("operation", op.Name).
		Int("polls", polls).
		Dur("duration", time.Since(start)).
		Msg("Video generation complete")

	return result, nil
}

// AnimateImage submits a video job seeded with a still image.
func (g *Gateway) AnimateImage(ctx context.Context, imageData []byte, mimeType, prompt, aspectRatio string) (*VideoResult, error) {
	return g.GenerateVideo(ctx, VideoRequest{
		Prompt:      prompt,
		AspectRatio: aspectRatio,
		Image:       &genai.Image{ImageBytes: imageData, MIMEType: mimeType},
	})
}

// videoFromOperation extracts the generated media from a completed
// operation. A done operation with no URI and no inline bytes fails with
// ErrNoVideo immediately; it is never re-polled.
func videoFromOperation(op *genai.GenerateVideosOperation) (*VideoResult, error) {
	if op.Response == nil || len(op.Response.GeneratedVideos) == 0 {
		return nil, ErrNoVideo
	}

	video := op.Response.GeneratedVideos[0].Video
	if video == nil || (video.URI == "" && len(video.VideoBytes) == 0) {
		return nil, ErrNoVideo
	}

	return &VideoResult{
		URI:      video.URI,
		Data:     video.VideoBytes,
		MIMEType: video.MIMEType,
	}, nil
}

func (g *Gateway) emitVideoMetrics(result string, elapsed time.Duration, polls int) {
	metrics.New("BrandStudio").
		Dimension("Operation", "video_generate").
		Dimension("Result", result).
		Metric("VideoJobDurationMs", float64(elapsed.Milliseconds()), metrics.UnitMilliseconds).
		Metric("VideoJobPolls", float64(polls), metrics.UnitCount).
		Count("VideoJobs").
		Flush()
}
