// Package console hosts the four screen controllers of the marketing
// content console: Strategy, Image, Video, and Social. Each controller owns
// its local state and a busy flag; Strategy additionally writes the shared
// campaign store that the other three read to pre-populate their prompt
// fields.
package console

import (
	"context"
	"errors"

	"github.com/jalvarado/brandstudio/internal/campaign"
	"github.com/jalvarado/brandstudio/internal/gateway"
	"google.golang.org/genai"
)

// ErrBusy is returned when a screen's trigger fires while a request from the
// same screen is still outstanding. Other screens are unaffected; there is
// no cross-screen admission control.
var ErrBusy = errors.New("a generation request is already in progress on this screen")

// Generator is the gateway surface the screens consume.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, useThinking bool) (string, error)
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	GenerateGrounded(ctx context.Context, prompt string) (*gateway.GroundingResult, error)
	GenerateImage(ctx context.Context, prompt, aspectRatio string) (*gateway.ImageResult, error)
	EditImage(ctx context.Context, imageData []byte, mimeType, instruction string) (*gateway.ImageResult, error)
	AnalyzeImage(ctx context.Context, imageData []byte, mimeType, question string) (string, error)
	GenerateVideo(ctx context.Context, req gateway.VideoRequest) (*gateway.VideoResult, error)
	AnimateImage(ctx context.Context, imageData []byte, mimeType, prompt, aspectRatio string) (*gateway.VideoResult, error)
}

// Session wires the four screens around one shared campaign store. State
// lives in memory for the lifetime of the process; there is no persistence.
type Session struct {
	Store    *campaign.Store
	Strategy *StrategyScreen
	Image    *ImageScreen
	Video    *VideoScreen
	Social   *SocialScreen
}

// NewSession creates a console session backed by gen.
func NewSession(gen Generator) *Session {
	store := campaign.NewStore()
	return &Session{
		Store:    store,
		Strategy: &StrategyScreen{gen: gen, store: store},
		Image:    &ImageScreen{gen: gen, store: store},
		Video:    &VideoScreen{gen: gen, store: store},
		Social:   &SocialScreen{gen: gen, store: store},
	}
}
