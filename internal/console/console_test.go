package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/jalvarado/brandstudio/internal/campaign"
	"github.com/jalvarado/brandstudio/internal/filehandler"
	"github.com/jalvarado/brandstudio/internal/gateway"
	"google.golang.org/genai"
)

// stubGenerator satisfies Generator with canned responses. Individual fields
// may be overridden per test; the zero value fails every call.
type stubGenerator struct {
	textFn     func(ctx context.Context, prompt string, useThinking bool) (string, error)
	jsonFn     func(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	groundedFn func(ctx context.Context, prompt string) (*gateway.GroundingResult, error)
	imageFn    func(ctx context.Context, prompt, aspectRatio string) (*gateway.ImageResult, error)
	editFn     func(ctx context.Context, data []byte, mime, instruction string) (*gateway.ImageResult, error)
	analyzeFn  func(ctx context.Context, data []byte, mime, question string) (string, error)
	videoFn    func(ctx context.Context, req gateway.VideoRequest) (*gateway.VideoResult, error)
	animateFn  func(ctx context.Context, data []byte, mime, prompt, ar string) (*gateway.VideoResult, error)
}

var errStubUnset = errors.New("stub not configured")

func (s *stubGenerator) GenerateText(ctx context.Context, prompt string, useThinking bool) (string, error) {
	if s.textFn == nil {
		return "", errStubUnset
	}
	return s.textFn(ctx, prompt, useThinking)
}

func (s *stubGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if s.jsonFn == nil {
		return "", errStubUnset
	}
	return s.jsonFn(ctx, prompt, schema)
}

func (s *stubGenerator) GenerateGrounded(ctx context.Context, prompt string) (*gateway.GroundingResult, error) {
	if s.groundedFn == nil {
		return nil, errStubUnset
	}
	return s.groundedFn(ctx, prompt)
}

func (s *stubGenerator) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*gateway.ImageResult, error) {
	if s.imageFn == nil {
		return nil, errStubUnset
	}
	return s.imageFn(ctx, prompt, aspectRatio)
}

func (s *stubGenerator) EditImage(ctx context.Context, data []byte, mime, instruction string) (*gateway.ImageResult, error) {
	if s.editFn == nil {
		return nil, errStubUnset
	}
	return s.editFn(ctx, data, mime, instruction)
}

func (s *stubGenerator) AnalyzeImage(ctx context.Context, data []byte, mime, question string) (string, error) {
	if s.analyzeFn == nil {
		return "", errStubUnset
	}
	return s.analyzeFn(ctx, data, mime, question)
}

func (s *stubGenerator) GenerateVideo(ctx context.Context, req gateway.VideoRequest) (*gateway.VideoResult, error) {
	if s.videoFn == nil {
		return nil, errStubUnset
	}
	return s.videoFn(ctx, req)
}

func (s *stubGenerator) AnimateImage(ctx context.Context, data []byte, mime, prompt, ar string) (*gateway.VideoResult, error) {
	if s.animateFn == nil {
		return nil, errStubUnset
	}
	return s.animateFn(ctx, data, mime, prompt, ar)
}

const validExtraction = `{
	"visualStyle": "warm film grain",
	"videoConcept": "steam rising over a pour",
	"socialHooks": ["Hook A", "Hook B", "Hook C"],
	"targetAudience": "remote workers"
}`

func newTestSession(gen Generator) *Session {
	return NewSession(gen)
}

func TestStrategyGenerateActivatesCampaign(t *testing.T) {
	gen := &stubGenerator{
		textFn: func(ctx context.Context, prompt string, useThinking bool) (string, error) {
			if !useThinking {
				t.Error("strategy generation must request the reasoning budget")
			}
			if !strings.Contains(prompt, "Aurora Coffee") {
				t.Error("strategy prompt missing brand name")
			}
			return "the strategy document", nil
		},
		jsonFn: func(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
			return validExtraction, nil
		},
	}
	sess := newTestSession(gen)

	result, err := sess.Strategy.Generate(context.Background(), "Aurora Coffee", "launch cold brew")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.StrategyText != "the strategy document" {
		t.Errorf("StrategyText = %q", result.StrategyText)
	}
	if result.Campaign == nil {
		t.Fatal("campaign was not activated")
	}

	c, version := sess.Store.Active()
	if c == nil || c.BrandName != "Aurora Coffee" {
		t.Errorf("store campaign = %+v", c)
	}
	if version != 1 {
		t.Errorf("store version = %d", version)
	}
}

func TestStrategyExtractionFailureLeavesStoreUntouched(t *testing.T) {
	gen := &stubGenerator{
		textFn: func(ctx context.Context, prompt string, useThinking bool) (string, error) {
			return "doc", nil
		},
		jsonFn: func(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
			return validExtraction, nil
		},
	}
	sess := newTestSession(gen)

	if _, err := sess.Strategy.Generate(context.Background(), "First Brand", ""); err != nil {
		t.Fatal(err)
	}
	first, v1 := sess.Store.Active()

	// Second run returns a malformed extraction payload.
	gen.jsonFn = func(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
		return `{"visualStyle": broken`, nil
	}

	result, err := sess.Strategy.Generate(context.Background(), "Second Brand", "")
	if err != nil {
		t.Fatalf("extraction failure must not surface an error, got %v", err)
	}
	if result.StrategyText != "doc" {
		t.Error("strategy text must still be returned")
	}
	if result.Campaign != nil {
		t.Error("no campaign must be reported for a failed extraction")
	}

	c, v2 := sess.Store.Active()
	if c != first || v2 != v1 {
		t.Error("a failed extraction must leave the previous campaign in place")
	}
}

func TestAutoFillOnlyWhenEmpty(t *testing.T) {
	sess := newTestSession(&stubGenerator{})

	sess.Store.Replace(&campaign.Campaign{
		BrandName:    "Aurora Coffee",
		VisualStyle:  "warm film grain",
		VideoConcept: "steam rising over a pour",
		SocialHooks:  []string{"Hook A"},
	})

	if got := sess.Video.Prompt(); got != "steam rising over a pour" {
		t.Errorf("video prompt auto-fill = %q", got)
	}
	if got := sess.Social.Hook(); got != "Hook A" {
		t.Errorf("social hook auto-fill = %q", got)
	}
	if got := sess.Image.Prompt(); !strings.Contains(got, "warm film grain") {
		t.Errorf("image prompt auto-fill = %q", got)
	}

	// A user edit survives a campaign change untouched.
	sess.Video.SetPrompt("my own idea")
	sess.Store.Replace(&campaign.Campaign{BrandName: "Other", VideoConcept: "something else"})
	if got := sess.Video.Prompt(); got != "my own idea" {
		t.Errorf("campaign change clobbered a user edit: %q", got)
	}

	// The hook was populated by the first fill, so it keeps its value too.
	if got := sess.Social.Hook(); got != "Hook A" {
		t.Errorf("populated hook mutated on campaign change: %q", got)
	}
}

func TestAutoFillIsOneShotPerVersion(t *testing.T) {
	sess := newTestSession(&stubGenerator{})
	sess.Store.Replace(&campaign.Campaign{VideoConcept: "concept one"})

	if got := sess.Video.Prompt(); got != "concept one" {
		t.Fatalf("initial fill = %q", got)
	}

	// Clearing the field does not refill while the campaign is unchanged.
	sess.Video.SetPrompt("")
	if got := sess.Video.Prompt(); got != "" {
		t.Errorf("cleared field refilled without a campaign change: %q", got)
	}

	// The next campaign change fills the now-empty field again.
	sess.Store.Replace(&campaign.Campaign{VideoConcept: "concept two"})
	if got := sess.Video.Prompt(); got != "concept two" {
		t.Errorf("empty field not refilled on campaign change: %q", got)
	}
}

func TestScreenBusyRejectsDuplicateSubmission(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	gen := &stubGenerator{
		textFn: func(ctx context.Context, prompt string, useThinking bool) (string, error) {
			close(started)
			<-release
			return "post", nil
		},
	}
	sess := newTestSession(gen)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := sess.Social.Draft(context.Background(), "Instagram", "h"); err != nil {
			t.Errorf("first draft failed: %v", err)
		}
	}()

	<-started
	if _, err := sess.Social.Draft(context.Background(), "Instagram", "h"); !errors.Is(err, ErrBusy) {
		t.Errorf("duplicate submission error = %v, want ErrBusy", err)
	}

	// An unrelated screen is not blocked by the social screen being busy.
	if sess.Image.Busy() {
		t.Error("image screen reports busy while only social is in flight")
	}

	close(release)
	wg.Wait()

	// The screen returns to idle and is retryable.
	if sess.Social.Busy() {
		t.Error("screen still busy after flow completed")
	}
}

func TestImageGenerateReturnsDataURI(t *testing.T) {
	gen := &stubGenerator{
		imageFn: func(ctx context.Context, prompt, aspectRatio string) (*gateway.ImageResult, error) {
			if aspectRatio != "16:9" {
				t.Errorf("aspectRatio = %q", aspectRatio)
			}
			return &gateway.ImageResult{Data: []byte{1, 2, 3}, MIMEType: "image/png"}, nil
		},
	}
	sess := newTestSession(gen)

	uri, err := sess.Image.Generate(context.Background(), "a cup of coffee", "16:9")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Errorf("result = %q, want data URI", uri)
	}
	if sess.Image.LastImage() != uri {
		t.Error("last image not recorded")
	}
}

func TestImageGenerateSurfacesNoImage(t *testing.T) {
	gen := &stubGenerator{
		imageFn: func(ctx context.Context, prompt, aspectRatio string) (*gateway.ImageResult, error) {
			return nil, gateway.ErrNoImage
		},
	}
	sess := newTestSession(gen)

	_, err := sess.Image.Generate(context.Background(), "p", "")
	if !errors.Is(err, gateway.ErrNoImage) {
		t.Errorf("error = %v, want ErrNoImage", err)
	}
	if sess.Image.Busy() {
		t.Error("screen must return to idle after failure")
	}
}

func TestVideoGenerateProducesDoneJob(t *testing.T) {
	gen := &stubGenerator{
		videoFn: func(ctx context.Context, req gateway.VideoRequest) (*gateway.VideoResult, error) {
			return &gateway.VideoResult{URI: "https://media.example/v.mp4"}, nil
		},
	}
	sess := newTestSession(gen)

	job, err := sess.Video.Generate(context.Background(), "a sweeping dolly shot", "9:16")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if job.Status != JobDone {
		t.Errorf("Status = %q", job.Status)
	}
	if job.ResultURI != "https://media.example/v.mp4" {
		t.Errorf("ResultURI = %q", job.ResultURI)
	}
	if job.ID == "" {
		t.Error("job must carry an ID")
	}
}

func TestVideoGenerateInlineBytesBecomeDataURI(t *testing.T) {
	videoBytes := []byte{0x00, 0x00, 0x00, 0x18}
	gen := &stubGenerator{
		videoFn: func(ctx context.Context, req gateway.VideoRequest) (*gateway.VideoResult, error) {
			return &gateway.VideoResult{Data: videoBytes, MIMEType: "video/mp4"}, nil
		},
	}
	sess := newTestSession(gen)

	job, err := sess.Video.Generate(context.Background(), "a sweeping dolly shot", "")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if job.Status != JobDone {
		t.Errorf("Status = %q", job.Status)
	}
	if !strings.HasPrefix(job.ResultURI, "data:video/mp4;base64,") {
		t.Fatalf("ResultURI = %q, want inline media as a data URI", job.ResultURI)
	}

	payload, err := filehandler.ParseDataURI(job.ResultURI)
	if err != nil {
		t.Fatalf("ParseDataURI: %v", err)
	}
	if !bytes.Equal(payload.Data, videoBytes) {
		t.Errorf("decoded bytes = %v, want %v", payload.Data, videoBytes)
	}
}

func TestSocialDraftUsesCampaignContext(t *testing.T) {
	var seenPrompt string
	gen := &stubGenerator{
		textFn: func(ctx context.Context, prompt string, useThinking bool) (string, error) {
			seenPrompt = prompt
			if useThinking {
				t.Error("social drafting must not use the reasoning budget")
			}
			return "the post", nil
		},
	}
	sess := newTestSession(gen)
	sess.Store.Replace(&campaign.Campaign{
		BrandName:      "Aurora Coffee",
		SocialHooks:    []string{"Hook A"},
		TargetAudience: "remote workers",
	})

	post, err := sess.Social.Draft(context.Background(), "LinkedIn", "")
	if err != nil {
		t.Fatalf("Draft returned error: %v", err)
	}
	if post != "the post" {
		t.Errorf("post = %q", post)
	}
	for _, want := range []string{"LinkedIn", "Aurora Coffee", "Hook A", "remote workers"} {
		if !strings.Contains(seenPrompt, want) {
			t.Errorf("draft prompt missing %q:\n%s", want, seenPrompt)
		}
	}
}

func TestSocialTrendsReturnsGroundedResult(t *testing.T) {
	gen := &stubGenerator{
		groundedFn: func(ctx context.Context, prompt string) (*gateway.GroundingResult, error) {
			return &gateway.GroundingResult{
				Text:    "short-form behind-the-scenes clips",
				Sources: []gateway.Source{{Title: "Report", URI: "https://example.com"}},
			}, nil
		},
	}
	sess := newTestSession(gen)

	result, err := sess.Social.Trends(context.Background(), "TikTok")
	if err != nil {
		t.Fatalf("Trends returned error: %v", err)
	}
	if len(result.Sources) != 1 {
		t.Errorf("Sources = %+v", result.Sources)
	}
}
