package assets

import (
	"strings"
	"testing"
)

func TestRenderStrategy(t *testing.T) {
	got, err := RenderStrategy(StrategyParams{BrandName: "Aurora Coffee", Goals: "launch cold brew line"})
	if err != nil {
		t.Fatalf("RenderStrategy returned error: %v", err)
	}
	if !strings.Contains(got, "Aurora Coffee") {
		t.Error("prompt missing brand name")
	}
	if !strings.Contains(got, "launch cold brew line") {
		t.Error("prompt missing goals")
	}
}

func TestRenderSocialOptionalFields(t *testing.T) {
	got, err := RenderSocial(SocialParams{Platform: "Instagram", BrandName: "Aurora Coffee"})
	if err != nil {
		t.Fatalf("RenderSocial returned error: %v", err)
	}
	if strings.Contains(got, "Hook to build on") {
		t.Error("empty hook must be omitted")
	}
	if strings.Contains(got, "Target audience:") {
		t.Error("empty audience must be omitted")
	}

	got, err = RenderSocial(SocialParams{Platform: "X", BrandName: "B", Hook: "h", TargetAudience: "a"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Hook to build on: h") || !strings.Contains(got, "Target audience: a") {
		t.Errorf("prompt missing optional fields:\n%s", got)
	}
}

func TestRenderTrends(t *testing.T) {
	got, err := RenderTrends(TrendsParams{Platform: "TikTok", BrandName: "Nimbus"})
	if err != nil {
		t.Fatalf("RenderTrends returned error: %v", err)
	}
	if !strings.Contains(got, "TikTok") || !strings.Contains(got, "Nimbus") {
		t.Errorf("prompt incomplete:\n%s", got)
	}
}
