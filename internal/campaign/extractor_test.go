package campaign

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"google.golang.org/genai"
)

// stubGenerator returns a canned payload and records the prompt it received.
type stubGenerator struct {
	payload string
	err     error
	prompt  string
	schema  *genai.Schema
}

func (s *stubGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	s.prompt = prompt
	s.schema = schema
	return s.payload, s.err
}

func TestExtractValidPayload(t *testing.T) {
	gen := &stubGenerator{payload: `{
		"visualStyle": "neon noir, wet asphalt reflections",
		"videoConcept": "a sneaker splashing through a rain-lit street",
		"socialHooks": ["Hook one", "Hook two", "Hook three"],
		"targetAudience": "urban runners aged 18-30"
	}`}

	c, err := Extract(context.Background(), gen, "Nimbus Shoes", "long strategy text")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if c.BrandName != "Nimbus Shoes" {
		t.Errorf("BrandName = %q", c.BrandName)
	}
	if c.VisualStyle != "neon noir, wet asphalt reflections" {
		t.Errorf("VisualStyle = %q", c.VisualStyle)
	}
	if len(c.SocialHooks) != 3 {
		t.Errorf("SocialHooks length = %d, want the array length from the response", len(c.SocialHooks))
	}
	if c.SocialHooks[2] != "Hook three" {
		t.Errorf("SocialHooks[2] = %q", c.SocialHooks[2])
	}
	if c.TargetAudience != "urban runners aged 18-30" {
		t.Errorf("TargetAudience = %q", c.TargetAudience)
	}
}

func TestExtractTruncatesStrategyPrefix(t *testing.T) {
	gen := &stubGenerator{payload: `{"visualStyle":"a","videoConcept":"b","socialHooks":[],"targetAudience":"c"}`}
	long := strings.Repeat("x", strategyPrefixLimit+1000)

	if _, err := Extract(context.Background(), gen, "Brand", long); err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	_, strategySection, ok := strings.Cut(gen.prompt, "Strategy:\n")
	if !ok {
		t.Fatalf("prompt carries no strategy section: %q", gen.prompt)
	}
	if strings.Count(strategySection, "x") != strategyPrefixLimit {
		t.Errorf("prompt carried %d strategy chars, want %d", strings.Count(strategySection, "x"), strategyPrefixLimit)
	}
}

func TestExtractTruncationKeepsValidUTF8(t *testing.T) {
	gen := &stubGenerator{payload: `{"visualStyle":"a","videoConcept":"b","socialHooks":[],"targetAudience":"c"}`}
	// Place a multibyte rune straddling the prefix boundary.
	long := strings.Repeat("x", strategyPrefixLimit-1) + "é" + strings.Repeat("y", 100)

	if _, err := Extract(context.Background(), gen, "Brand", long); err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if !utf8.ValidString(gen.prompt) {
		t.Error("prompt contains invalid UTF-8 after truncation")
	}
	if strings.Contains(gen.prompt, "�") || strings.ContainsRune(gen.prompt, 'é') {
		t.Error("the straddling rune must be dropped whole, not split")
	}
	_, strategySection, ok := strings.Cut(gen.prompt, "Strategy:\n")
	if !ok {
		t.Fatalf("prompt carries no strategy section: %q", gen.prompt)
	}
	if got := strings.Count(strategySection, "x"); got != strategyPrefixLimit-1 {
		t.Errorf("prompt carried %d strategy chars, want %d", got, strategyPrefixLimit-1)
	}
}

func TestExtractMalformedPayload(t *testing.T) {
	gen := &stubGenerator{payload: `{"visualStyle": broken`}

	_, err := Extract(context.Background(), gen, "Brand", "text")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestExtractRequestError(t *testing.T) {
	boom := errors.New("transport down")
	gen := &stubGenerator{err: boom}

	_, err := Extract(context.Background(), gen, "Brand", "text")
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped transport error", err)
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		t.Error("a transport failure must not be reported as a parse failure")
	}
}

func TestExtractionSchemaShape(t *testing.T) {
	gen := &stubGenerator{payload: `{"visualStyle":"a","videoConcept":"b","socialHooks":["x"],"targetAudience":"c"}`}
	if _, err := Extract(context.Background(), gen, "Brand", "text"); err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if gen.schema == nil || gen.schema.Type != genai.TypeObject {
		t.Fatal("extraction must request an object schema")
	}
	for _, field := range []string{"visualStyle", "videoConcept", "socialHooks", "targetAudience"} {
		if _, ok := gen.schema.Properties[field]; !ok {
			t.Errorf("schema missing field %q", field)
		}
	}
	if len(gen.schema.Properties) != 4 {
		t.Errorf("schema has %d fields, want exactly 4", len(gen.schema.Properties))
	}
}
