package gateway

// Gemini model IDs used by the console.
//
// | Purpose                   | API Model ID             |
// |---------------------------|--------------------------|
// | Strategy / social drafts  | gemini-2.5-flash         |
// | High-reasoning strategy   | gemini-2.5-pro           |
// | Image generation/editing  | gemini-2.5-flash-image   |
// | Video generation          | veo-2.0-generate-001     |
const (
	// DefaultTextModel handles strategy documents, campaign extraction,
	// and social post drafting.
	DefaultTextModel = "gemini-2.5-flash"

	// ModelPro is the stable high-reasoning alternative for strategy runs.
	ModelPro = "gemini-2.5-pro"

	// DefaultImageModel produces and edits images via generateContent with
	// an IMAGE response modality.
	DefaultImageModel = "gemini-2.5-flash-image"

	// DefaultVideoModel produces video through the long-running
	// generateVideos operation surface.
	DefaultVideoModel = "veo-2.0-generate-001"
)
