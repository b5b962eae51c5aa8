// Package campaign derives a structured marketing campaign from a free-form
// strategy document and holds it in a single-slot, replace-only store shared
// by the consumer screens.
package campaign

// Campaign is a structured marketing asset bundle extracted from a strategy
// document. It is immutable once stored: a later strategy run replaces the
// whole value, never merges into it.
type Campaign struct {
	BrandName    string `json:"brandName"`
	VisualStyle  string `json:"visualStyle"`
	VideoConcept string `json:"videoConcept"`
	// SocialHooks holds short post hooks, three by convention. The length
	// is requested from the model, not enforced here.
	SocialHooks    []string `json:"socialHooks"`
	TargetAudience string   `json:"targetAudience"`
}
