// Package source defines the domain models and interfaces for video discovery and retrieval.
package source

// UntitledVideo is the placeholder title used when the platform reports none.
const UntitledVideo = "Untitled"

// Video represents the metadata of a single platform video, constructed fresh
// per fetch and never cached or persisted.
type Video struct {
	// Display title; defaults to UntitledVideo when absent upstream.
	Title string `json:"title"`
	// Uploader name; empty when unknown.
	Author string `json:"author,omitempty"`
	// Length in seconds; zero when unknown.
	Duration int `json:"duration,omitempty"`
	// Downloadable variants; may legitimately be empty.
	Variants []*Variant `json:"variants"`
}

// Downloadable returns the variants that carry a fixed-size file, excluding adaptive streams.
func (v *Video) Downloadable() []*Variant {
	var out []*Variant
	for _, variant := range v.Variants {
		if !variant.Adaptive() {
			out = append(out, variant)
		}
	}
	return out
}

// VariantByQuality returns the variant registered under the given quality label.
func (v *Video) VariantByQuality(quality string) (*Variant, bool) {
	for _, variant := range v.Variants {
		if variant.Quality == quality {
			return variant, true
		}
	}
	return nil, false
}
