// Package source defines the domain models and interfaces for video discovery and retrieval.
package source

import "errors"

// ErrNoReference signals that a URL matches no known video-reference shape.
// It is a terminal, user-visible input error, never a retryable condition.
var ErrNoReference = errors.New("no video reference found in URL")

// Source defines the required capabilities of a video platform backend.
type Source interface {
	// Name returns the human-readable platform name.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Resolve retrieves the metadata and downloadable variants for a video reference.
	// A video with an empty variant set is a valid terminal result (no playable
	// sources found), distinct from a returned error (network or parse failure).
	Resolve(ref Reference) (*Video, error)

	// ProbeSizes discovers the byte size of every non-adaptive variant in place.
	// Probe failures degrade the affected variant to size zero and are never surfaced.
	ProbeSizes(video *Video)

	// Download streams a variant to the given path, reporting integer percentages
	// through progress when the total content length is known.
	Download(variant *Variant, path string, progress func(percent int)) error
}
