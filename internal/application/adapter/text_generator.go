// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// GenerationRequest is a single call to the text-generation backend.
type GenerationRequest struct {
	// SystemInstructions describes the task and the exact JSON shape to return.
	SystemInstructions string
	// DataSummary is the structured household data, already serialized.
	DataSummary string
}

// TextGenerator defines the interface for the external text-generation backend.
type TextGenerator interface {
	// Generate returns the raw text of the backend's response. The text is untrusted.
	Generate(ctx context.Context, request GenerationRequest) (string, error)

	// IsAvailable checks if the backend is configured.
	IsAvailable() bool
}
