// Package providers wraps the external generation services behind small
// interfaces so the client service layer never talks to a vendor SDK
// directly.
package providers

import (
	"context"

	"github.com/MKhiriev/go-canvas-studio/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/providers_mock.go -package=mock

// TextSuggestionProvider produces structured headline/subheadline
// suggestions for a composition.
type TextSuggestionProvider interface {
	SuggestText(ctx context.Context, req models.TextSuggestionRequest) (models.TextSuggestions, error)
}

// ImageProvider produces background images from free-form prompts.
type ImageProvider interface {
	GenerateImage(ctx context.Context, req models.ImageGenerationRequest) (models.GeneratedAsset, error)
}
