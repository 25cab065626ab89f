package models

// TextSuggestionRequest is a structured prompt for the text-suggestion
// generator.
type TextSuggestionRequest struct {
	// Topic describes what the composition is about.
	Topic string `json:"topic"`

	// Tone is an optional stylistic hint ("playful", "formal", ...).
	Tone string `json:"tone,omitempty"`

	// Language is the BCP 47 language tag of the desired output.
	Language string `json:"language,omitempty"`
}

// Params returns the request as a flat parameter map for fingerprinting.
func (r TextSuggestionRequest) Params() map[string]string {
	return map[string]string{
		"topic":    r.Topic,
		"tone":     r.Tone,
		"language": r.Language,
	}
}

// TextSuggestions is the parseable structured result of a text generation.
type TextSuggestions struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
}

// ImageGenerationRequest describes one background-image generation.
type ImageGenerationRequest struct {
	// Prompt is the free-form description passed to the image model.
	Prompt string `json:"prompt"`

	// AspectRatio is the requested output ratio, e.g. "16:9".
	AspectRatio string `json:"aspect_ratio"`
}

// Params returns the request as a flat parameter map for fingerprinting.
func (r ImageGenerationRequest) Params() map[string]string {
	return map[string]string{
		"prompt":       r.Prompt,
		"aspect_ratio": r.AspectRatio,
	}
}

// GeneratedAsset is the outcome of a successful image generation.
type GeneratedAsset struct {
	// URL is the reference under which the generated image is reachable.
	URL string `json:"url"`

	// Provider identifies which external generator produced the asset.
	Provider string `json:"provider,omitempty"`
}
