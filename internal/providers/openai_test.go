package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

func TestNewOpenAIProvider_MissingAPIKey(t *testing.T) {
	_, err := NewOpenAIProvider(config.ClientProviders{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare json",
			input: `{"headline":"Hi"}`,
			want:  `{"headline":"Hi"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"headline\":\"Hi\"}\n```",
			want:  `{"headline":"Hi"}`,
		},
		{
			name:  "plain fence",
			input: "```\n{\"headline\":\"Hi\"}\n```",
			want:  `{"headline":"Hi"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  {\"headline\":\"Hi\"}  ",
			want:  `{"headline":"Hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripJSONFence(tt.input))
		})
	}
}

func TestComposeTextPrompt(t *testing.T) {
	prompt := composeTextPrompt(models.TextSuggestionRequest{
		Topic:    "summer sale",
		Tone:     "playful",
		Language: "en",
	})

	assert.Contains(t, prompt, "Topic: summer sale")
	assert.Contains(t, prompt, "Tone: playful")
	assert.Contains(t, prompt, "Language: en")

	minimal := composeTextPrompt(models.TextSuggestionRequest{Topic: "summer sale"})
	assert.NotContains(t, minimal, "Tone:")
	assert.NotContains(t, minimal, "Language:")
}

func TestImageSizeForRatio(t *testing.T) {
	assert.Equal(t, "1792x1024", imageSizeForRatio("16:9"))
	assert.Equal(t, "1024x1792", imageSizeForRatio("9:16"))
	assert.Equal(t, "1024x1024", imageSizeForRatio("1:1"))
	assert.Equal(t, "1024x1024", imageSizeForRatio(""))
}
