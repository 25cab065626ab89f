package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/MKhiriev/go-canvas-studio/internal/config"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/models"
)

const (
	textModel  = openai.GPT4oMini
	imageModel = openai.CreateImageModelDallE3

	textSystemPrompt = `You write short marketing copy for canvas designs.
Respond with a single JSON object of the form
{"headline": "...", "subheadline": "..."} and nothing else.
The headline is at most 6 words; the subheadline at most 14 words.`
)

// OpenAIProvider implements [TextSuggestionProvider] and [ImageProvider]
// against an OpenAI-compatible API.
type OpenAIProvider struct {
	client *openai.Client
	logger *logger.Logger
}

// NewOpenAIProvider builds a provider from the client configuration.
// Returns [ErrMissingAPIKey] when no credentials are configured.
func NewOpenAIProvider(cfg config.ClientProviders, log *logger.Logger) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.RequestTimeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		logger: log,
	}, nil
}

// SuggestText asks the chat model for a structured headline/subheadline
// pair. The model is instructed to answer with bare JSON; a fenced reply
// is tolerated and unwrapped before decoding.
func (p *OpenAIProvider) SuggestText(ctx context.Context, req models.TextSuggestionRequest) (models.TextSuggestions, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: textModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: textSystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: composeTextPrompt(req),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		log.Err(err).Str("func", "OpenAIProvider.SuggestText").Msg("chat completion failed")
		return models.TextSuggestions{}, fmt.Errorf("%w: %w", ErrExternalGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return models.TextSuggestions{}, fmt.Errorf("%w: no choices returned", ErrExternalGeneration)
	}

	content := stripJSONFence(resp.Choices[0].Message.Content)

	var suggestions models.TextSuggestions
	if err = json.Unmarshal([]byte(content), &suggestions); err != nil {
		log.Err(err).Str("func", "OpenAIProvider.SuggestText").Msg("provider returned unparsable content")
		return models.TextSuggestions{}, fmt.Errorf("%w: %w", ErrUnparsableResponse, err)
	}
	if suggestions.Headline == "" {
		return models.TextSuggestions{}, fmt.Errorf("%w: empty headline", ErrUnparsableResponse)
	}

	return suggestions, nil
}

// GenerateImage renders a background image and returns its URL reference.
func (p *OpenAIProvider) GenerateImage(ctx context.Context, req models.ImageGenerationRequest) (models.GeneratedAsset, error) {
	log := logger.FromContext(ctx)

	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Model:          imageModel,
		Prompt:         req.Prompt,
		Size:           imageSizeForRatio(req.AspectRatio),
		ResponseFormat: openai.CreateImageResponseFormatURL,
		N:              1,
	})
	if err != nil {
		log.Err(err).Str("func", "OpenAIProvider.GenerateImage").Msg("image generation failed")
		return models.GeneratedAsset{}, fmt.Errorf("%w: %w", ErrExternalGeneration, err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return models.GeneratedAsset{}, fmt.Errorf("%w: no image returned", ErrExternalGeneration)
	}

	return models.GeneratedAsset{
		URL:      resp.Data[0].URL,
		Provider: "openai",
	}, nil
}

func composeTextPrompt(req models.TextSuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	if req.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s\n", req.Tone)
	}
	if req.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", req.Language)
	}
	return b.String()
}

// stripJSONFence removes a surrounding markdown code fence that some
// models emit despite instructions.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func imageSizeForRatio(ratio string) string {
	switch ratio {
	case "16:9":
		return openai.CreateImageSize1792x1024
	case "9:16":
		return openai.CreateImageSize1024x1792
	default:
		return openai.CreateImageSize1024x1024
	}
}
