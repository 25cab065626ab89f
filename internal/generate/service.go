// SPDX-License-Identifier: Apache-2.0

package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-canvas-studio/internal/cache"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/providers"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// Cache TTLs differ by cost: text suggestions are cheap to recompute,
// image renders are not.
const (
	textSuggestionTTLHours = 24
	imageAssetTTLHours     = 7 * 24
)

// TrialGate is the slice of the trial service the generator needs.
type TrialGate interface {
	Gate(ctx context.Context) (models.TrialSession, error)
	ConfirmUsage(ctx context.Context, assetRef *string, suggestions *models.TextSuggestions) error
}

// Service runs generations for the studio client.
type Service struct {
	gate   TrialGate
	cache  *cache.Cache
	text   providers.TextSuggestionProvider
	image  providers.ImageProvider
	logger *logger.Logger
}

// NewService wires the generation pipeline.
func NewService(gate TrialGate, c *cache.Cache, text providers.TextSuggestionProvider, image providers.ImageProvider, log *logger.Logger) *Service {
	return &Service{
		gate:   gate,
		cache:  c,
		text:   text,
		image:  image,
		logger: log,
	}
}

// SuggestText returns headline/subheadline suggestions for the request.
// The second return value reports whether the result came from the cache.
func (s *Service) SuggestText(ctx context.Context, req models.TextSuggestionRequest) (models.TextSuggestions, bool, error) {
	// the trial gate guards every generation request, cached or not;
	// only a completed provider call spends quota
	if _, err := s.gate.Gate(ctx); err != nil {
		return models.TextSuggestions{}, false, err
	}

	fingerprint := cache.ComputeFingerprint(models.CacheKindTextResponse, req.Params())

	if entry, ok, err := s.cache.Get(ctx, fingerprint); err != nil {
		s.logger.Warn().Err(err).Msg("cache lookup failed, generating fresh")
	} else if ok {
		var suggestions models.TextSuggestions
		if err = json.Unmarshal(entry.Payload, &suggestions); err == nil {
			s.logger.Debug().Str("fingerprint", fingerprint).Msg("text suggestion served from cache")
			return suggestions, true, nil
		}
		s.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("corrupt cache payload, regenerating")
	}

	suggestions, err := s.text.SuggestText(ctx, req)
	if err != nil {
		// nothing is cached and no quota is spent on failure
		return models.TextSuggestions{}, false, fmt.Errorf("text suggestion: %w", err)
	}

	if payload, err := json.Marshal(suggestions); err == nil {
		if err = s.cache.Put(ctx, fingerprint, models.CacheKindTextResponse, payload, textSuggestionTTLHours); err != nil {
			s.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("failed to cache text suggestion")
		}
	}

	if err = s.gate.ConfirmUsage(ctx, nil, &suggestions); err != nil {
		s.logger.Warn().Err(err).Msg("failed to confirm generation usage")
	}

	return suggestions, false, nil
}

// GenerateImage returns a background image asset for the request. The
// second return value reports whether the result came from the cache.
func (s *Service) GenerateImage(ctx context.Context, req models.ImageGenerationRequest) (models.GeneratedAsset, bool, error) {
	if _, err := s.gate.Gate(ctx); err != nil {
		return models.GeneratedAsset{}, false, err
	}

	fingerprint := cache.ComputeFingerprint(models.CacheKindGeneratedImage, req.Params())

	if entry, ok, err := s.cache.Get(ctx, fingerprint); err != nil {
		s.logger.Warn().Err(err).Msg("cache lookup failed, generating fresh")
	} else if ok {
		var asset models.GeneratedAsset
		if err = json.Unmarshal(entry.Payload, &asset); err == nil {
			s.logger.Debug().Str("fingerprint", fingerprint).Msg("image asset served from cache")
			return asset, true, nil
		}
		s.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("corrupt cache payload, regenerating")
	}

	asset, err := s.image.GenerateImage(ctx, req)
	if err != nil {
		return models.GeneratedAsset{}, false, fmt.Errorf("image generation: %w", err)
	}

	if payload, err := json.Marshal(asset); err == nil {
		if err = s.cache.Put(ctx, fingerprint, models.CacheKindGeneratedImage, payload, imageAssetTTLHours); err != nil {
			s.logger.Warn().Err(err).Str("fingerprint", fingerprint).Msg("failed to cache image asset")
		}
	}

	if err = s.gate.ConfirmUsage(ctx, &asset.URL, nil); err != nil {
		s.logger.Warn().Err(err).Msg("failed to confirm generation usage")
	}

	return asset, false, nil
}
