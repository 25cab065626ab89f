package generate

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-canvas-studio/internal/cache"
	"github.com/MKhiriev/go-canvas-studio/internal/logger"
	"github.com/MKhiriev/go-canvas-studio/internal/mock"
	"github.com/MKhiriev/go-canvas-studio/internal/store"
	"github.com/MKhiriev/go-canvas-studio/internal/trial"
	"github.com/MKhiriev/go-canvas-studio/models"
)

// stubGate — a TrialGate that records calls; avoids an import cycle with
// the trial package's own mocks.
type stubGate struct {
	mu          sync.Mutex
	gateErr     error
	gateCalls   int
	confirmed   int
	lastAsset   *string
	lastHeading *models.TextSuggestions
}

func (g *stubGate) Gate(context.Context) (models.TrialSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gateCalls++
	return models.TrialSession{SessionID: "session-1"}, g.gateErr
}

func (g *stubGate) ConfirmUsage(_ context.Context, assetRef *string, suggestions *models.TextSuggestions) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.confirmed++
	g.lastAsset = assetRef
	g.lastHeading = suggestions
	return nil
}

// memCacheRepo is an in-memory cache.Repository for pipeline tests.
type memCacheRepo struct {
	entries map[string]models.CacheEntry
}

func newMemCacheRepo() *memCacheRepo {
	return &memCacheRepo{entries: make(map[string]models.CacheEntry)}
}

func (r *memCacheRepo) FindEntry(_ context.Context, fingerprint string) (models.CacheEntry, error) {
	entry, ok := r.entries[fingerprint]
	if !ok {
		return models.CacheEntry{}, store.ErrCacheEntryNotFound
	}
	return entry, nil
}

func (r *memCacheRepo) UpsertEntry(_ context.Context, entry models.CacheEntry) error {
	r.entries[entry.Fingerprint] = entry
	return nil
}

func (r *memCacheRepo) DeleteExpiredEntries(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for k, e := range r.entries {
		if e.Expired(now) {
			delete(r.entries, k)
			n++
		}
	}
	return n, nil
}

func newTestService(
	t *testing.T,
	ctrl *gomock.Controller,
) (*Service, *stubGate, *memCacheRepo, *mock.MockTextSuggestionProvider, *mock.MockImageProvider) {
	t.Helper()

	gate := &stubGate{}
	repo := newMemCacheRepo()
	text := mock.NewMockTextSuggestionProvider(ctrl)
	image := mock.NewMockImageProvider(ctrl)

	svc := NewService(gate, cache.New(repo, logger.Nop()), text, image, logger.Nop())
	return svc, gate, repo, text, image
}

// ── SuggestText ──────────────────────────────────────────────────────────────

func TestSuggestText_MissGeneratesCachesAndConfirms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gate, repo, text, _ := newTestService(t, ctrl)
	ctx := context.Background()

	req := models.TextSuggestionRequest{Topic: "summer sale", Tone: "playful"}
	want := models.TextSuggestions{Headline: "Hot Deals", Subheadline: "Up to 50% off everything"}

	text.EXPECT().SuggestText(ctx, req).Return(want, nil)

	got, cached, err := svc.SuggestText(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, cached)

	assert.Equal(t, 1, gate.gateCalls)
	assert.Equal(t, 1, gate.confirmed)
	require.NotNil(t, gate.lastHeading)
	assert.Equal(t, want, *gate.lastHeading)

	fingerprint := cache.ComputeFingerprint(models.CacheKindTextResponse, req.Params())
	entry, ok := repo.entries[fingerprint]
	require.True(t, ok)
	var stored models.TextSuggestions
	require.NoError(t, json.Unmarshal(entry.Payload, &stored))
	assert.Equal(t, want, stored)
}

func TestSuggestText_HitSkipsProviderAndQuota(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gate, _, text, _ := newTestService(t, ctrl)
	ctx := context.Background()

	req := models.TextSuggestionRequest{Topic: "summer sale"}
	want := models.TextSuggestions{Headline: "Hot Deals", Subheadline: "Up to 50% off"}

	// first call populates the cache
	text.EXPECT().SuggestText(ctx, req).Return(want, nil)
	_, _, err := svc.SuggestText(ctx, req)
	require.NoError(t, err)

	// second identical request passes the gate but calls no provider and
	// spends no quota
	got, cached, err := svc.SuggestText(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, cached)
	assert.Equal(t, 2, gate.gateCalls)
	assert.Equal(t, 1, gate.confirmed)
}

func TestSuggestText_GateRejectionStopsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gate, repo, _, _ := newTestService(t, ctrl)
	ctx := context.Background()

	gate.gateErr = trial.ErrQuotaExhausted

	_, _, err := svc.SuggestText(ctx, models.TextSuggestionRequest{Topic: "anything"})
	assert.ErrorIs(t, err, trial.ErrQuotaExhausted)
	assert.Empty(t, repo.entries)
	assert.Zero(t, gate.confirmed)
}

func TestSuggestText_ProviderFailureCachesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gate, repo, text, _ := newTestService(t, ctrl)
	ctx := context.Background()

	req := models.TextSuggestionRequest{Topic: "summer sale"}
	text.EXPECT().SuggestText(ctx, req).Return(models.TextSuggestions{}, assert.AnError)

	_, _, err := svc.SuggestText(ctx, req)
	require.Error(t, err)
	assert.Empty(t, repo.entries)
	assert.Zero(t, gate.confirmed)
}

func TestSuggestText_DifferentParamsDifferentFingerprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, text, _ := newTestService(t, ctrl)
	ctx := context.Background()

	first := models.TextSuggestionRequest{Topic: "summer sale"}
	second := models.TextSuggestionRequest{Topic: "summer sale", Tone: "formal"}

	text.EXPECT().SuggestText(ctx, first).Return(models.TextSuggestions{Headline: "A"}, nil)
	text.EXPECT().SuggestText(ctx, second).Return(models.TextSuggestions{Headline: "B"}, nil)

	gotFirst, _, err := svc.SuggestText(ctx, first)
	require.NoError(t, err)
	gotSecond, cached, err := svc.SuggestText(ctx, second)
	require.NoError(t, err)

	assert.False(t, cached)
	assert.NotEqual(t, gotFirst.Headline, gotSecond.Headline)
}

// ── GenerateImage ────────────────────────────────────────────────────────────

func TestGenerateImage_MissGeneratesCachesAndConfirms(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gate, repo, _, image := newTestService(t, ctrl)
	ctx := context.Background()

	req := models.ImageGenerationRequest{Prompt: "sunset over mountains", AspectRatio: "16:9"}
	want := models.GeneratedAsset{URL: "https://cdn.example.com/sunset.png", Provider: "openai"}

	image.EXPECT().GenerateImage(ctx, req).Return(want, nil)

	got, cached, err := svc.GenerateImage(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.False(t, cached)

	assert.Equal(t, 1, gate.confirmed)
	require.NotNil(t, gate.lastAsset)
	assert.Equal(t, want.URL, *gate.lastAsset)

	fingerprint := cache.ComputeFingerprint(models.CacheKindGeneratedImage, req.Params())
	_, ok := repo.entries[fingerprint]
	assert.True(t, ok)
}

func TestGenerateImage_HitServesFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gate, _, _, image := newTestService(t, ctrl)
	ctx := context.Background()

	req := models.ImageGenerationRequest{Prompt: "sunset", AspectRatio: "1:1"}
	want := models.GeneratedAsset{URL: "https://cdn.example.com/sunset.png"}

	image.EXPECT().GenerateImage(ctx, req).Return(want, nil)
	_, _, err := svc.GenerateImage(ctx, req)
	require.NoError(t, err)

	got, cached, err := svc.GenerateImage(ctx, req)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, want.URL, got.URL)
	assert.Equal(t, 2, gate.gateCalls)
	assert.Equal(t, 1, gate.confirmed)
}

func TestGenerateImage_ExpiredEntryRegenerated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gate, repo, _, image := newTestService(t, ctrl)
	ctx := context.Background()

	req := models.ImageGenerationRequest{Prompt: "sunset", AspectRatio: "1:1"}
	fingerprint := cache.ComputeFingerprint(models.CacheKindGeneratedImage, req.Params())

	// a physically present but expired row must count as a miss
	stale, _ := json.Marshal(models.GeneratedAsset{URL: "https://cdn.example.com/old.png"})
	repo.entries[fingerprint] = models.CacheEntry{
		Fingerprint: fingerprint,
		Kind:        models.CacheKindGeneratedImage,
		Payload:     stale,
		CreatedAt:   time.Now().Add(-200 * time.Hour),
		ExpiresAt:   time.Now().Add(-32 * time.Hour),
	}

	fresh := models.GeneratedAsset{URL: "https://cdn.example.com/new.png"}
	image.EXPECT().GenerateImage(ctx, req).Return(fresh, nil)

	got, cached, err := svc.GenerateImage(ctx, req)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, fresh.URL, got.URL)
	assert.Equal(t, 1, gate.confirmed)

	// the row was overwritten with the fresh asset and a new expiry
	entry := repo.entries[fingerprint]
	assert.True(t, entry.ExpiresAt.After(time.Now()))
}
