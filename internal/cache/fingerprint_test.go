package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-canvas-studio/models"
)

func TestComputeFingerprint_OrderIndependence(t *testing.T) {
	// maps iterate in randomized order; the canonicalization must make
	// that invisible. Build the two maps in opposite insertion order to
	// document the intent explicitly.
	fromAB := ComputeFingerprint(models.CacheKindTextResponse, map[string]string{
		"a": "1",
		"b": "2",
	})
	fromBA := ComputeFingerprint(models.CacheKindTextResponse, map[string]string{
		"b": "2",
		"a": "1",
	})

	assert.Equal(t, fromAB, fromBA)
}

func TestComputeFingerprint_ValueSensitivity(t *testing.T) {
	base := ComputeFingerprint(models.CacheKindTextResponse, map[string]string{"a": "1", "b": "2"})
	other := ComputeFingerprint(models.CacheKindTextResponse, map[string]string{"a": "1", "b": "3"})

	assert.NotEqual(t, base, other)
}

func TestComputeFingerprint_KindSensitivity(t *testing.T) {
	params := map[string]string{"prompt": "sunset over mountains"}

	text := ComputeFingerprint(models.CacheKindTextResponse, params)
	image := ComputeFingerprint(models.CacheKindGeneratedImage, params)

	assert.NotEqual(t, text, image)
}

func TestComputeFingerprint_Deterministic(t *testing.T) {
	params := map[string]string{
		"prompt":       "retro wave banner",
		"aspect_ratio": "16:9",
	}

	first := ComputeFingerprint(models.CacheKindGeneratedImage, params)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, ComputeFingerprint(models.CacheKindGeneratedImage, params))
	}
}

func TestComputeFingerprint_EmptyParams(t *testing.T) {
	got := ComputeFingerprint(models.CacheKindTextResponse, nil)

	assert.Len(t, got, 64, "hex-encoded sha256")
}
