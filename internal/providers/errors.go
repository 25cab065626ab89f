package providers

import "errors"

var (
	// ErrExternalGeneration wraps any provider-side failure: transport
	// errors, non-2xx responses, or empty results.
	ErrExternalGeneration = errors.New("external generation failed")

	// ErrUnparsableResponse marks a provider response that came back 2xx
	// but could not be decoded into the expected structured form.
	ErrUnparsableResponse = errors.New("unparsable provider response")

	// ErrMissingAPIKey is returned before any network call when the
	// provider is not configured with credentials.
	ErrMissingAPIKey = errors.New("missing provider API key")
)
