package engine

import "errors"

var (
	// ErrUnknownLayerKind is the contract-violation error raised (as a
	// panic value) when AddLayer is called with a kind that is not one of
	// the known layer kinds. Correct integrations never trigger it.
	ErrUnknownLayerKind = errors.New("unknown layer kind")
)
