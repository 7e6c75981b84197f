package usecase

import "errors"

// Sentinel errors for the use case layer
var (
	// ErrNoResponses marks a vendor record that carries no field map at all
	ErrNoResponses = errors.New("vendor record has no responses")
)
