package model

import "errors"

// Sentinel errors for model validation and lifecycle. Callers branch on
// these with errors.Is; call sites attach context via %w wrapping.
var (
	// ErrInvalidShape indicates that nodes or links is not a sequence of
	// mapping-like records.
	ErrInvalidShape = errors.New("model: invalid data shape")

	// ErrMissingField indicates that a node lacks a required field
	// ("id" or "label").
	ErrMissingField = errors.New("model: missing required field")

	// ErrUnknownReference indicates that a link endpoint or a declared
	// parent id does not match any known node id.
	ErrUnknownReference = errors.New("model: unknown node reference")

	// ErrNotLoaded indicates that an operation requiring a completed
	// load was invoked before one succeeded.
	ErrNotLoaded = errors.New("model: no data loaded")
)
