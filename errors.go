package tdigest

import "github.com/pkg/errors"

var (
	// ErrInvalidDelta is returned when the compression parameter is outside (0, 1].
	ErrInvalidDelta = errors.New("delta must be in (0, 1]")
	// ErrInvalidScale is returned when the scale factor K is less than one.
	ErrInvalidScale = errors.New("k must be at least 1")
	// ErrInvalidValue is returned for NaN or infinite observations.
	ErrInvalidValue = errors.New("value must be finite")
	// ErrInvalidWeight is returned for weights that are not finite and positive.
	ErrInvalidWeight = errors.New("weight must be finite and positive")
	// ErrMergeNotImplemented is returned by Merge.
	ErrMergeNotImplemented = errors.New("merging digests is not implemented")
)
