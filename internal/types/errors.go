package types

import "errors"

// Error taxonomy for the pipeline. Only these three conditions abort a job:
// a failed summarization, unusable source text, and a failed render. Asset
// generation failures degrade the job instead (see the fallback package).
var (
	ErrUpstream           = errors.New("summarization upstream failed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrIncompleteTimeline = errors.New("incomplete timeline")
	ErrRender             = errors.New("render failed")
)
