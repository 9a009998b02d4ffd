package types

import "time"

// Segment is one narrative part of the partitioned summary. Text is fixed at
// partition time; the duration is always derived from the text via the
// speaking-rate estimate, never from decoded audio.
type Segment struct {
	Index             int // 1-based ordinal
	Text              string
	EstimatedDuration time.Duration
}

type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetVoice AssetKind = "voiceover"
)

// GeneratedAsset is the outcome of one generation stage for one segment:
// either a real artifact on disk, or a placeholder standing in for it.
// Exactly one asset of each kind exists per segment once the job's generation
// barrier has been passed.
type GeneratedAsset struct {
	Kind        AssetKind
	Path        string
	Placeholder bool
	Reason      string // provider failure description, set when Placeholder
}

// SegmentAssets bundles everything generated for one segment.
type SegmentAssets struct {
	Segment Segment
	Image   GeneratedAsset
	Voice   GeneratedAsset
	Cue     SubtitleCue
}

// SubtitleCue is one subtitle entry. Offsets are relative to whatever
// timeline the cue is anchored to: segment-local cues start at zero and are
// re-anchored to absolute offsets when the combined track is built.
type SubtitleCue struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

type TimelineEntry struct {
	Segment     Segment
	StartOffset time.Duration
}

// Timeline is the ordered sequence of segments with absolute start offsets.
// Offsets are cumulative: entry 0 starts at zero and each entry starts where
// the previous one ends, with no gaps or overlaps.
type Timeline struct {
	Entries []TimelineEntry
	Total   time.Duration
}

// VisualInput displays a still image for a fixed duration.
type VisualInput struct {
	ImagePath string
	Display   time.Duration
}

// AudioInput is either a real audio file or generated silence. Exactly one of
// Path and Silence is set; silence substitutes for placeholder voice assets so
// a text payload never reaches the audio graph.
type AudioInput struct {
	Path    string
	Silence time.Duration
}

// RenderPlan is the fully resolved description of the final assembly. It is
// built once, consumed exactly once by the render executor, and never mutated
// after construction.
type RenderPlan struct {
	Visuals    []VisualInput
	Audio      []AudioInput
	Subtitles  []SubtitleCue // globally anchored, sequential indices
	OutputPath string
}

// DegradedAsset records a placeholder substitution so callers can see which
// parts of a completed job were degraded.
type DegradedAsset struct {
	Segment int       `json:"segment"`
	Kind    AssetKind `json:"kind"`
	Reason  string    `json:"reason"`
}

// JobFiles enumerates the artifacts persisted for one job, relative to the
// job directory.
type JobFiles struct {
	Text      []string `json:"text"`
	Images    []string `json:"images"`
	Audio     []string `json:"audio"`
	Subtitles []string `json:"subtitles"`
	Video     string   `json:"video"`
}

// JobResult is what a finished job reports back.
type JobResult struct {
	ID        string
	Summary   string
	VideoPath string
	Files     JobFiles
	Degraded  []DegradedAsset
}
