package narration

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

// WordsPerMinute is the fixed speaking rate the duration estimate assumes.
// Subtitle and audio timing is derived from this estimate rather than from
// decoded audio length, so the whole timeline stays computable even when a
// voice asset is a placeholder.
const WordsPerMinute = 150

// EstimateDuration converts text into an estimated spoken duration:
// ceil(words / rate * 60) seconds, at least one second for any non-empty
// text. Empty text estimates to zero; callers that need a displayable slot
// clamp it themselves.
func EstimateDuration(text string) time.Duration {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	secs := math.Ceil(float64(words) / WordsPerMinute * 60)
	if secs < 1 {
		secs = 1
	}
	return time.Duration(secs) * time.Second
}

// SplitIntoParts partitions the summary into n contiguous, word-balanced
// parts. Chunk size is ceil(words/n), so parts 1..n-1 are equal and the last
// part takes the remainder; a very short summary can leave trailing parts
// empty, which downstream stages handle as zero-length cues.
func SplitIntoParts(summary string, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: parts must be > 0", types.ErrInvalidInput)
	}
	words := strings.Fields(summary)
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: summary has no words", types.ErrInvalidInput)
	}
	chunk := (len(words) + n - 1) / n
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lo := i * chunk
		if lo > len(words) {
			lo = len(words)
		}
		hi := lo + chunk
		if hi > len(words) {
			hi = len(words)
		}
		parts = append(parts, strings.Join(words[lo:hi], " "))
	}
	return parts, nil
}

// NewSegments builds ordered segments from partitioned text. Durations are
// clamped to one second so every segment owns a non-zero slot on the
// timeline even when its text is empty.
func NewSegments(parts []string) []types.Segment {
	segs := make([]types.Segment, 0, len(parts))
	for i, text := range parts {
		d := EstimateDuration(text)
		if d < time.Second {
			d = time.Second
		}
		segs = append(segs, types.Segment{
			Index:             i + 1,
			Text:              strings.TrimSpace(text),
			EstimatedDuration: d,
		})
	}
	return segs
}
