package timeline

import (
	"fmt"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

// Compose computes absolute start offsets for an ordered segment sequence:
// entry 0 starts at zero and each entry starts where the previous one ends.
// It must only run after every segment's duration is finalized, which is why
// the orchestrator places a barrier in front of it.
func Compose(segments []types.Segment) (types.Timeline, error) {
	if len(segments) == 0 {
		return types.Timeline{}, fmt.Errorf("%w: no segments to compose", types.ErrInvalidInput)
	}
	tl := types.Timeline{Entries: make([]types.TimelineEntry, 0, len(segments))}
	for _, seg := range segments {
		tl.Entries = append(tl.Entries, types.TimelineEntry{
			Segment:     seg,
			StartOffset: tl.Total,
		})
		tl.Total += seg.EstimatedDuration
	}
	return tl, nil
}
