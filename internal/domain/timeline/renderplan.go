package timeline

import (
	"fmt"
	"time"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/domain/subtitles"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

// BuildRenderPlan translates a composed timeline into the render
// specification: ordered visual inputs with display durations, ordered audio
// inputs, and the combined subtitle track anchored to absolute offsets.
//
// A placeholder voice asset becomes generated silence of the segment's
// estimated duration. The substitution is explicit here: a text payload
// standing in for audio must never be handed to the renderer as an audio
// input.
func BuildRenderPlan(tl types.Timeline, assets []types.SegmentAssets, outputPath string) (types.RenderPlan, error) {
	if len(assets) != len(tl.Entries) {
		return types.RenderPlan{}, fmt.Errorf("%w: %d timeline entries but %d asset sets",
			types.ErrIncompleteTimeline, len(tl.Entries), len(assets))
	}

	plan := types.RenderPlan{
		Visuals:    make([]types.VisualInput, 0, len(tl.Entries)),
		Audio:      make([]types.AudioInput, 0, len(tl.Entries)),
		OutputPath: outputPath,
	}
	tracks := make([][]types.SubtitleCue, 0, len(tl.Entries))
	offsets := make([]time.Duration, 0, len(tl.Entries))
	for i, entry := range tl.Entries {
		a := assets[i]
		if a.Segment.Index != entry.Segment.Index {
			return types.RenderPlan{}, fmt.Errorf("%w: assets for segment %d found at timeline position %d",
				types.ErrIncompleteTimeline, a.Segment.Index, entry.Segment.Index)
		}
		if a.Image.Path == "" {
			return types.RenderPlan{}, fmt.Errorf("%w: segment %d has no image asset",
				types.ErrIncompleteTimeline, entry.Segment.Index)
		}

		plan.Visuals = append(plan.Visuals, types.VisualInput{
			ImagePath: a.Image.Path,
			Display:   entry.Segment.EstimatedDuration,
		})

		if a.Voice.Placeholder {
			plan.Audio = append(plan.Audio, types.AudioInput{Silence: entry.Segment.EstimatedDuration})
		} else {
			if a.Voice.Path == "" {
				return types.RenderPlan{}, fmt.Errorf("%w: segment %d has no voice asset",
					types.ErrIncompleteTimeline, entry.Segment.Index)
			}
			plan.Audio = append(plan.Audio, types.AudioInput{Path: a.Voice.Path})
		}

		tracks = append(tracks, []types.SubtitleCue{a.Cue})
		offsets = append(offsets, entry.StartOffset)
	}

	merged, err := subtitles.MergeTracks(tracks, offsets)
	if err != nil {
		return types.RenderPlan{}, fmt.Errorf("%w: %v", types.ErrIncompleteTimeline, err)
	}
	plan.Subtitles = merged
	return plan, nil
}
