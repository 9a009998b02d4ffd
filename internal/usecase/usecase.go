package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/domain/narration"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/domain/subtitles"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/domain/timeline"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/fallback"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/ports"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

// State names one phase of a job's lifecycle. Failed is terminal and
// reachable from any non-terminal state.
type State string

const (
	StateCreated            State = "created"
	StateSummarizing        State = "summarizing"
	StatePartitioningText   State = "partitioning_text"
	StateGeneratingAssets   State = "generating_assets"
	StateComposingTimeline  State = "composing_timeline"
	StateBuildingRenderPlan State = "building_render_plan"
	StateRendering          State = "rendering"
	StateComplete           State = "complete"
	StateFailed             State = "failed"
)

type Deps struct {
	Summarizer ports.Summarizer
	Images     ports.ImageProvider
	Voices     ports.VoiceProvider
	Renderer   ports.RenderExecutor
	Logf       func(format string, args ...any)
}

type Usecase struct {
	d      Deps
	assets *fallback.Policy
}

func New(d Deps) Usecase {
	if d.Logf == nil {
		d.Logf = func(string, ...any) {}
	}
	return Usecase{
		d:      d,
		assets: fallback.New(d.Images, d.Voices, d.Logf),
	}
}

type Input struct {
	URL    string
	JobDir string
	Parts  int

	// OnState, when set, observes every state transition.
	OnState func(State)
}

type Result struct {
	Summary   string
	Segments  []types.SegmentAssets
	Timeline  types.Timeline
	Plan      types.RenderPlan
	VideoPath string
	Degraded  []types.DegradedAsset
}

// Run drives one job through the full state machine. Per-segment generation
// fans out concurrently; a hard barrier in front of timeline composition
// guarantees every segment's duration and assets are final before offsets
// are computed. Asset failures degrade the output instead of failing the
// job; only summarization, unusable input and rendering are fatal.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	state := StateCreated
	setState := func(s State) {
		state = s
		u.d.Logf("job state: %s", s)
		if in.OnState != nil {
			in.OnState(s)
		}
	}
	fail := func(err error) (Result, error) {
		from := state
		setState(StateFailed)
		return Result{}, fmt.Errorf("job failed in state %s: %w", from, err)
	}

	parts := in.Parts
	if parts <= 0 {
		parts = 3
	}

	setState(StateSummarizing)
	summary, err := u.d.Summarizer.Summarize(ctx, in.URL)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", types.ErrUpstream, err))
	}

	setState(StatePartitioningText)
	texts, err := narration.SplitIntoParts(summary, parts)
	if err != nil {
		return fail(err)
	}
	segs := narration.NewSegments(texts)
	for _, seg := range segs {
		name := filepath.Join(in.JobDir, fmt.Sprintf("story-%d.txt", seg.Index))
		if err := os.WriteFile(name, []byte(seg.Text), 0o644); err != nil {
			return fail(fmt.Errorf("write segment text: %w", err))
		}
	}

	setState(StateGeneratingAssets)
	assets := make([]types.SegmentAssets, len(segs))
	g, gctx := errgroup.WithContext(ctx)
	for i, seg := range segs {
		i, seg := i, seg
		// Each segment owns its slot in the results slice; no locking needed.
		g.Go(func() error {
			sa := types.SegmentAssets{Segment: seg}

			// Image and voice are independent of each other.
			sg, sctx := errgroup.WithContext(gctx)
			sg.Go(func() error {
				sa.Image = u.assets.Image(sctx, seg, in.JobDir)
				return nil
			})
			sg.Go(func() error {
				sa.Voice = u.assets.Voice(sctx, seg, in.JobDir)
				return nil
			})
			if err := sg.Wait(); err != nil {
				return err
			}

			sa.Cue = subtitles.BuildCue(seg.Text, 1, seg.EstimatedDuration)
			srt := subtitles.FormatSRT([]types.SubtitleCue{sa.Cue})
			name := filepath.Join(in.JobDir, fmt.Sprintf("subtitle-%d.srt", seg.Index))
			if err := os.WriteFile(name, []byte(srt), 0o644); err != nil {
				return fmt.Errorf("write subtitle %d: %w", seg.Index, err)
			}

			assets[i] = sa
			return nil
		})
	}
	// Barrier: composition must not observe a segment whose assets or
	// duration are still in flight.
	if err := g.Wait(); err != nil {
		return fail(err)
	}
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	setState(StateComposingTimeline)
	tl, err := timeline.Compose(segs)
	if err != nil {
		return fail(err)
	}

	setState(StateBuildingRenderPlan)
	outputPath := filepath.Join(in.JobDir, "final-video.mp4")
	plan, err := timeline.BuildRenderPlan(tl, assets, outputPath)
	if err != nil {
		return fail(err)
	}

	setState(StateRendering)
	videoPath, err := u.d.Renderer.Render(ctx, plan)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", types.ErrRender, err))
	}

	setState(StateComplete)
	return Result{
		Summary:   summary,
		Segments:  assets,
		Timeline:  tl,
		Plan:      plan,
		VideoPath: videoPath,
		Degraded:  collectDegraded(assets),
	}, nil
}

func collectDegraded(assets []types.SegmentAssets) []types.DegradedAsset {
	var out []types.DegradedAsset
	for _, a := range assets {
		if a.Image.Placeholder {
			out = append(out, types.DegradedAsset{Segment: a.Segment.Index, Kind: types.AssetImage, Reason: a.Image.Reason})
		}
		if a.Voice.Placeholder {
			out = append(out, types.DegradedAsset{Segment: a.Segment.Index, Kind: types.AssetVoice, Reason: a.Voice.Reason})
		}
	}
	return out
}
