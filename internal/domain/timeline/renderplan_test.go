package timeline

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/domain/subtitles"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

func testAssets(segments []types.Segment) []types.SegmentAssets {
	out := make([]types.SegmentAssets, 0, len(segments))
	for _, s := range segments {
		out = append(out, types.SegmentAssets{
			Segment: s,
			Image:   types.GeneratedAsset{Kind: types.AssetImage, Path: "b-roll.png"},
			Voice:   types.GeneratedAsset{Kind: types.AssetVoice, Path: "voiceover.mp3"},
			Cue:     subtitles.BuildCue(s.Text, 1, s.EstimatedDuration),
		})
	}
	return out
}

func TestBuildRenderPlan(t *testing.T) {
	in := segs(40*time.Second, 40*time.Second, 40*time.Second)
	tl, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	plan, err := BuildRenderPlan(tl, testAssets(in), "out/final-video.mp4")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(plan.Visuals) != 3 || len(plan.Audio) != 3 || len(plan.Subtitles) != 3 {
		t.Fatalf("plan sizes: %d visuals %d audio %d cues", len(plan.Visuals), len(plan.Audio), len(plan.Subtitles))
	}
	if plan.Visuals[1].Display != 40*time.Second {
		t.Fatalf("visual 2 display %s, want 40s", plan.Visuals[1].Display)
	}
	if plan.Subtitles[1].Start != 40*time.Second || plan.Subtitles[2].Start != 80*time.Second {
		t.Fatalf("cue starts %s and %s, want 40s and 1m20s", plan.Subtitles[1].Start, plan.Subtitles[2].Start)
	}
	for i, c := range plan.Subtitles {
		if c.Index != i+1 {
			t.Fatalf("cue %d has index %d", i, c.Index)
		}
	}
}

func TestBuildRenderPlan_AssetCountMismatch(t *testing.T) {
	in := segs(10*time.Second, 10*time.Second, 10*time.Second)
	tl, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	_, err = BuildRenderPlan(tl, testAssets(in)[:2], "out/final-video.mp4")
	if !errors.Is(err, types.ErrIncompleteTimeline) {
		t.Fatalf("expected ErrIncompleteTimeline, got %v", err)
	}
}

func TestBuildRenderPlan_PlaceholderVoiceBecomesSilence(t *testing.T) {
	in := segs(40*time.Second, 40*time.Second, 40*time.Second)
	tl, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	assets := testAssets(in)
	assets[1].Voice = types.GeneratedAsset{
		Kind:        types.AssetVoice,
		Path:        "voiceover-2.txt",
		Placeholder: true,
		Reason:      "tts unavailable",
	}

	plan, err := BuildRenderPlan(tl, assets, "out/final-video.mp4")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got := plan.Audio[1]
	if got.Path != "" {
		t.Fatalf("placeholder voice leaked a path into the audio plan: %q", got.Path)
	}
	if got.Silence != 40*time.Second {
		t.Fatalf("silence duration %s, want the segment's estimated 40s", got.Silence)
	}
}

func TestBuildRenderPlan_MissingVoicePath(t *testing.T) {
	in := segs(10 * time.Second)
	tl, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	assets := testAssets(in)
	assets[0].Voice.Path = ""

	_, err = BuildRenderPlan(tl, assets, "out/final-video.mp4")
	if !errors.Is(err, types.ErrIncompleteTimeline) {
		t.Fatalf("expected ErrIncompleteTimeline, got %v", err)
	}
}

func TestBuildRenderPlan_Deterministic(t *testing.T) {
	in := segs(12*time.Second, 34*time.Second)
	tl, err := Compose(in)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	assets := testAssets(in)

	a, err := BuildRenderPlan(tl, assets, "out/final-video.mp4")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := BuildRenderPlan(tl, assets, "out/final-video.mp4")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs produced different render plans")
	}
}
