package subtitles

import (
	"testing"
	"time"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

func TestBuildCue_AnchoredAtZero(t *testing.T) {
	c := BuildCue("hello world", 1, 10*time.Second)
	if c.Start != 0 || c.End != 10*time.Second {
		t.Fatalf("cue span [%s, %s], want [0s, 10s]", c.Start, c.End)
	}
	if c.Index != 1 || c.Text != "hello world" {
		t.Fatalf("unexpected cue: %+v", c)
	}
}

func TestBuildCue_EmptyText(t *testing.T) {
	c := BuildCue("", 2, time.Second)
	if c.Text != "" {
		t.Fatalf("expected zero-length text cue, got %q", c.Text)
	}
	if c.End != time.Second {
		t.Fatalf("expected cue to keep its duration, got %s", c.End)
	}
}

func TestReanchor_Additive(t *testing.T) {
	c := BuildCue("text", 1, 10*time.Second)
	d1 := 40 * time.Second
	d2 := 7*time.Second + 125*time.Millisecond

	twice := Reanchor(Reanchor(c, d1, 2), d2, 3)
	once := Reanchor(c, d1+d2, 3)
	if twice != once {
		t.Fatalf("reanchor not additive:\n twice %+v\n once  %+v", twice, once)
	}
}

func TestSrtTime(t *testing.T) {
	tests := map[time.Duration]string{
		0:                                    "00:00:00,000",
		40 * time.Second:                     "00:00:40,000",
		80 * time.Second:                     "00:01:20,000",
		time.Hour + 2*time.Minute + 3*time.Second + 45*time.Millisecond: "01:02:03,045",
	}
	for d, want := range tests {
		if got := srtTime(d); got != want {
			t.Fatalf("srtTime(%s) = %q, want %q", d, got, want)
		}
	}
}

func TestFormatSRT(t *testing.T) {
	cues := []types.SubtitleCue{
		{Index: 1, Start: 0, End: 40 * time.Second, Text: "part one"},
		{Index: 2, Start: 40 * time.Second, End: 80 * time.Second, Text: "part two"},
	}
	want := "1\n00:00:00,000 --> 00:00:40,000\npart one\n\n" +
		"2\n00:00:40,000 --> 00:01:20,000\npart two\n\n"
	if got := FormatSRT(cues); got != want {
		t.Fatalf("FormatSRT mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestMergeTracks(t *testing.T) {
	tracks := [][]types.SubtitleCue{
		{BuildCue("one", 1, 40*time.Second)},
		{BuildCue("two", 1, 40*time.Second)},
		{BuildCue("three", 1, 40*time.Second)},
	}
	offsets := []time.Duration{0, 40 * time.Second, 80 * time.Second}

	merged, err := MergeTracks(tracks, offsets)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if len(merged) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(merged))
	}
	if merged[1].Start != 40*time.Second || merged[1].Index != 2 {
		t.Fatalf("cue 2 start=%s index=%d, want 40s index 2", merged[1].Start, merged[1].Index)
	}
	if merged[2].Start != 80*time.Second || merged[2].Index != 3 {
		t.Fatalf("cue 3 start=%s index=%d, want 1m20s index 3", merged[2].Start, merged[2].Index)
	}
}

func TestMergeTracks_LengthMismatch(t *testing.T) {
	_, err := MergeTracks(make([][]types.SubtitleCue, 3), make([]time.Duration, 2))
	if err == nil {
		t.Fatal("expected error for mismatched tracks/offsets")
	}
}
