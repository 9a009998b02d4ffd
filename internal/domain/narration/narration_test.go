package narration

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

func TestEstimateDuration(t *testing.T) {
	tests := map[string]struct {
		text string
		want time.Duration
	}{
		"empty":            {"", 0},
		"whitespace only":  {"   \n\t ", 0},
		"single word":      {"hello", time.Second},
		"five words":       {"one two three four five", 2 * time.Second},
		"hundred words":    {words(100), 40 * time.Second},
		"one fifty words":  {words(150), 60 * time.Second},
		"three hundred":    {words(300), 120 * time.Second},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := EstimateDuration(tc.text); got != tc.want {
				t.Fatalf("EstimateDuration = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestEstimateDuration_MonotonicInWordCount(t *testing.T) {
	prev := time.Duration(0)
	for n := 1; n <= 400; n += 7 {
		got := EstimateDuration(words(n))
		if got < time.Second {
			t.Fatalf("estimate for %d words is below 1s: %s", n, got)
		}
		if got < prev {
			t.Fatalf("estimate decreased at %d words: %s < %s", n, got, prev)
		}
		prev = got
	}
}

func TestSplitIntoParts_Balanced(t *testing.T) {
	parts, err := SplitIntoParts(words(300), 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	for i, p := range parts {
		if n := len(strings.Fields(p)); n != 100 {
			t.Fatalf("part %d has %d words, want 100", i+1, n)
		}
	}
}

func TestSplitIntoParts_Contiguous(t *testing.T) {
	in := words(31)
	parts, err := SplitIntoParts(in, 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if got := strings.Join(strings.Fields(strings.Join(parts, " ")), " "); got != in {
		t.Fatalf("parts do not reassemble the input:\n got %q\nwant %q", got, in)
	}
}

func TestSplitIntoParts_Empty(t *testing.T) {
	_, err := SplitIntoParts("   ", 3)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSplitIntoParts_ShortSummaryLeavesTrailingPartsEmpty(t *testing.T) {
	parts, err := SplitIntoParts("just two", 3)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(parts))
	}
	if parts[0] != "just" || parts[1] != "two" || parts[2] != "" {
		t.Fatalf("unexpected parts: %q", parts)
	}
}

func TestNewSegments_ClampsEmptyTextToOneSecond(t *testing.T) {
	segs := NewSegments([]string{words(100), "", "tail"})
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[0].EstimatedDuration != 40*time.Second {
		t.Fatalf("segment 1 duration = %s, want 40s", segs[0].EstimatedDuration)
	}
	if segs[1].EstimatedDuration != time.Second {
		t.Fatalf("empty segment duration = %s, want 1s", segs[1].EstimatedDuration)
	}
	for i, s := range segs {
		if s.Index != i+1 {
			t.Fatalf("segment %d has index %d", i, s.Index)
		}
	}
}

func words(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = "word"
	}
	return strings.Join(out, " ")
}
