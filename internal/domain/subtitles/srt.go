package subtitles

import (
	"fmt"
	"strings"
	"time"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

// BuildCue creates a single cue for a segment, anchored at offset zero and
// spanning the segment's estimated duration. Empty text yields a zero-length
// text cue, not an error.
func BuildCue(text string, index int, d time.Duration) types.SubtitleCue {
	if d < 0 {
		d = 0
	}
	return types.SubtitleCue{
		Index: index,
		Start: 0,
		End:   d,
		Text:  strings.TrimSpace(text),
	}
}

// Reanchor shifts both cue offsets by delta and relabels the ordinal. Shifts
// are exact, so reanchoring twice equals reanchoring once by the summed
// delta.
func Reanchor(c types.SubtitleCue, delta time.Duration, newIndex int) types.SubtitleCue {
	c.Start += delta
	c.End += delta
	c.Index = newIndex
	return c
}

// MergeTracks re-anchors each segment-local track to its absolute start
// offset and renumbers cues sequentially across the whole job.
func MergeTracks(tracks [][]types.SubtitleCue, offsets []time.Duration) ([]types.SubtitleCue, error) {
	if len(tracks) != len(offsets) {
		return nil, fmt.Errorf("merge tracks: %d tracks but %d offsets", len(tracks), len(offsets))
	}
	var out []types.SubtitleCue
	next := 1
	for i, track := range tracks {
		for _, c := range track {
			out = append(out, Reanchor(c, offsets[i], next))
			next++
		}
	}
	return out, nil
}

// FormatSRT serializes cues in SubRip form: index line, timing line with
// millisecond-resolution timestamps, text, blank separator. Millisecond
// granularity is the compatibility contract for consumers of these files.
func FormatSRT(cues []types.SubtitleCue) string {
	var b strings.Builder
	for _, c := range cues {
		b.WriteString(fmt.Sprintf("%d\n", c.Index))
		b.WriteString(srtTime(c.Start))
		b.WriteString(" --> ")
		b.WriteString(srtTime(c.End))
		b.WriteString("\n")
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}

func srtTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}
