// Package ffmpeg executes a render plan with the ffmpeg binary: it
// concatenates the still images into a video stream, concatenates voiceovers
// (or generated silence) into one continuous audio stream, and burns the
// combined subtitle track into the picture.
package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/domain/subtitles"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

type Adapter struct {
	ffmpeg string
}

func New(ffmpegPath string) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &Adapter{ffmpeg: ffmpegPath}
}

const subtitleStyle = "Fontsize=18,PrimaryColour=&HFFFFFF,OutlineColour=&H000000,Outline=2,Shadow=1,Alignment=2,MarginV=40"

// Render writes the two intermediates the command needs (the concat list and
// the combined subtitle file), runs ffmpeg, and removes the intermediates on
// success. ffmpeg encodes into a scratch name and the result is renamed to
// plan.OutputPath only after the encode succeeded; the job directory is
// served publicly, so a half-written video must never sit at the final path.
func (a *Adapter) Render(ctx context.Context, plan types.RenderPlan) (string, error) {
	if len(plan.Visuals) == 0 || len(plan.Audio) == 0 {
		return "", fmt.Errorf("render plan has no inputs")
	}
	dir := filepath.Dir(plan.OutputPath)

	concatPath := filepath.Join(dir, "concat-list.txt")
	if err := os.WriteFile(concatPath, []byte(concatList(plan.Visuals)), 0o644); err != nil {
		return "", fmt.Errorf("write concat list: %w", err)
	}

	srtPath := filepath.Join(dir, "combined-subtitles.srt")
	if err := os.WriteFile(srtPath, []byte(subtitles.FormatSRT(plan.Subtitles)), 0o644); err != nil {
		return "", fmt.Errorf("write combined subtitles: %w", err)
	}

	scratch := partialPath(plan.OutputPath)
	args := buildArgs(concatPath, srtPath, scratch, plan)
	cmd := exec.CommandContext(ctx, a.ffmpeg, args...)
	cmd.Dir = dir
	b, err := cmd.CombinedOutput()
	if err != nil {
		_ = os.Remove(scratch)
		return "", fmt.Errorf("ffmpeg render: %w\n%s", err, string(b))
	}
	if err := os.Rename(scratch, plan.OutputPath); err != nil {
		return "", fmt.Errorf("publish rendered video: %w", err)
	}

	// Intermediates are scratch state, not part of the job's artifact set.
	_ = os.Remove(concatPath)
	_ = os.Remove(srtPath)

	return plan.OutputPath, nil
}

// partialPath keeps the container extension so ffmpeg still picks the muxer
// from the name.
func partialPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + ".partial" + ext
}

// concatList emits a concat-demuxer script: each image with its display
// duration, with the last image repeated once because the demuxer ignores
// the duration directive on the final entry otherwise.
func concatList(visuals []types.VisualInput) string {
	var b strings.Builder
	for _, v := range visuals {
		fmt.Fprintf(&b, "file '%s'\n", filepath.Base(v.ImagePath))
		fmt.Fprintf(&b, "duration %s\n", fmtSeconds(v.Display))
	}
	fmt.Fprintf(&b, "file '%s'\n", filepath.Base(visuals[len(visuals)-1].ImagePath))
	return b.String()
}

func buildArgs(concatPath, srtPath, outPath string, plan types.RenderPlan) []string {
	args := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", filepath.Base(concatPath),
	}
	for _, in := range plan.Audio {
		if in.Silence > 0 {
			args = append(args,
				"-f", "lavfi",
				"-t", fmtSeconds(in.Silence),
				"-i", "anullsrc=r=44100:cl=mono",
			)
		} else {
			args = append(args, "-i", filepath.Base(in.Path))
		}
	}

	args = append(args, "-filter_complex", filterGraph(srtPath, len(plan.Audio)))
	args = append(args,
		"-map", "[outv]",
		"-map", "[outa]",
		"-c:v", "libx264",
		"-c:a", "aac",
		"-pix_fmt", "yuv420p",
		"-shortest",
		filepath.Base(outPath),
	)
	return args
}

func filterGraph(srtPath string, audioN int) string {
	var b strings.Builder
	for i := 1; i <= audioN; i++ {
		fmt.Fprintf(&b, "[%d:a]", i)
	}
	fmt.Fprintf(&b, "concat=n=%d:v=0:a=1[outa];", audioN)
	fmt.Fprintf(&b, "[0:v]subtitles='%s':force_style='%s'[outv]",
		escapeFilterPath(filepath.Base(srtPath)), subtitleStyle)
	return b.String()
}

func fmtSeconds(d time.Duration) string {
	sec := float64(d) / float64(time.Second)
	return strconv.FormatFloat(sec, 'f', 3, 64)
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
