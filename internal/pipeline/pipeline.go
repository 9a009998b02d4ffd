package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/ports"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/ports/adapters/elevenlabs"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/ports/adapters/ffmpeg"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/ports/adapters/perplexity"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/ports/adapters/pollinations"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/usecase"
)

type Config struct {
	// StoriesDir is the root under which each job gets its own directory.
	// If empty, defaults to "stories".
	StoriesDir string

	// Parts is how many narrative segments the summary is split into.
	// If zero, defaults to 3.
	Parts int

	Logf func(format string, args ...any)

	FFmpegPath string

	PerplexityAPIKey       string
	PerplexityModel        string
	PerplexityBaseURL      string
	PerplexityAllowedHosts []string

	PollinationsBaseURL string

	ElevenLabsAPIKey  string
	ElevenLabsVoiceID string
	ElevenLabsBaseURL string
}

func (c Config) Validate() error {
	if c.PerplexityAPIKey == "" {
		return errors.New("perplexity api key is required")
	}
	if c.Parts < 0 {
		return fmt.Errorf("parts must be >= 0")
	}
	return perplexity.ValidateBaseURL(c.PerplexityBaseURL, c.PerplexityAllowedHosts)
}

// Run executes one job: it creates the job directory, wires the provider
// adapters into the orchestrator, and maps the in-memory result onto the
// persisted artifact enumeration.
func Run(ctx context.Context, cfg Config, url string) (types.JobResult, error) {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	// adapters
	sum := perplexity.New(cfg.PerplexityAPIKey, cfg.PerplexityModel, cfg.PerplexityBaseURL)
	img := pollinations.New(cfg.PollinationsBaseURL)
	tts := elevenlabs.New(cfg.ElevenLabsAPIKey, cfg.ElevenLabsVoiceID, cfg.ElevenLabsBaseURL)
	rnd := ffmpeg.New(cfg.FFmpegPath)

	uc := usecase.New(usecase.Deps{
		Summarizer: sum,
		Images:     img,
		Voices:     tts,
		Renderer:   rnd,
		Logf:       logf,
	})

	storiesDir := cfg.StoriesDir
	if storiesDir == "" {
		storiesDir = "stories"
	}
	jobID := uuid.NewString()
	jobDir := filepath.Join(storiesDir, jobID)
	if err := os.MkdirAll(jobDir, 0o755); err != nil {
		return types.JobResult{}, fmt.Errorf("create job dir: %w", err)
	}
	logf("job %s: processing %s", jobID, url)
	logf("job %s: output directory %s", jobID, jobDir)

	res, err := uc.Run(ctx, usecase.Input{
		URL:    url,
		JobDir: jobDir,
		Parts:  cfg.Parts,
	})
	if err != nil {
		return types.JobResult{}, err
	}

	return types.JobResult{
		ID:        jobID,
		Summary:   res.Summary,
		VideoPath: res.VideoPath,
		Files:     enumerateFiles(res.Segments),
		Degraded:  res.Degraded,
	}, nil
}

func enumerateFiles(segments []types.SegmentAssets) types.JobFiles {
	f := types.JobFiles{Video: "final-video.mp4"}
	for _, sa := range segments {
		i := sa.Segment.Index
		f.Text = append(f.Text, fmt.Sprintf("story-%d.txt", i))
		f.Images = append(f.Images, filepath.Base(sa.Image.Path))
		f.Audio = append(f.Audio, filepath.Base(sa.Voice.Path))
		f.Subtitles = append(f.Subtitles, fmt.Sprintf("subtitle-%d.srt", i))
	}
	return f
}

// ensure adapters implement ports
var _ ports.Summarizer = (*perplexity.Adapter)(nil)
var _ ports.ImageProvider = (*pollinations.Adapter)(nil)
var _ ports.VoiceProvider = (*elevenlabs.Adapter)(nil)
var _ ports.RenderExecutor = (*ffmpeg.Adapter)(nil)
