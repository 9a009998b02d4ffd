package ports

import (
	"context"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

type Summarizer interface {
	Summarize(ctx context.Context, url string) (string, error)
}

type ImageProvider interface {
	Generate(ctx context.Context, text string) ([]byte, error)
}

type VoiceProvider interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type RenderExecutor interface {
	Render(ctx context.Context, plan types.RenderPlan) (string, error)
}
