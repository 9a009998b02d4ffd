// Package fallback wraps the per-segment generation providers with a
// best-effort contract: a provider failure never fails the job. The first
// failure substitutes a well-defined placeholder immediately; there is no
// retry.
package fallback

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/ports"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

// placeholderPNG is a minimal valid 1x1 transparent PNG, written in place of
// a real image when the provider fails.
var placeholderPNG = mustDecode(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
)

type Policy struct {
	images ports.ImageProvider
	voices ports.VoiceProvider
	logf   func(format string, args ...any)
}

func New(images ports.ImageProvider, voices ports.VoiceProvider, logf func(string, ...any)) *Policy {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Policy{images: images, voices: voices, logf: logf}
}

// Image generates the segment's image into dir as b-roll-N.png. On any
// provider failure it writes the placeholder pixel instead and reports a
// placeholder asset; the job carries on.
func (p *Policy) Image(ctx context.Context, seg types.Segment, dir string) types.GeneratedAsset {
	path := filepath.Join(dir, fmt.Sprintf("b-roll-%d.png", seg.Index))

	data, err := p.images.Generate(ctx, seg.Text)
	if err == nil {
		err = writeAsset(path, data)
	}
	if err == nil {
		return types.GeneratedAsset{Kind: types.AssetImage, Path: path}
	}

	p.logf("image generation degraded for part %d: %v", seg.Index, err)
	if werr := os.WriteFile(path, placeholderPNG, 0o644); werr != nil {
		// Placeholder write failures leave the path in place anyway; the
		// renderer surfaces the missing file if it truly is unreachable.
		p.logf("write placeholder image for part %d: %v", seg.Index, werr)
	}
	return types.GeneratedAsset{
		Kind:        types.AssetImage,
		Path:        path,
		Placeholder: true,
		Reason:      err.Error(),
	}
}

// Voice synthesizes the segment's voiceover into dir as voiceover-N.mp3. On
// any provider failure it writes a plain-text stand-in (voiceover-N.txt)
// holding the original text; downstream stages treat the placeholder as
// silence of the estimated duration, never as audio.
func (p *Policy) Voice(ctx context.Context, seg types.Segment, dir string) types.GeneratedAsset {
	path := filepath.Join(dir, fmt.Sprintf("voiceover-%d.mp3", seg.Index))

	data, err := p.voices.Synthesize(ctx, seg.Text)
	if err == nil {
		err = writeAsset(path, data)
	}
	if err == nil {
		return types.GeneratedAsset{Kind: types.AssetVoice, Path: path}
	}

	p.logf("voice synthesis degraded for part %d: %v", seg.Index, err)
	textPath := filepath.Join(dir, fmt.Sprintf("voiceover-%d.txt", seg.Index))
	body := fmt.Sprintf("Voiceover text for part %d:\n\n%s", seg.Index, seg.Text)
	if werr := os.WriteFile(textPath, []byte(body), 0o644); werr != nil {
		p.logf("write placeholder voiceover for part %d: %v", seg.Index, werr)
	}
	return types.GeneratedAsset{
		Kind:        types.AssetVoice,
		Path:        textPath,
		Placeholder: true,
		Reason:      err.Error(),
	}
}

func writeAsset(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write asset: %w", err)
	}
	return nil
}

func mustDecode(b64 string) []byte {
	b, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		panic(fmt.Sprintf("fallback: bad embedded placeholder: %v", err))
	}
	return b
}
