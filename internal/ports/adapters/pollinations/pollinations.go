package pollinations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Adapter struct {
	baseURL string
	client  *http.Client
}

const (
	// Image generation is the slowest provider in the chain; observed
	// behavior needs tens of seconds per image.
	requestTimeout = 90 * time.Second

	imageWidth  = 1280
	imageHeight = 720

	promptPrefix   = "Cinematic, photorealistic scene: "
	promptMaxRunes = 80
)

func New(baseURL string) *Adapter {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = "https://image.pollinations.ai"
	}
	baseURL = strings.TrimRight(baseURL, "/")
	return &Adapter{baseURL: baseURL, client: &http.Client{Timeout: requestTimeout}}
}

// Generate fetches one still image for the segment text. The text is clipped
// before it goes into the prompt; full segment text tends to exceed what the
// prompt endpoint accepts in a path component.
func (a *Adapter) Generate(ctx context.Context, text string) ([]byte, error) {
	prompt := promptPrefix + clipRunes(text, promptMaxRunes)
	u := fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&nologo=true",
		a.baseURL, url.PathEscape(prompt), imageWidth, imageHeight)

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pollinations request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 400))
		return nil, fmt.Errorf("pollinations status %d: %s", resp.StatusCode, string(rb))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pollinations read body: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("pollinations returned an empty image")
	}
	return data, nil
}

func clipRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
