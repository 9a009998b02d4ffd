package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/pipeline"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/server"
)

// buildConfig reads provider settings from the environment exactly once;
// everything downstream receives an explicit Config instead of touching
// globals.
func buildConfig(storiesDir string, parts int) (pipeline.Config, error) {
	apiKey := os.Getenv("PERPLEXITY_API_KEY")
	if apiKey == "" {
		return pipeline.Config{}, errors.New("PERPLEXITY_API_KEY is required (set it in .env)")
	}

	cfg := pipeline.Config{
		StoriesDir: storiesDir,
		Parts:      parts,
		Logf:       log.Printf,

		FFmpegPath: getenvDefault("FFMPEG_PATH", "ffmpeg"),

		PerplexityAPIKey:       apiKey,
		PerplexityModel:        getenvDefault("PERPLEXITY_MODEL", "sonar-pro"),
		PerplexityBaseURL:      getenvDefault("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
		PerplexityAllowedHosts: splitHosts(os.Getenv("PERPLEXITY_ALLOWED_HOSTS")),

		PollinationsBaseURL: os.Getenv("POLLINATIONS_BASE_URL"),

		ElevenLabsAPIKey:  os.Getenv("ELEVENLABS_API_KEY"),
		ElevenLabsVoiceID: os.Getenv("ELEVENLABS_VOICE_ID"),
		ElevenLabsBaseURL: os.Getenv("ELEVENLABS_BASE_URL"),
	}
	if err := cfg.Validate(); err != nil {
		return pipeline.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storiesDir, _ := cmd.Flags().GetString("stories")
			port, _ := cmd.Flags().GetInt("port")
			parts, _ := cmd.Flags().GetInt("parts")

			cfg, err := buildConfig(storiesDir, parts)
			if err != nil {
				return err
			}

			srv := server.New(cfg)
			addr := fmt.Sprintf(":%d", port)
			log.Printf("server running on %s", addr)
			return srv.Router().Run(addr)
		},
	}
	cmd.Flags().String("stories", "stories", "Directory for job artifacts")
	cmd.Flags().Int("port", 8080, "Listen port")

	// Hidden tuning flag (internal)
	cmd.Flags().Int("parts", 3, "Narrative segments per story")
	_ = cmd.Flags().MarkHidden("parts")
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <url>",
		Short: "Generate a single story video without the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			storiesDir, _ := cmd.Flags().GetString("stories")
			parts, _ := cmd.Flags().GetInt("parts")

			cfg, err := buildConfig(storiesDir, parts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			res, err := pipeline.Run(ctx, cfg, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "story %s complete: %s\n", res.ID, res.VideoPath)
			for _, d := range res.Degraded {
				fmt.Fprintf(cmd.OutOrStdout(), "degraded: segment %d %s (%s)\n", d.Segment, d.Kind, d.Reason)
			}
			return nil
		},
	}
	cmd.Flags().String("stories", "stories", "Directory for job artifacts")
	cmd.Flags().Int("parts", 3, "Narrative segments per story")
	_ = cmd.Flags().MarkHidden("parts")
	return cmd
}

func splitHosts(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
