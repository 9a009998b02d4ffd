package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Manjunath203/ai-url-to-video-generator/internal/pipeline"
	"github.com/Manjunath203/ai-url-to-video-generator/internal/types"
)

// jobTimeout bounds a whole job: summarize, six generation calls, and the
// final encode. Generous because image generation alone can take most of
// two minutes for three segments.
const jobTimeout = 10 * time.Minute

type Server struct {
	cfg pipeline.Config

	// run is swappable so handler tests don't drive the real pipeline.
	run func(ctx context.Context, cfg pipeline.Config, url string) (types.JobResult, error)
}

func New(cfg pipeline.Config) *Server {
	return &Server{cfg: cfg, run: pipeline.Run}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	storiesDir := s.cfg.StoriesDir
	if storiesDir == "" {
		storiesDir = "stories"
	}
	r.Static("/stories", storiesDir)
	r.GET("/create-story", s.handleCreateStory)
	return r
}

func (s *Server) handleCreateStory(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), jobTimeout)
	defer cancel()

	res, err := s.run(ctx, s.cfg, url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       res.ID,
		"message":  "Story video generated successfully!",
		"summary":  truncateSummary(res.Summary, 100),
		"videoUrl": "/stories/" + res.ID + "/final-video.mp4",
		"files":    res.Files,
		"degraded": res.Degraded,
	})
}

func truncateSummary(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
