package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/voicebubble/voicebubble/api"
	"github.com/voicebubble/voicebubble/config"
	"github.com/voicebubble/voicebubble/db"
	"github.com/voicebubble/voicebubble/extract"
	"github.com/voicebubble/voicebubble/llm"
	"github.com/voicebubble/voicebubble/log"
	"github.com/voicebubble/voicebubble/prompt"
	"github.com/voicebubble/voicebubble/quality"
	"github.com/voicebubble/voicebubble/rewrite"
)

// Cached rewrites older than this are dropped at startup.
const cacheMaxAge = 30 * 24 * time.Hour

// Server owns and coordinates all application components
type Server struct {
	cfg *config.Config

	patterns  *quality.PatternSet
	engine    *rewrite.Engine
	extractor *extract.Extractor

	router *gin.Engine
	http   *http.Server
}

// New creates a new server with all components initialized
func New(cfg *config.Config) (*Server, error) {
	s := &Server{cfg: cfg}

	// Preset registry must be coherent before anything else runs
	if err := prompt.CheckRegistry(); err != nil {
		return nil, fmt.Errorf("preset registry invalid: %w", err)
	}

	log.Info().Msg("initializing cache database")
	_ = db.GetDB()
	if pruned, err := db.PruneCache(cacheMaxAge); err != nil {
		log.Warn().Err(err).Msg("cache prune failed")
	} else if pruned > 0 {
		log.Info().Int64("entries", pruned).Msg("pruned stale cache entries")
	}

	log.Info().Msg("initializing generation client")
	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}

	// Slop patterns: compiled-in defaults, optionally extended from a
	// watched file
	s.patterns = quality.NewPatternSet()
	if cfg.SlopPatternsPath != "" {
		if err := s.patterns.LoadFile(cfg.SlopPatternsPath); err != nil {
			log.Warn().Err(err).Str("path", cfg.SlopPatternsPath).Msg("failed to load slop patterns, using defaults")
		} else if err := s.patterns.Watch(cfg.SlopPatternsPath); err != nil {
			log.Warn().Err(err).Msg("failed to watch slop patterns file")
		}
	}

	policy := quality.DefaultPolicy()
	policy.AcceptScore = cfg.AcceptScore

	validator := quality.NewValidator(policy, s.patterns)
	improver := quality.NewImprover(client, validator)

	s.engine = rewrite.NewEngine(client, improver, rewrite.NewSQLiteCache())
	s.extractor = extract.NewExtractor(client, cfg.MaxExtractAttempts, cfg.AcceptScore)

	s.setupRouter(client)

	log.Info().Msg("server initialized successfully")
	return s, nil
}

// setupRouter creates and configures the Gin router
func (s *Server) setupRouter(gen llm.Generator) {
	if !s.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	s.router = gin.New()

	s.router.Use(gin.Recovery())
	s.router.Use(log.GinLogger())

	// CORS for development
	if s.cfg.IsDevelopment() {
		s.router.Use(corsMiddleware())
	}

	// Gzip compression (skip the SSE endpoint, it needs streaming)
	s.router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{
		"/api/rewrite",
	})))

	s.router.SetTrustedProxies(nil)

	handlers := api.NewHandlers(s.engine, s.extractor, gen)
	api.SetupRoutes(s.router, handlers)
}

// corsMiddleware handles CORS for development environments
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Start starts the HTTP server (blocks)
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:     fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:  s.router,
		ErrorLog: log.StdLogger(zerolog.WarnLevel),
	}

	log.Info().
		Str("addr", s.http.Addr).
		Str("env", s.cfg.Env).
		Msg("HTTP server starting")

	return s.http.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down server")

	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("http server shutdown error")
		}
	}

	if s.patterns != nil {
		s.patterns.Close()
	}

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("database close error")
		return err
	}

	log.Info().Msg("server shutdown complete")
	return nil
}

// Router exposes the configured router, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.router
}
