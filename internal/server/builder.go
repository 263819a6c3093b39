package server

import (
	"sync"

	"github.com/gin-gonic/gin"

	"statusio-go/internal/aggregator"
	"statusio-go/internal/config"
	mw "statusio-go/internal/middleware"
	"statusio-go/internal/render"
)

// Server carries the addon's runtime dependencies. The configuration can
// be swapped at runtime by the config watcher; everything else is fixed at
// construction.
type Server struct {
	mu     sync.RWMutex
	cfg    *config.Config
	agg    *aggregator.Service
	picker *render.Picker
}

func New(cfg *config.Config, agg *aggregator.Service, picker *render.Picker) *Server {
	if picker == nil {
		picker = render.NewPicker()
	}
	return &Server{cfg: cfg, agg: agg, picker: picker}
}

// Config returns the current configuration snapshot.
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// UpdateConfig swaps the configuration; in-flight requests keep the
// snapshot they started with.
func (s *Server) UpdateConfig(cfg *config.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Engine builds the gin engine with the standard middleware chain and the
// addon routes.
func (s *Server) Engine() *gin.Engine {
	cfg := s.Config()
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(mw.RequestID())
	engine.Use(mw.RequestLogger())
	engine.Use(mw.Recovery())
	engine.Use(mw.CORS())
	if cfg.RateLimitEnabled {
		engine.Use(mw.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	s.registerRoutes(engine)
	return engine
}
