package server

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"statusio-go/internal/config"
	"statusio-go/internal/logging"
	"statusio-go/internal/render"
	"statusio-go/internal/version"
)

// Stream is the wire shape of one status card in a stream response.
type Stream struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	URL           string          `json:"url"`
	ExternalURL   string          `json:"externalUrl"`
	BehaviorHints map[string]bool `json:"behaviorHints"`
}

type streamResponse struct {
	Streams []Stream `json:"streams"`
}

func (s *Server) registerRoutes(engine *gin.Engine) {
	engine.GET("/health", s.handleHealth)
	engine.GET("/manifest.json", s.handleManifest)
	engine.GET("/configure", s.handleConfigure)
	engine.GET("/:userConfig/manifest.json", s.handleManifest)
	engine.GET("/:userConfig/configure", s.handleConfigure)
	engine.GET("/:userConfig/stream/:type/:id", s.handleStream)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": version.Version})
}

func (s *Server) handleManifest(c *gin.Context) {
	c.JSON(http.StatusOK, BuildManifest())
}

// handleStream serves the status cards for one playback request. Only
// IMDb ids are answered; anything else gets an empty stream list, which
// clients treat as "nothing to add".
func (s *Server) handleStream(c *gin.Context) {
	id := strings.TrimSuffix(c.Param("id"), ".json")
	if !strings.HasPrefix(id, "tt") {
		c.JSON(http.StatusOK, streamResponse{Streams: []Stream{}})
		return
	}

	cfg := s.Config()
	settings := s.requestSettings(c, cfg)

	// TVs filter out setup/instructional streams; with no credentials at
	// all there is nothing useful to say, so answer empty.
	if !settings.DemoMode && len(settings.Credentials.Enabled()) == 0 {
		c.JSON(http.StatusOK, streamResponse{Streams: []Stream{}})
		return
	}

	records := s.agg.Fetch(c.Request.Context(), settings)

	cards := render.Cards(records, render.Options{
		Mode:          settings.Visibility,
		ThresholdDays: settings.ThresholdDays,
		ShowQuotes:    settings.ShowQuotes,
		Surface:       render.SurfaceCompact,
		URL:           s.agg.PrimaryURL(settings.Credentials, cfg.FallbackCardURL),
	}, s.picker)

	streams := make([]Stream, 0, len(cards))
	for _, card := range cards {
		streams = append(streams, Stream{
			Name:          card.Name,
			Description:   card.Description,
			URL:           card.URL,
			ExternalURL:   card.URL,
			BehaviorHints: map[string]bool{"notWebReady": true},
		})
	}

	logging.WithReq(c, log.Fields{"id": id, "cards": len(streams), "demo": settings.DemoMode}).Debug("stream_request")
	c.JSON(http.StatusOK, streamResponse{Streams: streams})
}

// requestSettings parses the URL-encoded JSON config segment of the
// request path. A missing or unparseable segment falls back to defaults.
func (s *Server) requestSettings(c *gin.Context, cfg *config.Config) config.Settings {
	raw := c.Param("userConfig")
	if raw == "" {
		return config.DefaultSettings(cfg)
	}
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}
	return config.ParseSettings([]byte(raw), cfg)
}

const configurePage = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Statusio</title></head>
<body>
<h1>🔐 Statusio</h1>
<p>Shows premium status &amp; days remaining across multiple debrid providers.</p>
<p>Install the addon in Stremio and fill in your provider tokens in the
addon configuration dialog. All fields are optional; leave a field empty
to disable that provider.</p>
</body>
</html>`

func (s *Server) handleConfigure(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(configurePage))
}
