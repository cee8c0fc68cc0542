// Package gateway is the edge service in front of the ShareIt server. It
// validates the caller header, rate-limits per caller and relays requests.
package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	"shareit/pkg/log"
	"shareit/pkg/metrics"
)

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	ServerURL       string
	Timeout         time.Duration
	Header          string
	RateLimitPerMin int
	Metrics         *metrics.Metrics
}

// Gateway holds the gin engine and the upstream client.
type Gateway struct {
	gin     *gin.Engine
	l       log.Logger
	port    int
	header  string
	client  *Client
	limiter *rateLimiter
	metrics *metrics.Metrics
	mw      middleware.Middleware
}

// New creates a Gateway with all routes registered.
func New(cfg Config) (*Gateway, error) {
	if cfg.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.ServerURL == "" {
		return nil, errors.New("server url is required")
	}
	if cfg.Header == "" {
		return nil, errors.New("identity header is required")
	}
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New("shareit_gateway")
	}

	g := &Gateway{
		gin:     gin.New(),
		l:       cfg.Logger,
		port:    cfg.Port,
		header:  cfg.Header,
		client:  NewClient(cfg.ServerURL, cfg.Header, cfg.Timeout),
		limiter: newRateLimiter(cfg.RateLimitPerMin),
		metrics: cfg.Metrics,
		mw:      middleware.New(cfg.Logger, cfg.Header),
	}
	g.mapHandlers()
	return g, nil
}

// Handler exposes the engine, mainly for tests.
func (g *Gateway) Handler() http.Handler {
	return g.gin
}
