package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nagoyameshi/backend/config"
	"github.com/nagoyameshi/backend/internal/api"
	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/web"
)

// Dependencies are the collaborators the HTTP server is assembled from
type Dependencies struct {
	Services api.Services
	Images   web.ImageResolver
	// Redis backs flash messages and rate limits; nil keeps both in-process
	Redis  *redis.Client
	Health func(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router with its middleware chain and pages
func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	tmpl, err := web.ParseTemplates(deps.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	opts := api.Options{
		SessionTTL:   cfg.SessionTTL,
		SecureCookie: config.IsProduction(),
		Health:       deps.Health,
	}
	if deps.Redis != nil {
		opts.LoginLimiter = middleware.NewLoginRateLimiter(deps.Redis).RateLimitMiddleware()
		opts.ReservationLimiter = middleware.NewReservationRateLimiter(deps.Redis).RateLimitMiddleware()
	}

	view := web.NewView(web.NewFlashStore(deps.Redis))
	api.RegisterRoutes(router, deps.Services, view, opts)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until the server is shut down
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
