package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nagoyameshi/backend/internal/middleware"
	"github.com/nagoyameshi/backend/internal/service"
	"github.com/nagoyameshi/backend/internal/web"
)

// Services bundles the business services behind the routes
type Services struct {
	Auth         service.IAuthService
	Users        service.IUserService
	Categories   service.ICategoryService
	Restaurants  service.IRestaurantService
	Reservations service.IReservationService
	Reviews      service.IReviewService
	Favorites    service.IFavoriteService
}

// Options tunes sessions, rate limits and the health probe
type Options struct {
	SessionTTL         time.Duration
	SecureCookie       bool
	LoginLimiter       gin.HandlerFunc
	ReservationLimiter gin.HandlerFunc
	Health             func(ctx context.Context) error
}

func passThrough(c *gin.Context) { c.Next() }

// RegisterRoutes registers every page of the site
func RegisterRoutes(router *gin.Engine, svc Services, view *web.View, opts Options) {
	SetupValidator()
	if opts.LoginLimiter == nil {
		opts.LoginLimiter = passThrough
	}
	if opts.ReservationLimiter == nil {
		opts.ReservationLimiter = passThrough
	}

	// Health check endpoint (no auth required)
	router.GET("/health", NewHealthHandler(opts.Health).Check)

	public := router.Group("/", middleware.AuthMiddleware(svc.Auth))
	member := public.Group("/", middleware.RequireAuth())
	admin := public.Group("/admin", middleware.RequireAdmin())

	NewAuthHandler(svc.Auth, view, opts.SessionTTL, opts.SecureCookie).RegisterRoutes(public, opts.LoginLimiter)
	NewUserHandler(svc.Users, svc.Auth, view, opts.SessionTTL, opts.SecureCookie).RegisterRoutes(member, admin)
	NewCategoryHandler(svc.Categories, view).RegisterRoutes(admin)
	NewRestaurantHandler(svc.Restaurants, svc.Categories, view).RegisterRoutes(public, admin)
	NewReservationHandler(svc.Reservations, svc.Restaurants, view).RegisterRoutes(member, opts.ReservationLimiter)
	NewReviewHandler(svc.Reviews, svc.Restaurants, view).RegisterRoutes(public, member)
	NewFavoriteHandler(svc.Favorites, view).RegisterRoutes(member)

	router.NoRoute(middleware.NotFound())
}

// HealthHandler reports whether the database answers
type HealthHandler struct {
	check func(ctx context.Context) error
}

func NewHealthHandler(check func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{check: check}
}

// Check returns the health status of the site
func (h *HealthHandler) Check(c *gin.Context) {
	if h.check != nil {
		if err := h.check(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "NAGOYAMESHI is running",
	})
}
