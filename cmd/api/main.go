package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nagoyameshi/backend/config"
	"github.com/nagoyameshi/backend/internal/api"
	"github.com/nagoyameshi/backend/internal/database"
	"github.com/nagoyameshi/backend/internal/events"
	"github.com/nagoyameshi/backend/internal/server"
	"github.com/nagoyameshi/backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(config.GetEnvironment().GinMode())

	// Initialize database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := database.RunMigrations(db, database.Migrations()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional; without it flashes use cookies and rate limits are off
	var redisClient *redis.Client
	if database.RedisConfigured(cfg) {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		log.Printf("Redis not configured, using cookie flashes without rate limits")
	}

	ctx := context.Background()

	var storage service.ObjectStorage
	s3Cfg, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3: %v", err)
	}
	if s3Cfg != nil {
		storage = s3Cfg
	} else {
		log.Printf("S3 bucket not configured, restaurant images are disabled")
	}
	images := service.NewImageService(storage)

	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = amqpPublisher
	}
	defer publisher.Close()

	if !cfg.MailEnabled() {
		log.Printf("SMTP relay not configured, mails will be logged only")
	}
	email := service.NewEmailService(service.NewSMTPMailer(cfg), cfg.BaseURL)

	// Initialize services
	services := api.Services{
		Auth:         service.NewAuthService(db, email, cfg.JWTSecret, cfg.SessionTTL),
		Users:        service.NewUserService(db),
		Categories:   service.NewCategoryService(db),
		Restaurants:  service.NewRestaurantService(db, images),
		Reservations: service.NewReservationService(db, publisher, email),
		Reviews:      service.NewReviewService(db),
		Favorites:    service.NewFavoriteService(db),
	}

	srv, err := server.New(cfg, server.Dependencies{
		Services: services,
		Images:   images,
		Redis:    redisClient,
		Health: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	})
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	// Gracefully shutdown the server
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
