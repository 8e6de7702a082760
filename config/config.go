package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort     string
	ServerHost     string
	BaseURL        string
	AllowedOrigins []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret  string
	SessionTTL time.Duration

	// Mail configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// RabbitMQ configuration
	AMQPURL string

	// Image storage
	S3BucketName string
	AWSRegion    string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	env := GetEnvironment()
	cfg := &Config{
		ServerPort:     value("SERVER_PORT", "server_port", "8080"),
		ServerHost:     value("SERVER_HOST", "server_host", "0.0.0.0"),
		BaseURL:        value("BASE_URL", "base_url", "http://localhost:8080"),
		AllowedOrigins: splitList(value("ALLOWED_ORIGINS", "allowed_origins", "http://localhost:8080")),

		DBDriver:   value("DB_DRIVER", "db_driver", "postgres"),
		DBHost:     value("DB_HOST", "db_host", "localhost"),
		DBPort:     value("DB_PORT", "db_port", "5432"),
		DBUser:     value("DB_USER", "db_user", "postgres"),
		DBPassword: value("DB_PASSWORD", "db_password", ""),
		DBName:     value("DB_NAME", "db_name", "nagoyameshi"),
		DBSSLMode:  value("DB_SSL_MODE", "db_ssl_mode", "disable"),
		DBPath:     value("DB_PATH", "db_path", "nagoyameshi.db"),

		RedisHost:     value("REDIS_HOST", "redis_host", ""),
		RedisPort:     value("REDIS_PORT", "redis_port", "6379"),
		RedisPassword: value("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:      value("REDIS_URL", "redis_url", ""),
		RedisDB:       0, // This is a constant, not a secret

		JWTSecret: value("JWT_SECRET", "jwt_secret", ""),

		SMTPHost:     value("SMTP_HOST", "smtp_host", ""),
		SMTPUsername: value("SMTP_USERNAME", "smtp_username", ""),
		SMTPPassword: value("SMTP_PASSWORD", "smtp_password", ""),
		MailFrom:     value("MAIL_FROM", "email_from", "no-reply@nagoyameshi.example"),

		AMQPURL: value("AMQP_URL", "amqp_url", ""),

		S3BucketName: value("S3_BUCKET_NAME", "s3_bucket_name", ""),
		AWSRegion:    value("AWS_REGION", "aws_region", ""),
	}

	port, err := strconv.Atoi(value("SMTP_PORT", "smtp_port", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTPPort = port

	ttl, err := time.ParseDuration(value("SESSION_TTL", "session_ttl", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = ttl

	if cfg.JWTSecret == "" && env != Production {
		cfg.JWTSecret = "development-secret"
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// DSN builds the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return c.ServerHost + ":" + c.ServerPort
}

// MailEnabled reports whether an SMTP relay is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}

// value returns the environment variable, then the Docker secret, then the default
func value(envKey, secretName, def string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	if v := readSecret(secretName); v != "" {
		return v
	}
	return def
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
