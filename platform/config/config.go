// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// ClerkConfig provides settings for verifying Clerk session tokens and webhooks.
type ClerkConfig interface {
	GetClerkJWKSURL() string
	GetClerkIssuer() string
	GetClerkWebhookSecret() string
}

// RedisConfig provides settings for the shared Redis client.
type RedisConfig interface {
	GetRedisURL() string
	GetCategoryCacheTTL() time.Duration
}

// SchedulerConfig provides settings for the asynq client and worker.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
	GetPackageAuditDelay() time.Duration
	GetPackageAuditSweepInterval() time.Duration
}

// MinIOConfig provides settings for MinIO S3-compatible storage.
type MinIOConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOMaxFileSize() int64
	GetMinioBucketGigImages() string
	IsMinIOEnabled() bool
}

// SMTPConfig provides settings for outgoing mail.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	IsSMTPEnabled() bool
}

// DashboardConfig provides settings for the freelancer dashboard flows.
type DashboardConfig interface {
	GetAppBaseURL() string
	GetDefaultLocale() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	DatabaseURL          string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	AppBaseURL           string
	DefaultLocale        string
	ClerkJWKSURL         string
	ClerkIssuer          string
	ClerkWebhookSecret   string
	RedisURL             string
	RedisTLSInsecure     bool
	CategoryCacheTTL     time.Duration
	AsynqQueueName       string
	AsynqConcurrency     int
	PackageAuditDelay    time.Duration
	PackageAuditSweep    time.Duration
	MinIOEndpoint        string
	MinIOAccessKey       string
	MinIOSecretKey       string
	MinIOUseSSL          bool
	MinIOMaxFileSize     int64
	MinioBucketGigImages string
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	EmailFromName        string
	EmailFromAddress     string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// ClerkConfig implementation
func (c *Config) GetClerkJWKSURL() string       { return c.ClerkJWKSURL }
func (c *Config) GetClerkIssuer() string        { return c.ClerkIssuer }
func (c *Config) GetClerkWebhookSecret() string { return c.ClerkWebhookSecret }

// RedisConfig / SchedulerConfig implementation
func (c *Config) GetRedisURL() string                 { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool           { return c.RedisTLSInsecure }
func (c *Config) GetCategoryCacheTTL() time.Duration  { return c.CategoryCacheTTL }
func (c *Config) GetAsynqQueueName() string           { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int            { return c.AsynqConcurrency }
func (c *Config) GetPackageAuditDelay() time.Duration { return c.PackageAuditDelay }
func (c *Config) GetPackageAuditSweepInterval() time.Duration {
	return c.PackageAuditSweep
}

// MinIOConfig implementation
func (c *Config) GetMinIOEndpoint() string        { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string       { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string       { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool            { return c.MinIOUseSSL }
func (c *Config) GetMinIOMaxFileSize() int64      { return c.MinIOMaxFileSize }
func (c *Config) GetMinioBucketGigImages() string { return c.MinioBucketGigImages }
func (c *Config) IsMinIOEnabled() bool            { return c.MinIOEndpoint != "" }

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) IsSMTPEnabled() bool         { return c.SMTPHost != "" && c.EmailFromAddress != "" }

// DashboardConfig implementation
func (c *Config) GetAppBaseURL() string    { return c.AppBaseURL }
func (c *Config) GetDefaultLocale() string { return c.DefaultLocale }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	clerkIssuer := strings.TrimRight(getEnv("CLERK_ISSUER", ""), "/")
	clerkJWKSURL := getEnv("CLERK_JWKS_URL", "")
	if clerkJWKSURL == "" && clerkIssuer != "" {
		clerkJWKSURL = clerkIssuer + "/.well-known/jwks.json"
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		AppBaseURL:           strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),
		DefaultLocale:        strings.ToLower(getEnv("DEFAULT_LOCALE", "en")),
		ClerkJWKSURL:         clerkJWKSURL,
		ClerkIssuer:          clerkIssuer,
		ClerkWebhookSecret:   getEnv("CLERK_WEBHOOK_SECRET", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		RedisTLSInsecure:     strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		CategoryCacheTTL:     mustDuration(getEnv("CATEGORY_CACHE_TTL", "10m")),
		AsynqQueueName:       getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:     mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		PackageAuditDelay:    mustDuration(getEnv("PACKAGE_AUDIT_DELAY", "10m")),
		PackageAuditSweep:    mustDuration(getEnv("PACKAGE_AUDIT_SWEEP_INTERVAL", "1h")),
		MinIOEndpoint:        getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:       getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:       getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:          strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOMaxFileSize:     mustInt64(getEnv("MINIO_MAX_FILE_SIZE", "10485760")),
		MinioBucketGigImages: getEnv("MINIO_BUCKET_GIG_IMAGES", "gig-images"),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		EmailFromName:        getEnv("EMAIL_FROM_NAME", "Gigportal"),
		EmailFromAddress:     getEnv("EMAIL_FROM_ADDRESS", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.ClerkJWKSURL == "" {
		return nil, fmt.Errorf("CLERK_JWKS_URL or CLERK_ISSUER is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.PackageAuditDelay <= 0 || cfg.PackageAuditSweep <= 0 {
		return nil, fmt.Errorf("PACKAGE_AUDIT_DELAY and PACKAGE_AUDIT_SWEEP_INTERVAL must be positive durations")
	}
	if cfg.DefaultLocale != "en" && cfg.DefaultLocale != "nl" {
		return nil, fmt.Errorf("DEFAULT_LOCALE must be en or nl, got %q", cfg.DefaultLocale)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustInt64(value string) int64 {
	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
