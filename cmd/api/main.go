package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gigportal_backend/internal/accounts"
	"gigportal_backend/internal/adapters"
	"gigportal_backend/internal/adapters/storage"
	"gigportal_backend/internal/categories"
	categoryservice "gigportal_backend/internal/categories/service"
	"gigportal_backend/internal/dashboard"
	"gigportal_backend/internal/email"
	"gigportal_backend/internal/events"
	"gigportal_backend/internal/gigs"
	apphttp "gigportal_backend/internal/http"
	"gigportal_backend/internal/http/router"
	"gigportal_backend/internal/maps"
	"gigportal_backend/internal/notification"
	"gigportal_backend/internal/scheduler"
	"gigportal_backend/internal/search"
	"gigportal_backend/internal/webhook"
	"gigportal_backend/platform/cache"
	"gigportal_backend/platform/clerkauth"
	"gigportal_backend/platform/config"
	"gigportal_backend/platform/db"
	"gigportal_backend/platform/logger"
	"gigportal_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 10 * time.Second
	placeCacheTTL   = 24 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	verifier, err := clerkauth.NewVerifier(ctx, cfg.GetClerkJWKSURL(), cfg.GetClerkIssuer(), log)
	if err != nil {
		log.Error("failed to initialize clerk verifier", "error", err)
		panic("failed to initialize clerk verifier: " + err.Error())
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)
	defer eventBus.Wait()

	categoryCache, placeCache, closeCache := initCaches(ctx, cfg, log)
	if closeCache != nil {
		defer closeCache()
	}

	auditScheduler, closeScheduler := initAuditScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	storageSvc := initStorage(ctx, cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	accountsModule := accounts.NewModule(pool, eventBus, val, log)
	categoriesModule := categories.NewModule(pool, categoryCache, val, log)

	gigsModule := gigs.NewModule(pool, eventBus, storageSvc, cfg.GetMinioBucketGigImages(), cfg.GetAppBaseURL(),
		adapters.NewGigOwnerResolver(accountsModule.Service()), val, log)
	if auditScheduler != nil {
		gigsModule.SetAuditScheduler(auditScheduler, cfg.GetPackageAuditDelay())
	}

	// The draft form talks to accounts, categories and gigs through adapters only.
	dashboardModule := dashboard.NewModule(
		adapters.NewDraftSessionAdapter(accountsModule.Service()),
		categoriesModule.Service(),
		adapters.NewDraftGigBackend(gigsModule.Service()),
		gigsModule.Service(),
		val,
		log,
	)

	mapsModule := maps.NewModule(placeCache, log)
	searchModule := search.NewModule(pool, val)

	webhookModule := webhook.NewModule(accountsModule.Service(), initWebhookVerifier(cfg, log), log)

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(initSender(cfg, log), accountsModule.Service(), gigsModule.Service(), cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		Verifier: verifier,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			accountsModule,
			categoriesModule,
			gigsModule,
			dashboardModule,
			mapsModule,
			searchModule,
			webhookModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initCaches connects Redis for the category tree and place lookup caches.
// Both stay nil without REDIS_URL.
func initCaches(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (categoryservice.TreeCache, maps.ResultCache, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; category and place caches disabled")
		return nil, nil, nil
	}

	client, err := cache.NewClient(ctx, cfg.GetRedisURL())
	if err != nil {
		log.Error("failed to connect redis cache", "error", err)
		return nil, nil, nil
	}

	categoryCache := cache.NewJSONCache(client, "categories:", cfg.GetCategoryCacheTTL(), log)
	placeCache := cache.NewJSONCache(client, "places:", placeCacheTTL, log)
	return categoryCache, placeCache, func() {
		_ = client.Close()
	}
}

func initAuditScheduler(cfg config.SchedulerConfig, log *logger.Logger) (*scheduler.Client, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; package audits disabled")
		return nil, nil
	}

	client, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize package audit scheduler", "error", err)
		return nil, nil
	}

	return client, func() {
		_ = client.Close()
	}
}

// initStorage returns nil when MinIO is not configured. Image routes then answer with an error.
func initStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) storage.StorageService {
	if !cfg.IsMinIOEnabled() {
		log.Warn("MINIO_ENDPOINT not configured; gig image uploads disabled")
		return nil
	}

	storageSvc, err := storage.NewMinIOService(cfg)
	if err != nil {
		log.Error("failed to initialize storage service", "error", err)
		panic("failed to initialize storage service: " + err.Error())
	}
	if err := withRetry(ctx, log, "ensure gig images bucket", 5, 2*time.Second, func() error {
		return storageSvc.EnsureBucketExists(ctx, cfg.GetMinioBucketGigImages())
	}); err != nil {
		log.Error("failed to ensure storage bucket exists", "error", err, "bucket", cfg.GetMinioBucketGigImages())
		panic("failed to ensure storage bucket exists: " + err.Error())
	}
	log.Info("storage service initialized", "gigImagesBucket", cfg.GetMinioBucketGigImages())
	return storageSvc
}

func initSender(cfg config.SMTPConfig, log *logger.Logger) email.Sender {
	if !cfg.IsSMTPEnabled() {
		log.Warn("SMTP not configured; notification mails are skipped")
		return email.NoopSender{}
	}
	return email.NewSMTPSender(cfg.GetSMTPHost(), cfg.GetSMTPPort(), cfg.GetSMTPUsername(), cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(), cfg.GetEmailFromName())
}

func initWebhookVerifier(cfg config.ClerkConfig, log *logger.Logger) webhook.SignatureVerifier {
	if cfg.GetClerkWebhookSecret() == "" {
		log.Warn("CLERK_WEBHOOK_SECRET not configured; clerk webhooks will be rejected")
		return nil
	}
	v, err := webhook.NewVerifier(cfg.GetClerkWebhookSecret())
	if err != nil {
		log.Error("invalid clerk webhook secret", "error", err)
		panic("invalid clerk webhook secret: " + err.Error())
	}
	return v
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
