package scheduler

import (
	"context"
	"fmt"

	"gigportal_backend/platform/config"
	"gigportal_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// PackageAuditor checks that a listing received a package.
type PackageAuditor interface {
	AuditPackages(ctx context.Context, gigID uuid.UUID) error
}

type Worker struct {
	server  *asynq.Server
	mux     *asynq.ServeMux
	auditor PackageAuditor
	log     *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, auditor PackageAuditor, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	w := &Worker{
		server:  server,
		mux:     newMux(auditor, log),
		auditor: auditor,
		log:     log,
	}
	return w, nil
}

func newMux(auditor PackageAuditor, log *logger.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskGigPackageAudit, packageAuditHandler(auditor, log))
	return mux
}

func packageAuditHandler(auditor PackageAuditor, log *logger.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		payload, err := ParseGigPackageAuditPayload(task)
		if err != nil {
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		gigID, err := uuid.Parse(payload.GigID)
		if err != nil {
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if err := auditor.AuditPackages(ctx, gigID); err != nil {
			log.Warn("package audit failed", "gigId", gigID, "error", err)
			return err
		}
		return nil
	}
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
