// File: internal/jobs/cv_cleanup.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"talento_backend/internal/application"
	"talento_backend/internal/config"
	"talento_backend/internal/filestorage"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CVCleanupJob reaps CV files that were uploaded but never attached to an
// application row. The submission flow is two-phase and not transactional,
// so a reload between upload and insert leaves a file behind; this job is
// the out-of-band cleanup for those orphans.
type CVCleanupJob struct {
	appRepo       application.Repository
	storage       *filestorage.Service
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
}

// NewCVCleanupJob creates a new CVCleanupJob.
func NewCVCleanupJob(
	appRepo application.Repository,
	storage *filestorage.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *CVCleanupJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &CVCleanupJob{
		appRepo:       appRepo,
		storage:       storage,
		logger:        logger.Named("CVCleanupJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *CVCleanupJob) SetupAndStart() error {
	jobSpec := j.cfg.CVSweepJobSchedule // e.g. "@daily", "0 1 * * *"
	if jobSpec == "" {
		j.logger.Warn("CV cleanup job schedule not defined (CV_SWEEP_JOB_SCHEDULE). Job will not run.")
		return nil // Not a fatal error, just won't run
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule CV cleanup job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("CV cleanup job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// runJob is the actual work performed by the cron job.
func (j *CVCleanupJob) runJob() {
	j.logger.Info("Starting CV cleanup job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	removed, err := j.SweepOrphans(ctx, time.Now())
	if err != nil {
		j.logger.Error("CV cleanup job run failed", zap.Error(err))
	} else {
		j.logger.Info("CV cleanup job run completed", zap.Int("orphans_removed", removed))
	}
}

// SweepOrphans removes stored CVs older than the grace period that no
// application row references. Files inside the grace period are left alone:
// their submission may still be in flight.
func (j *CVCleanupJob) SweepOrphans(ctx context.Context, now time.Time) (int, error) {
	files, err := j.storage.ListCVFiles()
	if err != nil {
		return 0, fmt.Errorf("listing stored CVs: %w", err)
	}

	removed := 0
	for _, f := range files {
		if now.Sub(f.ModTime) < j.cfg.CVOrphanGracePeriod {
			continue
		}

		referenced, err := j.appRepo.ExistsByCVPath(ctx, f.RelPath)
		if err != nil {
			j.logger.Error("Failed to check CV reference, skipping file",
				zap.String("path", f.RelPath), zap.Error(err))
			continue
		}
		if referenced {
			continue
		}

		if err := j.storage.DeleteFile(f.RelPath); err != nil {
			j.logger.Error("Failed to delete orphaned CV",
				zap.String("path", f.RelPath), zap.Error(err))
			continue
		}
		j.logger.Info("Deleted orphaned CV", zap.String("path", f.RelPath))
		removed++
	}
	return removed, nil
}

// Stop gracefully stops the cron scheduler.
func (j *CVCleanupJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping CV cleanup job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("CV cleanup job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("CV cleanup job scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

// Info logs routine messages from cron.
func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	cl.zl.Info(msg, fields...)
}

// Error logs error messages from cron.
func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
