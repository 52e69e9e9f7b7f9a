package usecase

import (
	"adventbot/internal/domain"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	TriggerSchedule = "schedule"
	TriggerManual   = "manual"

	journalTimeout = 5 * time.Second
)

// AnnounceJob оборачивает AnnounceUseCase для вызова из планировщика и CLI:
// присваивает прогону идентификатор, логирует начало и конец и пишет запись в журнал.
type AnnounceJob struct {
	announcer *AnnounceUseCase
	cfg       RunConfig
	dryRun    bool
	journal   RunJournal
	log       *slog.Logger
}

// NewAnnounceJob создает задание оповещения. journal может быть nil.
func NewAnnounceJob(announcer *AnnounceUseCase, cfg RunConfig, dryRun bool, journal RunJournal, log *slog.Logger) *AnnounceJob {
	return &AnnounceJob{
		announcer: announcer,
		cfg:       cfg,
		dryRun:    dryRun,
		journal:   journal,
		log:       log.With(slog.String("component", "job")),
	}
}

// Run выполняет плановый прогон с настройкой dry-run по умолчанию.
func (j *AnnounceJob) Run(ctx context.Context, now time.Time) (domain.RunResult, error) {
	return j.RunWith(ctx, now, TriggerSchedule, RunOptions{DryRun: j.dryRun})
}

// RunWith выполняет прогон с явными опциями.
// Ошибка журнала только логируется и не влияет на результат прогона.
func (j *AnnounceJob) RunWith(ctx context.Context, now time.Time, trigger string, opts RunOptions) (domain.RunResult, error) {
	runID := uuid.NewString()
	log := j.log.With(slog.String("run_id", runID), slog.String("trigger", trigger))
	start := time.Now()
	log.Info("Run started",
		slog.Time("reference", now),
		slog.Bool("dry_run", opts.DryRun),
	)

	result, err := j.announcer.RunOnce(ctx, j.cfg, now, opts)
	duration := time.Since(start)

	record := domain.RunRecord{
		ID:        runID,
		Trigger:   trigger,
		StartedAt: start,
		Duration:  duration,
		Day:       result.Day,
		Sent:      result.Sent,
		DryRun:    result.DryRun,
		Count:     result.Count,
		Reason:    result.Reason,
	}
	if err != nil {
		record.Error = err.Error()
		log.Error("Run failed", slog.Any("error", err), slog.Duration("duration", duration))
	} else {
		log.Info("Run completed",
			slog.String("day", result.Day),
			slog.Bool("sent", result.Sent),
			slog.Int("count", result.Count),
			slog.Duration("duration", duration),
		)
	}
	j.record(ctx, log, record)
	return result, err
}

func (j *AnnounceJob) record(ctx context.Context, log *slog.Logger, record domain.RunRecord) {
	if j.journal == nil {
		return
	}
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	if err := j.journal.SaveRun(saveCtx, record); err != nil {
		log.Warn("Failed to record run", slog.Any("error", err))
	}
}
