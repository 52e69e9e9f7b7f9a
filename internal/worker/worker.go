package worker

import (
	"adventbot/internal/daykey"
	"adventbot/internal/domain"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Job определяет интерфейс задания, выполняемого воркером по расписанию.
// Используется для внедрения зависимости в воркер.
type Job interface {
	Run(ctx context.Context, now time.Time) (domain.RunResult, error)
}

// Worker реализует фонового воркера, запускающего задание раз в сутки
// в заданное время по часовому поясу loc.
type Worker struct {
	job        Job
	clock      string
	loc        *time.Location
	runOnStart bool
	runTimeout time.Duration
	log        *slog.Logger
	now        func() time.Time
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
}

// New создает нового воркера. clock задается в формате HH:MM.
// Возвращает ошибку, если время расписания некорректно.
func New(job Job, clock string, loc *time.Location, runOnStart bool, runTimeout time.Duration, log *slog.Logger) (*Worker, error) {
	if _, err := daykey.NextOccurrence(time.Now(), clock, loc); err != nil {
		return nil, fmt.Errorf("bad schedule: %w", err)
	}
	return &Worker{
		job:        job,
		clock:      clock,
		loc:        loc,
		runOnStart: runOnStart,
		runTimeout: runTimeout,
		log:        log.With(slog.String("component", "worker")),
		now:        time.Now,
	}, nil
}

// Start запускает воркер в отдельной горутине.
func (w *Worker) Start() {
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.wg.Add(1)
	go w.run()
}

// Stop отменяет контекст воркера и дожидается завершения текущего прогона.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

// run выполняет основной цикл: ждет ближайшего времени по расписанию и запускает задание.
func (w *Worker) run() {
	defer w.wg.Done()
	w.log.Info("Announce worker started",
		slog.String("schedule", w.clock),
		slog.String("time_zone", w.loc.String()),
		slog.Bool("run_on_start", w.runOnStart),
	)
	if w.runOnStart {
		w.runJob()
	}
	for {
		next, _ := daykey.NextOccurrence(w.now(), w.clock, w.loc)
		w.log.Info("Next run scheduled", slog.Time("at", next))
		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			w.runJob()
		case <-w.ctx.Done():
			timer.Stop()
			w.log.Info("Worker stopping")
			return
		}
	}
}

// runJob выполняет одно задание с ограничением по времени. Ошибки только логируются.
func (w *Worker) runJob() {
	if w.ctx.Err() != nil {
		return
	}
	if w.job == nil {
		w.log.Error("job not initialized")
		return
	}
	opCtx, opCancel := context.WithTimeout(w.ctx, w.runTimeout)
	defer opCancel()
	result, err := w.job.Run(opCtx, w.now())
	if err != nil {
		w.log.Error("Scheduled run failed", slog.Any("error", err))
		return
	}
	w.log.Debug("Scheduled run finished",
		slog.String("day", result.Day),
		slog.Bool("sent", result.Sent),
		slog.Int("count", result.Count),
	)
}

// GetSchedule возвращает время ежедневного запуска в формате HH:MM.
func (w *Worker) GetSchedule() string { return w.clock }

// GetLocation возвращает часовой пояс расписания.
func (w *Worker) GetLocation() *time.Location { return w.loc }
