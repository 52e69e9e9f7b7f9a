package app

import (
	"adventbot/internal/adapter/fetcher"
	"adventbot/internal/adapter/parser"
	"adventbot/internal/adapter/webhook"
	"adventbot/internal/config"
	"adventbot/internal/daykey"
	"adventbot/internal/domain"
	"adventbot/internal/logger"
	"adventbot/internal/migrations"
	server "adventbot/internal/transport/http"
	"adventbot/internal/usecase"
	"adventbot/internal/worker"
	"adventbot/storage"
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const memoryJournalCapacity = 100

// App представляет основное приложение бота оповещений.
// Координирует работу компонентов: прогона оповещения, воркера расписания,
// служебного HTTP-сервера, журнала прогонов и системы логирования.
type App struct {
	config   *config.Config
	logger   *slog.Logger
	loc      *time.Location
	job      *usecase.AnnounceJob
	store    storage.Storage
	server   *http.Server
	worker   *worker.Worker
	stopChan chan os.Signal
	wg       sync.WaitGroup
}

// New создает и инициализирует приложение.
// Если база данных включена, подключается к ней и применяет миграции,
// иначе журнал прогонов хранится в памяти.
func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	slog.SetDefault(appLogger)
	return NewWithLogger(cfg, appLogger)
}

// NewWithLogger собирает приложение с готовым логгером.
func NewWithLogger(cfg *config.Config, appLogger *slog.Logger) (*App, error) {
	loc, err := daykey.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("bad init app: %w", err)
	}
	store, err := openStorage(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	httpFetcher := fetcher.NewHTTPFetcher(appLogger)

	var feedParser usecase.FeedParser
	switch cfg.App.Parser {
	case config.ParserGofeed:
		feedParser = parser.NewGofeedParser(appLogger)
	default:
		feedParser = parser.NewPatternParser(appLogger)
	}

	notifier := webhook.NewDiscordNotifier(appLogger)

	announcer := usecase.NewAnnounceUseCase(httpFetcher, feedParser, notifier, loc, appLogger)

	job := usecase.NewAnnounceJob(announcer, usecase.RunConfig{
		WebhookURL: cfg.App.WebhookURL,
		FeedURL:    cfg.App.FeedURL,
	}, cfg.App.DryRun, store, appLogger)

	runsGetter := usecase.NewRunsGetterUseCase(store)

	handler := server.NewHandler(appLogger, runsGetter, cfg.App.DefaultRunsLimit)

	router := server.NewServer(appLogger, handler)

	scheduler, err := worker.New(job, cfg.App.ScheduleTime, loc, cfg.App.RunOnStart, cfg.App.RunTimeoutDuration(), appLogger)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("bad init app: %w", err)
	}

	return &App{
		config: cfg,
		logger: appLogger,
		loc:    loc,
		job:    job,
		store:  store,
		server: &http.Server{
			Addr:              cfg.Server.Address,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		worker:   scheduler,
		stopChan: make(chan os.Signal, 1),
	}, nil
}

// openStorage открывает журнал прогонов: PostgreSQL при включенной базе, иначе память.
func openStorage(cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	if !cfg.Database.Enabled {
		log.Info("Database disabled, using in-memory run journal", slog.String("component", "app"))
		return storage.NewMemoryRunJournal(memoryJournalCapacity, cfg.App.DefaultRunsLimit), nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	dbPool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	if err := migrations.Apply(ctx, log, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}
	return storage.NewPostgresRunJournal(dbPool, cfg.App.DefaultRunsLimit, log), nil
}

// Location возвращает часовой пояс, в котором определяется "сегодня".
func (a *App) Location() *time.Location { return a.loc }

// RunOnce выполняет один ручной прогон относительно момента now.
func (a *App) RunOnce(ctx context.Context, now time.Time, opts usecase.RunOptions) (domain.RunResult, error) {
	return a.job.RunWith(ctx, now, usecase.TriggerManual, opts)
}

// Close освобождает ресурсы приложения, не запускавшего сервер.
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
}

// Run запускает воркер расписания и служебный HTTP-сервер.
// Метод блокируется до получения сигнала завершения или отмены ctx.
// Для работы по расписанию адрес ленты обязателен.
func (a *App) Run(ctx context.Context) error {
	if a.config.App.FeedURL == "" {
		a.Close()
		return &domain.ConfigurationError{Field: "feed_url"}
	}
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		a.Close()
		return fmt.Errorf("failed to create listener: %w", err)
	}
	a.logger.Info("Starting advent calendar announcer",
		slog.String("component", "app"),
		slog.String("feed_url", a.config.App.FeedURL),
		slog.String("schedule", a.worker.GetSchedule()),
		slog.String("time_zone", a.worker.GetLocation().String()),
		slog.Bool("dry_run", a.config.App.DryRun),
	)
	a.worker.Start()
	a.logger.Info("HTTP server ready",
		slog.String("component", "server"),
		slog.String("address", listener.Addr().String()),
	)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			a.logger.Error("HTTP server failed", slog.Any("error", err))
		}
	}()
	signal.Notify(a.stopChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(a.stopChan)
	select {
	case sig := <-a.stopChan:
		a.logger.Info("Shutdown signal received",
			slog.String("component", "app"),
			slog.String("signal", sig.String()),
		)
	case <-ctx.Done():
		a.logger.Info("Context cancelled", slog.String("component", "app"))
	}
	return a.Shutdown()
}

// Shutdown выполняет graceful shutdown: останавливает воркер, завершает HTTP-сервер
// с таймаутом 10 секунд, закрывает журнал и ожидает завершения горутин.
func (a *App) Shutdown() error {
	a.logger.Info("Starting graceful shutdown")
	if a.worker != nil {
		a.worker.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed", slog.Any("error", err))
	}
	a.wg.Wait()
	a.Close()
	a.logger.Info("Application stopped gracefully")
	return nil
}
