package main

import (
	"adventbot/internal/app"
	"adventbot/internal/config"
	"adventbot/internal/daykey"
	"adventbot/internal/usecase"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type options struct {
	configPath string
	date       string
	dryRun     bool
	feedFile   string
	serve      bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("adventbot", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to config file (.json, .yaml)")
	fs.StringVar(&opts.date, "date", "", "run as if today were YYYY-MM-DD")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "log messages instead of posting them")
	fs.StringVar(&opts.feedFile, "feed-file", "", "read feed text from file instead of fetching it")
	fs.BoolVar(&opts.serve, "serve", false, "run the daily scheduler and HTTP API")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv(os.Getenv)
	if err := applyFlags(cfg, opts); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if opts.serve {
		return application.Run(context.Background())
	}
	defer application.Close()

	now, err := referenceTime(opts.date, application.Location())
	if err != nil {
		return err
	}
	runOpts := usecase.RunOptions{DryRun: cfg.App.DryRun}
	if opts.feedFile != "" {
		data, err := os.ReadFile(opts.feedFile)
		if err != nil {
			return fmt.Errorf("failed to read feed file: %w", err)
		}
		text := string(data)
		runOpts.FeedText = &text
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.App.RunTimeoutDuration())
	defer cancel()

	result, err := application.RunOnce(ctx, now, runOpts)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// applyFlags переносит флаги командной строки в конфигурацию.
// -feed-file и -date относятся только к разовому прогону и с -serve не сочетаются.
func applyFlags(cfg *config.Config, opts options) error {
	if opts.serve && opts.feedFile != "" {
		return fmt.Errorf("-feed-file cannot be used with -serve")
	}
	if opts.serve && opts.date != "" {
		return fmt.Errorf("-date cannot be used with -serve")
	}
	cfg.App.DryRun = cfg.App.DryRun || opts.dryRun
	return nil
}

// referenceTime возвращает момент, относительно которого выбирается "сегодня".
// Для явной даты берется полдень этого дня в поясе loc.
func referenceTime(date string, loc *time.Location) (time.Time, error) {
	if date == "" {
		return time.Now(), nil
	}
	day, err := daykey.ParseDay(date)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc), nil
}
