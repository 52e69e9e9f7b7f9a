package usecase

import (
	"adventbot/internal/daykey"
	"adventbot/internal/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

const announcementHeader = "📅 農工大アドベントカレンダー2025: %s の記事です！:"

// RunConfig содержит адреса, необходимые одному прогону.
type RunConfig struct {
	WebhookURL string
	FeedURL    string
}

// RunOptions управляет прогоном.
// FeedText, если задан, используется вместо загрузки ленты по сети.
// DryRun заменяет отправку сообщений записью в лог.
type RunOptions struct {
	FeedText *string
	DryRun   bool
}

// AnnounceUseCase реализует прогон оповещения: загрузка ленты, разбор,
// отбор записей за текущий день и последовательная отправка в вебхук.
type AnnounceUseCase struct {
	fetcher  FeedFetcher
	parser   FeedParser
	notifier Notifier
	loc      *time.Location
	log      *slog.Logger
}

// NewAnnounceUseCase создает новый экземпляр UseCase оповещения.
// loc задает часовой пояс, в котором определяется "сегодня".
func NewAnnounceUseCase(
	fetcher FeedFetcher,
	parser FeedParser,
	notifier Notifier,
	loc *time.Location,
	log *slog.Logger,
) *AnnounceUseCase {
	return &AnnounceUseCase{
		fetcher:  fetcher,
		parser:   parser,
		notifier: notifier,
		loc:      loc,
		log:      log.With(slog.String("component", "announcer")),
	}
}

// RunOnce выполняет один прогон относительно момента now.
// Ошибки загрузки и доставки не перехватываются: цикл отправки прерывается,
// уже отправленные сообщения остаются отправленными.
func (uc *AnnounceUseCase) RunOnce(ctx context.Context, cfg RunConfig, now time.Time, opts RunOptions) (domain.RunResult, error) {
	if cfg.WebhookURL == "" {
		return domain.RunResult{}, &domain.ConfigurationError{Field: "webhook_url"}
	}
	if opts.FeedText == nil && cfg.FeedURL == "" {
		return domain.RunResult{}, &domain.ConfigurationError{Field: "feed_url"}
	}

	items, err := uc.loadItems(ctx, cfg.FeedURL, opts.FeedText)
	if err != nil {
		return domain.RunResult{}, err
	}

	today := daykey.FormatDay(now, uc.loc)
	log := uc.log.With(slog.String("day", today))
	todays := FilterByDay(items, today, uc.loc)
	log.Debug("Feed items filtered",
		slog.Int("items_found", len(items)),
		slog.Int("count", len(todays)),
	)
	if len(todays) == 0 {
		log.Info("No entries for today")
		return domain.NoEntryResult(today), nil
	}

	for i, item := range todays {
		message := BuildMessage(item, today)
		if opts.DryRun {
			log.Info("[dry-run] would post", slog.String("message", message))
			continue
		}
		if err := uc.notifier.Post(ctx, cfg.WebhookURL, message); err != nil {
			log.Error("Delivery failed, aborting run",
				slog.String("item_title", item.Title),
				slog.Int("delivered", i),
				slog.Any("error", err),
			)
			return domain.RunResult{}, fmt.Errorf("delivery failed for %q: %w", item.Title, err)
		}
		log.Info("Entry announced", slog.String("item_title", item.Title), slog.String("link", item.Link))
	}

	return domain.RunResult{
		Sent:   !opts.DryRun,
		DryRun: opts.DryRun,
		Count:  len(todays),
		Day:    today,
	}, nil
}

// loadItems получает текст ленты (из override или по сети) и разбирает его.
func (uc *AnnounceUseCase) loadItems(ctx context.Context, feedURL string, override *string) ([]domain.FeedItem, error) {
	var reader io.Reader
	if override != nil {
		uc.log.Debug("Using feed text override")
		reader = strings.NewReader(*override)
	} else {
		body, err := uc.fetcher.Fetch(ctx, feedURL)
		if err != nil {
			return nil, fmt.Errorf("fetch failed: %w", err)
		}
		defer body.Close()
		reader = body
	}
	items, err := uc.parser.Parse(ctx, reader)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	return items, nil
}

// FilterByDay оставляет записи, дата публикации которых приходится на day в поясе loc.
// Записи без даты или с нераспознанной датой отбрасываются.
func FilterByDay(items []domain.FeedItem, day string, loc *time.Location) []domain.FeedItem {
	var out []domain.FeedItem
	for _, item := range items {
		published, ok := daykey.ParsePublicationDate(item.PubDate)
		if !ok {
			continue
		}
		if daykey.FormatDay(published, loc) == day {
			out = append(out, item)
		}
	}
	return out
}

// BuildMessage собирает текст оповещения: заголовок с датой, строка с названием и ссылка.
func BuildMessage(item domain.FeedItem, day string) string {
	return strings.Join([]string{
		fmt.Sprintf(announcementHeader, day),
		"• " + item.Title,
		item.Link,
	}, "\n")
}
