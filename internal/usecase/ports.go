package usecase

import (
	"adventbot/internal/domain"
	"context"
	"io"
)

// FeedFetcher определяет интерфейс для загрузки ленты из внешнего источника.
// Возвращает io.ReadCloser, который должен быть закрыт после использования.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) (io.ReadCloser, error)
}

// FeedParser определяет интерфейс для разбора текста ленты в записи.
type FeedParser interface {
	Parse(ctx context.Context, reader io.Reader) ([]domain.FeedItem, error)
}

// Notifier доставляет одно сообщение в вебхук чата.
type Notifier interface {
	Post(ctx context.Context, webhookURL, content string) error
}

// RunJournal сохраняет записи о выполненных прогонах.
type RunJournal interface {
	SaveRun(ctx context.Context, record domain.RunRecord) error
}
