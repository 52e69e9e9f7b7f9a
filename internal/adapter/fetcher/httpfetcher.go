package fetcher

import (
	"adventbot/internal/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// UserAgent - заголовок, которым бот представляется источнику ленты.
const UserAgent = "discord-adventcalendar-bot/1.0"

// HTTPFetcher реализует интерфейс FeedFetcher для загрузки лент по HTTP.
// Ответ со статусом вне 2xx превращается в *domain.RetrievalError.
type HTTPFetcher struct {
	client *http.Client
	log    *slog.Logger
}

// NewHTTPFetcher создает новый экземпляр HTTPFetcher.
// Таймаут клиентом не задается: время прогона ограничивает вызывающая сторона через контекст.
func NewHTTPFetcher(log *slog.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: http.DefaultClient,
		log:    log,
	}
}

// Fetch выполняет GET-запрос к ленте и возвращает тело ответа.
// Тело должно быть закрыто вызывающей стороной.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	log := f.log.With(slog.String("component", "fetcher"), slog.String("url", url))
	log.Info("Fetching feed")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("Failed to create HTTP request", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create request for url %s: %w", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		log.Error("HTTP request failed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to fetch url %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		log.Error("Unexpected status code", slog.Int("status_code", resp.StatusCode))
		return nil, &domain.RetrievalError{
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
	}
	log.Info("Successfully fetched feed")
	return resp.Body, nil
}
