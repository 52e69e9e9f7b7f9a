package webhook

import (
	"adventbot/internal/domain"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// maxErrorBody ограничивает объем тела ответа, сохраняемого в ошибке доставки.
const maxErrorBody = 4 << 10

type message struct {
	Content string `json:"content"`
}

// DiscordNotifier отправляет сообщения во входящий вебхук Discord.
// Каждый вызов Post - ровно один POST-запрос, без повторов и группировки.
type DiscordNotifier struct {
	client *http.Client
	log    *slog.Logger
}

func NewDiscordNotifier(log *slog.Logger) *DiscordNotifier {
	return &DiscordNotifier{
		client: http.DefaultClient,
		log:    log,
	}
}

// Post публикует content в вебхук webhookURL.
// Ответ вне 2xx возвращается как *domain.DeliveryError со статусом и телом ответа.
func (n *DiscordNotifier) Post(ctx context.Context, webhookURL, content string) error {
	log := n.log.With(slog.String("component", "webhook"))
	body, err := json.Marshal(message{Content: content})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		err = withoutURL(err)
		log.Error("Failed to create webhook request", slog.Any("error", err))
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := n.client.Do(req)
	if err != nil {
		err = withoutURL(err)
		log.Error("Webhook request failed", slog.Any("error", err))
		return fmt.Errorf("failed to send webhook request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Error("Webhook rejected message",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(text)),
		)
		return &domain.DeliveryError{StatusCode: resp.StatusCode, Body: string(text)}
	}
	io.Copy(io.Discard, resp.Body)
	log.Debug("Webhook message delivered", slog.Int("status_code", resp.StatusCode))
	return nil
}

// withoutURL снимает с ошибки обертку *url.Error: ее текст содержит адрес вебхука вместе с токеном.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s webhook: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
