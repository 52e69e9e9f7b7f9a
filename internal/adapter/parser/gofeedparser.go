package parser

import (
	"adventbot/internal/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mmcdole/gofeed"
)

// GofeedParser разбирает ленту библиотекой gofeed и приводит записи к domain.FeedItem.
type GofeedParser struct {
	parser *gofeed.Parser
	log    *slog.Logger
}

func NewGofeedParser(log *slog.Logger) *GofeedParser {
	return &GofeedParser{
		parser: gofeed.NewParser(),
		log:    log,
	}
}

// Parse реализует метод интерфейса FeedParser.
func (p *GofeedParser) Parse(ctx context.Context, reader io.Reader) ([]domain.FeedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	feed, err := p.parser.Parse(reader)
	if err != nil {
		p.log.Error("Error decoding feed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, entry := range feed.Items {
		item := domain.FeedItem{
			Title:   strings.TrimSpace(entry.Title),
			Link:    strings.TrimSpace(pickLink(entry)),
			PubDate: strings.TrimSpace(firstNonEmpty(entry.Published, entry.Updated)),
		}
		if item.Title == "" || item.Link == "" {
			p.log.Debug("Skipping entry without title or link", slog.String("item_title", item.Title))
			continue
		}
		items = append(items, item)
	}
	p.log.Debug("Feed parsed",
		slog.String("parser", "gofeed"),
		slog.String("feed_type", feed.FeedType),
		slog.Int("count", len(items)),
	)
	return items, nil
}

func pickLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}
	for _, l := range entry.Links {
		if l != "" {
			return l
		}
	}
	return ""
}
