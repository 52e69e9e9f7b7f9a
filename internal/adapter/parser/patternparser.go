package parser

import (
	"adventbot/internal/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
)

var (
	itemBlock  = regexp.MustCompile(`(?i)<item(?:\s[^>]*)?>[\s\S]*?</item\s*>`)
	entryBlock = regexp.MustCompile(`(?i)<entry(?:\s[^>]*)?>[\s\S]*?</entry\s*>`)
)

// PatternParser разбирает RSS и Atom поиском по шаблонам без построения XML-дерева.
// Сначала обрабатываются блоки <item>, затем <entry>, каждый в порядке документа.
type PatternParser struct {
	log *slog.Logger
}

func NewPatternParser(log *slog.Logger) *PatternParser {
	return &PatternParser{
		log: log,
	}
}

// Parse реализует метод интерфейса FeedParser.
func (p *PatternParser) Parse(ctx context.Context, reader io.Reader) ([]domain.FeedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		p.log.Error("Error reading feed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}
	items := ParseFeedText(string(data))
	p.log.Debug("Feed parsed", slog.String("parser", "pattern"), slog.Int("count", len(items)))
	return items, nil
}

// ParseFeedText извлекает записи из текста ленты.
// Блоки без заголовка или ссылки пропускаются.
func ParseFeedText(xml string) []domain.FeedItem {
	var items []domain.FeedItem
	for _, block := range itemBlock.FindAllString(xml, -1) {
		item := domain.FeedItem{
			Title: extractTag(block, "title"),
			Link:  extractTag(block, "link"),
			PubDate: firstNonEmpty(
				extractTag(block, "pubDate"),
				extractTag(block, "dc:date"),
				extractTag(block, "updated"),
			),
		}
		if item.Title != "" && item.Link != "" {
			items = append(items, item)
		}
	}
	for _, block := range entryBlock.FindAllString(xml, -1) {
		item := domain.FeedItem{
			Title: extractTag(block, "title"),
			Link: firstNonEmpty(
				extractAttr(block, "link", "href"),
				extractTag(block, "link"),
			),
			PubDate: firstNonEmpty(
				extractTag(block, "published"),
				extractTag(block, "updated"),
				extractTag(block, "dc:date"),
			),
		}
		if item.Title != "" && item.Link != "" {
			items = append(items, item)
		}
	}
	return items
}
