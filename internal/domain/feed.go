package domain

import (
	"encoding/json"
	"time"
)

// ReasonNoEntryForToday отмечает прогон, в котором ни одна запись ленты не попала в текущий день.
const ReasonNoEntryForToday = "no-entry-for-today"

// FeedItem представляет отдельную запись RSS/Atom-ленты.
// PubDate хранит дату публикации в исходном виде и пуст, если в разметке её нет.
type FeedItem struct {
	Title   string
	Link    string
	PubDate string
}

// RunResult описывает итог одного прогона оповещения.
type RunResult struct {
	Sent   bool
	Reason string
	DryRun bool
	Count  int
	Day    string
}

// NoEntryResult возвращает результат прогона, в котором не нашлось записей за день.
func NoEntryResult(day string) RunResult {
	return RunResult{Reason: ReasonNoEntryForToday, Day: day}
}

// MarshalJSON сериализует результат в одну из двух форм:
// {sent, reason, day} без совпадений или {sent, dryRun, count, day} при совпадениях.
func (r RunResult) MarshalJSON() ([]byte, error) {
	if r.Reason != "" {
		return json.Marshal(struct {
			Sent   bool   `json:"sent"`
			Reason string `json:"reason"`
			Day    string `json:"day"`
		}{r.Sent, r.Reason, r.Day})
	}
	return json.Marshal(struct {
		Sent   bool   `json:"sent"`
		DryRun bool   `json:"dryRun"`
		Count  int    `json:"count"`
		Day    string `json:"day"`
	}{r.Sent, r.DryRun, r.Count, r.Day})
}

// RunRecord - запись журнала прогонов.
type RunRecord struct {
	ID        string        `json:"id"`
	Trigger   string        `json:"trigger"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Day       string        `json:"day,omitempty"`
	Sent      bool          `json:"sent"`
	DryRun    bool          `json:"dry_run"`
	Count     int           `json:"count"`
	Reason    string        `json:"reason,omitempty"`
	Error     string        `json:"error,omitempty"`
}
