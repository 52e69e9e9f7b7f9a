package storage

import (
	"adventbot/internal/domain"
	"context"
	"sync"
)

// MemoryRunJournal хранит последние прогоны в памяти процесса.
// Используется, когда база данных не настроена; при переполнении вытесняются старые записи.
type MemoryRunJournal struct {
	mu           sync.Mutex
	runs         []domain.RunRecord
	capacity     int
	defaultLimit int
}

func NewMemoryRunJournal(capacity, defaultLimit int) *MemoryRunJournal {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryRunJournal{capacity: capacity, defaultLimit: defaultLimit}
}

func (m *MemoryRunJournal) SaveRun(ctx context.Context, record domain.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, record)
	if len(m.runs) > m.capacity {
		m.runs = m.runs[len(m.runs)-m.capacity:]
	}
	return nil
}

// ListRuns возвращает не более n последних прогонов, новые первыми.
func (m *MemoryRunJournal) ListRuns(ctx context.Context, n int) ([]domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	limit := n
	if limit <= 0 {
		limit = m.defaultLimit
	}
	if limit > len(m.runs) {
		limit = len(m.runs)
	}
	out := make([]domain.RunRecord, 0, limit)
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

func (m *MemoryRunJournal) Close() {}
