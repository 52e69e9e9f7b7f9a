package storage

import (
	"adventbot/internal/domain"
	"context"
)

// Storage определяет общий интерфейс журнала прогонов.
// Объединяет методы для записи и чтения прогонов, а также закрытия соединения.
type Storage interface {
	SaveRun(ctx context.Context, record domain.RunRecord) error
	ListRuns(ctx context.Context, n int) ([]domain.RunRecord, error)
	Close()
}
