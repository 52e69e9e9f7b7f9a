package usecase

import (
	"adventbot/internal/domain"
	"context"
)

// RunsStorage определяет интерфейс для чтения журнала прогонов.
type RunsStorage interface {
	ListRuns(ctx context.Context, n int) ([]domain.RunRecord, error)
}

// RunsGetterUseCase отдает последние записи журнала для API.
type RunsGetterUseCase struct {
	storage RunsStorage
}

func NewRunsGetterUseCase(s RunsStorage) *RunsGetterUseCase {
	return &RunsGetterUseCase{storage: s}
}

// GetRuns возвращает не более limit последних прогонов, новые первыми.
func (us *RunsGetterUseCase) GetRuns(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	return us.storage.ListRuns(ctx, limit)
}
