package ports

import (
	"context"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// HomeworkRepository persists per-date assignment entries.
type HomeworkRepository interface {
	FindByDate(ctx context.Context, date string) (*domain.Homework, error)
	Upsert(ctx context.Context, hw *domain.Homework) error
	Delete(ctx context.Context, date string) error
	Count(ctx context.Context) (int64, error)
}
