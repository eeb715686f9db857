package ports

import (
	"context"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// ScheduleRepository persists timetable file references by kind.
type ScheduleRepository interface {
	// ListByKind returns up to limit newest-first file references.
	ListByKind(ctx context.Context, kind string, limit int64) ([]domain.ScheduleFile, error)
	Add(ctx context.Context, file *domain.ScheduleFile) error
	Clear(ctx context.Context, kind string) error
}
