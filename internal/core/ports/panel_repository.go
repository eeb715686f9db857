package ports

import (
	"context"
	"time"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// FlagRepository persists the global mode switches as key/value flags.
type FlagRepository interface {
	GetModes(ctx context.Context) (*domain.Modes, error)
	SetModes(ctx context.Context, modes *domain.Modes) error
}

// EventRepository aggregates panel click events for the stats view.
type EventRepository interface {
	TopTexts(ctx context.Context, since time.Time, limit int64) ([]domain.EventCount, error)
}
