package ports

import (
	"context"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// UserRepository persists bot users.
type UserRepository interface {
	FindByID(ctx context.Context, userID int64) (*domain.User, error)
	List(ctx context.Context, limit int64) ([]domain.User, error)
	// SetMuted toggles muted_all, creating the record when the id is
	// unknown (implicit creation on first admin action).
	SetMuted(ctx context.Context, userID int64, muted bool) error
	// ListRecipients returns the ids of all users eligible for a
	// broadcast: muted_all false or unset. An empty set is valid.
	ListRecipients(ctx context.Context) ([]int64, error)
	Count(ctx context.Context) (int64, error)
}
