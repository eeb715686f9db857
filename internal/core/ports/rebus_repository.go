package ports

import (
	"context"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// RebusRepository reads the puzzle catalog and its leaderboard.
type RebusRepository interface {
	List(ctx context.Context, limit int64) ([]domain.Rebus, error)
	TopScores(ctx context.Context, limit int64) ([]domain.RebusScore, error)
	Count(ctx context.Context) (int64, error)
	SessionCount(ctx context.Context) (int64, error)
}
