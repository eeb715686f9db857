package ports

import (
	"context"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// BroadcastInput is the orchestrator request DTO.
type BroadcastInput struct {
	// RawInitData is the caller's assertion; the orchestrator authorizes
	// it in enforcing mode before anything else happens.
	RawInitData string
	Scope       domain.BroadcastScope
	// Text is used only by domain.ScopeAll.
	Text string
}

// BroadcastService fans one message out to all eligible recipients.
type BroadcastService interface {
	Broadcast(ctx context.Context, in BroadcastInput) (*domain.BroadcastResult, error)
}
