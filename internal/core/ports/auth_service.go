package ports

import (
	"context"

	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// AuthService resolves a raw init-data assertion into an identity with
// an admin decision.
type AuthService interface {
	// Identify is the advisory mode: a verifiable assertion yields an
	// identity with IsAdmin set either way; an unverifiable one yields
	// domain.ErrAuthRequired. Non-admin is a value, not an error.
	Identify(ctx context.Context, rawInitData string) (*domain.Identity, error)
	// RequireAdmin is the enforcing mode: domain.ErrAuthRequired when no
	// identity is verifiable, domain.ErrAdminRequired when the identity
	// holds no privilege.
	RequireAdmin(ctx context.Context, rawInitData string) (*domain.Identity, error)
}
