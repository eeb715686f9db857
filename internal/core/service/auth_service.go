package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
	"github.com/homeworkbot/panel-api/internal/pkg/initdata"
)

// AuthService verifies init-data assertions and resolves admin privilege:
// the static configured set first, then the dynamic store through an
// optional cache. Store or cache trouble is read as "no dynamic admins",
// never as an authorization error.
type AuthService struct {
	secret    string
	staticIDs map[int64]struct{}
	admins    ports.AdminRepository
	cache     ports.AdminCache
	logger    zerolog.Logger
}

// NewAuthService builds an AuthService. cache may be nil.
func NewAuthService(secret string, staticIDs map[int64]struct{}, admins ports.AdminRepository, cache ports.AdminCache, logger zerolog.Logger) *AuthService {
	if staticIDs == nil {
		staticIDs = map[int64]struct{}{}
	}
	return &AuthService{
		secret:    secret,
		staticIDs: staticIDs,
		admins:    admins,
		cache:     cache,
		logger:    logger,
	}
}

func (s *AuthService) Identify(ctx context.Context, rawInitData string) (*domain.Identity, error) {
	user, err := initdata.Verify(rawInitData, s.secret)
	if err != nil {
		return nil, domain.ErrAuthRequired
	}
	return &domain.Identity{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  s.isAdmin(ctx, user.ID),
	}, nil
}

func (s *AuthService) RequireAdmin(ctx context.Context, rawInitData string) (*domain.Identity, error) {
	identity, err := s.Identify(ctx, rawInitData)
	if err != nil {
		return nil, err
	}
	if !identity.IsAdmin {
		return nil, domain.ErrAdminRequired
	}
	return identity, nil
}

func (s *AuthService) isAdmin(ctx context.Context, userID int64) bool {
	if _, ok := s.staticIDs[userID]; ok {
		return true
	}

	if s.cache != nil {
		cached, hit, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("user_id", userID).Msg("admin cache read failed, falling through to store")
		} else if hit {
			return cached
		}
	}

	if s.admins == nil {
		return false
	}
	isAdmin, err := s.admins.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("user_id", userID).Msg("dynamic admin lookup failed, treating as non-admin")
		return false
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, isAdmin); err != nil {
			s.logger.Debug().Err(err).Int64("user_id", userID).Msg("admin cache write failed")
		}
	}
	return isAdmin
}
