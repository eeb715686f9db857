package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

const scheduleSuffix = "\n\n📅 Актуальное расписание — во вкладке «Расписание»."

// BroadcastService orchestrates one fan-out: authorize the caller,
// resolve the text for the requested scope, snapshot the recipient set,
// and hand off to the delivery engine.
type BroadcastService struct {
	auth     ports.AuthService
	users    ports.UserRepository
	homework ports.HomeworkRepository
	engine   *DeliveryEngine
	logger   zerolog.Logger
	now      func() time.Time
}

func NewBroadcastService(
	auth ports.AuthService,
	users ports.UserRepository,
	homework ports.HomeworkRepository,
	engine *DeliveryEngine,
	logger zerolog.Logger,
) *BroadcastService {
	return &BroadcastService{
		auth:     auth,
		users:    users,
		homework: homework,
		engine:   engine,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *BroadcastService) Broadcast(ctx context.Context, in ports.BroadcastInput) (*domain.BroadcastResult, error) {
	// 1. Enforce privilege before any other work.
	actor, err := s.auth.RequireAdmin(ctx, in.RawInitData)
	if err != nil {
		return nil, err
	}
	if !in.Scope.Valid() {
		return nil, domain.ErrUnknownScope
	}

	// 2. Resolve the message text for the scope.
	text, err := s.resolveText(ctx, in)
	if err != nil {
		return nil, err
	}

	// 3. Point-in-time recipient snapshot; may race with concurrent
	// mute toggles, which is accepted.
	recipients, err := s.users.ListRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("select recipients: %w", err)
	}

	// 4. Best-effort fan-out.
	sent, accepted := s.engine.Deliver(ctx, text, recipients)

	s.logger.Info().
		Int64("actor", actor.UserID).
		Str("scope", string(in.Scope)).
		Int("sent", sent).
		Bool("accepted", accepted).
		Msg("broadcast dispatched")

	return &domain.BroadcastResult{Accepted: accepted, Sent: sent, Scope: in.Scope}, nil
}

func (s *BroadcastService) resolveText(ctx context.Context, in ports.BroadcastInput) (string, error) {
	if in.Scope == domain.ScopeAll {
		if strings.TrimSpace(in.Text) == "" {
			return "", domain.ErrBroadcastTextRequired
		}
		return in.Text, nil
	}

	today := s.now().Format("2006-01-02")
	body := domain.NoHomeworkText
	hw, err := s.homework.FindByDate(ctx, today)
	switch {
	case err == nil && hw.Text != "":
		body = hw.Text
	case err != nil && !errors.Is(err, domain.ErrHomeworkNotFound):
		s.logger.Warn().Err(err).Str("date", today).Msg("homework lookup failed, using placeholder")
	}

	text := fmt.Sprintf("📖 ДЗ на сегодня (%s):\n%s", today, body)
	if in.Scope == domain.ScopeAutoHomeworkSchedule {
		text += scheduleSuffix
	}
	return text, nil
}
