package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// Sender delivers text messages through the Telegram Bot API. It is the
// outbound half only; the panel never polls for updates.
type Sender struct {
	bot    *tele.Bot
	logger zerolog.Logger
}

// New builds a Sender. It validates the token against the Bot API, so a
// bad token fails here rather than on first send.
func New(token string, logger zerolog.Logger) (*Sender, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram: token is empty")
	}
	bot, err := tele.NewBot(tele.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &Sender{bot: bot, logger: logger}, nil
}

// SendText sends a plain text message to a chat id. Per-call success or
// failure is independent; callers decide whether failures matter.
func (s *Sender) SendText(_ context.Context, chatID int64, text string) error {
	_, err := s.bot.Send(&tele.Chat{ID: chatID}, text)
	return err
}

// FileURL resolves an opaque file id into a downloadable Bot API URL.
func (s *Sender) FileURL(_ context.Context, fileID string) (string, error) {
	file, err := s.bot.FileByID(fileID)
	if err != nil {
		return "", fmt.Errorf("telegram file lookup: %w", err)
	}
	return fmt.Sprintf("%s/file/bot%s/%s", s.bot.URL, s.bot.Token, file.FilePath), nil
}
