package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/homeworkbot/panel-api/internal/core/ports"
)

const defaultRatePerSec = 25

// DeliveryEngine fans a single message out to a recipient set over the
// outbound channel, best-effort. One recipient's failure never aborts
// delivery to the rest: each send's outcome is observed, logged, and
// discarded. There is no retry within one invocation.
type DeliveryEngine struct {
	sender  ports.Sender
	limiter *rate.Limiter
	logger  zerolog.Logger
}

// NewDeliveryEngine builds a DeliveryEngine. sender may be nil, which
// makes every Deliver a zero-send no-op reporting accepted=false.
// ratePerSec bounds how fast sends are issued to the channel.
func NewDeliveryEngine(sender ports.Sender, ratePerSec int, logger zerolog.Logger) *DeliveryEngine {
	if ratePerSec <= 0 {
		ratePerSec = defaultRatePerSec
	}
	return &DeliveryEngine{
		sender:  sender,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
		logger:  logger,
	}
}

// Deliver issues one send per recipient and returns the number of
// attempts issued together with whether a channel was configured at all.
// The returned count deliberately ignores per-recipient outcomes.
//
// The fan-out is detached from the caller's context: a client that stops
// waiting does not cancel sends that a broadcast has begun.
func (e *DeliveryEngine) Deliver(ctx context.Context, text string, recipients []int64) (int, bool) {
	if e.sender == nil {
		e.logger.Warn().Int("recipients", len(recipients)).Msg("no outbound channel configured, broadcast skipped")
		return 0, false
	}

	sendCtx := context.WithoutCancel(ctx)

	var (
		wg       sync.WaitGroup
		failures atomic.Int64
	)
	sent := 0
	for _, chatID := range recipients {
		_ = e.limiter.Wait(sendCtx)
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			if err := e.sender.SendText(sendCtx, chatID, text); err != nil {
				failures.Add(1)
				e.logger.Debug().Err(err).Int64("chat_id", chatID).Msg("send failed")
			}
		}(chatID)
		sent++
	}
	wg.Wait()

	if n := failures.Load(); n > 0 {
		e.logger.Warn().Int64("failed", n).Int("total", sent).Msg("broadcast finished with failures")
	} else {
		e.logger.Info().Int("total", sent).Msg("broadcast finished")
	}
	return sent, true
}
