package domain

import "errors"

var ErrUnknownScope = errors.New("unknown broadcast scope")
var ErrBroadcastTextRequired = errors.New("broadcast text required")

// BroadcastScope selects what text a broadcast carries.
type BroadcastScope string

const (
	// ScopeAll delivers the caller-supplied literal text.
	ScopeAll BroadcastScope = "all"
	// ScopeAutoHomework synthesizes the text from today's homework entry.
	ScopeAutoHomework BroadcastScope = "auto_homework"
	// ScopeAutoHomeworkSchedule is ScopeAutoHomework plus a fixed pointer
	// to the schedule tab.
	ScopeAutoHomeworkSchedule BroadcastScope = "auto_homework_schedule"
)

// Valid reports whether the scope is one the panel may request.
func (s BroadcastScope) Valid() bool {
	switch s {
	case ScopeAll, ScopeAutoHomework, ScopeAutoHomeworkSchedule:
		return true
	}
	return false
}

// BroadcastResult is the aggregate outcome of one fan-out. Accepted
// reflects whether the outbound channel was configured at all, not
// per-recipient success. Sent counts attempts issued; individual
// failures are absorbed by the delivery engine.
type BroadcastResult struct {
	Accepted bool
	Sent     int
	Scope    BroadcastScope
}
