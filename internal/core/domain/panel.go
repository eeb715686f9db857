package domain

import "time"

// ScheduleFile references a timetable image stored on Telegram's side.
// FileID is opaque; the panel downloads it through the /file proxy.
type ScheduleFile struct {
	Kind         string    `json:"kind"`
	FileID       string    `json:"file_id"`
	FileUniqueID string    `json:"file_unique_id,omitempty"`
	AddedAt      time.Time `json:"added_at,omitempty"`
}

// Rebus is a puzzle published to the class.
type Rebus struct {
	Kind       string `json:"kind"`
	Payload    string `json:"payload"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// RebusScore is one row of the puzzle leaderboard.
type RebusScore struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Score    int64  `json:"score"`
}

// Modes are the global bot switches toggled from the panel.
type Modes struct {
	Vacation    bool `json:"vacation"`
	Maintenance bool `json:"maintenance"`
}

// EventCount is an aggregated panel click counter.
type EventCount struct {
	Text  string `json:"text"`
	Count int64  `json:"count"`
}

// Stats is the panel dashboard summary.
type Stats struct {
	Users     int64        `json:"users"`
	Homework  int64        `json:"homework"`
	Rebuses   int64        `json:"rebuses"`
	Sessions  int64        `json:"sessions"`
	TopClicks []EventCount `json:"topClicks"`
}
