package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is a bot user known to the panel. MutedAll excludes the user from
// broadcast recipient selection; block/unblock toggles it. Users are
// created implicitly on the first admin action referencing an unknown id
// and are never hard-deleted here.
type User struct {
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	MutedAll  bool      `json:"muted_all"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
