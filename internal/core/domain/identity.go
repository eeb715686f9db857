package domain

import "errors"

// ErrAuthRequired means no verifiable identity accompanied the request.
// Distinct from ErrAdminRequired: the two map to different HTTP statuses.
var ErrAuthRequired = errors.New("authentication required")

// ErrAdminRequired means the identity is verified but lacks privilege.
var ErrAdminRequired = errors.New("admin required")

// Identity is a platform-verified actor. It exists only for the scope of
// a single request; nothing is persisted about it.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}
