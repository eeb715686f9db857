package ports

import "context"

// AdminRepository is the dynamic privileged set held in the store.
type AdminRepository interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// AdminCache is an optional read-through cache in front of
// AdminRepository. A failed cache never fails authorization.
type AdminCache interface {
	// Get returns (value, present, error); present=false means a miss.
	Get(ctx context.Context, userID int64) (bool, bool, error)
	Set(ctx context.Context, userID int64, isAdmin bool) error
}
