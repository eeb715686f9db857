package ports

import "context"

// Sender is the outbound messaging channel. Implementations report
// per-call success or failure independently; the delivery engine decides
// what to do with failures.
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	// FileURL resolves an opaque platform file id to a downloadable URL.
	FileURL(ctx context.Context, fileID string) (string, error)
}
